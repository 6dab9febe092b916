package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/hoodmatch/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	vars := []string{
		"HOODMATCH_CONFIG",
		"HOODMATCH_ADDR",
		"HOODMATCH_LOG_LEVEL",
		"HOODMATCH_DEFAULT_MATCH_LIMIT",
		"HOODMATCH_MAX_MATCH_LIMIT",
		"HOODMATCH_HISTORY_EMIT_CAP",
		"HOODMATCH_DEFAULT_PRIORITY_WEIGHT",
		"HOODMATCH_NEUTRAL_CRIME_RATE",
		"HOODMATCH_SEED_DEMO_DATA",
	}
	for _, v := range vars {
		_ = os.Unsetenv(v)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DefaultMatchLimit, convey.ShouldEqual, 10)
				convey.So(cfg.HistoryEmitCap, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("HOODMATCH_ADDR", ":8080")
			_ = os.Setenv("HOODMATCH_DEFAULT_MATCH_LIMIT", "15")
			_ = os.Setenv("HOODMATCH_MAX_MATCH_LIMIT", "50")
			_ = os.Setenv("HOODMATCH_NEUTRAL_CRIME_RATE", "40")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultMatchLimit, convey.ShouldEqual, 15)
				convey.So(cfg.MaxMatchLimit, convey.ShouldEqual, 50)
				convey.So(cfg.NeutralCrimeRate, convey.ShouldEqual, 40)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":7070\"\nmax_match_limit: 25\npriority_weights:\n  walkability: 0.5\n  safety: 0.5\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("HOODMATCH_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should layer over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.MaxMatchLimit, convey.ShouldEqual, 25)
				convey.So(cfg.PriorityWeights["walkability"], convey.ShouldEqual, 0.5)
			})
		})

		convey.Convey("When the config is invalid", func() {
			_ = os.Setenv("HOODMATCH_HISTORY_EMIT_CAP", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the invalid-config sentinel", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a priority weight is non-positive", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "priority_weights:\n  walkability: -0.2\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("HOODMATCH_CONFIG", path)
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
