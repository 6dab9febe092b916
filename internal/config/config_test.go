package config_test

import (
	"runtime"
	"testing"

	"github.com/okian/hoodmatch/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.SeedDemoData, convey.ShouldBeTrue)
			convey.So(cfg.DefaultMatchLimit, convey.ShouldEqual, 10)
			convey.So(cfg.MaxMatchLimit, convey.ShouldEqual, 100)
			convey.So(cfg.HistoryEmitCap, convey.ShouldEqual, 5)
			convey.So(cfg.ParallelThreshold, convey.ShouldEqual, 32)
			convey.So(cfg.MaxScoringWorkers, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.DefaultPriorityWeight, convey.ShouldEqual, 0.1)
			convey.So(cfg.NeutralCrimeRate, convey.ShouldEqual, 50)
			convey.So(cfg.BudgetBonus, convey.ShouldEqual, 20)
			convey.So(cfg.BudgetPenaltyCap, convey.ShouldEqual, 30)
			convey.So(cfg.TierExcellentMin, convey.ShouldEqual, 80)
			convey.So(cfg.TierGoodMin, convey.ShouldEqual, 60)
			convey.So(cfg.TierDecentMin, convey.ShouldEqual, 40)
		})
	})
}
