package seed

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/hoodmatch/internal/adapters/repository"
	"github.com/okian/hoodmatch/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init()
	m.Run()
}

func TestSamples(t *testing.T) {
	Convey("Given the curated sample set", t, func() {
		samples := Samples()

		Convey("It should not be empty", func() {
			So(len(samples), ShouldBeGreaterThanOrEqualTo, 5)
		})

		Convey("Every sample should carry an ID, name, city and state", func() {
			for _, n := range samples {
				So(n.ID, ShouldNotBeBlank)
				So(n.Name, ShouldNotBeBlank)
				So(n.City, ShouldNotBeBlank)
				So(n.State, ShouldNotBeBlank)
			}
		})

		Convey("IDs should be unique", func() {
			seen := make(map[string]bool, len(samples))
			for _, n := range samples {
				So(seen[n.ID], ShouldBeFalse)
				seen[n.ID] = true
			}
		})

		Convey("Every sample should have all scorable attributes measured", func() {
			for _, n := range samples {
				So(n.Lifestyle.Walkability, ShouldNotBeNil)
				So(n.Lifestyle.Transit, ShouldNotBeNil)
				So(n.Lifestyle.CrimeRate, ShouldNotBeNil)
				So(n.Lifestyle.SchoolRating, ShouldNotBeNil)
				So(n.Housing.MedianRent, ShouldNotBeNil)
			}
		})

		Convey("Calling Samples twice should return equal data", func() {
			So(Samples(), ShouldResemble, samples)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()

		Convey("When loading the samples", func() {
			err := Load(ctx, store)

			Convey("The store should hold every sample", func() {
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, len(Samples()))
			})

			Convey("Loading again should not duplicate records", func() {
				So(Load(ctx, store), ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, len(Samples()))
			})
		})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Given the synthetic generator", t, func() {
		Convey("It should produce the requested number of neighborhoods", func() {
			So(len(Generate(0)), ShouldEqual, 0)
			So(len(Generate(25)), ShouldEqual, 25)
		})

		Convey("Generated neighborhoods should have unique IDs and valid attributes", func() {
			batch := Generate(50)
			seen := make(map[string]bool, len(batch))
			for _, n := range batch {
				So(seen[n.ID], ShouldBeFalse)
				seen[n.ID] = true

				So(*n.Lifestyle.Walkability, ShouldBeBetweenOrEqual, 0, 100)
				So(*n.Lifestyle.Transit, ShouldBeBetweenOrEqual, 0, 100)
				So(*n.Lifestyle.SchoolRating, ShouldBeBetweenOrEqual, 0, 10)
				So(*n.Lifestyle.CrimeRate, ShouldBeGreaterThanOrEqualTo, 0)
				So(*n.Housing.MedianRent, ShouldBeGreaterThan, 0)
			}
		})
	})
}
