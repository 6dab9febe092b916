package explain_test

import (
	"testing"

	"github.com/okian/hoodmatch/internal/domain/explain"
	"github.com/okian/hoodmatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGeneratorTiers(t *testing.T) {
	Convey("Given a generator with default thresholds", t, func() {
		gen := explain.New()
		prefs := model.Preferences{Priorities: []string{model.PriorityWalkability}}

		Convey("When explaining scores across the bands", func() {
			cases := []struct {
				score float64
				want  string
			}{
				{95, "Excellent overall match for your lifestyle"},
				{80, "Excellent overall match for your lifestyle"},
				{79.9, "Good match with some great features"},
				{60, "Good match with some great features"},
				{59, "Decent match with room for compromise"},
				{40, "Decent match with room for compromise"},
				{39.9, "Limited match - consider adjusting preferences"},
				{0, "Limited match - consider adjusting preferences"},
			}

			Convey("Then exactly one tier statement opens the list", func() {
				for _, c := range cases {
					reasons := gen.Explain(prefs, model.Neighborhood{}, c.score)
					So(len(reasons), ShouldBeGreaterThanOrEqualTo, 1)
					So(reasons[0], ShouldEqual, c.want)
				}
			})
		})

		Convey("When the neighborhood has no attributes at all", func() {
			reasons := gen.Explain(prefs, model.Neighborhood{}, 50)

			Convey("Then the explanation is never empty", func() {
				So(len(reasons), ShouldEqual, 1)
			})
		})
	})
}

func TestGeneratorHighlights(t *testing.T) {
	Convey("Given a generator and a fully-loaded neighborhood", t, func() {
		gen := explain.New()
		prefs := model.Preferences{Priorities: []string{model.PrioritySafety}}
		n := model.Neighborhood{
			Lifestyle: model.Lifestyle{
				Walkability:  model.Float64Ptr(85),
				SchoolRating: model.Float64Ptr(9),
				CrimeRate:    model.Float64Ptr(12),
				Transit:      model.Float64Ptr(75),
			},
			Amenities: model.Amenities{Restaurants: 40, Parks: 6},
		}

		Convey("When every threshold check passes", func() {
			reasons := gen.Explain(prefs, n, 90)

			Convey("Then all highlights follow the tier in a stable order", func() {
				So(reasons, ShouldResemble, []string{
					"Excellent overall match for your lifestyle",
					"High walkability score - easy to get around on foot",
					"Excellent schools in the area",
					"Very safe neighborhood with low crime rates",
					"Great public transportation access",
					"Lots of dining options nearby",
					"Plenty of parks and green spaces",
				})
			})

			Convey("And highlights are independent of the chosen priorities", func() {
				other := gen.Explain(model.Preferences{Priorities: []string{"mystery"}}, n, 90)
				So(other, ShouldResemble, reasons)
			})
		})

		Convey("When attributes sit just below their thresholds", func() {
			low := model.Neighborhood{
				Lifestyle: model.Lifestyle{
					Walkability:  model.Float64Ptr(69.9),
					SchoolRating: model.Float64Ptr(7.9),
					CrimeRate:    model.Float64Ptr(20.1),
					Transit:      model.Float64Ptr(69.9),
				},
				Amenities: model.Amenities{Restaurants: 19, Parks: 4},
			}
			reasons := gen.Explain(prefs, low, 90)

			Convey("Then no highlight is emitted", func() {
				So(len(reasons), ShouldEqual, 1)
			})
		})

		Convey("When crime data is absent", func() {
			noCrime := model.Neighborhood{}
			reasons := gen.Explain(prefs, noCrime, 10)

			Convey("Then the safety highlight fails rather than assuming low crime", func() {
				So(reasons, ShouldResemble, []string{"Limited match - consider adjusting preferences"})
			})
		})
	})
}

func TestGeneratorOptions(t *testing.T) {
	Convey("Given a generator with custom thresholds", t, func() {
		gen := explain.New(
			explain.WithTierThresholds(90, 70, 50),
			explain.WithParksHighlightMin(2),
			explain.WithCrimeHighlightMax(5),
		)
		prefs := model.Preferences{Priorities: []string{model.PriorityParks}}

		Convey("When explaining with the adjusted bands", func() {
			n := model.Neighborhood{
				Lifestyle: model.Lifestyle{CrimeRate: model.Float64Ptr(10)},
				Amenities: model.Amenities{Parks: 3},
			}
			reasons := gen.Explain(prefs, n, 85)

			Convey("Then the custom thresholds drive the output", func() {
				So(reasons[0], ShouldEqual, "Good match with some great features")
				So(reasons, ShouldContain, "Plenty of parks and green spaces")
				So(reasons, ShouldNotContain, "Very safe neighborhood with low crime rates")
			})
		})

		Convey("When tier thresholds are not strictly descending", func() {
			bad := explain.New(explain.WithTierThresholds(50, 60, 70))

			Convey("Then the defaults are kept", func() {
				So(bad.Explain(prefs, model.Neighborhood{}, 85)[0],
					ShouldEqual, "Excellent overall match for your lifestyle")
			})
		})
	})
}
