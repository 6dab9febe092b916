package model_test

import (
	"errors"
	"testing"

	"github.com/okian/hoodmatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPreferencesValidate(t *testing.T) {
	Convey("Given a preference profile", t, func() {
		Convey("When priorities and budget are sane", func() {
			prefs := model.Preferences{
				Priorities: []string{model.PriorityWalkability},
				Budget:     model.Budget{Min: 500, Max: 2000},
			}

			Convey("Then validation passes", func() {
				So(prefs.Validate(), ShouldBeNil)
			})
		})

		Convey("When the priority set is empty", func() {
			prefs := model.Preferences{Budget: model.Budget{Max: 2000}}

			Convey("Then validation fails with the profile sentinel", func() {
				err := prefs.Validate()
				So(err, ShouldNotBeNil)
				So(errors.Is(err, model.ErrInvalidProfile), ShouldBeTrue)
			})
		})

		Convey("When budget min exceeds max", func() {
			prefs := model.Preferences{
				Priorities: []string{model.PrioritySafety},
				Budget:     model.Budget{Min: 3000, Max: 2000},
			}

			Convey("Then validation fails", func() {
				So(errors.Is(prefs.Validate(), model.ErrInvalidProfile), ShouldBeTrue)
			})
		})

		Convey("When no budget is declared at all", func() {
			prefs := model.Preferences{
				Priorities: []string{model.PrioritySafety},
				Budget:     model.Budget{Min: 500},
			}

			Convey("Then a zero max does not trip the min check", func() {
				So(prefs.Validate(), ShouldBeNil)
			})
		})

		Convey("When a budget bound is negative", func() {
			prefs := model.Preferences{
				Priorities: []string{model.PrioritySafety},
				Budget:     model.Budget{Min: -1, Max: 2000},
			}

			Convey("Then validation fails", func() {
				So(errors.Is(prefs.Validate(), model.ErrInvalidProfile), ShouldBeTrue)
			})
		})
	})
}

func TestPreferencesPriorities(t *testing.T) {
	Convey("Given a profile with duplicate and unknown keys", t, func() {
		prefs := model.Preferences{
			Priorities: []string{
				model.PrioritySafety,
				"vibes",
				model.PrioritySafety,
				model.PriorityParks,
				"vibes",
			},
		}

		Convey("When deduplicating", func() {
			Convey("Then first-seen order is preserved", func() {
				So(prefs.DedupedPriorities(), ShouldResemble,
					[]string{model.PrioritySafety, "vibes", model.PriorityParks})
			})
		})

		Convey("When collecting unknown keys", func() {
			Convey("Then only keys outside the enumeration remain", func() {
				So(prefs.UnknownPriorities(), ShouldResemble, []string{"vibes"})
			})
		})
	})

	Convey("Given the known priority enumeration", t, func() {
		Convey("Then it contains the eight documented keys", func() {
			So(len(model.KnownPriorities()), ShouldEqual, 8)
		})
	})
}
