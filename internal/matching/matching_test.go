package matching_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/okian/hoodmatch/internal/domain/explain"
	"github.com/okian/hoodmatch/internal/domain/model"
	"github.com/okian/hoodmatch/internal/domain/scoring"
	"github.com/okian/hoodmatch/internal/matching"
	"github.com/okian/hoodmatch/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeRecorder captures recorded entries per requester.
type fakeRecorder struct {
	mu      sync.Mutex
	calls   int
	byUser  map[string][]model.HistoryEntry
	failing bool
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{byUser: make(map[string][]model.HistoryEntry)}
}

func (r *fakeRecorder) Record(_ context.Context, requesterID string, entries []model.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errors.New("store down")
	}
	r.calls++
	r.byUser[requesterID] = append(r.byUser[requesterID], entries...)
	return nil
}

func walkableNeighborhood(id string, walkability float64) model.Neighborhood {
	return model.Neighborhood{
		ID:   id,
		Name: "hood-" + id,
		Lifestyle: model.Lifestyle{
			Walkability: model.Float64Ptr(walkability),
		},
	}
}

func newService(rec matching.Recorder, opts ...matching.Option) *matching.Service {
	return matching.New(scoring.New(), explain.New(), rec, opts...)
}

func TestServiceRank(t *testing.T) {
	Convey("Given a ranking service over the real engine", t, func() {
		rec := newFakeRecorder()
		svc := newService(rec)
		prefs := model.Preferences{Priorities: []string{model.PriorityWalkability}}

		Convey("When ranking candidates with distinct scores", func() {
			candidates := []model.Neighborhood{
				walkableNeighborhood("c", 40),
				walkableNeighborhood("a", 90),
				walkableNeighborhood("b", 70),
			}
			matches, err := svc.Rank(context.Background(), "user-1", prefs, candidates, 0)

			Convey("Then results are sorted by score descending", func() {
				So(err, ShouldBeNil)
				So(len(matches), ShouldEqual, 3)
				So(matches[0].Neighborhood.ID, ShouldEqual, "a")
				So(matches[1].Neighborhood.ID, ShouldEqual, "b")
				So(matches[2].Neighborhood.ID, ShouldEqual, "c")
				So(matches[0].Score, ShouldEqual, 90)
			})

			Convey("And every match carries a non-empty explanation", func() {
				So(err, ShouldBeNil)
				for _, m := range matches {
					So(len(m.Reasons), ShouldBeGreaterThanOrEqualTo, 1)
				}
			})
		})

		Convey("When candidates tie on score", func() {
			candidates := []model.Neighborhood{
				walkableNeighborhood("z", 80),
				walkableNeighborhood("m", 80),
				walkableNeighborhood("a", 80),
			}

			Convey("Then ties break on neighborhood ID ascending, every time", func() {
				for i := 0; i < 5; i++ {
					matches, err := svc.Rank(context.Background(), "user-1", prefs, candidates, 0)
					So(err, ShouldBeNil)
					So(matches[0].Neighborhood.ID, ShouldEqual, "a")
					So(matches[1].Neighborhood.ID, ShouldEqual, "m")
					So(matches[2].Neighborhood.ID, ShouldEqual, "z")
				}
			})
		})

		Convey("When no limit is supplied", func() {
			var candidates []model.Neighborhood
			for i := 0; i < 15; i++ {
				candidates = append(candidates, walkableNeighborhood(fmt.Sprintf("n-%02d", i), float64(i)))
			}
			matches, err := svc.Rank(context.Background(), "user-1", prefs, candidates, 0)

			Convey("Then the default of 10 applies", func() {
				So(err, ShouldBeNil)
				So(len(matches), ShouldEqual, 10)
			})
		})

		Convey("When the limit is negative", func() {
			_, err := svc.Rank(context.Background(), "user-1", prefs, nil, -1)

			Convey("Then the request is rejected", func() {
				So(errors.Is(err, matching.ErrInvalidLimit), ShouldBeTrue)
			})
		})

		Convey("When the profile has no priorities", func() {
			_, err := svc.Rank(context.Background(), "user-1", model.Preferences{}, nil, 0)

			Convey("Then the request is rejected before scoring", func() {
				So(errors.Is(err, model.ErrInvalidProfile), ShouldBeTrue)
				So(rec.calls, ShouldEqual, 0)
			})
		})

		Convey("When the budget range is inverted", func() {
			bad := model.Preferences{
				Priorities: []string{model.PrioritySafety},
				Budget:     model.Budget{Min: 2000, Max: 1000},
			}
			_, err := svc.Rank(context.Background(), "user-1", bad, nil, 0)

			Convey("Then the request is rejected", func() {
				So(errors.Is(err, model.ErrInvalidProfile), ShouldBeTrue)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			candidates := []model.Neighborhood{walkableNeighborhood("a", 50)}
			_, err := svc.Rank(ctx, "user-1", prefs, candidates, 0)

			Convey("Then ranking aborts", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestServiceRankHistory(t *testing.T) {
	Convey("Given a ranking service with a history recorder", t, func() {
		rec := newFakeRecorder()
		svc := newService(rec)
		prefs := model.Preferences{Priorities: []string{model.PriorityWalkability}}

		var candidates []model.Neighborhood
		for i := 0; i < 8; i++ {
			candidates = append(candidates, walkableNeighborhood(fmt.Sprintf("n-%d", i), float64(i*10)))
		}

		Convey("When ranking with a generous limit", func() {
			matches, err := svc.Rank(context.Background(), "user-1", prefs, candidates, 8)

			Convey("Then only the top five reach the recorder", func() {
				So(err, ShouldBeNil)
				So(len(matches), ShouldEqual, 8)
				entries := rec.byUser["user-1"]
				So(len(entries), ShouldEqual, 5)
				So(entries[0].NeighborhoodID, ShouldEqual, matches[0].Neighborhood.ID)
				So(entries[0].Score, ShouldEqual, matches[0].Score)
			})

			Convey("And timestamps are left for the recorder to assign", func() {
				So(err, ShouldBeNil)
				for _, e := range rec.byUser["user-1"] {
					So(e.Timestamp.IsZero(), ShouldBeTrue)
				}
			})
		})

		Convey("When fewer candidates exist than the emission cap", func() {
			few := candidates[:2]
			_, err := svc.Rank(context.Background(), "user-2", prefs, few, 0)

			Convey("Then only those entries are recorded", func() {
				So(err, ShouldBeNil)
				So(len(rec.byUser["user-2"]), ShouldEqual, 2)
			})
		})

		Convey("When the emission cap is customized", func() {
			small := newService(rec, matching.WithHistoryEmitCap(2))
			_, err := small.Rank(context.Background(), "user-3", prefs, candidates, 0)

			Convey("Then the custom cap bounds the emission", func() {
				So(err, ShouldBeNil)
				So(len(rec.byUser["user-3"]), ShouldEqual, 2)
			})
		})

		Convey("When the recorder fails", func() {
			rec.failing = true
			_, err := svc.Rank(context.Background(), "user-1", prefs, candidates, 0)

			Convey("Then the whole request fails with the collaborator sentinel", func() {
				So(errors.Is(err, matching.ErrUnavailable), ShouldBeTrue)
			})
		})
	})
}

func TestServiceRankParallel(t *testing.T) {
	Convey("Given a service configured to fan out aggressively", t, func() {
		rec := newFakeRecorder()
		svc := newService(rec,
			matching.WithParallelThreshold(2),
			matching.WithMaxWorkers(4),
		)
		inline := newService(newFakeRecorder(), matching.WithParallelThreshold(1000))
		prefs := model.Preferences{Priorities: []string{model.PriorityWalkability}}

		var candidates []model.Neighborhood
		for i := 0; i < 100; i++ {
			candidates = append(candidates, walkableNeighborhood(fmt.Sprintf("n-%03d", i), float64(i)))
		}

		Convey("When ranking a large candidate set", func() {
			parallel, err := svc.Rank(context.Background(), "user-1", prefs, candidates, 100)
			sequential, err2 := inline.Rank(context.Background(), "user-1", prefs, candidates, 100)

			Convey("Then the parallel path matches the inline path exactly", func() {
				So(err, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(parallel, ShouldResemble, sequential)
			})
		})
	})
}

func TestServiceAnalyze(t *testing.T) {
	Convey("Given a ranking service", t, func() {
		svc := newService(newFakeRecorder())
		prefs := model.Preferences{
			Priorities: []string{model.PriorityWalkability, model.PrioritySafety},
		}
		n := model.Neighborhood{
			ID: "n-1",
			Lifestyle: model.Lifestyle{
				Walkability: model.Float64Ptr(90),
				CrimeRate:   model.Float64Ptr(10),
			},
		}

		Convey("When analyzing a single candidate", func() {
			analysis, err := svc.Analyze(context.Background(), prefs, n)

			Convey("Then score, reasons and breakdown are all present", func() {
				So(err, ShouldBeNil)
				So(analysis.Score, ShouldEqual, 90)
				So(len(analysis.Reasons), ShouldBeGreaterThanOrEqualTo, 1)
				So(len(analysis.Breakdown), ShouldEqual, 2)
				So(analysis.Breakdown[0].Key, ShouldEqual, model.PriorityWalkability)
				So(analysis.Breakdown[0].Score, ShouldEqual, 90)
				So(analysis.Breakdown[1].Key, ShouldEqual, model.PrioritySafety)
				So(analysis.Breakdown[1].Score, ShouldEqual, 90)
			})
		})

		Convey("When the profile is invalid", func() {
			_, err := svc.Analyze(context.Background(), model.Preferences{}, n)

			Convey("Then analysis is rejected", func() {
				So(errors.Is(err, model.ErrInvalidProfile), ShouldBeTrue)
			})
		})
	})
}
