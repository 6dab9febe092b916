package history_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/okian/hoodmatch/internal/adapters/history"
	"github.com/okian/hoodmatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func entries(ids ...string) []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(ids))
	for i, id := range ids {
		out[i] = model.HistoryEntry{NeighborhoodID: id, Score: 50 + i}
	}
	return out
}

func TestMemRecorderRecord(t *testing.T) {
	Convey("Given a recorder with a fixed clock", t, func() {
		now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		rec := history.NewMemRecorder(history.WithClock(func() time.Time { return now }))
		ctx := context.Background()

		Convey("When recording a batch", func() {
			err := rec.Record(ctx, "user-1", entries("a", "b", "c"))

			Convey("Then every entry is stamped with the recorder clock", func() {
				So(err, ShouldBeNil)
				recent, err := rec.Recent(ctx, "user-1", 10)
				So(err, ShouldBeNil)
				So(len(recent), ShouldEqual, 3)
				for _, e := range recent {
					So(e.Timestamp.Equal(now), ShouldBeTrue)
				}
			})

			Convey("And the history is append-only across calls", func() {
				So(err, ShouldBeNil)
				So(rec.Record(ctx, "user-1", entries("d")), ShouldBeNil)
				So(rec.Count(ctx, "user-1"), ShouldEqual, 4)
			})
		})

		Convey("When recording an empty batch", func() {
			err := rec.Record(ctx, "user-1", nil)

			Convey("Then nothing happens and no error is returned", func() {
				So(err, ShouldBeNil)
				So(rec.Count(ctx, "user-1"), ShouldEqual, 0)
			})
		})

		Convey("When the batch exceeds the emission cap", func() {
			err := rec.Record(ctx, "user-1", entries("a", "b", "c", "d", "e", "f"))

			Convey("Then the append is rejected", func() {
				So(errors.Is(err, history.ErrBatchTooLarge), ShouldBeTrue)
				So(rec.Count(ctx, "user-1"), ShouldEqual, 0)
			})
		})

		Convey("When the requester id is empty", func() {
			err := rec.Record(ctx, "", entries("a"))

			Convey("Then the append is rejected", func() {
				So(errors.Is(err, history.ErrInvalidRequester), ShouldBeTrue)
			})
		})
	})
}

func TestMemRecorderRecent(t *testing.T) {
	Convey("Given a recorder with several appends", t, func() {
		tick := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		rec := history.NewMemRecorder(history.WithClock(func() time.Time {
			tick = tick.Add(time.Minute)
			return tick
		}))
		ctx := context.Background()

		So(rec.Record(ctx, "user-1", entries("a", "b")), ShouldBeNil)
		So(rec.Record(ctx, "user-1", entries("c")), ShouldBeNil)

		Convey("When reading back the newest entries", func() {
			recent, err := rec.Recent(ctx, "user-1", 2)

			Convey("Then they come newest first", func() {
				So(err, ShouldBeNil)
				So(len(recent), ShouldEqual, 2)
				So(recent[0].NeighborhoodID, ShouldEqual, "c")
				So(recent[1].NeighborhoodID, ShouldEqual, "b")
			})
		})

		Convey("When asking for more entries than exist", func() {
			recent, err := rec.Recent(ctx, "user-1", 100)

			Convey("Then the full history is returned", func() {
				So(err, ShouldBeNil)
				So(len(recent), ShouldEqual, 3)
			})
		})

		Convey("When reading an unknown requester", func() {
			recent, err := rec.Recent(ctx, "ghost", 5)

			Convey("Then the history is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(len(recent), ShouldEqual, 0)
			})
		})
	})
}

func TestMemRecorderConcurrency(t *testing.T) {
	Convey("Given concurrent appends for the same requester", t, func() {
		rec := history.NewMemRecorder()
		ctx := context.Background()

		Convey("When many goroutines record at once", func() {
			const writers = 16
			var wg sync.WaitGroup
			wg.Add(writers)
			for w := 0; w < writers; w++ {
				go func(w int) {
					defer wg.Done()
					_ = rec.Record(ctx, "user-1", entries(fmt.Sprintf("n-%d", w)))
				}(w)
			}
			wg.Wait()

			Convey("Then no append is lost", func() {
				So(rec.Count(ctx, "user-1"), ShouldEqual, writers)
			})
		})
	})
}
