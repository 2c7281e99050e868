package source

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func titles(results []*Result) []string {
	return lo.Map(results, func(r *Result, _ int) string { return r.Title() })
}

func TestCursor(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh cursor", t, func() {
		fetcher := &fakeFetcher{bodies: map[string]string{
			"fake/1": "more|a,b",
			"fake/2": "more|c,d",
			"fake/3": "done|e",
		}}
		cursor := NewCursor(fakeSource{}, fetcher)

		Convey("It has no results, assumes more and sits on page 1", func() {
			So(cursor.Results(), ShouldBeEmpty)
			So(cursor.MoreResults(), ShouldBeTrue)
			So(cursor.Page(), ShouldEqual, 1)
		})

		Convey("Changing page before any search does nothing", func() {
			So(cursor.ChangePage(ctx, 1), ShouldBeNil)
			So(fetcher.calls, ShouldBeEmpty)
		})

		Convey("When searching", func() {
			So(cursor.Search(ctx, NewQuery("test", 2)), ShouldBeNil)

			Convey("Results and more flag come from the response", func() {
				So(titles(cursor.Results()), ShouldResemble, []string{"a", "b"})
				So(cursor.MoreResults(), ShouldBeTrue)
				So(cursor.Results()[0].Source().ID(), ShouldEqual, "fake")
			})

			Convey("Going back from page 1 is a no-op", func() {
				So(cursor.ChangePage(ctx, -1), ShouldBeNil)
				So(cursor.Page(), ShouldEqual, 1)
				So(fetcher.calls, ShouldHaveLength, 1)
			})

			Convey("Three forward moves advance twice when the third response ends the results", func() {
				for i := 0; i < 3; i++ {
					So(cursor.ChangePage(ctx, 1), ShouldBeNil)
				}
				So(cursor.Page(), ShouldEqual, 3)
				So(cursor.MoreResults(), ShouldBeFalse)
				So(titles(cursor.Results()), ShouldResemble, []string{"e"})
				So(fetcher.calls, ShouldResemble, []string{"fake/1", "fake/2", "fake/3"})
			})

			Convey("Every page change recomputes the start index", func() {
				So(cursor.ChangePage(ctx, 2), ShouldBeNil)
				q, ok := cursor.Query()
				So(ok, ShouldBeTrue)
				So(q.Page, ShouldEqual, 3)
				So(q.StartIndex, ShouldEqual, 1+q.ResultsPerPage*(q.Page-1))

				So(cursor.ChangePage(ctx, -1), ShouldBeNil)
				q, _ = cursor.Query()
				So(q.Page, ShouldEqual, 2)
				So(q.StartIndex, ShouldEqual, 3)
			})

			Convey("A transport failure keeps the previous state", func() {
				delete(fetcher.bodies, "fake/2")
				err := cursor.ChangePage(ctx, 1)
				So(errors.Is(err, ErrTransport), ShouldBeTrue)
				So(errors.Is(err, errDown), ShouldBeTrue)
				So(titles(cursor.Results()), ShouldResemble, []string{"a", "b"})
				So(cursor.MoreResults(), ShouldBeTrue)
				So(cursor.Page(), ShouldEqual, 1)
			})

			Convey("A parse failure keeps the previous state", func() {
				fetcher.bodies["fake/2"] = "garbage"
				err := cursor.ChangePage(ctx, 1)
				So(errors.Is(err, ErrParse), ShouldBeTrue)
				So(titles(cursor.Results()), ShouldResemble, []string{"a", "b"})
				So(cursor.Page(), ShouldEqual, 1)
			})
		})

		Convey("A zero-result response clears results and takes its more flag", func() {
			fetcher.bodies["fake/1"] = "done|"
			So(cursor.Search(ctx, NewQuery("nothing", 5)), ShouldBeNil)
			So(cursor.Results(), ShouldBeEmpty)
			So(cursor.MoreResults(), ShouldBeFalse)

			Convey("and forward moves are then no-ops", func() {
				So(cursor.ChangePage(ctx, 1), ShouldBeNil)
				So(cursor.Page(), ShouldEqual, 1)
				So(fetcher.calls, ShouldHaveLength, 1)
			})
		})
	})
}
