package source

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuery(t *testing.T) {
	Convey("Given a new query", t, func() {
		q := NewQuery("test", 5)

		Convey("It starts on the first page", func() {
			So(q.Page, ShouldEqual, 1)
			So(q.StartIndex, ShouldEqual, 1)
			So(q.ResultsPerPage, ShouldEqual, 5)
		})

		Convey("Turn recomputes the start index", func() {
			next := q.Turn(2)
			So(next.Page, ShouldEqual, 3)
			So(next.StartIndex, ShouldEqual, 11)
			So(q.Page, ShouldEqual, 1)
		})

		Convey("Turn never goes below page 1", func() {
			So(q.Turn(-4).Page, ShouldEqual, 1)
			So(q.Turn(-4).StartIndex, ShouldEqual, 1)
		})
	})

	Convey("A non-positive page size is raised to 1", t, func() {
		So(NewQuery("x", 0).ResultsPerPage, ShouldEqual, 1)
	})
}

func TestParams(t *testing.T) {
	Convey("Given a translation table", t, func() {
		params := Params{
			Fixed("sort", "relevance"),
			From("page", FieldPage),
			From("limit", FieldResultsPerPage),
			From("start", FieldStartIndex),
			From("search", FieldTerms),
		}
		q := NewQuery("daft punk & co", 5).Turn(1)

		Convey("Values resolves fields and literals", func() {
			v := params.Values(q)
			So(v.Get("sort"), ShouldEqual, "relevance")
			So(v.Get("page"), ShouldEqual, "2")
			So(v.Get("limit"), ShouldEqual, "5")
			So(v.Get("start"), ShouldEqual, "6")
			So(v.Get("search"), ShouldEqual, "daft punk & co")
		})

		Convey("Encode escapes the terms", func() {
			So(params.Encode("https://example.com/videos", q), ShouldEqual,
				"https://example.com/videos?limit=5&page=2&search=daft+punk+%26+co&sort=relevance&start=6")
		})
	})
}

func TestResult(t *testing.T) {
	Convey("Given a result without a source", t, func() {
		r := NewResult("orphan", "x", nil)

		Convey("Resolve fails as unresolvable", func() {
			_, err := r.Resolve(context.Background())
			So(errors.Is(err, ErrUnresolvable), ShouldBeTrue)
		})
	})

	Convey("Given a result with a source", t, func() {
		r := NewResult("t", "x", fakeSource{})
		So(r.String(), ShouldEqual, "t (fake)")

		url, err := r.Resolve(context.Background())
		So(err, ShouldBeNil)
		So(url, ShouldEqual, "stream://x")
	})
}
