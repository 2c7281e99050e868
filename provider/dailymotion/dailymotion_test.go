package dailymotion

import (
	"context"
	"errors"
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/webify-cli/webify/source"
)

func TestBuildRequest(t *testing.T) {
	Convey("Given a query on the second page", t, func() {
		q := source.NewQuery("daft punk", 5).Turn(1)

		Convey("When building the request", func() {
			u, err := url.Parse(New().BuildRequest(q))
			So(err, ShouldBeNil)

			Convey("Then it should carry page based parameters", func() {
				So(u.Host, ShouldEqual, "api.dailymotion.com")
				So(u.Path, ShouldEqual, "/videos")
				values := u.Query()
				So(values.Get("sort"), ShouldEqual, "relevance")
				So(values.Get("page"), ShouldEqual, "2")
				So(values.Get("limit"), ShouldEqual, "5")
				So(values.Get("search"), ShouldEqual, "daft punk")
			})
		})
	})
}

func TestParseResults(t *testing.T) {
	s := New()

	Convey("Given a response with two videos", t, func() {
		raw := `{"total":2,"has_more":false,"list":[{"id":"x1","title":"T1"},{"id":"x2","title":"T2"}]}`

		Convey("When parsing it", func() {
			results, more, err := s.ParseResults(raw)

			Convey("Then both videos should be returned in order", func() {
				So(err, ShouldBeNil)
				So(more, ShouldBeFalse)
				So(results, ShouldHaveLength, 2)
				So(results[0].Title(), ShouldEqual, "T1")
				So(results[0].Link(), ShouldEqual, "x1")
				So(results[1].Title(), ShouldEqual, "T2")
				So(results[1].Source().ID(), ShouldEqual, ID)
			})
		})
	})

	Convey("Given a response with zero total", t, func() {
		results, more, err := s.ParseResults(`{"total":0,"has_more":true,"list":[{"id":"x1","title":"stale"}]}`)

		Convey("Then no results should be returned", func() {
			So(err, ShouldBeNil)
			So(results, ShouldBeEmpty)
			So(more, ShouldBeTrue)
		})
	})

	Convey("Given a malformed response", t, func() {
		_, _, err := s.ParseResults(`<html>`)

		Convey("Then a parse error should be returned", func() {
			So(errors.Is(err, source.ErrParse), ShouldBeTrue)
		})
	})
}

func TestResolveURL(t *testing.T) {
	Convey("Given a dailymotion result", t, func() {
		s := New()
		r := source.NewResult("T1", "x1", s)

		Convey("Then it should resolve to the video page", func() {
			link, err := r.Resolve(context.Background())
			So(err, ShouldBeNil)
			So(link, ShouldEqual, "http://www.dailymotion.com/video/x1")
		})
	})
}
