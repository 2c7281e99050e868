package history

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/source"
)

type testSource struct{}

func (testSource) ID() string                       { return "test" }
func (testSource) Name() string                     { return "Test" }
func (testSource) BuildRequest(source.Query) string { panic("") }

func (testSource) ParseResults(string) ([]*source.Result, bool, error) {
	panic("")
}

func (testSource) ResolveURL(context.Context, *source.Result) (string, error) {
	panic("")
}

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a result", t, func() {
		result := source.NewResult("Aerodynamic", "abc", testSource{})

		Convey("When saving it twice", func() {
			So(Save(result, "http://cdn/abc.mp3"), ShouldBeNil)
			So(Save(result, "http://cdn/abc.mp3"), ShouldBeNil)

			Convey("Then one record with two plays should be kept", func() {
				records, err := Get()
				So(err, ShouldBeNil)

				record, ok := records["abc (test)"]
				So(ok, ShouldBeTrue)
				So(record.Title, ShouldEqual, "Aerodynamic")
				So(record.StreamURL, ShouldEqual, "http://cdn/abc.mp3")
				So(record.Plays, ShouldBeGreaterThanOrEqualTo, 2)
			})

			Convey("And saving another result", func() {
				So(Save(source.NewResult("Genesis", "def", testSource{}), "http://cdn/def.mp3"), ShouldBeNil)

				Convey("Then it should come first in recent order", func() {
					recent, err := Recent()
					So(err, ShouldBeNil)
					So(recent[0].Title, ShouldEqual, "Genesis")
				})

				Convey("And removing it", func() {
					recent, _ := Recent()
					So(Remove(recent[0]), ShouldBeNil)

					Convey("Then it should be gone", func() {
						records, err := Get()
						So(err, ShouldBeNil)
						_, ok := records["def (test)"]
						So(ok, ShouldBeFalse)
					})
				})
			})
		})
	})
}
