package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		Convey("When remembering queries", func() {
			So(Remember("pink floyd", 1), ShouldBeNil)
			So(Remember("pink panther", 10), ShouldBeNil)

			Convey("Then suggestions should be sorted by rank", func() {
				s := SuggestMany("pink")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
				So(s[0], ShouldEqual, "pink panther")
			})

			Convey("Then a remembered query is suggested after a cached lookup", func() {
				So(SuggestMany("floyd"), ShouldContain, "pink floyd")
				So(Remember("floyd live", 1), ShouldBeNil)
				So(SuggestMany("floyd"), ShouldContain, "floyd live")
			})
		})

		Convey("Suggest should be empty when suggestions are disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)
			So(Suggest("pink").IsAbsent(), ShouldBeTrue)
		})

		Convey("Input should be trimmed and lowercased", func() {
			So(normalize("  Pink FLOYD  "), ShouldEqual, "pink floyd")
		})
	})
}
