package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/network"
	"github.com/webify-cli/webify/source"
)

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting a provider by id", t, func() {
		p, ok := Get("yt")
		Convey("Then it should be found by id and name alike", func() {
			So(ok, ShouldBeTrue)
			So(p.Name, ShouldEqual, "YouTube")

			byName, ok := Get("YouTube")
			So(ok, ShouldBeTrue)
			So(byName.ID, ShouldEqual, p.ID)
		})
	})
}

func TestBuiltins(t *testing.T) {
	Convey("Given the built-in providers", t, func() {
		providers := Builtins()

		Convey("Then they should be registered in a fixed order", func() {
			ids := make([]string, 0, len(providers))
			for _, p := range providers {
				ids = append(ids, p.ID)
			}
			So(ids, ShouldResemble, []string{"dm", "yt", "pleer"})
		})

		Convey("Then each should create a source with a matching id", func() {
			var fetcher source.Fetcher = network.New()
			for _, p := range providers {
				src := p.CreateSource(fetcher)
				So(src.ID(), ShouldEqual, p.ID)
				So(src.Name(), ShouldEqual, p.Name)
			}
		})
	})
}

func TestEnabled(t *testing.T) {
	Convey("Given no default sources", t, func() {
		viper.Set(key.DefaultSources, []string{})
		Reset(func() { viper.Set(key.DefaultSources, []string{}) })

		Convey("Then every provider should be enabled", func() {
			So(Enabled(), ShouldHaveLength, len(Builtins()))
		})

		Convey("When restricting to pleer and an unknown id", func() {
			viper.Set(key.DefaultSources, []string{"pleer", "vimeo"})

			Convey("Then only pleer should be enabled", func() {
				enabled := Enabled()
				So(enabled, ShouldHaveLength, 1)
				So(enabled[0].ID, ShouldEqual, "pleer")
			})
		})
	})
}
