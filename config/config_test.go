package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should carry the transport defaults", func() {
			_ = Setup()
			So(viper.GetInt(key.NetworkRetries), ShouldEqual, 3)
			So(viper.GetInt(key.NetworkTimeout), ShouldEqual, 7)
			So(viper.GetInt(key.NetworkBackoff), ShouldEqual, 1000)
			So(viper.GetInt(key.SearchResultsPerPage), ShouldEqual, 5)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("network.user_agent")
			So(result, ShouldEqual, "network_user_agent")
		})
	})
}

func TestFields(t *testing.T) {
	Convey("Fields should be sorted by key", t, func() {
		fields := Fields()
		So(len(fields), ShouldEqual, len(Default))
		for i := 1; i < len(fields); i++ {
			So(fields[i-1].Key, ShouldBeLessThan, fields[i].Key)
		}
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.NetworkRetries]

		Convey("Env should be prefixed and upper-cased", func() {
			So(field.Env(), ShouldEqual, "WEBIFY_NETWORK_RETRIES")
		})

		Convey("Parse should convert to the default's type", func() {
			v, err := field.Parse([]string{"5"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 5)

			_, err = field.Parse([]string{"five"})
			So(err, ShouldNotBeNil)

			_, err = field.Parse(nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Parse should split list values on commas", func() {
			sources := Default[key.DefaultSources]
			v, err := sources.Parse([]string{"dm,yt", "pleer"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"dm", "yt", "pleer"})
		})

		Convey("Parse should accept booleans", func() {
			video := Default[key.PlayerVideo]
			v, err := video.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("typeName should describe the default value", func() {
			So(field.typeName(), ShouldEqual, "int")
			slice := Default[key.DefaultSources]
			So(slice.typeName(), ShouldEqual, "[]string")
		})
	})
}
