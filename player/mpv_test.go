package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/key"
)

func TestArgs(t *testing.T) {
	Convey("Given an mpv backend with video", t, func() {
		viper.Set(key.PlayerVideo, true)
		m := NewMPV()

		Convey("When building arguments", func() {
			args, err := m.Args("http://www.youtube.com/v/abc", "Some\ttitle\n")

			Convey("Then the fixed flags, title and target should be present", func() {
				So(err, ShouldBeNil)
				So(args, ShouldResemble, []string{
					"--really-quiet",
					"--no-lirc",
					"--no-cache",
					"--force-media-title=Some title",
					"--",
					"http://www.youtube.com/v/abc",
				})
			})
		})

		Convey("When video is toggled off", func() {
			So(m.ToggleVideo(), ShouldBeFalse)
			args, err := m.Args("http://x/y.mp3", "")

			Convey("Then --no-video should be passed", func() {
				So(err, ShouldBeNil)
				So(args, ShouldContain, "--no-video")
				So(args, ShouldNotContain, "--force-media-title=")
			})
		})

		Convey("When the target is unsafe", func() {
			for _, target := range []string{"", "--script=evil.lua", "file:///etc/passwd", "http://a\nb"} {
				_, err := m.Args(target, "t")
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestNewBackend(t *testing.T) {
	Convey("Given the configured player", t, func() {
		Convey("When it is mpv", func() {
			viper.Set(key.Player, "mpv")
			b, err := NewBackend()

			Convey("Then an mpv backend should be returned", func() {
				So(err, ShouldBeNil)
				_, ok := b.(*MPV)
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When it is unknown", func() {
			viper.Set(key.Player, "vlc")
			Reset(func() { viper.Set(key.Player, "mpv") })
			_, err := NewBackend()

			Convey("Then an error should be returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
