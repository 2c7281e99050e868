package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()
		So(API().Name(), ShouldEqual, "MemMapFS")

		Convey("Files written through GacheFs should be visible to API", func() {
			fs := GacheFs{}
			So(fs.MkdirAll("cache", 0o755), ShouldBeNil)

			f, err := fs.OpenFile("cache/entry.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte(`{"a":1}`))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile("cache/entry.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"a":1}`)
		})

		Convey("SetMemMapFs should start empty", func() {
			So(API().WriteFile("x", []byte("1"), 0o644), ShouldBeNil)
			SetMemMapFs()
			exists, _ := API().Exists("x")
			So(exists, ShouldBeFalse)
		})
	})

	Convey("SetOsFs should restore the real filesystem", t, func() {
		SetOsFs()
		defer SetMemMapFs()
		So(API().Name(), ShouldEqual, "OsFs")
	})
}
