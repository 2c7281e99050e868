package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/webify-cli/webify/filesystem"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("Given playlist names", t, func() {
		cases := map[string]string{
			"late night":        "late_night",
			"a/b\\c":            "a_b_c",
			"  --mix: vol. 2--": "mix_vol._2",
			"what?!":            "what",
		}

		Convey("Then they should become safe file names", func() {
			for name, want := range cases {
				So(SanitizeFilename(name), ShouldEqual, want)
			}
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.txt"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a file on the filesystem", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().MkdirAll("dir", 0o755), ShouldBeNil)
		So(filesystem.API().WriteFile("dir/file.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("When deleting its directory", func() {
			So(Delete("dir"), ShouldBeNil)

			Convey("Then nothing remains", func() {
				exists, _ := filesystem.API().Exists("dir/file.json")
				So(exists, ShouldBeFalse)
			})
		})

		Convey("Deleting a missing path should fail", func() {
			So(Delete("missing"), ShouldNotBeNil)
		})
	})
}
