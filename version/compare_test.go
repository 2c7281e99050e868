package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given pairs of versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.1.0", "0.1.0", 0},
			{"v0.2.0", "0.1.9", 1},
			{"1.0.0", "1.0.1", -1},
			{"2.0.0", "v10.0.0", -1},
			{"v1.2.3-rc1", "1.2.3", 0},
		}

		Convey("Then they should compare semantically", func() {
			for _, c := range cases {
				got, err := Compare(c.a, c.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			}
		})

		Convey("Then malformed versions should fail", func() {
			_, err := Compare("latest", "0.1.0")
			So(err, ShouldNotBeNil)
			_, err = Compare("0.1.0", "1.2")
			So(err, ShouldNotBeNil)
		})
	})
}
