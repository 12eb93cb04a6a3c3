package format_test

import (
	"testing"

	"github.com/okian/alumnihub/pkg/format"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUSD(t *testing.T) {
	Convey("Given dollar amounts", t, func() {
		Convey("Then they are grouped without cents", func() {
			So(format.USD(347500), ShouldEqual, "$347,500")
			So(format.USD(75000), ShouldEqual, "$75,000")
			So(format.USD(999), ShouldEqual, "$999")
			So(format.USD(0), ShouldEqual, "$0")
		})

		Convey("Then negative amounts carry a leading sign", func() {
			So(format.USD(-1200), ShouldEqual, "-$1,200")
		})
	})
}

func TestCount(t *testing.T) {
	Convey("Given counts", t, func() {
		Convey("Then they are grouped", func() {
			So(format.Count(1247), ShouldEqual, "1,247")
			So(format.Count(23), ShouldEqual, "23")
		})
	})
}
