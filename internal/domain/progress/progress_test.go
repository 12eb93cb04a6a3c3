package progress_test

import (
	"testing"

	"github.com/okian/alumnihub/internal/domain/progress"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDonation(t *testing.T) {
	Convey("Given donation progress", t, func() {
		Convey("When the scholarship fund raised 347500 of 500000", func() {
			p := progress.Donation(347_500, 500_000)

			Convey("Then it rounds to 70 percent", func() {
				So(p, ShouldAlmostEqual, 69.5, 0.0001)
				So(progress.Round(p), ShouldEqual, 70)
			})
		})

		Convey("When the goal is exceeded", func() {
			Convey("Then progress is clamped to 100", func() {
				So(progress.Donation(750, 500), ShouldEqual, 100)
			})
		})

		Convey("When the goal is zero or negative", func() {
			Convey("Then progress is zero", func() {
				So(progress.Donation(100, 0), ShouldEqual, 0)
				So(progress.Donation(100, -5), ShouldEqual, 0)
			})
		})

		Convey("When nothing was raised", func() {
			Convey("Then progress is zero", func() {
				So(progress.Donation(0, 500), ShouldEqual, 0)
			})
		})
	})
}

func TestRegistration(t *testing.T) {
	Convey("Given registration progress", t, func() {
		Convey("When 45 of 50 seats are taken", func() {
			Convey("Then it is 90 percent", func() {
				So(progress.Round(progress.Registration(45, 50)), ShouldEqual, 90)
			})
		})

		Convey("When attendance exceeds capacity", func() {
			Convey("Then the value is not clamped", func() {
				So(progress.Registration(60, 50), ShouldEqual, 120)
			})
		})

		Convey("When capacity is zero", func() {
			Convey("Then progress is zero", func() {
				So(progress.Registration(10, 0), ShouldEqual, 0)
			})
		})
	})
}

func TestShare(t *testing.T) {
	Convey("Given a distribution", t, func() {
		Convey("When computing a slice share", func() {
			Convey("Then it keeps one decimal", func() {
				So(progress.Share(385, 1040), ShouldEqual, 37.0)
				So(progress.Share(1, 3), ShouldEqual, 33.3)
			})
		})

		Convey("When the total is zero", func() {
			Convey("Then the share is zero", func() {
				So(progress.Share(5, 0), ShouldEqual, 0)
			})
		})
	})
}
