package mpv

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTimeArithmetic(t *testing.T) {
	Convey("Time arithmetic", t, func() {
		So(Seconds(30).Add(Seconds(15)), ShouldEqual, Seconds(45))
		So(Minutes(2).Sub(Seconds(30)), ShouldEqual, Seconds(90))
		So(Seconds(5).Neg(), ShouldEqual, Seconds(-5))
		So(Seconds(30).Ratio(Minutes(1)), ShouldEqual, 0.5)
		So(Minutes(1).Div(4), ShouldEqual, Seconds(15))
		So(Minutes(1.5).Seconds(), ShouldEqual, 90.0)
	})
}

func TestTimeMMSS(t *testing.T) {
	Convey("MMSS", t, func() {
		Convey("Should format whole minutes", func() {
			So(Minutes(2).MMSS(), ShouldEqual, "2:00")
		})
		Convey("Should zero-pad seconds", func() {
			So(Seconds(65).MMSS(), ShouldEqual, "1:05")
		})
		Convey("Should floor fractional seconds", func() {
			So(Seconds(59.9).MMSS(), ShouldEqual, "0:59")
		})
		Convey("Should not overflow past an hour", func() {
			So(Minutes(90).MMSS(), ShouldEqual, "90:00")
		})
		Convey("Should handle zero", func() {
			So(Zero.MMSS(), ShouldEqual, "0:00")
		})
	})
}
