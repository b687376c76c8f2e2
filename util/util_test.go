package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 0, 10), ShouldEqual, 5)
		So(Clamp(-3, 0, 10), ShouldEqual, 0)
		So(Clamp(15, 0, 10), ShouldEqual, 10)
		So(Clamp(2.5, 0.0, 1.0), ShouldEqual, 1.0)
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
		So(Quantify(0, "file", "files"), ShouldEqual, "0 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize("Hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}
