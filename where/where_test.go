package where

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/couchpad-app/couchpad/filesystem"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("SkipSegments()", func() {
			So(SkipSegments(), ShouldStartWith, Cache())
			So(SkipSegments(), ShouldEndWith, "skip_segments.json")
		})

		Convey("DefaultPlayerSocket()", func() {
			So(strings.HasSuffix(DefaultPlayerSocket(), "mpv.sock"), ShouldBeTrue)
		})
	})
}

func TestConfigOverride(t *testing.T) {
	Convey("Config path override", t, func() {
		t.Setenv(EnvConfigPath, "/custom/config")
		So(Config(), ShouldEqual, "/custom/config")
	})
}
