package overlay

import (
	"testing"

	"github.com/spf13/viper"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/mpv"
	"github.com/couchpad-app/couchpad/sponsorblock"
)

func TestSkipSegments(t *testing.T) {
	Convey("Automatic segment skipping", t, func() {
		app, server, _ := newTestApp()
		viper.Set(key.SponsorblockEnable, true)

		app.segments = []sponsorblock.Segment{
			{Bounds: [2]mpv.Time{30, 90}, Category: "sponsor"},
		}

		Convey("Should jump past an entered segment and toast", func() {
			server.PublishProperty("time-pos", 45.0)
			So(app.Mpv.ObserveProperty("time-pos"), ShouldBeNil)

			_, err := app.Tick()
			So(err, ShouldBeNil)

			sets := server.CommandsNamed("set_property")
			So(sets, ShouldHaveLength, 1)
			So(sets[0][1], ShouldEqual, "time-pos")
			So(sets[0][2], ShouldEqual, 90.0)

			So(app.Toasts(), ShouldHaveLength, 1)
			So(app.Toasts()[0].Toast, ShouldResemble, SegmentSkippedToast{Label: "Sponsor"})
		})

		Convey("Should leave the position alone outside segments", func() {
			server.PublishProperty("time-pos", 10.0)
			So(app.Mpv.ObserveProperty("time-pos"), ShouldBeNil)

			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(server.CommandsNamed("set_property"), ShouldBeEmpty)
			So(app.Toasts(), ShouldBeEmpty)
		})

		Convey("Should yield to an interactive seek", func() {
			server.PublishProperty("time-pos", 45.0)
			So(app.Mpv.ObserveProperty("time-pos"), ShouldBeNil)
			app.ChangeView(SeekingView{})

			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(server.CommandsNamed("set_property"), ShouldBeEmpty)
			So(app.Toasts(), ShouldBeEmpty)
		})

		Convey("Should drop segments when the playing file changes", func() {
			server.PublishProperty("path", "/media/movie.mkv")

			// First tick subscribes to path, second applies the change.
			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(app.segments, ShouldNotBeEmpty)

			_, err = app.Tick()
			So(err, ShouldBeNil)
			So(app.segments, ShouldBeEmpty)
			So(app.segmentsPath, ShouldEqual, "/media/movie.mkv")
		})

		Convey("Should not adopt a result for a file no longer playing", func() {
			app.segmentsPath = "/media/other.mkv"
			app.segments = nil
			app.segmentsC <- segmentsResult{
				path:     "/media/movie.mkv",
				segments: []sponsorblock.Segment{{Bounds: [2]mpv.Time{0, 5}}},
			}

			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(app.segments, ShouldBeEmpty)
		})

		Convey("Should never block a lookup on a full result slot", func() {
			app.segmentsC <- segmentsResult{path: "/media/first.mkv"}
			app.deliverSegments(segmentsResult{path: "/media/second.mkv"})

			result := <-app.segmentsC
			So(result.path, ShouldEqual, "/media/first.mkv")
			So(app.segmentsC, ShouldBeEmpty)
		})

		Convey("Should do nothing when disabled", func() {
			viper.Set(key.SponsorblockEnable, false)
			server.PublishProperty("time-pos", 45.0)
			So(app.Mpv.ObserveProperty("time-pos"), ShouldBeNil)

			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(server.CommandsNamed("set_property"), ShouldBeEmpty)
		})
	})
}
