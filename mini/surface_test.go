package mini

import (
	"testing"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/couchpad-app/couchpad/gamepad"
	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/mpv"
	"github.com/couchpad-app/couchpad/mpv/mpvtest"
	"github.com/couchpad-app/couchpad/overlay"
)

func newTestModel() (*model, *mpvtest.Server) {
	viper.Set(key.DlnaVolumeStep, 5)

	server := mpvtest.NewServer()
	server.PublishProperty("percent-pos", 25.0)
	server.PublishProperty("pause", false)

	backend := &keyboardBackend{}
	app := overlay.New(mpv.NewClient(server), gamepad.NewReader(backend), nil)

	m := newModel(app, backend)
	app.SetSurface(m.surface)
	return m, server
}

func loadPlaylist(m *model, server *mpvtest.Server) {
	So(m.app.Mpv.ObserveProperty("playlist"), ShouldBeNil)
	server.PublishProperty("playlist", []map[string]any{
		{"filename": "/media/ep1.mkv", "title": "Episode 1", "current": true},
		{"filename": "/media/ep2.mkv", "title": "Episode 2"},
	})
	So(m.app.Mpv.Update(), ShouldBeNil)
}

func TestMenuRows(t *testing.T) {
	Convey("menuRows", t, func() {
		m, server := newTestModel()

		Convey("Should be empty outside menus", func() {
			So(menuRows(m.app), ShouldBeEmpty)

			m.app.ChangeView(overlay.SeekBarView{})
			So(menuRows(m.app), ShouldBeEmpty)
		})

		Convey("Should list the media submenus at the menu root", func() {
			m.app.ChangeView(overlay.MediaMenuView{})

			rows := menuRows(m.app)
			So(rows, ShouldHaveLength, 5)
			So(rows[0].label, ShouldEqual, "Info")
			So(rows[4].label, ShouldEqual, "Volume")
			So(rows[4].enabled, ShouldBeTrue)
		})

		Convey("Should disable submenus with nothing to show", func() {
			m.app.ChangeView(overlay.MediaMenuView{})

			rows := menuRows(m.app)
			So(rows[1].label, ShouldEqual, "Playlist")
			So(rows[1].enabled, ShouldBeFalse)
		})

		Convey("Should list playlist entries in the playlist submenu", func() {
			loadPlaylist(m, server)
			m.app.ChangeView(overlay.MediaMenuView{Submenu: mo.Some(overlay.MediaPlaylist)})

			rows := menuRows(m.app)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].label, ShouldEqual, "Episode 1")
			So(rows[1].label, ShouldEqual, "Episode 2")
		})

		Convey("Should offer the player volume slider without DLNA", func() {
			m.app.ChangeView(overlay.MediaMenuView{Submenu: mo.Some(overlay.MediaVolume)})

			rows := menuRows(m.app)
			So(rows, ShouldHaveLength, 1)
			So(rows[0].label, ShouldEqual, "mpv")
			So(rows[0].adjust, ShouldNotBeNil)
		})
	})
}

func TestApplySurface(t *testing.T) {
	Convey("applySurface", t, func() {
		m, server := newTestModel()
		m.app.ChangeView(overlay.MediaMenuView{})

		Convey("Should move focus with clamping", func() {
			m.surface.MoveFocus(overlay.DirDown)
			m.surface.MoveFocus(overlay.DirDown)
			m.applySurface()
			So(m.focus, ShouldEqual, 2)

			for range 10 {
				m.surface.MoveFocus(overlay.DirDown)
			}
			m.applySurface()
			So(m.focus, ShouldEqual, 4)

			for range 10 {
				m.surface.MoveFocus(overlay.DirUp)
			}
			m.applySurface()
			So(m.focus, ShouldEqual, 0)
		})

		Convey("Should open a submenu on activation", func() {
			for range 4 {
				m.surface.MoveFocus(overlay.DirDown)
			}
			m.surface.Activate()
			m.applySurface()

			So(m.app.View(), ShouldResemble,
				overlay.MediaMenuView{Submenu: mo.Some(overlay.MediaVolume)})
			So(m.focus, ShouldEqual, 0)
		})

		Convey("Should not activate a disabled row", func() {
			m.surface.MoveFocus(overlay.DirDown) // Playlist, empty here
			m.surface.Activate()
			m.applySurface()

			So(m.app.View(), ShouldResemble, overlay.MediaMenuView{})
		})

		Convey("Should select a playlist entry", func() {
			loadPlaylist(m, server)
			m.app.ChangeView(overlay.MediaMenuView{Submenu: mo.Some(overlay.MediaPlaylist)})

			m.surface.MoveFocus(overlay.DirDown)
			m.surface.Activate()
			m.applySurface()

			sets := server.CommandsNamed("set_property")
			last := sets[len(sets)-1]
			So(last[1], ShouldEqual, "playlist-pos")
			So(last[2], ShouldEqual, 1.0)
		})

		Convey("Should adjust the focused volume slider with left/right", func() {
			m.app.ChangeView(overlay.MediaMenuView{Submenu: mo.Some(overlay.MediaVolume)})
			m.focus = 0

			m.surface.MoveFocus(overlay.DirRight)
			m.surface.MoveFocus(overlay.DirLeft)
			m.applySurface()

			adds := server.CommandsNamed("add")
			So(adds, ShouldHaveLength, 2)
			So(adds[0][2], ShouldEqual, 5.0)
			So(adds[1][2], ShouldEqual, -5.0)
		})

		Convey("Should reset collected commands after applying", func() {
			m.surface.MoveFocus(overlay.DirDown)
			m.applySurface()
			m.applySurface()
			So(m.focus, ShouldEqual, 1)
		})
	})
}
