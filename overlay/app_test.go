package overlay

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/couchpad-app/couchpad/gamepad"
	"github.com/couchpad-app/couchpad/key"
)

func TestTick(t *testing.T) {
	Convey("Tick", t, func() {
		app, server, backend := newTestApp()

		Convey("Should idle without input", func() {
			result, err := app.Tick()
			So(err, ShouldBeNil)
			So(result, ShouldEqual, TickContinue)
			So(app.View(), ShouldResemble, HiddenView{})
		})

		Convey("Should run pressed buttons through the current table", func() {
			backend.push(press(gamepad.South))

			result, err := app.Tick()
			So(err, ShouldBeNil)
			So(result, ShouldEqual, TickContinue)
			So(app.View(), ShouldResemble, SeekBarView{})
		})

		Convey("Should execute presses in order within one tick", func() {
			backend.push(press(gamepad.South), press(gamepad.East))

			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(app.View(), ShouldResemble, SeekingView{})
			So(server.CommandsNamed("set_property"), ShouldNotBeEmpty)
		})

		Convey("Should hide a transient view after inactivity", func() {
			viper.Set(key.OverlayMiniSeekHide, 0)
			app.ChangeView(MiniSeekView{})
			time.Sleep(time.Millisecond)

			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(app.View(), ShouldResemble, HiddenView{})
		})

		Convey("Should keep an interactive view up regardless of inactivity", func() {
			app.ChangeView(MediaMenuView{})
			time.Sleep(time.Millisecond)

			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(app.View(), ShouldResemble, MediaMenuView{})
		})
	})
}

func TestTickNotices(t *testing.T) {
	Convey("Connection notices during Tick", t, func() {
		app, _, backend := newTestApp()

		Convey("A connect should toast", func() {
			backend.push(gamepad.RawEvent{Kind: gamepad.Connected, Pad: 0, Name: "DualShock"})

			_, err := app.Tick()
			So(err, ShouldBeNil)

			toasts := app.Toasts()
			So(toasts, ShouldHaveLength, 1)
			So(toasts[0].Toast, ShouldResemble, GamepadConnectedToast{Name: "DualShock"})
		})

		Convey("Losing the last used pad should hide the overlay", func() {
			app.ChangeView(SeekBarView{})

			// Use the pad on a button the seek bar leaves unbound.
			backend.push(press(gamepad.West))
			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(app.View(), ShouldResemble, SeekBarView{})

			backend.push(gamepad.RawEvent{Kind: gamepad.Disconnected, Pad: 0, Name: "DualShock"})
			_, err = app.Tick()
			So(err, ShouldBeNil)

			So(app.View(), ShouldResemble, HiddenView{})
			So(app.Toasts(), ShouldHaveLength, 1)
			So(app.Toasts()[0].Toast, ShouldResemble, LastGamepadDisconnectedToast{})
		})

		Convey("Losing the last pad while hidden should stay quiet", func() {
			backend.push(press(gamepad.West))
			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(app.View(), ShouldResemble, SeekBarView{})

			So(HideUi.Execute(app), ShouldBeNil)

			backend.push(gamepad.RawEvent{Kind: gamepad.Disconnected, Pad: 0, Name: "DualShock"})
			_, err = app.Tick()
			So(err, ShouldBeNil)
			So(app.Toasts(), ShouldBeEmpty)
		})
	})
}

func TestToasts(t *testing.T) {
	Convey("Toasts", t, func() {
		app, _, _ := newTestApp()

		now := time.Now()
		app.now = func() time.Time { return now }

		app.SpawnToast(GamepadConnectedToast{Name: "DualShock"})
		So(app.Toasts(), ShouldHaveLength, 1)

		Convey("Should survive while fresh", func() {
			now = now.Add(2 * time.Second)
			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(app.Toasts(), ShouldHaveLength, 1)
		})

		Convey("Should be pruned after their lifetime", func() {
			now = now.Add(6 * time.Second)
			_, err := app.Tick()
			So(err, ShouldBeNil)
			So(app.Toasts(), ShouldBeEmpty)
		})

		Convey("Should expose a message", func() {
			So(app.Toasts()[0].Toast.Message(), ShouldContainSubstring, "DualShock")
		})
	})
}

func TestReanchorSubtitles(t *testing.T) {
	Convey("ReanchorSubtitles", t, func() {
		app, server, _ := newTestApp()

		Convey("Should move subtitles above the overlay", func() {
			viper.Set(key.OverlaySubtitleReanchor, true)
			app.ReanchorSubtitles(0.8)

			sets := server.CommandsNamed("set_property")
			So(sets, ShouldHaveLength, 1)
			So(sets[0][1], ShouldEqual, "sub-pos")
			So(sets[0][2], ShouldEqual, 80.0)

			Convey("Skipping redundant updates", func() {
				app.ReanchorSubtitles(0.8)
				So(server.CommandsNamed("set_property"), ShouldHaveLength, 1)
			})
		})

		Convey("Should do nothing when disabled", func() {
			viper.Set(key.OverlaySubtitleReanchor, false)
			app.ReanchorSubtitles(0.8)
			So(server.Commands(), ShouldBeEmpty)
		})
	})
}
