package overlay

import (
	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/log"
	"github.com/couchpad-app/couchpad/mpv"
)

// Command is one action a button press can trigger. Which command a button
// maps to depends on the current view.
type Command int

const (
	None Command = iota

	ShowMiniSeek
	ShowUi
	HideUi
	ShowMediaMenu
	ShowHomeMenu
	ShowCharacters

	FocusUp
	FocusDown
	FocusLeft
	FocusRight
	Activate

	TogglePause

	StartSeeking
	SeekBackward
	SeekForward
	SeekBackwardStateless
	SeekForwardStateless
	DoneSeeking
	CancelSeeking
	SeekFaster
	SeekSlower
	SeekExact

	VolumeUp
	VolumeDown

	Quit
)

// Label returns the prompt text for the command. Some labels reflect live
// player state, e.g. TogglePause reads as the action it would perform.
func (cmd Command) Label(app *App) string {
	switch cmd {
	case None:
		return "(none)"

	case ShowMiniSeek:
		return "Show position"
	case ShowUi:
		return "Show UI"
	case HideUi:
		return "Hide UI"
	case ShowMediaMenu:
		return "Media Menu"
	case ShowHomeMenu:
		return "Home Menu"
	case ShowCharacters:
		return "Characters"

	case FocusUp, FocusDown, FocusLeft, FocusRight:
		return "Move Focus"
	case Activate:
		return "Activate"

	case TogglePause:
		if mpv.PropertyCached[bool](app.Mpv, "pause").OrElse(false) {
			return "Play"
		}
		return "Pause"

	case StartSeeking:
		return "Seek"
	case SeekBackward, SeekBackwardStateless:
		return "Seek Backward"
	case SeekForward, SeekForwardStateless:
		return "Seek Forward"
	case DoneSeeking:
		return "Done"
	case CancelSeeking:
		return "Cancel"
	case SeekFaster:
		return "Faster"
	case SeekSlower:
		return "Slower"
	case SeekExact:
		if app.Mpv.SeekExact() {
			return "Keyframes"
		}
		return "Exact"

	case VolumeUp:
		return "Volume Up"
	case VolumeDown:
		return "Volume Down"

	case Quit:
		return "Quit"
	}

	return "(none)"
}

// ShowPrompt reports whether the command earns a spot in the button prompt
// bar. Movement and the stateless seeks are too noisy to advertise.
func (cmd Command) ShowPrompt() bool {
	switch cmd {
	case None,
		ShowUi,
		SeekBackward, SeekForward,
		SeekBackwardStateless, SeekForwardStateless,
		FocusUp, FocusDown, FocusLeft, FocusRight,
		Activate:
		return false
	}
	return true
}

// Execute runs the command against the application. Player protocol errors
// are fatal and propagate, except for CancelSeeking which stays best-effort
// so a broken restore cannot strand the user in the seeking view.
func (cmd Command) Execute(app *App) error {
	switch cmd {
	case None:

	case ShowMiniSeek:
		// Pressing "show position" while it is already up hides it again.
		if _, ok := app.view.(MiniSeekView); ok {
			app.ChangeView(HiddenView{})
		} else {
			app.ChangeView(MiniSeekView{})
		}
	case ShowUi:
		app.ChangeView(SeekBarView{})
	case HideUi:
		app.ChangeView(HiddenView{})
	case ShowMediaMenu:
		app.ChangeView(MediaMenuView{})
	case ShowHomeMenu:
		app.ChangeView(HomeMenuView{})
	case ShowCharacters:
		app.ChangeView(CharactersView{})

	case FocusUp:
		app.surface.MoveFocus(DirUp)
	case FocusDown:
		app.surface.MoveFocus(DirDown)
	case FocusLeft:
		app.surface.MoveFocus(DirLeft)
	case FocusRight:
		app.surface.MoveFocus(DirRight)
	case Activate:
		app.surface.Activate()

	case TogglePause:
		return app.Mpv.CycleProperty("pause")

	case StartSeeking:
		if err := app.Mpv.StartSeek(); err != nil {
			return err
		}
		app.ChangeView(SeekingView{})
	case SeekForward:
		return app.Mpv.SeekForward()
	case SeekBackward:
		return app.Mpv.SeekBackward()
	case SeekForwardStateless:
		return app.Mpv.SeekStateless(statelessSeekDistance(), false)
	case SeekBackwardStateless:
		return app.Mpv.SeekStateless(statelessSeekDistance().Neg(), false)
	case DoneSeeking:
		app.ChangeView(SeekBarView{})
		return app.Mpv.FinishSeek()
	case CancelSeeking:
		app.ChangeView(SeekBarView{})
		if err := app.Mpv.CancelSeek(); err != nil {
			log.Warnf("cancel seek: %v", err)
		}
	case SeekFaster:
		app.Mpv.SeekFaster()
	case SeekSlower:
		app.Mpv.SeekSlower()
	case SeekExact:
		app.Mpv.ToggleSeekExact()

	case VolumeUp:
		return app.changeVolume(viper.GetFloat64(key.DlnaVolumeStep))
	case VolumeDown:
		return app.changeVolume(-viper.GetFloat64(key.DlnaVolumeStep))

	case Quit:
		app.quit = true
	}

	return nil
}

func statelessSeekDistance() mpv.Time {
	return mpv.Seconds(viper.GetFloat64(key.OverlayStatelessSeek))
}
