package overlay

import (
	"time"

	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/mpv"
)

// View is one state of the overlay. Exactly one view is current at a time,
// it owns the complete button table and the auto-hide policy for that state.
//
// The set of views is closed: the marker method keeps implementations inside
// this package so a switch over the concrete types can be exhaustive.
type View interface {
	Actions() Actions
	ShowPrompts() bool
	HideOnInactive() mo.Option[time.Duration]

	view()
}

// HiddenView is the default state: nothing on screen, but buttons still
// control playback.
type HiddenView struct{}

// MiniSeekView shows only a thin progress sliver along the screen bottom.
type MiniSeekView struct{}

// SeekBarView shows title, position and the seek bar.
type SeekBarView struct{}

// SeekingView is the interactive seek state backed by the player's seek
// session.
type SeekingView struct{}

// MediaMenuView lists playback-related submenus for the current media.
type MediaMenuView struct {
	Submenu mo.Option[MediaSubmenu]
}

// HomeMenuView lists device-level submenus.
type HomeMenuView struct {
	Submenu mo.Option[HomeSubmenu]
}

// CharactersView shows the prompt font's glyph table. Debug aid for picking
// button glyphs.
type CharactersView struct{}

func (HiddenView) view() {}
func (MiniSeekView) view() {}
func (SeekBarView) view() {}
func (SeekingView) view() {}
func (MediaMenuView) view() {}
func (HomeMenuView) view() {}
func (CharactersView) view() {}

func (HiddenView) Actions() Actions {
	return Actions{
		A:      StartSeeking,
		B:      ShowUi,
		X:      TogglePause,
		Y:      ShowUi,
		Up:     VolumeUp,
		Down:   VolumeDown,
		Left:   SeekBackwardStateless,
		Right:  SeekForwardStateless,
		L2:     ShowCharacters,
		Select: ShowMiniSeek,
		Start:  ShowMediaMenu,
		Home:   ShowHomeMenu,
	}
}

func (HiddenView) ShowPrompts() bool { return false }

func (HiddenView) HideOnInactive() mo.Option[time.Duration] { return mo.None[time.Duration]() }

func (MiniSeekView) Actions() Actions {
	return HiddenView{}.Actions()
}

func (MiniSeekView) ShowPrompts() bool { return false }

func (MiniSeekView) HideOnInactive() mo.Option[time.Duration] {
	return mo.Some(time.Duration(viper.GetInt(key.OverlayMiniSeekHide)) * time.Second)
}

func (SeekBarView) Actions() Actions {
	return Actions{
		A:     StartSeeking,
		B:     HideUi,
		X:     TogglePause,
		Left:  SeekBackwardStateless,
		Right: SeekForwardStateless,
		Start: ShowMediaMenu,
		Home:  ShowHomeMenu,
	}
}

func (SeekBarView) ShowPrompts() bool { return true }

func (SeekBarView) HideOnInactive() mo.Option[time.Duration] {
	return mo.Some(time.Duration(viper.GetInt(key.OverlaySeekBarHide)) * time.Second)
}

func (SeekingView) Actions() Actions {
	return Actions{
		A:     DoneSeeking,
		B:     CancelSeeking,
		Y:     SeekExact,
		Up:    SeekFaster,
		Down:  SeekSlower,
		Left:  SeekBackward,
		Right: SeekForward,
	}
}

func (SeekingView) ShowPrompts() bool { return true }

func (SeekingView) HideOnInactive() mo.Option[time.Duration] { return mo.None[time.Duration]() }

func (v MediaMenuView) Actions() Actions {
	back := HideUi
	if v.Submenu.IsPresent() {
		back = ShowMediaMenu
	}

	// A submenu that consumes left/right (the volume sliders) takes the
	// dpad for focus movement, otherwise left/right keep nudging playback.
	left, right := SeekBackwardStateless, SeekForwardStateless
	if sub, ok := v.Submenu.Get(); ok && sub.CatchesLeftRight() {
		left, right = FocusLeft, FocusRight
	}

	return Actions{
		A:     Activate,
		B:     back,
		X:     TogglePause,
		Up:    FocusUp,
		Down:  FocusDown,
		Left:  left,
		Right: right,
		Start: HideUi,
	}
}

func (MediaMenuView) ShowPrompts() bool { return true }

func (MediaMenuView) HideOnInactive() mo.Option[time.Duration] { return mo.None[time.Duration]() }

func (v HomeMenuView) Actions() Actions {
	back := HideUi
	if v.Submenu.IsPresent() {
		back = ShowHomeMenu
	}

	return Actions{
		A:     Activate,
		B:     back,
		X:     TogglePause,
		Up:    FocusUp,
		Down:  FocusDown,
		Left:  SeekBackwardStateless,
		Right: SeekForwardStateless,
		Home:  HideUi,
	}
}

func (HomeMenuView) ShowPrompts() bool { return true }

func (HomeMenuView) HideOnInactive() mo.Option[time.Duration] { return mo.None[time.Duration]() }

func (CharactersView) Actions() Actions {
	return Actions{
		B: HideUi,
	}
}

func (CharactersView) ShowPrompts() bool { return true }

func (CharactersView) HideOnInactive() mo.Option[time.Duration] { return mo.None[time.Duration]() }

// MediaSubmenu identifies one entry of the media menu.
type MediaSubmenu int

const (
	MediaInfo MediaSubmenu = iota
	MediaPlaylist
	MediaChapters
	MediaTracks
	MediaVolume
)

// MediaSubmenus returns the media menu entries in display order.
func MediaSubmenus() []MediaSubmenu {
	return []MediaSubmenu{MediaInfo, MediaPlaylist, MediaChapters, MediaTracks, MediaVolume}
}

func (s MediaSubmenu) Label() string {
	switch s {
	case MediaInfo:
		return "Info"
	case MediaPlaylist:
		return "Playlist"
	case MediaChapters:
		return "Chapters"
	case MediaTracks:
		return "Tracks"
	case MediaVolume:
		return "Volume"
	}
	return "(unknown)"
}

// Enabled reports whether the entry has anything to show for the current
// media.
func (s MediaSubmenu) Enabled(app *App) bool {
	switch s {
	case MediaInfo:
		return mpv.PropertyCached[string](app.Mpv, "media-title").IsPresent()
	case MediaPlaylist:
		return len(app.Mpv.Playlist()) > 1
	case MediaChapters:
		return len(app.Mpv.Chapters()) > 0
	case MediaTracks:
		return len(app.Mpv.TracksOfType(mpv.TrackSubtitle)) > 0 ||
			len(app.Mpv.TracksOfType(mpv.TrackAudio)) > 1
	case MediaVolume:
		return true
	}
	return false
}

// CatchesLeftRight reports whether the submenu consumes dpad left/right for
// itself instead of leaving them bound to stateless seeking.
func (s MediaSubmenu) CatchesLeftRight() bool {
	return s == MediaVolume
}

// HomeSubmenu identifies one entry of the home menu.
type HomeSubmenu int

const (
	HomeLibrary HomeSubmenu = iota
)

// HomeSubmenus returns the home menu entries in display order.
func HomeSubmenus() []HomeSubmenu {
	return []HomeSubmenu{HomeLibrary}
}

func (s HomeSubmenu) Label() string {
	switch s {
	case HomeLibrary:
		return "Library"
	}
	return "(unknown)"
}

func (s HomeSubmenu) Enabled(*App) bool {
	return true
}
