// Package overlay is the application core: it turns gamepad input into
// commands against the player, governed by a closed set of view states.
package overlay

import (
	"math"
	"time"

	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/dlna"
	"github.com/couchpad-app/couchpad/gamepad"
	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/log"
	"github.com/couchpad-app/couchpad/mpv"
	"github.com/couchpad-app/couchpad/sponsorblock"
)

// FocusDirection is a direction for moving widget focus on the surface.
type FocusDirection int

const (
	DirUp FocusDirection = iota
	DirDown
	DirLeft
	DirRight
)

// Surface is the rendering front-end's focus handling, driven by menu
// navigation commands. The core never draws, it only steers focus.
type Surface interface {
	MoveFocus(FocusDirection)
	Activate()
}

// nopSurface swallows focus commands when no front-end is attached.
type nopSurface struct{}

func (nopSurface) MoveFocus(FocusDirection) {}
func (nopSurface) Activate() {}

// TickResult tells the caller whether to keep running.
type TickResult int

const (
	TickContinue TickResult = iota
	TickExit
)

// App holds the shared state every command executes against.
type App struct {
	Mpv     *mpv.Client
	Gamepad *gamepad.Reader
	Dlna    *dlna.Manager // nil when discovery is disabled or failed

	surface Surface
	view    View
	toasts  []SpawnedToast
	quit    bool

	subPos float64

	pathObserved bool
	segmentsPath string
	segments     []sponsorblock.Segment
	segmentsC    chan segmentsResult

	now func() time.Time
}

// New assembles the application around an established player connection.
// dlnaManager may be nil.
func New(client *mpv.Client, pad *gamepad.Reader, dlnaManager *dlna.Manager) *App {
	return &App{
		Mpv:       client,
		Gamepad:   pad,
		Dlna:      dlnaManager,
		surface:   nopSurface{},
		view:      HiddenView{},
		subPos:    100,
		segmentsC: make(chan segmentsResult, 1),
		now:       time.Now,
	}
}

// SetSurface attaches the rendering front-end's focus handler.
func (app *App) SetSurface(surface Surface) {
	app.surface = surface
}

// View returns the current view.
func (app *App) View() View {
	return app.view
}

// ChangeView replaces the current view wholesale. Replacing a view discards
// all of its state, a new instance carries only what its fields hold.
func (app *App) ChangeView(view View) {
	if app.view == view {
		return
	}
	app.view = view
}

// SpawnToast puts a toast on screen.
func (app *App) SpawnToast(toast Toast) {
	app.toasts = append(app.toasts, SpawnedToast{Toast: toast, At: app.now()})
}

// Toasts returns the currently visible toasts, oldest first.
func (app *App) Toasts() []SpawnedToast {
	return app.toasts
}

// Tick runs one frame of the application: external events first, then the
// pressed buttons through the current view's table, then the inactivity
// policy. A player protocol failure is fatal and propagates.
func (app *App) Tick() (TickResult, error) {
	if notice := app.Gamepad.Update(); notice != nil {
		app.handleNotice(notice)
	}

	if app.Dlna != nil {
		if name := app.Dlna.Update(); name != "" {
			ToastEvent{Toast: DlnaDiscoveredToast{Name: name}}.Execute(app)
		}
	}

	if err := app.Mpv.Update(); err != nil {
		return TickExit, err
	}

	if err := app.updateSkipSegments(); err != nil {
		return TickExit, err
	}

	actions := app.view.Actions()
	for _, button := range app.Gamepad.JustPressed() {
		cmd := actions.Get(button)
		log.Debugf("button %s -> command %d", button, cmd)

		if err := cmd.Execute(app); err != nil {
			return TickExit, err
		}
	}

	if limit, ok := app.view.HideOnInactive().Get(); ok && app.Gamepad.InactiveFor(limit) {
		if err := HideUi.Execute(app); err != nil {
			return TickExit, err
		}
	}

	app.pruneToasts()

	if app.quit {
		return TickExit, nil
	}
	return TickContinue, nil
}

func (app *App) handleNotice(notice gamepad.Notice) {
	switch n := notice.(type) {
	case gamepad.ConnectedNotice:
		ToastEvent{Toast: GamepadConnectedToast{Name: n.Name}}.Execute(app)
	case gamepad.DisconnectedNotice:
		ToastEvent{Toast: GamepadDisconnectedToast{Name: n.Name}}.Execute(app)
	case gamepad.LastDisconnectedNotice:
		LastGamepadDisconnectedEvent{}.Execute(app)
	}
}

func (app *App) pruneToasts() {
	now := app.now()

	kept := app.toasts[:0]
	for _, toast := range app.toasts {
		if !toast.expired(now) {
			kept = append(kept, toast)
		}
	}
	app.toasts = kept
}

// changeVolume steps the first DLNA renderer's volume, or the player's own
// when no renderer was discovered.
func (app *App) changeVolume(delta float64) error {
	if app.Dlna != nil {
		if renderers := app.Dlna.Renderers(); len(renderers) > 0 {
			r := renderers[0]
			r.SetVolume(r.Volume() + int(delta))
			return nil
		}
	}
	return app.Mpv.AddProperty("volume", delta)
}

// ReanchorSubtitles moves subtitles above the overlay chrome. available is
// the fraction of screen height left above the overlay's bottom panels, 1
// when nothing is shown.
func (app *App) ReanchorSubtitles(available float64) {
	if !viper.GetBool(key.OverlaySubtitleReanchor) {
		return
	}

	pos := math.Round(available * 100)
	if pos == app.subPos {
		return
	}

	log.Debugf("moving sub-pos from %v to %v", app.subPos, pos)
	if err := app.Mpv.SetProperty("sub-pos", pos); err != nil {
		log.Warnf("set sub-pos: %v", err)
		return
	}
	app.subPos = pos
}

// Close restores the subtitle anchor and releases the player connection and
// discovery socket.
func (app *App) Close() error {
	if err := app.Mpv.SetProperty("sub-pos", 100); err != nil {
		log.Warnf("restore sub-pos: %v", err)
	}

	if app.Dlna != nil {
		if err := app.Dlna.Close(); err != nil {
			log.Warnf("close dlna: %v", err)
		}
	}

	return app.Mpv.Close()
}
