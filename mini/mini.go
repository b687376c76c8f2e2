// Package mini implements a lightweight terminal front-end for the overlay,
// driving the application core with keyboard input instead of a gamepad.
package mini

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/dlna"
	"github.com/couchpad-app/couchpad/gamepad"
	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/log"
	"github.com/couchpad-app/couchpad/mpv"
	"github.com/couchpad-app/couchpad/overlay"
	"github.com/couchpad-app/couchpad/util"
	"github.com/couchpad-app/couchpad/where"
)

// tickInterval is how often the application core runs a frame.
const tickInterval = 50 * time.Millisecond

type Options struct {
	// Socket overrides the configured player socket path when non-empty.
	Socket string
}

// Run connects to the player and drives the overlay inside the terminal
// until the user quits or the player connection breaks.
func Run(options *Options) error {
	socket := options.Socket
	if socket == "" {
		socket = viper.GetString(key.PlayerSocket)
	}
	if socket == "" {
		socket = where.DefaultPlayerSocket()
	}

	client, err := mpv.Dial(socket)
	if err != nil {
		return err
	}

	var manager *dlna.Manager
	if viper.GetBool(key.DlnaEnable) {
		manager, err = dlna.New()
		if err != nil {
			log.Warnf("dlna discovery unavailable: %v", err)
		}
	}

	backend := &keyboardBackend{}
	app := overlay.New(client, gamepad.NewReader(backend), manager)
	defer app.Close()

	m := newModel(app, backend)
	app.SetSurface(m.surface)

	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}

	if final, ok := final.(*model); ok && final.err != nil {
		return final.err
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	app     *overlay.App
	backend *keyboardBackend
	surface *surface

	progressC progress.Model

	width, height int
	focus         int

	err error
}

func newModel(app *overlay.App, backend *keyboardBackend) *model {
	progressC := progress.New(progress.WithDefaultGradient())
	progressC.ShowPercentage = false

	m := &model{
		app:       app,
		backend:   backend,
		surface:   &surface{},
		progressC: progressC,
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.resize(w, h)
	}

	return m
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	m.progressC.Width = width
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.backend.Press(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		result, err := m.app.Tick()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}

		m.applySurface()

		if result == overlay.TickExit {
			return m, tea.Quit
		}
		return m, tick()
	}

	return m, nil
}
