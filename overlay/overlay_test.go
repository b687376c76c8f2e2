package overlay

import (
	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/gamepad"
	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/mpv"
	"github.com/couchpad-app/couchpad/mpv/mpvtest"
)

// scriptBackend replays a queued gamepad event script.
type scriptBackend struct {
	events []gamepad.RawEvent
}

func (b *scriptBackend) push(events ...gamepad.RawEvent) {
	b.events = append(b.events, events...)
}

func (b *scriptBackend) Poll() (gamepad.RawEvent, bool) {
	if len(b.events) == 0 {
		return gamepad.RawEvent{}, false
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, true
}

func press(btn gamepad.Button) gamepad.RawEvent {
	return gamepad.RawEvent{Kind: gamepad.Pressed, Pad: 0, Btn: btn}
}

func newTestApp() (*App, *mpvtest.Server, *scriptBackend) {
	for name, field := range map[string]any{
		key.OverlaySeekBarHide:      5,
		key.OverlayMiniSeekHide:     2,
		key.OverlayStatelessSeek:    5,
		key.OverlaySubtitleReanchor: true,
		key.DlnaVolumeStep:          5,
		key.SponsorblockEnable:      false,
	} {
		viper.Set(name, field)
	}

	server := mpvtest.NewServer()
	server.PublishProperty("percent-pos", 25.0)
	server.PublishProperty("pause", false)

	backend := &scriptBackend{}
	return New(mpv.NewClient(server), gamepad.NewReader(backend), nil), server, backend
}
