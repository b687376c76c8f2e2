package mini

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/couchpad-app/couchpad/gamepad"
)

// keyboardBackend translates terminal key presses into gamepad events so the
// application core runs unmodified without a physical controller.
type keyboardBackend struct {
	queue     []gamepad.RawEvent
	connected bool
}

// keyBindings maps terminal keys onto the controller layout.
var keyBindings = map[string]gamepad.Button{
	"enter": gamepad.East,
	"esc":   gamepad.South,
	" ":     gamepad.North,
	"e":     gamepad.West,

	"up":    gamepad.DPadUp,
	"down":  gamepad.DPadDown,
	"left":  gamepad.DPadLeft,
	"right": gamepad.DPadRight,

	"[": gamepad.L1,
	"{": gamepad.L2,
	"]": gamepad.R1,
	"}": gamepad.R2,

	"s": gamepad.Select,
	"m": gamepad.Start,
	"h": gamepad.Home,
}

// Press queues the gamepad event for a key press, if the key is bound. The
// first bound press also announces the virtual pad.
func (k *keyboardBackend) Press(msg tea.KeyMsg) {
	button, ok := keyBindings[msg.String()]
	if !ok {
		return
	}

	if !k.connected {
		k.connected = true
		k.queue = append(k.queue, gamepad.RawEvent{
			Kind: gamepad.Connected,
			Name: "keyboard",
		})
	}

	k.queue = append(k.queue, gamepad.RawEvent{
		Kind: gamepad.Pressed,
		Btn:  button,
	})
}

// Poll implements gamepad.Backend.
func (k *keyboardBackend) Poll() (gamepad.RawEvent, bool) {
	if len(k.queue) == 0 {
		return gamepad.RawEvent{}, false
	}

	ev := k.queue[0]
	k.queue = k.queue[1:]
	return ev, true
}
