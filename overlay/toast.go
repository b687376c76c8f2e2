package overlay

import (
	"fmt"
	"time"
)

// toastLifetime is how long a toast stays on screen.
const toastLifetime = 5 * time.Second

// Toast is a short transient notification. The set is closed.
type Toast interface {
	Message() string

	toast()
}

// GamepadConnectedToast announces a newly connected controller.
type GamepadConnectedToast struct{ Name string }

// GamepadDisconnectedToast announces a lost controller while others remain.
type GamepadDisconnectedToast struct{ Name string }

// LastGamepadDisconnectedToast announces that no controller is left.
type LastGamepadDisconnectedToast struct{}

// DlnaDiscoveredToast announces a renderer found on the network.
type DlnaDiscoveredToast struct{ Name string }

// SegmentSkippedToast announces an automatically skipped video segment.
type SegmentSkippedToast struct{ Label string }

func (GamepadConnectedToast) toast() {}
func (GamepadDisconnectedToast) toast() {}
func (LastGamepadDisconnectedToast) toast() {}
func (DlnaDiscoveredToast) toast() {}
func (SegmentSkippedToast) toast() {}

func (t GamepadConnectedToast) Message() string {
	return fmt.Sprintf("Gamepad connected: %s", t.Name)
}

func (t GamepadDisconnectedToast) Message() string {
	return fmt.Sprintf("Gamepad disconnected: %s", t.Name)
}

func (LastGamepadDisconnectedToast) Message() string {
	return "Last gamepad disconnected"
}

func (t DlnaDiscoveredToast) Message() string {
	return fmt.Sprintf("DLNA device discovered: %s", t.Name)
}

func (t SegmentSkippedToast) Message() string {
	return fmt.Sprintf("Skipped: %s", t.Label)
}

// SpawnedToast is a toast with its spawn time, used for expiry and for the
// front-end's slide animations.
type SpawnedToast struct {
	Toast Toast
	At    time.Time
}

func (t SpawnedToast) expired(now time.Time) bool {
	return now.Sub(t.At) >= toastLifetime
}
