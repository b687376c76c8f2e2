package gamepad

import (
	"time"
)

// RawEvent is one event emitted by a Backend.
type RawEvent struct {
	Kind RawEventKind
	Pad  int    // backend-assigned gamepad id
	Name string // human-readable gamepad name, set on connect/disconnect
	Btn  Button // set for Pressed events
}

// RawEventKind discriminates RawEvent.
type RawEventKind int

const (
	Pressed RawEventKind = iota
	Connected
	Disconnected
)

// Backend produces raw controller events. Implementations poll real devices
// (or, for the terminal front-end, translate keyboard input) and must not
// block: Poll returns false when no event is currently available.
type Backend interface {
	Poll() (RawEvent, bool)
}

// Notice is a connection-change notification surfaced to the application,
// one per Update at most.
type Notice interface{ notice() }

// ConnectedNotice reports a newly connected gamepad.
type ConnectedNotice struct{ Name string }

// DisconnectedNotice reports a disconnected gamepad while others remain.
type DisconnectedNotice struct{ Name string }

// LastDisconnectedNotice reports that no used gamepad remains connected.
type LastDisconnectedNotice struct{}

func (ConnectedNotice) notice() {}
func (DisconnectedNotice) notice() {}
func (LastDisconnectedNotice) notice() {}

// Reader aggregates backend events into the per-tick input state.
type Reader struct {
	backend     Backend
	justPressed []Button
	lastInput   time.Time
	usedPads    []int

	now func() time.Time
}

// NewReader wraps a backend.
func NewReader(backend Backend) *Reader {
	return &Reader{
		backend: backend,
		// A fresh reader counts as "just used" so views with inactivity
		// timeouts do not hide immediately at startup.
		lastInput: time.Now(),
		now:       time.Now,
	}
}

// Update drains the backend and rebuilds the just-pressed set. Returns a
// Notice if a connection change occurred, or nil. Connection changes are
// reported one per call; remaining events stay queued in the backend.
func (r *Reader) Update() Notice {
	r.justPressed = r.justPressed[:0]

	for {
		ev, ok := r.backend.Poll()
		if !ok {
			return nil
		}

		switch ev.Kind {
		case Pressed:
			r.lastInput = r.now()
			r.justPressed = append(r.justPressed, ev.Btn)
			r.markUsed(ev.Pad)

		case Connected:
			return ConnectedNotice{Name: ev.Name}

		case Disconnected:
			if !r.forgetUsed(ev.Pad) {
				continue
			}
			if len(r.usedPads) == 0 {
				return LastDisconnectedNotice{}
			}
			return DisconnectedNotice{Name: ev.Name}
		}
	}
}

// JustPressed returns the buttons newly pressed during the last Update.
// The returned slice is reused across ticks.
func (r *Reader) JustPressed() []Button {
	return r.justPressed
}

// InactiveFor reports whether no input has arrived for at least d.
func (r *Reader) InactiveFor(d time.Duration) bool {
	return r.now().Sub(r.lastInput) > d
}

func (r *Reader) markUsed(pad int) {
	for _, p := range r.usedPads {
		if p == pad {
			return
		}
	}
	r.usedPads = append(r.usedPads, pad)
}

// forgetUsed removes pad from the used set, reporting whether it was there.
// Disconnects of pads nobody pressed a button on are not worth a notice.
func (r *Reader) forgetUsed(pad int) bool {
	for i, p := range r.usedPads {
		if p == pad {
			r.usedPads = append(r.usedPads[:i], r.usedPads[i+1:]...)
			return true
		}
	}
	return false
}
