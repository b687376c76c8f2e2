// Package mpv implements a client for mpv's JSON IPC protocol over a local
// unix socket.
//
// The protocol is request/response over a shared newline-delimited stream,
// with unsolicited event lines interleaved. The client keeps the socket in
// non-blocking mode and switches to blocking only for the duration of a
// command round trip; event lines read while awaiting a response are buffered
// and drained in order by the next Update.
package mpv

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/samber/mo"

	"github.com/couchpad-app/couchpad/log"
)

const (
	// propertyWaitTimeout bounds the first-read bootstrap wait. An
	// unresponsive player would otherwise hang the whole UI, so the wait is
	// bounded and surfaced as an error.
	propertyWaitTimeout = 5 * time.Second

	// propertyPollInterval is the sleep between bootstrap poll rounds.
	propertyPollInterval = time.Millisecond

	// readPollTimeout is the read deadline used when draining events. An
	// already-expired deadline would fail reads without consuming available
	// data, so polling needs a small window instead of time.Now() itself.
	readPollTimeout = time.Millisecond
)

// ErrCommand is wrapped by errors returned for a command whose response
// carried an error string other than "success".
var ErrCommand = errors.New("mpv: command failed")

// errWouldBlock reports that no complete line is currently available.
var errWouldBlock = errors.New("mpv: read would block")

// Client owns a persistent connection to mpv's IPC socket. It is not safe
// for concurrent use; the overlay drives it from a single tick loop.
type Client struct {
	conn    net.Conn
	reader  *bufio.Reader
	partial []byte

	observed      map[string]json.RawMessage
	nextObserveID int
	eventBuffer   []event

	seek *seekSession

	// Composite list properties, kept in typed form. Parse failures leave
	// the previous value in place (payload shape varies transiently).
	tracks   []Track
	chapters []Chapter
	playlist []PlaylistEntry

	now func() time.Time
}

// Dial connects to the mpv IPC socket at path. The player is expected to be
// running already; an unreachable socket is a startup precondition failure,
// not a recoverable condition.
func Dial(path string) (*Client, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("connect to mpv socket %s: %w", path, err)
	}
	return NewClient(conn), nil
}

// NewClient wraps an established connection. Used directly by tests with a
// scripted in-memory peer.
func NewClient(conn net.Conn) *Client {
	// Start in non-blocking mode; Update polls must never stall the tick.
	_ = conn.SetReadDeadline(time.Now())

	return &Client{
		conn:     conn,
		reader:   bufio.NewReader(conn),
		observed: make(map[string]json.RawMessage),
		now:      time.Now,
	}
}

// Close releases the socket.
func (c *Client) Close() error {
	return c.conn.Close()
}

// blocking clears the read deadline for the duration of f, then re-arms the
// immediate deadline that makes subsequent reads non-blocking.
func (c *Client) blocking(f func() error) error {
	if err := c.conn.SetReadDeadline(time.Time{}); err != nil {
		return err
	}
	err := f()
	if derr := c.conn.SetReadDeadline(time.Now()); err == nil && derr != nil {
		err = derr
	}
	return err
}

// readLine reads one newline-terminated line. In non-blocking mode it
// returns errWouldBlock when no complete line is available; a partial line
// is retained and completed by a later call. EOF means the player process
// died and is fatal.
func (c *Client) readLine() ([]byte, error) {
	for {
		chunk, err := c.reader.ReadSlice('\n')
		c.partial = append(c.partial, chunk...)
		switch {
		case err == nil:
			line := c.partial
			c.partial = nil
			return line, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, os.ErrDeadlineExceeded):
			return nil, errWouldBlock
		case errors.Is(err, io.EOF):
			return nil, fmt.Errorf("mpv socket closed: %w", io.ErrUnexpectedEOF)
		default:
			return nil, err
		}
	}
}

// exec writes one command line and blocks until its response arrives. Event
// lines read while waiting are buffered for the next Update, preserving
// arrival order.
func (c *Client) exec(req request) (json.RawMessage, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal mpv command: %w", err)
	}
	payload = append(payload, '\n')
	if _, err := c.conn.Write(payload); err != nil {
		return nil, fmt.Errorf("write mpv command: %w", err)
	}

	var resp response
	err = c.blocking(func() error {
		for {
			line, err := c.readLine()
			if err != nil {
				return err
			}

			var eor eventOrResponse
			if err := json.Unmarshal(line, &eor); err != nil {
				return fmt.Errorf("decode mpv line: %w", err)
			}

			if eor.isEvent() {
				c.eventBuffer = append(c.eventBuffer, eor.asEvent())
				continue
			}

			resp = eor.asResponse()
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	if resp.Error != "success" {
		return nil, fmt.Errorf("%w: %s", ErrCommand, resp.Error)
	}
	return resp.Data, nil
}

// readEvents drains all currently available lines without blocking beyond
// the poll window.
func (c *Client) readEvents() error {
	if err := c.conn.SetReadDeadline(time.Now().Add(readPollTimeout)); err != nil {
		return err
	}
	for {
		line, err := c.readLine()
		if errors.Is(err, errWouldBlock) {
			return nil
		}
		if err != nil {
			return err
		}

		var ev event
		if err := json.Unmarshal(line, &ev); err != nil {
			return fmt.Errorf("decode mpv event: %w", err)
		}
		c.eventBuffer = append(c.eventBuffer, ev)
	}
}

// Update drains pending events and applies them to the property cache in
// arrival order. A stream error is fatal to the caller: it means the player
// co-process is gone.
func (c *Client) Update() error {
	if err := c.readEvents(); err != nil {
		return err
	}

	buffered := c.eventBuffer
	c.eventBuffer = nil
	for _, ev := range buffered {
		c.handleEvent(ev)
	}
	return nil
}

func (c *Client) handleEvent(ev event) {
	switch ev.Event {
	case eventPropertyChange:
		c.observed[ev.Name] = ev.Data
		c.handleCompositeChange(ev.Name, ev.Data)
	case eventSeek:
		// Position updates follow as property changes.
	default:
		log.Debugf("mpv: ignoring event %q", ev.Event)
	}
}

// ObserveProperty subscribes to change notifications for a property.
func (c *Client) ObserveProperty(name string) error {
	id := c.nextObserveID
	c.nextObserveID++
	_, err := c.exec(observePropertyCmd(id, name))
	return err
}

// PropertyCached returns the last observed value of a property, or None if
// it has never been observed or is currently null.
func PropertyCached[T any](c *Client, name string) mo.Option[T] {
	raw, ok := c.observed[name]
	if !ok || string(raw) == "null" {
		return mo.None[T]()
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// GetProperty returns the cached value of a property. On the first read of
// an unobserved property it subscribes and waits for the initial change
// notification, blocking the caller (but not event ordering) until it
// arrives or the bootstrap timeout elapses.
func GetProperty[T any](c *Client, name string) (T, error) {
	var zero T

	if raw, ok := c.observed[name]; ok {
		if string(raw) == "null" {
			return zero, nil
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			// A type mismatch on an observed property is a protocol bug
			// between client and player, not a runtime condition.
			panic(fmt.Sprintf("mpv: property %q: %v", name, err))
		}
		return v, nil
	}

	if err := c.ObserveProperty(name); err != nil {
		return zero, err
	}

	deadline := time.Now().Add(propertyWaitTimeout)
	for {
		if err := c.readEvents(); err != nil {
			return zero, err
		}

		// The matching event stays in the buffer so the next Update still
		// applies it to the cache in order.
		for _, ev := range c.eventBuffer {
			if ev.Event != eventPropertyChange || ev.Name != name {
				continue
			}
			if string(ev.Data) == "null" || len(ev.Data) == 0 {
				return zero, nil
			}
			var v T
			if err := json.Unmarshal(ev.Data, &v); err != nil {
				panic(fmt.Sprintf("mpv: property %q: %v", name, err))
			}
			return v, nil
		}

		if time.Now().After(deadline) {
			return zero, fmt.Errorf("mpv: property %q not reported within %s", name, propertyWaitTimeout)
		}
		time.Sleep(propertyPollInterval)
	}
}

// SetProperty assigns a property value. Fire-and-forget beyond the round
// trip result.
func (c *Client) SetProperty(name string, value any) error {
	_, err := c.exec(setPropertyCmd(name, value))
	return err
}

// CycleProperty toggles a property through its value cycle (e.g. "pause").
func (c *Client) CycleProperty(name string) error {
	_, err := c.exec(cyclePropertyCmd(name))
	return err
}

// AddProperty adds a delta to a numeric property.
func (c *Client) AddProperty(name string, delta float64) error {
	_, err := c.exec(addPropertyCmd(name, delta))
	return err
}

// Pause suspends playback.
func (c *Client) Pause() error {
	return c.SetProperty("pause", true)
}

// Unpause resumes playback.
func (c *Client) Unpause() error {
	return c.SetProperty("pause", false)
}
