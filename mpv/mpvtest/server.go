// Package mpvtest provides a scripted in-memory stand-in for the mpv IPC
// socket. It answers commands synchronously and lets tests publish property
// values and inject raw event lines.
package mpvtest

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"
)

// Server implements net.Conn as the player side of the IPC stream. Writes
// from the client are parsed as commands and answered immediately, so a
// blocking round trip in the client never stalls.
type Server struct {
	mu sync.Mutex

	inbox    []byte // bytes waiting for the client to read
	deadline time.Time
	closed   bool
	eof      bool

	properties map[string]any
	observed   map[string]bool
	commands   [][]any
}

// NewServer returns a server with an empty property table.
func NewServer() *Server {
	return &Server{
		properties: make(map[string]any),
		observed:   make(map[string]bool),
	}
}

// PublishProperty sets a property value and, when the client observes it,
// queues the change notification.
func (s *Server) PublishProperty(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setProperty(name, value)
}

// InjectLine queues one raw line for the client, newline appended.
func (s *Server) InjectLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inbox = append(s.inbox, line...)
	s.inbox = append(s.inbox, '\n')
}

// InjectEvent queues an event with the given tag, e.g. "seek".
func (s *Server) InjectEvent(tag string) {
	s.InjectLine(fmt.Sprintf(`{"event":%q}`, tag))
}

// Commands returns every command received, in order.
func (s *Server) Commands() [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]any{}, s.commands...)
}

// CommandsNamed returns the received commands whose verb matches.
func (s *Server) CommandsNamed(verb string) [][]any {
	var matched [][]any
	for _, cmd := range s.Commands() {
		if len(cmd) > 0 && cmd[0] == verb {
			matched = append(matched, cmd)
		}
	}
	return matched
}

// Hangup simulates the player process dying: queued lines are discarded,
// further commands go unanswered, and reads report end of stream.
func (s *Server) Hangup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eof = true
	s.inbox = nil
}

// Read hands queued lines to the client, honoring the read deadline the way
// a real socket does: an expired deadline fails the read even when data is
// available, and an empty inbox never blocks because every command was
// already answered synchronously.
func (s *Server) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, net.ErrClosed
	}
	if !s.deadline.IsZero() && !time.Now().Before(s.deadline) {
		return 0, os.ErrDeadlineExceeded
	}
	if len(s.inbox) == 0 {
		if s.eof {
			return 0, io.EOF
		}
		return 0, os.ErrDeadlineExceeded
	}

	n := copy(p, s.inbox)
	s.inbox = s.inbox[n:]
	return n, nil
}

// Write parses one command line from the client and queues its response.
func (s *Server) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, net.ErrClosed
	}
	// A dying peer may still absorb writes; no response will come.
	if s.eof {
		return len(p), nil
	}

	var req struct {
		Command []any `json:"command"`
	}
	if err := json.Unmarshal(p, &req); err != nil {
		return 0, fmt.Errorf("mpvtest: bad command line: %w", err)
	}

	s.commands = append(s.commands, req.Command)
	s.handle(req.Command)
	return len(p), nil
}

func (s *Server) handle(cmd []any) {
	if len(cmd) == 0 {
		s.respondError("invalid parameter")
		return
	}

	verb, _ := cmd[0].(string)
	switch verb {
	case "observe_property":
		name := cmd[2].(string)
		s.observed[name] = true

		value, ok := s.properties[name]
		if !ok {
			value = nil
		}
		s.queueChange(name, value)
		s.respond(nil)

	case "set_property":
		name := cmd[1].(string)
		s.setProperty(name, cmd[2])
		s.respond(nil)

	case "cycle":
		name := cmd[1].(string)
		current, _ := s.properties[name].(bool)
		s.setProperty(name, !current)
		s.respond(nil)

	case "add":
		name := cmd[1].(string)
		current, _ := s.properties[name].(float64)
		delta, _ := cmd[2].(float64)
		s.setProperty(name, current+delta)
		s.respond(nil)

	case "seek":
		delta, _ := cmd[1].(float64)
		s.applySeek(delta)
		s.respond(nil)

	default:
		s.respondError("invalid parameter")
	}
}

// setProperty stores a value and notifies the client when observed. Derived
// percent-pos follows time-pos whenever a duration is known.
func (s *Server) setProperty(name string, value any) {
	s.properties[name] = value
	if s.observed[name] {
		s.queueChange(name, value)
	}

	if name == "time-pos" {
		if dur, ok := s.properties["duration"].(float64); ok && dur > 0 {
			if pos, ok := value.(float64); ok {
				s.properties["percent-pos"] = pos / dur * 100
				if s.observed["percent-pos"] {
					s.queueChange("percent-pos", s.properties["percent-pos"])
				}
			}
		}
	}
}

func (s *Server) applySeek(delta float64) {
	pos, _ := s.properties["time-pos"].(float64)
	pos += delta

	if dur, ok := s.properties["duration"].(float64); ok && dur > 0 {
		if pos > dur {
			pos = dur
		}
	}
	if pos < 0 {
		pos = 0
	}

	s.setProperty("time-pos", pos)
	s.queueLine(map[string]any{"event": "seek"})
}

func (s *Server) queueChange(name string, value any) {
	s.queueLine(map[string]any{
		"event": "property-change",
		"name":  name,
		"data":  value,
	})
}

func (s *Server) respond(data any) {
	s.queueLine(map[string]any{"error": "success", "data": data})
}

func (s *Server) respondError(reason string) {
	s.queueLine(map[string]any{"error": reason})
}

func (s *Server) queueLine(v any) {
	line, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.inbox = append(s.inbox, line...)
	s.inbox = append(s.inbox, '\n')
}

// Close implements net.Conn.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Server) SetDeadline(t time.Time) error {
	return s.SetReadDeadline(t)
}

func (s *Server) SetReadDeadline(t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deadline = t
	return nil
}

func (s *Server) SetWriteDeadline(time.Time) error { return nil }

func (s *Server) LocalAddr() net.Addr  { return addr("mpvtest") }
func (s *Server) RemoteAddr() net.Addr { return addr("mpvtest") }

type addr string

func (a addr) Network() string { return "unix" }
func (a addr) String() string  { return string(a) }
