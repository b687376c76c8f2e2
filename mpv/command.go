package mpv

import (
	"encoding/json"
)

// request is the JSON structure written to mpv's IPC socket. mpv correlates
// responses with requests purely by stream order, so no request id is sent.
type request struct {
	Command []any `json:"command"`
}

func observePropertyCmd(id int, property string) request {
	return request{Command: []any{"observe_property", id, property}}
}

func setPropertyCmd(name string, value any) request {
	return request{Command: []any{"set_property", name, value}}
}

func cyclePropertyCmd(name string) request {
	return request{Command: []any{"cycle", name}}
}

func addPropertyCmd(name string, delta float64) request {
	return request{Command: []any{"add", name, delta}}
}

func seekCmd(delta Time, exact bool) request {
	mode := "keyframes"
	if exact {
		mode = "exact"
	}
	return request{Command: []any{"seek", delta.Seconds(), mode}}
}

// response is a command reply. The literal error string "success" is the
// only non-error outcome.
type response struct {
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

// event is an unsolicited notification line. Tags not handled below are
// accepted and ignored, matching mpv's open-ended event vocabulary.
type event struct {
	Event string          `json:"event"`
	Name  string          `json:"name,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

const (
	eventPropertyChange = "property-change"
	eventSeek           = "seek"
)

// eventOrResponse distinguishes the two kinds of inbound line: events carry
// an "event" field, responses do not.
type eventOrResponse struct {
	Event string          `json:"event"`
	Name  string          `json:"name"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (eor *eventOrResponse) isEvent() bool {
	return eor.Event != ""
}

func (eor *eventOrResponse) asEvent() event {
	return event{Event: eor.Event, Name: eor.Name, Data: eor.Data}
}

func (eor *eventOrResponse) asResponse() response {
	return response{Error: eor.Error, Data: eor.Data}
}
