package mpv

import (
	"encoding/json"
	"io"
	"net"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/couchpad-app/couchpad/mpv/mpvtest"
)

func newTestClient() (*Client, *mpvtest.Server) {
	server := mpvtest.NewServer()
	return NewClient(server), server
}

func TestStreamDeath(t *testing.T) {
	Convey("A dead player stream", t, func() {
		client, server := newTestClient()

		Convey("Should make Update fatal on end of stream", func() {
			server.Hangup()
			So(client.Update(), ShouldWrap, io.ErrUnexpectedEOF)
		})

		Convey("Should make a command round trip fatal on end of stream", func() {
			server.Hangup()
			So(client.SetProperty("pause", true), ShouldWrap, io.ErrUnexpectedEOF)
		})

		Convey("Should make Update fatal on a closed connection", func() {
			So(client.Close(), ShouldBeNil)
			So(client.Update(), ShouldWrap, net.ErrClosed)
		})
	})
}

func TestExec(t *testing.T) {
	Convey("exec", t, func() {
		client, server := newTestClient()

		Convey("Should complete a command round trip", func() {
			So(client.SetProperty("fullscreen", true), ShouldBeNil)

			commands := server.Commands()
			So(commands, ShouldHaveLength, 1)
			So(commands[0][0], ShouldEqual, "set_property")
			So(commands[0][1], ShouldEqual, "fullscreen")
			So(commands[0][2], ShouldEqual, true)
		})

		Convey("Should surface command failures", func() {
			_, err := client.exec(request{Command: []any{"bogus"}})
			So(err, ShouldWrap, ErrCommand)
			So(err.Error(), ShouldContainSubstring, "invalid parameter")
		})

		Convey("Should buffer events that arrive before the response", func() {
			server.InjectEvent("seek")
			server.InjectEvent("pause")

			So(client.SetProperty("fullscreen", true), ShouldBeNil)
			So(client.eventBuffer, ShouldHaveLength, 2)
			So(client.eventBuffer[0].Event, ShouldEqual, "seek")
			So(client.eventBuffer[1].Event, ShouldEqual, "pause")
		})
	})
}

func TestUpdate(t *testing.T) {
	Convey("Update", t, func() {
		client, server := newTestClient()

		Convey("Should be a no-op when nothing arrived", func() {
			So(client.Update(), ShouldBeNil)
			So(client.observed, ShouldBeEmpty)
		})

		Convey("Should apply property changes to the cache", func() {
			So(client.ObserveProperty("volume"), ShouldBeNil)
			server.PublishProperty("volume", 50.0)

			So(client.Update(), ShouldBeNil)
			So(PropertyCached[float64](client, "volume").OrElse(0), ShouldEqual, 50.0)
		})

		Convey("Should keep the last of several changes", func() {
			So(client.ObserveProperty("volume"), ShouldBeNil)
			server.PublishProperty("volume", 50.0)
			server.PublishProperty("volume", 75.0)

			So(client.Update(), ShouldBeNil)
			So(PropertyCached[float64](client, "volume").OrElse(0), ShouldEqual, 75.0)
		})

		Convey("Should tolerate unknown events", func() {
			server.InjectEvent("file-loaded")
			So(client.Update(), ShouldBeNil)
		})
	})
}

func TestPropertyCached(t *testing.T) {
	Convey("PropertyCached", t, func() {
		client, _ := newTestClient()

		Convey("Should be None before any observation", func() {
			So(PropertyCached[float64](client, "volume").IsAbsent(), ShouldBeTrue)
		})

		Convey("Should be None for a null value", func() {
			client.observed["time-pos"] = json.RawMessage("null")
			So(PropertyCached[float64](client, "time-pos").IsAbsent(), ShouldBeTrue)
		})

		Convey("Should decode a present value", func() {
			client.observed["pause"] = json.RawMessage("true")
			So(PropertyCached[bool](client, "pause").OrElse(false), ShouldBeTrue)
		})
	})
}

func TestGetProperty(t *testing.T) {
	Convey("GetProperty", t, func() {
		client, server := newTestClient()

		Convey("Should subscribe and wait on first read", func() {
			server.PublishProperty("duration", 1450.0)

			duration, err := GetProperty[float64](client, "duration")
			So(err, ShouldBeNil)
			So(duration, ShouldEqual, 1450.0)

			So(server.CommandsNamed("observe_property"), ShouldHaveLength, 1)

			Convey("Leaving the bootstrap event for the next Update", func() {
				So(client.eventBuffer, ShouldNotBeEmpty)
				So(client.Update(), ShouldBeNil)
				So(PropertyCached[float64](client, "duration").OrElse(0), ShouldEqual, 1450.0)
			})
		})

		Convey("Should serve later reads from the cache", func() {
			server.PublishProperty("duration", 1450.0)

			_, err := GetProperty[float64](client, "duration")
			So(err, ShouldBeNil)
			So(client.Update(), ShouldBeNil)

			_, err = GetProperty[float64](client, "duration")
			So(err, ShouldBeNil)
			So(server.CommandsNamed("observe_property"), ShouldHaveLength, 1)
		})

		Convey("Should return the zero value for an unset property", func() {
			pos, err := GetProperty[float64](client, "time-pos")
			So(err, ShouldBeNil)
			So(pos, ShouldEqual, 0.0)
		})
	})
}

func TestPauseUnpause(t *testing.T) {
	Convey("Pause and Unpause", t, func() {
		client, server := newTestClient()

		So(client.Pause(), ShouldBeNil)
		So(client.Unpause(), ShouldBeNil)

		commands := server.CommandsNamed("set_property")
		So(commands, ShouldHaveLength, 2)
		So(commands[0][2], ShouldEqual, true)
		So(commands[1][2], ShouldEqual, false)
	})
}

func TestCycleProperty(t *testing.T) {
	Convey("CycleProperty", t, func() {
		client, _ := newTestClient()

		So(client.ObserveProperty("pause"), ShouldBeNil)
		So(client.CycleProperty("pause"), ShouldBeNil)

		So(client.Update(), ShouldBeNil)
		So(PropertyCached[bool](client, "pause").OrElse(false), ShouldBeTrue)
	})
}

func TestAddProperty(t *testing.T) {
	Convey("AddProperty", t, func() {
		client, server := newTestClient()
		server.PublishProperty("volume", 50.0)

		So(client.ObserveProperty("volume"), ShouldBeNil)
		So(client.AddProperty("volume", 5), ShouldBeNil)

		So(client.Update(), ShouldBeNil)
		So(PropertyCached[float64](client, "volume").OrElse(0), ShouldEqual, 55.0)
	})
}
