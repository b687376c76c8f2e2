package mpv

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTrackDisplayName(t *testing.T) {
	Convey("Track DisplayName", t, func() {
		So(Track{ID: 2, Title: "Commentary", Lang: "en"}.DisplayName(), ShouldEqual, "Commentary (en)")
		So(Track{ID: 2, Title: "Commentary"}.DisplayName(), ShouldEqual, "Commentary")
		So(Track{ID: 2, Lang: "en"}.DisplayName(), ShouldEqual, "en")
		So(Track{ID: 2}.DisplayName(), ShouldEqual, "#2")
	})
}

func TestPlaylistEntryDisplayName(t *testing.T) {
	Convey("PlaylistEntry DisplayName", t, func() {
		So(PlaylistEntry{Title: "Episode 1", Filename: "/media/ep1.mkv"}.DisplayName(), ShouldEqual, "Episode 1")
		So(PlaylistEntry{Filename: "/media/ep1.mkv"}.DisplayName(), ShouldEqual, "ep1.mkv")
	})
}

func TestCompositeProperties(t *testing.T) {
	Convey("Composite list properties", t, func() {
		client, server := newTestClient()

		Convey("Should decode the track list from change events", func() {
			So(client.ObserveProperty("track-list"), ShouldBeNil)
			server.PublishProperty("track-list", []map[string]any{
				{"id": 1, "type": "video"},
				{"id": 1, "type": "audio", "lang": "ja", "selected": true},
				{"id": 2, "type": "audio", "lang": "en"},
				{"id": 1, "type": "sub", "lang": "en"},
			})

			So(client.Update(), ShouldBeNil)
			So(client.Tracks(), ShouldHaveLength, 4)
			So(client.TracksOfType(TrackAudio), ShouldHaveLength, 2)
			So(client.TracksOfType(TrackSubtitle), ShouldHaveLength, 1)
			So(client.TracksOfType(TrackVideo)[0].ID, ShouldEqual, 1)
		})

		Convey("Should keep the previous value on a malformed payload", func() {
			client.tracks = []Track{{ID: 1, Type: TrackVideo}}
			client.handleCompositeChange("track-list", json.RawMessage(`"loading"`))
			So(client.Tracks(), ShouldHaveLength, 1)
		})

		Convey("Should decode the playlist", func() {
			So(client.ObserveProperty("playlist"), ShouldBeNil)
			server.PublishProperty("playlist", []map[string]any{
				{"filename": "/media/ep1.mkv", "current": true},
				{"filename": "/media/ep2.mkv"},
			})

			So(client.Update(), ShouldBeNil)
			So(client.Playlist(), ShouldHaveLength, 2)
			So(client.Playlist()[0].Current, ShouldBeTrue)
		})
	})
}

func TestTracksOfTypeEmpty(t *testing.T) {
	Convey("TracksOfType", t, func() {
		client, _ := newTestClient()
		client.tracks = []Track{{ID: 1, Type: TrackVideo}}

		Convey("Should be empty for an absent type", func() {
			So(client.TracksOfType(TrackSubtitle), ShouldBeEmpty)
		})
	})
}

func TestSecondsLeft(t *testing.T) {
	Convey("SecondsLeft", t, func() {
		client, _ := newTestClient()

		Convey("Should be None without a cached position", func() {
			So(client.SecondsLeft().IsAbsent(), ShouldBeTrue)
		})

		Convey("Should be None without a cached duration", func() {
			client.observed["time-pos"] = json.RawMessage("15")
			So(client.SecondsLeft().IsAbsent(), ShouldBeTrue)
		})

		Convey("Should be the remaining time otherwise", func() {
			client.observed["time-pos"] = json.RawMessage("15")
			client.observed["duration"] = json.RawMessage("40")
			So(client.SecondsLeft().MustGet(), ShouldEqual, Seconds(25))
		})

		Convey("Should be None when the position ran past the end", func() {
			client.observed["time-pos"] = json.RawMessage("45")
			client.observed["duration"] = json.RawMessage("40")
			So(client.SecondsLeft().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestChapters(t *testing.T) {
	Convey("Chapters", t, func() {
		client, _ := newTestClient()
		client.chapters = []Chapter{
			{Title: "Opening", Start: Seconds(0)},
			{Title: "Part A", Start: Seconds(10)},
			{Title: "Ending", Start: Seconds(30)},
		}
		client.observed["duration"] = json.RawMessage("40")

		Convey("CurrentChapter", func() {
			Convey("Should be None without a position", func() {
				So(client.CurrentChapter().IsAbsent(), ShouldBeTrue)
			})

			Convey("Should be the last chapter at or before the position", func() {
				client.observed["time-pos"] = json.RawMessage("15")
				So(client.CurrentChapter().MustGet(), ShouldEqual, 1)
			})

			Convey("Should include a chapter starting exactly at the position", func() {
				client.observed["time-pos"] = json.RawMessage("30")
				So(client.CurrentChapter().MustGet(), ShouldEqual, 2)
			})

			Convey("Should be None without chapters", func() {
				client.chapters = nil
				client.observed["time-pos"] = json.RawMessage("15")
				So(client.CurrentChapter().IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("ChapterDuration", func() {
			Convey("Should span to the next chapter start", func() {
				So(client.ChapterDuration(0), ShouldEqual, Seconds(10))
				So(client.ChapterDuration(1), ShouldEqual, Seconds(20))
			})

			Convey("Should span to the media end for the final chapter", func() {
				So(client.ChapterDuration(2), ShouldEqual, Seconds(10))
			})

			Convey("Should be Zero out of range", func() {
				So(client.ChapterDuration(-1), ShouldEqual, Zero)
				So(client.ChapterDuration(3), ShouldEqual, Zero)
			})
		})
	})
}

func TestPositionDuration(t *testing.T) {
	Convey("Position and Duration", t, func() {
		client, _ := newTestClient()

		Convey("Should default to Zero", func() {
			So(client.Position(), ShouldEqual, Zero)
			So(client.Duration(), ShouldEqual, Zero)
		})

		Convey("Should read the cache", func() {
			client.observed["time-pos"] = json.RawMessage("65.4")
			client.observed["duration"] = json.RawMessage("1450")
			So(client.Position().MMSS(), ShouldEqual, "1:05")
			So(client.Duration().MMSS(), ShouldEqual, "24:10")
		})
	})
}
