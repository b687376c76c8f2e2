package mpv

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/samber/mo"

	"github.com/couchpad-app/couchpad/log"
)

// Track is one entry of mpv's track-list property.
type Track struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Lang     string `json:"lang"`
	Selected bool   `json:"selected"`
	Default  bool   `json:"default"`
}

// DisplayName returns the best human-readable label for the track.
func (t Track) DisplayName() string {
	switch {
	case t.Title != "" && t.Lang != "":
		return fmt.Sprintf("%s (%s)", t.Title, t.Lang)
	case t.Title != "":
		return t.Title
	case t.Lang != "":
		return t.Lang
	}
	return fmt.Sprintf("#%d", t.ID)
}

// Track types as reported by mpv.
const (
	TrackVideo    = "video"
	TrackAudio    = "audio"
	TrackSubtitle = "sub"
)

// Chapter is one entry of mpv's chapter-list property.
type Chapter struct {
	Title string `json:"title"`
	Start Time   `json:"time"`
}

// PlaylistEntry is one entry of mpv's playlist property.
type PlaylistEntry struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Current  bool   `json:"current"`
	Playing  bool   `json:"playing"`
}

// DisplayName returns the entry's title, falling back to its file name.
func (e PlaylistEntry) DisplayName() string {
	if e.Title != "" {
		return e.Title
	}
	return filepath.Base(e.Filename)
}

// handleCompositeChange keeps typed copies of the known list properties.
// These are tolerant: the payload shape can legitimately vary while a file
// is loading, so a failed decode logs and keeps the previous value instead
// of failing fast like scalar properties do.
func (c *Client) handleCompositeChange(name string, data json.RawMessage) {
	switch name {
	case "track-list":
		var tracks []Track
		if err := json.Unmarshal(data, &tracks); err != nil {
			log.Warnf("mpv: track-list: %v", err)
			return
		}
		c.tracks = tracks
	case "chapter-list":
		var chapters []Chapter
		if err := json.Unmarshal(data, &chapters); err != nil {
			log.Warnf("mpv: chapter-list: %v", err)
			return
		}
		c.chapters = chapters
	case "playlist":
		var playlist []PlaylistEntry
		if err := json.Unmarshal(data, &playlist); err != nil {
			log.Warnf("mpv: playlist: %v", err)
			return
		}
		c.playlist = playlist
	}
}

// Position returns the cached playback position, or Zero when unknown.
func (c *Client) Position() Time {
	return Seconds(PropertyCached[float64](c, "time-pos").OrElse(0))
}

// Duration returns the cached media duration, or Zero when unknown.
func (c *Client) Duration() Time {
	return Seconds(PropertyCached[float64](c, "duration").OrElse(0))
}

// SecondsLeft returns the remaining playback time. It is None unless both
// position and duration are known, the duration is positive and the
// remainder is non-negative; end-of-media seek clamping depends on that
// distinction.
func (c *Client) SecondsLeft() mo.Option[Time] {
	pos, ok := PropertyCached[float64](c, "time-pos").Get()
	if !ok {
		return mo.None[Time]()
	}
	dur, ok := PropertyCached[float64](c, "duration").Get()
	if !ok || dur <= 0 || pos < 0 {
		return mo.None[Time]()
	}

	left := Seconds(dur).Sub(Seconds(pos))
	if left < Zero {
		return mo.None[Time]()
	}
	return mo.Some(left)
}

// Tracks returns the full cached track list.
func (c *Client) Tracks() []Track {
	return c.tracks
}

// TracksOfType returns the contiguous run of tracks of the given type. mpv
// reports the list grouped by type, so the run is located by its first and
// last index; an absent type yields an empty slice.
func (c *Client) TracksOfType(trackType string) []Track {
	first := -1
	last := -1
	for i, t := range c.tracks {
		if t.Type != trackType {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return nil
	}
	return c.tracks[first : last+1]
}

// Playlist returns the cached playlist.
func (c *Client) Playlist() []PlaylistEntry {
	return c.playlist
}

// Chapters returns the cached chapter list.
func (c *Client) Chapters() []Chapter {
	return c.chapters
}

// CurrentChapter returns the index of the active chapter: the last chapter
// whose start time is at or before the current position. None when the
// position is unknown or no chapters exist.
func (c *Client) CurrentChapter() mo.Option[int] {
	pos, ok := PropertyCached[float64](c, "time-pos").Get()
	if !ok || len(c.chapters) == 0 {
		return mo.None[int]()
	}

	current := mo.None[int]()
	for i, ch := range c.chapters {
		if ch.Start <= Seconds(pos) {
			current = mo.Some(i)
		}
	}
	return current
}

// ChapterDuration returns the elapsed duration of chapter i: the difference
// between consecutive chapter starts, with the final chapter's end being
// the media duration.
func (c *Client) ChapterDuration(i int) Time {
	if i < 0 || i >= len(c.chapters) {
		return Zero
	}
	if i == len(c.chapters)-1 {
		return c.Duration().Sub(c.chapters[i].Start)
	}
	return c.chapters[i+1].Start.Sub(c.chapters[i].Start)
}
