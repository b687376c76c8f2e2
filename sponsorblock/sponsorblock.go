// Package sponsorblock provides a client for the SponsorBlock API, enabling
// retrieval of community-submitted skip segments for the playing video.
package sponsorblock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/log"
	"github.com/couchpad-app/couchpad/mpv"
	"github.com/couchpad-app/couchpad/network"
)

const baseURL = "https://sponsor.ajay.app/api/skipSegments"

// Segment is one skippable interval of a video.
type Segment struct {
	Bounds   [2]mpv.Time `json:"segment"`
	UUID     string      `json:"UUID"`
	Category string      `json:"category"`
}

// Start returns the segment's start position.
func (s Segment) Start() mpv.Time {
	return s.Bounds[0]
}

// End returns the segment's end position.
func (s Segment) End() mpv.Time {
	return s.Bounds[1]
}

// Contains reports whether t falls inside the segment. The end bound is
// exclusive so back-to-back segments do not overlap.
func (s Segment) Contains(t mpv.Time) bool {
	return t >= s.Start() && t < s.End()
}

// Label returns a human-readable name for the segment's category.
func (s Segment) Label() string {
	switch s.Category {
	case "sponsor":
		return "Sponsor"
	case "selfpromo":
		return "Self-Promo"
	case "interaction":
		return "Interaction"
	case "intro":
		return "Intro"
	case "outro":
		return "Outro"
	case "preview":
		return "Preview"
	case "hook":
		return "Hook"
	case "filler":
		return "Filler"
	}
	return s.Category
}

// VideoID extracts a YouTube video id from the path mpv reports for the
// playing file. Returns "" for local files and non-YouTube URLs, which have
// no segments to look up.
func VideoID(path string) string {
	if id, ok := strings.CutPrefix(path, "ytdl://"); ok {
		if !strings.ContainsAny(id, "/.") {
			return id
		}
		path = id
	}

	u, err := url.Parse(path)
	if err != nil {
		return ""
	}

	switch {
	case u.Host == "youtu.be":
		return strings.TrimPrefix(u.Path, "/")
	case strings.HasSuffix(u.Host, "youtube.com"):
		return u.Query().Get("v")
	}
	return ""
}

// FetchSegments retrieves the skip segments for a video from the SponsorBlock
// service. Returns nil (not an error) when the service has no segments or is
// unreachable.
func FetchSegments(videoID string) ([]Segment, error) {
	categories, err := json.Marshal(viper.GetStringSlice(key.SponsorblockCategories))
	if err != nil {
		return nil, fmt.Errorf("encode categories: %w", err)
	}

	query := url.Values{}
	query.Set("videoID", videoID)
	query.Set("categories", string(categories))

	resp, err := network.Client.Get(baseURL + "?" + query.Encode())
	if err != nil {
		log.Warnf("sponsorblock request failed: %v", err)
		return nil, nil
	}
	defer resp.Body.Close()

	// 404 means nobody submitted segments for this video.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Warnf("sponsorblock returned status %d", resp.StatusCode)
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sponsorblock response: %w", err)
	}

	var segments []Segment
	if err := json.Unmarshal(body, &segments); err != nil {
		return nil, fmt.Errorf("parse sponsorblock response: %w", err)
	}

	return segments, nil
}
