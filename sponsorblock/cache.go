package sponsorblock

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/filesystem"
	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/where"
)

// cacheData defines the on-disk format for cached segment lookups.
type cacheData struct {
	Videos map[string][]Segment `json:"videos"`
}

// cacher is a thread-safe wrapper around the segments disk cache.
type cacher struct {
	internal *gache.Cache[*cacheData]
	mu       sync.RWMutex
}

// Get retrieves cached segments for a video.
func (c *cacher) Get(videoID string) mo.Option[[]Segment] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[[]Segment]()
	}

	segments, ok := data.Videos[videoID]
	if ok {
		return mo.Some(segments)
	}

	return mo.None[[]Segment]()
}

// Set persists segments for a video.
func (c *cacher) Set(videoID string, segments []Segment) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if !expired && data != nil {
		data.Videos[videoID] = segments
		return c.internal.Set(data)
	}

	internal := &cacheData{Videos: make(map[string][]Segment)}
	internal.Videos[videoID] = segments
	return c.internal.Set(internal)
}

// segmentsCacher persists segment lookups so replaying the same video does
// not hit the API again.
var segmentsCacher = &cacher{
	internal: gache.New[*cacheData](
		&gache.Options{
			Path:       where.SkipSegments(),
			Lifetime:   time.Hour * 24,
			FileSystem: &filesystem.GacheFs{},
		},
	),
}

// SegmentsFor returns the skip segments for a video, serving from the disk
// cache when possible. Disabled integration yields no segments.
func SegmentsFor(videoID string) ([]Segment, error) {
	if !viper.GetBool(key.SponsorblockEnable) || videoID == "" {
		return nil, nil
	}

	if cached, ok := segmentsCacher.Get(videoID).Get(); ok {
		return cached, nil
	}

	segments, err := FetchSegments(videoID)
	if err != nil {
		return nil, err
	}

	if err := segmentsCacher.Set(videoID, segments); err != nil {
		return segments, err
	}

	return segments, nil
}
