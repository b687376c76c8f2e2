package overlay

import (
	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/log"
	"github.com/couchpad-app/couchpad/mpv"
	"github.com/couchpad-app/couchpad/sponsorblock"
)

// segmentsResult is one asynchronous segment lookup outcome.
type segmentsResult struct {
	path     string
	segments []sponsorblock.Segment
}

// updateSkipSegments keeps the skip-segment set in sync with the playing
// file and jumps over any segment the playback position entered. Lookups
// run off-tick; a result is only adopted if the same file is still playing.
func (app *App) updateSkipSegments() error {
	if !viper.GetBool(key.SponsorblockEnable) {
		return nil
	}

	if !app.pathObserved {
		app.pathObserved = true
		if err := app.Mpv.ObserveProperty("path"); err != nil {
			return err
		}
	}

	select {
	case result := <-app.segmentsC:
		if result.path == app.segmentsPath {
			app.segments = result.segments
		}
	default:
	}

	path := mpv.PropertyCached[string](app.Mpv, "path").OrElse("")
	if path != app.segmentsPath {
		app.segmentsPath = path
		app.segments = nil
		app.fetchSegments(path)
	}

	app.skipContainedSegment()
	return nil
}

func (app *App) fetchSegments(path string) {
	videoID := sponsorblock.VideoID(path)
	if videoID == "" {
		return
	}

	go func() {
		segments, err := sponsorblock.SegmentsFor(videoID)
		if err != nil {
			log.Warnf("sponsorblock: %v", err)
			return
		}
		app.deliverSegments(segmentsResult{path: path, segments: segments})
	}()
}

// deliverSegments hands a lookup result to the tick loop without blocking.
// A result that finds the slot full is already stale: a newer lookup has
// been started since, and only the current file's segments matter.
func (app *App) deliverSegments(result segmentsResult) {
	select {
	case app.segmentsC <- result:
	default:
		log.Debugf("sponsorblock: dropping stale result for %s", result.path)
	}
}

// skipContainedSegment seeks past a segment containing the position.
// Suppressed while the user seeks interactively, they keep control there.
func (app *App) skipContainedSegment() {
	if len(app.segments) == 0 {
		return
	}
	if _, seeking := app.view.(SeekingView); seeking {
		return
	}

	pos := app.Mpv.Position()
	for _, segment := range app.segments {
		if !segment.Contains(pos) {
			continue
		}

		if err := app.Mpv.SetProperty("time-pos", segment.End().Seconds()); err != nil {
			log.Warnf("skip segment: %v", err)
			return
		}
		app.SpawnToast(SegmentSkippedToast{Label: segment.Label()})
		return
	}
}
