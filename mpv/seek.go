package mpv

import (
	"time"

	"github.com/samber/mo"
)

// SeekSpeed is one step on the interactive seek distance ladder.
type SeekSpeed int

const (
	SpeedSecond SeekSpeed = iota
	SpeedFiveSeconds
	SpeedThirtySeconds
	SpeedMinute
	SpeedTenMinutes
)

// DefaultSeekSpeed is the initial speed of a fresh seek session.
const DefaultSeekSpeed = SpeedFiveSeconds

// seekResumeWindow is the grace period after FinishSeek during which a new
// StartSeek resumes the ended session instead of creating a fresh one.
const seekResumeWindow = 60 * time.Second

// Distance returns the seek distance for one press at this speed.
func (s SeekSpeed) Distance() Time {
	switch s {
	case SpeedSecond:
		return Seconds(1)
	case SpeedFiveSeconds:
		return Seconds(5)
	case SpeedThirtySeconds:
		return Seconds(30)
	case SpeedMinute:
		return Minutes(1)
	case SpeedTenMinutes:
		return Minutes(10)
	default:
		return Zero
	}
}

// Label returns the short on-screen label for the speed.
func (s SeekSpeed) Label() string {
	switch s {
	case SpeedSecond:
		return "1s"
	case SpeedFiveSeconds:
		return "5s"
	case SpeedThirtySeconds:
		return "30s"
	case SpeedMinute:
		return "1m"
	case SpeedTenMinutes:
		return "10m"
	default:
		return "?"
	}
}

// Longer steps up the ladder, or None at the top. No wraparound.
func (s SeekSpeed) Longer() mo.Option[SeekSpeed] {
	if s >= SpeedTenMinutes {
		return mo.None[SeekSpeed]()
	}
	return mo.Some(s + 1)
}

// Shorter steps down the ladder, or None at the bottom.
func (s SeekSpeed) Shorter() mo.Option[SeekSpeed] {
	if s <= SpeedSecond {
		return mo.None[SeekSpeed]()
	}
	return mo.Some(s - 1)
}

// seekSession is the state of one bounded interactive seeking session.
//
// While ended is None the session is live: forward/backward seeks apply the
// current speed. Once ended is set the session is in a grace window during
// which StartSeek resumes it, preserving speed and exactness. The position
// and pause snapshot from before the session backs CancelSeek's rollback.
type seekSession struct {
	speed SeekSpeed
	exact bool
	ended mo.Option[time.Time]

	// Snapshot from before the session started.
	pos    float64 // percent-pos
	paused bool
}

// liveSeekSession returns the current live session, resuming or creating
// one as needed. Creating or resuming pauses the player and snapshots the
// current position and pause state for rollback.
func (c *Client) liveSeekSession() (*seekSession, error) {
	s := c.seek

	// Already live: idempotent.
	if s != nil && s.ended.IsAbsent() {
		return s, nil
	}

	// Ended within the grace window: resume with a fresh snapshot but the
	// same speed and exactness.
	if s != nil {
		if ended, ok := s.ended.Get(); ok && c.now().Sub(ended) < seekResumeWindow {
			pos, err := GetProperty[float64](c, "percent-pos")
			if err != nil {
				return nil, err
			}
			paused, err := GetProperty[bool](c, "pause")
			if err != nil {
				return nil, err
			}
			_ = c.Pause()

			s.pos = pos
			s.paused = paused
			s.ended = mo.None[time.Time]()
			return s, nil
		}
	}

	// No session, or the grace window elapsed: start fresh.
	pos, err := GetProperty[float64](c, "percent-pos")
	if err != nil {
		return nil, err
	}
	paused, err := GetProperty[bool](c, "pause")
	if err != nil {
		return nil, err
	}
	_ = c.Pause()

	c.seek = &seekSession{
		speed:  DefaultSeekSpeed,
		pos:    pos,
		paused: paused,
	}
	return c.seek, nil
}

// StartSeek opens (or resumes) an interactive seek session.
func (c *Client) StartSeek() error {
	_, err := c.liveSeekSession()
	return err
}

func (c *Client) seekBy(forward bool) error {
	s, err := c.liveSeekSession()
	if err != nil {
		return err
	}

	delta := s.speed.Distance()
	if !forward {
		delta = delta.Neg()
	}

	exact := s.exact
	if forward && !exact {
		// Keyframe seeking overshoots; near end-of-media that skips past the
		// end entirely, so force an exact seek when the remaining duration
		// is shorter than the seek distance.
		if left, ok := c.SecondsLeft().Get(); ok && left < s.speed.Distance() {
			exact = true
		}
	}

	_, err = c.exec(seekCmd(delta, exact))
	return err
}

// SeekForward seeks forward by the session's current speed.
func (c *Client) SeekForward() error {
	return c.seekBy(true)
}

// SeekBackward seeks backward by the session's current speed.
func (c *Client) SeekBackward() error {
	return c.seekBy(false)
}

// SeekStateless issues a one-off relative seek, independent of any session.
func (c *Client) SeekStateless(delta Time, exact bool) error {
	_, err := c.exec(seekCmd(delta, exact))
	return err
}

// SeekFaster steps the session speed up the ladder. No-op without a session
// or at the top.
func (c *Client) SeekFaster() {
	if c.seek == nil {
		return
	}
	if longer, ok := c.seek.speed.Longer().Get(); ok {
		c.seek.speed = longer
	}
}

// SeekSlower steps the session speed down the ladder.
func (c *Client) SeekSlower() {
	if c.seek == nil {
		return
	}
	if shorter, ok := c.seek.speed.Shorter().Get(); ok {
		c.seek.speed = shorter
	}
}

// SeekSpeed returns the current session's speed, if a session exists.
func (c *Client) SeekSpeed() mo.Option[SeekSpeed] {
	if c.seek == nil {
		return mo.None[SeekSpeed]()
	}
	return mo.Some(c.seek.speed)
}

// SeekExact reports whether the current session seeks exactly.
func (c *Client) SeekExact() bool {
	return c.seek != nil && c.seek.exact
}

// ToggleSeekExact flips the session's exact flag. No-op without a session.
func (c *Client) ToggleSeekExact() {
	if c.seek != nil {
		c.seek.exact = !c.seek.exact
	}
}

// FinishSeek closes the session into its grace window, unpausing the player
// if it was the session that paused it. Speed and exactness survive for a
// possible resume.
func (c *Client) FinishSeek() error {
	if c.seek == nil {
		return nil
	}
	if !c.seek.paused {
		if err := c.Unpause(); err != nil {
			return err
		}
	}
	c.seek.ended = mo.Some(c.now())
	return nil
}

// CancelSeek discards the session from any state, restoring the pre-session
// position and pause state.
func (c *Client) CancelSeek() error {
	s := c.seek
	c.seek = nil
	if s == nil {
		return nil
	}

	if err := c.SetProperty("percent-pos", s.pos); err != nil {
		return err
	}
	if !s.paused {
		return c.Unpause()
	}
	return nil
}
