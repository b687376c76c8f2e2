package mpv

import (
	"fmt"
	"math"
)

// Time is a playback-relative duration or offset in seconds.
//
// mpv reports every temporal property as a bare float; keeping positions and
// seek deltas behind a named type prevents them from being mixed with other
// scalars (volume percentages, speed ratios) in arithmetic.
type Time float64

// Zero is the additive identity.
const Zero Time = 0

// Seconds constructs a Time from a number of seconds.
func Seconds(n float64) Time {
	return Time(n)
}

// Minutes constructs a Time from a number of minutes.
func Minutes(n float64) Time {
	return Time(n * 60)
}

// Add returns t + other.
func (t Time) Add(other Time) Time {
	return t + other
}

// Sub returns t - other.
func (t Time) Sub(other Time) Time {
	return t - other
}

// Neg returns -t.
func (t Time) Neg() Time {
	return -t
}

// Ratio divides two Times, yielding a dimensionless ratio.
func (t Time) Ratio(other Time) float64 {
	return float64(t) / float64(other)
}

// Div divides a Time by a scalar.
func (t Time) Div(n float64) Time {
	return Time(float64(t) / n)
}

// Seconds returns the raw value in seconds.
func (t Time) Seconds() float64 {
	return float64(t)
}

// MMSS formats the time as m:ss for on-screen display.
func (t Time) MMSS() string {
	s := math.Floor(float64(t))
	minutes := int(s) / 60
	seconds := int(s) % 60
	if seconds < 0 {
		seconds = -seconds
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
