package time

import (
	"fmt"
	"math"
)

// Time counts the number of Process()ing rounds (frames) in an ecs.System.
type Time uint64

// Duration is a span of simulated time, in seconds.
type Duration float64

// Common durations.
const (
	Millisecond Duration = 0.001
	Second      Duration = 1
)

// String the time, either as "tNNN" or "EoT if maxed out.
func (t Time) String() string {
	if t == math.MaxUint64 {
		return "EoT"
	}
	return fmt.Sprintf("t%d", uint64(t))
}

func (d Duration) String() string { return fmt.Sprintf("%.3gs", float64(d)) }

// Seconds returns the duration as a float64 number of seconds.
func (d Duration) Seconds() float64 { return float64(d) }

// Add n frames, clamping at the end of time.
func (t Time) Add(n uint64) Time {
	if math.MaxUint64-Time(n) < t {
		return math.MaxUint64
	}
	return t + Time(n)
}

// Clock counts frames; it is an ecs.Proc, so may be added to a System's
// phase list directly.
type Clock struct {
	now Time
}

// Now returns the current frame.
func (c *Clock) Now() Time { return c.now }

// Process advances the clock by one frame.
func (c *Clock) Process() { c.now = c.now.Add(1) }

// Reset rewinds the clock to the first frame.
func (c *Clock) Reset() { c.now = 0 }

// Timer is a repeating timer: it fires once per Period of advanced time.
type Timer struct {
	Period  Duration
	elapsed Duration
	count   uint64
}

// Advance the timer by d, returning how many times it fired; leftover time
// carries into the next Advance. A non-positive Period never fires.
func (tm *Timer) Advance(d Duration) int {
	if d <= 0 {
		return 0
	}
	tm.elapsed += d
	if tm.Period <= 0 {
		return 0
	}
	n := int(math.Floor(float64(tm.elapsed / tm.Period)))
	if n > 0 {
		tm.elapsed -= Duration(n) * tm.Period
		if tm.elapsed < 0 {
			tm.elapsed = 0
		}
		tm.count += uint64(n)
	}
	return n
}

// Elapsed returns the time accumulated towards the next firing.
func (tm *Timer) Elapsed() Duration { return tm.elapsed }

// Count returns how many times the timer has fired since its last Reset.
func (tm *Timer) Count() uint64 { return tm.count }

// Reset clears accumulated time and the fire count.
func (tm *Timer) Reset() { tm.elapsed, tm.count = 0, 0 }
