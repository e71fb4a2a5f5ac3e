package game

import "time"

// Clock turns successive tick timestamps into a delta in milliseconds.
type Clock struct {
	last time.Time
}

// Tick returns the milliseconds elapsed since the previous Tick. The first
// call returns 0.
func (c *Clock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return float64(dt) / float64(time.Millisecond)
}
