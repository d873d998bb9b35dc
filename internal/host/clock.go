package host

import "time"

// Clock measures wall time between ticks. It never reports a negative
// interval, even if the wall clock steps backwards.
type Clock struct {
	last time.Time
}

// Start sets the reference point for the first Since call.
func (c *Clock) Start(now time.Time) {
	c.last = now
}

// Since returns the time since the previous call (or Start) and moves the
// reference point to now. The first call without Start returns zero.
func (c *Clock) Since(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	if d < 0 {
		return 0
	}
	c.last = now
	return d
}
