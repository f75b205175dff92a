package core

import "time"

// Clock supplies the current time to cooldowns.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TickClock is a manually advanced clock. Games advance it by one tick
// duration per Step, which keeps cooldown-driven behavior reproducible.
type TickClock struct {
	now time.Time
}

// NewTickClock creates a clock starting at an arbitrary fixed epoch.
func NewTickClock() *TickClock {
	return &TickClock{now: time.Unix(0, 0)}
}

// Now returns the simulated time.
func (c *TickClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *TickClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
