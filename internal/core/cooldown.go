package core

import (
	"math/rand"
	"time"
)

// Cooldown answers "has the configured time elapsed since the last Reset".
// A variable cooldown re-rolls its window to base ± variance on every Reset.
type Cooldown struct {
	clock    Clock
	base     time.Duration
	variance time.Duration
	rng      *rand.Rand

	window  time.Duration
	started time.Time
	armed   bool
}

// NewCooldown creates a fixed cooldown of duration d.
func NewCooldown(clock Clock, d time.Duration) *Cooldown {
	return &Cooldown{
		clock:  clock,
		base:   d,
		window: d,
	}
}

// NewVariableCooldown creates a cooldown whose window is drawn uniformly from
// [base-variance, base+variance] each time it is reset.
func NewVariableCooldown(clock Clock, base, variance time.Duration, rng *rand.Rand) *Cooldown {
	if variance < 0 {
		variance = -variance
	}
	return &Cooldown{
		clock:    clock,
		base:     base,
		variance: variance,
		rng:      rng,
		window:   base,
	}
}

// Reset starts a new window at the current clock time.
func (c *Cooldown) Reset() {
	c.started = c.clock.Now()
	c.armed = true
	c.window = c.base
	if c.variance > 0 && c.rng != nil {
		c.window += time.Duration(c.rng.Int63n(int64(2*c.variance)+1)) - c.variance
	}
}

// HasElapsed reports whether the current window has passed.
// A cooldown that was never reset counts as elapsed.
func (c *Cooldown) HasElapsed() bool {
	if !c.armed {
		return true
	}
	return c.clock.Now().Sub(c.started) >= c.window
}

// Window returns the length of the current window.
func (c *Cooldown) Window() time.Duration {
	return c.window
}
