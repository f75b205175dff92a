package invaders

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/formation"
)

// explosionTicks is how long a shot-down bonus stays on screen.
const explosionTicks = 20

// BonusSpawner launches the bonus unit across the top of the arena on a
// variable cooldown. At most one bonus unit is alive at a time.
type BonusSpawner struct {
	cooldown *core.Cooldown
	y        int
	speed    int

	unit   *formation.Unit
	fading int // Ticks left on the explosion of a shot-down unit
}

// NewBonusSpawner creates a spawner whose first launch is one interval away.
func NewBonusSpawner(clock core.Clock, rng *rand.Rand, c config.BonusConfig) *BonusSpawner {
	cd := core.NewVariableCooldown(clock,
		time.Duration(c.IntervalMs)*time.Millisecond,
		time.Duration(c.VarianceMs)*time.Millisecond,
		rng,
	)
	cd.Reset()
	return &BonusSpawner{
		cooldown: cd,
		y:        c.Y,
		speed:    c.Speed,
	}
}

// Unit returns the bonus unit on screen, or nil.
func (b *BonusSpawner) Unit() *formation.Unit { return b.unit }

// Active reports whether a live bonus unit is crossing the arena.
func (b *BonusSpawner) Active() bool {
	return b.unit != nil && !b.unit.IsDestroyed()
}

// Update launches, moves and retires the bonus unit.
func (b *BonusSpawner) Update(a Arena, s Sounds) {
	if b.unit == nil {
		if b.cooldown.HasElapsed() {
			b.unit = formation.NewBonusUnit(core.ColorMagenta)
			b.unit.Move(0, b.y-formation.BonusStartY)
			s.PlayBonus()
		}
		return
	}

	if b.unit.IsDestroyed() {
		b.fading--
		if b.fading <= 0 {
			b.retire()
		}
		return
	}

	b.unit.Move(b.speed, 0)
	if b.unit.X() >= a.Width() {
		b.retire()
	}
}

// Destroy shoots the bonus unit down.
func (b *BonusSpawner) Destroy() {
	if !b.Active() {
		return
	}
	b.unit.Destroy()
	b.fading = explosionTicks
}

// Cancel removes any bonus unit and restarts the launch timer.
func (b *BonusSpawner) Cancel() {
	b.retire()
}

func (b *BonusSpawner) retire() {
	b.unit = nil
	b.fading = 0
	b.cooldown.Reset()
}
