package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the cannon at the bottom of the arena.
type Player struct {
	x, y          int
	width, height int
	speed         int
	bulletSpeed   int
	maxX          int

	fire         *core.Cooldown
	invulnerable *core.Cooldown
}

// NewPlayer centers the cannon on the bottom row of the arena.
func NewPlayer(clock core.Clock, a Arena, c config.PlayerConfig) *Player {
	p := &Player{
		width:        c.Width,
		height:       c.Height,
		speed:        c.Speed,
		bulletSpeed:  c.BulletSpeed,
		maxX:         max(a.Width()-c.Width, 0),
		fire:         core.NewCooldown(clock, time.Duration(c.FireCooldownMs)*time.Millisecond),
		invulnerable: core.NewCooldown(clock, time.Duration(c.InvulnerableMs)*time.Millisecond),
	}
	p.x = p.maxX / 2
	p.y = a.Height() - c.Height
	return p
}

// X returns the left edge.
func (p *Player) X() int { return p.x }

// Y returns the top edge.
func (p *Player) Y() int { return p.y }

// Bounds returns the cannon hit box.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.x, p.y, p.width, p.height)
}

// Invulnerable reports whether the cannon is still recovering from a hit.
func (p *Player) Invulnerable() bool {
	return !p.invulnerable.HasElapsed()
}

// Hit starts the recovery window after losing a life.
func (p *Player) Hit() {
	p.invulnerable.Reset()
}

// Update moves the cannon and fires into shots when asked and ready.
func (p *Player) Update(in core.InputFrame, shots *Bullets, s Sounds) {
	if in.Has(core.ActionLeft) {
		p.x -= p.speed
	}
	if in.Has(core.ActionRight) {
		p.x += p.speed
	}
	p.x = core.Clamp(p.x, 0, p.maxX)

	if in.Has(core.ActionFire) && p.fire.HasElapsed() {
		p.fire.Reset()
		shots.add(&Bullet{
			X:     p.x + p.width/2,
			Y:     p.y - bulletHeight,
			Speed: -p.bulletSpeed,
		})
		s.PlayPlayerFire()
	}
}
