package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/formation"
)

// Bullet hit box, in pixels.
const (
	bulletWidth  = 2
	bulletHeight = 8
)

// Bullet is a projectile. Negative speed moves up.
type Bullet struct {
	X, Y  int
	Speed int
}

// Bounds returns the bullet hit box, centered on X.
func (b *Bullet) Bounds() core.Rect {
	return core.NewRect(b.X-bulletWidth/2, b.Y, bulletWidth, bulletHeight)
}

// Bullets is a set of live projectiles. It is also the sink the formation
// fires into.
type Bullets struct {
	items []*Bullet
}

// NewBullets creates an empty set.
func NewBullets() *Bullets {
	return &Bullets{items: make([]*Bullet, 0, 16)}
}

// Spawn adds an enemy projectile.
func (bs *Bullets) Spawn(p formation.Projectile) {
	bs.add(&Bullet{X: p.X, Y: p.Y, Speed: p.Speed})
}

func (bs *Bullets) add(b *Bullet) {
	bs.items = append(bs.items, b)
}

// Len returns the number of live bullets.
func (bs *Bullets) Len() int { return len(bs.items) }

// Items returns the live bullets.
func (bs *Bullets) Items() []*Bullet { return bs.items }

// Clear removes every bullet.
func (bs *Bullets) Clear() {
	clear(bs.items)
	bs.items = bs.items[:0]
}

// Update moves every bullet and drops the ones that left the arena.
func (bs *Bullets) Update(a Arena) {
	bs.retain(func(b *Bullet) bool {
		b.Y += b.Speed
		return b.Y+bulletHeight > 0 && b.Y < a.Height()
	})
}

// retain keeps the bullets for which keep returns true.
func (bs *Bullets) retain(keep func(*Bullet) bool) {
	kept := bs.items[:0]
	for _, b := range bs.items {
		if keep(b) {
			kept = append(kept, b)
		}
	}
	clear(bs.items[len(kept):])
	bs.items = kept
}
