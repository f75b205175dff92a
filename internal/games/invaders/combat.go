package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/formation"
)

// resolveHits applies every bullet collision of this tick. A bullet is
// spent on the first thing it hits.
func (g *Game) resolveHits() {
	g.playerShots.retain(func(b *Bullet) bool {
		if u := g.unitHitBy(b); u != nil {
			g.damage(u)
			return false
		}
		if g.bonus.Active() && b.Bounds().Intersects(g.bonus.Unit().Bounds()) {
			g.score += g.bonus.Unit().PointValue()
			g.bonus.Destroy()
			g.sounds.PlayExplosion()
			g.logger.Debug("bonus unit destroyed", "score", g.score)
			return false
		}
		return true
	})

	g.enemyShots.retain(func(b *Bullet) bool {
		if !b.Bounds().Intersects(g.player.Bounds()) {
			return true
		}
		if !g.player.Invulnerable() {
			g.lives--
			g.player.Hit()
			g.sounds.PlayExplosion()
			g.logger.Info("player hit", "lives", g.lives)
		}
		return false
	})
}

// unitHitBy returns the first live formation unit the bullet overlaps.
func (g *Game) unitHitBy(b *Bullet) *formation.Unit {
	box := b.Bounds()
	for u := range g.formation.Units() {
		if !u.IsDestroyed() && box.Intersects(u.Bounds()) {
			return u
		}
	}
	return nil
}

// damage takes a hit point from u and destroys it once none are left.
func (g *Game) damage(u *formation.Unit) {
	u.ReduceLife()
	if u.HitPoints() > 0 {
		return
	}
	g.score += u.PointValue()
	g.formation.Destroy(u)
	g.sounds.PlayExplosion()
}
