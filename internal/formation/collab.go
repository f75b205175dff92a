package formation

// Arena reports the playable area in pixels. It is queried on every
// movement trigger, so it may change size between triggers.
type Arena interface {
	Width() int
	Height() int
}

// Renderer draws a unit at a pixel position.
type Renderer interface {
	DrawUnit(u *Unit, x, y int)
}

// Projectile is a spawn request for an enemy bullet.
// Speed is in pixels per tick; positive moves down.
type Projectile struct {
	X, Y  int
	Speed int
}

// ProjectileSink receives the bullets fired by the formation.
type ProjectileSink interface {
	Spawn(p Projectile)
}

// Audio plays the enemy fire sound.
type Audio interface {
	PlayEnemyFire()
}

// FixedArena is an Arena with constant dimensions.
type FixedArena struct {
	W, H int
}

// Width returns W.
func (a FixedArena) Width() int { return a.W }

// Height returns H.
func (a FixedArena) Height() int { return a.H }

type silentAudio struct{}

func (silentAudio) PlayEnemyFire() {}
