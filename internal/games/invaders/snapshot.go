package invaders

// Snapshot contains the observable game state for determinism tests.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick    uint64
	State   string
	Score   int
	Lives   int
	Level   int
	PlayerX int

	// Formation
	FormationX int
	FormationY int
	Direction  string
	Alive      int
	Shooters   int

	PlayerBullets int
	EnemyBullets  int
	BonusActive   bool

	// Bullet positions, two ints (X, Y) each
	BulletData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State: g.state,
		Score: g.score,
		Lives: g.lives,
		Level: g.level,
	}
	if g.state == StateTooSmall || g.formation == nil {
		return snap
	}

	b := g.formation.Bounds()
	snap.PlayerX = g.player.X()
	snap.FormationX = b.X
	snap.FormationY = b.Y
	snap.Direction = g.formation.Direction().String()
	snap.Alive = g.formation.Alive()
	snap.Shooters = len(g.formation.Shooters())
	snap.PlayerBullets = g.playerShots.Len()
	snap.EnemyBullets = g.enemyShots.Len()
	snap.BonusActive = g.bonus.Active()

	snap.BulletData = make([]int, 0, 2*(snap.PlayerBullets+snap.EnemyBullets))
	for _, bs := range []*Bullets{g.playerShots, g.enemyShots} {
		for _, bl := range bs.Items() {
			snap.BulletData = append(snap.BulletData, bl.X, bl.Y)
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FormationX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FormationY) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Alive)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shooters)   //#nosec G115 -- hash computation

	for _, r := range snap.State + snap.Direction {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	if snap.BonusActive {
		h = h*31 + 1
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
