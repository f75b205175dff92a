package formation

// Destroy marks u destroyed and keeps the shooter set consistent. Units that
// are nil, already destroyed or not part of this formation are ignored.
// The unit stays in the grid, drawn as an explosion, until the next cleanup.
func (f *Formation) Destroy(u *Unit) {
	if u == nil || u.destroyed {
		return
	}
	col := f.column(u)
	if col == nil {
		return
	}

	u.Destroy()
	f.alive--
	f.logger.Debug("unit destroyed", "column", u.col, "row", u.row, "alive", f.alive)

	for i, s := range f.shooters {
		if s != u {
			continue
		}
		if next := col.rearmostLive(); next != nil {
			f.shooters[i] = next
		} else {
			f.shooters = append(f.shooters[:i], f.shooters[i+1:]...)
			f.logger.Debug("shooters reduced", "shooters", len(f.shooters))
		}
		break
	}
}

// column returns the grid column holding u, or nil.
func (f *Formation) column(u *Unit) *column {
	for _, col := range f.columns {
		if col.index == u.col {
			if col.contains(u) {
				return col
			}
			return nil
		}
	}
	return nil
}

// Shoot fires a volley into sink if the shooting cooldown has elapsed and
// returns the number of projectiles spawned. Each shot leaves from the
// horizontal center of its shooter.
func (f *Formation) Shoot(sink ProjectileSink) int {
	if sink == nil || len(f.shooters) == 0 {
		return 0
	}
	if !f.shootCooldown.HasElapsed() {
		return 0
	}
	f.shootCooldown.Reset()

	n := EligibleShooters(f.settings.Difficulty, f.settings.Level, len(f.shooters))
	for _, u := range f.SelectShooters(n) {
		sink.Spawn(Projectile{
			X:     u.x + u.width/2,
			Y:     u.y,
			Speed: f.geo.BulletSpeed,
		})
		f.audio.PlayEnemyFire()
	}
	return n
}

// SelectShooters picks n distinct shooters uniformly at random. n is
// clamped to the size of the shooter set.
func (f *Formation) SelectShooters(n int) []*Unit {
	n = max(0, min(n, len(f.shooters)))
	if n == 0 {
		return nil
	}
	out := make([]*Unit, 0, n)
	for _, i := range f.rng.Perm(len(f.shooters))[:n] {
		out = append(out, f.shooters[i])
	}
	return out
}

// EligibleShooters returns how many shooters fire per volley. Tiers 0 and 1
// fire one, tiers 2 and 3 fire two, and higher tiers have no entry and fire
// none. From level 4 on every tier except 0 adds one more. The result never
// exceeds available.
func EligibleShooters(difficulty, level, available int) int {
	var n int
	switch difficulty {
	case 0, 1:
		n = 1
	case 2, 3:
		n = 2
	}
	if difficulty != 0 && level >= 4 {
		n++
	}
	return max(0, min(n, available))
}
