package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/formation"
)

// startWave builds the formation for a level and clears the arena.
func (g *Game) startWave(level int) error {
	wave := g.cfg.LevelSettings(level)
	if g.mode == ModeBoss && level == g.firstLevel() && !wave.Boss {
		// Boss waves are disabled in the config; the rush still opens with one.
		wave.Boss = true
		wave.Width = max(g.cfg.Gameplay.BossWidth, 1)
		wave.Height = max(g.cfg.Gameplay.BossHeight, 1)
		wave.BossHitPoints = max(g.cfg.Gameplay.BossHitPoints, 1)
	}

	var mode formation.Mode = formation.Swarm{}
	if wave.Boss {
		mode = formation.Boss{HitPoints: wave.BossHitPoints}
	}

	geo := geometry(g.cfg.Geometry)
	f, err := formation.New(formation.Settings{
		Width:            wave.Width,
		Height:           wave.Height,
		BaseSpeed:        wave.BaseSpeed,
		ShootingInterval: wave.ShootingInterval,
		Difficulty:       g.cfg.Gameplay.Difficulty,
		Level:            level,
		Mode:             mode,
	}, formation.Env{
		Arena:    g.arena,
		Clock:    g.clock,
		Rand:     g.rng,
		Audio:    g.sounds,
		Logger:   g.logger.With("level", level),
		Geometry: &geo,
	})
	if err != nil {
		return err
	}

	g.formation = f
	g.wave = wave
	g.playerShots.Clear()
	g.enemyShots.Clear()
	g.bonus.Cancel()

	g.logger.Info("wave started",
		"level", level,
		"mode", mode.Name(),
		"columns", wave.Width,
		"rows", wave.Height,
		"interval", wave.ShootingInterval,
	)
	return nil
}

// geometry converts the YAML geometry section into formation constants.
func geometry(c config.GeometryConfig) formation.Geometry {
	return formation.Geometry{
		InitX:            c.InitX,
		InitY:            c.InitY,
		Separation:       c.Separation,
		XSpeed:           c.XSpeed,
		YSpeed:           c.YSpeed,
		BulletSpeed:      c.BulletSpeed,
		ShootingVariance: c.ShootingVariance,
		SideMargin:       c.SideMargin,
		BottomMargin:     c.BottomMargin,
		DescentDistance:  c.DescentDistance,
		MinimumSpeed:     c.MinimumSpeed,
	}
}
