// Package config provides YAML-based configuration for the invaders game:
// formation geometry, player and bonus tuning, the level table and the
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Display  DisplayConfig  `yaml:"display"`
	Player   PlayerConfig   `yaml:"player"`
	Bonus    BonusConfig    `yaml:"bonus"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Levels   []LevelConfig  `yaml:"levels"`
}

// GeometryConfig defines formation layout and motion, in simulation pixels.
type GeometryConfig struct {
	InitX            int     `yaml:"init_x"`
	InitY            int     `yaml:"init_y"`
	Separation       int     `yaml:"separation"`
	XSpeed           int     `yaml:"x_speed"`
	YSpeed           int     `yaml:"y_speed"`
	BulletSpeed      int     `yaml:"bullet_speed"`
	ShootingVariance float64 `yaml:"shooting_variance"`
	SideMargin       int     `yaml:"side_margin"`
	BottomMargin     int     `yaml:"bottom_margin"`
	DescentDistance  int     `yaml:"descent_distance"`
	MinimumSpeed     int     `yaml:"minimum_speed"`
}

// DisplayConfig maps simulation pixels onto terminal cells.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// PlayerConfig defines the player cannon.
type PlayerConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	Speed          int `yaml:"speed"`
	BulletSpeed    int `yaml:"bullet_speed"`
	FireCooldownMs int `yaml:"fire_cooldown_ms"`
	InvulnerableMs int `yaml:"invulnerable_ms"`
}

// BonusConfig defines the bonus unit that crosses the top of the arena.
type BonusConfig struct {
	Y          int `yaml:"y"`
	Speed      int `yaml:"speed"`
	IntervalMs int `yaml:"interval_ms"`
	VarianceMs int `yaml:"variance_ms"`
}

// GameplayConfig defines lives, difficulty tier and boss waves.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	Difficulty    int `yaml:"difficulty"`
	BossEvery     int `yaml:"boss_every"` // 0 disables boss waves
	BossWidth     int `yaml:"boss_width"`
	BossHeight    int `yaml:"boss_height"`
	BossHitPoints int `yaml:"boss_hit_points"`
}

// LevelConfig describes one wave of the level table.
type LevelConfig struct {
	Width              int `yaml:"width"`
	Height             int `yaml:"height"`
	BaseSpeed          int `yaml:"base_speed"`
	ShootingIntervalMs int `yaml:"shooting_interval_ms"`
}

// Validate checks structural sanity. The error names the first bad field.
func (c InvadersConfig) Validate() error {
	g := c.Geometry
	switch {
	case g.Separation <= 0:
		return errors.New("config: geometry.separation must be positive")
	case g.XSpeed <= 0 || g.YSpeed <= 0:
		return errors.New("config: geometry speeds must be positive")
	case g.BulletSpeed <= 0:
		return errors.New("config: geometry.bullet_speed must be positive")
	case g.ShootingVariance < 0 || g.ShootingVariance >= 1:
		return fmt.Errorf("config: geometry.shooting_variance %.2f outside [0, 1)", g.ShootingVariance)
	case g.MinimumSpeed < 1:
		return errors.New("config: geometry.minimum_speed must be at least 1")
	case g.DescentDistance <= 0:
		return errors.New("config: geometry.descent_distance must be positive")
	case g.DescentDistance%g.YSpeed != 0:
		return fmt.Errorf("config: geometry.descent_distance %d is not a multiple of y_speed %d", g.DescentDistance, g.YSpeed)
	case g.InitY%g.DescentDistance != 0:
		return fmt.Errorf("config: geometry.init_y %d is not a multiple of descent_distance %d", g.InitY, g.DescentDistance)
	}

	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return errors.New("config: display cell size must be positive")
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Speed <= 0 || c.Player.BulletSpeed <= 0 {
		return errors.New("config: player size and speeds must be positive")
	}
	if c.Bonus.IntervalMs <= 0 || c.Bonus.Speed <= 0 {
		return errors.New("config: bonus interval and speed must be positive")
	}
	if c.Bonus.VarianceMs < 0 || c.Bonus.VarianceMs > c.Bonus.IntervalMs {
		return fmt.Errorf("config: bonus.variance_ms %d outside [0, %d]", c.Bonus.VarianceMs, c.Bonus.IntervalMs)
	}
	if c.Gameplay.Lives < 1 {
		return errors.New("config: gameplay.lives must be at least 1")
	}
	if c.Gameplay.Difficulty < 0 {
		return errors.New("config: gameplay.difficulty must not be negative")
	}
	if c.Gameplay.BossEvery < 0 {
		return errors.New("config: gameplay.boss_every must not be negative")
	}
	if c.Gameplay.BossEvery > 0 {
		if c.Gameplay.BossWidth < 1 || c.Gameplay.BossHeight < 1 {
			return errors.New("config: boss formation needs at least 1x1 units")
		}
		if c.Gameplay.BossHitPoints < 1 {
			return errors.New("config: gameplay.boss_hit_points must be at least 1")
		}
	}

	if len(c.Levels) == 0 {
		return errors.New("config: at least one level is required")
	}
	for i, l := range c.Levels {
		if l.Width < 1 || l.Height < 1 {
			return fmt.Errorf("config: level %d: size %dx%d, need at least 1x1", i+1, l.Width, l.Height)
		}
		if l.BaseSpeed < 0 {
			return fmt.Errorf("config: level %d: negative base_speed", i+1)
		}
		if l.ShootingIntervalMs <= 0 {
			return fmt.Errorf("config: level %d: shooting_interval_ms must be positive", i+1)
		}
	}
	return nil
}
