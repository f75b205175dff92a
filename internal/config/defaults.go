package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hardcoded invaders configuration. It
// matches the embedded defaults/invaders.yaml and is used when that file
// cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Geometry: GeometryConfig{
			InitX:            16,
			InitY:            48,
			Separation:       32,
			XSpeed:           8,
			YSpeed:           4,
			BulletSpeed:      4,
			ShootingVariance: 0.2,
			SideMargin:       16,
			BottomMargin:     48,
			DescentDistance:  16,
			MinimumSpeed:     10,
		},
		Display: DisplayConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Player: PlayerConfig{
			Width:          40,
			Height:         16,
			Speed:          8,
			BulletSpeed:    8,
			FireCooldownMs: 600,
			InvulnerableMs: 1500,
		},
		Bonus: BonusConfig{
			Y:          16,
			Speed:      2,
			IntervalMs: 20000,
			VarianceMs: 5000,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			Difficulty:    1,
			BossEvery:     5,
			BossWidth:     3,
			BossHeight:    1,
			BossHitPoints: 10,
		},
		Levels: []LevelConfig{
			{Width: 6, Height: 4, BaseSpeed: 60, ShootingIntervalMs: 2500},
			{Width: 8, Height: 4, BaseSpeed: 60, ShootingIntervalMs: 2000},
			{Width: 8, Height: 5, BaseSpeed: 50, ShootingIntervalMs: 1500},
			{Width: 10, Height: 5, BaseSpeed: 40, ShootingIntervalMs: 1500},
		},
	}
}
