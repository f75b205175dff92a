package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Presets lists the presets in increasing order of difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert}

// ParseDifficulty resolves a preset name, case-insensitively.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or expert)", name)
}

// TierForPreset returns the difficulty tier for a preset, 0 being the easiest.
func TierForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyHard:
		return 2
	case DifficultyExpert:
		return 3
	default:
		return 1
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	cfg.Gameplay.Difficulty = TierForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 3
		cfg.Gameplay.BossHitPoints += cfg.Gameplay.BossHitPoints / 2
	case DifficultyExpert:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.BossHitPoints *= 2
	}
}

// Level is the resolved configuration of one wave.
type Level struct {
	Number           int
	Width            int
	Height           int
	BaseSpeed        int
	ShootingInterval time.Duration
	Boss             bool
	BossHitPoints    int
}

// minShootingInterval bounds how fast cycled levels can fire.
const minShootingInterval = 300 * time.Millisecond

// LevelSettings resolves the wave for a 1-based level number. Levels past
// the end of the table cycle through it again, each pass firing 20% more
// often than the last, down to 300ms. Every BossEvery-th level is a boss wave.
func (c InvadersConfig) LevelSettings(level int) Level {
	level = max(level, 1)
	if len(c.Levels) == 0 {
		c.Levels = DefaultInvadersConfig().Levels
	}
	idx := (level - 1) % len(c.Levels)
	pass := (level - 1) / len(c.Levels)
	l := c.Levels[idx]

	interval := time.Duration(l.ShootingIntervalMs) * time.Millisecond
	for range pass {
		interval = max(interval-interval/5, minShootingInterval)
	}

	out := Level{
		Number:           level,
		Width:            l.Width,
		Height:           l.Height,
		BaseSpeed:        l.BaseSpeed,
		ShootingInterval: interval,
	}

	if c.Gameplay.BossEvery > 0 && level%c.Gameplay.BossEvery == 0 {
		out.Boss = true
		out.Width = c.Gameplay.BossWidth
		out.Height = c.Gameplay.BossHeight
		out.BossHitPoints = c.Gameplay.BossHitPoints
	}
	return out
}
