// Package invaders is the playable game built around the enemy formation:
// a cannon at the bottom of the arena, waves of invaders, a bonus unit
// crossing the top and periodic boss waves.
package invaders

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/formation"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"  // Wave in progress
	StateCleared  = "cleared"  // Wave destroyed, next one coming
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left or the formation landed
	StateTooSmall = "toosmall" // Terminal cannot fit the arena
)

// GameMode selects how the run starts.
type GameMode int

const (
	ModeClassic GameMode = iota // Start at wave 1
	ModeBoss                    // Start at the first boss wave
)

// Minimum terminal size.
const (
	minScreenW = 40
	minScreenH = 16
)

// Sounds is the set of effects the game triggers.
type Sounds interface {
	formation.Audio
	PlayPlayerFire()
	PlayExplosion()
	PlayBonus()
}

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset

	logger = log.New(io.Discard)

	sounds Sounds = audio.Nop{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An unknown name clears it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game and formation logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetSounds sets the effect player. Nil mutes the game.
func SetSounds(s Sounds) {
	if s == nil {
		s = audio.Nop{}
	}
	sounds = s
}

// Game implements the invaders game logic.
type Game struct {
	mode GameMode

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	logger  *log.Logger
	sounds  Sounds

	// Simulation time and randomness, both reproducible from the seed
	clock *core.TickClock
	rng   *rand.Rand

	// Game objects
	arena       Arena
	formation   *formation.Formation
	player      *Player
	playerShots *Bullets
	enemyShots  *Bullets
	bonus       *BonusSpawner

	// Game state
	state      string
	score      int
	lives      int
	level      int
	wave       config.Level
	tickCount  int
	clearDelay int // Ticks left before the next wave starts
}

// New creates a new invaders game starting at wave 1.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBoss creates a new invaders game starting at the first boss wave.
func NewBoss() *Game {
	return &Game{mode: ModeBoss}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeBoss {
		return "invaders_boss"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeBoss {
		return "Invaders (Boss Rush)"
	}
	return "Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = logger
	g.sounds = sounds

	// Load game config
	cfg, err := config.LoadInvaders(configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		g.logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultInvadersConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.clock = core.NewTickClock()
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.clearDelay = 0

	if runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH {
		g.state = StateTooSmall
		return
	}

	g.arena = NewArena(runtime.ScreenW, runtime.ScreenH, cfg.Display)
	g.player = NewPlayer(g.clock, g.arena, cfg.Player)
	g.playerShots = NewBullets()
	g.enemyShots = NewBullets()
	g.bonus = NewBonusSpawner(g.clock, g.rng, cfg.Bonus)

	g.level = g.firstLevel()
	if err := g.startWave(g.level); err != nil {
		// Only reachable with a config that passed Validate but still
		// cannot build a formation; end the run instead of crashing.
		g.logger.Error("cannot start wave", "level", g.level, "err", err)
		g.state = StateGameOver
		return
	}
	g.state = StatePlaying
}

// firstLevel returns the level the run starts at.
func (g *Game) firstLevel() int {
	if g.mode == ModeBoss && g.cfg.Gameplay.BossEvery > 0 {
		return g.cfg.Gameplay.BossEvery
	}
	return 1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == StateTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.clock.Advance(g.runtime.TickDuration())

	if g.state == StateCleared {
		g.stepCleared()
		return core.StepResult{State: g.State()}
	}

	g.player.Update(in, g.playerShots, g.sounds)

	g.formation.Update()
	g.formation.Shoot(g.enemyShots)
	g.bonus.Update(g.arena, g.sounds)

	g.playerShots.Update(g.arena)
	g.enemyShots.Update(g.arena)

	g.resolveHits()
	g.checkOutcome()

	return core.StepResult{State: g.State()}
}

// stepCleared counts down the pause between waves. The old formation keeps
// updating so its last explosions are cleaned up.
func (g *Game) stepCleared() {
	g.formation.Update()
	g.playerShots.Update(g.arena)

	g.clearDelay--
	if g.clearDelay > 0 {
		return
	}

	g.level++
	if err := g.startWave(g.level); err != nil {
		g.logger.Error("cannot start wave", "level", g.level, "err", err)
		g.state = StateGameOver
		return
	}
	g.state = StatePlaying
}

// checkOutcome ends the wave or the run.
func (g *Game) checkOutcome() {
	if g.lives <= 0 {
		g.gameOver("no lives left")
		return
	}

	if g.formation.IsEmpty() {
		g.logger.Info("wave cleared", "level", g.level, "score", g.score)
		g.enemyShots.Clear()
		g.bonus.Cancel()
		g.state = StateCleared
		g.clearDelay = 2 * max(g.runtime.TickRate, 1)
		return
	}

	if g.formation.Bounds().Bottom() > g.player.Y() {
		g.lives = 0
		g.gameOver("formation landed")
	}
}

func (g *Game) gameOver(reason string) {
	g.logger.Info("game over", "reason", reason, "score", g.score, "level", g.level)
	g.state = StateGameOver
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_boss", func() registry.Game {
		return NewBoss()
	})
}
