// Package formation simulates a grid of enemy units that moves, descends,
// shrinks and fires as one body inside a fixed arena. A formation runs in
// one of two modes for its whole life: Swarm, the sweeping wave that speeds
// up as it thins out, or Boss, a heavy grid that only strafes.
//
// The caller drives it once per tick: Update for movement and cleanup,
// Shoot for firing. Everything runs on the caller's goroutine.
package formation

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Settings describe one wave.
type Settings struct {
	Width            int           // Columns
	Height           int           // Rows
	BaseSpeed        int           // Movement throttle base, in ticks
	ShootingInterval time.Duration // Mean time between volleys
	Difficulty       int           // Difficulty tier, 0 = easiest
	Level            int           // Player level, 1-based
	Mode             Mode          // Swarm{} or Boss{...}; nil means Swarm
}

// Env carries the collaborators a formation consumes.
type Env struct {
	Arena    Arena
	Clock    core.Clock  // Drives animation and shooting cooldowns
	Rand     *rand.Rand  // Shared generator for shooter selection and jitter
	Audio    Audio       // Optional
	Logger   *log.Logger // Optional
	Geometry *Geometry   // Optional; DefaultGeometry when nil
}

// column is one vertical slice of the grid, ordered top to bottom.
type column struct {
	index int
	units []*Unit
}

// rearmostLive returns the live unit with the highest row, or nil.
func (c *column) rearmostLive() *Unit {
	for i := len(c.units) - 1; i >= 0; i-- {
		if !c.units[i].destroyed {
			return c.units[i]
		}
	}
	return nil
}

func (c *column) contains(u *Unit) bool {
	for _, v := range c.units {
		if v == u {
			return true
		}
	}
	return false
}

// Formation owns a grid of units and moves them as one body.
type Formation struct {
	mode     Mode
	settings Settings
	geo      Geometry

	arena  Arena
	clock  core.Clock
	rng    *rand.Rand
	audio  Audio
	logger *log.Logger

	columns  []*column
	shooters []*Unit
	alive    int

	// Bounding box of the surviving units.
	anchorX, anchorY int
	width, height    int

	// Un-bowed position of grid cell (0, 0). Only base displacement moves it.
	originX, originY int

	direction Direction
	previous  Direction // heading before the current DOWN leg

	interval int // ticks since the last movement trigger
	speed    int // current throttle

	extendCheck    int
	movementExtend int

	centerCol, centerRow int

	shootCooldown *core.Cooldown
}

// New lays out a Width×Height grid and returns the formation.
// Construction is the only place invalid input is reported.
func New(s Settings, env Env) (*Formation, error) {
	if s.Width < 1 || s.Height < 1 {
		return nil, fmt.Errorf("formation: size %dx%d, need at least 1x1", s.Width, s.Height)
	}
	if s.BaseSpeed < 0 {
		return nil, fmt.Errorf("formation: negative base speed %d", s.BaseSpeed)
	}
	if s.ShootingInterval <= 0 {
		return nil, fmt.Errorf("formation: shooting interval must be positive, got %v", s.ShootingInterval)
	}
	if s.Difficulty < 0 {
		return nil, fmt.Errorf("formation: negative difficulty %d", s.Difficulty)
	}
	if s.Mode == nil {
		s.Mode = Swarm{}
	}
	if boss, ok := s.Mode.(Boss); ok && boss.HitPoints < 1 {
		return nil, fmt.Errorf("formation: boss hit points must be at least 1, got %d", boss.HitPoints)
	}
	if env.Arena == nil {
		return nil, errors.New("formation: nil arena")
	}
	if env.Rand == nil {
		return nil, errors.New("formation: nil random source")
	}

	geo := DefaultGeometry()
	if env.Geometry != nil {
		geo = *env.Geometry
	}
	if err := geo.Validate(); err != nil {
		return nil, fmt.Errorf("formation: geometry: %w", err)
	}

	if env.Clock == nil {
		env.Clock = core.SystemClock{}
	}
	if env.Audio == nil {
		env.Audio = silentAudio{}
	}
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}

	f := &Formation{
		mode:        s.Mode,
		settings:    s,
		geo:         geo,
		arena:       env.Arena,
		clock:       env.Clock,
		rng:         env.Rand,
		audio:       env.Audio,
		logger:      env.Logger,
		direction:   DirRight,
		previous:    DirRight,
		originX:     geo.InitX,
		originY:     geo.InitY,
		extendCheck: extendUpper,
		centerCol:   s.Width / 2,
		centerRow:   s.Height / 2,
	}

	f.logger.Info("initializing formation",
		"mode", f.mode.Name(),
		"columns", s.Width,
		"rows", s.Height,
		"x", geo.InitX,
		"y", geo.InitY,
	)

	f.columns = make([]*column, s.Width)
	for c := range s.Width {
		col := &column{index: c, units: make([]*Unit, 0, s.Height)}
		for r := range s.Height {
			x := geo.Separation*c + geo.InitX
			y := geo.Separation*r + geo.InitY
			u := f.mode.spawn(f, c, r, x, y)
			u.col, u.row = c, r
			col.units = append(col.units, u)
			f.alive++
		}
		f.columns[c] = col
	}

	f.shooters = make([]*Unit, 0, s.Width)
	for _, col := range f.columns {
		f.shooters = append(f.shooters, col.units[len(col.units)-1])
	}

	f.recomputeBounds()
	f.speed = f.mode.Speed(f)

	variance := time.Duration(float64(s.ShootingInterval) * geo.ShootingVariance)
	f.shootCooldown = core.NewVariableCooldown(f.clock, s.ShootingInterval, variance, f.rng)
	f.shootCooldown.Reset()

	return f, nil
}

// Mode returns the movement mode.
func (f *Formation) Mode() Mode { return f.mode }

// Direction returns the current heading.
func (f *Formation) Direction() Direction { return f.direction }

// PreviousDirection returns the heading held before the last DOWN leg.
func (f *Formation) PreviousDirection() Direction { return f.previous }

// Speed returns the current movement throttle in ticks.
func (f *Formation) Speed() int { return f.speed }

// Alive returns the number of units not yet destroyed.
func (f *Formation) Alive() int { return f.alive }

// IsEmpty reports whether every unit has been destroyed.
func (f *Formation) IsEmpty() bool { return f.alive <= 0 }

// Columns returns the number of columns still in the grid.
func (f *Formation) Columns() int { return len(f.columns) }

// Bounds returns the bounding box of the units in the grid.
func (f *Formation) Bounds() core.Rect {
	return core.NewRect(f.anchorX, f.anchorY, f.width, f.height)
}

// Shooters returns a copy of the shooter set, one entry per column that
// still has a live unit.
func (f *Formation) Shooters() []*Unit {
	out := make([]*Unit, len(f.shooters))
	copy(out, f.shooters)
	return out
}

// Units yields every unit still in the grid, column by column. Units that
// were destroyed since the last movement trigger are included until cleanup
// removes them, so their explosion can be drawn. Each call starts over.
func (f *Formation) Units() iter.Seq[*Unit] {
	return func(yield func(*Unit) bool) {
		for _, col := range f.columns {
			for _, u := range col.units {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// Draw hands every unit in the grid to the renderer.
func (f *Formation) Draw(r Renderer) {
	for u := range f.Units() {
		r.DrawUnit(u, u.x, u.y)
	}
}

// turn switches heading and logs the transition.
func (f *Formation) turn(to Direction) {
	f.logger.Info("formation changed direction", "mode", f.mode.Name(), "from", f.direction, "to", to)
	f.direction = to
}
