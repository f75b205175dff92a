package formation

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Direction is the heading of the formation.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return "?"
	}
}

// Extend accumulator bounds. The accumulator starts at extendUpper and
// swings between the bounds one pixel per trigger while moving sideways.
const (
	extendUpper = 1
	extendLower = -2
	extendStep  = 1
)

// Boundaries is the result of the per-trigger edge checks.
type Boundaries struct {
	AtBottom   bool
	AtRight    bool
	AtLeft     bool
	AtAltitude bool // a DOWN leg has covered a full descent step
}

// Displacement is the movement applied on one trigger. Extend is the bowing
// nudge, scaled per unit by its distance from the grid center.
type Displacement struct {
	DX, DY int
	Extend int
}

// Mode is the movement policy of a formation. Swarm and Boss are the two
// implementations; everything else (grid, cleanup, shooters) is shared.
type Mode interface {
	// Name identifies the mode in logs.
	Name() string

	// Speed returns the movement throttle in ticks between triggers.
	Speed(f *Formation) int

	// Step runs the direction state machine once and returns this
	// trigger's displacement.
	Step(f *Formation, b Boundaries) Displacement

	// spawn creates the unit for grid cell (col, row) at (x, y).
	spawn(f *Formation, col, row, x, y int) *Unit
}

// Row shares for swarm tiers, in fifths of the grid height: the first
// fifth of rows is tier 3, the next two fifths tier 2, the rest tier 1.
const (
	fifthsTier3 = 1
	fifthsTier2 = 3
)

// Swarm is the classic sweeping formation: it descends at the side edges,
// speeds up as it thins out and bows while moving sideways.
type Swarm struct{}

// Name returns "swarm".
func (Swarm) Name() string { return "swarm" }

// Speed is floor((alive/total)² · base) + minimum: the fewer units remain,
// the fewer ticks between movement triggers.
func (Swarm) Speed(f *Formation) int {
	total := f.settings.Width * f.settings.Height
	return f.alive*f.alive*f.settings.BaseSpeed/(total*total) + f.geo.MinimumSpeed
}

// Step applies the swarm transition table, then derives the displacement.
func (Swarm) Step(f *Formation, b Boundaries) Displacement {
	switch f.direction {
	case DirDown:
		if b.AtAltitude {
			if f.previous == DirRight {
				f.turn(DirLeft)
			} else {
				f.turn(DirRight)
			}
		}
	case DirLeft:
		if b.AtLeft {
			if !b.AtBottom {
				f.previous = f.direction
				f.turn(DirDown)
			} else {
				f.turn(DirRight)
			}
		}
	default:
		if b.AtRight {
			if !b.AtBottom {
				f.previous = f.direction
				f.turn(DirDown)
			} else {
				f.turn(DirLeft)
			}
		}
	}

	atUpper := f.extendCheck >= extendUpper
	atLower := f.extendCheck <= extendLower

	var d Displacement
	switch f.direction {
	case DirRight, DirLeft:
		if atUpper {
			f.movementExtend = -extendStep
		} else if atLower {
			f.movementExtend = extendStep
		}
		d.DX = f.geo.XSpeed
		if f.direction == DirLeft {
			d.DX = -f.geo.XSpeed
		}
	case DirDown:
		// The bow finishes its current swing, then freezes for the descent.
		if atUpper || atLower {
			f.movementExtend = 0
		}
		d.DY = f.geo.YSpeed
	}

	f.extendCheck += f.movementExtend
	d.Extend = f.movementExtend
	return d
}

func (Swarm) spawn(f *Formation, col, row, x, y int) *Unit {
	h := f.settings.Height
	switch {
	case row*5 < fifthsTier3*h:
		return NewUnit(f.clock, x, y, VariantC1, core.ColorWhite)
	case row*5 < fifthsTier2*h:
		return NewUnit(f.clock, x, y, VariantB1, core.ColorCyan)
	default:
		return NewUnit(f.clock, x, y, VariantA1, core.ColorYellow)
	}
}

// Boss is a heavy formation that only sweeps sideways at constant speed.
type Boss struct {
	HitPoints int // Hit points of every boss unit
}

// Name returns "boss".
func (Boss) Name() string { return "boss" }

// Speed is the configured base speed, regardless of losses.
func (Boss) Speed(f *Formation) int {
	return f.settings.BaseSpeed
}

// Step reverses at the side edges. A boss never descends or bows.
func (Boss) Step(f *Formation, b Boundaries) Displacement {
	if f.direction == DirLeft {
		if b.AtLeft {
			f.turn(DirRight)
		}
	} else if b.AtRight {
		f.turn(DirLeft)
	}

	if f.direction == DirRight {
		return Displacement{DX: f.geo.XSpeed}
	}
	return Displacement{DX: -f.geo.XSpeed}
}

func (m Boss) spawn(f *Formation, col, row, x, y int) *Unit {
	return NewBossUnit(f.clock, x, y, m.HitPoints)
}
