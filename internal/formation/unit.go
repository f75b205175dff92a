package formation

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Unit dimensions and timings, in simulation pixels.
const (
	UnitWidth  = 24
	UnitHeight = 16

	BonusWidth  = 32
	BonusHeight = 14
	BonusStartX = -32
	BonusStartY = 60

	AnimationPeriod = 500 * time.Millisecond
)

// Point values awarded on destruction.
const (
	PointsTier1 = 10
	PointsTier2 = 20
	PointsTier3 = 30
	PointsBonus = 100
	PointsBoss  = 1000
)

// Variant is the visual variant of a unit. Two-frame variants alternate on
// every animation tick.
type Variant int

const (
	VariantA1 Variant = iota // tier 1, frame 1
	VariantA2                // tier 1, frame 2
	VariantB1                // tier 2, frame 1
	VariantB2                // tier 2, frame 2
	VariantC1                // tier 3, frame 1
	VariantC2                // tier 3, frame 2
	VariantBonus
	VariantBoss
	VariantExplosion
)

// Tier returns the strength class of the variant: 1-3 for grid units,
// 0 for everything else.
func (v Variant) Tier() int {
	switch v {
	case VariantA1, VariantA2:
		return 1
	case VariantB1, VariantB2:
		return 2
	case VariantC1, VariantC2:
		return 3
	default:
		return 0
	}
}

// nextFrame returns the paired animation frame, or v itself for variants
// that do not animate.
func (v Variant) nextFrame() Variant {
	switch v {
	case VariantA1:
		return VariantA2
	case VariantA2:
		return VariantA1
	case VariantB1:
		return VariantB2
	case VariantB2:
		return VariantB1
	case VariantC1:
		return VariantC2
	case VariantC2:
		return VariantC1
	default:
		return v
	}
}

func (v Variant) String() string {
	switch v {
	case VariantA1:
		return "A1"
	case VariantA2:
		return "A2"
	case VariantB1:
		return "B1"
	case VariantB2:
		return "B2"
	case VariantC1:
		return "C1"
	case VariantC2:
		return "C2"
	case VariantBonus:
		return "bonus"
	case VariantBoss:
		return "boss"
	case VariantExplosion:
		return "explosion"
	default:
		return "?"
	}
}

// Unit is a single enemy. Position is the top-left corner in pixels.
type Unit struct {
	x, y          int
	width, height int
	variant       Variant
	tint          core.Color
	hitPoints     int
	points        int
	destroyed     bool
	animation     *core.Cooldown

	// Grid cell assigned at construction; -1 for units outside a grid.
	col, row int
}

// NewUnit creates a standard grid unit. Points and hit points follow the
// variant's tier: tier 1 is 10/1, tier 2 is 20/1, tier 3 is 30/2.
func NewUnit(clock core.Clock, x, y int, variant Variant, tint core.Color) *Unit {
	u := &Unit{
		x:         x,
		y:         y,
		width:     UnitWidth,
		height:    UnitHeight,
		variant:   variant,
		tint:      tint,
		animation: core.NewCooldown(clock, AnimationPeriod),
		col:       -1,
		row:       -1,
	}

	switch variant.Tier() {
	case 1:
		u.points, u.hitPoints = PointsTier1, 1
	case 2:
		u.points, u.hitPoints = PointsTier2, 1
	case 3:
		u.points, u.hitPoints = PointsTier3, 2
	}
	return u
}

// NewBonusUnit creates the bonus unit just off the left edge of the arena.
// It does not animate.
func NewBonusUnit(tint core.Color) *Unit {
	return &Unit{
		x:         BonusStartX,
		y:         BonusStartY,
		width:     BonusWidth,
		height:    BonusHeight,
		variant:   VariantBonus,
		tint:      tint,
		hitPoints: 1,
		points:    PointsBonus,
		col:       -1,
		row:       -1,
	}
}

// NewBossUnit creates a boss unit with the given hit points.
func NewBossUnit(clock core.Clock, x, y, hitPoints int) *Unit {
	return &Unit{
		x:         x,
		y:         y,
		width:     UnitWidth,
		height:    UnitHeight,
		variant:   VariantBoss,
		tint:      core.ColorBlue,
		hitPoints: hitPoints,
		points:    PointsBoss,
		animation: core.NewCooldown(clock, AnimationPeriod),
		col:       -1,
		row:       -1,
	}
}

// X returns the left edge.
func (u *Unit) X() int { return u.x }

// Y returns the top edge.
func (u *Unit) Y() int { return u.y }

// Width returns the unit width.
func (u *Unit) Width() int { return u.width }

// Height returns the unit height.
func (u *Unit) Height() int { return u.height }

// Bounds returns the unit's hit box.
func (u *Unit) Bounds() core.Rect {
	return core.NewRect(u.x, u.y, u.width, u.height)
}

// Variant returns the current visual variant.
func (u *Unit) Variant() Variant { return u.variant }

// Tint returns the unit color.
func (u *Unit) Tint() core.Color { return u.tint }

// Column returns the grid column assigned at construction, or -1.
func (u *Unit) Column() int { return u.col }

// Row returns the grid row assigned at construction, or -1.
func (u *Unit) Row() int { return u.row }

// Move translates the unit. No bounds checking happens here.
func (u *Unit) Move(dx, dy int) {
	u.x += dx
	u.y += dy
}

// Update swaps the animation frame once the animation timer expires.
func (u *Unit) Update() {
	if u.animation == nil || !u.animation.HasElapsed() {
		return
	}
	u.animation.Reset()
	u.variant = u.variant.nextFrame()
}

// ReduceLife takes one hit point. It never destroys the unit; the caller
// does that explicitly once HitPoints reaches zero.
func (u *Unit) ReduceLife() {
	if u.hitPoints > 0 {
		u.hitPoints--
	}
}

// Destroy marks the unit destroyed and switches it to the explosion frame.
func (u *Unit) Destroy() {
	u.destroyed = true
	u.variant = VariantExplosion
}

// IsDestroyed reports whether Destroy has been called.
func (u *Unit) IsDestroyed() bool { return u.destroyed }

// PointValue returns the score awarded for destroying the unit.
func (u *Unit) PointValue() int { return u.points }

// HitPoints returns the remaining hit points.
func (u *Unit) HitPoints() int { return u.hitPoints }
