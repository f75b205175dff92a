package formation

import (
	"errors"
	"fmt"
)

// Geometry holds the layout and motion constants of a formation,
// in simulation pixels and ticks.
type Geometry struct {
	InitX            int     // Anchor x of the first column
	InitY            int     // Anchor y of the first row
	Separation       int     // Grid pitch, both axes
	XSpeed           int     // Lateral step per movement trigger
	YSpeed           int     // Downward step per movement trigger
	BulletSpeed      int     // Enemy bullet speed per tick
	ShootingVariance float64 // Fraction of the shooting interval used as ± jitter
	SideMargin       int
	BottomMargin     int
	DescentDistance  int // Vertical travel of one DOWN leg
	MinimumSpeed     int // Lowest movement throttle, in ticks
}

// DefaultGeometry returns the classic layout constants.
func DefaultGeometry() Geometry {
	return Geometry{
		InitX:            20,
		InitY:            100,
		Separation:       40,
		XSpeed:           8,
		YSpeed:           4,
		BulletSpeed:      4,
		ShootingVariance: 0.2,
		SideMargin:       20,
		BottomMargin:     80,
		DescentDistance:  20,
		MinimumSpeed:     10,
	}
}

// Validate checks that the constants describe a formation that can move.
// A DOWN leg only ends when the rigid y realigns with DescentDistance, so
// the start row and the step must both divide it.
func (g Geometry) Validate() error {
	if g.Separation <= 0 {
		return errors.New("separation must be positive")
	}
	if g.XSpeed <= 0 || g.YSpeed <= 0 {
		return fmt.Errorf("speeds must be positive (x=%d, y=%d)", g.XSpeed, g.YSpeed)
	}
	if g.BulletSpeed <= 0 {
		return errors.New("bullet speed must be positive")
	}
	if g.ShootingVariance < 0 || g.ShootingVariance >= 1 {
		return fmt.Errorf("shooting variance %.2f outside [0, 1)", g.ShootingVariance)
	}
	if g.MinimumSpeed < 1 {
		return errors.New("minimum speed must be at least 1")
	}
	if g.DescentDistance <= 0 {
		return errors.New("descent distance must be positive")
	}
	if g.DescentDistance%g.YSpeed != 0 {
		return fmt.Errorf("descent distance %d is not a multiple of y speed %d", g.DescentDistance, g.YSpeed)
	}
	if g.InitY%g.DescentDistance != 0 {
		return fmt.Errorf("initial y %d is not aligned to descent distance %d", g.InitY, g.DescentDistance)
	}
	return nil
}
