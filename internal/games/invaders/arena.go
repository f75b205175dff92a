package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// hudRows is the number of screen rows above the arena.
const hudRows = 1

// Arena is the playfield in simulation pixels. Pixel (0, 0) is the top-left
// corner of the first row below the HUD.
type Arena struct {
	cols, rows   int // Terminal cells
	cellW, cellH int // Pixels per cell
}

// NewArena sizes the arena to a screen of w×h cells.
func NewArena(w, h int, d config.DisplayConfig) Arena {
	return Arena{
		cols:  w,
		rows:  max(h-hudRows, 1),
		cellW: d.CellWidth,
		cellH: d.CellHeight,
	}
}

// Width returns the arena width in pixels.
func (a Arena) Width() int { return a.cols * a.cellW }

// Height returns the arena height in pixels.
func (a Arena) Height() int { return a.rows * a.cellH }

// Cell maps a pixel position to a screen cell.
func (a Arena) Cell(x, y int) (col, row int) {
	return core.FloorDiv(x, a.cellW), hudRows + core.FloorDiv(y, a.cellH)
}

// Cells returns how many screen columns a pixel width covers, at least one.
func (a Arena) Cells(w int) int {
	return max(w/a.cellW, 1)
}
