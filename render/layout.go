package render

import (
	"math"

	"github.com/ScaratP/TypingMonster/constants"
	"github.com/ScaratP/TypingMonster/engine"
)

// WorldBounds returns the world size that maps onto a terminal of cols x rows
// The status bar is outside the world; the hint bar is part of the floor strip
func WorldBounds(cols, rows int) engine.Bounds {
	playRows := rows - constants.StatusBarRows
	if playRows < 1 {
		playRows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return engine.Bounds{
		Width:  float64(cols) * constants.WorldUnitsPerColumn,
		Height: float64(playRows) * constants.WorldUnitsPerRow,
	}
}

// layout maps world coordinates to screen cells for one frame
type layout struct {
	cols, rows int
	bounds     engine.Bounds
}

func newLayout(cols, rows int, bounds engine.Bounds) layout {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		bounds = WorldBounds(cols, rows)
	}
	return layout{cols: cols, rows: rows, bounds: bounds}
}

func (l layout) playRows() int {
	return l.rows - constants.StatusBarRows
}

// column maps a world X to a screen column
func (l layout) column(x float64) int {
	return int(math.Floor(x / l.bounds.Width * float64(l.cols)))
}

// row maps a world Y to a screen row; negative world Y lands above the play area
func (l layout) row(y float64) int {
	return constants.StatusBarRows + int(math.Floor(y/l.bounds.Height*float64(l.playRows())))
}

// inPlayArea reports whether row is between the status and hint bars
func (l layout) inPlayArea(row int) bool {
	return row >= constants.StatusBarRows && row < l.rows-constants.BottomBarRows
}

func (l layout) hintRow() int {
	return l.rows - constants.BottomBarRows
}
