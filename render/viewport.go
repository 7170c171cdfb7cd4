package render

import (
	"math"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/vmath"
)

// Viewport maps world space onto a grid of terminal cells.
// Each cell covers World.Width/Cols by World.Height/Rows world units
type Viewport struct {
	Cols, Rows int
	World      core.Bounds
}

// Valid reports whether the viewport has a drawable area
func (v Viewport) Valid() bool {
	return v.Cols > 0 && v.Rows > 0 && v.World.Width > 0 && v.World.Height > 0
}

// CellWidth returns the world width covered by one column
func (v Viewport) CellWidth() float64 {
	return v.World.Width / float64(v.Cols)
}

// CellHeight returns the world height covered by one row
func (v Viewport) CellHeight() float64 {
	return v.World.Height / float64(v.Rows)
}

// WorldToCell returns the cell containing p; results may fall outside the grid
func (v Viewport) WorldToCell(p core.Point2D) (col, row int) {
	col = int(math.Floor(p.X / v.CellWidth()))
	row = int(math.Floor(p.Y / v.CellHeight()))
	return col, row
}

// CellToWorld returns the world-space center of a cell
func (v Viewport) CellToWorld(col, row int) core.Point2D {
	return core.Point2D{
		X: (float64(col) + 0.5) * v.CellWidth(),
		Y: (float64(row) + 0.5) * v.CellHeight(),
	}
}

// Contains reports whether a cell lies inside the grid
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// ClosestPoint returns the point inside a cell's world rectangle nearest to p
func (v Viewport) ClosestPoint(col, row int, p core.Point2D) core.Point2D {
	cw, ch := v.CellWidth(), v.CellHeight()
	x0, y0 := float64(col)*cw, float64(row)*ch
	return core.Point2D{
		X: vmath.Clamp(p.X, x0, x0+cw),
		Y: vmath.Clamp(p.Y, y0, y0+ch),
	}
}
