package render

import (
	"math"

	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/parameter"
)

// Viewport maps the fixed world rectangle onto a cell grid, y flipped
type Viewport struct {
	Width, Height int
}

// WorldToCell returns the cell for a world position; ok is false off screen
func (v Viewport) WorldToCell(p core.Vec2) (x, y int, ok bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	fx := (p.X - parameter.WorldMinX) / (parameter.WorldMaxX - parameter.WorldMinX)
	fy := (parameter.WorldMaxY - p.Y) / (parameter.WorldMaxY - parameter.WorldMinY)
	x = int(math.Round(fx * float64(v.Width-1)))
	y = int(math.Round(fy * float64(v.Height-1)))
	ok = x >= 0 && x < v.Width && y >= 0 && y < v.Height
	return x, y, ok
}

// CellToWorld returns the world position at the center of a cell
func (v Viewport) CellToWorld(x, y int) core.Vec2 {
	var fx, fy float64
	if v.Width > 1 {
		fx = float64(x) / float64(v.Width-1)
	}
	if v.Height > 1 {
		fy = float64(y) / float64(v.Height-1)
	}
	return core.Vec2{
		X: parameter.WorldMinX + fx*(parameter.WorldMaxX-parameter.WorldMinX),
		Y: parameter.WorldMaxY - fy*(parameter.WorldMaxY-parameter.WorldMinY),
	}
}
