package render

import (
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/snapshot"
)

// Renderer draws one layer of a frame
type Renderer interface {
	Render(ctx Context, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Context is the per-frame input shared by all renderers
type Context struct {
	Frame *snapshot.Frame
	View  Viewport

	Muted  bool
	Paused bool
}

// Cell maps a world point to a cell including screen shake
func (c Context) Cell(p snapshot.Point) (x, y int, ok bool) {
	return c.View.WorldToCell(core.Vec2{X: p.X + c.Frame.Shake.X, Y: p.Y + c.Frame.Shake.Y})
}
