package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// Buffer is a compositor the renderers draw into before a single flush
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank background using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBText, Bg: RGBBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; zero Cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes a glyph keeping the background
func (b *Buffer) Set(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
	c.Bold = false
}

// SetBold writes a bold glyph keeping the background
func (b *Buffer) SetBold(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
	c.Bold = true
}

// SetBg replaces the background color
func (b *Buffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// Tint blends color over both layers of a cell
func (b *Buffer) Tint(x, y int, color RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = Blend(c.Bg, color, alpha)
	c.Fg = Blend(c.Fg, color, alpha)
}

// Text writes s left to right, clipped at the edge
func (b *Buffer) Text(x, y int, s string, fg RGB) int {
	n := 0
	for _, r := range s {
		b.Set(x+n, y, r, fg)
		n++
	}
	return n
}

// Flush copies every cell to the screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			style := tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color()).Bold(c.Bold)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
