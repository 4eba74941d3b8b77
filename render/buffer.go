package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

// RenderBuffer is a compositor over a cell array with dirty tracking
// Untouched cells flush as blank background
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: ColorBackground, Bg: ColorBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds returns a blank cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Fg: ColorBackground, Bg: ColorBackground}
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether anything was drawn at x, y since Clear
func (b *RenderBuffer) Touched(x, y int) bool {
	return b.inBounds(x, y) && b.touched[y*b.width+x]
}

// Set writes a rune and composites its foreground
// A zero rune keeps the existing glyph and only blends color
func (b *RenderBuffer) Set(x, y int, r rune, fg colorful.Color, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	if r != 0 {
		dst.Rune = r
	}
	if b.touched[idx] {
		dst.Fg = composite(mode, dst.Fg, fg, alpha)
	} else {
		dst.Fg = composite(mode, ColorBackground, fg, alpha)
	}
	b.touched[idx] = true
}

// SetText writes s left to right starting at x, y, clipped to the buffer
func (b *RenderBuffer) SetText(x, y int, s string, fg colorful.Color) {
	for _, r := range s {
		b.Set(x, y, r, fg, BlendReplace, 1)
		x++
	}
}

// Flush writes every cell to the screen; caller runs Show
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	bg := ToTcell(ColorBackground)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Background(bg).Foreground(ToTcell(c.Fg))
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
