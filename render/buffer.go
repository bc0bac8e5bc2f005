package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one drawn character with depth for painter ordering
type Cell struct {
	Ch    rune
	Fg    colorful.Color
	Depth float64
	Set   bool
}

// Buffer is the off-screen cell grid renderers draw into. Writes carry
// a depth value; a cell only takes a new glyph when it is nearer than
// what is already there, so draw order between renderers of the same
// priority cannot flicker.
type Buffer struct {
	Width, Height int
	cells         []Cell
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// Resize reallocates the grid, discarding current content
func (b *Buffer) Resize(width, height int) {
	if width == b.Width && height == b.Height {
		return
	}
	b.Width = width
	b.Height = height
	b.cells = make([]Cell, width*height)
}

// Clear empties every cell
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// Set writes a glyph at (x, y) if in bounds and nearer than the
// current occupant. Higher depth = nearer to the viewer.
func (b *Buffer) Set(x, y int, ch rune, fg colorful.Color, depth float64) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	c := &b.cells[y*b.Width+x]
	if c.Set && c.Depth > depth {
		return
	}
	*c = Cell{Ch: ch, Fg: fg, Depth: depth, Set: true}
}

// SetOver writes unconditionally, for UI text layered over the scene
func (b *Buffer) SetOver(x, y int, ch rune, fg colorful.Color) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.cells[y*b.Width+x] = Cell{Ch: ch, Fg: fg, Depth: uiDepth, Set: true}
}

// Text writes a string left to right starting at (x, y)
func (b *Buffer) Text(x, y int, s string, fg colorful.Color) {
	for i, r := range []rune(s) {
		b.SetOver(x+i, y, r, fg)
	}
}

// Get returns the cell at (x, y) for tests and the flusher
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Cell{}
	}
	return b.cells[y*b.Width+x]
}

// uiDepth is above any projected scene depth
const uiDepth = 1e9

// Flush pushes the buffer to a tcell screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.cells[y*b.Width+x]
			if !c.Set {
				screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			r, g, bl := c.Fg.RGB255()
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(bl)))
			screen.SetContent(x, y, c.Ch, nil, style)
		}
	}
	screen.Show()
}
