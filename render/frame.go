package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/halvek/gatelight/core"
)

// Cell is one terminal cell of the frame buffer
type Cell struct {
	Ch rune
	Fg core.RGB
	Bg core.RGB
}

// Frame is a double-buffered cell grid implementing Renderer. All drawing
// happens into the frame; Flush pushes the result to the tcell screen in
// one pass.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// NewFrame allocates a frame buffer of the given dimensions
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize reallocates the buffer, discarding previous content
func (f *Frame) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f.width = width
	f.height = height
	f.cells = make([]Cell, width*height)
	f.Clear(core.RGBBlack)
}

// Size returns the drawable area in cells
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Clear resets every cell to a blank with the given background
func (f *Frame) Clear(bg core.RGB) {
	blank := Cell{Ch: ' ', Fg: core.RGBWhite, Bg: bg}
	for i := range f.cells {
		f.cells[i] = blank
	}
}

func (f *Frame) in(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// At returns the cell at (x, y); the zero cell when out of bounds
func (f *Frame) At(x, y int) Cell {
	if !f.in(x, y) {
		return Cell{}
	}
	return f.cells[y*f.width+x]
}

// Fill paints every cell of the rect with a background color
func (f *Frame) Fill(r core.Rect, bg core.RGB) {
	for y := r.Pos.Y; y < r.Pos.Y+r.Dim.H; y++ {
		for x := r.Pos.X; x < r.Pos.X+r.Dim.W; x++ {
			if !f.in(x, y) {
				continue
			}
			f.cells[y*f.width+x] = Cell{Ch: ' ', Fg: core.RGBWhite, Bg: bg}
		}
	}
}

// plot sets a solid block cell, used by line and circle drawing
func (f *Frame) plot(x, y int, color core.RGB) {
	if !f.in(x, y) {
		return
	}
	c := &f.cells[y*f.width+x]
	c.Ch = '█'
	c.Fg = color
}

// DrawLine plots a Bresenham line between two points. Width > 1 thickens
// the line along its minor axis.
func (f *Frame) DrawLine(a, b core.Point, width int, color core.RGB) {
	if width < 1 {
		width = 1
	}
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	steep := -dy > dx

	x, y := a.X, a.Y
	err := dx + dy
	for {
		for w := 0; w < width; w++ {
			off := w - width/2
			if steep {
				f.plot(x+off, y, color)
			} else {
				f.plot(x, y+off, color)
			}
		}
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawCircle plots a filled circle. Terminal cells are roughly twice as
// tall as wide, so the x extent is doubled to read as round.
func (f *Frame) DrawCircle(center core.Point, radius int, color core.RGB) {
	if radius < 1 {
		f.plot(center.X, center.Y, color)
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -2 * radius; dx <= 2*radius; dx++ {
			// Halve dx for the aspect correction
			hx := dx / 2
			if hx*hx+dy*dy <= r2 {
				f.plot(center.X+dx, center.Y+dy, color)
			}
		}
	}
}

// DrawText writes a string starting at p, keeping cell backgrounds
func (f *Frame) DrawText(p core.Point, text string, fg core.RGB) {
	x := p.X
	for _, ch := range text {
		if f.in(x, p.Y) {
			c := &f.cells[p.Y*f.width+x]
			c.Ch = ch
			c.Fg = fg
		}
		x++
	}
}

// Flush writes the frame to the screen and shows it
func (f *Frame) Flush(screen tcell.Screen) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			screen.SetContent(x, y, c.Ch, nil, style)
		}
	}
	screen.Show()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
