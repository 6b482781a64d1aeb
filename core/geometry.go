package core

// Point is a screen-space coordinate in terminal cells
type Point struct {
	X, Y int
}

// Size holds width/height in terminal cells
type Size struct {
	W, H int
}

// Rect is an axis-aligned cell rectangle anchored at its top-left corner
type Rect struct {
	Pos Point
	Dim Size
}

// NewRect builds a rect from top-left corner and dimensions
func NewRect(x, y, w, h int) Rect {
	return Rect{Pos: Point{X: x, Y: y}, Dim: Size{W: w, H: h}}
}

// Contains reports whether the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.Pos.X && x < r.Pos.X+r.Dim.W &&
		y >= r.Pos.Y && y < r.Pos.Y+r.Dim.H
}

// Center returns the middle cell of the rect
func (r Rect) Center() Point {
	return Point{X: r.Pos.X + r.Dim.W/2, Y: r.Pos.Y + r.Dim.H/2}
}

// RightCenter returns the middle of the right edge (output anchor convention)
func (r Rect) RightCenter() Point {
	return Point{X: r.Pos.X + r.Dim.W, Y: r.Pos.Y + r.Dim.H/2}
}

// LeftCenter returns the middle of the left edge (input anchor convention)
func (r Rect) LeftCenter() Point {
	return Point{X: r.Pos.X, Y: r.Pos.Y + r.Dim.H/2}
}
