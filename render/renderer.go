package render

import (
	"github.com/halvek/gatelight/core"
)

// Renderer is the drawing capability consumed by components. The engine
// passes one implementation per frame; components never hold onto it.
type Renderer interface {
	// Size returns the drawable area in cells
	Size() (int, int)

	// Fill paints every cell of the rect with a background color
	Fill(r core.Rect, bg core.RGB)

	// DrawLine plots a solid line of the given cell width between two points
	DrawLine(a, b core.Point, width int, color core.RGB)

	// DrawCircle plots a filled circle
	DrawCircle(center core.Point, radius int, color core.RGB)

	// DrawText writes a string starting at p, keeping cell backgrounds
	DrawText(p core.Point, text string, fg core.RGB)
}
