package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvek/gatelight/core"
)

func TestFrameSizeAndClear(t *testing.T) {
	f := NewFrame(10, 5)
	w, h := f.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)

	f.Clear(core.RGBBlack)
	c := f.At(3, 2)
	assert.Equal(t, ' ', c.Ch)
	assert.Equal(t, core.RGBBlack, c.Bg)
}

func TestFrameResizeClampsToOne(t *testing.T) {
	f := NewFrame(0, -3)
	w, h := f.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestAtOutOfBounds(t *testing.T) {
	f := NewFrame(4, 4)
	assert.Equal(t, Cell{}, f.At(-1, 0))
	assert.Equal(t, Cell{}, f.At(4, 0))
	assert.Equal(t, Cell{}, f.At(0, 4))
}

func TestFillRespectsBounds(t *testing.T) {
	f := NewFrame(6, 4)
	f.Clear(core.RGBBlack)

	// Rect overhangs the right and bottom edges
	f.Fill(core.Rect{Pos: core.Point{X: 4, Y: 2}, Dim: core.Size{W: 5, H: 5}}, core.RGBRed)

	assert.Equal(t, core.RGBRed, f.At(4, 2).Bg)
	assert.Equal(t, core.RGBRed, f.At(5, 3).Bg)
	assert.Equal(t, core.RGBBlack, f.At(3, 2).Bg, "cells outside the rect untouched")
}

func TestDrawLineHorizontal(t *testing.T) {
	f := NewFrame(12, 5)
	f.DrawLine(core.Point{X: 2, Y: 2}, core.Point{X: 8, Y: 2}, 1, core.RGBGreen)

	for x := 2; x <= 8; x++ {
		c := f.At(x, 2)
		assert.Equal(t, '█', c.Ch, "x=%d", x)
		assert.Equal(t, core.RGBGreen, c.Fg)
	}
	assert.Equal(t, ' ', f.At(1, 2).Ch)
	assert.Equal(t, ' ', f.At(9, 2).Ch)
	assert.Equal(t, ' ', f.At(4, 1).Ch)
}

func TestDrawLineReversedEndpoints(t *testing.T) {
	a := NewFrame(12, 5)
	b := NewFrame(12, 5)
	a.DrawLine(core.Point{X: 2, Y: 1}, core.Point{X: 9, Y: 3}, 1, core.RGBWhite)
	b.DrawLine(core.Point{X: 9, Y: 3}, core.Point{X: 2, Y: 1}, 1, core.RGBWhite)

	// Both endpoints are always plotted regardless of direction
	assert.Equal(t, '█', a.At(2, 1).Ch)
	assert.Equal(t, '█', a.At(9, 3).Ch)
	assert.Equal(t, '█', b.At(2, 1).Ch)
	assert.Equal(t, '█', b.At(9, 3).Ch)
}

func TestDrawLineDiagonal(t *testing.T) {
	f := NewFrame(8, 8)
	f.DrawLine(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, 1, core.RGBAmber)

	for i := 0; i <= 5; i++ {
		assert.Equal(t, '█', f.At(i, i).Ch, "diagonal cell (%d,%d)", i, i)
	}
}

func TestDrawLineWidthThickensMinorAxis(t *testing.T) {
	f := NewFrame(12, 7)
	f.DrawLine(core.Point{X: 2, Y: 3}, core.Point{X: 9, Y: 3}, 3, core.RGBCyan)

	// Horizontal line widens vertically
	assert.Equal(t, '█', f.At(5, 2).Ch)
	assert.Equal(t, '█', f.At(5, 3).Ch)
	assert.Equal(t, '█', f.At(5, 4).Ch)
	assert.Equal(t, ' ', f.At(5, 1).Ch)
	assert.Equal(t, ' ', f.At(5, 5).Ch)
}

func TestDrawLineOffscreenClipped(t *testing.T) {
	f := NewFrame(5, 5)
	// Must not panic; out-of-range plots are dropped
	f.DrawLine(core.Point{X: -3, Y: 2}, core.Point{X: 10, Y: 2}, 1, core.RGBWhite)
	assert.Equal(t, '█', f.At(0, 2).Ch)
	assert.Equal(t, '█', f.At(4, 2).Ch)
}

func TestDrawCircleAspectCorrected(t *testing.T) {
	f := NewFrame(20, 10)
	center := core.Point{X: 10, Y: 5}
	f.DrawCircle(center, 2, core.RGBGreen)

	assert.Equal(t, '█', f.At(10, 5).Ch, "center filled")
	// Horizontal extent is doubled, vertical is the radius
	assert.Equal(t, '█', f.At(14, 5).Ch)
	assert.Equal(t, '█', f.At(6, 5).Ch)
	assert.Equal(t, '█', f.At(10, 3).Ch)
	assert.Equal(t, '█', f.At(10, 7).Ch)
	assert.Equal(t, ' ', f.At(10, 2).Ch, "outside vertical radius")
	assert.Equal(t, ' ', f.At(15, 5).Ch, "outside doubled horizontal radius")
}

func TestDrawCircleZeroRadiusPlotsPoint(t *testing.T) {
	f := NewFrame(5, 5)
	f.DrawCircle(core.Point{X: 2, Y: 2}, 0, core.RGBRed)
	assert.Equal(t, '█', f.At(2, 2).Ch)
	assert.Equal(t, ' ', f.At(3, 2).Ch)
}

func TestDrawTextKeepsBackground(t *testing.T) {
	f := NewFrame(10, 3)
	f.Fill(core.Rect{Pos: core.Point{}, Dim: core.Size{W: 10, H: 3}}, core.RGBRed)
	f.DrawText(core.Point{X: 1, Y: 1}, "hi", core.RGBWhite)

	c := f.At(1, 1)
	require.Equal(t, 'h', c.Ch)
	assert.Equal(t, core.RGBWhite, c.Fg)
	assert.Equal(t, core.RGBRed, c.Bg, "text must not disturb the cell background")
	assert.Equal(t, 'i', f.At(2, 1).Ch)
}

func TestDrawTextClipsAtEdge(t *testing.T) {
	f := NewFrame(5, 3)
	f.DrawText(core.Point{X: 3, Y: 1}, "long", core.RGBWhite)
	assert.Equal(t, 'l', f.At(3, 1).Ch)
	assert.Equal(t, 'o', f.At(4, 1).Ch)
	// "ng" falls off the right edge without wrapping
	assert.Equal(t, ' ', f.At(0, 2).Ch)
}
