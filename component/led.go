package component

import (
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
	"github.com/halvek/gatelight/render"
)

// LED displays the state of a wired source. It has no boolean of its
// own: lit is always a live projection of the source's result, false
// when unwired.
type LED struct {
	engine.Lifecycle

	pos    core.Point
	radius int

	offColor core.RGB
	onColor  core.RGB

	source Source
}

// NewLED creates an LED anchored at the top-left of its bounding square
func NewLED(pos core.Point, radius int) *LED {
	if radius <= 0 {
		radius = 2
	}
	return &LED{
		Lifecycle: engine.NewLifecycle(),
		pos:       pos,
		radius:    radius,
		offColor:  core.RGBDarkGray,
		onColor:   core.RGBGreen,
	}
}

// SetSource wires the LED to a logic source; nil unwires it
func (l *LED) SetSource(src Source) { l.source = src }

// Source returns the wired source, nil when unwired
func (l *LED) Source() Source { return l.source }

// State projects the source's current result
func (l *LED) State() bool {
	return l.source != nil && l.source.Result()
}

// Position returns the top-left of the bounding square
func (l *LED) Position() core.Point { return l.pos }

// SetPosition moves the LED
func (l *LED) SetPosition(p core.Point) { l.pos = p }

// Size returns the bounding square of the circle
func (l *LED) Size() core.Size {
	d := l.radius * 2
	return core.Size{W: d, H: d}
}

// Rect returns the LED's bounding rectangle
func (l *LED) Rect() core.Rect { return core.Rect{Pos: l.pos, Dim: l.Size()} }

// RenderColor is queried at render time so mid-frame source changes show
// immediately
func (l *LED) RenderColor() core.RGB {
	if l.State() {
		return l.onColor
	}
	return l.offColor
}

func (l *LED) OnInit() {}

func (l *LED) OnUpdate(dt float64) {}

func (l *LED) OnRender(r render.Renderer) {
	center := l.Rect().Center()
	r.DrawCircle(center, l.radius, l.RenderColor())
}

func (l *LED) OnDestroy() {
	l.source = nil
}
