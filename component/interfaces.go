package component

import (
	"github.com/halvek/gatelight/core"
)

// Source is implemented by anything that can drive a gate input or an
// LED: gate outputs and input buttons. Result is a live query; callers
// must not cache it across frames.
type Source interface {
	Result() bool
}

// Stateful exposes a readable and writable boolean state
type Stateful interface {
	State() bool
	SetState(v bool)
}

// Visual exposes the position, footprint and current color used for
// wiring anchors and rendering
type Visual interface {
	Position() core.Point
	Size() core.Size
	RenderColor() core.RGB
}

// MouseEvent is a normalized pointer event routed to components.
// Pressed is edge-triggered: true only on the frame the primary button
// went down.
type MouseEvent struct {
	X, Y     int
	Pressed  bool
	Released bool
}

// MouseHandler receives routed mouse events. Returning true consumes the
// event and stops routing.
type MouseHandler interface {
	HandleMouse(ev MouseEvent) bool
}
