package component

import (
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
	"github.com/halvek/gatelight/render"
)

// EdgeKind selects the wire routing style. Curved and stepped are
// declared for descriptor compatibility but render as straight lines.
type EdgeKind int

const (
	EdgeStraight EdgeKind = iota
	EdgeCurved
	EdgeStepped
)

// Connection is the visual mirror of one wire. It is never authoritative
// over circuit state: its color is a render-time query of the wired
// source, so a source mutated between update and render shows the new
// value in the same frame.
type Connection struct {
	engine.Lifecycle

	start core.Point
	end   core.Point
	kind  EdgeKind
	width int

	source Source

	offColor core.RGB
	onColor  core.RGB
}

// NewConnection creates a straight wire between two anchor points,
// colored by src's live result
func NewConnection(start, end core.Point, src Source) *Connection {
	return &Connection{
		Lifecycle: engine.NewLifecycle(),
		start:     start,
		end:       end,
		kind:      EdgeStraight,
		width:     1,
		source:    src,
		offColor:  core.RGBDarkGray,
		onColor:   core.RGBGreen,
	}
}

// SetKind selects the routing style
func (c *Connection) SetKind(k EdgeKind) { c.kind = k }

// SetPoints moves both endpoints, used when a component is repositioned
func (c *Connection) SetPoints(start, end core.Point) {
	c.start = start
	c.end = end
}

// Points returns the current endpoints
func (c *Connection) Points() (core.Point, core.Point) {
	return c.start, c.end
}

// Source returns the signal source the wire mirrors
func (c *Connection) Source() Source { return c.source }

// Live queries the wire's signal at call time
func (c *Connection) Live() bool {
	return c.source != nil && c.source.Result()
}

func (c *Connection) OnInit() {}

func (c *Connection) OnUpdate(dt float64) {}

func (c *Connection) OnRender(r render.Renderer) {
	color := c.offColor
	if c.Live() {
		color = c.onColor
	}
	// Curved and stepped routing fall back to a straight segment
	r.DrawLine(c.start, c.end, c.width, color)
}

func (c *Connection) OnDestroy() {
	c.source = nil
}
