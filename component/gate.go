package component

import (
	"errors"
	"fmt"

	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
	"github.com/halvek/gatelight/render"
)

// GateKind enumerates the supported boolean operators
type GateKind int

const (
	GateAND GateKind = iota
	GateOR
	GateNOT
)

func (k GateKind) String() string {
	switch k {
	case GateAND:
		return "AND"
	case GateOR:
		return "OR"
	case GateNOT:
		return "NOT"
	}
	return "?"
}

var (
	// ErrNilInput is returned when a nil source is offered to AddInput
	ErrNilInput = errors.New("gate: nil input source")
	// ErrCycle is returned when an edge would make a gate transitively
	// depend on its own output
	ErrCycle = errors.New("gate: connection would create a cycle")
)

// Gate evaluates a boolean function of its ordered inputs. The result is
// recomputed on every query; there is no cross-frame caching, so the
// update-before-render ordering of the frame loop is what keeps edge
// colors consistent with gate boxes.
type Gate struct {
	engine.Lifecycle

	kind GateKind
	pos  core.Point
	dim  core.Size

	offColor core.RGB
	onColor  core.RGB

	inputs     []Source
	lastOutput bool
}

// NewGate creates a gate of the given kind at a position. The zero size
// falls back to the standard gate footprint.
func NewGate(kind GateKind, pos core.Point, dim core.Size) *Gate {
	if dim.W == 0 && dim.H == 0 {
		dim = core.Size{W: 11, H: 5}
	}
	return &Gate{
		Lifecycle: engine.NewLifecycle(),
		kind:      kind,
		pos:       pos,
		dim:       dim,
		offColor:  core.RGBGray,
		onColor:   core.RGBAmber,
	}
}

// Kind returns the gate's boolean operator
func (g *Gate) Kind() GateKind { return g.kind }

// SetColors overrides the off/on render colors
func (g *Gate) SetColors(off, on core.RGB) {
	g.offColor = off
	g.onColor = on
}

// AddInput appends src to the ordered input list. Edges that would make
// the gate transitively depend on its own output are rejected with
// ErrCycle; the input list is left unchanged on any error.
func (g *Gate) AddInput(src Source) error {
	if src == nil {
		return ErrNilInput
	}
	if reaches(src, g, make(map[*Gate]bool)) {
		return fmt.Errorf("%w: %s gate", ErrCycle, g.kind)
	}
	g.inputs = append(g.inputs, src)
	return nil
}

// RemoveInput detaches the first occurrence of src by identity. Unknown
// sources are ignored.
func (g *Gate) RemoveInput(src Source) {
	for i, in := range g.inputs {
		if in == src {
			g.inputs = append(g.inputs[:i], g.inputs[i+1:]...)
			return
		}
	}
}

// Inputs returns a copy of the ordered input list
func (g *Gate) Inputs() []Source {
	out := make([]Source, len(g.inputs))
	copy(out, g.inputs)
	return out
}

// InputCount returns the number of wired inputs
func (g *Gate) InputCount() int { return len(g.inputs) }

// reaches walks input edges from src looking for target. Only gates have
// outgoing edges to follow; buttons terminate the walk.
func reaches(src Source, target *Gate, seen map[*Gate]bool) bool {
	gate, ok := src.(*Gate)
	if !ok {
		return false
	}
	if gate == target {
		return true
	}
	if seen[gate] {
		return false
	}
	seen[gate] = true
	for _, in := range gate.inputs {
		if reaches(in, target, seen) {
			return true
		}
	}
	return false
}

// Result recomputes and returns the gate's boolean output
func (g *Gate) Result() bool {
	g.lastOutput = g.calculate()
	return g.lastOutput
}

// LastOutput returns the most recently computed result without re-evaluating
func (g *Gate) LastOutput() bool { return g.lastOutput }

func (g *Gate) calculate() bool {
	switch g.kind {
	case GateAND:
		if len(g.inputs) == 0 {
			return false
		}
		for _, in := range g.inputs {
			if !in.Result() {
				return false
			}
		}
		return true

	case GateOR:
		for _, in := range g.inputs {
			if in.Result() {
				return true
			}
		}
		return false

	case GateNOT:
		// An unwired NOT reads true while unwired AND/OR read false.
		// Levels depend on this asymmetry; keep it.
		if len(g.inputs) == 0 {
			return true
		}
		// NOT negates its first input and ignores the rest
		return !g.inputs[0].Result()
	}
	return false
}

// Position returns the top-left corner
func (g *Gate) Position() core.Point { return g.pos }

// SetPosition moves the gate; the connection manager re-derives anchors
// from the new rect
func (g *Gate) SetPosition(p core.Point) { g.pos = p }

// Size returns the gate footprint
func (g *Gate) Size() core.Size { return g.dim }

// Rect returns the gate's bounding rectangle
func (g *Gate) Rect() core.Rect { return core.Rect{Pos: g.pos, Dim: g.dim} }

// RenderColor reflects the live result, not the cached one
func (g *Gate) RenderColor() core.RGB {
	if g.Result() {
		return g.onColor
	}
	return g.offColor
}

func (g *Gate) OnInit() {}

func (g *Gate) OnUpdate(dt float64) {
	// Refresh lastOutput so debug views see this frame's value
	g.Result()
}

func (g *Gate) OnRender(r render.Renderer) {
	rect := g.Rect()
	r.Fill(rect, g.RenderColor())
	label := g.kind.String()
	c := rect.Center()
	r.DrawText(core.Point{X: c.X - len(label)/2, Y: c.Y}, label, core.RGBBlack)
}

func (g *Gate) OnDestroy() {
	g.inputs = nil
}
