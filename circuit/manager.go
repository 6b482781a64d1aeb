package circuit

import (
	"fmt"
	"log/slog"

	"github.com/halvek/gatelight/component"
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
	"github.com/halvek/gatelight/render"
)

// edge ties a visual connection to the component IDs and anchor names it
// spans, so endpoints can be recomputed when a component moves
type edge struct {
	conn       *component.Connection
	fromID     string
	toID       string
	fromAnchor string
	toAnchor   string
}

// Manager derives wiring anchor points for registered components and
// maintains the visual edges mirroring the logic graph. It holds
// non-owning references keyed by component ID; the level manager keeps
// it in sync as components come and go.
type Manager struct {
	log        *slog.Logger
	components map[string]engine.Component
	anchors    map[string]map[string]core.Point
	edges      []*edge
}

// NewManager creates an empty connection manager
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		log:        log,
		components: make(map[string]engine.Component),
		anchors:    make(map[string]map[string]core.Point),
	}
}

// Add registers a component and derives its anchor points
func (m *Manager) Add(id string, c engine.Component) {
	m.components[id] = c
	m.refreshAnchors(id, c)
}

// Remove destroys every edge touching the component and drops its anchor
// entry. Detaching the component from gate input lists and LED sources is
// the level manager's job.
func (m *Manager) Remove(id string) {
	kept := m.edges[:0]
	for _, e := range m.edges {
		if e.fromID == id || e.toID == id {
			engine.Destroy(e.conn)
			continue
		}
		kept = append(kept, e)
	}
	m.edges = kept
	delete(m.anchors, id)
	delete(m.components, id)
}

// refreshAnchors derives the anchor map from the component's rect.
// Output anchors sit at the right-center edge, input anchors at the
// left-center edge. A gate exposes one input slot per wired input plus a
// spare, so there are always len(inputs)+1 input anchors.
func (m *Manager) refreshAnchors(id string, c engine.Component) {
	points := make(map[string]core.Point)

	switch v := c.(type) {
	case *component.LED:
		points["input_0"] = v.Rect().LeftCenter()

	case *component.Gate:
		rect := v.Rect()
		points["output"] = rect.RightCenter()
		slots := v.InputCount() + 1
		for i := 0; i < slots; i++ {
			points[inputAnchor(i)] = rect.LeftCenter()
		}

	case *component.InputButton:
		points["output"] = v.Rect().RightCenter()

	default:
		// Text, backgrounds and menu buttons carry no signal
		return
	}

	m.anchors[id] = points
}

func inputAnchor(i int) string {
	return fmt.Sprintf("input_%d", i)
}

// Connect creates a visual edge from the source's output anchor to the
// target's input anchor for inputIndex, falling back to input_0 when the
// index has no anchor. Returns nil if either endpoint is unknown or the
// anchors are incompatible.
func (m *Manager) Connect(fromID, toID string, inputIndex int) *component.Connection {
	fromPoints, ok := m.anchors[fromID]
	if !ok {
		return nil
	}
	toPoints, ok := m.anchors[toID]
	if !ok {
		return nil
	}

	start, ok := fromPoints["output"]
	if !ok {
		return nil
	}
	anchor := inputAnchor(inputIndex)
	end, ok := toPoints[anchor]
	if !ok {
		anchor = "input_0"
		end, ok = toPoints[anchor]
		if !ok {
			return nil
		}
	}

	src, _ := m.components[fromID].(component.Source)
	conn := component.NewConnection(start, end, src)
	engine.Initialize(conn)
	m.edges = append(m.edges, &edge{
		conn:       conn,
		fromID:     fromID,
		toID:       toID,
		fromAnchor: "output",
		toAnchor:   anchor,
	})
	m.log.Debug("connection created", "from", fromID, "to", toID, "anchor", anchor)

	// The edge consumed an input slot; keep the spare available
	if c, ok := m.components[toID]; ok {
		m.refreshAnchors(toID, c)
	}
	return conn
}

// AutoConnect pairs every output anchor with every compatible input
// anchor across all registered components. All-to-all wiring is only
// sensible for single-gate levels; explicit descriptor connections are
// preferred.
func (m *Manager) AutoConnect() int {
	created := 0
	for fromID, fromPoints := range m.anchors {
		if _, ok := fromPoints["output"]; !ok {
			continue
		}
		for toID, toPoints := range m.anchors {
			if toID == fromID {
				continue
			}
			if _, ok := toPoints["input_0"]; !ok {
				continue
			}
			if m.Connect(fromID, toID, 0) != nil {
				created++
			}
		}
	}
	return created
}

// RefreshPosition re-derives a moved component's anchors and updates the
// endpoints of every edge touching it
func (m *Manager) RefreshPosition(id string) {
	c, ok := m.components[id]
	if !ok {
		return
	}
	m.refreshAnchors(id, c)
	for _, e := range m.edges {
		if e.fromID != id && e.toID != id {
			continue
		}
		start, end := e.conn.Points()
		if p, ok := m.anchors[e.fromID][e.fromAnchor]; ok {
			start = p
		}
		if p, ok := m.anchors[e.toID][e.toAnchor]; ok {
			end = p
		}
		e.conn.SetPoints(start, end)
	}
}

// Update advances every enabled edge
func (m *Manager) Update(dt float64) {
	for _, e := range m.edges {
		engine.Update(e.conn, dt)
	}
}

// Render draws every edge; colors are live queries of the wired sources
func (m *Manager) Render(r render.Renderer) {
	for _, e := range m.edges {
		engine.Render(e.conn, r)
	}
}

// Clear destroys all edges and forgets all components
func (m *Manager) Clear() {
	for _, e := range m.edges {
		engine.Destroy(e.conn)
	}
	m.edges = nil
	m.anchors = make(map[string]map[string]core.Point)
	m.components = make(map[string]engine.Component)
}

// Count returns the number of active edges
func (m *Manager) Count() int {
	return len(m.edges)
}

// ConnectionsFor returns the edges touching a component
func (m *Manager) ConnectionsFor(id string) []*component.Connection {
	var out []*component.Connection
	for _, e := range m.edges {
		if e.fromID == id || e.toID == id {
			out = append(out, e.conn)
		}
	}
	return out
}

// Anchors returns a copy of a component's anchor map
func (m *Manager) Anchors(id string) map[string]core.Point {
	points, ok := m.anchors[id]
	if !ok {
		return nil
	}
	out := make(map[string]core.Point, len(points))
	for k, v := range points {
		out[k] = v
	}
	return out
}
