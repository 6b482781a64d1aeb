package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/halvek/gatelight/circuit"
	"github.com/halvek/gatelight/component"
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
	"github.com/halvek/gatelight/registry"
	"github.com/halvek/gatelight/render"
)

var (
	// ErrLevelNotFound is returned when no descriptor file exists for the name
	ErrLevelNotFound = errors.New("level: not found")
)

// MenuLevel is the descriptor name reserved for the menu; it is excluded
// from the progression sequence
const MenuLevel = "menu"

const completionID = "__completion"

// Options configure a level manager
type Options struct {
	Log    *slog.Logger
	Reg    *registry.Registry
	Dir    string
	Screen core.Size
	// Sound plays a UI tone; nil disables audio feedback
	Sound func(core.SoundType)
	// Quit stops the application; wired to the game loop
	Quit func()
}

// Manager orchestrates level load/unload, wiring resolution, completion
// tracking and progression. It owns the components of the current level
// and keeps the connection manager in sync with them.
type Manager struct {
	log    *slog.Logger
	reg    *registry.Registry
	conns  *circuit.Manager
	dir    string
	screen core.Size
	sound  func(core.SoundType)
	quit   func()

	current  string
	ids      []string
	byID     map[string]engine.Component
	sequence []string
	seqIndex int

	completionAdded bool

	lastButtons tcell.ButtonMask
	reload      chan string
}

// NewManager creates a manager for the given levels directory
func NewManager(opts Options) *Manager {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		log:      log,
		reg:      opts.Reg,
		conns:    circuit.NewManager(log),
		dir:      opts.Dir,
		screen:   opts.Screen,
		sound:    opts.Sound,
		quit:     opts.Quit,
		byID:     make(map[string]engine.Component),
		seqIndex: -1,
		reload:   make(chan string, 4),
	}
}

// Connections exposes the connection manager for queries
func (m *Manager) Connections() *circuit.Manager { return m.conns }

// SetQuit wires the exit_game action to the game loop after both exist
func (m *Manager) SetQuit(quit func()) { m.quit = quit }

// Current returns the loaded level name, empty when unloaded
func (m *Manager) Current() string { return m.current }

// Sequence returns the discovered level progression order
func (m *Manager) Sequence() []string {
	out := make([]string, len(m.sequence))
	copy(out, m.sequence)
	return out
}

// Component looks up an owned component by ID
func (m *Manager) Component(id string) (engine.Component, bool) {
	c, ok := m.byID[id]
	return c, ok
}

// ComponentIDs returns IDs in declaration order
func (m *Manager) ComponentIDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}

// Discover scans the levels directory and rebuilds the progression
// sequence: every .json descriptor except the menu, lexicographically
// sorted by filename.
func (m *Manager) Discover() error {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return fmt.Errorf("discover levels in %s: %w", m.dir, err)
	}
	var seq []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		if name == MenuLevel {
			continue
		}
		seq = append(seq, name)
	}
	sort.Strings(seq)
	m.sequence = seq
	return nil
}

// Load replaces the current level with the named one. The previous level
// is cleared only after the descriptor reads and parses, so a missing
// file or malformed JSON leaves the loaded level untouched.
func (m *Manager) Load(name string) error {
	path := filepath.Join(m.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrLevelNotFound, name)
		}
		return fmt.Errorf("read level %s: %w", name, err)
	}

	var desc Descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return fmt.Errorf("parse level %s: %w", name, err)
	}

	m.Clear()

	deps := registry.Deps{
		Log:       m.log,
		Sound:     m.sound,
		Callbacks: m.callbacks(),
	}

	if desc.Background != nil {
		bg := *desc.Background
		if bg.Type == "" {
			bg.Type = "background"
		}
		if c, ok := m.reg.CreateFromSpec(bg.Spec(), deps); ok {
			m.add(m.assignID(bg), c)
		}
	}

	for _, entry := range desc.Components {
		c, ok := m.reg.CreateFromSpec(entry.Spec(), deps)
		if !ok {
			continue
		}
		id := m.assignID(entry)
		if _, dup := m.byID[id]; dup {
			m.log.Warn("duplicate component id, entry skipped", "id", id)
			engine.Destroy(c)
			continue
		}
		m.add(id, c)
	}

	if len(desc.Connections) > 0 {
		for _, conn := range desc.Connections {
			m.resolveConnection(conn)
		}
	} else {
		m.autoWire()
	}

	m.current = name
	m.seqIndex = -1
	for i, s := range m.sequence {
		if s == name {
			m.seqIndex = i
			break
		}
	}

	m.log.Info("level loaded", "name", desc.Name, "file", name,
		"components", len(m.ids), "connections", m.conns.Count())
	return nil
}

// assignID returns the declared ID or generates a stable-prefix unique one
func (m *Manager) assignID(e ComponentEntry) string {
	if e.ID != "" {
		return e.ID
	}
	prefix := strings.ToLower(e.Type)
	if prefix == "" {
		prefix = "component"
	}
	return prefix + "-" + uuid.NewString()[:8]
}

// add initializes the component and registers it everywhere
func (m *Manager) add(id string, c engine.Component) {
	engine.Initialize(c)
	m.byID[id] = c
	m.ids = append(m.ids, id)
	m.conns.Add(id, c)
}

// resolveConnection attaches one declared wire. Unknown endpoints or
// rejected edges are warned about and skipped; the load continues.
func (m *Manager) resolveConnection(e ConnectionEntry) {
	from, ok := m.byID[e.From]
	if !ok {
		m.log.Warn("connection references unknown component", "from", e.From)
		return
	}
	to, ok := m.byID[e.To]
	if !ok {
		m.log.Warn("connection references unknown component", "to", e.To)
		return
	}
	src, ok := from.(component.Source)
	if !ok {
		m.log.Warn("connection source is not a signal source", "from", e.From)
		return
	}

	switch target := to.(type) {
	case *component.Gate:
		if err := target.AddInput(src); err != nil {
			m.log.Warn("connection rejected", "from", e.From, "to", e.To, "error", err)
			return
		}
	case *component.LED:
		target.SetSource(src)
	default:
		m.log.Warn("connection target accepts no input", "to", e.To)
		return
	}

	m.conns.Connect(e.From, e.To, e.InputIndex)
}

// autoWire is the fallback when a descriptor has no connections list:
// every input button feeds every gate, and every LED mirrors the first
// gate in declaration order.
func (m *Manager) autoWire() {
	var firstGate *component.Gate
	var firstGateID string
	for _, id := range m.ids {
		if g, ok := m.byID[id].(*component.Gate); ok {
			firstGate = g
			firstGateID = id
			break
		}
	}

	for _, gid := range m.ids {
		gate, ok := m.byID[gid].(*component.Gate)
		if !ok {
			continue
		}
		for _, bid := range m.ids {
			button, ok := m.byID[bid].(*component.InputButton)
			if !ok {
				continue
			}
			if err := gate.AddInput(button); err != nil {
				m.log.Warn("auto-wire rejected", "from", bid, "to", gid, "error", err)
				continue
			}
			m.conns.Connect(bid, gid, gate.InputCount()-1)
		}
	}

	if firstGate != nil {
		for _, id := range m.ids {
			if led, ok := m.byID[id].(*component.LED); ok {
				led.SetSource(firstGate)
				m.conns.Connect(firstGateID, id, 0)
			}
		}
	}
}

// Clear destroys every owned component and resets all bookkeeping
func (m *Manager) Clear() {
	m.conns.Clear()
	for _, id := range m.ids {
		engine.Destroy(m.byID[id])
	}
	m.ids = nil
	m.byID = make(map[string]engine.Component)
	m.current = ""
	m.seqIndex = -1
	m.completionAdded = false
}

// RemoveComponent takes one component out of the level: connection
// manager entries go first, then every reference from gate input lists
// and LED sources, and only then is the component destroyed.
func (m *Manager) RemoveComponent(id string) {
	c, ok := m.byID[id]
	if !ok {
		return
	}

	m.conns.Remove(id)

	if src, isSource := c.(component.Source); isSource {
		for _, otherID := range m.ids {
			if otherID == id {
				continue
			}
			switch other := m.byID[otherID].(type) {
			case *component.Gate:
				for containsSource(other.Inputs(), src) {
					other.RemoveInput(src)
				}
			case *component.LED:
				if other.Source() == src {
					other.SetSource(nil)
				}
			}
		}
	}

	engine.Destroy(c)
	delete(m.byID, id)
	for i, known := range m.ids {
		if known == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
}

func containsSource(inputs []component.Source, src component.Source) bool {
	for _, in := range inputs {
		if in == src {
			return true
		}
	}
	return false
}

// Update advances every component, then the edges, then checks for
// completion. Runs strictly before Render each frame.
func (m *Manager) Update(dt float64) {
	select {
	case name := <-m.reload:
		if err := m.Discover(); err != nil {
			m.log.Warn("level rediscovery failed", "error", err)
		}
		if name == m.current && name != "" {
			m.log.Info("descriptor changed, reloading", "level", name)
			if err := m.Load(name); err != nil {
				m.log.Warn("live reload failed", "level", name, "error", err)
			}
		}
	default:
	}

	for _, id := range m.snapshotIDs() {
		if c, ok := m.byID[id]; ok {
			engine.Update(c, dt)
		}
	}
	m.conns.Update(dt)
	m.checkCompletion()
}

// Render draws components in declaration order, then the wires, then the
// debug overlay
func (m *Manager) Render(r render.Renderer, rc render.Context) {
	for _, id := range m.ids {
		engine.Render(m.byID[id], r)
	}
	m.conns.Render(r)

	if rc.Debug {
		overlay := fmt.Sprintf("level=%s components=%d connections=%d",
			m.current, len(m.ids), m.conns.Count())
		r.DrawText(core.Point{X: 1, Y: 0}, overlay, core.RGBCyan)
	}
}

// Complete reports whether any LED is currently lit
func (m *Manager) Complete() bool {
	for _, id := range m.ids {
		if led, ok := m.byID[id].(*component.LED); ok && led.State() {
			return true
		}
	}
	return false
}

// checkCompletion injects the progression button exactly once per level
// while the completion condition holds
func (m *Manager) checkCompletion() {
	if m.completionAdded || !m.Complete() {
		return
	}

	label := "Finish"
	action := func() { m.loadOrWarn(MenuLevel) }
	if m.hasNext() {
		label = "Next Level"
		next := m.sequence[m.seqIndex+1]
		action = func() { m.loadOrWarn(next) }
	}

	pos := core.Point{X: m.screen.W/2 - 8, Y: m.screen.H - 4}
	button := component.NewMenuButton(label, pos, core.Size{})
	sound := m.sound
	button.Action = func() {
		if sound != nil {
			sound(core.SoundClick)
		}
		action()
	}
	m.add(completionID, button)
	m.completionAdded = true
	if sound != nil {
		sound(core.SoundComplete)
	}
	m.log.Info("level complete", "level", m.current)
}

func (m *Manager) hasNext() bool {
	return m.seqIndex >= 0 && m.seqIndex+1 < len(m.sequence)
}

func (m *Manager) loadOrWarn(name string) {
	if err := m.Load(name); err != nil {
		m.log.Warn("level load failed", "level", name, "error", err)
	}
}

// callbacks is the action table menu buttons resolve against
func (m *Manager) callbacks() map[string]func() {
	return map[string]func(){
		"start_game": func() {
			if len(m.sequence) > 0 {
				m.loadOrWarn(m.sequence[0])
			}
		},
		"exit_game": func() {
			if m.quit != nil {
				m.quit()
			}
		},
		"back_to_menu": func() {
			m.loadOrWarn(MenuLevel)
		},
		"next_level": func() {
			if m.hasNext() {
				m.loadOrWarn(m.sequence[m.seqIndex+1])
			} else {
				m.loadOrWarn(MenuLevel)
			}
		},
	}
}

// HandleEvent routes input events to the level's components
func (m *Manager) HandleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventMouse:
		m.routeMouse(tev)

	case *tcell.EventKey:
		if tev.Key() == tcell.KeyRune && tev.Rune() == 'c' {
			m.log.Info("connection count", "count", m.conns.Count())
		}
	}
}

// routeMouse converts a tcell mouse event into the normalized form and
// walks components from topmost (last declared) down. A consumed press
// stops the walk; motion reaches everyone so hover states stay honest.
func (m *Manager) routeMouse(tev *tcell.EventMouse) {
	x, y := tev.Position()
	buttons := tev.Buttons()

	me := component.MouseEvent{
		X:        x,
		Y:        y,
		Pressed:  buttons&tcell.Button1 != 0 && m.lastButtons&tcell.Button1 == 0,
		Released: buttons&tcell.Button1 == 0 && m.lastButtons&tcell.Button1 != 0,
	}
	m.lastButtons = buttons

	ids := m.snapshotIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		c, ok := m.byID[ids[i]]
		if !ok {
			continue
		}
		h, ok := c.(component.MouseHandler)
		if !ok {
			continue
		}
		if h.HandleMouse(me) && me.Pressed {
			break
		}
	}
}

// snapshotIDs copies the ID list so handlers may add or remove
// components mid-iteration
func (m *Manager) snapshotIDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}
