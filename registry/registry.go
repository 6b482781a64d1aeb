package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
)

var (
	// ErrAlreadyRegistered is returned for duplicate type names; existing
	// constructors are never silently overwritten
	ErrAlreadyRegistered = errors.New("registry: type already registered")
	// ErrNotRegistered is returned when an unknown type name is requested
	ErrNotRegistered = errors.New("registry: type not registered")
)

// Spec carries the constructor arguments decoded from one level
// descriptor entry. Non-constructor fields (type, id) are kept for
// dispatch and bookkeeping but never passed into component state.
type Spec struct {
	Type     string
	ID       string
	Text     string
	Position core.Point
	Size     core.Size
	Radius   int
	Initial  bool
	Callback string
	Color    *core.RGB
}

// Deps are the shared collaborators injected into constructors
type Deps struct {
	Log *slog.Logger
	// Sound plays a UI tone; nil disables audio feedback
	Sound func(core.SoundType)
	// Callbacks resolves menu button action names
	Callbacks map[string]func()
}

// Ctor builds a component from a decoded descriptor entry
type Ctor func(spec Spec, deps Deps) (engine.Component, error)

// Registry maps case-insensitive type names to constructors, one table
// per component category. Instances are explicit: the application builds
// one and hands it to the level manager, there is no process-wide table.
type Registry struct {
	mu          sync.RWMutex
	gates       map[string]Ctor
	buttons     map[string]Ctor
	leds        map[string]Ctor
	texts       map[string]Ctor
	backgrounds map[string]Ctor
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		gates:       make(map[string]Ctor),
		buttons:     make(map[string]Ctor),
		leds:        make(map[string]Ctor),
		texts:       make(map[string]Ctor),
		backgrounds: make(map[string]Ctor),
	}
}

func register(table map[string]Ctor, name string, ctor Ctor) error {
	key := strings.ToUpper(name)
	if _, exists := table[key]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, key)
	}
	table[key] = ctor
	return nil
}

func create(table map[string]Ctor, name string, spec Spec, deps Deps) (engine.Component, error) {
	key := strings.ToUpper(name)
	ctor, ok := table[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}
	return ctor(spec, deps)
}

// RegisterGate adds a logic gate constructor
func (r *Registry) RegisterGate(name string, ctor Ctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.gates, name, ctor)
}

// RegisterButton adds a button constructor
func (r *Registry) RegisterButton(name string, ctor Ctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.buttons, name, ctor)
}

// RegisterLED adds an LED constructor
func (r *Registry) RegisterLED(name string, ctor Ctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.leds, name, ctor)
}

// RegisterText adds a text constructor
func (r *Registry) RegisterText(name string, ctor Ctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.texts, name, ctor)
}

// RegisterBackground adds a background constructor
func (r *Registry) RegisterBackground(name string, ctor Ctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.backgrounds, name, ctor)
}

// CreateGate instantiates a registered logic gate
func (r *Registry) CreateGate(name string, spec Spec, deps Deps) (engine.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return create(r.gates, name, spec, deps)
}

// CreateButton instantiates a registered button
func (r *Registry) CreateButton(name string, spec Spec, deps Deps) (engine.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return create(r.buttons, name, spec, deps)
}

// CreateLED instantiates a registered LED
func (r *Registry) CreateLED(name string, spec Spec, deps Deps) (engine.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return create(r.leds, name, spec, deps)
}

// CreateText instantiates a registered text element
func (r *Registry) CreateText(name string, spec Spec, deps Deps) (engine.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return create(r.texts, name, spec, deps)
}

// CreateBackground instantiates a registered background
func (r *Registry) CreateBackground(name string, spec Spec, deps Deps) (engine.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return create(r.backgrounds, name, spec, deps)
}

// GateNames lists registered gate types in sorted order
func (r *Registry) GateNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return names(r.gates)
}

func names(table map[string]Ctor) []string {
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func has(table map[string]Ctor, key string) bool {
	_, ok := table[key]
	return ok
}
