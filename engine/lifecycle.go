package engine

import (
	"github.com/halvek/gatelight/render"
)

// Component is the lifecycle contract every game object implements. The
// On* hooks are never called directly: the package-level Initialize,
// Update, Render and Destroy wrappers invoke them, enforcing the
// enabled/initialized guards in exactly one place.
type Component interface {
	Base() *Lifecycle
	OnInit()
	OnUpdate(dt float64)
	OnRender(r render.Renderer)
	OnDestroy()
}

// Lifecycle tracks the enabled/initialized pair shared by all components.
// Embed it and construct with NewLifecycle so the component starts enabled.
type Lifecycle struct {
	enabled     bool
	initialized bool
}

// NewLifecycle returns lifecycle state for a freshly created component
func NewLifecycle() Lifecycle {
	return Lifecycle{enabled: true}
}

// Base satisfies Component for any struct embedding Lifecycle
func (l *Lifecycle) Base() *Lifecycle { return l }

// Enabled reports whether update/render are allowed to run
func (l *Lifecycle) Enabled() bool { return l.enabled }

// SetEnabled toggles participation in update/render cycles
func (l *Lifecycle) SetEnabled(v bool) { l.enabled = v }

// Initialized reports whether the init hook has run
func (l *Lifecycle) Initialized() bool { return l.initialized }

// Initialize runs the component's init hook exactly once. Repeat calls
// are silently ignored; collaborators rely on this being a no-op.
func Initialize(c Component) {
	b := c.Base()
	if b.initialized {
		return
	}
	c.OnInit()
	b.initialized = true
}

// Update runs the update hook when the component is enabled and initialized
func Update(c Component, dt float64) {
	b := c.Base()
	if !b.enabled || !b.initialized {
		return
	}
	c.OnUpdate(dt)
}

// Render runs the render hook when the component is enabled and initialized
func Render(c Component, r render.Renderer) {
	b := c.Base()
	if !b.enabled || !b.initialized {
		return
	}
	c.OnRender(r)
}

// Destroy runs the cleanup hook once and returns the component to the
// uninitialized state. Destroying before initializing is a no-op.
func Destroy(c Component) {
	b := c.Base()
	if !b.initialized {
		return
	}
	c.OnDestroy()
	b.initialized = false
}
