package component

import (
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
	"github.com/halvek/gatelight/render"
)

// Background fills the whole screen behind every other component. Levels
// declare at most one; it is always instantiated first.
type Background struct {
	engine.Lifecycle

	color core.RGB
}

// NewBackground creates a solid backdrop
func NewBackground(color core.RGB) *Background {
	return &Background{
		Lifecycle: engine.NewLifecycle(),
		color:     color,
	}
}

func (b *Background) OnInit() {}

func (b *Background) OnUpdate(dt float64) {}

func (b *Background) OnRender(r render.Renderer) {
	w, h := r.Size()
	r.Fill(core.NewRect(0, 0, w, h), b.color)
}

func (b *Background) OnDestroy() {}
