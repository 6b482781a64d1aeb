package component

import (
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
	"github.com/halvek/gatelight/render"
)

// Text is a static label
type Text struct {
	engine.Lifecycle

	text  string
	pos   core.Point
	color core.RGB
}

// NewText creates a label at a position
func NewText(text string, pos core.Point, color core.RGB) *Text {
	return &Text{
		Lifecycle: engine.NewLifecycle(),
		text:      text,
		pos:       pos,
		color:     color,
	}
}

// Content returns the label text
func (t *Text) Content() string { return t.text }

// SetContent replaces the label text
func (t *Text) SetContent(s string) { t.text = s }

// Position returns the label origin
func (t *Text) Position() core.Point { return t.pos }

// Size returns the label footprint (one row)
func (t *Text) Size() core.Size { return core.Size{W: len(t.text), H: 1} }

// RenderColor returns the label color
func (t *Text) RenderColor() core.RGB { return t.color }

func (t *Text) OnInit() {}

func (t *Text) OnUpdate(dt float64) {}

func (t *Text) OnRender(r render.Renderer) {
	r.DrawText(t.pos, t.text, t.color)
}

func (t *Text) OnDestroy() {}
