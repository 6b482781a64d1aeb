package component

import (
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
	"github.com/halvek/gatelight/render"
)

// InputButton is a clickable boolean source. Its state changes only
// through clicks and SetState; nothing else writes it.
type InputButton struct {
	engine.Lifecycle

	label string
	pos   core.Point
	dim   core.Size

	offColor  core.RGB
	onColor   core.RGB
	textColor core.RGB

	state   bool
	hovered bool

	// OnToggle fires after every state change caused by a click
	OnToggle func(state bool)
}

// NewInputButton creates a toggle button with the default footprint
func NewInputButton(label string, pos core.Point, dim core.Size, initial bool) *InputButton {
	if dim.W == 0 && dim.H == 0 {
		dim = core.Size{W: 9, H: 3}
	}
	return &InputButton{
		Lifecycle: engine.NewLifecycle(),
		label:     label,
		pos:       pos,
		dim:       dim,
		offColor:  core.RGBRed,
		onColor:   core.RGBGreen,
		textColor: core.RGBWhite,
		state:     initial,
	}
}

// Result exposes the button as a logic source
func (b *InputButton) Result() bool { return b.state }

// State returns the current toggle state
func (b *InputButton) State() bool { return b.state }

// SetState overrides the toggle state directly
func (b *InputButton) SetState(v bool) { b.state = v }

// Position returns the top-left corner
func (b *InputButton) Position() core.Point { return b.pos }

// SetPosition moves the button
func (b *InputButton) SetPosition(p core.Point) { b.pos = p }

// Size returns the button footprint
func (b *InputButton) Size() core.Size { return b.dim }

// Rect returns the button's bounding rectangle
func (b *InputButton) Rect() core.Rect { return core.Rect{Pos: b.pos, Dim: b.dim} }

// RenderColor reflects the toggle state
func (b *InputButton) RenderColor() core.RGB {
	if b.state {
		return b.onColor
	}
	return b.offColor
}

// HandleMouse toggles the state on a primary-button press inside the rect
func (b *InputButton) HandleMouse(ev MouseEvent) bool {
	inside := b.Rect().Contains(ev.X, ev.Y)
	b.hovered = inside
	if ev.Pressed && inside {
		b.state = !b.state
		if b.OnToggle != nil {
			b.OnToggle(b.state)
		}
		return true
	}
	return false
}

func (b *InputButton) OnInit() {}

func (b *InputButton) OnUpdate(dt float64) {}

func (b *InputButton) OnRender(r render.Renderer) {
	color := b.RenderColor()
	if b.hovered {
		color = color.Lerp(core.RGBWhite, 0.25)
	}
	rect := b.Rect()
	r.Fill(rect, color)
	c := rect.Center()
	r.DrawText(core.Point{X: c.X - len(b.label)/2, Y: c.Y}, b.label, b.textColor)
}

func (b *InputButton) OnDestroy() {
	b.OnToggle = nil
}

// MenuButton triggers a named action when clicked. Actions are resolved
// by the level manager's callback table at construction time.
type MenuButton struct {
	engine.Lifecycle

	label string
	pos   core.Point
	dim   core.Size

	bgColor    core.RGB
	hoverColor core.RGB
	textColor  core.RGB

	hovered bool

	// Action runs on click; nil buttons render but do nothing
	Action func()
}

// NewMenuButton creates a menu button with the default footprint
func NewMenuButton(label string, pos core.Point, dim core.Size) *MenuButton {
	if dim.W == 0 && dim.H == 0 {
		dim = core.Size{W: 16, H: 3}
	}
	return &MenuButton{
		Lifecycle:  engine.NewLifecycle(),
		label:      label,
		pos:        pos,
		dim:        dim,
		bgColor:    core.RGB{R: 40, G: 40, B: 80},
		hoverColor: core.RGB{R: 70, G: 70, B: 140},
		textColor:  core.RGBWhite,
	}
}

// Label returns the button text
func (b *MenuButton) Label() string { return b.label }

// Position returns the top-left corner
func (b *MenuButton) Position() core.Point { return b.pos }

// Size returns the button footprint
func (b *MenuButton) Size() core.Size { return b.dim }

// Rect returns the button's bounding rectangle
func (b *MenuButton) Rect() core.Rect { return core.Rect{Pos: b.pos, Dim: b.dim} }

// RenderColor reflects hover state
func (b *MenuButton) RenderColor() core.RGB {
	if b.hovered {
		return b.hoverColor
	}
	return b.bgColor
}

// HandleMouse fires the action on a primary-button press inside the rect
func (b *MenuButton) HandleMouse(ev MouseEvent) bool {
	inside := b.Rect().Contains(ev.X, ev.Y)
	b.hovered = inside
	if ev.Pressed && inside {
		if b.Action != nil {
			b.Action()
		}
		return true
	}
	return false
}

func (b *MenuButton) OnInit() {}

func (b *MenuButton) OnUpdate(dt float64) {}

func (b *MenuButton) OnRender(r render.Renderer) {
	rect := b.Rect()
	r.Fill(rect, b.RenderColor())
	c := rect.Center()
	r.DrawText(core.Point{X: c.X - len(b.label)/2, Y: c.Y}, b.label, b.textColor)
}

func (b *MenuButton) OnDestroy() {
	b.Action = nil
}
