package level

import (
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/registry"
)

// Descriptor is the on-disk JSON shape of one level
type Descriptor struct {
	Name        string            `json:"name"`
	Background  *ComponentEntry   `json:"background,omitempty"`
	Components  []ComponentEntry  `json:"components"`
	Connections []ConnectionEntry `json:"connections,omitempty"`
}

// ComponentEntry is one declared component. Type-specific fields are
// optional; unknown JSON keys are ignored by the decoder.
type ComponentEntry struct {
	Type         string `json:"type"`
	ID           string `json:"id,omitempty"`
	Text         string `json:"text,omitempty"`
	Position     []int  `json:"position,omitempty"`
	Size         []int  `json:"size,omitempty"`
	Radius       int    `json:"radius,omitempty"`
	InitialState bool   `json:"initial_state,omitempty"`
	Callback     string `json:"callback,omitempty"`
	Color        []int  `json:"color,omitempty"`
}

// ConnectionEntry declares one wire: from's output feeds to's input slot
type ConnectionEntry struct {
	From       string `json:"from"`
	To         string `json:"to"`
	InputIndex int    `json:"input_index"`
}

// Spec converts the JSON entry into constructor arguments
func (e ComponentEntry) Spec() registry.Spec {
	spec := registry.Spec{
		Type:     e.Type,
		ID:       e.ID,
		Text:     e.Text,
		Radius:   e.Radius,
		Initial:  e.InitialState,
		Callback: e.Callback,
	}
	if len(e.Position) >= 2 {
		spec.Position = core.Point{X: e.Position[0], Y: e.Position[1]}
	}
	if len(e.Size) >= 2 {
		spec.Size = core.Size{W: e.Size[0], H: e.Size[1]}
	}
	if len(e.Color) >= 3 {
		spec.Color = &core.RGB{
			R: uint8(e.Color[0]),
			G: uint8(e.Color[1]),
			B: uint8(e.Color[2]),
		}
	}
	return spec
}
