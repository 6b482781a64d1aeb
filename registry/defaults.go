package registry

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/halvek/gatelight/component"
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
)

// ErrUnknownCallback is returned when a menu button names an action the
// level manager's callback table does not provide
var ErrUnknownCallback = errors.New("registry: unknown callback")

func defaultLogger() *slog.Logger {
	return slog.Default()
}

// RegisterDefaults wires the standard component set: AND/OR/NOT gates,
// INPUT and MENU buttons, LED, TEXT and BACKGROUND.
func RegisterDefaults(r *Registry) error {
	gates := map[string]component.GateKind{
		"AND": component.GateAND,
		"OR":  component.GateOR,
		"NOT": component.GateNOT,
	}
	for name, kind := range gates {
		k := kind
		if err := r.RegisterGate(name, func(spec Spec, deps Deps) (engine.Component, error) {
			g := component.NewGate(k, spec.Position, spec.Size)
			return g, nil
		}); err != nil {
			return err
		}
	}

	if err := r.RegisterButton("INPUT", func(spec Spec, deps Deps) (engine.Component, error) {
		label := spec.Text
		if label == "" {
			label = "IN"
		}
		b := component.NewInputButton(label, spec.Position, spec.Size, spec.Initial)
		if deps.Sound != nil {
			play := deps.Sound
			b.OnToggle = func(bool) { play(core.SoundToggle) }
		}
		return b, nil
	}); err != nil {
		return err
	}

	if err := r.RegisterButton("MENU", func(spec Spec, deps Deps) (engine.Component, error) {
		b := component.NewMenuButton(spec.Text, spec.Position, spec.Size)
		if spec.Callback != "" {
			action, ok := deps.Callbacks[spec.Callback]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownCallback, spec.Callback)
			}
			play := deps.Sound
			b.Action = func() {
				if play != nil {
					play(core.SoundClick)
				}
				action()
			}
		}
		return b, nil
	}); err != nil {
		return err
	}

	if err := r.RegisterLED("LED", func(spec Spec, deps Deps) (engine.Component, error) {
		return component.NewLED(spec.Position, spec.Radius), nil
	}); err != nil {
		return err
	}

	if err := r.RegisterText("TEXT", func(spec Spec, deps Deps) (engine.Component, error) {
		color := core.RGBWhite
		if spec.Color != nil {
			color = *spec.Color
		}
		return component.NewText(spec.Text, spec.Position, color), nil
	}); err != nil {
		return err
	}

	if err := r.RegisterBackground("BACKGROUND", func(spec Spec, deps Deps) (engine.Component, error) {
		color := core.RGB{R: 16, G: 20, B: 28}
		if spec.Color != nil {
			color = *spec.Color
		}
		return component.NewBackground(color), nil
	}); err != nil {
		return err
	}

	return nil
}
