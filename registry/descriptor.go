package registry

import (
	"strings"

	"github.com/halvek/gatelight/engine"
)

// typeMapping translates external descriptor type names to internal
// registry keys. Unlisted names fall through as their own uppercase key.
var typeMapping = map[string]string{
	"and_gate":     "AND",
	"or_gate":      "OR",
	"not_gate":     "NOT",
	"input_button": "INPUT",
	"menu_button":  "MENU",
	"led":          "LED",
	"text":         "TEXT",
	"background":   "BACKGROUND",
}

// ResolveType maps an external type name to its registry key
func ResolveType(external string) string {
	key, ok := typeMapping[strings.ToLower(external)]
	if !ok {
		return strings.ToUpper(external)
	}
	return key
}

// CreateFromSpec resolves the external type name and builds the
// component from whichever category table holds it. Construction
// failures and unknown types are logged and reported as (nil, false):
// one malformed entry must never abort a level load.
func (r *Registry) CreateFromSpec(spec Spec, deps Deps) (engine.Component, bool) {
	log := deps.Log
	if log == nil {
		log = defaultLogger()
	}

	key := ResolveType(spec.Type)

	r.mu.RLock()
	var table map[string]Ctor
	switch {
	case has(r.gates, key):
		table = r.gates
	case has(r.buttons, key):
		table = r.buttons
	case has(r.leds, key):
		table = r.leds
	case has(r.texts, key):
		table = r.texts
	case has(r.backgrounds, key):
		table = r.backgrounds
	}
	r.mu.RUnlock()

	if table == nil {
		log.Warn("unknown component type", "type", spec.Type, "key", key)
		return nil, false
	}

	c, err := create(table, key, spec, deps)
	if err != nil {
		log.Warn("component construction failed", "type", spec.Type, "error", err)
		return nil, false
	}
	return c, true
}
