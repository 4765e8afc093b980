package schema

import (
	"fmt"

	"github.com/easel-ai/easel/pkg/domain"
)

// Definition couples a layer type's props schema with its default values.
// Defaults are merged under caller overrides when a layer is created, so a
// freshly created layer always carries a fully populated, valid props map.
type Definition struct {
	Schema   Schema
	Defaults map[string]any
}

// Registry maps layer types to their props definitions.
type Registry struct {
	defs map[domain.LayerType]Definition
}

// NewRegistry creates an empty registry. Most callers want Builtin().
func NewRegistry() *Registry {
	return &Registry{defs: make(map[domain.LayerType]Definition)}
}

// Register adds or replaces the definition for a layer type.
func (r *Registry) Register(t domain.LayerType, def Definition) {
	r.defs[t] = def
}

// Lookup returns the definition for a layer type.
func (r *Registry) Lookup(t domain.LayerType) (Definition, bool) {
	def, ok := r.defs[t]
	return def, ok
}

// Defaults returns a fresh copy of the default props for a layer type.
func (r *Registry) Defaults(t domain.LayerType) map[string]any {
	def, ok := r.defs[t]
	if !ok {
		return map[string]any{}
	}
	out := make(map[string]any, len(def.Defaults))
	for k, v := range def.Defaults {
		out[k] = v
	}
	return out
}

// ValidateProps validates a props map against the schema for a layer type.
func (r *Registry) ValidateProps(t domain.LayerType, props map[string]any) error {
	def, ok := r.defs[t]
	if !ok {
		return fmt.Errorf("no props schema registered for layer type %q", t)
	}
	return Validate(def.Schema, props)
}

// Builtin returns a registry populated with the definitions for every
// layer type in the closed set.
func Builtin() *Registry {
	r := NewRegistry()

	r.Register(domain.LayerText, Definition{
		Schema: Schema{
			"text":       String(),
			"fontSize":   Number(),
			"fontFamily": String(),
			"fontWeight": String(),
			"color":      Color(),
			"align":      Enum("left", "center", "right"),
		},
		Defaults: map[string]any{
			"text":       "",
			"fontSize":   48.0,
			"fontFamily": "",
			"fontWeight": "normal",
			"color":      "#ffffff",
			"align":      "center",
		},
	})

	r.Register(domain.LayerShape, Definition{
		Schema: Schema{
			"shape":        Enum("rectangle", "circle", "ellipse", "line", "polygon"),
			"fill":         Color(),
			"stroke":       Color(),
			"strokeWidth":  Number(),
			"cornerRadius": Number(),
			"width":        Number(),
			"height":       Number(),
		},
		Defaults: map[string]any{
			"shape":        "rectangle",
			"fill":         "#ffffff",
			"stroke":       "#000000",
			"strokeWidth":  0.0,
			"cornerRadius": 0.0,
			"width":        200.0,
			"height":       200.0,
		},
	})

	r.Register(domain.LayerImage, Definition{
		Schema: Schema{
			"src": String(),
			"fit": Enum("cover", "contain", "fill"),
		},
		Defaults: map[string]any{
			"src": "",
			"fit": "contain",
		},
	})

	r.Register(domain.LayerVideo, Definition{
		Schema: Schema{
			"src":       String(),
			"trimStart": Number(),
			"muted":     Bool(),
			"loop":      Bool(),
		},
		Defaults: map[string]any{
			"src":       "",
			"trimStart": 0.0,
			"muted":     false,
			"loop":      false,
		},
	})

	r.Register(domain.LayerAudio, Definition{
		Schema: Schema{
			"src":    String(),
			"volume": Number(),
			"loop":   Bool(),
		},
		Defaults: map[string]any{
			"src":    "",
			"volume": 1.0,
			"loop":   false,
		},
	})

	r.Register(domain.LayerGroup, Definition{
		Schema:   Schema{},
		Defaults: map[string]any{},
	})

	return r
}
