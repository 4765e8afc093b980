// Package paths validates and resolves animatable property paths.
//
// A path is either a built-in dotted address into the layer transform or
// style (e.g. "position.x", "opacity"), the "color" alias into the layer's
// primary color prop, or a dynamic "props.<key>" address whose validity
// depends on the props schema registered for the layer's type.
//
// Resolution produces a Descriptor: the value kind the property holds and
// the default interpolation family the evaluator applies when a keyframe
// does not override it.
package paths

import (
	"fmt"
	"strings"

	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/schema"
)

// PropsPrefix addresses dynamic per-type props.
const PropsPrefix = "props."

// Descriptor describes a resolved property path.
type Descriptor struct {
	// Path is the canonical path string as addressed by keyframes.
	Path string
	// Kind is the value kind keyframe values must conform to.
	Kind schema.Kind
	// Family is the default interpolation family for this property.
	Family domain.InterpFamily
	// PropKey is the props map key this path reads, empty for
	// transform/style built-ins. Set for "color" and "props.<key>".
	PropKey string
}

// Error reports an invalid or unknown property path.
type Error struct {
	Path   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid property path %q: %s", e.Path, e.Reason)
}

// builtins are valid for every layer type.
var builtins = map[string]struct{}{
	"position.x": {}, "position.y": {}, "position.z": {},
	"rotation.x": {}, "rotation.y": {}, "rotation.z": {},
	"scale.x": {}, "scale.y": {},
	"anchor.x": {}, "anchor.y": {},
	"opacity": {}, "blur": {},
}

// colorProp maps a layer type to the props key its "color" alias targets.
var colorProp = map[domain.LayerType]string{
	domain.LayerText:  "color",
	domain.LayerShape: "fill",
}

// familyFor picks the default interpolation family for a value kind.
func familyFor(kind schema.Kind) domain.InterpFamily {
	switch kind {
	case schema.KindNumber, schema.KindColor:
		return domain.FamilyContinuous
	case schema.KindBool:
		return domain.FamilyStep
	default:
		return domain.FamilyText
	}
}

// Resolve validates path against the layer type and its props schema,
// returning the property descriptor.
func Resolve(reg *schema.Registry, layerType domain.LayerType, path string) (Descriptor, error) {
	if _, ok := builtins[path]; ok {
		return Descriptor{Path: path, Kind: schema.KindNumber, Family: domain.FamilyContinuous}, nil
	}

	if path == "color" {
		key, ok := colorProp[layerType]
		if !ok {
			return Descriptor{}, &Error{Path: path, Reason: fmt.Sprintf("layer type %q has no color property", layerType)}
		}
		return Descriptor{Path: path, Kind: schema.KindColor, Family: domain.FamilyContinuous, PropKey: key}, nil
	}

	if strings.HasPrefix(path, PropsPrefix) {
		key := strings.TrimPrefix(path, PropsPrefix)
		if key == "" {
			return Descriptor{}, &Error{Path: path, Reason: "missing props key"}
		}
		def, ok := reg.Lookup(layerType)
		if !ok {
			return Descriptor{}, &Error{Path: path, Reason: fmt.Sprintf("unknown layer type %q", layerType)}
		}
		t, ok := def.Schema[key]
		if !ok {
			return Descriptor{}, &Error{Path: path, Reason: fmt.Sprintf("prop %q is not defined for layer type %q", key, layerType)}
		}
		return Descriptor{Path: path, Kind: t.Kind(), Family: familyFor(t.Kind()), PropKey: key}, nil
	}

	return Descriptor{}, &Error{Path: path, Reason: "unknown property"}
}

// CheckValue verifies a keyframe value against the descriptor's kind.
func CheckValue(d Descriptor, value any) error {
	var t schema.Type
	switch d.Kind {
	case schema.KindNumber:
		t = schema.Number()
	case schema.KindBool:
		t = schema.Bool()
	case schema.KindColor:
		t = schema.Color()
	default:
		t = schema.String()
	}
	if err := t.Validate(value); err != nil {
		return &Error{Path: d.Path, Reason: err.Error()}
	}
	return nil
}

// StaticValue reads the layer's current (unanimated) value for the
// property. This is what the evaluator returns when no keyframes target
// the path.
func StaticValue(layer *domain.Layer, d Descriptor) any {
	if d.PropKey != "" {
		return layer.Props[d.PropKey]
	}
	switch d.Path {
	case "position.x":
		return layer.Transform.X
	case "position.y":
		return layer.Transform.Y
	case "position.z":
		return layer.Transform.Z
	case "rotation.x":
		return layer.Transform.RotationX
	case "rotation.y":
		return layer.Transform.RotationY
	case "rotation.z":
		return layer.Transform.RotationZ
	case "scale.x":
		return layer.Transform.ScaleX
	case "scale.y":
		return layer.Transform.ScaleY
	case "anchor.x":
		return layer.Transform.AnchorX
	case "anchor.y":
		return layer.Transform.AnchorY
	case "opacity":
		return layer.Style.Opacity
	case "blur":
		return layer.Style.Blur
	}
	return nil
}
