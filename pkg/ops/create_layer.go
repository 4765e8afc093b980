package ops

import (
	"github.com/easel-ai/easel/pkg/domain"
)

// CreateLayerInput is the declared input shape of create_layer.
type CreateLayerInput struct {
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Transform map[string]any `json:"transform,omitempty"`
	Style     map[string]any `json:"style,omitempty"`
	Props     map[string]any `json:"props,omitempty"`
	Parent    string         `json:"parent,omitempty"`
}

func registerCreateLayer(c *Catalog) {
	c.Register(Tool{
		Name:        "create_layer",
		Description: "Create a new layer of the given type. Provided transform, style and props override the type defaults.",
		Parameters: objectSchema(map[string]any{
			"type":      stringParam("Layer type: text, shape, image, video, audio or group"),
			"name":      stringParam("Human-readable layer name"),
			"transform": objectParam("Partial transform overrides (x, y, z, rotation_*, scale_*, anchor_*)"),
			"style":     objectParam("Partial style overrides (opacity, blur, filters, shadow)"),
			"props":     objectParam("Type-specific prop overrides, validated against the type's schema"),
			"parent":    stringParam("Optional parent group reference"),
		}, "type", "name"),
	}, handleCreateLayer)
}

func handleCreateLayer(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	var in CreateLayerInput
	if err := decodeArgs(args, &in); err != nil {
		return Fail(err)
	}

	layerType := domain.LayerType(in.Type)
	if !layerType.Valid() {
		return Failf("invalid layer type %q", in.Type)
	}

	layer := &domain.Layer{
		ID:        c.newID(),
		Name:      in.Name,
		Type:      layerType,
		Transform: domain.DefaultTransform(),
		Style:     domain.DefaultStyle(),
		Visible:   true,
		Keyframes: []*domain.Keyframe{},
		Props:     c.registry.Defaults(layerType),
	}

	if err := applyTransformPatch(&layer.Transform, in.Transform); err != nil {
		return Fail(err)
	}
	if err := applyStylePatch(&layer.Style, in.Style); err != nil {
		return Fail(err)
	}
	for k, v := range in.Props {
		layer.Props[k] = v
	}
	if err := c.registry.ValidateProps(layerType, layer.Props); err != nil {
		return Fail(err)
	}

	if in.Parent != "" {
		parent, err := scope.resolveLayer(p, in.Parent)
		if err != nil {
			return Fail(err)
		}
		if parent.Type != domain.LayerGroup {
			return Failf("parent %q is not a group layer", in.Parent)
		}
		layer.ParentID = parent.ID
	}

	p.Layers = append(p.Layers, layer)
	scope.record(layer.ID)

	return OK("created %s layer %q", layerType, in.Name).
		With("layer_id", layer.ID).
		With("layer_name", layer.Name)
}

// --- shared JSON Schema helpers for tool parameter declarations ---

func objectSchema(properties map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func stringParam(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func numberParam(desc string) map[string]any {
	return map[string]any{"type": "number", "description": desc}
}

func boolParam(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func objectParam(desc string) map[string]any {
	return map[string]any{"type": "object", "description": desc}
}

func arrayParam(desc string, items map[string]any) map[string]any {
	return map[string]any{"type": "array", "description": desc, "items": items}
}

func integerParam(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}
