package ops

import (
	"github.com/easel-ai/easel/pkg/domain"
)

// EditLayerInput is the declared input shape of edit_layer.
// Pointer fields distinguish "not provided" from zero values.
type EditLayerInput struct {
	Layer     string         `json:"layer"`
	Name      *string        `json:"name,omitempty"`
	Visible   *bool          `json:"visible,omitempty"`
	Locked    *bool          `json:"locked,omitempty"`
	EnterAt   *float64       `json:"enter_at,omitempty"`
	ExitAt    *float64       `json:"exit_at,omitempty"`
	Transform map[string]any `json:"transform,omitempty"`
	Style     map[string]any `json:"style,omitempty"`
	Props     map[string]any `json:"props,omitempty"`
}

func registerEditLayer(c *Catalog) {
	c.Register(Tool{
		Name:        "edit_layer",
		Description: "Edit an existing layer: rename, toggle visibility or lock, adjust the time window, or patch transform, style and props.",
		Parameters: objectSchema(map[string]any{
			"layer":     stringParam("Layer reference: id, name, or positional alias (interactive sessions only)"),
			"name":      stringParam("New layer name"),
			"visible":   boolParam("Visibility flag"),
			"locked":    boolParam("Lock flag"),
			"enter_at":  numberParam("Start of the layer's visible time window, in seconds"),
			"exit_at":   numberParam("End of the layer's visible time window, in seconds"),
			"transform": objectParam("Partial transform patch"),
			"style":     objectParam("Partial style patch"),
			"props":     objectParam("Partial props patch, validated against the layer type's schema"),
		}, "layer"),
	}, handleEditLayer)
}

func handleEditLayer(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	var in EditLayerInput
	if err := decodeArgs(args, &in); err != nil {
		return Fail(err)
	}

	layer, err := scope.resolveLayer(p, in.Layer)
	if err != nil {
		return Fail(err)
	}

	if err := applyTransformPatch(&layer.Transform, in.Transform); err != nil {
		return Fail(err)
	}
	if err := applyStylePatch(&layer.Style, in.Style); err != nil {
		return Fail(err)
	}

	if len(in.Props) > 0 {
		// Validate the patch alone first for a precise error, then the
		// merged result to hold the end-of-mutation invariant.
		if err := c.registry.ValidateProps(layer.Type, in.Props); err != nil {
			return Fail(err)
		}
		for k, v := range in.Props {
			layer.Props[k] = v
		}
		if err := c.registry.ValidateProps(layer.Type, layer.Props); err != nil {
			return Fail(err)
		}
	}

	if in.Name != nil {
		layer.Name = *in.Name
	}
	if in.Visible != nil {
		layer.Visible = *in.Visible
	}
	if in.Locked != nil {
		layer.Locked = *in.Locked
	}
	if in.EnterAt != nil {
		v := *in.EnterAt
		layer.EnterAt = &v
	}
	if in.ExitAt != nil {
		v := *in.ExitAt
		layer.ExitAt = &v
	}
	if layer.EnterAt != nil && layer.ExitAt != nil && *layer.ExitAt < *layer.EnterAt {
		return Failf("exit_at (%g) must not precede enter_at (%g)", *layer.ExitAt, *layer.EnterAt)
	}

	return OK("updated layer %q", layer.Name).With("layer_id", layer.ID)
}
