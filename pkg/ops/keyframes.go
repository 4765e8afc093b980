package ops

import (
	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/paths"
)

// UpdateKeyframeInput is the declared input shape of update_keyframe.
type UpdateKeyframeInput struct {
	Layer         string                `json:"layer"`
	KeyframeID    string                `json:"keyframe_id"`
	Time          *float64              `json:"time,omitempty"`
	Value         any                   `json:"value,omitempty"`
	Interpolation *domain.Interpolation `json:"interpolation,omitempty"`
}

func registerUpdateKeyframe(c *Catalog) {
	c.Register(Tool{
		Name:        "update_keyframe",
		Description: "Patch an existing keyframe's time, value or interpolation.",
		Parameters: objectSchema(map[string]any{
			"layer":         stringParam("Layer reference: id, name, or positional alias (interactive sessions only)"),
			"keyframe_id":   stringParam("Id of the keyframe to patch"),
			"time":          numberParam("New time in seconds, within [0, project duration]"),
			"value":         map[string]any{"description": "New keyframe value"},
			"interpolation": objectParam("New interpolation descriptor"),
		}, "layer", "keyframe_id"),
	}, handleUpdateKeyframe)
}

func handleUpdateKeyframe(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	var in UpdateKeyframeInput
	if err := decodeArgs(args, &in); err != nil {
		return Fail(err)
	}

	layer, err := scope.resolveLayer(p, in.Layer)
	if err != nil {
		return Fail(err)
	}
	kf := layer.Keyframe(in.KeyframeID)
	if kf == nil {
		return Failf("%s: %q", domain.ErrKeyframeNotFound, in.KeyframeID)
	}

	desc, err := paths.Resolve(c.registry, layer.Type, kf.Property)
	if err != nil {
		return Fail(err)
	}

	if in.Time != nil {
		t := *in.Time
		if t < 0 || t > p.Duration {
			return Failf("keyframe time %g is outside [0, %g]", t, p.Duration)
		}
		// Moving onto another keyframe of the same property would break
		// the no-duplicate-time invariant.
		if other := layer.KeyframeAt(kf.Property, t); other != nil && other.ID != kf.ID {
			return Failf("a keyframe for %q already exists at time %g", kf.Property, t)
		}
		kf.Time = t
	}

	// "value" is optional, but nil is not a valid keyframe value, so
	// presence in the raw args is enough to distinguish the two.
	if _, provided := args["value"]; provided {
		if err := paths.CheckValue(desc, in.Value); err != nil {
			return Fail(err)
		}
		kf.Value = in.Value
	}

	if in.Interpolation != nil {
		interp, err := resolveInterpolation(desc, in.Interpolation)
		if err != nil {
			return Fail(err)
		}
		kf.Interp = interp
	}

	layer.SortKeyframes()

	return OK("updated keyframe %s on layer %q", kf.ID, layer.Name).
		With("layer_id", layer.ID).
		With("keyframe_id", kf.ID)
}

// RemoveKeyframeInput is the declared input shape of remove_keyframe.
type RemoveKeyframeInput struct {
	Layer      string `json:"layer"`
	KeyframeID string `json:"keyframe_id"`
}

func registerRemoveKeyframe(c *Catalog) {
	c.Register(Tool{
		Name:        "remove_keyframe",
		Description: "Remove a keyframe from a layer. Removing an unknown keyframe id is an error, not a silent no-op.",
		Parameters: objectSchema(map[string]any{
			"layer":       stringParam("Layer reference: id, name, or positional alias (interactive sessions only)"),
			"keyframe_id": stringParam("Id of the keyframe to remove"),
		}, "layer", "keyframe_id"),
	}, handleRemoveKeyframe)
}

func handleRemoveKeyframe(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	var in RemoveKeyframeInput
	if err := decodeArgs(args, &in); err != nil {
		return Fail(err)
	}

	layer, err := scope.resolveLayer(p, in.Layer)
	if err != nil {
		return Fail(err)
	}
	if !layer.RemoveKeyframe(in.KeyframeID) {
		return Failf("%s: %q", domain.ErrKeyframeNotFound, in.KeyframeID)
	}

	return OK("removed keyframe %s from layer %q", in.KeyframeID, layer.Name).
		With("layer_id", layer.ID)
}
