package ops

import (
	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/paths"
)

// KeyframeInput is one (property, time, value, interpolation) entry of
// animate_layer.
type KeyframeInput struct {
	Property      string                `json:"property"`
	Time          float64               `json:"time"`
	Value         any                   `json:"value"`
	Interpolation *domain.Interpolation `json:"interpolation,omitempty"`
}

// AnimateLayerInput is the declared input shape of animate_layer.
type AnimateLayerInput struct {
	Layer     string          `json:"layer"`
	Keyframes []KeyframeInput `json:"keyframes"`
}

func registerAnimateLayer(c *Catalog) {
	c.Register(Tool{
		Name:        "animate_layer",
		Description: "Add keyframes to a layer. A keyframe at an existing (property, time) replaces that keyframe's value and interpolation instead of duplicating it.",
		Parameters: objectSchema(map[string]any{
			"layer": stringParam("Layer reference: id, name, or positional alias (interactive sessions only)"),
			"keyframes": arrayParam("Keyframes to insert or replace", objectSchema(map[string]any{
				"property": stringParam("Property path, e.g. position.x, opacity, color, props.text"),
				"time":     numberParam("Time in seconds, within [0, project duration]"),
				"value":    map[string]any{"description": "Keyframe value; number, string or boolean depending on the property"},
				"interpolation": objectParam("Optional interpolation descriptor: family (continuous|text), strategy " +
					"(linear, ease-in, ease-out, ease-in-out, cubic-bezier, char-reveal, word-reveal), " +
					"control_points for cubic-bezier, separator for word-reveal"),
			}, "property", "time", "value")),
		}, "layer", "keyframes"),
	}, handleAnimateLayer)
}

func handleAnimateLayer(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	var in AnimateLayerInput
	if err := decodeArgs(args, &in); err != nil {
		return Fail(err)
	}
	if len(in.Keyframes) == 0 {
		return Failf("animate_layer requires at least one keyframe")
	}

	layer, err := scope.resolveLayer(p, in.Layer)
	if err != nil {
		return Fail(err)
	}

	var ids []string
	for _, entry := range in.Keyframes {
		desc, err := paths.Resolve(c.registry, layer.Type, entry.Property)
		if err != nil {
			return Fail(err)
		}
		if entry.Time < 0 || entry.Time > p.Duration {
			return Failf("keyframe time %g for %q is outside [0, %g]", entry.Time, entry.Property, p.Duration)
		}
		if err := paths.CheckValue(desc, entry.Value); err != nil {
			return Fail(err)
		}

		interp, err := resolveInterpolation(desc, entry.Interpolation)
		if err != nil {
			return Fail(err)
		}

		// Duplicate time for the same property is an edit, not an insert.
		if existing := layer.KeyframeAt(entry.Property, entry.Time); existing != nil {
			existing.Value = entry.Value
			existing.Interp = interp
			ids = append(ids, existing.ID)
			continue
		}

		kf := &domain.Keyframe{
			ID:       c.newID(),
			Time:     entry.Time,
			Property: entry.Property,
			Value:    entry.Value,
			Interp:   interp,
		}
		layer.Keyframes = append(layer.Keyframes, kf)
		ids = append(ids, kf.ID)
	}

	layer.SortKeyframes()

	return OK("set %d keyframe(s) on layer %q", len(ids), layer.Name).
		With("layer_id", layer.ID).
		With("keyframe_ids", ids)
}

// resolveInterpolation fills in the property's default interpolation when
// the caller omitted one, and checks a provided descriptor against the
// property's family.
func resolveInterpolation(desc paths.Descriptor, provided *domain.Interpolation) (domain.Interpolation, error) {
	if provided == nil {
		return defaultInterpolation(desc.Family), nil
	}
	in := provided.Clone()
	if in.Family == "" {
		in.Family = desc.Family
	}
	if err := in.Validate(); err != nil {
		return domain.Interpolation{}, err
	}
	if in.Family != desc.Family {
		return domain.Interpolation{}, &paths.Error{
			Path:   desc.Path,
			Reason: "interpolation family " + string(in.Family) + " does not match the property's " + string(desc.Family) + " family",
		}
	}
	return in, nil
}

func defaultInterpolation(family domain.InterpFamily) domain.Interpolation {
	switch family {
	case domain.FamilyText:
		return domain.Interpolation{Family: domain.FamilyText, Strategy: domain.StrategyCharReveal}
	case domain.FamilyStep:
		return domain.Interpolation{Family: domain.FamilyStep, Strategy: domain.StrategyHold}
	default:
		return domain.Linear()
	}
}
