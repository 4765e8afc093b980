package timeline

import (
	"fmt"

	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/paths"
	"github.com/easel-ai/easel/pkg/schema"
)

// Evaluate computes the value of a layer property at the given time.
// The keyframe list is assumed sorted by ascending time, which pkg/ops
// guarantees after every mutation.
func Evaluate(reg *schema.Registry, layer *domain.Layer, path string, at float64) (any, error) {
	desc, err := paths.Resolve(reg, layer.Type, path)
	if err != nil {
		return nil, err
	}

	kfs := layer.KeyframesFor(path)
	if len(kfs) == 0 {
		return paths.StaticValue(layer, desc), nil
	}

	// Clamp outside the keyframed range.
	if at <= kfs[0].Time {
		return kfs[0].Value, nil
	}
	last := kfs[len(kfs)-1]
	if at >= last.Time {
		return last.Value, nil
	}

	// Find the bracketing pair with k0.Time <= at < k1.Time.
	var k0, k1 *domain.Keyframe
	for i := 0; i < len(kfs)-1; i++ {
		if kfs[i].Time <= at && at < kfs[i+1].Time {
			k0, k1 = kfs[i], kfs[i+1]
			break
		}
	}
	if k0 == nil {
		// Unreachable with a sorted list; guard against a corrupt document.
		return nil, fmt.Errorf("keyframes for %q are not sorted", path)
	}

	// An exact hit on a keyframe returns that keyframe's value for every
	// family. Without this the reveal strategies would show an empty
	// prefix of k1's text at k0's own time.
	if at == k0.Time {
		return k0.Value, nil
	}

	p := (at - k0.Time) / (k1.Time - k0.Time)

	interp := k0.Interp
	if interp.Family == "" {
		interp.Family = desc.Family
	}

	switch interp.Family {
	case domain.FamilyContinuous:
		return blendContinuous(desc, interp, k0.Value, k1.Value, p)
	case domain.FamilyText:
		return revealText(interp, k1.Value, p)
	case domain.FamilyStep:
		return k0.Value, nil
	}
	return nil, fmt.Errorf("unknown interpolation family %q", interp.Family)
}

// blendContinuous eases p and interpolates numerically; color values are
// blended per channel.
func blendContinuous(desc paths.Descriptor, interp domain.Interpolation, v0, v1 any, p float64) (any, error) {
	e := Ease(interp, p)

	if desc.Kind == schema.KindColor {
		from, ok0 := v0.(string)
		to, ok1 := v1.(string)
		if !ok0 || !ok1 {
			return nil, fmt.Errorf("color keyframes for %q must hold strings, got %T and %T", desc.Path, v0, v1)
		}
		return lerpColor(from, to, e)
	}

	f0, err := toFloat(v0)
	if err != nil {
		return nil, fmt.Errorf("keyframe value for %q: %w", desc.Path, err)
	}
	f1, err := toFloat(v1)
	if err != nil {
		return nil, fmt.Errorf("keyframe value for %q: %w", desc.Path, err)
	}
	return f0 + e*(f1-f0), nil
}

// revealText applies char-reveal or word-reveal toward k1's string.
// The target is the destination keyframe: the reveal assumes it extends
// the previous keyframe's text.
func revealText(interp domain.Interpolation, v1 any, p float64) (any, error) {
	target, ok := v1.(string)
	if !ok {
		return nil, fmt.Errorf("text keyframes must hold strings, got %T", v1)
	}
	if interp.Strategy == domain.StrategyWordReveal {
		sep := interp.Separator
		if sep == "" {
			sep = domain.DefaultWordSeparator
		}
		return wordReveal(target, sep, p), nil
	}
	return charReveal(target, p), nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}
