package ops

import (
	"fmt"

	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/schema"
)

// applyTransformPatch shallow-merges a transform patch onto t.
// Unknown keys and non-numeric values are rejected so a typo from the
// model surfaces as an error instead of a silent no-op.
func applyTransformPatch(t *domain.Transform, patch map[string]any) error {
	for key, raw := range patch {
		v, err := asNumber(key, raw)
		if err != nil {
			return err
		}
		switch key {
		case "x":
			t.X = v
		case "y":
			t.Y = v
		case "z":
			t.Z = v
		case "rotation_x":
			t.RotationX = v
		case "rotation_y":
			t.RotationY = v
		case "rotation_z":
			t.RotationZ = v
		case "scale_x":
			t.ScaleX = v
		case "scale_y":
			t.ScaleY = v
		case "anchor_x":
			t.AnchorX = v
		case "anchor_y":
			t.AnchorY = v
		default:
			return fmt.Errorf("unknown transform field %q", key)
		}
	}
	return nil
}

// applyStylePatch shallow-merges a style patch onto s.
func applyStylePatch(s *domain.Style, patch map[string]any) error {
	for key, raw := range patch {
		switch key {
		case "opacity":
			v, err := asNumber(key, raw)
			if err != nil {
				return err
			}
			if v < 0 || v > 1 {
				return fmt.Errorf("opacity must be within [0, 1], got %g", v)
			}
			s.Opacity = v
		case "blur":
			v, err := asNumber(key, raw)
			if err != nil {
				return err
			}
			if v < 0 {
				return fmt.Errorf("blur must not be negative, got %g", v)
			}
			s.Blur = v
		case "filters":
			filters, err := asStringSlice(key, raw)
			if err != nil {
				return err
			}
			s.Filters = filters
		case "shadow":
			if raw == nil {
				s.Shadow = nil
				continue
			}
			m, ok := raw.(map[string]any)
			if !ok {
				return fmt.Errorf("style field %q must be an object, got %T", key, raw)
			}
			shadow := domain.Shadow{Color: "#000000"}
			if s.Shadow != nil {
				shadow = *s.Shadow
			}
			if err := applyShadowPatch(&shadow, m); err != nil {
				return err
			}
			s.Shadow = &shadow
		default:
			return fmt.Errorf("unknown style field %q", key)
		}
	}
	return nil
}

func applyShadowPatch(sh *domain.Shadow, patch map[string]any) error {
	for key, raw := range patch {
		switch key {
		case "offset_x", "offset_y", "blur":
			v, err := asNumber(key, raw)
			if err != nil {
				return err
			}
			switch key {
			case "offset_x":
				sh.OffsetX = v
			case "offset_y":
				sh.OffsetY = v
			case "blur":
				sh.Blur = v
			}
		case "color":
			c, ok := raw.(string)
			if !ok || !schema.IsHexColor(c) {
				return fmt.Errorf("shadow color must be a hex color string, got %v", raw)
			}
			sh.Color = c
		default:
			return fmt.Errorf("unknown shadow field %q", key)
		}
	}
	return nil
}

func asNumber(key string, raw any) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("field %q must be a number, got %T", key, raw)
}

func asStringSlice(key string, raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("field %q must be a list of strings, got element %T", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("field %q must be a list of strings, got %T", key, raw)
}
