package domain

import "fmt"

// InterpFamily is the category of interpolation logic applied between two
// keyframes of the same property.
type InterpFamily string

const (
	// FamilyContinuous eases and linearly interpolates numeric and color values.
	FamilyContinuous InterpFamily = "continuous"
	// FamilyText reveals the target string progressively (typewriter effects).
	FamilyText InterpFamily = "text"
	// FamilyStep holds the previous value until the next keyframe's time.
	// Used for boolean properties, which cannot be blended.
	FamilyStep InterpFamily = "step"
)

// InterpStrategy selects the curve or reveal mode within a family.
type InterpStrategy string

const (
	StrategyLinear      InterpStrategy = "linear"
	StrategyEaseIn      InterpStrategy = "ease-in"
	StrategyEaseOut     InterpStrategy = "ease-out"
	StrategyEaseInOut   InterpStrategy = "ease-in-out"
	StrategyCubicBezier InterpStrategy = "cubic-bezier"
	StrategyCharReveal  InterpStrategy = "char-reveal"
	StrategyWordReveal  InterpStrategy = "word-reveal"
	StrategyHold        InterpStrategy = "hold"
)

// DefaultWordSeparator is used by word-reveal when no separator is configured.
const DefaultWordSeparator = " "

// Interpolation describes how to blend from one keyframe to the next.
type Interpolation struct {
	Family   InterpFamily   `json:"family" yaml:"family"`
	Strategy InterpStrategy `json:"strategy" yaml:"strategy"`

	// ControlPoints carries x1,y1,x2,y2 for cubic-bezier.
	ControlPoints []float64 `json:"control_points,omitempty" yaml:"control_points,omitempty"`

	// Separator is the word boundary for word-reveal.
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`
}

// Validate checks that the strategy belongs to the family and that
// strategy-specific parameters are well-formed.
func (in Interpolation) Validate() error {
	switch in.Family {
	case FamilyContinuous:
		switch in.Strategy {
		case StrategyLinear, StrategyEaseIn, StrategyEaseOut, StrategyEaseInOut:
			return nil
		case StrategyCubicBezier:
			if len(in.ControlPoints) != 4 {
				return fmt.Errorf("cubic-bezier requires 4 control points, got %d", len(in.ControlPoints))
			}
			return nil
		}
		return fmt.Errorf("strategy %q is not valid for the continuous family", in.Strategy)
	case FamilyText:
		switch in.Strategy {
		case StrategyCharReveal, StrategyWordReveal:
			return nil
		}
		return fmt.Errorf("strategy %q is not valid for the text family", in.Strategy)
	case FamilyStep:
		if in.Strategy == StrategyHold || in.Strategy == "" {
			return nil
		}
		return fmt.Errorf("strategy %q is not valid for the step family", in.Strategy)
	}
	return fmt.Errorf("unknown interpolation family %q", in.Family)
}

// Linear is the default interpolation for numeric and color properties.
func Linear() Interpolation {
	return Interpolation{Family: FamilyContinuous, Strategy: StrategyLinear}
}

// Clone returns a deep copy of the interpolation descriptor.
func (in Interpolation) Clone() Interpolation {
	cp := in
	if in.ControlPoints != nil {
		cp.ControlPoints = append([]float64(nil), in.ControlPoints...)
	}
	return cp
}

// Keyframe is one control point on a layer property's timeline.
// Its id is unique within the owning layer; its value type must match the
// property descriptor resolved by pkg/paths.
type Keyframe struct {
	ID       string        `json:"id" yaml:"id"`
	Time     float64       `json:"time" yaml:"time"` // seconds from project start
	Property string        `json:"property" yaml:"property"`
	Value    any           `json:"value" yaml:"value"`
	Interp   Interpolation `json:"interpolation" yaml:"interpolation"`
}

// Clone returns a deep copy of the keyframe.
func (k *Keyframe) Clone() *Keyframe {
	cp := *k
	cp.Interp = k.Interp.Clone()
	return &cp
}
