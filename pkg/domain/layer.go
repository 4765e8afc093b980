package domain

import "sort"

// LayerType identifies the kind of a layer. The set is closed: every type
// has a props schema registered in pkg/schema.
type LayerType string

const (
	LayerText  LayerType = "text"
	LayerShape LayerType = "shape"
	LayerImage LayerType = "image"
	LayerVideo LayerType = "video"
	LayerAudio LayerType = "audio"
	LayerGroup LayerType = "group"
)

// LayerTypes lists all valid layer types in a stable order.
func LayerTypes() []LayerType {
	return []LayerType{LayerText, LayerShape, LayerImage, LayerVideo, LayerAudio, LayerGroup}
}

// Valid reports whether t is one of the known layer types.
func (t LayerType) Valid() bool {
	switch t {
	case LayerText, LayerShape, LayerImage, LayerVideo, LayerAudio, LayerGroup:
		return true
	}
	return false
}

// Transform holds the spatial placement of a layer on the canvas.
type Transform struct {
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	Z         float64 `json:"z" yaml:"z"`
	RotationX float64 `json:"rotation_x" yaml:"rotation_x"`
	RotationY float64 `json:"rotation_y" yaml:"rotation_y"`
	RotationZ float64 `json:"rotation_z" yaml:"rotation_z"`
	ScaleX    float64 `json:"scale_x" yaml:"scale_x"`
	ScaleY    float64 `json:"scale_y" yaml:"scale_y"`
	AnchorX   float64 `json:"anchor_x" yaml:"anchor_x"`
	AnchorY   float64 `json:"anchor_y" yaml:"anchor_y"`
}

// DefaultTransform centers the anchor and applies identity scale.
func DefaultTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1, AnchorX: 0.5, AnchorY: 0.5}
}

// Shadow describes a drop shadow applied to a layer.
type Shadow struct {
	OffsetX float64 `json:"offset_x" yaml:"offset_x"`
	OffsetY float64 `json:"offset_y" yaml:"offset_y"`
	Blur    float64 `json:"blur" yaml:"blur"`
	Color   string  `json:"color" yaml:"color"`
}

// Style holds the visual styling of a layer.
type Style struct {
	Opacity float64  `json:"opacity" yaml:"opacity"` // 0..1
	Blur    float64  `json:"blur" yaml:"blur"`
	Filters []string `json:"filters,omitempty" yaml:"filters,omitempty"`
	Shadow  *Shadow  `json:"shadow,omitempty" yaml:"shadow,omitempty"`
}

// DefaultStyle is fully opaque with no effects.
func DefaultStyle() Style {
	return Style{Opacity: 1}
}

// Layer is a positioned, styled element of the canvas. A layer owns its
// animation timeline (Keyframes) and a type-specific property map (Props)
// whose shape is validated against the schema registered for its type.
type Layer struct {
	ID        string         `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Type      LayerType      `json:"type" yaml:"type"`
	Transform Transform      `json:"transform" yaml:"transform"`
	Style     Style          `json:"style" yaml:"style"`
	Visible   bool           `json:"visible" yaml:"visible"`
	Locked    bool           `json:"locked" yaml:"locked"`
	Keyframes []*Keyframe    `json:"keyframes" yaml:"keyframes"`
	Props     map[string]any `json:"props" yaml:"props"`

	// EnterAt/ExitAt optionally restrict the time window (seconds) in
	// which the layer is rendered. Nil means unbounded on that side.
	EnterAt *float64 `json:"enter_at,omitempty" yaml:"enter_at,omitempty"`
	ExitAt  *float64 `json:"exit_at,omitempty" yaml:"exit_at,omitempty"`

	// ParentID links the layer into a group. Empty means root.
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

// Keyframe returns the keyframe with the given id, or nil if absent.
func (l *Layer) Keyframe(id string) *Keyframe {
	for _, k := range l.Keyframes {
		if k.ID == id {
			return k
		}
	}
	return nil
}

// KeyframesFor returns the keyframes targeting the given property path,
// preserving document order (ascending time once SortKeyframes has run).
func (l *Layer) KeyframesFor(property string) []*Keyframe {
	var out []*Keyframe
	for _, k := range l.Keyframes {
		if k.Property == property {
			out = append(out, k)
		}
	}
	return out
}

// KeyframeAt returns the keyframe for the property at the exact time, or nil.
func (l *Layer) KeyframeAt(property string, time float64) *Keyframe {
	for _, k := range l.Keyframes {
		if k.Property == property && k.Time == time {
			return k
		}
	}
	return nil
}

// SortKeyframes restores the ascending-time invariant. The sort is stable
// so keyframes on different properties keep their relative insert order.
func (l *Layer) SortKeyframes() {
	sort.SliceStable(l.Keyframes, func(i, j int) bool {
		return l.Keyframes[i].Time < l.Keyframes[j].Time
	})
}

// RemoveKeyframe removes the keyframe with the given id.
// Returns false if the id is unknown.
func (l *Layer) RemoveKeyframe(id string) bool {
	for i, k := range l.Keyframes {
		if k.ID == id {
			l.Keyframes = append(l.Keyframes[:i], l.Keyframes[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the layer. Props values are scalars by
// schema, so the map itself is the only structure that needs copying.
func (l *Layer) Clone() *Layer {
	cp := *l
	cp.Keyframes = make([]*Keyframe, len(l.Keyframes))
	for i, k := range l.Keyframes {
		cp.Keyframes[i] = k.Clone()
	}
	cp.Props = make(map[string]any, len(l.Props))
	for k, v := range l.Props {
		cp.Props[k] = v
	}
	if l.Style.Filters != nil {
		cp.Style.Filters = append([]string(nil), l.Style.Filters...)
	}
	if l.Style.Shadow != nil {
		sh := *l.Style.Shadow
		cp.Style.Shadow = &sh
	}
	if l.EnterAt != nil {
		v := *l.EnterAt
		cp.EnterAt = &v
	}
	if l.ExitAt != nil {
		v := *l.ExitAt
		cp.ExitAt = &v
	}
	return &cp
}
