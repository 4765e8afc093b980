package dsl

import (
	"github.com/easel-ai/easel/pkg/domain"
)

// LayerBuilder accumulates one layer definition.
type LayerBuilder struct {
	typ       domain.LayerType
	name      string
	transform domain.Transform
	style     domain.Style
	props     map[string]any
	keys      []keyDef
	enterAt   *float64
	exitAt    *float64
	hidden    bool
	parent    *LayerBuilder

	// built is set during Build so members can link to their group.
	built *domain.Layer
}

type keyDef struct {
	property string
	time     float64
	value    any
	interp   *domain.Interpolation
}

func newLayerBuilder(typ domain.LayerType, name string) *LayerBuilder {
	return &LayerBuilder{
		typ:       typ,
		name:      name,
		transform: domain.DefaultTransform(),
		style:     domain.DefaultStyle(),
		props:     map[string]any{},
	}
}

// Text starts a text layer.
func Text(name string) *LayerBuilder { return newLayerBuilder(domain.LayerText, name) }

// Shape starts a shape layer.
func Shape(name string) *LayerBuilder { return newLayerBuilder(domain.LayerShape, name) }

// Image starts an image layer with the given source.
func Image(name, src string) *LayerBuilder {
	return newLayerBuilder(domain.LayerImage, name).Prop("src", src)
}

// Video starts a video layer with the given source.
func Video(name, src string) *LayerBuilder {
	return newLayerBuilder(domain.LayerVideo, name).Prop("src", src)
}

// Audio starts an audio layer with the given source.
func Audio(name, src string) *LayerBuilder {
	return newLayerBuilder(domain.LayerAudio, name).Prop("src", src)
}

// Prop sets a type-specific property.
func (lb *LayerBuilder) Prop(key string, value any) *LayerBuilder {
	lb.props[key] = value
	return lb
}

// At positions the layer on the canvas.
func (lb *LayerBuilder) At(x, y float64) *LayerBuilder {
	lb.transform.X = x
	lb.transform.Y = y
	return lb
}

// Scale sets the layer scale factors.
func (lb *LayerBuilder) Scale(x, y float64) *LayerBuilder {
	lb.transform.ScaleX = x
	lb.transform.ScaleY = y
	return lb
}

// Rotate sets the z-axis rotation in degrees.
func (lb *LayerBuilder) Rotate(degrees float64) *LayerBuilder {
	lb.transform.RotationZ = degrees
	return lb
}

// Opacity sets the static layer opacity (0..1).
func (lb *LayerBuilder) Opacity(v float64) *LayerBuilder {
	lb.style.Opacity = v
	return lb
}

// Hidden marks the layer as not visible.
func (lb *LayerBuilder) Hidden() *LayerBuilder {
	lb.hidden = true
	return lb
}

// Window restricts the render window of the layer in seconds.
func (lb *LayerBuilder) Window(enterAt, exitAt float64) *LayerBuilder {
	lb.enterAt = &enterAt
	lb.exitAt = &exitAt
	return lb
}

// Key adds a keyframe with the default interpolation for the property's
// family (linear, char-reveal or hold).
func (lb *LayerBuilder) Key(property string, time float64, value any) *LayerBuilder {
	lb.keys = append(lb.keys, keyDef{property: property, time: time, value: value})
	return lb
}

// KeyWith adds a keyframe with an explicit interpolation.
func (lb *LayerBuilder) KeyWith(property string, time float64, value any, interp domain.Interpolation) *LayerBuilder {
	lb.keys = append(lb.keys, keyDef{property: property, time: time, value: value, interp: &interp})
	return lb
}

// Ease adds a continuous keyframe with the given easing strategy.
func (lb *LayerBuilder) Ease(property string, time float64, value any, strategy domain.InterpStrategy) *LayerBuilder {
	return lb.KeyWith(property, time, value, domain.Interpolation{
		Family:   domain.FamilyContinuous,
		Strategy: strategy,
	})
}
