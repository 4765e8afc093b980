package dsl

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/paths"
	"github.com/easel-ai/easel/pkg/schema"
)

// Builder accumulates a project definition and materializes it on Build.
type Builder struct {
	project *domain.Project
	layers  []*LayerBuilder
	reg     *schema.Registry
	newID   func() string
}

// New starts a builder for a project with default canvas settings.
func New(name string) *Builder {
	gen := func() string { return uuid.NewString() }
	return &Builder{
		project: domain.NewProject(gen(), name),
		reg:     schema.Builtin(),
		newID:   gen,
	}
}

// WithIDGenerator overrides id generation, mainly for deterministic tests.
func (b *Builder) WithIDGenerator(fn func() string) *Builder {
	b.newID = fn
	b.project.ID = fn()
	return b
}

// Canvas sets the canvas dimensions in pixels.
func (b *Builder) Canvas(width, height int) *Builder {
	b.project.Width = width
	b.project.Height = height
	return b
}

// Duration sets the project duration in seconds.
func (b *Builder) Duration(seconds float64) *Builder {
	b.project.Duration = seconds
	return b
}

// FPS sets the frame rate.
func (b *Builder) FPS(fps float64) *Builder {
	b.project.FPS = fps
	return b
}

// Background sets the canvas background color (hex).
func (b *Builder) Background(color string) *Builder {
	b.project.Background = color
	return b
}

// Layer adds a layer definition to the project.
func (b *Builder) Layer(l *LayerBuilder) *Builder {
	b.layers = append(b.layers, l)
	return b
}

// Group adds a group layer containing the given members.
func (b *Builder) Group(name string, members ...*LayerBuilder) *Builder {
	g := newLayerBuilder(domain.LayerGroup, name)
	b.layers = append(b.layers, g)
	for _, m := range members {
		m.parent = g
		b.layers = append(b.layers, m)
	}
	return b
}

// Build materializes and validates the project. All problems are
// reported together; a project is only returned when it is fully valid.
func (b *Builder) Build() (*domain.Project, error) {
	var errs []error

	if err := b.project.Validate(); err != nil {
		errs = append(errs, err)
	}

	for _, lb := range b.layers {
		layer, layerErrs := lb.build(b)
		errs = append(errs, layerErrs...)
		b.project.Layers = append(b.project.Layers, layer)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b.project, nil
}

// build materializes one layer: defaults under overrides, schema
// validation, keyframes checked against their property descriptors.
func (lb *LayerBuilder) build(b *Builder) (*domain.Layer, []error) {
	var errs []error

	layer := &domain.Layer{
		ID:        b.newID(),
		Name:      lb.name,
		Type:      lb.typ,
		Transform: lb.transform,
		Style:     lb.style,
		Visible:   !lb.hidden,
		Keyframes: []*domain.Keyframe{},
		Props:     b.reg.Defaults(lb.typ),
		EnterAt:   lb.enterAt,
		ExitAt:    lb.exitAt,
	}
	lb.built = layer

	if lb.parent != nil {
		if lb.parent.built == nil {
			errs = append(errs, fmt.Errorf("layer %q: parent group %q must be added before its members", lb.name, lb.parent.name))
		} else {
			layer.ParentID = lb.parent.built.ID
		}
	}

	for k, v := range lb.props {
		layer.Props[k] = v
	}
	if err := b.reg.ValidateProps(lb.typ, layer.Props); err != nil {
		errs = append(errs, fmt.Errorf("layer %q: %w", lb.name, err))
	}

	for _, kf := range lb.keys {
		desc, err := paths.Resolve(b.reg, lb.typ, kf.property)
		if err != nil {
			errs = append(errs, fmt.Errorf("layer %q: %w", lb.name, err))
			continue
		}
		if err := paths.CheckValue(desc, kf.value); err != nil {
			errs = append(errs, fmt.Errorf("layer %q: %w", lb.name, err))
			continue
		}
		if kf.time < 0 || kf.time > b.project.Duration {
			errs = append(errs, fmt.Errorf("layer %q: keyframe time %g outside project duration %g", lb.name, kf.time, b.project.Duration))
			continue
		}

		interp := kf.interp
		if interp == nil {
			def := defaultInterpolation(desc.Family)
			interp = &def
		} else if err := interp.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("layer %q: %w", lb.name, err))
			continue
		}

		layer.Keyframes = append(layer.Keyframes, &domain.Keyframe{
			ID:       b.newID(),
			Time:     kf.time,
			Property: kf.property,
			Value:    kf.value,
			Interp:   *interp,
		})
	}
	layer.SortKeyframes()

	return layer, errs
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
