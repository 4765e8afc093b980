package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easel-ai/easel/pkg/domain"
)

func interp(s domain.InterpStrategy, cp ...float64) domain.Interpolation {
	return domain.Interpolation{Family: domain.FamilyContinuous, Strategy: s, ControlPoints: cp}
}

func TestEaseCurves(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Interpolation
		p    float64
		want float64
	}{
		{"linear mid", interp(domain.StrategyLinear), 0.5, 0.5},
		{"ease-in mid", interp(domain.StrategyEaseIn), 0.5, 0.25},
		{"ease-in late", interp(domain.StrategyEaseIn), 0.9, 0.81},
		{"ease-out mid", interp(domain.StrategyEaseOut), 0.5, 0.75},
		{"ease-out early", interp(domain.StrategyEaseOut), 0.1, 0.19},
		{"ease-in-out quarter", interp(domain.StrategyEaseInOut), 0.25, 0.125},
		{"ease-in-out mid", interp(domain.StrategyEaseInOut), 0.5, 0.5},
		{"ease-in-out three-quarter", interp(domain.StrategyEaseInOut), 0.75, 0.875},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ease(tt.in, tt.p), 1e-9)
		})
	}
}

func TestEaseEndpoints(t *testing.T) {
	strategies := []domain.Interpolation{
		interp(domain.StrategyLinear),
		interp(domain.StrategyEaseIn),
		interp(domain.StrategyEaseOut),
		interp(domain.StrategyEaseInOut),
		interp(domain.StrategyCubicBezier, 0.4, 0, 0.2, 1),
	}
	for _, in := range strategies {
		assert.InDelta(t, 0.0, Ease(in, 0), 1e-6, string(in.Strategy))
		assert.InDelta(t, 1.0, Ease(in, 1), 1e-6, string(in.Strategy))
	}
}

func TestCubicBezierIdentity(t *testing.T) {
	// Control points on the diagonal reproduce linear timing.
	in := interp(domain.StrategyCubicBezier, 0.25, 0.25, 0.75, 0.75)
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		assert.InDelta(t, p, Ease(in, p), 1e-4)
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	in := interp(domain.StrategyCubicBezier, 0.42, 0, 0.58, 1)
	prev := -1.0
	for p := 0.0; p <= 1.0; p += 0.05 {
		e := Ease(in, p)
		assert.GreaterOrEqual(t, e, prev)
		assert.GreaterOrEqual(t, e, -1e-9)
		assert.LessOrEqual(t, e, 1+1e-9)
		prev = e
	}
}

func TestCubicBezierMalformedFallsBackToLinear(t *testing.T) {
	in := interp(domain.StrategyCubicBezier, 0.4, 0)
	assert.Equal(t, 0.3, Ease(in, 0.3))
}

func TestUnknownStrategyFallsBackToLinear(t *testing.T) {
	in := domain.Interpolation{Family: domain.FamilyContinuous, Strategy: "bounce"}
	assert.Equal(t, 0.7, Ease(in, 0.7))
}
