package timeline

import (
	"math"

	"github.com/easel-ai/easel/pkg/domain"
)

// Ease applies the interpolation's easing curve to normalized progress p.
// Unknown strategies fall back to linear so a stale document still evaluates.
func Ease(in domain.Interpolation, p float64) float64 {
	switch in.Strategy {
	case domain.StrategyEaseIn:
		return p * p
	case domain.StrategyEaseOut:
		return 1 - (1-p)*(1-p)
	case domain.StrategyEaseInOut:
		if p < 0.5 {
			return 2 * p * p
		}
		return 1 - math.Pow(-2*p+2, 2)/2
	case domain.StrategyCubicBezier:
		if len(in.ControlPoints) == 4 {
			return cubicBezier(in.ControlPoints[0], in.ControlPoints[1], in.ControlPoints[2], in.ControlPoints[3], p)
		}
		return p
	default:
		return p
	}
}

// cubicBezier evaluates a CSS-style timing curve with control points
// (x1,y1) and (x2,y2): solve the bezier for parameter t where x(t) == p,
// then return y(t).
func cubicBezier(x1, y1, x2, y2, p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}

	// Polynomial coefficients for the x axis: x(t) = ((ax*t + bx)*t + cx)*t
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleDX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	// Newton-Raphson, then bisection when the derivative is too flat.
	t := p
	for i := 0; i < 8; i++ {
		x := sampleX(t) - p
		if math.Abs(x) < 1e-7 {
			return sampleY(y1, y2, t)
		}
		d := sampleDX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= x / d
	}

	lo, hi := 0.0, 1.0
	t = p
	for hi-lo > 1e-7 {
		if sampleX(t) < p {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return sampleY(y1, y2, t)
}

func sampleY(y1, y2, t float64) float64 {
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by
	return ((ay*t+by)*t + cy) * t
}
