package easing

import "math"

// CubicBezier returns a curve shaped like CSS cubic-bezier(x1, y1, x2, y2).
// The control points define the unit curve from (0,0) to (1,1), which is
// then scaled to (t/d, b, c).
func CubicBezier(x1, y1, x2, y2 float64) Func {
	return func(t, b, c, d float64) float64 {
		return c*solveBezier(x1, y1, x2, y2, t/d) + b
	}
}

// CSS keyword presets.
var (
	CSSEase      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	CSSEaseIn    = CubicBezier(0.42, 0.0, 1.0, 1.0)
	CSSEaseOut   = CubicBezier(0.0, 0.0, 0.58, 1.0)
	CSSEaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

func solveBezier(x1, y1, x2, y2, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	u := x
	// Newton-Raphson converges quickly for most values.
	for range 8 {
		dx := sampleBezier(x1, x2, u) - x
		if math.Abs(dx) < 1e-7 {
			return sampleBezier(y1, y2, clampUnit(u))
		}
		slope := bezierSlope(x1, x2, u)
		if math.Abs(slope) < 1e-7 {
			break
		}
		u -= dx / slope
	}

	// Bisection keeps the answer inside [0,1] when Newton stalls.
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for range 20 {
		dx := sampleBezier(x1, x2, u) - x
		if math.Abs(dx) < 1e-7 {
			break
		}
		if dx > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}

	return sampleBezier(y1, y2, u)
}

func sampleBezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
