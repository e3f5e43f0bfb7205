// Package easing provides the Penner-style easing curves used by animators.
//
// Every curve is a [Func] taking (t, b, c, d): t is the elapsed time, b the
// start value, c the value span (end - start) and d the total duration. A
// curve returns b at t = 0 and b + c at t = d.
//
// Animators normalize time before calling a curve, passing progress in
// [0, 1] as t and 1 as d, so curve math never depends on the real animation
// duration:
//
//	x := easing.OutQuad(progress, start, end-start, 1)
//
// Curves are looked up by name with [Lookup] or [Resolve]. [Names] lists the
// registry in a stable order.
package easing

import "math"

// Func is an easing curve.
type Func func(t, b, c, d float64) float64

// Linear interpolates at constant speed.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// InQuad accelerates from zero velocity.
func InQuad(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

// OutQuad decelerates to zero velocity.
func OutQuad(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

// InCubic accelerates from zero velocity.
func InCubic(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

// OutCubic decelerates to zero velocity.
func OutCubic(t, b, c, d float64) float64 {
	t /= d
	t--
	return c*(t*t*t+1) + b
}

// InOutCubic accelerates until halfway, then decelerates.
func InOutCubic(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

// InQuartic accelerates from zero velocity.
func InQuartic(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

// OutQuartic decelerates to zero velocity.
func OutQuartic(t, b, c, d float64) float64 {
	t /= d
	t--
	return -c*(t*t*t*t-1) + b
}

// InOutQuartic accelerates until halfway, then decelerates.
func InOutQuartic(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

// InQuintic accelerates from zero velocity.
func InQuintic(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

// OutQuintic decelerates to zero velocity.
func OutQuintic(t, b, c, d float64) float64 {
	t /= d
	t--
	return c*(t*t*t*t*t+1) + b
}

// InOutQuintic accelerates until halfway, then decelerates.
func InOutQuintic(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

// InSine follows the first quarter of a cosine wave.
func InSine(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

// OutSine follows the first quarter of a sine wave.
func OutSine(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

// InOutSine follows half a cosine wave. It is the default curve.
func InOutSine(t, b, c, d float64) float64 {
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}

// OutBounce bounces against the end value, each bounce a parabola smaller
// than the last.
func OutBounce(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+0.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+0.9375) + b
	default:
		t -= 2.625 / 2.75
		return c*(7.5625*t*t+0.984375) + b
	}
}

// InBounce is OutBounce played backwards.
func InBounce(t, b, c, d float64) float64 {
	return c - OutBounce(d-t, 0, c, d) + b
}

// InOutBounce bounces in for the first half and out for the second.
func InOutBounce(t, b, c, d float64) float64 {
	if t < d/2 {
		return InBounce(t*2, 0, c, d)*0.5 + b
	}
	return OutBounce(t*2-d, 0, c, d)*0.5 + c*0.5 + b
}

// Normalized adapts f to a unit curve mapping progress in [0, 1] to eased
// progress, for code that works with progress-only curves.
func Normalized(f Func) func(float64) float64 {
	return func(p float64) float64 {
		return f(p, 0, 1, 1)
	}
}
