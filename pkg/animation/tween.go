package animation

import "github.com/go-drift/tween/pkg/easing"

// Tween maps progress in [0, 1] onto a range of any type, shaped by an
// easing curve.
//
// Use [TweenFloat64] for plain numbers, or supply a Lerp function for
// custom types.
type Tween[T any] struct {
	// Begin is the value at progress 0.
	Begin T
	// End is the value at progress 1.
	End T
	// Curve shapes progress before interpolation. Nil means linear.
	Curve easing.Func
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and eased progress. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the value at progress p. Progress outside [0, 1] is
// clamped.
func (tw *Tween[T]) Evaluate(p float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	p = min(max(p, 0), 1)
	if tw.Curve != nil {
		p = tw.Curve(p, 0, 1, 1)
	}
	return tw.Lerp(tw.Begin, tw.End, p)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpValues interpolates each dimension of a toward b. Dimensions missing
// from b keep a's value.
func LerpValues(a, b Values, t float64) Values {
	out := valuesOf(a.keys, a.vals)
	for i, k := range out.keys {
		if end, ok := b.Get(k); ok {
			out.vals[i] = LerpFloat64(out.vals[i], end, t)
		}
	}
	return out
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64, curve easing.Func) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Curve: curve,
		Lerp:  LerpFloat64,
	}
}

// TweenValues creates a tween over whole value sets.
func TweenValues(begin, end Values, curve easing.Func) *Tween[Values] {
	return &Tween[Values]{
		Begin: begin,
		End:   end,
		Curve: curve,
		Lerp:  LerpValues,
	}
}
