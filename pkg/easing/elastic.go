package easing

import "math"

// ElasticParams shape the elastic curves. Zero fields are unset and take
// their defaults.
type ElasticParams struct {
	// Amplitude of the overshoot. Values below |c| are raised to c.
	Amplitude float64
	// Period of the oscillation, in the curve's time units. Defaults to
	// d*0.3, or d*0.45 for InOut.
	Period float64
}

// ElasticAmplitude applies the amplitude rule shared by the elastic curves
// for a value span c and a requested amplitude a (0 means unset). It returns
// the amplitude used and the phase shift s for period p. The returned
// amplitude always has magnitude >= |c|.
func ElasticAmplitude(c, a, p float64) (amplitude, shift float64) {
	if a == 0 || a < math.Abs(c) {
		return c, p / 4
	}
	return a, p / (2 * math.Pi) * math.Asin(c/a)
}

// ElasticIn returns an elastic ease-in curve using params.
func ElasticIn(params ElasticParams) Func {
	return func(t, b, c, d float64) float64 {
		if t == 0 {
			return b
		}
		t /= d
		if t == 1 {
			return b + c
		}
		p := params.Period
		if p == 0 {
			p = d * 0.3
		}
		a, s := ElasticAmplitude(c, params.Amplitude, p)
		t--
		return -(a * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
}

// ElasticOut returns an elastic ease-out curve using params.
func ElasticOut(params ElasticParams) Func {
	return func(t, b, c, d float64) float64 {
		if t == 0 {
			return b
		}
		t /= d
		if t == 1 {
			return b + c
		}
		p := params.Period
		if p == 0 {
			p = d * 0.3
		}
		a, s := ElasticAmplitude(c, params.Amplitude, p)
		return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
	}
}

// ElasticInOut returns an elastic ease-in-out curve using params.
func ElasticInOut(params ElasticParams) Func {
	return func(t, b, c, d float64) float64 {
		if t == 0 {
			return b
		}
		t /= d / 2
		if t == 2 {
			return b + c
		}
		p := params.Period
		if p == 0 {
			p = d * (0.3 * 1.5)
		}
		a, s := ElasticAmplitude(c, params.Amplitude, p)
		if t < 1 {
			t--
			return -0.5*(a*math.Pow(2, 10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
		}
		t--
		return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*0.5 + c + b
	}
}

// The registry entries use default parameters.
var (
	InElastic    = ElasticIn(ElasticParams{})
	OutElastic   = ElasticOut(ElasticParams{})
	InOutElastic = ElasticInOut(ElasticParams{})
)
