package animation

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-drift/tween/pkg/easing"
	"github.com/go-drift/tween/pkg/errors"
)

// DefaultDuration is the run length used when WithDuration is not given.
const DefaultDuration = time.Second

// Option configures an Animator.
type Option func(*options)

type options struct {
	values    Values
	endValues Values
	hasEnd    bool
	duration  time.Duration
	curveName string
	curve     easing.Func
	onUnknown func(name string)
}

// WithValues sets the starting values. Defaults to V("x", 0).
func WithValues(v Values) Option {
	return func(o *options) { o.values = v }
}

// WithEndValues sets the target values. Defaults to the starting values.
func WithEndValues(v Values) Option {
	return func(o *options) {
		o.endValues = v
		o.hasEnd = true
	}
}

// WithDuration sets the run length. Zero is allowed and makes every run
// complete on its first Update.
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.duration = d }
}

// WithCurve selects a registered curve by name. Unknown names fall back to
// easing.DefaultName; see WithUnknownCurveHandler.
func WithCurve(name string) Option {
	return func(o *options) {
		o.curveName = name
		o.curve = nil
	}
}

// WithCurveFunc uses fn as the curve, reported under name.
func WithCurveFunc(name string, fn easing.Func) Option {
	return func(o *options) {
		o.curveName = name
		o.curve = fn
	}
}

// WithUnknownCurveHandler sets the function called with the requested name
// when WithCurve names an unknown curve. Without a handler the substitution
// is reported to the errors package handler as a KindCurve error.
func WithUnknownCurveHandler(fn func(name string)) Option {
	return func(o *options) { o.onUnknown = fn }
}

// New creates an idle animator.
//
// It returns a ConfigError if the starting values are empty, the end values
// do not have the same keys as the starting values, or the duration is
// negative. An unknown curve name is not an error.
func New(opts ...Option) (*Animator, error) {
	o := options{
		values:    V("x", 0),
		duration:  DefaultDuration,
		curveName: easing.DefaultName,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.values.Len() == 0 {
		return nil, &errors.ConfigError{Field: "values", Reason: "at least one dimension is required"}
	}
	if !o.hasEnd {
		o.endValues = o.values
	}
	if o.endValues.Len() != o.values.Len() {
		return nil, &errors.ConfigError{
			Field:  "endValues",
			Reason: fmt.Sprintf("has %d dimensions, values has %d", o.endValues.Len(), o.values.Len()),
		}
	}
	keys := o.values.Keys()
	end, missing, ok := o.endValues.project(keys)
	if !ok {
		return nil, &errors.ConfigError{Field: "endValues", Reason: fmt.Sprintf("unknown dimension %q", missing)}
	}
	if o.duration < 0 {
		return nil, &errors.ConfigError{Field: "duration", Reason: "must not be negative"}
	}

	curve, curveName := o.curve, o.curveName
	if curve == nil {
		var found bool
		curve, curveName, found = easing.Resolve(o.curveName)
		if !found {
			reportUnknownCurve(o.curveName, curveName, o.onUnknown)
		}
	}

	start := append([]float64(nil), o.values.vals...)
	return &Animator{
		keys:      keys,
		start:     start,
		end:       end,
		current:   append([]float64(nil), start...),
		duration:  o.duration,
		curve:     curve,
		curveName: curveName,
		status:    StatusIdle,
	}, nil
}

func reportUnknownCurve(requested, fallback string, handler func(string)) {
	if handler != nil {
		handler(requested)
		return
	}
	errors.Report(&errors.TweenError{
		Op:   "animation.New",
		Kind: errors.KindCurve,
		Err:  &errors.UnknownCurveError{Name: requested, Fallback: fallback},
	})
}

// NewFromMap creates an animator from a loosely typed configuration, such
// as one decoded from YAML or JSON. Recognized keys:
//
//	values      mapping of dimension name to number (default {x: 0})
//	endValues   mapping of dimension name to number (default values)
//	durationMs  number of milliseconds (default 1000)
//	curveName   string (default "easeInOutSine")
//
// values and endValues accept any map with string keys and numeric
// values, such as map[string]int or the map[any]any some decoders produce.
// An entry that is not a mapping of numbers is a ConfigError. Unrecognized
// keys are ignored.
func NewFromMap(cfg map[string]any, extra ...Option) (*Animator, error) {
	var opts []Option

	if raw, ok := cfg["values"]; ok {
		v, err := valuesFromAny("values", raw)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithValues(v))
	}
	if raw, ok := cfg["endValues"]; ok {
		v, err := valuesFromAny("endValues", raw)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithEndValues(v))
	}
	if raw, ok := cfg["durationMs"]; ok {
		ms, ok := toFloat(raw)
		if !ok {
			return nil, &errors.ConfigError{Field: "durationMs", Reason: fmt.Sprintf("must be a number, got %T", raw)}
		}
		opts = append(opts, WithDuration(time.Duration(ms*float64(time.Millisecond))))
	}
	if raw, ok := cfg["curveName"]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, &errors.ConfigError{Field: "curveName", Reason: fmt.Sprintf("must be a string, got %T", raw)}
		}
		opts = append(opts, WithCurve(name))
	}

	return New(append(opts, extra...)...)
}

func valuesFromAny(field string, raw any) (Values, error) {
	switch m := raw.(type) {
	case Values:
		return m, nil
	case map[string]float64:
		return FromMap(m), nil
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Map {
		return Values{}, &errors.ConfigError{Field: field, Reason: fmt.Sprintf("must be a mapping, got %T", raw)}
	}
	out := make(map[string]float64, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, ok := stringKey(iter.Key())
		if !ok {
			return Values{}, &errors.ConfigError{Field: field, Reason: fmt.Sprintf("keys must be strings, got %v", iter.Key())}
		}
		f, ok := toFloat(iter.Value().Interface())
		if !ok {
			return Values{}, &errors.ConfigError{Field: field, Reason: fmt.Sprintf("%s must be a number, got %T", k, iter.Value().Interface())}
		}
		out[k] = f
	}
	return FromMap(out), nil
}

// stringKey unwraps interface keys, as produced by decoders that build
// map[any]any.
func stringKey(k reflect.Value) (string, bool) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "", false
		}
		k = k.Elem()
	}
	if k.Kind() != reflect.String {
		return "", false
	}
	return k.String(), true
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}
