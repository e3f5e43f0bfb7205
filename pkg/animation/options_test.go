package animation

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/tween/pkg/easing"
	tweenerrors "github.com/go-drift/tween/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if !a.StartValues().Equal(V("x", 0)) || !a.EndValues().Equal(V("x", 0)) {
		t.Errorf("default values = %v -> %v", a.StartValues(), a.EndValues())
	}
	if a.Duration() != time.Second {
		t.Errorf("default duration = %v", a.Duration())
	}
	if a.CurveName() != "easeInOutSine" {
		t.Errorf("default curve = %q", a.CurveName())
	}
	if a.IsRunning() || a.Status() != StatusIdle {
		t.Error("new animator should be idle")
	}
}

func TestNewEndValuesDefaultToValues(t *testing.T) {
	a, err := New(WithValues(V("w", 20).With("h", 30)))
	if err != nil {
		t.Fatal(err)
	}
	if !a.EndValues().Equal(V("w", 20).With("h", 30)) {
		t.Errorf("end values = %v", a.EndValues())
	}
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		field string
	}{
		{"empty values", []Option{WithValues(Values{})}, "values"},
		{"end count", []Option{WithValues(V("x", 0)), WithEndValues(V("x", 1).With("y", 1))}, "endValues"},
		{"end keys", []Option{WithValues(V("x", 0)), WithEndValues(V("y", 1))}, "endValues"},
		{"negative duration", []Option{WithDuration(-time.Millisecond)}, "duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if !errors.Is(err, tweenerrors.ErrConfig) {
				t.Fatalf("expected config error, got %v", err)
			}
			var ce *tweenerrors.ConfigError
			if errors.As(err, &ce) && ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestUnknownCurveFallsBack(t *testing.T) {
	var requested string
	a, err := New(
		WithCurve("easeWobble"),
		WithUnknownCurveHandler(func(name string) { requested = name }),
	)
	if err != nil {
		t.Fatalf("unknown curve must not be an error: %v", err)
	}
	if requested != "easeWobble" {
		t.Errorf("handler got %q", requested)
	}
	if a.CurveName() != easing.DefaultName {
		t.Errorf("CurveName = %q, want %q", a.CurveName(), easing.DefaultName)
	}
}

func TestUnknownCurveReportsWithoutHandler(t *testing.T) {
	var reported *tweenerrors.TweenError
	prev := tweenerrors.SetHandler(&recordingHandler{onError: func(e *tweenerrors.TweenError) { reported = e }})
	defer tweenerrors.SetHandler(prev)

	if _, err := New(WithCurve("nope")); err != nil {
		t.Fatal(err)
	}
	if reported == nil || reported.Kind != tweenerrors.KindCurve {
		t.Fatalf("expected a curve report, got %+v", reported)
	}
	var uc *tweenerrors.UnknownCurveError
	if !errors.As(reported, &uc) || uc.Name != "nope" || uc.Fallback != easing.DefaultName {
		t.Errorf("unexpected report %+v", uc)
	}
}

func TestWithCurveFunc(t *testing.T) {
	clk := useStubClock(t)
	a := mustNew(t,
		WithEndValues(V("x", 100)),
		WithCurveFunc("step", func(t, b, c, d float64) float64 {
			if t < d {
				return b
			}
			return b + c
		}),
	)
	if a.CurveName() != "step" {
		t.Errorf("CurveName = %q", a.CurveName())
	}
	a.Start()
	clk.advance(900 * time.Millisecond)
	a.Update()
	if x := get(t, a.CurrentValues(), "x"); x != 0 {
		t.Errorf("x = %v, want 0", x)
	}
}

func TestNewFromMap(t *testing.T) {
	a, err := NewFromMap(map[string]any{
		"values":     map[string]any{"x": 150, "y": 42.5},
		"endValues":  map[string]any{"x": 550, "y": 42.5},
		"durationMs": 1500,
		"curveName":  "easeOutBounce",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !a.StartValues().Equal(V("x", 150).With("y", 42.5)) {
		t.Errorf("start = %v", a.StartValues())
	}
	if !a.EndValues().Equal(V("x", 550).With("y", 42.5)) {
		t.Errorf("end = %v", a.EndValues())
	}
	if a.Duration() != 1500*time.Millisecond {
		t.Errorf("duration = %v", a.Duration())
	}
	if a.CurveName() != "easeOutBounce" {
		t.Errorf("curve = %q", a.CurveName())
	}
}

func TestNewFromMapAcceptsAnyNumericMapping(t *testing.T) {
	type coords map[string]float32

	tests := []struct {
		name   string
		values any
		want   Values
	}{
		{"map[string]int", map[string]int{"x": 1, "y": 2}, V("x", 1).With("y", 2)},
		{"map[any]any", map[any]any{"x": 1.5, "y": int8(-3)}, V("x", 1.5).With("y", -3)},
		{"map[string]uint8", map[string]uint8{"w": 200}, V("w", 200)},
		{"map[string]int16", map[string]int16{"h": -7}, V("h", -7)},
		{"named map type", coords{"x": 0.5}, V("x", 0.5)},
		{"Values", V("x", 4), V("x", 4)},
		{"map[string]float64", map[string]float64{"x": 9}, V("x", 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewFromMap(map[string]any{"values": tt.values, "endValues": tt.values})
			if err != nil {
				t.Fatalf("NewFromMap: %v", err)
			}
			if got := a.StartValues(); !got.Equal(tt.want) {
				t.Errorf("start = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewFromMapSmallIntegerKinds(t *testing.T) {
	for _, d := range []any{int8(20), int16(20), uint8(20), uint16(20), uint(20), float32(20)} {
		a, err := NewFromMap(map[string]any{"durationMs": d})
		if err != nil {
			t.Fatalf("durationMs %T: %v", d, err)
		}
		if a.Duration() != 20*time.Millisecond {
			t.Errorf("durationMs %T: duration = %v, want 20ms", d, a.Duration())
		}
	}
}

func TestNewFromMapZeroDuration(t *testing.T) {
	a, err := NewFromMap(map[string]any{"durationMs": 0})
	if err != nil {
		t.Fatal(err)
	}
	if a.Duration() != 0 {
		t.Errorf("explicit zero duration became %v", a.Duration())
	}
}

func TestNewFromMapRejectsNonMappings(t *testing.T) {
	tests := []struct {
		name  string
		cfg   map[string]any
		field string
	}{
		{"values list", map[string]any{"values": []any{1, 2}}, "values"},
		{"values number", map[string]any{"values": 3}, "values"},
		{"endValues string", map[string]any{"endValues": "far"}, "endValues"},
		{"non-numeric entry", map[string]any{"values": map[string]any{"x": "left"}}, "values"},
		{"non-string key", map[string]any{"values": map[int]float64{1: 2}}, "values"},
		{"non-string any key", map[string]any{"endValues": map[any]any{1: 2.0}}, "endValues"},
		{"nil any key", map[string]any{"values": map[any]any{nil: 2.0}}, "values"},
		{"duration string", map[string]any{"durationMs": "soon"}, "durationMs"},
		{"curve number", map[string]any{"curveName": 4}, "curveName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromMap(tt.cfg)
			var ce *tweenerrors.ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

type recordingHandler struct {
	onError func(*tweenerrors.TweenError)
}

func (h *recordingHandler) HandleError(err *tweenerrors.TweenError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *recordingHandler) HandlePanic(*tweenerrors.PanicError) {}
