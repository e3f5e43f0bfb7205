package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/tween/pkg/easing"
	"github.com/go-drift/tween/pkg/errors"
)

// cssCurves are the CSS timing function keywords.
var cssCurves = map[string]easing.Func{
	"ease":        easing.CSSEase,
	"ease-in":     easing.CSSEaseIn,
	"ease-out":    easing.CSSEaseOut,
	"ease-in-out": easing.CSSEaseInOut,
}

// resolveCurve looks up a curve by registry name, CSS keyword, or
// "bezier:x1,y1,x2,y2". Unknown names resolve to the default curve with
// found set to false; malformed bezier specs are an error.
func resolveCurve(name string) (fn easing.Func, resolved string, found bool, err error) {
	if spec, ok := strings.CutPrefix(name, "bezier:"); ok {
		fn, err := parseBezier(spec)
		if err != nil {
			return nil, "", false, err
		}
		return fn, name, true, nil
	}
	if fn, ok := cssCurves[name]; ok {
		return fn, name, true, nil
	}
	fn, resolved, found = easing.Resolve(name)
	return fn, resolved, found, nil
}

func parseBezier(spec string) (easing.Func, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("bezier needs 4 control values, got %d", len(parts))
	}
	var p [4]float64
	for i, s := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bezier value %q: %w", s, err)
		}
		p[i] = v
	}
	if p[0] < 0 || p[0] > 1 || p[2] < 0 || p[2] > 1 {
		return nil, fmt.Errorf("bezier x values must be within [0, 1]")
	}
	return easing.CubicBezier(p[0], p[1], p[2], p[3]), nil
}

// warnUnknownCurve reports a substituted curve through the error handler.
func warnUnknownCurve(op, name, fallback string) {
	errors.Report(&errors.TweenError{
		Op:   op,
		Kind: errors.KindCurve,
		Err:  &errors.UnknownCurveError{Name: name, Fallback: fallback},
	})
}
