package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/tween/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "sample",
		Short: "Print values along a curve",
		Long: `Print evenly spaced samples of an easing curve.

The curve is a registered name (see "tween list"), a CSS keyword (ease,
ease-in, ease-out, ease-in-out), or a cubic bezier written as
bezier:x1,y1,x2,y2. Unknown names fall back to the default curve with a
warning.

Flags:
  --steps N    Number of intervals (default 10)
  --from B     Value at progress 0 (default 0)
  --to E       Value at progress 1 (default 1)`,
		Usage: "tween sample <curve> [--steps N] [--from B] [--to E]",
		Run:   runSample,
	})
}

func runSample(args []string) error {
	var (
		curve    string
		steps    = 10
		from, to = 0.0, 1.0
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--steps":
			v, err := flagValue(args, &i)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fmt.Errorf("--steps must be a positive integer (got %q)", v)
			}
			steps = n
		case "--from", "--to":
			flag := args[i]
			v, err := flagValue(args, &i)
			if err != nil {
				return err
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s must be a number (got %q)", flag, v)
			}
			if flag == "--from" {
				from = f
			} else {
				to = f
			}
		default:
			if curve != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			curve = args[i]
		}
	}
	if curve == "" {
		return fmt.Errorf("sample requires a curve name")
	}

	fn, resolved, found, err := resolveCurve(curve)
	if err != nil {
		return err
	}
	if !found {
		warnUnknownCurve("sample", curve, resolved)
	}

	tw := animation.TweenFloat64(from, to, fn)
	fmt.Fprintf(stdout, "# %s\n", resolved)
	for i := range steps + 1 {
		p := float64(i) / float64(steps)
		fmt.Fprintf(stdout, "%.4f\t%s\n", p, strconv.FormatFloat(tw.Evaluate(p), 'f', 4, 64))
	}
	return nil
}
