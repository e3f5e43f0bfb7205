package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-drift/tween/cmd/tween/internal/plot"
	"github.com/go-drift/tween/pkg/easing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "plot",
		Short: "Chart curves into a PNG",
		Long: `Draw one labelled chart per curve into a PNG contact sheet.

With no curves, every registered curve is plotted. Curves are named as for
"tween sample"; unknown names are an error here.

Flags:
  -o, --output FILE   Output path (default curves.png)
  --columns N         Charts per row (default 4)`,
		Usage: "tween plot [-o file.png] [--columns N] [curves...]",
		Run:   runPlot,
	})
}

func runPlot(args []string) error {
	output := "curves.png"
	opts := plot.DefaultOptions()
	var names []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			v, err := flagValue(args, &i)
			if err != nil {
				return err
			}
			output = v
		case "--columns":
			v, err := flagValue(args, &i)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fmt.Errorf("--columns must be a positive integer (got %q)", v)
			}
			opts.Columns = n
		default:
			names = append(names, args[i])
		}
	}
	if len(names) == 0 {
		names = easing.Names()
	}

	curves := make([]plot.Curve, 0, len(names))
	for _, name := range names {
		fn, _, found, err := resolveCurve(name)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("unknown curve %q", name)
		}
		curves = append(curves, plot.Curve{Name: name, Func: fn})
	}

	img, err := plot.Render(curves, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := plot.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d curves to %s\n", len(curves), output)
	return nil
}
