package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/go-drift/tween/cmd/tween/internal/config"
	"github.com/go-drift/tween/cmd/tween/internal/sketch"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run the animation sketch headlessly",
		Long: `Run the animation sketch without a window.

Each animator moves between two endpoints. A repeating timer reverses all
of them every interval. The sketch is described by tween.yaml in the
project root; without one, every curve gets its own row.

Flags:
  --config FILE   Config file (default tween.yaml in the project root)
  --frames N      Stop after N frames (default: run until interrupted)
  --every N       Print one frame in N (default fps/4)
  --interactive   Read commands from stdin: s toggles the timer,
                  t scatters targets, r resets`,
		Usage: "tween run [--config tween.yaml] [--frames N] [--every N] [--interactive]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	var (
		configPath  string
		frames      int
		every       = -1
		interactive bool
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			v, err := flagValue(args, &i)
			if err != nil {
				return err
			}
			configPath = v
		case "--frames", "--every":
			flag := args[i]
			v, err := flagValue(args, &i)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("%s must be a non-negative integer (got %q)", flag, v)
			}
			if flag == "--frames" {
				frames = n
			} else {
				every = n
			}
		case "--interactive":
			interactive = true
		default:
			return fmt.Errorf("unexpected argument %q", args[i])
		}
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root, configPath)
	if err != nil {
		return err
	}
	if every < 0 {
		every = max(cfg.FPS/4, 1)
	}

	s, err := sketch.New(cfg, sketch.WithOutput(stdout))
	if err != nil {
		return err
	}

	names := make([]string, 0, len(s.Tracks()))
	for _, t := range s.Tracks() {
		names = append(names, t.Name)
	}
	fmt.Fprintf(stdout, "Sketch %s: %d animators at %d fps, reversing every %s\n",
		cfg.Name, len(names), cfg.FPS, cfg.Interval)
	fmt.Fprintf(stdout, "Curves: %s\n", strings.Join(names, ", "))

	var input io.Reader
	if interactive {
		input = os.Stdin
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return s.Run(ctx, sketch.RunOptions{Frames: frames, Every: every, Input: input})
}
