// Package sketch runs a headless animation demo: a set of animators moved
// back and forth by a repeating timer, printed as text frames.
package sketch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/tween/cmd/tween/internal/config"
	"github.com/go-drift/tween/pkg/animation"
	"github.com/go-drift/tween/pkg/easing"
	"github.com/go-drift/tween/pkg/errors"
	"github.com/go-drift/tween/pkg/timer"
)

// resetLead is how much earlier than the next timer tick a reset finishes.
const resetLead = 150 * time.Millisecond

// Track is one animator and the two endpoints it travels between.
type Track struct {
	Name     string
	Animator *animation.Animator
	A, B     animation.Values
}

// Option configures a Sketch.
type Option func(*Sketch)

// WithOutput sets where frames are printed. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(s *Sketch) { s.out = w }
}

// WithTimerOptions passes options to the retargeting timer, such as a fake
// scheduler in tests.
func WithTimerOptions(opts ...timer.Option) Option {
	return func(s *Sketch) { s.timerOpts = append(s.timerOpts, opts...) }
}

// WithRand sets the source used by Scatter.
func WithRand(r *rand.Rand) Option {
	return func(s *Sketch) { s.rng = r }
}

// Sketch owns the animators and the timer that retargets them.
type Sketch struct {
	cfg       *config.Resolved
	tracks    []*Track
	group     animation.Group
	timer     *timer.Timer
	timerOpts []timer.Option
	out       io.Writer
	rng       *rand.Rand

	// retargetMu serializes Reverse, Scatter and Reset. Reverse runs on
	// the timer goroutine, the others on the frame loop.
	retargetMu sync.Mutex

	mu     sync.Mutex
	frames int
}

// New builds the animators described by cfg. Configured animators are used
// as they are; otherwise one animator per curve is laid out on its own row.
func New(cfg *config.Resolved, opts ...Option) (*Sketch, error) {
	s := &Sketch{cfg: cfg, out: io.Discard}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	var err error
	if len(cfg.Animators) > 0 {
		s.tracks, err = configuredTracks(cfg.Animators)
	} else {
		s.tracks, err = layoutTracks(cfg)
	}
	if err != nil {
		return nil, err
	}
	for _, t := range s.tracks {
		s.group.Add(t.Animator)
	}

	s.timer = timer.New(s.Reverse, cfg.Interval, s.timerOpts...)
	return s, nil
}

func configuredTracks(entries []map[string]any) ([]*Track, error) {
	tracks := make([]*Track, 0, len(entries))
	for i, entry := range entries {
		a, err := animation.NewFromMap(entry)
		if err != nil {
			return nil, &errors.TweenError{
				Op:   "sketch.New",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("animators[%d]: %w", i, err),
			}
		}
		name, _ := entry["name"].(string)
		if name == "" {
			name = a.CurveName()
		}
		tracks = append(tracks, &Track{
			Name:     name,
			Animator: a,
			A:        a.StartValues(),
			B:        a.EndValues(),
		})
	}
	return tracks, nil
}

func layoutTracks(cfg *config.Resolved) ([]*Track, error) {
	names := cfg.Curves
	if len(names) == 0 {
		names = easing.Names()
	}

	step := 0.0
	if len(names) > 1 {
		step = (cfg.Bottom - cfg.Top) / float64(len(names)-1)
	}

	tracks := make([]*Track, 0, len(names))
	for i, name := range names {
		y := cfg.Top + float64(i)*step
		from := animation.V("x", cfg.From).With("y", y)
		to := animation.V("x", cfg.To).With("y", y)
		a, err := animation.New(
			animation.WithValues(from),
			animation.WithEndValues(to),
			animation.WithDuration(cfg.Duration),
			animation.WithCurve(name),
		)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, &Track{Name: name, Animator: a, A: from, B: to})
	}
	return tracks, nil
}

// Tracks returns the sketch's tracks.
func (s *Sketch) Tracks() []*Track {
	return append([]*Track(nil), s.tracks...)
}

// Animators returns the sketch's animators.
func (s *Sketch) Animators() []*animation.Animator {
	return s.group.Animators()
}

// Timer returns the retargeting timer.
func (s *Sketch) Timer() *timer.Timer {
	return s.timer
}

// Start starts every animator and, unless disabled, the timer.
func (s *Sketch) Start() {
	s.group.Start()
	if s.cfg.Timer {
		s.timer.Start()
	}
}

// Stop stops the timer and every animator.
func (s *Sketch) Stop() {
	s.timer.Stop()
	s.group.Stop()
}

// Reverse sends every animator from where it is back toward the endpoint
// it is not currently heading for.
func (s *Sketch) Reverse() {
	s.retargetMu.Lock()
	defer s.retargetMu.Unlock()
	for _, t := range s.tracks {
		target := t.B
		if t.Animator.EndValues().Equal(t.B) {
			target = t.A
		}
		s.retarget(t, target, s.cfg.Retarget)
	}
}

// Scatter sends every animator toward a random point between its
// endpoints.
func (s *Sketch) Scatter() {
	s.retargetMu.Lock()
	defer s.retargetMu.Unlock()
	for _, t := range s.tracks {
		target := animation.Values{}
		for _, k := range t.A.Keys() {
			a, _ := t.A.Get(k)
			b, _ := t.B.Get(k)
			target = target.With(k, a+s.rng.Float64()*(b-a))
		}
		s.retarget(t, target, s.cfg.Retarget)
	}
}

// Reset sends every animator back to its first endpoint, timed to arrive
// shortly before the timer next fires.
func (s *Sketch) Reset() {
	s.retargetMu.Lock()
	defer s.retargetMu.Unlock()
	d := max(s.timer.RemainingTime()-resetLead, 0)
	for _, t := range s.tracks {
		s.retarget(t, t.A, d)
	}
}

// ToggleTimer starts the timer if it is stopped and stops it otherwise.
// It reports whether the timer is now running.
func (s *Sketch) ToggleTimer() bool {
	if s.timer.IsRunning() {
		s.timer.Stop()
		return false
	}
	s.timer.Start()
	return true
}

// retarget sends t's animator from its current values to target. A
// target whose keys do not match the animator is reported and skipped.
func (s *Sketch) retarget(t *Track, target animation.Values, d time.Duration) {
	a := t.Animator
	if err := a.Retarget(a.CurrentValues(), target, d); err != nil {
		errors.Report(&errors.TweenError{
			Op:   "sketch.retarget",
			Kind: errors.KindDimension,
			Err:  fmt.Errorf("track %s: %w", t.Name, err),
		})
	}
}

// Step updates every animator once.
func (s *Sketch) Step() {
	s.group.Step()
	s.mu.Lock()
	s.frames++
	s.mu.Unlock()
}

// Frames returns the number of frames stepped.
func (s *Sketch) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Render prints the current frame.
func (s *Sketch) Render() {
	var sb strings.Builder
	fmt.Fprintf(&sb, "frame %d\n", s.Frames())
	for _, t := range s.tracks {
		fmt.Fprintf(&sb, "  %-18s %-9s %s\n", t.Name, t.Animator.Status(), t.Animator.CurrentValues())
	}
	io.WriteString(s.out, sb.String())
}

// Command handles a one-letter command: s toggles the timer, t scatters,
// r resets. It reports whether the command was recognized.
func (s *Sketch) Command(cmd string) bool {
	switch strings.TrimSpace(cmd) {
	case "s":
		if s.ToggleTimer() {
			fmt.Fprintln(s.out, "timer started")
		} else {
			fmt.Fprintln(s.out, "timer stopped")
		}
	case "t":
		s.Scatter()
	case "r":
		s.Reset()
	default:
		return false
	}
	return true
}

// RunOptions controls Run.
type RunOptions struct {
	// Frames stops the loop after this many frames. Zero runs until ctx
	// is cancelled.
	Frames int
	// Every prints one frame in Every. Zero prints only the last frame.
	Every int
	// Input, if set, is read line by line for commands.
	Input io.Reader
}

// Run starts the sketch and steps it at the configured frame rate until
// ctx is done or opts.Frames frames have run.
func (s *Sketch) Run(ctx context.Context, opts RunOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	commands := make(chan string)
	if opts.Input != nil {
		// Reads block without regard to ctx, so the reader stays outside
		// the group and is abandoned on exit.
		go func() {
			sc := bufio.NewScanner(opts.Input)
			for sc.Scan() {
				select {
				case commands <- sc.Text():
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	s.Start()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		ticker := time.NewTicker(time.Second / time.Duration(s.cfg.FPS))
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case line := <-commands:
				if !s.Command(line) {
					fmt.Fprintf(s.out, "unknown command %q (s, t, r)\n", line)
				}
			case <-ticker.C:
				s.Step()
				n := s.Frames()
				if opts.Every > 0 && n%opts.Every == 0 {
					s.Render()
				}
				if opts.Frames > 0 && n >= opts.Frames {
					if opts.Every <= 0 || n%opts.Every != 0 {
						s.Render()
					}
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		s.Stop()
		return nil
	})

	return g.Wait()
}
