package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/tween/pkg/easing"
	tweenerrors "github.com/go-drift/tween/pkg/errors"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func captureReports(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := tweenerrors.SetHandler(&tweenerrors.LogHandler{Out: &buf})
	t.Cleanup(func() { tweenerrors.SetHandler(prev) })
	return &buf
}

func TestHelpAndVersion(t *testing.T) {
	out := capture(t)
	if err := execute(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"list", "sample", "plot", "run"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help missing %q", name)
		}
	}

	out.Reset()
	if err := execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "tween version "+Version) {
		t.Errorf("version output = %q", out.String())
	}

	out.Reset()
	if err := execute([]string{"sample", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "tween sample <curve>") {
		t.Errorf("command help = %q", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	capture(t)
	if err := execute([]string{"bogus"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestList(t *testing.T) {
	out := capture(t)
	if err := execute([]string{"list"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(easing.Names()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(easing.Names()))
	}
	if lines[0] != "easeLinear" {
		t.Errorf("first = %q, want easeLinear", lines[0])
	}
	if err := execute([]string{"list", "extra"}); err == nil {
		t.Error("expected error for extra argument")
	}
}

func TestSample(t *testing.T) {
	out := capture(t)
	if err := execute([]string{"sample", "easeLinear", "--steps", "4", "--from", "0", "--to", "100"}); err != nil {
		t.Fatal(err)
	}
	want := "# easeLinear\n" +
		"0.0000\t0.0000\n" +
		"0.2500\t25.0000\n" +
		"0.5000\t50.0000\n" +
		"0.7500\t75.0000\n" +
		"1.0000\t100.0000\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestSampleUnknownCurve(t *testing.T) {
	out := capture(t)
	reports := captureReports(t)

	if err := execute([]string{"sample", "easeWobble", "--steps", "2"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "# "+easing.DefaultName) {
		t.Errorf("output = %q, want fallback curve", out.String())
	}
	if !strings.Contains(reports.String(), "easeWobble") {
		t.Errorf("report = %q, want the unknown name", reports.String())
	}
}

func TestSampleBezierAndCSS(t *testing.T) {
	out := capture(t)
	for _, curve := range []string{"bezier:0,0,1,1", "ease-in-out"} {
		out.Reset()
		if err := execute([]string{"sample", curve, "--steps", "2"}); err != nil {
			t.Fatalf("%s: %v", curve, err)
		}
		if !strings.Contains(out.String(), "0.5000\t0.5000") {
			t.Errorf("%s output = %q, want symmetric midpoint", curve, out.String())
		}
	}
}

func TestSampleErrors(t *testing.T) {
	capture(t)
	tests := [][]string{
		{"sample"},
		{"sample", "easeLinear", "--steps"},
		{"sample", "easeLinear", "--steps", "0"},
		{"sample", "easeLinear", "--from", "abc"},
		{"sample", "easeLinear", "easeInQuad"},
		{"sample", "bezier:1,2"},
		{"sample", "bezier:2,0,0.5,1"},
		{"sample", "bezier:a,0,0.5,1"},
	}
	for _, args := range tests {
		if err := execute(args); err == nil {
			t.Errorf("execute(%q) should fail", args)
		}
	}
}

func TestPlot(t *testing.T) {
	out := capture(t)
	path := filepath.Join(t.TempDir(), "sheet.png")

	if err := execute([]string{"plot", "-o", path, "--columns", "2", "easeLinear", "easeOutBounce", "ease"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Wrote 3 curves") {
		t.Errorf("output = %q", out.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("size = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}
}

func TestPlotErrors(t *testing.T) {
	capture(t)
	dir := t.TempDir()
	tests := [][]string{
		{"plot", "-o", filepath.Join(dir, "x.png"), "easeWobble"},
		{"plot", "--columns", "0"},
		{"plot", "-o"},
		{"plot", "-o", filepath.Join(dir, "missing", "x.png"), "easeLinear"},
	}
	for _, args := range tests {
		if err := execute(args); err == nil {
			t.Errorf("execute(%q) should fail", args)
		}
	}
}

func TestRun(t *testing.T) {
	out := capture(t)
	path := filepath.Join(t.TempDir(), "tween.yaml")
	config := "name: headless\nfps: 1000\nlayout:\n  curves: [easeLinear, easeInQuad]\n"
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute([]string{"run", "--config", path, "--frames", "4", "--every", "2"}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"Sketch headless: 2 animators at 1000 fps",
		"Curves: easeLinear, easeInQuad",
		"frame 2",
		"frame 4",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunErrors(t *testing.T) {
	capture(t)
	tests := [][]string{
		{"run", "--frames", "-1"},
		{"run", "--bogus"},
		{"run", "--config", filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for _, args := range tests {
		if err := execute(args); err == nil {
			t.Errorf("execute(%q) should fail", args)
		}
	}
}
