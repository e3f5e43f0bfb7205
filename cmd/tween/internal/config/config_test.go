package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bouncy")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Name != "bouncy" {
		t.Errorf("Name = %q, want bouncy", res.Name)
	}
	if res.FPS != 60 {
		t.Errorf("FPS = %d, want 60", res.FPS)
	}
	if res.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", res.Interval)
	}
	if res.Retarget != 1500*time.Millisecond {
		t.Errorf("Retarget = %v, want 1.5s", res.Retarget)
	}
	if res.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", res.Duration)
	}
	if !res.Timer {
		t.Error("Timer should be enabled by default")
	}
	if res.From != 150 || res.To != 550 || res.Top != 50 || res.Bottom != 550 {
		t.Errorf("layout = %v %v %v %v", res.From, res.To, res.Top, res.Bottom)
	}
	if len(res.Animators) != 0 {
		t.Errorf("Animators = %v, want none", res.Animators)
	}
}

func TestResolveNameFromModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/demos/springs/v2\n\ngo 1.24\n")

	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Name != "springs" {
		t.Errorf("Name = %q, want springs", res.Name)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
version: v1.2.0
name: demo
fps: 30
timer:
  intervalMs: 500
  durationMs: 250
layout:
  from: 0
  to: 100
  durationMs: 750
  curves: [easeLinear, easeOutBounce]
animators:
  - values: {x: 0, y: 5}
    endValues: {x: 10, y: 5}
    durationMs: 100
    curveName: easeInQuad
`)

	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Name != "demo" || res.Version != "v1.2.0" || res.FPS != 30 {
		t.Errorf("got name=%q version=%q fps=%d", res.Name, res.Version, res.FPS)
	}
	if res.Interval != 500*time.Millisecond || res.Retarget != 250*time.Millisecond {
		t.Errorf("timer = %v / %v", res.Interval, res.Retarget)
	}
	if res.Duration != 750*time.Millisecond {
		t.Errorf("Duration = %v, want 750ms", res.Duration)
	}
	if res.From != 0 || res.To != 100 {
		t.Errorf("From/To = %v/%v, want 0/100", res.From, res.To)
	}
	if len(res.Curves) != 2 || res.Curves[1] != "easeOutBounce" {
		t.Errorf("Curves = %v", res.Curves)
	}
	if len(res.Animators) != 1 {
		t.Fatalf("Animators = %v", res.Animators)
	}
	values, ok := res.Animators[0]["values"].(map[string]any)
	if !ok {
		t.Fatalf("values decoded as %T", res.Animators[0]["values"])
	}
	if values["y"] != 5 {
		t.Errorf("values.y = %v (%T)", values["y"], values["y"])
	}
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "other.yaml", "name: explicit\n")

	res, err := Resolve(t.TempDir(), path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Name != "explicit" {
		t.Errorf("Name = %q", res.Name)
	}

	if _, err := Resolve(dir, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "fps: [", "failed to parse"},
		{"bad version", "version: banana\n", "semantic version"},
		{"future version", "version: v2.0.0\n", "newer than supported"},
		{"negative fps", "fps: -1\n", "fps"},
		{"huge fps", "fps: 5000\n", "fps"},
		{"negative interval", "timer:\n  intervalMs: -5\n", "intervalMs"},
		{"negative duration", "timer:\n  durationMs: -5\n", "timer.durationMs"},
		{"negative layout duration", "layout:\n  durationMs: -5\n", "layout.durationMs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)
			_, err := Resolve(dir, "")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestVersionWithoutPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "version: 1.0.0\n")
	if _, err := Resolve(dir, ""); err != nil {
		t.Errorf("Resolve: %v", err)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/x\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(nested)

	got, err := FindProjectRoot()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.EvalSymlinks(root)
	if resolved, _ := filepath.EvalSymlinks(got); resolved != want {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}
