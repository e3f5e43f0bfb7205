// Package config loads the optional tween.yaml sketch description.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the project root.
const FileName = "tween.yaml"

// SupportedMajor is the newest config schema major version understood.
const SupportedMajor = "v1"

// Config represents tween.yaml.
type Config struct {
	Version string       `yaml:"version,omitempty"`
	Name    string       `yaml:"name,omitempty"`
	FPS     int          `yaml:"fps,omitempty"`
	Timer   TimerConfig  `yaml:"timer"`
	Layout  LayoutConfig `yaml:"layout"`

	// Animators are passed to animation.NewFromMap as they are. When empty,
	// the sketch builds one animator per curve from Layout.
	Animators []map[string]any `yaml:"animators,omitempty"`
}

// TimerConfig controls the retargeting timer.
type TimerConfig struct {
	IntervalMs int  `yaml:"intervalMs,omitempty"`
	DurationMs int  `yaml:"durationMs,omitempty"`
	Disabled   bool `yaml:"disabled,omitempty"`
}

// LayoutConfig places generated animators: each moves x between From and
// To on its own row, rows spread evenly from Top to Bottom. DurationMs is
// the length of the first run; later runs use the timer's DurationMs.
type LayoutConfig struct {
	From       *float64 `yaml:"from,omitempty"`
	To         *float64 `yaml:"to,omitempty"`
	Top        *float64 `yaml:"top,omitempty"`
	Bottom     *float64 `yaml:"bottom,omitempty"`
	DurationMs int      `yaml:"durationMs,omitempty"`
	Curves     []string `yaml:"curves,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root      string
	Path      string
	Name      string
	Version   string
	FPS       int
	Interval  time.Duration
	Retarget  time.Duration
	Timer     bool
	From, To  float64
	Top       float64
	Bottom    float64
	Duration  time.Duration
	Curves    []string
	Animators []map[string]any
}

// Load reads the config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// LoadOptional reads tween.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a config document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads the config (path, or tween.yaml in dir when path is empty)
// and fills in defaults.
func Resolve(dir, path string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		cfg, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}
	return ResolveConfig(dir, path, cfg)
}

// ResolveConfig fills in defaults for an already decoded config.
func ResolveConfig(dir, path string, cfg *Config) (*Resolved, error) {
	version := strings.TrimSpace(cfg.Version)
	if version != "" {
		if err := validateVersion(version); err != nil {
			return nil, err
		}
	}

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = defaultName(dir)
	}

	fps := cfg.FPS
	if fps == 0 {
		fps = 60
	}
	if fps < 0 || fps > 1000 {
		return nil, fmt.Errorf("fps must be between 1 and 1000 (got %d)", fps)
	}

	interval := msOrDefault(cfg.Timer.IntervalMs, 2000)
	retarget := msOrDefault(cfg.Timer.DurationMs, 1500)
	initial := msOrDefault(cfg.Layout.DurationMs, 1000)
	if interval <= 0 {
		return nil, fmt.Errorf("timer.intervalMs must be positive (got %d)", cfg.Timer.IntervalMs)
	}
	if retarget < 0 {
		return nil, fmt.Errorf("timer.durationMs must not be negative (got %d)", cfg.Timer.DurationMs)
	}
	if initial < 0 {
		return nil, fmt.Errorf("layout.durationMs must not be negative (got %d)", cfg.Layout.DurationMs)
	}

	res := &Resolved{
		Root:      dir,
		Path:      path,
		Name:      name,
		Version:   version,
		FPS:       fps,
		Interval:  interval,
		Retarget:  retarget,
		Timer:     !cfg.Timer.Disabled,
		From:      floatOr(cfg.Layout.From, 150),
		To:        floatOr(cfg.Layout.To, 550),
		Top:       floatOr(cfg.Layout.Top, 50),
		Bottom:    floatOr(cfg.Layout.Bottom, 550),
		Duration:  initial,
		Curves:    cfg.Layout.Curves,
		Animators: cfg.Animators,
	}
	return res, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
// It returns the current directory if there is none, since a sketch does
// not need to live in a module.
func FindProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

func validateVersion(v string) error {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version must be a semantic version (got %q)", v)
	}
	if semver.Compare(semver.Major(v), SupportedMajor) > 0 {
		return fmt.Errorf("config version %s is newer than supported %s", v, SupportedMajor)
	}
	return nil
}

// defaultName derives a sketch name from the module path in dir/go.mod,
// falling back to the directory name.
func defaultName(dir string) string {
	base := filepath.Base(dir)
	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if path := modfile.ModulePath(data); path != "" {
			prefix, _, ok := module.SplitPathVersion(path)
			if ok {
				parts := strings.Split(prefix, "/")
				base = parts[len(parts)-1]
			}
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "sketch"
	}
	return base
}

func msOrDefault(ms, def int) time.Duration {
	if ms == 0 {
		ms = def
	}
	return time.Duration(ms) * time.Millisecond
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
