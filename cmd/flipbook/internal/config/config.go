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
	"gopkg.in/yaml.v3"

	"github.com/go-drift/flipbook/pkg/animation"
	"github.com/go-drift/flipbook/pkg/geometry"
)

// FileName is the scene file looked up when no explicit path is given.
const FileName = "flipbook.yaml"

// Canvas defaults used when the scene leaves them unset.
const (
	DefaultCanvasWidth  = 640
	DefaultCanvasHeight = 360
)

// Config represents a flipbook.yaml scene.
type Config struct {
	Scene   SceneConfig  `yaml:"scene"`
	Canvas  CanvasConfig `yaml:"canvas"`
	Initial *RectConfig  `yaml:"initial,omitempty"`
	Output  OutputConfig `yaml:"output"`
	Steps   []Step       `yaml:"steps"`
}

// SceneConfig contains scene metadata.
type SceneConfig struct {
	Name string `yaml:"name,omitempty"`
}

// CanvasConfig is the pixel size frames are rendered at.
type CanvasConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// OutputConfig controls the render command.
type OutputConfig struct {
	Dir   string `yaml:"dir,omitempty"`
	GIF   bool   `yaml:"gif,omitempty"`
	Scale int    `yaml:"scale,omitempty"`
}

// RectConfig is a rectangle in scene coordinates.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts c to a geometry.Rect.
func (c RectConfig) Rect() geometry.Rect {
	return geometry.RectFromXYWH(c.X, c.Y, c.Width, c.Height)
}

// AnimationConfig describes one queue entry.
type AnimationConfig struct {
	From     *RectConfig       `yaml:"from,omitempty"`
	To       *RectConfig       `yaml:"to,omitempty"`
	Duration time.Duration     `yaml:"duration,omitempty"`
	Easing   *animation.Easing `yaml:"easing,omitempty"`
	FPS      uint64            `yaml:"fps,omitempty"`
}

// Builder converts c to an animation builder, applying engine defaults for
// unset fields.
func (c AnimationConfig) Builder() (animation.Builder, error) {
	if c.To == nil {
		return animation.Builder{}, fmt.Errorf("animation requires a \"to\" rect")
	}
	b := animation.NewBuilder().AnimateTo(c.To.Rect())
	if c.From != nil {
		b = b.AnimateFrom(c.From.Rect())
	}
	if c.Duration != 0 {
		b = b.WithDuration(c.Duration)
	}
	if c.Easing != nil {
		b = b.WithEasing(*c.Easing)
	}
	if c.FPS != 0 {
		b = b.WithFPSCap(c.FPS)
	}
	if err := b.Validate(); err != nil {
		return animation.Builder{}, err
	}
	return b, nil
}

// StepKind names a scene command.
type StepKind string

// Scene commands.
const (
	StepQueue   StepKind = "queue"
	StepPlayNow StepKind = "play_now"
	StepDelay   StepKind = "delay"
	StepPause   StepKind = "pause"
	StepResume  StepKind = "resume"
	StepDropAll StepKind = "drop_all"
	StepSetRect StepKind = "set_rect"
	StepWait    StepKind = "wait"
)

// Step is one scene command. Bare commands are written as scalars
// ("- pause"); commands with arguments as single-key mappings
// ("- delay: 250ms", "- queue: {to: ...}").
type Step struct {
	Kind      StepKind
	Animation AnimationConfig
	Duration  time.Duration
	Rect      RectConfig
}

// UnmarshalYAML decodes either form of a step.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		s.Kind = StepKind(value.Value)
		switch s.Kind {
		case StepPause, StepResume, StepDropAll:
			return nil
		default:
			return fmt.Errorf("line %d: step %q needs an argument", value.Line, value.Value)
		}

	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: step must have exactly one command", value.Line)
		}
		key, arg := value.Content[0], value.Content[1]
		s.Kind = StepKind(key.Value)
		switch s.Kind {
		case StepQueue, StepPlayNow:
			return arg.Decode(&s.Animation)
		case StepDelay, StepWait:
			return arg.Decode(&s.Duration)
		case StepSetRect:
			return arg.Decode(&s.Rect)
		case StepPause, StepResume, StepDropAll:
			return nil
		default:
			return fmt.Errorf("line %d: unknown step %q", key.Line, key.Value)
		}

	default:
		return fmt.Errorf("line %d: step must be a command name or mapping", value.Line)
	}
}

// MarshalYAML encodes s in its shortest form.
func (s Step) MarshalYAML() (any, error) {
	switch s.Kind {
	case StepQueue, StepPlayNow:
		return map[string]AnimationConfig{string(s.Kind): s.Animation}, nil
	case StepDelay, StepWait:
		return map[string]string{string(s.Kind): s.Duration.String()}, nil
	case StepSetRect:
		return map[string]RectConfig{string(s.Kind): s.Rect}, nil
	default:
		return string(s.Kind), nil
	}
}

func (s Step) String() string {
	switch s.Kind {
	case StepQueue, StepPlayNow:
		if b, err := s.Animation.Builder(); err == nil {
			return fmt.Sprintf("%s %v", s.Kind, b)
		}
	case StepDelay, StepWait:
		return fmt.Sprintf("%s %v", s.Kind, s.Duration)
	case StepSetRect:
		return fmt.Sprintf("%s %v", s.Kind, s.Rect.Rect())
	}
	return string(s.Kind)
}

// Resolved contains resolved scene values.
type Resolved struct {
	Root       string
	Path       string
	ModulePath string
	SceneName  string
	Width      int
	Height     int
	Initial    *geometry.Rect
	OutputDir  string
	GIF        bool
	Scale      int
	Steps      []Step
}

// LoadOptional reads flipbook.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Load reads the scene file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return &cfg, nil
}

// Resolve loads the scene (flipbook.yaml in dir, or path if non-empty)
// and resolves defaults. The scene name defaults to the last element of
// the enclosing module path, or the directory name outside a module.
func Resolve(dir, path string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		path = filepath.Join(dir, FileName)
		cfg, err = LoadOptional(dir)
	} else {
		cfg, err = Load(path)
	}
	if err != nil {
		return nil, err
	}

	modPath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Scene.Name)
	if name == "" {
		name = defaultSceneName(modPath, dir)
	}

	r := &Resolved{
		Root:       dir,
		Path:       path,
		ModulePath: modPath,
		SceneName:  name,
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		OutputDir:  strings.TrimSpace(cfg.Output.Dir),
		GIF:        cfg.Output.GIF,
		Scale:      cfg.Output.Scale,
		Steps:      cfg.Steps,
	}
	if r.Width == 0 {
		r.Width = DefaultCanvasWidth
	}
	if r.Height == 0 {
		r.Height = DefaultCanvasHeight
	}
	if r.Scale == 0 {
		r.Scale = 1
	}
	if cfg.Initial != nil {
		rect := cfg.Initial.Rect()
		r.Initial = &rect
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resolved) validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("canvas size must be positive (got %dx%d)", r.Width, r.Height)
	}
	if r.Scale < 1 {
		return fmt.Errorf("output.scale must be at least 1 (got %d)", r.Scale)
	}
	for i, step := range r.Steps {
		switch step.Kind {
		case StepQueue, StepPlayNow:
			if _, err := step.Animation.Builder(); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Kind, err)
			}
		case StepDelay, StepWait:
			if step.Duration < 0 {
				return fmt.Errorf("step %d (%s): negative duration %v", i+1, step.Kind, step.Duration)
			}
		}
	}
	return nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultSceneName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	base = sanitizeName(base)
	if base == "" {
		return "scene"
	}
	return base
}

func sanitizeName(name string) string {
	var out []rune
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	return string(out)
}
