package glide

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Config is the engine configuration and page description, usually loaded
// from YAML with LoadConfig.
type Config struct {
	Viewport      ViewportConfig `yaml:"viewport"`
	Breakpoint    float64        `yaml:"breakpoint"`
	ReducedMotion bool           `yaml:"reduced_motion"`
	Debug         bool           `yaml:"debug"`
	// ScreenshotDir receives Engine.Screenshot captures.
	ScreenshotDir string `yaml:"screenshot_dir"`

	Scroll ScrollSettings `yaml:"scroll"`
	Intro  IntroConfig    `yaml:"intro"`
	Render RenderSettings `yaml:"render"`

	Sections []SectionConfig `yaml:"sections"`
}

// ViewportConfig is the initial window size.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScrollSettings configures the smooth scroller.
type ScrollSettings struct {
	Duration        float64  `yaml:"duration"`
	Easing          string   `yaml:"easing"`
	Inputs          []string `yaml:"inputs"`
	WheelMultiplier float64  `yaml:"wheel_multiplier"`
	TouchMultiplier float64  `yaml:"touch_multiplier"`
}

// IntroConfig configures the intro sequence that holds the scroll lock.
type IntroConfig struct {
	Enabled bool `yaml:"enabled"`
	// Timeout force-completes the intro if the scene never becomes ready.
	Timeout time.Duration `yaml:"timeout"`
	// Hold is how long the intro timeline plays once the scene is ready.
	Hold time.Duration `yaml:"hold"`
}

// RenderSettings configures the render loop and its scene.
type RenderSettings struct {
	Enabled          bool    `yaml:"enabled"`
	PointerSmoothing float64 `yaml:"pointer_smoothing"`
	ScrollSmoothing  float64 `yaml:"scroll_smoothing"`
	// Shader is a path to Kage source; empty uses DefaultSceneShader.
	Shader string `yaml:"shader"`
}

// SectionConfig describes one animated section of the page.
type SectionConfig struct {
	ID       string          `yaml:"id"`
	Height   float64         `yaml:"height"`
	Color    [4]float64      `yaml:"color"`
	Triggers []TriggerConfig `yaml:"triggers"`
}

// TriggerConfig describes one trigger on a section.
type TriggerConfig struct {
	ID         string  `yaml:"id"`
	Mode       string  `yaml:"mode"`
	Start      string  `yaml:"start"`
	End        string  `yaml:"end"`
	Pin        bool    `yaml:"pin"`
	EnterAt    float64 `yaml:"enter_at"`
	LeaveAt    float64 `yaml:"leave_at"`
	Hysteresis float64 `yaml:"hysteresis"`
	// Target is "style" (the section box, default) or "scene" (render
	// loop uniforms and scroll input).
	Target   string          `yaml:"target"`
	Timeline []SegmentConfig `yaml:"timeline"`
}

// SegmentConfig is the YAML form of a Segment.
type SegmentConfig struct {
	To       map[string]float64 `yaml:"to"`
	From     map[string]float64 `yaml:"from"`
	Start    float64            `yaml:"start"`
	Duration float64            `yaml:"duration"`
	Ease     string             `yaml:"ease"`
}

// Trigger target names.
const (
	TargetStyle = "style"
	TargetScene = "scene"
)

// DefaultScreenshotDir is used when Config.ScreenshotDir is empty.
const DefaultScreenshotDir = "screenshots"

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Viewport:      ViewportConfig{Width: 1280, Height: 720},
		Breakpoint:    DefaultBreakpoint,
		ScreenshotDir: DefaultScreenshotDir,
		Scroll: ScrollSettings{
			Duration:        1.2,
			Easing:          "expoOut",
			Inputs:          []string{"wheel"},
			WheelMultiplier: 1,
			TouchMultiplier: 2,
		},
		Intro: IntroConfig{
			Enabled: true,
			Timeout: 3 * time.Second,
			Hold:    800 * time.Millisecond,
		},
		Render: RenderSettings{
			Enabled:          true,
			PointerSmoothing: 0.05,
			ScrollSmoothing:  0.1,
		},
	}
}

// LoadConfig reads and validates a YAML config file. Fields the file omits
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every enumerated value and position string.
func (c *Config) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport: size %dx%d must be positive", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Breakpoint <= 0 {
		c.Breakpoint = DefaultBreakpoint
	}
	if _, err := EaseByName(c.Scroll.Easing); err != nil {
		errs = append(errs, fmt.Errorf("scroll: %w", err))
	}
	if _, err := parseInputs(c.Scroll.Inputs); err != nil {
		errs = append(errs, fmt.Errorf("scroll: %w", err))
	}
	if c.Intro.Enabled && c.Intro.Timeout <= 0 {
		errs = append(errs, errors.New("intro: timeout must be positive"))
	}

	seen := map[string]bool{}
	for i, s := range c.Sections {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("sections[%d]: missing id", i))
		} else if seen[s.ID] {
			errs = append(errs, fmt.Errorf("sections[%d]: duplicate id %q", i, s.ID))
		}
		seen[s.ID] = true
		if s.Height <= 0 {
			errs = append(errs, fmt.Errorf("section %q: height must be positive", s.ID))
		}
		for j, t := range s.Triggers {
			if err := t.validate(); err != nil {
				errs = append(errs, fmt.Errorf("section %q trigger %d: %w", s.ID, j, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (t TriggerConfig) validate() error {
	if _, err := parseMode(t.Mode); err != nil {
		return err
	}
	if _, err := ParsePosition(t.Start, TopBottom); err != nil {
		return err
	}
	if _, err := ParsePosition(t.End, BottomTop); err != nil {
		return err
	}
	switch t.Target {
	case "", TargetStyle, TargetScene:
	default:
		return fmt.Errorf("unknown target %q", t.Target)
	}
	for i, seg := range t.Timeline {
		if _, err := EaseByName(seg.Ease); err != nil {
			return fmt.Errorf("timeline[%d]: %w", i, err)
		}
		if seg.Duration < 0 {
			return fmt.Errorf("timeline[%d]: negative duration", i)
		}
	}
	return nil
}

// ScrollConfig converts the settings for SmoothScroller.Start.
func (s ScrollSettings) ScrollConfig() ScrollConfig {
	fn, _ := EaseByName(s.Easing)
	inputs, _ := parseInputs(s.Inputs)
	return ScrollConfig{
		Duration:        s.Duration,
		Easing:          fn,
		Inputs:          inputs,
		WheelMultiplier: s.WheelMultiplier,
		TouchMultiplier: s.TouchMultiplier,
	}
}

func parseInputs(names []string) (InputMode, error) {
	var m InputMode
	for _, n := range names {
		switch n {
		case "wheel":
			m |= InputWheel
		case "touch":
			m |= InputTouch
		default:
			return 0, fmt.Errorf("unknown input %q", n)
		}
	}
	return m, nil
}

func parseMode(s string) (TriggerMode, error) {
	switch s {
	case "", "scrub":
		return ModeScrub, nil
	case "toggle":
		return ModeToggle, nil
	default:
		return 0, fmt.Errorf("unknown trigger mode %q", s)
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"expoOut":    ExpoOut,
	"inOutExpo":  ease.InOutExpo,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
}

// EaseByName returns the easing function registered under name. The empty
// name is linear.
func EaseByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}
