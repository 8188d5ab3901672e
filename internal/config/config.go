package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/philipparndt/goslider/internal/logging"
	"github.com/philipparndt/goslider/pkg/slider"
	"gopkg.in/yaml.v3"
)

// Config is the file configuration of a single circular control
type Config struct {
	Slider  SliderConfig  `yaml:"slider"`
	Layout  LayoutConfig  `yaml:"layout"`
	Logging LoggingConfig `yaml:"logging"`
}

// SliderConfig selects the control kind and its values
type SliderConfig struct {
	Kind         string  `yaml:"kind"`
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
	Rounds       int     `yaml:"rounds"`
	StopAtBounds bool    `yaml:"stop_at_bounds"`
	// Distance links start and end; -1 leaves them independent
	Distance     float64 `yaml:"distance"`
	StartValue   float64 `yaml:"start_value"`
	EndValue     float64 `yaml:"end_value"`
	ShowEndThumb bool    `yaml:"show_end_thumb"`
}

// LayoutConfig holds the view bounds and visual sizes
type LayoutConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	LineWidth      float64 `yaml:"line_width"`
	ThumbRadius    float64 `yaml:"thumb_radius"`
	ThumbLineWidth float64 `yaml:"thumb_line_width"`
	ThumbOffset    float64 `yaml:"thumb_offset"`
}

// LoggingConfig holds the log level
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration of a default single value control
func DefaultConfig() Config {
	return Config{
		Slider: SliderConfig{
			Kind:     string(slider.KindSingle),
			Min:      0,
			Max:      1,
			Rounds:   1,
			Distance: slider.Unconstrained,
			EndValue: 0.5,
		},
		Layout: LayoutConfig{
			Width:          200,
			Height:         200,
			LineWidth:      slider.DefaultLineWidth,
			ThumbRadius:    slider.DefaultThumbRadius,
			ThumbLineWidth: slider.DefaultThumbLineWidth,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfigFile reads and parses a YAML config file on top of the defaults.
// Unknown fields and trailing documents are rejected.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config path is empty")
	}
	b, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML on top of the defaults
func Parse(b []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}

	// only whitespace and comments may follow the document
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config yaml: unexpected trailing document")
	}

	return cfg, nil
}

// FlagOverrides holds command line values applied on top of a loaded
// config. A nil pointer leaves the config value untouched.
type FlagOverrides struct {
	Kind         *string
	Min          *float64
	Max          *float64
	Rounds       *int
	StopAtBounds *bool
	Distance     *float64
	StartValue   *float64
	EndValue     *float64

	Width  *float64
	Height *float64

	LogLevel *string
}

// Apply merges the overrides into cfg
func (o FlagOverrides) Apply(cfg *Config) {
	if cfg == nil {
		return
	}

	if o.Kind != nil {
		cfg.Slider.Kind = *o.Kind
	}
	if o.Min != nil {
		cfg.Slider.Min = *o.Min
	}
	if o.Max != nil {
		cfg.Slider.Max = *o.Max
	}
	if o.Rounds != nil {
		cfg.Slider.Rounds = *o.Rounds
	}
	if o.StopAtBounds != nil {
		cfg.Slider.StopAtBounds = *o.StopAtBounds
	}
	if o.Distance != nil {
		cfg.Slider.Distance = *o.Distance
	}
	if o.StartValue != nil {
		cfg.Slider.StartValue = *o.StartValue
	}
	if o.EndValue != nil {
		cfg.Slider.EndValue = *o.EndValue
	}

	if o.Width != nil {
		cfg.Layout.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Layout.Height = *o.Height
	}

	if o.LogLevel != nil {
		cfg.Logging.Level = *o.LogLevel
	}
}

// Validate checks config invariants and returns a user-friendly error.
// It is called after defaults, file and overrides are applied.
func (c *Config) Validate() error {
	kind, err := slider.ParseKind(c.Slider.Kind)
	if err != nil {
		return fmt.Errorf("slider.kind: %w", err)
	}

	s := c.Slider
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return errors.New("slider.min and slider.max must be numbers")
	}
	if s.Max < s.Min {
		return errors.New("slider.max must be >= slider.min")
	}
	if s.Rounds < 1 {
		return errors.New("slider.rounds must be >= 1")
	}
	if math.IsNaN(s.Distance) || (s.Distance < 0 && s.Distance != slider.Unconstrained) {
		return fmt.Errorf("slider.distance must be >= 0 or %v", slider.Unconstrained)
	}
	if s.Distance > s.Max-s.Min {
		return errors.New("slider.distance must be <= slider.max - slider.min")
	}
	if kind == slider.KindMidPoint && s.Distance <= 0 {
		return errors.New("slider.distance must be > 0 for the midpoint kind")
	}

	l := c.Layout
	if l.Width <= 0 || l.Height <= 0 {
		return errors.New("layout.width and layout.height must be > 0")
	}
	if l.LineWidth < 0 || l.ThumbRadius < 0 || l.ThumbLineWidth < 0 {
		return errors.New("layout.line_width, layout.thumb_radius and layout.thumb_line_width must be >= 0")
	}

	if c.Logging.Level == "" {
		return errors.New("logging.level must not be empty")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	return nil
}

// ToLayout converts the layout section
func (c *Config) ToLayout() slider.Layout {
	return slider.Layout{
		Width:          c.Layout.Width,
		Height:         c.Layout.Height,
		LineWidth:      c.Layout.LineWidth,
		ThumbRadius:    c.Layout.ThumbRadius,
		ThumbLineWidth: c.Layout.ThumbLineWidth,
		ThumbOffset:    c.Layout.ThumbOffset,
	}
}

// Build creates the control described by a validated config.
// The progress kind is display-only: use BuildDrawable or BuildProgress.
func (c *Config) Build() (slider.Tracker, error) {
	d, err := c.BuildDrawable()
	if err != nil {
		return nil, err
	}
	t, ok := d.(slider.Tracker)
	if !ok {
		return nil, fmt.Errorf("slider kind %s does not track touches", c.Slider.Kind)
	}
	return t, nil
}

// BuildProgress creates the progress view described by a validated config
func (c *Config) BuildProgress() (*slider.ProgressView, error) {
	p := slider.NewProgressView(c.ToLayout())
	if err := c.applySpan(p); err != nil {
		return nil, err
	}
	p.ShowEndThumb = c.Slider.ShowEndThumb
	return p, nil
}

// BuildDrawable creates any kind of control described by a validated config
func (c *Config) BuildDrawable() (slider.Drawable, error) {
	kind, err := slider.ParseKind(c.Slider.Kind)
	if err != nil {
		return nil, err
	}
	s := c.Slider

	switch kind {
	case slider.KindSingle:
		t := slider.NewTrack(c.ToLayout())
		if err := c.applyCore(t); err != nil {
			return nil, err
		}
		t.SetValue(s.EndValue)
		return t, nil

	case slider.KindRange:
		r := slider.NewRangeTrack(c.ToLayout())
		if err := c.applySpan(r); err != nil {
			return nil, err
		}
		return r, nil

	case slider.KindMidPoint:
		m := slider.NewMidPointTrack(c.ToLayout())
		// the current distance must fit the new bounds and the new
		// distance the current bounds, whichever is applied first
		if s.Distance <= m.Maximum()-m.Minimum() {
			if err := m.SetDistance(s.Distance); err != nil {
				return nil, fmt.Errorf("slider distance: %w", err)
			}
		}
		if err := c.applySpan(m); err != nil {
			return nil, err
		}
		return m, nil

	default:
		return c.BuildProgress()
	}
}

type coreControl interface {
	SetBounds(minimum, maximum float64) error
	SetRounds(rounds int) error
	SetStopAtBounds(stop bool)
}

type spanControl interface {
	coreControl
	SetDistance(d float64) error
	SetStartPointValue(v float64) bool
	SetEndPointValue(v float64) bool
}

func (c *Config) applyCore(ctl coreControl) error {
	if err := ctl.SetBounds(c.Slider.Min, c.Slider.Max); err != nil {
		return fmt.Errorf("slider bounds: %w", err)
	}
	if err := ctl.SetRounds(c.Slider.Rounds); err != nil {
		return fmt.Errorf("slider rounds: %w", err)
	}
	ctl.SetStopAtBounds(c.Slider.StopAtBounds)
	return nil
}

func (c *Config) applySpan(ctl spanControl) error {
	if err := c.applyCore(ctl); err != nil {
		return err
	}
	if err := ctl.SetDistance(c.Slider.Distance); err != nil {
		return fmt.Errorf("slider distance: %w", err)
	}
	ctl.SetStartPointValue(c.Slider.StartValue)
	if c.Slider.Distance <= 0 {
		ctl.SetEndPointValue(c.Slider.EndValue)
	}
	return nil
}

// ExpandPath expands a leading "~" in a path using $HOME
func ExpandPath(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	if len(p) >= 2 && (p[1] == '/' || p[1] == '\\') {
		return filepath.Join(home, p[2:])
	}
	return p
}
