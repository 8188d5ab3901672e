package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goslider/pkg/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slider.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	tr, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, slider.KindSingle, tr.Kind())
	assert.Equal(t, 0.5, tr.Values().End)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
slider:
  kind: range
  min: 5
  max: 25
  start_value: 5
  end_value: 10
layout:
  width: 300
logging:
  level: debug
`)

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "range", cfg.Slider.Kind)
	assert.Equal(t, 300.0, cfg.Layout.Width)
	assert.Equal(t, 200.0, cfg.Layout.Height, "defaults are kept")
	assert.Equal(t, slider.Unconstrained, cfg.Slider.Distance)

	tr, err := cfg.Build()
	require.NoError(t, err)
	v := tr.Values()
	assert.Equal(t, 5.0, v.Start)
	assert.Equal(t, 10.0, v.End)
}

func TestLoadConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "slider:\n  maximum: 3\n"},
		{"trailing document", "slider:\n  max: 3\n---\nslider:\n  max: 4\n"},
		{"not yaml", "slider: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFile(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfigFile("")
	assert.Error(t, err)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad kind", func(c *Config) { c.Slider.Kind = "knob" }, "slider.kind"},
		{"inverted bounds", func(c *Config) { c.Slider.Min = 2 }, "slider.max must be >= slider.min"},
		{"no rounds", func(c *Config) { c.Slider.Rounds = 0 }, "slider.rounds"},
		{"negative distance", func(c *Config) { c.Slider.Distance = -2 }, "slider.distance must be >= 0"},
		{"distance too large", func(c *Config) { c.Slider.Distance = 2 }, "slider.distance must be <="},
		{"midpoint without distance", func(c *Config) { c.Slider.Kind = "midpoint" }, "midpoint"},
		{"empty layout", func(c *Config) { c.Layout.Width = 0 }, "layout.width"},
		{"negative line", func(c *Config) { c.Layout.LineWidth = -1 }, "layout.line_width"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFlagOverrides(t *testing.T) {
	cfg := DefaultConfig()
	kind := "midpoint"
	maximum := 10.0
	distance := 1.0
	start := 4.5
	level := "trace"

	FlagOverrides{
		Kind:       &kind,
		Max:        &maximum,
		Distance:   &distance,
		StartValue: &start,
		LogLevel:   &level,
	}.Apply(&cfg)
	FlagOverrides{}.Apply(nil)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.0, cfg.Slider.Min, "unset overrides keep the value")

	tr, err := cfg.Build()
	require.NoError(t, err)
	v := tr.Values()
	assert.Equal(t, 4.5, v.Start)
	assert.Equal(t, 5.5, v.End)
	assert.Equal(t, 5.0, v.Mid)
}

func TestBuildMidPointNarrowRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Slider.Kind = "midpoint"
	cfg.Slider.Max = 0.1
	cfg.Slider.Distance = 0.05
	require.NoError(t, cfg.Validate())

	tr, err := cfg.Build()
	require.NoError(t, err)
	m := tr.(*slider.MidPointTrack)
	assert.Equal(t, 0.05, m.Distance())
	assert.Equal(t, 0.1, m.Maximum())
}

func TestBuildProgress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Slider.Kind = "progress"
	cfg.Slider.Max = 100
	cfg.Slider.EndValue = 40
	cfg.Slider.ShowEndThumb = true
	require.NoError(t, cfg.Validate())

	_, err := cfg.Build()
	assert.Error(t, err, "progress does not track")

	p, err := cfg.BuildProgress()
	require.NoError(t, err)
	assert.Equal(t, 40.0, p.EndPointValue())
	assert.True(t, p.ShowEndThumb)

	d, err := cfg.BuildDrawable()
	require.NoError(t, err)
	assert.Equal(t, slider.KindProgress, d.Kind())
}

func TestBuildRangeWithDistance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Slider.Kind = "range"
	cfg.Slider.Max = 10
	cfg.Slider.Distance = 2
	cfg.Slider.StartValue = 3
	cfg.Slider.EndValue = 9
	cfg.Slider.StopAtBounds = true
	cfg.Slider.Rounds = 2

	tr, err := cfg.Build()
	require.NoError(t, err)
	r := tr.(*slider.RangeTrack)
	assert.Equal(t, 3.0, r.StartPointValue())
	assert.Equal(t, 5.0, r.EndPointValue(), "linked end ignores end_value")
	assert.True(t, r.StopAtBounds())
	assert.Equal(t, 2, r.Rounds())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/etc/x", ExpandPath("/etc/x"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "a.yaml"), ExpandPath("~/a.yaml"))
	assert.Equal(t, "~user/a", ExpandPath("~user/a"))
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
