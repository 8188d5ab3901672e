package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsOverrides(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)
	assert.False(t, f.Any(fs))

	require.NoError(t, fs.Parse([]string{"--kind", "range", "--max", "25", "--min", "5", "--width", "300"}))
	assert.True(t, f.Any(fs))

	cfg := DefaultConfig()
	cfg.Slider.Rounds = 3
	f.Overrides(fs).Apply(&cfg)

	assert.Equal(t, "range", cfg.Slider.Kind)
	assert.Equal(t, 5.0, cfg.Slider.Min)
	assert.Equal(t, 25.0, cfg.Slider.Max)
	assert.Equal(t, 300.0, cfg.Layout.Width)
	assert.Equal(t, 3, cfg.Slider.Rounds, "flags left at their default do not override")
	assert.Equal(t, 200.0, cfg.Layout.Height)
}
