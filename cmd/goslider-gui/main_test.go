package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goslider/pkg/slider"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithFlags(t *testing.T) {
	saved := logLevel
	t.Cleanup(func() { logLevel = saved })

	logger := log.New()
	logger.SetOutput(io.Discard)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&logLevel, "log-level", "info", "log level")
	sliderFlags.Register(fs)
	require.NoError(t, fs.Parse([]string{"--kind", "progress", "--max", "100"}))
	assert.True(t, sliderFlags.Any(fs))

	cfg, err := loadConfig("", fs, logger)
	require.NoError(t, err)
	assert.Equal(t, "progress", cfg.Slider.Kind)
	assert.Equal(t, 100.0, cfg.Slider.Max)

	path := filepath.Join(t.TempDir(), "slider.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slider:\n  min: 10\nlogging:\n  level: trace\n"), 0o644))
	cfg, err = loadConfig(path, fs, logger)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Slider.Min)
	assert.Equal(t, 100.0, cfg.Slider.Max)
	assert.Equal(t, log.TraceLevel, logger.GetLevel())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Value: 0.250", describe(slider.Values{Kind: slider.KindSingle, End: 0.25}))
	assert.Equal(t, "Mid: 5.000 (4.500 to 5.500)", describe(slider.Values{Kind: slider.KindMidPoint, Start: 4.5, End: 5.5, Mid: 5}))
	assert.Equal(t, "Start: 1.000  End: 2.000", describe(slider.Values{Kind: slider.KindRange, Start: 1, End: 2}))
}
