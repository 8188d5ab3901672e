package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatArg(t *testing.T) {
	v, err := parseFloatArg("value", "2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = parseFloatArg("value", "two")
	assert.ErrorContains(t, err, "invalid value")
}

func useTestLogger(t *testing.T) {
	t.Helper()
	saved, savedLevel := logger, logLevel
	logger = log.New()
	logger.SetOutput(io.Discard)
	t.Cleanup(func() {
		logger, logLevel = saved, savedLevel
	})
}

func TestLoadConfig(t *testing.T) {
	useTestLogger(t)

	cfg, err := loadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "single", cfg.Slider.Kind)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slider:\n  rounds: 0\n"), 0o644))
	_, err = loadConfig(path, nil)
	assert.ErrorContains(t, err, "slider.rounds")
}

func TestLoadConfigAppliesFlagsAndLogLevel(t *testing.T) {
	useTestLogger(t)

	path := filepath.Join(t.TempDir(), "range.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slider:\n  kind: range\n  max: 5\nlogging:\n  level: debug\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	sliderFlags.Register(fs)
	fs.StringVar(&logLevel, "log-level", "info", "log level")
	require.NoError(t, fs.Parse([]string{"--max", "10"}))

	cfg, err := loadConfig(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "range", cfg.Slider.Kind)
	assert.Equal(t, 10.0, cfg.Slider.Max)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	require.NoError(t, fs.Set("log-level", "warn"))
	cfg, err = loadConfig(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()

	ok := filepath.Join(dir, "ok.txt")
	require.NoError(t, writeOutput(ok, func(w io.Writer) error {
		_, err := io.WriteString(w, "done")
		return err
	}))
	data, err := os.ReadFile(ok)
	require.NoError(t, err)
	assert.Equal(t, "done", string(data))

	broken := filepath.Join(dir, "broken.txt")
	err = writeOutput(broken, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return errors.New("encoder failed")
	})
	assert.ErrorContains(t, err, "encoder failed")
	assert.NoFileExists(t, broken)
}
