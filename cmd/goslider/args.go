package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/goslider/internal/config"
	"github.com/philipparndt/goslider/internal/logging"
	"github.com/spf13/pflag"
)

// sliderFlags holds the config overrides shared by the config based commands
var sliderFlags config.Flags

func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

// loadConfig returns the validated config at path, or the defaults when
// path is empty. Flags changed on fs override the file, and the logger
// follows the resulting log level.
func loadConfig(path string, fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = config.LoadConfigFile(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	if fs != nil {
		o := sliderFlags.Overrides(fs)
		if fs.Changed("log-level") {
			o.LogLevel = &logLevel
		}
		o.Apply(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	lvl, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return config.Config{}, err
	}
	logger.SetLevel(lvl)
	return cfg, nil
}

// writeOutput creates path and fills it using write. A failed write or
// close removes the partial file.
func writeOutput(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	werr := write(f)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
