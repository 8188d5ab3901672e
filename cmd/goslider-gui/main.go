package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goslider/internal/config"
	"github.com/philipparndt/goslider/internal/logging"
	"github.com/philipparndt/goslider/pkg/slider"
	"github.com/philipparndt/goslider/pkg/viewer"
	"github.com/philipparndt/goslider/pkg/watcher"
	"github.com/philipparndt/goslider/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configPath  string
	logLevel    string
	sliderFlags config.Flags
)

var rootCmd = &cobra.Command{
	Use:     "goslider-gui",
	Short:   "Interactive circular slider demo",
	Long: `Shows every circular slider kind. With --config or any slider flag an extra
slider is built from the file and flags. A config file is watched and the
slider rebuilt whenever it changes.`,
	Version: version.GetFullVersion(),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.Setup(logLevel)
		if err != nil {
			return err
		}
		return run(cmd.Flags(), logger)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "slider config file, reloaded on change")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (error, warn, info, debug, trace)")
	sliderFlags.Register(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// entry is one slider with its value label
type entry struct {
	title  string
	slider *viewer.CircularSlider
	label  *widget.Label
}

func newEntry(title string, control slider.Drawable, logger log.FieldLogger) *entry {
	e := &entry{
		title:  title,
		slider: viewer.NewCircularSlider(control, logger.WithField("slider", title)),
		label:  widget.NewLabel(""),
	}
	e.slider.SetOnChanged(e.update)
	e.update()
	return e
}

func (e *entry) update() {
	e.label.SetText(describe(e.slider.Control().Values()))
}

func (e *entry) object() fyne.CanvasObject {
	title := widget.NewLabel(e.title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewBorder(title, e.label, nil, nil, e.slider)
}

func describe(v slider.Values) string {
	switch v.Kind {
	case slider.KindSingle:
		return fmt.Sprintf("Value: %.3f", v.End)
	case slider.KindMidPoint:
		return fmt.Sprintf("Mid: %.3f (%.3f to %.3f)", v.Mid, v.Start, v.End)
	default:
		return fmt.Sprintf("Start: %.3f  End: %.3f", v.Start, v.End)
	}
}

func demoControls(logger log.FieldLogger) ([]*entry, error) {
	layout := slider.NewLayout(200, 200)

	single := slider.NewTrack(layout)
	if err := single.SetBounds(0, 100); err != nil {
		return nil, err
	}
	single.SetValue(25)

	rng := slider.NewRangeTrack(layout)
	if err := rng.SetBounds(5, 25); err != nil {
		return nil, err
	}
	rng.SetStartPointValue(5)
	rng.SetEndPointValue(10)

	mid := slider.NewMidPointTrack(layout)
	if err := mid.SetBounds(0, 10); err != nil {
		return nil, err
	}
	if err := mid.SetDistance(1); err != nil {
		return nil, err
	}
	mid.SetStartPointValue(4.5)

	progress := slider.NewProgressView(layout)
	if err := progress.SetBounds(0, 100); err != nil {
		return nil, err
	}
	progress.SetEndPointValue(40)

	entries := []*entry{
		newEntry("Single", single, logger),
		newEntry("Range", rng, logger),
		newEntry("Midpoint", mid, logger),
		newEntry("Progress", progress, logger),
	}
	entries[3].slider.LabelFormat = "%.0f%%"
	return entries, nil
}

func run(fs *pflag.FlagSet, logger *log.Logger) error {
	a := app.New()
	w := a.NewWindow("GoSlider - Circular Slider Demo")

	entries, err := demoControls(logger)
	if err != nil {
		return fmt.Errorf("failed to create demo sliders: %w", err)
	}

	grid := container.NewGridWithColumns(2)
	for _, e := range entries {
		grid.Add(e.object())
	}

	if configPath != "" || sliderFlags.Any(fs) {
		cfg, err := loadConfig(configPath, fs, logger)
		if err != nil {
			return err
		}
		control, err := cfg.BuildDrawable()
		if err != nil {
			return fmt.Errorf("failed to build slider: %w", err)
		}
		title := "Configured"
		if configPath != "" {
			title = "Config: " + configPath
		}
		configured := newEntry(title, control, logger)
		grid.Add(configured.object())

		if configPath != "" {
			fw, err := watchConfig(configured, fs, logger)
			if err != nil {
				return err
			}
			defer fw.Close()
		}
	}

	// progress advances on its own to show a display-only control
	progress := entries[3]
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			fyne.Do(func() {
				view := progress.slider.Control().(*slider.ProgressView)
				next := view.EndPointValue() + 0.5
				if next > view.Maximum() {
					next = view.Minimum()
				}
				view.SetEndPointValue(next)
				progress.slider.Refresh()
				progress.update()
			})
		}
	}()

	w.SetContent(grid)
	w.Resize(fyne.NewSize(900, 700))
	w.ShowAndRun()
	return nil
}

// loadConfig reads path, or the defaults when it is empty, applies the
// flags changed on fs and moves the logger to the resulting level
func loadConfig(path string, fs *pflag.FlagSet, logger *log.Logger) (config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = config.LoadConfigFile(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	o := sliderFlags.Overrides(fs)
	if fs.Changed("log-level") {
		o.LogLevel = &logLevel
	}
	o.Apply(&cfg)

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

// watchConfig rebuilds the configured slider whenever its file changes.
// An invalid file keeps the previous slider.
func watchConfig(e *entry, fs *pflag.FlagSet, logger *log.Logger) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, logger)
	if err != nil {
		return nil, err
	}

	err = fw.Watch([]string{configPath}, func(path string) {
		cfg, err := loadConfig(path, fs, logger)
		if err != nil {
			logger.WithError(err).WithField("path", path).Warn("Ignoring config change")
			return
		}
		control, err := cfg.BuildDrawable()
		if err != nil {
			logger.WithError(err).WithField("path", path).Warn("Ignoring config change")
			return
		}

		fyne.Do(func() {
			e.slider.SetControl(control)
			e.update()
		})
		logger.WithField("path", path).Info("Config reloaded")
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start()
	return fw, nil
}
