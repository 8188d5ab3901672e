package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/philipparndt/goslider/internal/trace"
	"github.com/spf13/cobra"
)

var replayChart string

var replayCmd = &cobra.Command{
	Use:   "replay [config] [trace]",
	Short: "Replay a recorded pointer trace against a slider",
	Long: `Build the slider described by the config file, feed it the pointer events
of the trace file, and print the values after every event.`,
	Args: cobra.ExactArgs(2),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayChart, "chart", "", "write an HTML chart of the values to this file")
	sliderFlags.Register(replayCmd.Flags())
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(args[0], cmd.Flags())
	if err != nil {
		fail("loading config", err)
	}

	tracker, err := cfg.Build()
	if err != nil {
		fail("building slider", err)
	}

	tr, err := trace.Load(args[1])
	if err != nil {
		fail("loading trace", err)
	}

	samples, err := trace.Replay(tracker, tr, logger)
	if err != nil {
		logger.WithError(err).Warn("Replay stopped early")
	}

	fmt.Printf("%-5s %-7s %10s %10s %-4s %12s %12s\n", "#", "event", "x", "y", "ok", "start", "end")
	for _, s := range samples {
		ok := "-"
		if s.Accepted {
			ok = "yes"
		}
		fmt.Printf("%-5d %-7s %10.2f %10.2f %-4s %12.6f %12.6f\n", s.Index, s.Type, s.X, s.Y, ok, s.Values.Start, s.Values.End)
	}

	fmt.Printf("\nSummary: %s\n", trace.Analyze(samples))

	if replayChart != "" {
		cerr := writeOutput(replayChart, func(w io.Writer) error {
			return trace.WriteChart(w, filepath.Base(args[1]), samples)
		})
		if cerr != nil {
			fail("writing chart", cerr)
		}
		logger.WithField("path", replayChart).Info("Chart written")
	}

	if err != nil {
		fail("replaying trace", err)
	}
}
