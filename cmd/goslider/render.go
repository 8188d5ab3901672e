package main

import (
	"image/png"
	"io"

	"github.com/philipparndt/goslider/pkg/viewer"
	"github.com/spf13/cobra"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render [config]",
	Short: "Render a slider to a PNG image",
	Args:  cobra.ExactArgs(1),
	Run:   runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "slider.png", "output file")
	sliderFlags.Register(renderCmd.Flags())
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(args[0], cmd.Flags())
	if err != nil {
		fail("loading config", err)
	}

	control, err := cfg.BuildDrawable()
	if err != nil {
		fail("building slider", err)
	}

	img, err := viewer.Snapshot(control, viewer.DefaultPalette())
	if err != nil {
		fail("rendering slider", err)
	}

	err = writeOutput(renderOutput, func(w io.Writer) error {
		return png.Encode(w, img)
	})
	if err != nil {
		fail("writing png", err)
	}
	logger.WithField("path", renderOutput).Info("Slider rendered")
}
