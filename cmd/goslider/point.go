package main

import (
	"fmt"

	"github.com/philipparndt/goslider/pkg/geometry"
	"github.com/spf13/cobra"
)

var pointConfig string

var pointCmd = &cobra.Command{
	Use:   "point [x] [y]",
	Short: "Show the angle and value under a touch position",
	Long: `Compute the clockwise angle of a touch position from 12 o'clock and the
absolute value that angle represents on the configured control.`,
	Args: cobra.ExactArgs(2),
	Run:  runPoint,
}

func init() {
	pointCmd.Flags().StringVarP(&pointConfig, "config", "c", "", "slider config file")
	sliderFlags.Register(pointCmd.Flags())
	rootCmd.AddCommand(pointCmd)
}

func runPoint(cmd *cobra.Command, args []string) {
	x, err := parseFloatArg("x", args[0])
	if err != nil {
		fail("parsing arguments", err)
	}
	y, err := parseFloatArg("y", args[1])
	if err != nil {
		fail("parsing arguments", err)
	}

	cfg, err := loadConfig(pointConfig, cmd.Flags())
	if err != nil {
		fail("loading config", err)
	}

	layout := cfg.ToLayout()
	interval := geometry.Interval{Min: cfg.Slider.Min, Max: cfg.Slider.Max, Rounds: cfg.Slider.Rounds}

	touch := geometry.NewPoint(x, y)
	angle := layout.TouchAngle(touch)
	value, err := geometry.ValueFromAngle(angle, interval)
	if err != nil {
		fail("computing value", err)
	}

	fmt.Printf("Touch:  (%g, %g)\n", x, y)
	fmt.Printf("Center: (%g, %g)\n", layout.Center().X, layout.Center().Y)
	fmt.Printf("Angle:  %.6f rad (%.3f°)\n", angle, geometry.Degrees(angle))
	fmt.Printf("Value:  %.6f\n", value)
}
