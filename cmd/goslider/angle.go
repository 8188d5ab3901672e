package main

import (
	"fmt"

	"github.com/philipparndt/goslider/pkg/geometry"
	"github.com/philipparndt/goslider/pkg/slider"
	"github.com/spf13/cobra"
)

var (
	angleInterval geometry.Interval
	angleWidth    float64
	angleHeight   float64
)

var angleCmd = &cobra.Command{
	Use:   "angle [value]",
	Short: "Show the thumb angle and position of a value",
	Args:  cobra.ExactArgs(1),
	Run:   runAngle,
}

func init() {
	angleCmd.Flags().Float64Var(&angleInterval.Min, "min", 0, "minimum value")
	angleCmd.Flags().Float64Var(&angleInterval.Max, "max", 1, "maximum value")
	angleCmd.Flags().IntVar(&angleInterval.Rounds, "rounds", 1, "revolutions covering the value range")
	angleCmd.Flags().Float64Var(&angleWidth, "width", 200, "view width")
	angleCmd.Flags().Float64Var(&angleHeight, "height", 200, "view height")
	rootCmd.AddCommand(angleCmd)
}

func runAngle(cmd *cobra.Command, args []string) {
	value, err := parseFloatArg("value", args[0])
	if err != nil {
		fail("parsing arguments", err)
	}

	angle, err := geometry.ScaleToAngle(value, angleInterval)
	if err != nil {
		fail("computing angle", err)
	}
	angle = geometry.NormalizeAngle(angle)

	layout := slider.NewLayout(angleWidth, angleHeight)
	center := layout.ThumbCenter(angle)

	fmt.Println("Value Angle")
	fmt.Println("===========")
	fmt.Printf("  Value:   %g in [%g, %g] over %d round(s)\n", value, angleInterval.Min, angleInterval.Max, angleInterval.Rounds)
	fmt.Printf("  Angle:   %.6f rad (%.3f°)\n", angle, geometry.Degrees(angle))
	fmt.Printf("  Radius:  %.3f\n", layout.Radius())
	fmt.Printf("  Thumb:   (%.3f, %.3f)\n", center.X, center.Y)
}
