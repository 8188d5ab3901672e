package main

import (
	"fmt"

	"github.com/philipparndt/goslider/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	scaleFrom geometry.Interval
	scaleTo   geometry.Interval
)

var scaleCmd = &cobra.Command{
	Use:   "scale [value]",
	Short: "Map a value from one interval onto another",
	Long: `Scale a value linearly from the source interval onto the target interval.
Values above the source range fold back into a single round. Values below
the source minimum keep their sign and land proportionally below the
target minimum. The defaults map [0, 1] onto one turn of the circle in radians.`,
	Args: cobra.ExactArgs(1),
	Run:  runScale,
}

func init() {
	scaleCmd.Flags().Float64Var(&scaleFrom.Min, "from-min", 0, "source minimum")
	scaleCmd.Flags().Float64Var(&scaleFrom.Max, "from-max", 1, "source maximum")
	scaleCmd.Flags().IntVar(&scaleFrom.Rounds, "from-rounds", 1, "source rounds")
	scaleCmd.Flags().Float64Var(&scaleTo.Min, "to-min", geometry.CircleMinValue, "target minimum")
	scaleCmd.Flags().Float64Var(&scaleTo.Max, "to-max", geometry.CircleMaxValue, "target maximum")
	scaleCmd.Flags().IntVar(&scaleTo.Rounds, "to-rounds", 1, "target rounds")
	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, args []string) {
	value, err := parseFloatArg("value", args[0])
	if err != nil {
		fail("parsing arguments", err)
	}

	result, err := geometry.ScaleValue(value, scaleFrom, scaleTo)
	if err != nil {
		fail("scaling value", err)
	}

	logger.WithFields(map[string]interface{}{
		"from": scaleFrom,
		"to":   scaleTo,
	}).Debug("Scaled value")
	fmt.Printf("%g\n", result)
}
