package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config]",
	Short: "Check a slider config file",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

func init() {
	sliderFlags.Register(validateCmd.Flags())
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(args[0], cmd.Flags())
	if err != nil {
		fail("validating config", err)
	}
	if _, err := cfg.BuildDrawable(); err != nil {
		fail("building slider", err)
	}

	fmt.Printf("%s: ok (%s slider on [%g, %g])\n", args[0], cfg.Slider.Kind, cfg.Slider.Min, cfg.Slider.Max)
}
