package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goslider/internal/logging"
	"github.com/philipparndt/goslider/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = log.StandardLogger()
)

var rootCmd = &cobra.Command{
	Use:   "goslider",
	Short: "Geometry and value mapping of circular sliders",
	Long: `goslider computes how circular slider controls map values to angles
and screen positions, and replays recorded pointer traces against them.`,
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.Setup(logLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (error, warn, info, debug, trace)")
}

// fail logs the error and exits the process
func fail(format string, err error) {
	logger.WithError(err).Debug("Command failed")
	fmt.Fprintf(os.Stderr, "Error: "+format+": %v\n", err)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
