package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// ParseLevel converts a level name to a logrus level. Names are
// matched case-insensitively.
func ParseLevel(level string) (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level: %s (must be panic, fatal, error, warn, info, debug, or trace)", level)
	}
	return lvl, nil
}

// Setup creates a logger writing text lines to stderr at the given level
func Setup(level string) (*logrus.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return logger, nil
}
