package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
		wantErr  bool
	}{
		{"error", logrus.ErrorLevel, false},
		{"WARN", logrus.WarnLevel, false},
		{"warning", logrus.WarnLevel, false},
		{" info ", logrus.InfoLevel, false},
		{"debug", logrus.DebugLevel, false},
		{"trace", logrus.TraceLevel, false},
		{"Fatal", logrus.FatalLevel, false},
		{"", logrus.InfoLevel, true},
		{"verbose", logrus.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) failed: expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestSetup(t *testing.T) {
	logger, err := Setup("debug")
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Setup failed: expected %v, got %v", logrus.DebugLevel, logger.GetLevel())
	}

	if _, err := Setup("loud"); err == nil {
		t.Error("Setup failed: expected error for invalid level")
	}
}
