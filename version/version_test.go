package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "dev"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion failed: expected dev, got %s", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-01-02"
	expected := "1.2.0 (commit abc123, built 2026-01-02)"
	if got := GetFullVersion(); got != expected {
		t.Errorf("GetFullVersion failed: expected %s, got %s", expected, got)
	}
}
