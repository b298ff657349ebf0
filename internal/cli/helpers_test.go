package cli

import (
	"testing"

	"github.com/fatih/color"
	"github.com/ksyq12/wpsite/internal/config"
)

func init() {
	color.NoColor = true
}

// withDeps swaps the package dependencies for the duration of a test.
func withDeps(t *testing.T, d *Dependencies) {
	t.Helper()
	old := GetDeps()
	SetDeps(d)
	t.Cleanup(func() { SetDeps(old) })
}

// testConfig returns a registry whose sites directory lives under a
// per-test temp dir, so materialized files never touch the real home.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.SitesDir = t.TempDir()
	return cfg
}

// resetCreateFlags restores create's flag state after a test.
func resetCreateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		noStart = false
		noHosts = false
	})
}

// resetDeleteFlags restores delete's flag state after a test.
func resetDeleteFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		forceDelete = false
		keepFiles = false
	})
}
