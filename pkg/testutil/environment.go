package testutil

import (
	"path/filepath"
	"testing"
)

// Isolate points the XDG directories at a fresh temporary tree so that no
// user configuration is read and no log file is written outside it. Color is
// disabled. The base directory is returned.
func Isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("NO_COLOR", "1")
	return dir
}
