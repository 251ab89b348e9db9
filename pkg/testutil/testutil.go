package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateSymlink creates link -> target, creating parent directories of link
// as needed. It fails the test if the symlink cannot be created.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}

// SymlinkExists reports whether path exists and is a symlink
func SymlinkExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// Chmod changes the permissions of path and restores mode 0755 when the test
// ends so that t.TempDir cleanup can remove it.
func Chmod(t *testing.T, path string, mode os.FileMode) {
	t.Helper()

	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("Failed to chmod %s: %v", path, err)
	}
	t.Cleanup(func() { _ = os.Chmod(path, 0755) })
}

// SkipIfRoot skips tests relying on permission checks, which always pass for
// root.
func SkipIfRoot(t *testing.T) {
	t.Helper()

	if os.Geteuid() == 0 {
		t.Skip("permission checks always succeed for root")
	}
}

// Listing joins lines the way the listing command prints them
func Listing(lines ...string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}
