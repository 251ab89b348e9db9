package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing(t *testing.T) {
	assert.Nil(t, Listing())
	assert.Equal(t, "a -> b\nc -> d\n", string(Listing("a -> b", "c -> d")))
}

func TestTreeProfile(t *testing.T) {
	tr := NewTree(t)
	base := tr.Profile("system", 2, 1, 2)
	tr.Root("result", "/nix/store/r")
	tr.Line("/proc/1/maps -> /nix/store/m")

	target, err := os.Readlink(base)
	require.NoError(t, err)
	assert.Equal(t, "system-2-link", target)
	assert.True(t, SymlinkExists(t, tr.Path("system-1-link")))
	assert.False(t, SymlinkExists(t, tr.Path("missing")))

	assert.Equal(t, string(Listing(
		tr.Path("system-1-link")+" -> /nix/store/system-1",
		tr.Path("system-2-link")+" -> /nix/store/system-2",
		tr.Path("result")+" -> /nix/store/r",
		"/proc/1/maps -> /nix/store/m",
	)), string(tr.Listing()))

	data, err := os.ReadFile(tr.WriteListing())
	require.NoError(t, err)
	assert.Equal(t, tr.Listing(), data)
}

func TestTreeProfileWithoutLink(t *testing.T) {
	tr := NewTree(t)
	base := tr.Profile("nested/p", 0, 7)

	assert.False(t, SymlinkExists(t, base))
	assert.True(t, SymlinkExists(t, tr.Path("nested/p-7-link")))
}

func TestIsolate(t *testing.T) {
	dir := Isolate(t)
	assert.Equal(t, filepath.Join(dir, "config"), os.Getenv("XDG_CONFIG_HOME"))
	assert.Equal(t, "1", os.Getenv("NO_COLOR"))
}
