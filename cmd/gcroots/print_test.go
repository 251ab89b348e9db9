package gcroots

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/render"
	"github.com/arthur-debert/gcroots/pkg/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPrintPlain(t *testing.T) {
	testutil.Isolate(t)
	tree := newRootTree(t)

	out, err := run(t, "print", "--plain", "--from", tree.listing)
	require.NoError(t, err)

	want := tree.Path("profile") + "\n" +
		"  3 -> /nix/store/profile-3\n" +
		"> 2 -> /nix/store/profile-2\n" +
		"  1 -> /nix/store/profile-1\n" +
		"\n" +
		tree.Path("result") + " -> /nix/store/ddd-result\n"
	assert.Equal(t, want, out)
}

func TestPrintShowDeletable(t *testing.T) {
	testutil.SkipIfRoot(t)
	testutil.Isolate(t)
	tree := newRootTree(t)

	out, err := run(t, "print", "--plain", "--show-deletable", "--from", tree.listing)
	require.NoError(t, err)
	assert.Contains(t, out, "  3 -> /nix/store/profile-3 (deletable)\n")
	assert.Contains(t, out, "> 2 -> /nix/store/profile-2\n")

	testutil.Chmod(t, tree.Dir, 0555)

	out, err = run(t, "print", "--plain", "--show-deletable", "--from", tree.listing)
	require.NoError(t, err)
	assert.NotContains(t, out, "(deletable)")
}

func TestPrintJSON(t *testing.T) {
	testutil.Isolate(t)
	tree := newRootTree(t)

	out, err := run(t, "print", "--format", "json", "--from", tree.listing)
	require.NoError(t, err)

	var doc render.InventoryDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Profiles, 1)
	assert.Equal(t, tree.Path("profile"), doc.Profiles[0].Path)
	require.NotNil(t, doc.Profiles[0].ActiveGeneration)
	assert.Equal(t, uint64(2), *doc.Profiles[0].ActiveGeneration)
	require.Len(t, doc.Standalone, 1)
}

func TestPrintBadFormat(t *testing.T) {
	testutil.Isolate(t)

	_, err := run(t, "print", "--format", "xml", "--from", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestPrintConfiguredCommand(t *testing.T) {
	testutil.Isolate(t)
	tree := newRootTree(t)

	path := writeConfig(t, fmt.Sprintf("[listing]\ncommand = \"cat\"\nargs = [%q]\n", tree.listing))
	out, err := run(t, "--config", path, "print", "--plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, tree.Path("profile")+"\n"))
}

func TestPrintCommandFailure(t *testing.T) {
	testutil.Isolate(t)

	path := writeConfig(t, "[listing]\ncommand = \"sh\"\nargs = [\"-c\", \"echo 'store locked' >&2; exit 4\"]\n")
	out, err := run(t, "--config", path, "print")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrListingCommand))
	assert.Contains(t, err.Error(), "exit status 4")
	assert.Contains(t, err.Error(), "store locked")
}

func TestPrintMalformedListing(t *testing.T) {
	testutil.Isolate(t)
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("/a/result /nix/store/x\n"), 0644))

	_, err := run(t, "print", "--from", path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrListingFormat))
}
