package gcroots

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/gcroots/pkg/testutil"
)

// run executes the root command with args and returns what it wrote to
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type rootTree struct {
	*testutil.Tree
	listing string
}

// newRootTree creates a profile with generations 1 to 3, generation 2 active,
// one standalone root, and a saved listing describing them.
func newRootTree(t *testing.T) rootTree {
	t.Helper()
	tr := testutil.NewTree(t)
	tr.Profile("profile", 2, 1, 2, 3)
	tr.Root("result", "/nix/store/ddd-result")
	tr.Line("/proc/123/maps -> /nix/store/eee-mapped")
	return rootTree{Tree: tr, listing: tr.WriteListing()}
}
