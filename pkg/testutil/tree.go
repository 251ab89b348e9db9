package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Tree is a directory of GC root symlinks. Roots created with Root are
// recorded in the listing; links created with Link are not, which is how
// profile links normally appear.
type Tree struct {
	Dir string

	t     *testing.T
	lines []string
}

// NewTree creates an empty tree in a temporary directory
func NewTree(t *testing.T) *Tree {
	t.Helper()
	return &Tree{Dir: t.TempDir(), t: t}
}

// Path returns the absolute path of name inside the tree
func (tr *Tree) Path(name string) string {
	return filepath.Join(tr.Dir, name)
}

// Root creates name -> target and adds it to the listing
func (tr *Tree) Root(name, target string) string {
	tr.t.Helper()
	path := tr.Link(name, target)
	tr.lines = append(tr.lines, fmt.Sprintf("%s -> %s", path, target))
	return path
}

// Link creates name -> target without listing it
func (tr *Tree) Link(name, target string) string {
	tr.t.Helper()
	path := tr.Path(name)
	CreateSymlink(tr.t, target, path)
	return path
}

// Profile creates generation roots <name>-<n>-link -> <store>/<name>-<n> for
// each n, and the profile link <name> -> <name>-<active>-link. An active of
// zero leaves the profile link out.
func (tr *Tree) Profile(name string, active uint64, generations ...uint64) string {
	tr.t.Helper()
	for _, n := range generations {
		tr.Root(GenerationName(name, n), fmt.Sprintf("/nix/store/%s-%d", filepath.Base(name), n))
	}
	if active > 0 {
		tr.Link(name, filepath.Base(GenerationName(name, active)))
	}
	return tr.Path(name)
}

// Line appends a raw line to the listing, such as a /proc entry
func (tr *Tree) Line(line string) {
	tr.lines = append(tr.lines, line)
}

// Listing returns the listing of every root created so far
func (tr *Tree) Listing() []byte {
	return Listing(tr.lines...)
}

// WriteListing saves the listing next to the tree and returns its path
func (tr *Tree) WriteListing() string {
	tr.t.Helper()
	path := filepath.Join(tr.t.TempDir(), "roots.txt")
	if err := os.WriteFile(path, tr.Listing(), 0644); err != nil {
		tr.t.Fatalf("Failed to write listing %s: %v", path, err)
	}
	return path
}

// GenerationName returns <name>-<n>-link
func GenerationName(name string, n uint64) string {
	return fmt.Sprintf("%s-%d-link", name, n)
}
