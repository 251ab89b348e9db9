package gcroot

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/filesystem"
)

// DefaultProtectedPrefixes hold roots owned by the running system and by live
// processes. Nothing below them is ever deletable.
var DefaultProtectedPrefixes = []string{"/run", "/proc"}

// Policy decides which roots may be removed and performs the removal
type Policy struct {
	fs        filesystem.FS
	protected []string
}

// NewPolicy creates a deletion policy over fsys. Extra prefixes are protected
// in addition to DefaultProtectedPrefixes.
func NewPolicy(fsys filesystem.FS, extraProtected ...string) *Policy {
	protected := make([]string, 0, len(DefaultProtectedPrefixes)+len(extraProtected))
	for _, prefix := range append(append([]string{}, DefaultProtectedPrefixes...), extraProtected...) {
		protected = append(protected, filepath.Clean(prefix))
	}
	return &Policy{fs: fsys, protected: protected}
}

// ProtectedPrefixes returns the cleaned list of protected prefixes
func (p *Policy) ProtectedPrefixes() []string {
	return append([]string(nil), p.protected...)
}

// Protected reports whether location lies under a protected prefix. The match
// is by whole path components, checked on both the raw and the cleaned path.
func (p *Policy) Protected(location string) bool {
	cleaned := filepath.Clean(location)
	for _, prefix := range p.protected {
		if hasPathPrefix(location, prefix) || hasPathPrefix(cleaned, prefix) {
			return true
		}
	}
	return false
}

// ParentWritable reports whether the process may unlink entries in the
// directory holding location.
func (p *Policy) ParentWritable(location string) bool {
	parent := filepath.Dir(location)
	if parent == location {
		return false
	}
	return p.fs.Access(parent, filesystem.WriteOK) == nil
}

func hasPathPrefix(path, prefix string) bool {
	if prefix == "/" {
		return strings.HasPrefix(path, "/")
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func deleteRoot(policy *Policy, root Root) error {
	if !root.Deletable(policy) {
		return errors.Newf(errors.ErrNotDeletable, "%s is not deletable", root.Location()).
			WithDetail("location", root.Location())
	}
	if !filesystem.IsSymlink(policy.fs, root.Location()) {
		return errors.Newf(errors.ErrNotDeletable, "%s is no longer a symlink", root.Location()).
			WithDetail("location", root.Location())
	}
	if err := policy.fs.Remove(root.Location()); err != nil {
		return errors.Wrapf(err, errors.ErrDelete, "failed to remove %s", root.Location()).
			WithDetail("location", root.Location())
	}
	return nil
}
