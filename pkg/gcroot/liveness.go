package gcroot

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/filesystem"
)

// ResolveActiveGeneration reads the profile symlink at base and returns the
// generation it points to. known is false when the link is missing, not a
// symlink, unreadable, or points somewhere that is not a generation link;
// those cases are expected (profiles of other users, for example) and are
// not errors. Any other lstat or readlink failure is returned as ErrReadLink.
//
// Only the link itself is read. Whether the store path at the end of the
// chain still exists does not change which generation is active.
func ResolveActiveGeneration(fsys filesystem.FS, base string) (generation uint64, known bool, err error) {
	info, err := fsys.Lstat(base)
	if err != nil {
		if tolerableLstatError(err) {
			return 0, false, nil
		}
		return 0, false, errors.Wrapf(err, errors.ErrReadLink, "failed to inspect profile link %s", base).
			WithDetail("profile", base)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return 0, false, nil
	}

	dest, err := fsys.Readlink(base)
	if err != nil {
		if tolerableLinkError(err) {
			return 0, false, nil
		}
		return 0, false, errors.Wrapf(err, errors.ErrReadLink, "failed to read profile link %s", base).
			WithDetail("profile", base)
	}

	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(base), dest)
	}
	_, generation, known = ParseGenerationName(dest)
	return generation, known, nil
}

// ENOTDIR means a parent component is not a directory, so there is no link.
func tolerableLstatError(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) ||
		stderrors.Is(err, fs.ErrPermission) ||
		stderrors.Is(err, syscall.ENOTDIR)
}

func tolerableLinkError(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) ||
		stderrors.Is(err, fs.ErrPermission) ||
		stderrors.Is(err, syscall.EINVAL)
}
