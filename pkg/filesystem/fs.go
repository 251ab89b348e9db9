package filesystem

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// Access modes understood by FS.Access
const (
	ReadOK  uint32 = unix.R_OK
	WriteOK uint32 = unix.W_OK
)

// FS is the filesystem interface required for inventory and deletion
type FS interface {
	// Lstat describes the named file without following a final symlink.
	Lstat(name string) (fs.FileInfo, error)
	// Readlink returns the immediate target of a symlink.
	Readlink(name string) (string, error)
	// Remove unlinks name. It never follows a symlink.
	Remove(name string) error
	// Access checks the calling process's permission on name, like access(2).
	Access(name string, mode uint32) error
}

// IsSymlink reports whether name exists and is itself a symlink.
func IsSymlink(fsys FS, name string) bool {
	info, err := fsys.Lstat(name)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}
