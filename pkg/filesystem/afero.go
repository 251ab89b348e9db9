package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// NewOS returns a writable view of the OS filesystem
func NewOS() FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewReadOnly returns a view of the OS filesystem on which Remove always fails
func NewReadOnly() FS {
	return NewAferoFS(afero.NewReadOnlyFs(afero.NewOsFs()))
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if reader, ok := a.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", &fs.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

// Access asks the kernel, so it reflects real permissions even on a read-only view.
func (a *aferoFS) Access(name string, mode uint32) error {
	return unix.Access(name, mode)
}
