// Package filesystem provides the filesystem seam used by gcroots.
//
// Inventory only ever needs to look at symlinks and permissions, so the
// inspection commands run on a read-only view; only delete gets a writable
// one. Both are backed by afero over the OS filesystem.
package filesystem
