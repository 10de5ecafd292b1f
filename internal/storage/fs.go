// Package storage provides the filesystem abstraction behind the catalog store.
//
// The main types are:
//   - [FS]: the operations the store needs
//   - [Real]: production implementation using [os] and atomic replace
//   - [Afero]: implementation over any [afero.Fs], used for in-memory and
//     read-only filesystems in tests
//
// Every implementation writes whole files through a temporary sibling that is
// renamed over the target, so a failed write never truncates existing data.
package storage

import (
	"os"
)

// FS defines the filesystem operations used to persist a catalog.
type FS interface {
	// ReadFile returns the whole content of path. Missing files report an
	// error satisfying [os.IsNotExist].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic replaces path with data. Readers see either the old
	// or the new content, never a mix. perm applies when the file is created.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// Exists reports whether path exists. Errors other than "not exist"
	// are returned as-is.
	Exists(path string) (bool, error)

	// Stat returns file metadata.
	Stat(path string) (os.FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string, perm os.FileMode) error

	// Remove deletes a file.
	Remove(path string) error
}

// Default returns the filesystem used when none is configured.
func Default() FS {
	return NewReal()
}
