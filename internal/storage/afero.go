package storage

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Afero implements [FS] on top of an [afero.Fs].
type Afero struct {
	fs afero.Fs
}

// NewAfero wraps an existing afero filesystem.
func NewAfero(fs afero.Fs) *Afero {
	return &Afero{fs: fs}
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() *Afero {
	return NewAfero(afero.NewMemMapFs())
}

// NewReadOnly returns a view of base that rejects every write.
func NewReadOnly(base FS) *Afero {
	if a, ok := base.(*Afero); ok {
		return NewAfero(afero.NewReadOnlyFs(a.fs))
	}
	return NewAfero(afero.NewReadOnlyFs(afero.NewOsFs()))
}

// Fs exposes the underlying afero filesystem.
func (a *Afero) Fs() afero.Fs {
	return a.fs
}

// ReadFile reads the whole file.
func (a *Afero) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// WriteFileAtomic writes data to a temp file next to path and renames it into place.
func (a *Afero) WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	existing, statErr := a.fs.Stat(path)
	mode := perm
	if statErr == nil {
		mode = existing.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(a.fs, dir, "."+base+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = a.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = a.fs.Chmod(tmpName, mode); err != nil {
		return err
	}
	return a.fs.Rename(tmpName, path)
}

// Exists reports whether path exists.
func (a *Afero) Exists(path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

// Stat returns file metadata.
func (a *Afero) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// MkdirAll creates a directory and any missing parents.
func (a *Afero) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// Remove deletes a file.
func (a *Afero) Remove(path string) error {
	return a.fs.Remove(path)
}
