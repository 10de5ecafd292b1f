package catalogs

import (
	"io/fs"

	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

// LoadStatus describes what Load found at the data path.
type LoadStatus int

// Load outcomes.
const (
	// LoadNotFound means no file exists at the path. Nothing is created.
	LoadNotFound LoadStatus = iota
	// LoadEmpty means the file exists but has zero bytes.
	LoadEmpty
	// LoadOK means the file was parsed.
	LoadOK
	// LoadFailed is reported by Store.Info when a lenient store could not
	// read or parse its file and started empty. Load never returns it.
	LoadFailed
)

// String returns the string representation of the status.
func (s LoadStatus) String() string {
	switch s {
	case LoadNotFound:
		return "not-found"
	case LoadEmpty:
		return "empty"
	case LoadOK:
		return "ok"
	case LoadFailed:
		return "failed"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s LoadStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// LoadResult is the outcome of a successful Load.
type LoadResult struct {
	Status LoadStatus
	Books  []Book
}

// Load reads the catalog stored at path. A missing or zero-byte file is an
// empty catalog. Malformed content returns an *errors.ParseError and any
// other read failure an *errors.IOError.
func Load(fsys storage.FS, path string) (LoadResult, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{Status: LoadNotFound, Books: []Book{}}, nil
		}
		return LoadResult{}, errors.WrapIO("read", path, err)
	}
	if len(data) == 0 {
		return LoadResult{Status: LoadEmpty, Books: []Book{}}, nil
	}

	books, err := Decode(data)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return LoadResult{}, err
	}
	return LoadResult{Status: LoadOK, Books: books}, nil
}
