// Package export writes a snapshot of the catalog to another format.
package export

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/constants"
	"github.com/agentstation/bibliotheque/pkg/errors"
	"github.com/agentstation/bibliotheque/pkg/save"
)

// Format is an export target.
type Format string

// Supported export formats.
const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// Formats lists the supported formats, for help text and completion.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatSQLite)}
}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	}
	return "", errors.NewValidationError("format", s, "must be one of: "+strings.Join(Formats(), ", "))
}

// Exporter writes books to a destination.
type Exporter struct {
	fs        storage.FS
	table     string
	protected []string
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithFS sets the filesystem used for JSON and YAML files. SQLite always
// writes to the real filesystem.
func WithFS(fsys storage.FS) Option {
	return func(e *Exporter) {
		if fsys != nil {
			e.fs = fsys
		}
	}
}

// WithTable sets the SQLite table name.
func WithTable(name string) Option {
	return func(e *Exporter) {
		if name != "" {
			e.table = name
		}
	}
}

// WithProtectedPath marks path, normally the live data file, as a target
// that only JSON export may write. Other formats would leave a file the
// catalog cannot load.
func WithProtectedPath(path string) Option {
	return func(e *Exporter) {
		if path != "" {
			e.protected = append(e.protected, path)
		}
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{fs: storage.Default(), table: defaultTable}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ToFile writes books to path in the given format and returns the number
// of records written.
func (e *Exporter) ToFile(ctx context.Context, books []catalogs.Book, format Format, path string) (int, error) {
	if path == "" {
		return 0, errors.NewValidationError("out", path, "an output path is required")
	}
	if format != FormatJSON && e.isProtected(path) {
		return 0, errors.NewValidationError("out", path,
			"refusing to overwrite the catalog data file with "+string(format)+" output")
	}
	switch format {
	case FormatSQLite:
		if err := storage.Default().MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
			return 0, errors.WrapIO("write", path, err)
		}
		return e.toSQLite(ctx, books, path)
	case FormatJSON, FormatYAML:
		if err := e.fs.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
			return 0, errors.WrapIO("write", path, err)
		}
		if err := catalogs.Save(e.fs, path, books, save.WithFormat(saveFormat(format))); err != nil {
			return 0, errors.WrapResource("export", "catalog", path, err)
		}
		return len(books), nil
	}
	return 0, errors.NewValidationError("format", format, "unsupported export format")
}

// ToWriter writes books to w. SQLite output needs a file and is rejected.
func (e *Exporter) ToWriter(w io.Writer, books []catalogs.Book, format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		return catalogs.Save(e.fs, "", books, save.WithWriter(w), save.WithFormat(saveFormat(format)))
	case FormatSQLite:
		return errors.NewValidationError("out", "", "sqlite export requires --out")
	}
	return errors.NewValidationError("format", format, "unsupported export format")
}

func saveFormat(f Format) save.Format {
	if f == FormatYAML {
		return save.FormatYAML
	}
	return save.FormatJSON
}

func (e *Exporter) isProtected(path string) bool {
	target := absPath(path)
	for _, p := range e.protected {
		if absPath(p) == target {
			return true
		}
	}
	return false
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
