// Package importer adds books from data files that may carry comments and
// trailing commas (JSONC) to a catalog.
package importer

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tailscale/hujson"

	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

// Result summarizes an import.
type Result struct {
	Added   int      `json:"added" yaml:"added"`
	Skipped int      `json:"skipped" yaml:"skipped"`
	Titles  []string `json:"titles,omitempty" yaml:"titles,omitempty"`
}

// Importer reads JSONC files into a catalog.
type Importer struct {
	fs             storage.FS
	logger         *zerolog.Logger
	skipDuplicates bool
}

// Option configures an Importer.
type Option func(*Importer)

// WithFS sets the filesystem files are read from.
func WithFS(fsys storage.FS) Option {
	return func(i *Importer) {
		if fsys != nil {
			i.fs = fsys
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithSkipDuplicates skips books whose ISBN is already in the catalog or
// earlier in the same file. Books without an ISBN are always added.
func WithSkipDuplicates(skip bool) Option {
	return func(i *Importer) {
		i.skipDuplicates = skip
	}
}

// New creates an Importer.
func New(opts ...Option) *Importer {
	nop := zerolog.Nop()
	i := &Importer{fs: storage.Default(), logger: &nop}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Parse standardizes JSONC to JSON and decodes it as a data file.
func Parse(data []byte, file string) ([]catalogs.Book, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, errors.WrapParse("jsonc", file, err)
	}
	books, err := catalogs.Decode(standardized)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.Format = "jsonc"
			pe.File = file
		}
		return nil, err
	}
	return books, nil
}

// ImportFile adds every book in path to c, in file order. The whole file is
// parsed before anything is added. An Add failure stops the import; books
// already added stay in the catalog and are counted in the result.
func (i *Importer) ImportFile(ctx context.Context, path string, c catalogs.Catalog) (Result, error) {
	data, err := i.fs.ReadFile(path)
	if err != nil {
		return Result{}, errors.WrapIO("read", path, err)
	}
	books, err := Parse(data, path)
	if err != nil {
		return Result{}, err
	}
	return i.Import(ctx, books, c)
}

// Import adds books to c, honoring the duplicate policy. ISBNs are compared
// ignoring case and surrounding spaces.
func (i *Importer) Import(ctx context.Context, books []catalogs.Book, c catalogs.Catalog) (Result, error) {
	var res Result
	seen := make(map[string]bool)
	if i.skipDuplicates {
		for _, b := range c.List() {
			if key := isbnKey(b.ISBN); key != "" {
				seen[key] = true
			}
		}
	}
	for _, b := range books {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		key := isbnKey(b.ISBN)
		if i.skipDuplicates && key != "" {
			if seen[key] {
				i.logger.Debug().Str("isbn", b.ISBN).Str("title", b.Title).Msg("Skipping duplicate book")
				res.Skipped++
				continue
			}
			seen[key] = true
		}
		if err := c.Add(b); err != nil {
			return res, errors.WrapResource("import", "book", b.Title, err)
		}
		res.Added++
		res.Titles = append(res.Titles, b.Title)
	}
	i.logger.Info().Int("added", res.Added).Int("skipped", res.Skipped).Msg("Import finished")
	return res, nil
}

func isbnKey(isbn string) string {
	return strings.ToLower(strings.TrimSpace(isbn))
}
