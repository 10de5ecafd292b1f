package catalogs

import (
	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/errors"
	"github.com/agentstation/bibliotheque/pkg/save"
)

// Save replaces the file at path with the full catalog. The default format
// is the JSON data file; save.WithWriter sends output to a writer instead
// and save.WithPath overrides path. Failures are *errors.IOError.
func Save(fsys storage.FS, path string, books []Book, opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)
	if options.Path() != "" {
		path = options.Path()
	}

	data, err := marshal(books, options.Format())
	if err != nil {
		return err
	}

	if w := options.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", path, err)
		}
		return nil
	}

	if path == "" {
		return &errors.ConfigError{
			Component: "catalog",
			Message:   "no path configured for saving",
		}
	}
	if err := fsys.WriteFileAtomic(path, data, options.Perm()); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

func marshal(books []Book, format save.Format) ([]byte, error) {
	switch format {
	case save.FormatJSON:
		return Encode(books)
	case save.FormatYAML:
		return EncodeYAML(books)
	}
	return nil, errors.NewValidationError("format", format, "unsupported save format "+format.String())
}
