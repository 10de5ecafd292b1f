package catalogs

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/errors"
	"github.com/agentstation/bibliotheque/pkg/logging"
)

// options holds Store configuration.
type options struct {
	fs     storage.FS
	logger *zerolog.Logger
	strict bool
}

func defaults() *options {
	return &options{
		fs:     storage.Default(),
		logger: logging.Default(),
	}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Option configures a Store.
type Option func(*options) error

// WithFS sets the filesystem the store reads and writes through.
func WithFS(fsys storage.FS) Option {
	return func(o *options) error {
		if fsys == nil {
			return &errors.ConfigError{Component: "catalog", Message: "filesystem cannot be nil"}
		}
		o.fs = fsys
		return nil
	}
}

// WithLogger sets the logger used for load and flush events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			logger = &logging.Nop
		}
		o.logger = logger
		return nil
	}
}

// WithStrictLoad makes New fail when the data file cannot be read or parsed.
// Without it the store starts empty and logs a warning.
func WithStrictLoad() Option {
	return func(o *options) error {
		o.strict = true
		return nil
	}
}
