// Package app provides the application context and dependency management
// for the bibliotheque CLI. It centralizes configuration, logging and the
// lazily opened catalog store.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/output"
	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/errors"
	"github.com/agentstation/bibliotheque/pkg/logging"
)

// App represents the bibliotheque application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// I/O streams, overridable for tests
	in  io.Reader
	out io.Writer
	err io.Writer

	fs storage.FS

	// Store (lazy-initialized, singleton)
	mu    sync.RWMutex
	store catalogs.Catalog
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		in:      os.Stdin,
		out:     os.Stdout,
		err:     os.Stderr,
		fs:      storage.Default(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := newLogger(app.config, app.err)
		app.logger = &logger
	}
	logging.SetDefault(*app.logger)

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the output format from flags or config, falling
// back to terminal detection.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Output))
}

// Quiet reports whether informational output is suppressed.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// Catalog returns the store bound to the configured data file, opening it
// on first use. This is thread-safe and ensures only one store is created.
func (a *App) Catalog() (catalogs.Catalog, error) {
	a.mu.RLock()
	if a.store != nil {
		store := a.store
		a.mu.RUnlock()
		return store, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.store != nil {
		return a.store, nil
	}

	opts := []catalogs.Option{
		catalogs.WithFS(a.fs),
		catalogs.WithLogger(a.logger),
	}
	if a.config.Strict {
		opts = append(opts, catalogs.WithStrictLoad())
	}

	store, err := catalogs.New(a.config.File, opts...)
	if err != nil {
		return nil, errors.WrapResource("open", "catalog", a.config.File, err)
	}

	store.OnBookAdded(func(b catalogs.Book) {
		a.logger.Debug().Str("operation", "add").Str("title", b.Title).Str("isbn", b.ISBN).
			Int("count", store.Len()).Msg("Book added")
	})
	store.OnBookRemoved(func(index int, b catalogs.Book) {
		a.logger.Debug().Str("operation", "remove").Int("index", index).Str("title", b.Title).
			Int("count", store.Len()).Msg("Book removed")
	})

	a.store = store
	return store, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration instead of loading one.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets a custom catalog (useful for testing).
func WithCatalog(c catalogs.Catalog) Option {
	return func(a *App) error {
		a.store = c
		return nil
	}
}

// WithFS sets the filesystem the store reads and writes.
func WithFS(fsys storage.FS) Option {
	return func(a *App) error {
		if fsys == nil {
			return errors.NewConfigError("app", "filesystem cannot be nil", nil)
		}
		a.fs = fsys
		return nil
	}
}

// WithIO sets the streams commands read from and write to.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) error {
		a.in, a.out, a.err = in, out, errOut
		return nil
	}
}
