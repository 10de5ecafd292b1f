// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on a single contract
// instead of the concrete App type.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bibliotheque/pkg/catalogs"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/bibliotheque/app implements it; tests use Mock.
type Interface interface {
	// Catalog returns the store bound to the configured data file, opening
	// it on first use.
	Catalog() (catalogs.Catalog, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, wide).
	OutputFormat() string

	// Quiet reports whether informational output is suppressed.
	Quiet() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
