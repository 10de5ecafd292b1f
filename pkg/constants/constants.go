// Package constants provides shared constants used throughout bibliotheque.
// This includes file names, permissions, environment variable names and
// other values that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default values
const (
	// DefaultCatalogFile is the data file used when none is configured
	DefaultCatalogFile = "bibliotheque.json"

	// DefaultExportTable is the SQLite table written by export
	DefaultExportTable = "books"

	// ConfigFileName is the base name of the optional YAML config file
	ConfigFileName = ".bibliotheque"

	// HistoryFileName is the interactive menu history file, kept in the home directory
	HistoryFileName = ".bibliotheque_history"
)

// Environment variables
const (
	// EnvPrefix prefixes every application environment variable
	EnvPrefix = "BIBLIOTHEQUE"

	// EnvFile overrides the data file path
	EnvFile = "BIBLIOTHEQUE_FILE"

	// EnvStrict enables strict load
	EnvStrict = "BIBLIOTHEQUE_STRICT"

	// EnvLogLevel sets the log level
	EnvLogLevel = "LOG_LEVEL"

	// EnvLogFormat sets the log format (json, console, auto)
	EnvLogFormat = "LOG_FORMAT"

	// EnvLogOutput sets the log destination
	EnvLogOutput = "LOG_OUTPUT"
)

// Format constants
const (
	// JSONIndent is the indentation used by the data file
	JSONIndent = "  "

	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"
)

// MaxFutureYears bounds how far past the current year a publication year may be
const MaxFutureYears = 1
