// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands
// and the interactive menu.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	// Used for: added or removed books, completed exports.
	Success = "✓"

	// Error represents failures.
	// Used for: write failures, invalid positions, parse errors.
	Error = "✗"

	// Warning represents non-critical issues.
	// Used for: a data file that could not be loaded and was ignored.
	Warning = "!"

	// Info represents informational messages.
	// Used for: empty results, hints.
	Info = "i"

	// Book marks a catalog entry in plain listings.
	Book = "•"

	// Prompt precedes interactive input.
	Prompt = ">"
)
