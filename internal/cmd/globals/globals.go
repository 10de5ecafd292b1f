// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/pkg/constants"
)

// Flags holds global common flags across all commands.
type Flags struct {
	File     string
	Config   string
	Output   string
	Quiet    bool
	Verbose  bool
	NoColor  bool
	LogLevel string
	Strict   bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	pf := cmd.PersistentFlags()

	pf.StringVarP(&flags.File, "file", "f", "",
		"Catalog data file (default "+constants.DefaultCatalogFile+")")
	pf.StringVar(&flags.Config, "config", "",
		"Config file (default $HOME/"+constants.ConfigFileName+".yaml)")

	pf.StringVarP(&flags.Output, "output", "o", "",
		"Output format: table, json, yaml, wide")
	pf.StringVar(&flags.Output, "format", "", "")
	_ = pf.MarkHidden("format")

	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "Minimal output")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose output")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pf.BoolVar(&flags.Strict, "strict", false, "Fail when the data file cannot be read or parsed")

	return flags
}

// Parse extracts global flags from the command hierarchy.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd.Root()
	pf := root.PersistentFlags()

	file, _ := pf.GetString("file")
	config, _ := pf.GetString("config")
	output, _ := pf.GetString("output")
	quiet, _ := pf.GetBool("quiet")
	verbose, _ := pf.GetBool("verbose")
	noColor, _ := pf.GetBool("no-color")
	logLevel, _ := pf.GetString("log-level")
	strict, _ := pf.GetBool("strict")

	return &Flags{
		File:     file,
		Config:   config,
		Output:   output,
		Quiet:    quiet,
		Verbose:  verbose,
		NoColor:  noColor,
		LogLevel: logLevel,
		Strict:   strict,
	}
}
