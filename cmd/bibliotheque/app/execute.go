package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/cmd/globals"
	"github.com/agentstation/bibliotheque/pkg/logging"
)

// Execute runs the bibliotheque CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bibliotheque",
		Short:   "Personal library catalog",
		Version: a.version,
		Long: `Bibliotheque keeps a catalog of books in a single JSON file.

Every change is written to the file immediately. Run without a subcommand,
or with "menu", for the interactive numbered menu.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	globals.AddFlags(rootCmd)

	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.err)
	rootCmd.SetVersionTemplate("bibliotheque {{.Version}}\n")

	a.registerCommands(rootCmd)

	// The bare command opens the menu.
	menuCmd, _, _ := rootCmd.Find([]string{"menu"})
	rootCmd.RunE = menuCmd.RunE

	return rootCmd
}

// setupCommand is called before any command runs. Flags override the
// config loaded at startup; --config reloads it from the given file first.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := globals.Parse(cmd)

	if flags.Config != "" {
		config, err := LoadConfig(flags.Config)
		if err != nil {
			return err
		}
		a.config = config
	}
	a.config.UpdateFromFlags(flags, cmd.Root().PersistentFlags().Changed)

	logger := newLogger(a.config, cmd.ErrOrStderr())
	a.logger = &logger
	logging.SetDefault(logger)

	a.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("file", a.config.File).
		Str("config", a.config.ConfigFile).
		Msg("Starting command")

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
