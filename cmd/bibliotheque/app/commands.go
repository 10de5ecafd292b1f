package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/cmd/bibliotheque/cmd/add"
	"github.com/agentstation/bibliotheque/cmd/bibliotheque/cmd/export"
	"github.com/agentstation/bibliotheque/cmd/bibliotheque/cmd/importcmd"
	"github.com/agentstation/bibliotheque/cmd/bibliotheque/cmd/info"
	"github.com/agentstation/bibliotheque/cmd/bibliotheque/cmd/list"
	"github.com/agentstation/bibliotheque/cmd/bibliotheque/cmd/menu"
	"github.com/agentstation/bibliotheque/cmd/bibliotheque/cmd/remove"
	"github.com/agentstation/bibliotheque/cmd/bibliotheque/cmd/search"
	"github.com/agentstation/bibliotheque/cmd/bibliotheque/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(menu.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(info.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(importcmd.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
