// Package list provides the command that prints the catalog.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/notify"
	"github.com/agentstation/bibliotheque/internal/cmd/output"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List every book in catalog order",
		Example: `  bibliotheque list             # Table of all books
  bibliotheque list -o wide     # Without truncation
  bibliotheque list -o json     # Same shape as the data file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			books := catalog.List()
			format := output.Format(app.OutputFormat())
			if len(books) == 0 && (format == output.FormatTable || format == output.FormatWide) {
				return notify.FromCommand(cmd, string(format)).Info("No books in the catalog.")
			}
			return output.FormatBooks(cmd.OutOrStdout(), books, format)
		},
	}
}
