// Package info provides the command that describes the open catalog.
package info

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/output"
)

// NewCommand creates the info command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "info",
		GroupID: "management",
		Short:   "Show the data file, book count and load status",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.Catalog()
			if err != nil {
				return err
			}
			return output.FormatInfo(cmd.OutOrStdout(), catalog.Info(), output.Format(app.OutputFormat()))
		},
	}
}
