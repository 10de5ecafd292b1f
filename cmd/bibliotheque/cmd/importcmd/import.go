// Package importcmd provides the command that adds books from JSONC files.
package importcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/notify"
	"github.com/agentstation/bibliotheque/internal/cmd/output"
	"github.com/agentstation/bibliotheque/internal/importer"
	"github.com/agentstation/bibliotheque/pkg/logging"
)

// NewCommand creates the import command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var skipDuplicates bool

	cmd := &cobra.Command{
		Use:     "import <file>...",
		GroupID: "management",
		Short:   "Append books from data files that may contain comments",
		Long: `Append the books in each file to the catalog, in order. Files use the
data file format and may contain // and /* */ comments and trailing commas.
A file that fails to parse adds nothing.`,
		Example: `  bibliotheque import books.jsonc
  bibliotheque import --skip-duplicates a.json b.jsonc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "import")

			var total importer.Result
			for _, path := range args {
				fileCtx := logging.WithPath(ctx, path)
				imp := importer.New(
					importer.WithLogger(logging.FromContext(fileCtx)),
					importer.WithSkipDuplicates(skipDuplicates),
				)
				res, err := imp.ImportFile(fileCtx, path, catalog)
				total.Added += res.Added
				total.Skipped += res.Skipped
				total.Titles = append(total.Titles, res.Titles...)
				if err != nil {
					return err
				}
			}

			switch format := output.Format(app.OutputFormat()); format {
			case output.FormatJSON, output.FormatYAML:
				return output.FormatAny(cmd.OutOrStdout(), total, format)
			}
			message := fmt.Sprintf("Imported %d books.", total.Added)
			if total.Skipped > 0 {
				message = fmt.Sprintf("Imported %d books, skipped %d duplicates.", total.Added, total.Skipped)
			}
			return notify.FromCommand(cmd, app.OutputFormat()).Success(message)
		},
	}

	cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", false, "Skip books whose ISBN is already in the catalog")

	return cmd
}
