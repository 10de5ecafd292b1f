// Package export provides the command that writes the catalog to another
// format.
package export

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/notify"
	iexport "github.com/agentstation/bibliotheque/internal/export"
	"github.com/agentstation/bibliotheque/pkg/constants"
)

// NewCommand creates the export command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		format string
		out    string
		table  string
	)

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "management",
		Short:   "Export the catalog as JSON, YAML or SQLite",
		Example: `  bibliotheque export --format yaml                 # YAML to stdout
  bibliotheque export --format json --out copy.json
  bibliotheque export --format sqlite --out books.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := iexport.ParseFormat(format)
			if err != nil {
				return err
			}

			catalog, err := app.Catalog()
			if err != nil {
				return err
			}
			books := catalog.List()
			exporter := iexport.New(iexport.WithTable(table), iexport.WithProtectedPath(catalog.Path()))

			if out == "" || out == "-" {
				return exporter.ToWriter(cmd.OutOrStdout(), books, f)
			}

			n, err := exporter.ToFile(cmd.Context(), books, f, out)
			if err != nil {
				return err
			}
			app.Logger().Debug().Str("format", string(f)).Str("out", out).Int("books", n).Msg("Catalog exported")
			return notify.FromCommand(cmd, app.OutputFormat()).Success(fmt.Sprintf("Exported %d books to %s.", n, out))
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Export format: "+strings.Join(iexport.Formats(), ", "))
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout; required for sqlite)")
	cmd.Flags().StringVar(&table, "table", constants.DefaultExportTable, "SQLite table name")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return iexport.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
