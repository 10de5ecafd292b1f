// Package search provides commands that look books up by title or ISBN.
package search

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/notify"
	"github.com/agentstation/bibliotheque/internal/cmd/output"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

// NewCommand creates the search command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search",
		GroupID: "core",
		Aliases: []string{"find"},
		Short:   "Search the catalog by title or ISBN",
		Example: `  bibliotheque search title dune          # Case-insensitive substring
  bibliotheque search isbn 0441013597     # Exact match, case-insensitive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newTitleCommand(app))
	cmd.AddCommand(newISBNCommand(app))

	return cmd
}

func newTitleCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "title [query]",
		Short: "List books whose title contains the query",
		Long: `List books whose title contains the query, ignoring case.
An empty or missing query lists every book.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			query := strings.Join(args, "")
			books, positions := match(catalog.List(), func(b catalogs.Book) bool {
				return b.MatchesTitle(query)
			}, false)
			format := output.Format(app.OutputFormat())
			if len(books) == 0 && (format == output.FormatTable || format == output.FormatWide) {
				return notify.FromCommand(cmd, string(format)).Info("No results found.")
			}
			return output.FormatMatches(cmd.OutOrStdout(), books, positions, format)
		},
	}
}

func newISBNCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "isbn <isbn>",
		Short: "Show the first book with the given ISBN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			books, positions := match(catalog.List(), func(b catalogs.Book) bool {
				return b.MatchesISBN(args[0])
			}, true)
			if len(books) == 0 {
				return errors.NewNotFoundError("book", "isbn "+args[0])
			}
			return output.FormatMatches(cmd.OutOrStdout(), books, positions, output.Format(app.OutputFormat()))
		},
	}
}

// match returns the books accepted by keep, in catalog order, with their
// catalog indexes. With first set it stops at the first match.
func match(books []catalogs.Book, keep func(catalogs.Book) bool, first bool) ([]catalogs.Book, []int) {
	var (
		matched   []catalogs.Book
		positions []int
	)
	for i, b := range books {
		if !keep(b) {
			continue
		}
		matched = append(matched, b)
		positions = append(positions, i)
		if first {
			break
		}
	}
	return matched, positions
}
