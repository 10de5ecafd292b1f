// Package add provides the command that appends a book to the catalog.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/notify"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/logging"
)

// NewCommand creates the add command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var book catalogs.Book

	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "core",
		Short:   "Add a book to the end of the catalog",
		Example: `  bibliotheque add --title Dune --author "Frank Herbert" --isbn 0441013597 --year 1965`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := book.Validate(); err != nil {
				return err
			}

			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "add")
			ctx = logging.WithBook(ctx, book.Title, book.ISBN)
			if err := catalog.Add(book); err != nil {
				logging.FromContext(ctx).Debug().Err(err).Msg("Add failed")
				return err
			}

			return notify.FromCommand(cmd, app.OutputFormat()).
				Success(fmt.Sprintf("Added %q.", book.Title), fmt.Sprintf("%d books in the catalog", catalog.Len()))
		},
	}

	cmd.Flags().StringVar(&book.Title, "title", "", "Book title (required)")
	cmd.Flags().StringVar(&book.Author, "author", "", "Author")
	cmd.Flags().StringVar(&book.ISBN, "isbn", "", "ISBN")
	cmd.Flags().Uint32Var(&book.PublicationYear, "year", 0, "Publication year")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
