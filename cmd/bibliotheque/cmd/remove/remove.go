// Package remove provides the command that deletes a book by position.
package remove

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/notify"
	"github.com/agentstation/bibliotheque/pkg/errors"
	"github.com/agentstation/bibliotheque/pkg/logging"
)

// NewCommand creates the remove command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <number>",
		GroupID: "core",
		Aliases: []string{"rm"},
		Short:   "Remove the book at a position shown by list",
		Long: `Remove the book at the given position. Positions start at 1, as printed
by "bibliotheque list". Later books move up by one.`,
		Example: `  bibliotheque remove 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("number", args[0], "must be a whole number")
			}

			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "remove")
			book, err := catalog.RemoveAt(n - 1)
			if err != nil {
				logging.FromContext(ctx).Debug().Err(err).Int("number", n).Msg("Remove failed")
				return errors.AsNumber(err)
			}

			return notify.FromCommand(cmd, app.OutputFormat()).Success(fmt.Sprintf("Removed %q.", book.Title))
		},
	}
}
