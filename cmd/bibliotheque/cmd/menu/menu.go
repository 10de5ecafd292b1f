// Package menu provides the command that opens the interactive menu.
package menu

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/globals"
	imenu "github.com/agentstation/bibliotheque/internal/menu"
	"github.com/agentstation/bibliotheque/internal/session"
)

// NewCommand creates the menu command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "core",
		Aliases: []string{"interactive", "i"},
		Short:   "Browse and edit the catalog from a numbered menu",
		Long: `Open the interactive menu. Choose an action by number:

  1) Add a book         4) List books
  2) Search by title    5) Remove a book
  3) Search by ISBN     6) Quit

Ctrl+C cancels the current prompt; Ctrl+D quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			flags := globals.Parse(cmd)
			out := cmd.OutOrStdout()

			var prompter imenu.Prompter
			if in, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(in.Fd()) {
				term := imenu.NewTerminal()
				defer func() { _ = term.Close() }()
				prompter = term
			} else {
				prompter = imenu.NewLineReader(cmd.InOrStdin(), out)
			}

			m := imenu.New(session.New(catalog), prompter, out,
				imenu.WithNoColor(flags.NoColor || !isTerminal(out)),
				imenu.WithLogger(app.Logger()),
			)
			return m.Run(cmd.Context())
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
