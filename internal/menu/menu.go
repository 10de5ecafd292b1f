// Package menu implements the interactive numbered text menu over a
// session. Input comes from a Prompter so tests can script a run.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/agentstation/bibliotheque/internal/cmd/alerts"
	"github.com/agentstation/bibliotheque/internal/cmd/emoji"
	"github.com/agentstation/bibliotheque/internal/session"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
)

// Prompter reads one line of input after showing prompt. It returns io.EOF
// or liner.ErrPromptAborted when the user ends input.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Menu choices.
const (
	ChoiceAdd         = "1"
	ChoiceSearchTitle = "2"
	ChoiceSearchISBN  = "3"
	ChoiceList        = "4"
	ChoiceRemove      = "5"
	ChoiceQuit        = "6"
	ChoiceReload      = "r"
)

// errCancelled means the user aborted a sub-prompt; the menu is shown again.
var errCancelled = errors.New("cancelled")

// Menu drives a session from line-oriented input.
type Menu struct {
	session  *session.Session
	prompter Prompter
	out      io.Writer
	logger   *zerolog.Logger
	noColor  bool
}

// Option configures a Menu.
type Option func(*Menu)

// WithNoColor disables colored banners.
func WithNoColor(noColor bool) Option {
	return func(m *Menu) {
		m.noColor = noColor
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// New creates a menu over s that reads from p and writes to out.
func New(s *session.Session, p Prompter, out io.Writer, opts ...Option) *Menu {
	nop := zerolog.Nop()
	m := &Menu{session: s, prompter: p, out: out, logger: &nop}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user quits, input ends or ctx is done.
// Operation failures are shown to the user and do not stop the loop.
func (m *Menu) Run(ctx context.Context) error {
	m.printf("Library catalog: %s (%d books)\n", m.session.Catalog().Path(), m.session.Catalog().Len())

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.printMenu()
		choice, err := m.prompter.Prompt("Choice: ")
		if err != nil {
			if isEndOfInput(err) {
				m.printf("\nGoodbye!\n")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		choice = strings.TrimSpace(choice)
		if choice == "" {
			continue
		}
		m.prompter.AppendHistory(choice)
		m.session.ClearBanner()

		var opErr error
		switch choice {
		case ChoiceAdd:
			opErr = m.add()
		case ChoiceSearchTitle:
			opErr = m.searchTitle()
		case ChoiceSearchISBN:
			opErr = m.searchISBN()
		case ChoiceList:
			m.list()
		case ChoiceRemove:
			opErr = m.remove()
		case ChoiceReload, "reload":
			opErr = m.session.Reload()
		case ChoiceQuit, "q", "quit", "exit":
			m.printf("Goodbye!\n")
			return nil
		default:
			m.session.SetBanner(alerts.NewWarning(fmt.Sprintf("Invalid choice %q, enter a number from 1 to 6.", choice)))
		}

		switch {
		case errors.Is(opErr, io.EOF):
			m.printBanner()
			m.printf("\nGoodbye!\n")
			return nil
		case errors.Is(opErr, errCancelled):
			m.session.Info("Cancelled.")
		case opErr != nil:
			m.logger.Debug().Err(opErr).Str("choice", choice).Msg("Menu operation failed")
		}
		m.printBanner()
	}
}

func (m *Menu) printMenu() {
	m.printf("\n")
	m.printf("%s) Add a book\n", ChoiceAdd)
	m.printf("%s) Search by title\n", ChoiceSearchTitle)
	m.printf("%s) Search by ISBN\n", ChoiceSearchISBN)
	m.printf("%s) List books\n", ChoiceList)
	m.printf("%s) Remove a book\n", ChoiceRemove)
	m.printf("%s) Quit\n", ChoiceQuit)
	m.printf("%s) Reload from disk\n", ChoiceReload)
}

func (m *Menu) add() error {
	m.session.SetTab(session.TabAdd)

	var d session.Draft
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Title: ", &d.Title},
		{"Author: ", &d.Author},
		{"ISBN: ", &d.ISBN},
		{"Publication year: ", &d.Year},
	}
	for _, f := range fields {
		v, err := m.ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dest = v
	}

	m.session.SetDraft(d)
	return m.session.SubmitDraft()
}

func (m *Menu) searchTitle() error {
	m.session.SetTab(session.TabSearch)
	q, err := m.ask("Title contains: ")
	if err != nil {
		return err
	}
	m.session.SetTitleQuery(q)

	results := m.session.TitleResults()
	if q == "" {
		results = m.session.Books()
	}
	if len(results) == 0 {
		m.session.Info("No results found.")
		return nil
	}
	for _, b := range results {
		m.printBook(b)
	}
	return nil
}

func (m *Menu) searchISBN() error {
	m.session.SetTab(session.TabSearch)
	q, err := m.ask("ISBN: ")
	if err != nil {
		return err
	}
	m.session.SetISBNQuery(strings.TrimSpace(q))

	b, ok := m.session.ISBNResult()
	if !ok {
		m.session.Info("No book found with that ISBN.")
		return nil
	}
	m.printBook(b)
	return nil
}

func (m *Menu) list() {
	m.session.SetTab(session.TabList)
	books := m.session.Books()
	if len(books) == 0 {
		m.session.Info("No books in the catalog.")
		return
	}
	for i, b := range books {
		m.printf("%d. %s\n", i+1, b.Title)
		m.printDetails(b)
	}
}

func (m *Menu) remove() error {
	m.list()
	if m.session.Catalog().Len() == 0 {
		return nil
	}

	answer, err := m.ask("Number of the book to remove: ")
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil {
		m.session.SetBanner(alerts.NewError(fmt.Sprintf("%q is not a number.", answer)))
		return convErr
	}

	books := m.session.Books()
	if n >= 1 && n <= len(books) {
		confirm, err := m.ask(fmt.Sprintf("Remove %q? (y/N): ", books[n-1].Title))
		if err != nil {
			return err
		}
		if c := strings.ToLower(strings.TrimSpace(confirm)); c != "y" && c != "yes" {
			return errCancelled
		}
	}

	m.session.RequestDelete(n - 1)
	_, err = m.session.ApplyPendingDelete()
	return err
}

// ask prompts for a value. Ctrl+C cancels the operation, end of input
// propagates.
func (m *Menu) ask(prompt string) (string, error) {
	v, err := m.prompter.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", errCancelled
	}
	return v, err
}

func (m *Menu) printBook(b catalogs.Book) {
	m.printf("%s %s\n", emoji.Book, b.Title)
	m.printDetails(b)
}

func (m *Menu) printDetails(b catalogs.Book) {
	m.printf("   Author: %s\n", b.Author)
	m.printf("   ISBN:   %s\n", b.ISBN)
	m.printf("   Year:   %d\n", b.PublicationYear)
}

func (m *Menu) printBanner() {
	a := m.session.Banner()
	if a == nil {
		return
	}
	c := a.Level.Color()
	if m.noColor {
		c.DisableColor()
	}
	_, _ = c.Fprintln(m.out, a.String())
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}
