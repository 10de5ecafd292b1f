// Package session holds the state of one interactive front-end session:
// the active tab, the add-book draft, the search queries, the status
// banner and a pending removal. Front ends render from a Session and feed
// user actions back into it; nothing here is global.
package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/bibliotheque/internal/cmd/alerts"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

// Tab identifies the active view.
type Tab int

// Views.
const (
	TabList Tab = iota
	TabAdd
	TabSearch
)

// String returns the string representation of the tab.
func (t Tab) String() string {
	switch t {
	case TabList:
		return "list"
	case TabAdd:
		return "add"
	case TabSearch:
		return "search"
	}
	return "unknown"
}

// Draft is the add-book form as typed by the user. Year stays a string
// until submission so partial input can be edited.
type Draft struct {
	Title  string
	Author string
	ISBN   string
	Year   string
}

// Book converts the draft into a record, parsing the year.
func (d Draft) Book() (catalogs.Book, error) {
	year := uint64(0)
	if s := strings.TrimSpace(d.Year); s != "" {
		var err error
		year, err = strconv.ParseUint(s, 10, 32)
		if err != nil {
			return catalogs.Book{}, errors.WrapValidation("year",
				fmt.Errorf("%q is not a whole number between 0 and %d", s, uint64(math.MaxUint32)))
		}
	}
	return catalogs.Book{
		Title:           strings.TrimSpace(d.Title),
		Author:          strings.TrimSpace(d.Author),
		ISBN:            strings.TrimSpace(d.ISBN),
		PublicationYear: uint32(year),
	}, nil
}

// Session is the view-model of one front-end session.
type Session struct {
	catalog       catalogs.Catalog
	tab           Tab
	draft         Draft
	titleQuery    string
	isbnQuery     string
	banner        *alerts.Alert
	pendingDelete *int
}

// New creates a session over catalog, starting on the list tab.
func New(catalog catalogs.Catalog) *Session {
	s := &Session{catalog: catalog, tab: TabList}
	catalog.OnBookRemoved(s.bookRemoved)
	return s
}

// bookRemoved keeps a pending removal pointing at the same book after
// another removal shifted the catalog. A request for the removed book
// itself is dropped.
func (s *Session) bookRemoved(index int, _ catalogs.Book) {
	if s.pendingDelete == nil {
		return
	}
	switch p := *s.pendingDelete; {
	case index == p:
		s.pendingDelete = nil
	case index < p:
		p--
		s.pendingDelete = &p
	}
}

// Reload re-reads the data file and reports the outcome in the banner. A
// pending removal is dropped since positions may have changed. On failure
// the catalog keeps its current books.
func (s *Session) Reload() error {
	s.pendingDelete = nil
	if err := s.catalog.Reload(); err != nil {
		s.banner = alerts.NewError("Could not reload catalog").WithError(err)
		return err
	}
	s.banner = alerts.NewSuccess(fmt.Sprintf("Reloaded %d books from %s.", s.catalog.Len(), s.catalog.Path()))
	return nil
}

// Catalog returns the underlying catalog.
func (s *Session) Catalog() catalogs.Catalog {
	return s.catalog
}

// Tab returns the active view.
func (s *Session) Tab() Tab {
	return s.tab
}

// SetTab switches the active view.
func (s *Session) SetTab(t Tab) {
	s.tab = t
}

// Draft returns the current add-book form.
func (s *Session) Draft() Draft {
	return s.draft
}

// SetDraft replaces the add-book form.
func (s *Session) SetDraft(d Draft) {
	s.draft = d
}

// SubmitDraft validates the draft and adds it to the catalog. On success
// the draft is cleared; on failure it is kept so the user can correct it.
// The banner reflects the outcome either way.
func (s *Session) SubmitDraft() error {
	book, err := s.draft.Book()
	if err == nil {
		err = book.Validate()
	}
	if err == nil {
		err = s.catalog.Add(book)
	}
	if err != nil {
		s.banner = alerts.NewError("Could not add book").WithError(err)
		return err
	}

	s.draft = Draft{}
	s.banner = alerts.NewSuccess(fmt.Sprintf("Added %q.", book.Title))
	return nil
}

// SetTitleQuery sets the title search text.
func (s *Session) SetTitleQuery(q string) {
	s.titleQuery = q
}

// TitleQuery returns the title search text.
func (s *Session) TitleQuery() string {
	return s.titleQuery
}

// TitleResults returns matches for the title query. Nothing is shown until
// the user types something, so an empty query returns nil.
func (s *Session) TitleResults() []catalogs.Book {
	if s.titleQuery == "" {
		return nil
	}
	return s.catalog.SearchByTitle(s.titleQuery)
}

// SetISBNQuery sets the ISBN search text.
func (s *Session) SetISBNQuery(q string) {
	s.isbnQuery = q
}

// ISBNQuery returns the ISBN search text.
func (s *Session) ISBNQuery() string {
	return s.isbnQuery
}

// ISBNResult returns the match for the ISBN query, if any. An empty query
// never matches.
func (s *Session) ISBNResult() (catalogs.Book, bool) {
	if s.isbnQuery == "" {
		return catalogs.Book{}, false
	}
	return s.catalog.SearchByISBN(s.isbnQuery)
}

// Books returns the catalog in order for the list view.
func (s *Session) Books() []catalogs.Book {
	return s.catalog.List()
}

// RequestDelete marks the book at index for removal on the next Apply.
// A later request replaces an earlier one.
func (s *Session) RequestDelete(index int) {
	s.pendingDelete = &index
}

// TakePendingDelete returns the pending removal and clears it, so each
// request is seen exactly once.
func (s *Session) TakePendingDelete() (int, bool) {
	if s.pendingDelete == nil {
		return 0, false
	}
	index := *s.pendingDelete
	s.pendingDelete = nil
	return index, true
}

// ApplyPendingDelete performs the pending removal, if any, and updates the
// banner. It reports whether a removal was attempted. Out-of-range errors
// use the 1-based numbers shown in lists.
func (s *Session) ApplyPendingDelete() (bool, error) {
	index, ok := s.TakePendingDelete()
	if !ok {
		return false, nil
	}
	removed, err := s.catalog.RemoveAt(index)
	if err != nil {
		err = errors.AsNumber(err)
		s.banner = alerts.NewError("Could not remove book").WithError(err)
		return true, err
	}
	s.banner = alerts.NewSuccess(fmt.Sprintf("Removed %q.", removed.Title))
	return true, nil
}

// Banner returns the current status message, or nil.
func (s *Session) Banner() *alerts.Alert {
	return s.banner
}

// SetBanner replaces the status message.
func (s *Session) SetBanner(a *alerts.Alert) {
	s.banner = a
}

// Info sets an informational banner.
func (s *Session) Info(message string) {
	s.banner = alerts.NewInfo(message)
}

// ClearBanner removes the status message.
func (s *Session) ClearBanner() {
	s.banner = nil
}
