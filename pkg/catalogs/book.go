package catalogs

import (
	"fmt"
	"strings"

	"github.com/agentstation/utc"

	"github.com/agentstation/bibliotheque/pkg/constants"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

// Book is a single catalog record. Records have no identity beyond their
// position in the catalog; duplicates are allowed.
type Book struct {
	Title           string `json:"titre" yaml:"titre"`                         // Book title
	Author          string `json:"auteur" yaml:"auteur"`                       // Author name
	ISBN            string `json:"isbn" yaml:"isbn"`                           // Opaque identifier, never validated
	PublicationYear uint32 `json:"annee_publication" yaml:"annee_publication"` // Year of publication
}

// String renders the book on one line.
func (b Book) String() string {
	return fmt.Sprintf("%s by %s (ISBN %s, %d)", b.Title, b.Author, b.ISBN, b.PublicationYear)
}

// Validate checks a record before a front end hands it to the store.
// The store itself accepts any record.
func (b Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.NewValidationError("title", b.Title, "title is required")
	}
	maxYear := uint32(utc.Now().Year() + constants.MaxFutureYears)
	if b.PublicationYear > maxYear {
		return errors.NewValidationError("year", b.PublicationYear,
			fmt.Sprintf("publication year %d is after %d", b.PublicationYear, maxYear))
	}
	return nil
}

// MatchesTitle reports whether the title contains query, ignoring case.
// An empty query matches every book.
func (b Book) MatchesTitle(query string) bool {
	return strings.Contains(strings.ToLower(b.Title), strings.ToLower(query))
}

// MatchesISBN reports whether the ISBN equals query, ignoring case.
func (b Book) MatchesISBN(query string) bool {
	return strings.ToLower(b.ISBN) == strings.ToLower(query)
}
