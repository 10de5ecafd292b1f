// Package table converts catalog data into rows for tabular CLI output.
package table

import (
	"strconv"
	"unicode/utf8"

	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/constants"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// maxCellWidth bounds text columns in the narrow table.
const maxCellWidth = 40

// BooksToTableData converts books to table rows. The first column is the
// 1-based position used by the remove command: positions[i] is the catalog
// index of books[i], and a nil positions numbers the books in order. Wide
// output keeps long titles and authors intact.
func BooksToTableData(books []catalogs.Book, positions []int, wide bool) Data {
	rows := make([][]string, 0, len(books))
	for i, b := range books {
		index := i
		if positions != nil {
			index = positions[i]
		}
		title, author := b.Title, b.Author
		if !wide {
			title = Truncate(title, maxCellWidth)
			author = Truncate(author, maxCellWidth)
		}
		rows = append(rows, []string{
			strconv.Itoa(index + 1),
			orDash(title),
			orDash(author),
			orDash(b.ISBN),
			strconv.FormatUint(uint64(b.PublicationYear), 10),
		})
	}

	return Data{
		Headers:         []string{"#", "Title", "Author", "ISBN", "Year"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}
}

// InfoToTableData renders store information as key/value rows.
func InfoToTableData(info catalogs.Info) Data {
	lastFlush := "-"
	if !info.LastFlush.IsZero() {
		lastFlush = info.LastFlush.Format(constants.TimeFormatHuman)
	}
	rows := [][]string{
		{"Path", info.Path},
		{"Books", strconv.Itoa(info.Count)},
		{"Load status", info.LoadStatus.String()},
		{"Last save", lastFlush},
	}
	if info.LoadError != "" {
		rows = append(rows, []string{"Load error", info.LoadError})
	}
	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// Truncate shortens s to at most n runes, ending with "..." when cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 3 {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
