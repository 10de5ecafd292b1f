package output

import (
	"io"

	"github.com/agentstation/bibliotheque/internal/cmd/table"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
)

// FormatBooks writes books as a table or as structured data. Structured
// formats use the data file field names.
func FormatBooks(w io.Writer, books []catalogs.Book, format Format) error {
	return FormatMatches(w, books, nil, format)
}

// FormatMatches is FormatBooks for a subset of the catalog. positions holds
// the catalog index of each book so table rows show the numbers accepted by
// remove.
func FormatMatches(w io.Writer, books []catalogs.Book, positions []int, format Format) error {
	if books == nil {
		books = []catalogs.Book{}
	}
	var data any = books
	switch format {
	case FormatTable, FormatWide, "":
		data = table.BooksToTableData(books, positions, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatInfo writes store information.
func FormatInfo(w io.Writer, info catalogs.Info, format Format) error {
	var data any = info
	switch format {
	case FormatTable, FormatWide, "":
		data = table.InfoToTableData(info)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatAny writes arbitrary data in the given format.
func FormatAny(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}
