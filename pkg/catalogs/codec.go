package catalogs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/bibliotheque/pkg/constants"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

// Field names used by the data file, in serialization order.
const (
	fieldTitle  = "titre"
	fieldAuthor = "auteur"
	fieldISBN   = "isbn"
	fieldYear   = "annee_publication"
)

var requiredFields = []string{fieldTitle, fieldAuthor, fieldISBN, fieldYear}

// Encode renders books as a pretty-printed JSON array with two-space
// indentation. An empty catalog renders as [].
func Encode(books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	if err := enc.Encode(books); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodeYAML renders books as a YAML sequence using the data file field names.
func EncodeYAML(books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}
	return yaml.Marshal(books)
}

// Decode parses the data file format. The top level must be an array and
// every element must carry all four fields exactly once with the right
// types. Unknown fields are ignored. Failures are *errors.ParseError.
func Decode(data []byte) ([]Book, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &errors.ParseError{Format: "json", Message: "unexpected end of input"}
	}
	if trimmed[0] != '[' {
		return nil, &errors.ParseError{Format: "json", Message: "expected a JSON array of books"}
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, syntaxError(data, err)
	}
	if err := duplicateField(data); err != nil {
		return nil, &errors.ParseError{Format: "json", Message: err.Error(), Err: err}
	}

	books := make([]Book, 0, len(raw))
	for i, obj := range raw {
		if obj == nil {
			return nil, &errors.ParseError{Format: "json", Message: fmt.Sprintf("book %d: expected an object", i)}
		}
		book, err := decodeBook(obj)
		if err != nil {
			return nil, &errors.ParseError{Format: "json", Message: fmt.Sprintf("book %d: %v", i, err), Err: err}
		}
		books = append(books, book)
	}
	return books, nil
}

func decodeBook(obj map[string]json.RawMessage) (Book, error) {
	for _, field := range requiredFields {
		v, ok := obj[field]
		if !ok {
			return Book{}, fmt.Errorf("missing field %q", field)
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return Book{}, fmt.Errorf("field %q is null", field)
		}
	}

	var b Book
	targets := map[string]any{
		fieldTitle:  &b.Title,
		fieldAuthor: &b.Author,
		fieldISBN:   &b.ISBN,
		fieldYear:   &b.PublicationYear,
	}
	for _, field := range requiredFields {
		if err := json.Unmarshal(obj[field], targets[field]); err != nil {
			return Book{}, fmt.Errorf("field %q: %w", field, err)
		}
	}
	return b, nil
}

// duplicateField reports the first book that repeats one of the data file
// fields. data must already be a valid array of objects. Repeated unknown
// fields are ignored like any unknown field.
func duplicateField(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	for i := 0; dec.More(); i++ {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if tok != json.Delim('{') {
			continue
		}
		seen := make(map[string]bool, len(requiredFields))
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)
			if seen[key] && slices.Contains(requiredFields, key) {
				return fmt.Errorf("book %d: duplicate field %q", i, key)
			}
			seen[key] = true

			var value json.RawMessage
			if err := dec.Decode(&value); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
	}
	return nil
}

// syntaxError converts a decoding error into a ParseError with a position
// when one is available.
func syntaxError(data []byte, err error) error {
	pe := &errors.ParseError{Format: "json", Message: err.Error(), Err: err}

	var offset int64 = -1
	var se *json.SyntaxError
	var te *json.UnmarshalTypeError
	switch {
	case errors.As(err, &se):
		offset = se.Offset
	case errors.As(err, &te):
		offset = te.Offset
	}
	if offset > 0 && offset <= int64(len(data)) {
		pe.Line, pe.Column = position(data[:offset])
	}
	return pe
}

func position(prefix []byte) (line, col int) {
	line = 1 + bytes.Count(prefix, []byte("\n"))
	col = len(prefix) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
