package catalogs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

func TestEncode(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		for _, books := range [][]catalogs.Book{nil, {}} {
			data, err := catalogs.Encode(books)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(data))
		}
	})

	t.Run("field order and indentation", func(t *testing.T) {
		data, err := catalogs.Encode([]catalogs.Book{dune()})
		require.NoError(t, err)
		want := `[
  {
    "titre": "Dune",
    "auteur": "Frank Herbert",
    "isbn": "0441013597",
    "annee_publication": 1965
  }
]`
		assert.Equal(t, want, string(data))
	})

	t.Run("no html escaping", func(t *testing.T) {
		data, err := catalogs.Encode([]catalogs.Book{{Title: "Tom & Jerry <3"}})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"Tom & Jerry <3"`)
	})
}

func TestEncodeYAML(t *testing.T) {
	data, err := catalogs.EncodeYAML([]catalogs.Book{orwell()})
	require.NoError(t, err)
	assert.Contains(t, string(data), "titre:")
	assert.Contains(t, string(data), "1984")
	assert.Contains(t, string(data), "auteur: George Orwell")
	assert.Contains(t, string(data), "annee_publication: 1949")
}

func TestDecode(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		data := []byte(`[
  {"titre": "Dune", "auteur": "Frank Herbert", "isbn": "0441013597", "annee_publication": 1965, "extra": true},
  {"annee_publication": 1949, "isbn": "0451524935", "auteur": "George Orwell", "titre": "1984"}
]`)
		books, err := catalogs.Decode(data)
		require.NoError(t, err)
		if diff := cmp.Diff([]catalogs.Book{dune(), orwell()}, books); diff != "" {
			t.Errorf("Decode mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty array", func(t *testing.T) {
		books, err := catalogs.Decode([]byte(" [ ] \n"))
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	invalid := map[string]string{
		"whitespace only":   "  \n\t",
		"null":              "null",
		"object":            `{"titre":"Dune"}`,
		"scalar":            "42",
		"truncated":         `[{"titre": "Dune"`,
		"trailing garbage":  `[] []`,
		"missing field":     `[{"titre":"Dune","auteur":"Frank Herbert","isbn":"1"}]`,
		"null field":        `[{"titre":null,"auteur":"a","isbn":"1","annee_publication":1}]`,
		"null element":      `[null]`,
		"element not obj":   `["Dune"]`,
		"wrong type":        `[{"titre":1,"auteur":"a","isbn":"1","annee_publication":1}]`,
		"negative year":     `[{"titre":"t","auteur":"a","isbn":"1","annee_publication":-5}]`,
		"year overflow":     `[{"titre":"t","auteur":"a","isbn":"1","annee_publication":4294967296}]`,
		"fractional year":   `[{"titre":"t","auteur":"a","isbn":"1","annee_publication":1965.5}]`,
		"year as string":    `[{"titre":"t","auteur":"a","isbn":"1","annee_publication":"1965"}]`,
		"isbn as number":    `[{"titre":"t","auteur":"a","isbn":123,"annee_publication":1965}]`,
		"not json at all":   `titre: Dune`,
		"top level string":  `"[]"`,
		"array of arrays":   `[[]]`,
		"unterminated list": `[`,
		"duplicate title":   `[{"titre":"a","titre":"b","auteur":"a","isbn":"1","annee_publication":1}]`,
		"duplicate in 2nd":  `[{"titre":"t","auteur":"a","isbn":"1","annee_publication":1},{"titre":"t","auteur":"a","isbn":"1","isbn":"2","annee_publication":1}]`,
	}
	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := catalogs.Decode([]byte(input))
			require.Error(t, err)
			assert.True(t, errors.IsParseFailure(err), "got %v", err)
		})
	}

	t.Run("duplicate unknown field ignored", func(t *testing.T) {
		books, err := catalogs.Decode([]byte(`[{"note":1,"titre":"t","note":{"a":[1]},"auteur":"a","isbn":"1","annee_publication":1}]`))
		require.NoError(t, err)
		assert.Equal(t, "t", books[0].Title)
	})

	t.Run("duplicate field names the book", func(t *testing.T) {
		_, err := catalogs.Decode([]byte(`[{"titre":"t","auteur":"a","isbn":"1","annee_publication":1},{"titre":"t","auteur":"a","auteur":"b","isbn":"1","annee_publication":1}]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `book 1: duplicate field "auteur"`)
	})

	t.Run("max year accepted", func(t *testing.T) {
		books, err := catalogs.Decode([]byte(`[{"titre":"t","auteur":"a","isbn":"1","annee_publication":4294967295}]`))
		require.NoError(t, err)
		assert.Equal(t, uint32(4294967295), books[0].PublicationYear)
	})

	t.Run("syntax error position", func(t *testing.T) {
		_, err := catalogs.Decode([]byte("[\n  {\"titre\": }\n]"))
		var pe *errors.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 2, pe.Line)
		assert.Positive(t, pe.Column)
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	books := []catalogs.Book{
		dune(),
		{Title: "Émile, ou De l'éducation", Author: "Rousseau", ISBN: "", PublicationYear: 1762},
		{Title: `Quote "inside"`, Author: "Back\\slash", ISBN: "x", PublicationYear: 0},
	}
	data, err := catalogs.Encode(books)
	require.NoError(t, err)

	got, err := catalogs.Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(books, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBookValidate(t *testing.T) {
	assert.NoError(t, dune().Validate())

	err := catalogs.Book{Title: "  ", PublicationYear: 2000}.Validate()
	assert.True(t, errors.IsValidationError(err))

	err = catalogs.Book{Title: "Future", PublicationYear: 99999}.Validate()
	var ve *errors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "year", ve.Field)
}

func TestBookString(t *testing.T) {
	assert.Equal(t, "Dune by Frank Herbert (ISBN 0441013597, 1965)", dune().String())
}
