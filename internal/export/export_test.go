package export

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"sqlite3", FormatSQLite, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToFile_JSONRoundTrip(t *testing.T) {
	fsys := storage.NewMemory()
	books := catalogs.TestBooks(t)

	n, err := New(WithFS(fsys)).ToFile(context.Background(), books, FormatJSON, "/out/books.json")
	require.NoError(t, err)
	assert.Equal(t, len(books), n)

	res, err := catalogs.Load(fsys, "/out/books.json")
	require.NoError(t, err)
	if diff := cmp.Diff(books, res.Books); diff != "" {
		t.Errorf("exported books mismatch (-want +got):\n%s", diff)
	}
}

func TestToWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := New().ToWriter(&buf, catalogs.TestBooks(t), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "titre: Dune")
	assert.Contains(t, buf.String(), "annee_publication: 1965")
}

func TestToWriter_SQLiteRejected(t *testing.T) {
	err := New().ToWriter(&bytes.Buffer{}, nil, FormatSQLite)
	assert.True(t, errors.IsValidationError(err))
}

func TestToFile_RequiresPath(t *testing.T) {
	_, err := New().ToFile(context.Background(), nil, FormatJSON, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestToFile_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")
	books := catalogs.TestBooks(t)
	e := New(WithTable("library"))

	n, err := e.ToFile(context.Background(), books, FormatSQLite, path)
	require.NoError(t, err)
	assert.Equal(t, len(books), n)

	// A second export replaces the table rather than appending.
	_, err = e.ToFile(context.Background(), books[:1], FormatSQLite, path)
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "library"`).Scan(&count))
	assert.Equal(t, 1, count)

	var title string
	var year int
	require.NoError(t, db.QueryRow(`SELECT title, publication_year FROM "library" WHERE position = 0`).Scan(&title, &year))
	assert.Equal(t, books[0].Title, title)
	assert.Equal(t, int(books[0].PublicationYear), year)
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"books"`, quoteIdent("books"))
	assert.Equal(t, `"a""b"`, quoteIdent(`a"b`))
}

func TestToFile_ProtectedPath(t *testing.T) {
	fsys := storage.NewMemory()
	require.NoError(t, fsys.MkdirAll("/data", 0o755))
	books := catalogs.TestBooks(t)
	require.NoError(t, catalogs.Save(fsys, "/data/books.json", books))
	before, err := fsys.ReadFile("/data/books.json")
	require.NoError(t, err)

	e := New(WithFS(fsys), WithProtectedPath("/data/books.json"))

	for _, f := range []Format{FormatYAML, FormatSQLite} {
		_, err := e.ToFile(context.Background(), books, f, "/data/../data/books.json")
		assert.True(t, errors.IsValidationError(err), "format %s", f)
	}
	after, err := fsys.ReadFile("/data/books.json")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	n, err := e.ToFile(context.Background(), books, FormatJSON, "/data/books.json")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = e.ToFile(context.Background(), books, FormatYAML, "/data/copy.yaml")
	assert.NoError(t, err)
}
