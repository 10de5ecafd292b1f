package export

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/cmdutil"
	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

func newMock(t *testing.T) *appcontext.Mock {
	t.Helper()
	store, _ := catalogs.NewTestStore(t, catalogs.TestBooks(t)...)
	return &appcontext.Mock{CatalogFunc: func() (catalogs.Catalog, error) { return store, nil }}
}

func TestExport_YAMLToStdout(t *testing.T) {
	res, err := cmdutil.Execute(context.Background(), NewCommand(newMock(t)), "", "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "titre: Dune")
	assert.Contains(t, res.Stdout, "auteur: George Orwell")
}

func TestExport_JSONFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "copy.json")

	res, err := cmdutil.Execute(context.Background(), NewCommand(newMock(t)), "", "export", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, res.Stderr, "Exported 2 books")

	loaded, err := catalogs.Load(storage.NewReal(), out)
	require.NoError(t, err)
	assert.Equal(t, catalogs.TestBooks(t), loaded.Books)
}

func TestExport_SQLite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "books.db")

	_, err := cmdutil.Execute(context.Background(), NewCommand(newMock(t)), "", "export", "--format", "sqlite", "--out", out)
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", out)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM books").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestExport_Errors(t *testing.T) {
	_, err := cmdutil.Execute(context.Background(), NewCommand(newMock(t)), "", "export", "--format", "sqlite")
	assert.True(t, errors.IsValidationError(err), "sqlite needs --out")

	_, err = cmdutil.Execute(context.Background(), NewCommand(newMock(t)), "", "export", "--format", "csv")
	assert.True(t, errors.IsValidationError(err))
}

func TestExport_RefusesDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bibliotheque.json")
	fsys := storage.NewReal()
	require.NoError(t, catalogs.Save(fsys, path, catalogs.TestBooks(t)))
	store, err := catalogs.New(path, catalogs.WithFS(fsys))
	require.NoError(t, err)
	app := &appcontext.Mock{CatalogFunc: func() (catalogs.Catalog, error) { return store, nil }}

	_, err = cmdutil.Execute(context.Background(), NewCommand(app), "", "export", "--format", "yaml", "--out", path)
	assert.True(t, errors.IsValidationError(err))

	loaded, err := catalogs.Load(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, catalogs.TestBooks(t), loaded.Books)
}
