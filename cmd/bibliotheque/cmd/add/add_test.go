package add

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/cmdutil"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

func TestAdd(t *testing.T) {
	store, fsys := catalogs.NewTestStore(t)
	app := &appcontext.Mock{CatalogFunc: func() (catalogs.Catalog, error) { return store, nil }}

	res, err := cmdutil.Execute(context.Background(), NewCommand(app), "",
		"add", "--title", "Dune", "--author", "Frank Herbert", "--isbn", "0441013597", "--year", "1965")
	require.NoError(t, err)
	assert.Contains(t, res.Stderr, `Added "Dune".`)

	want := []catalogs.Book{{Title: "Dune", Author: "Frank Herbert", ISBN: "0441013597", PublicationYear: 1965}}
	assert.Equal(t, want, store.List())

	loaded, err := catalogs.Load(fsys, catalogs.TestDataPath)
	require.NoError(t, err)
	assert.Equal(t, want, loaded.Books)
}

func TestAdd_Validation(t *testing.T) {
	store, _ := catalogs.NewTestStore(t)
	app := &appcontext.Mock{CatalogFunc: func() (catalogs.Catalog, error) { return store, nil }}

	_, err := cmdutil.Execute(context.Background(), NewCommand(app), "", "add", "--author", "Nobody")
	require.Error(t, err, "title is required")

	_, err = cmdutil.Execute(context.Background(), NewCommand(app), "", "add", "--title", "Later", "--year", "99999")
	assert.True(t, errors.IsValidationError(err))

	_, err = cmdutil.Execute(context.Background(), NewCommand(app), "", "add", "--title", "Bad", "--year", "-1")
	require.Error(t, err)

	assert.Zero(t, store.Len())
}

func TestAdd_CatalogError(t *testing.T) {
	app := &appcontext.Mock{CatalogFunc: func() (catalogs.Catalog, error) {
		return nil, errors.NewConfigError("catalog", "unavailable", nil)
	}}
	_, err := cmdutil.Execute(context.Background(), NewCommand(app), "", "add", "--title", "Dune")
	assert.ErrorContains(t, err, "unavailable")
}
