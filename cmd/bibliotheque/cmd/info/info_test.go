package info

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bibliotheque/internal/appcontext"
	"github.com/agentstation/bibliotheque/internal/cmd/cmdutil"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
)

func TestInfo_JSON(t *testing.T) {
	store, _ := catalogs.NewTestStore(t, catalogs.TestBooks(t)...)
	app := &appcontext.Mock{
		CatalogFunc:      func() (catalogs.Catalog, error) { return store, nil },
		OutputFormatFunc: func() string { return "json" },
	}

	res, err := cmdutil.Execute(context.Background(), NewCommand(app), "", "info")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &got))
	assert.Equal(t, catalogs.TestDataPath, got["path"])
	assert.EqualValues(t, 2, got["count"])
	assert.Equal(t, "ok", got["load_status"])
}

func TestInfo_Table(t *testing.T) {
	store, _ := catalogs.NewTestStore(t)
	app := &appcontext.Mock{CatalogFunc: func() (catalogs.Catalog, error) { return store, nil }}

	res, err := cmdutil.Execute(context.Background(), NewCommand(app), "", "info")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, catalogs.TestDataPath)
	assert.Contains(t, res.Stdout, "not-found")
}
