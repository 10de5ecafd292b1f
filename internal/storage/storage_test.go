package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bibliotheque/internal/storage"
)

func TestReal_Exists(t *testing.T) {
	fs := storage.NewReal()
	dir := t.TempDir()

	exists, err := fs.Exists(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.False(t, exists)

	path := filepath.Join(dir, "books.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))
	exists, err = fs.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReal_WriteFileAtomic(t *testing.T) {
	fs := storage.NewReal()
	dir := t.TempDir()
	path := filepath.Join(dir, "books.json")

	t.Run("creates with perm", func(t *testing.T) {
		require.NoError(t, fs.WriteFileAtomic(path, []byte("[]"), 0600))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("replaces content", func(t *testing.T) {
		require.NoError(t, fs.WriteFileAtomic(path, []byte(`[{"a":1}]`), 0644))
		data, err := fs.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `[{"a":1}]`, string(data))
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("missing directory fails", func(t *testing.T) {
		err := fs.WriteFileAtomic(filepath.Join(dir, "nope", "books.json"), []byte("[]"), 0644)
		assert.Error(t, err)
	})
}

func TestAfero_WriteFileAtomic(t *testing.T) {
	fs := storage.NewMemory()
	require.NoError(t, fs.MkdirAll("/data", 0755))

	require.NoError(t, fs.WriteFileAtomic("/data/books.json", []byte("[]"), 0644))
	require.NoError(t, fs.WriteFileAtomic("/data/books.json", []byte("[1]"), 0644))

	data, err := fs.ReadFile("/data/books.json")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(data))

	entries, err := afero.ReadDir(fs.Fs(), "/data")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "books.json", entries[0].Name())
}

func TestAfero_ReadOnly(t *testing.T) {
	base := storage.NewMemory()
	require.NoError(t, base.WriteFileAtomic("/books.json", []byte("[]"), 0644))

	ro := storage.NewReadOnly(base)

	data, err := ro.ReadFile("/books.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	err = ro.WriteFileAtomic("/books.json", []byte("[1]"), 0644)
	require.Error(t, err)

	data, err = base.ReadFile("/books.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data), "failed write must not touch the original")
}

func TestAfero_Missing(t *testing.T) {
	fs := storage.NewMemory()

	_, err := fs.ReadFile("/missing.json")
	assert.True(t, os.IsNotExist(err))

	exists, err := fs.Exists("/missing.json")
	require.NoError(t, err)
	assert.False(t, exists)
}
