package catalogs

import (
	"testing"

	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/logging"
)

// TestDataPath is the data file used by NewTestStore.
const TestDataPath = "/data/bibliotheque.json"

// TestBook creates a test book with sensible defaults.
func TestBook(t testing.TB) Book {
	t.Helper()
	return Book{
		Title:           "Dune",
		Author:          "Frank Herbert",
		ISBN:            "978-0441013593",
		PublicationYear: 1965,
	}
}

// TestBooks returns two distinct books in a fixed order.
func TestBooks(t testing.TB) []Book {
	t.Helper()
	return []Book{
		TestBook(t),
		{Title: "1984", Author: "George Orwell", ISBN: "978-0451524935", PublicationYear: 1949},
	}
}

// NewTestStore creates a store over an in-memory filesystem, seeded with
// books when any are given. The filesystem is returned for assertions.
func NewTestStore(t testing.TB, books ...Book) (*Store, *storage.Afero) {
	t.Helper()

	fsys := storage.NewMemory()
	if err := fsys.MkdirAll("/data", 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if len(books) > 0 {
		if err := Save(fsys, TestDataPath, books); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	store, err := New(TestDataPath, WithFS(fsys), WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, fsys
}
