package catalogs

// Reader provides read-only access to catalog data.
type Reader interface {
	// List returns every book in insertion order
	List() []Book
	Len() int

	// Case-insensitive lookups
	SearchByTitle(query string) []Book
	SearchByISBN(query string) (Book, bool)
}

// Writer provides write operations for catalog data. Each call persists
// the whole catalog before returning.
type Writer interface {
	Add(book Book) error
	RemoveAt(index int) (Book, error)
}

// Catalog is the complete interface combining all catalog capabilities.
type Catalog interface {
	Reader
	Writer

	// Path returns the bound data file
	Path() string
	Info() Info

	// Reload replaces memory with the data file when it loads cleanly
	Reload() error

	// Hooks run after a mutation was written
	OnBookAdded(fn BookAddedHook)
	OnBookRemoved(fn BookRemovedHook)
}

// Ensure Store implements Catalog at compile time.
var _ Catalog = (*Store)(nil)
