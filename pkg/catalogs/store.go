package catalogs

import (
	"slices"
	"sync"

	"github.com/agentstation/utc"

	"github.com/agentstation/bibliotheque/pkg/errors"
)

// Store is an ordered catalog of books bound to a data file. Every
// successful mutation is followed by a full rewrite of the file; when the
// rewrite fails the mutation is undone so memory always matches disk.
//
// A Store is safe for use by multiple goroutines. Two processes sharing a
// data file are not detected and the last writer wins.
type Store struct {
	mu        sync.RWMutex
	path      string
	books     []Book
	options   *options
	hooks     hooks
	loaded    LoadResult
	loadErr   error
	lastFlush utc.Time
}

// Info summarizes a store.
type Info struct {
	Path       string     `json:"path" yaml:"path"`
	Count      int        `json:"count" yaml:"count"`
	LastFlush  utc.Time   `json:"last_flush" yaml:"last_flush"`
	LoadStatus LoadStatus `json:"load_status" yaml:"load_status"`
	LoadError  string     `json:"load_error,omitempty" yaml:"load_error,omitempty"`
}

// New creates a store bound to path and loads it. A missing file yields an
// empty catalog and is not created until the first mutation. Unreadable or
// malformed files also yield an empty catalog unless WithStrictLoad is set.
func New(path string, opts ...Option) (*Store, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	s := &Store{path: path, options: o, books: []Book{}}

	result, err := Load(o.fs, path)
	if err != nil {
		if o.strict {
			return nil, err
		}
		o.logger.Warn().Err(err).Str("path", path).Msg("Could not load catalog, starting empty")
		s.loaded = LoadResult{Status: LoadFailed, Books: []Book{}}
		s.loadErr = err
		return s, nil
	}

	s.loaded = result
	s.books = result.Books
	o.logger.Debug().
		Str("path", path).
		Str("status", result.Status.String()).
		Int("count", len(result.Books)).
		Msg("Catalog loaded")
	return s, nil
}

// Path returns the bound data file path.
func (s *Store) Path() string {
	return s.path
}

// LoadResult returns the outcome of the most recent load and the error that
// was swallowed, if any.
func (s *Store) LoadResult() (LoadResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return LoadResult{Status: s.loaded.Status, Books: slices.Clone(s.loaded.Books)}, s.loadErr
}

// Reload re-reads the data file. Memory is replaced only when the load succeeds.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := Load(s.options.fs, s.path)
	if err != nil {
		return err
	}
	s.loaded = result
	s.loadErr = nil
	s.books = result.Books
	return nil
}

// Add appends book and rewrites the data file.
func (s *Store) Add(book Book) error {
	s.mu.Lock()
	s.books = append(s.books, book)
	if err := s.flushLocked(); err != nil {
		s.books = s.books[:len(s.books)-1]
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.hooks.bookAdded(book)
	return nil
}

// RemoveAt deletes the book at index, shifting later books down, rewrites
// the data file and returns the removed book. An index outside [0, Len())
// returns an *errors.IndexError and writes nothing.
func (s *Store) RemoveAt(index int) (Book, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.books) {
		n := len(s.books)
		s.mu.Unlock()
		return Book{}, errors.NewIndexError(index, n)
	}

	removed := s.books[index]
	previous := s.books
	s.books = slices.Delete(slices.Clone(previous), index, index+1)
	if err := s.flushLocked(); err != nil {
		s.books = previous
		s.mu.Unlock()
		return Book{}, err
	}
	s.mu.Unlock()

	s.hooks.bookRemoved(index, removed)
	return removed, nil
}

// SearchByTitle returns, in catalog order, every book whose title contains
// query ignoring case. An empty query matches every book.
func (s *Store) SearchByTitle(query string) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []Book{}
	for _, b := range s.books {
		if b.MatchesTitle(query) {
			results = append(results, b)
		}
	}
	return results
}

// SearchByISBN returns the first book whose ISBN equals query ignoring case.
func (s *Store) SearchByISBN(query string) (Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.MatchesISBN(query) {
			return b, true
		}
	}
	return Book{}, false
}

// List returns a copy of the catalog in insertion order.
func (s *Store) List() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.books)
}

// Len returns the number of books.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// Info returns a summary of the store.
func (s *Store) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := Info{
		Path:       s.path,
		Count:      len(s.books),
		LastFlush:  s.lastFlush,
		LoadStatus: s.loaded.Status,
	}
	if s.loadErr != nil {
		info.LoadError = s.loadErr.Error()
	}
	return info
}

// OnBookAdded registers a callback run after each successful Add.
func (s *Store) OnBookAdded(fn BookAddedHook) {
	s.hooks.addAdded(fn)
}

// OnBookRemoved registers a callback run after each successful RemoveAt.
func (s *Store) OnBookRemoved(fn BookRemovedHook) {
	s.hooks.addRemoved(fn)
}

// flushLocked writes the whole catalog. Callers hold s.mu.
func (s *Store) flushLocked() error {
	if err := Save(s.options.fs, s.path, s.books); err != nil {
		s.options.logger.Error().Err(err).Str("path", s.path).Msg("Failed to save catalog")
		return err
	}
	s.lastFlush = utc.Now()
	s.options.logger.Debug().Str("path", s.path).Int("count", len(s.books)).Msg("Catalog saved")
	return nil
}
