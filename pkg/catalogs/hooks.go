package catalogs

import "sync"

// Hook function types for catalog events
type (
	// BookAddedHook is called after an added book was flushed to disk
	BookAddedHook func(book Book)

	// BookRemovedHook is called after a removal was flushed to disk
	BookRemovedHook func(index int, book Book)
)

type hooks struct {
	mu            sync.RWMutex
	onBookAdded   []BookAddedHook
	onBookRemoved []BookRemovedHook
}

func (h *hooks) addAdded(fn BookAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBookAdded = append(h.onBookAdded, fn)
}

func (h *hooks) addRemoved(fn BookRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBookRemoved = append(h.onBookRemoved, fn)
}

func (h *hooks) bookAdded(book Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onBookAdded {
		fn(book)
	}
}

func (h *hooks) bookRemoved(index int, book Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onBookRemoved {
		fn(index, book)
	}
}
