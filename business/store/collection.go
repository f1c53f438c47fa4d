package store

import (
	"context"
	"sync"
)

// Collection is the in-memory cache of one persisted slice. Every successful
// Mutate is followed by a full save of the slice before it returns.
type Collection[T any] struct {
	mu    sync.RWMutex
	store *Store
	key   string
	items []T
	idOf  func(T) string
}

func NewCollection[T any](ctx context.Context, s *Store, key string, def []T, idOf func(T) string) *Collection[T] {
	items := Load(ctx, s, key, def)
	return &Collection[T]{
		store: s,
		key:   key,
		items: items,
		idOf:  idOf,
	}
}

// All returns a copy in stored order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Mutate hands fn a copy of the items. If fn returns an error nothing changes;
// otherwise the returned slice becomes the collection and is saved.
// Save failures are logged by the store and do not roll back the change.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	working := make([]T, len(c.items))
	copy(working, c.items)

	next, err := fn(working)
	if err != nil {
		return err
	}

	c.items = next
	_ = Save(ctx, c.store, c.key, c.items)
	return nil
}

// IndexOf is a helper for Mutate callbacks.
func (c *Collection[T]) IndexOf(items []T, id string) int {
	for i, item := range items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}
