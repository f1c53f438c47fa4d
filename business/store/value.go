package store

import (
	"context"
	"sync"
)

// Value is the in-memory cache of a single persisted record, optionally
// absent.
type Value[T any] struct {
	mu      sync.RWMutex
	store   *Store
	key     string
	value   T
	present bool
}

// NewValue loads key. With def == nil an absent key leaves the value unset.
func NewValue[T any](ctx context.Context, s *Store, key string, def *T) *Value[T] {
	v := &Value[T]{store: s, key: key}

	loaded := Load[*T](ctx, s, key, def)
	if loaded != nil {
		v.value = *loaded
		v.present = true
	}

	return v
}

func (v *Value[T]) Get() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.present
}

// Set replaces the value and saves it.
func (v *Value[T]) Set(ctx context.Context, value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.value = value
	v.present = true
	_ = Save(ctx, v.store, v.key, value)
}

// Clear drops the value and removes the key from the backend.
func (v *Value[T]) Clear(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T
	v.value = zero
	v.present = false
	_ = v.store.Remove(ctx, v.key)
}
