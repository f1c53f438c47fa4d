// Package store keeps named JSON values in a durable key-value backend. Reads
// fall back to a caller supplied default, writes are best effort: failures are
// logged and counted, never fatal.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"mobileHospital/domain"
	"mobileHospital/pkg/logger"
	"mobileHospital/pkg/metrics"
)

// Storage keys. Kept identical to the browser layout so exported data can be
// imported as is.
const (
	KeyProducts    = "shop_products"
	KeyBanners     = "shop_banners"
	KeyUsers       = "shop_users"
	KeyShopInfo    = "shop_info"
	KeyCurrentUser = "shop_current_user"
)

// Backend contract implemented by the gorm and redis repositories.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Store struct {
	backend Backend
	healthy atomic.Bool
}

func New(backend Backend) *Store {
	s := &Store{backend: backend}
	s.healthy.Store(true)
	return s
}

// Healthy reports whether the last write reached the backend.
func (s *Store) Healthy() bool {
	return s.healthy.Load()
}

// Load reads key into a T. A missing key, a JSON null, a backend error or a
// value that does not decode all yield def.
func Load[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		logger.Error("failed to read from store, using default", "key", key, "error", err)
		metrics.StorageFailures.WithLabelValues("load").Inc()
		return def
	}

	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		logger.Debug("key not found in store, using default", "key", key)
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("corrupt value in store, using default", "key", key, "error", err)
		metrics.StorageFailures.WithLabelValues("load").Inc()
		return def
	}

	return value
}

// Save writes value under key. The returned error wraps domain.ErrStorage and
// has already been logged.
func Save[T any](ctx context.Context, s *Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return s.fail("save", key, err)
	}

	if err := s.backend.Put(ctx, key, raw); err != nil {
		return s.fail("save", key, err)
	}

	s.healthy.Store(true)
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		return s.fail("remove", key, err)
	}

	s.healthy.Store(true)
	return nil
}

func (s *Store) fail(op, key string, err error) error {
	logger.Error("failed to write to store, keeping change in memory only", "op", op, "key", key, "error", err)
	metrics.StorageFailures.WithLabelValues(op).Inc()
	s.healthy.Store(false)
	return fmt.Errorf("%w: %s %s: %v", domain.ErrStorage, op, key, err)
}
