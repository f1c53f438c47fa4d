// Package testutil builds storage fixtures for package tests.
package testutil

import (
	"context"
	"errors"
	"testing"

	"mobileHospital/business/store"
	"mobileHospital/internal/repository/postgres"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewKV opens a migrated in-memory SQLite kv_entries table.
func NewKV(t *testing.T) *postgres.KVRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := postgres.NewKVRepository(db)
	require.NoError(t, repo.Migrate())

	return repo
}

// NewStore returns a store over NewKV together with the raw backend so tests
// can inspect or corrupt persisted values.
func NewStore(t *testing.T) (*store.Store, *postgres.KVRepository) {
	t.Helper()

	kv := NewKV(t)
	return store.New(kv), kv
}

// PutRaw writes raw bytes under key, bypassing JSON encoding.
func PutRaw(t *testing.T, kv store.Backend, key, raw string) {
	t.Helper()
	require.NoError(t, kv.Put(context.Background(), key, []byte(raw)))
}

var ErrBackendDown = errors.New("backend down")

// FailingBackend errors on every call.
type FailingBackend struct{}

func (FailingBackend) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, ErrBackendDown
}

func (FailingBackend) Put(context.Context, string, []byte) error {
	return ErrBackendDown
}

func (FailingBackend) Delete(context.Context, string) error {
	return ErrBackendDown
}
