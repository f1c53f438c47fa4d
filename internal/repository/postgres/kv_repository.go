package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mobileHospital/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository stores the shop collections as JSON documents in kv_entries.
// It works on any gorm dialector that supports ON CONFLICT (postgres, sqlite).
type KVRepository struct {
	DB *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{
		DB: db,
	}
}

func (r *KVRepository) Migrate() error {
	if err := r.DB.AutoMigrate(&domain.KVEntry{}); err != nil {
		return fmt.Errorf("failed to migrate kv entries: %w", err)
	}

	return nil
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("context error: %w", err)
	}

	var entry domain.KVEntry
	err := r.DB.WithContext(ctx).Where(&domain.KVEntry{Key: key}).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to find kv entry: %w", err)
	}

	return []byte(entry.Value), true, nil
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	now := time.Now()
	entry := domain.KVEntry{
		Key:       key,
		Value:     string(value),
		Version:   1,
		UpdatedAt: now,
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      entry.Value,
			"version":    gorm.Expr("kv_entries.version + 1"),
			"updated_at": now,
		}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert kv entry: %w", err)
	}

	return nil
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Where(&domain.KVEntry{Key: key}).Delete(&domain.KVEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete kv entry: %w", err)
	}

	return nil
}
