package domain

import "time"

// CREATE TABLE public.kv_entries (
//     key         TEXT PRIMARY KEY,
//     value       TEXT NOT NULL,
//     version     BIGINT NOT NULL DEFAULT 0,
//     updated_at  TIMESTAMPTZ DEFAULT NOW()
// );

type KVEntry struct {
	Key       string    `gorm:"primaryKey;column:key;type:text"`
	Value     string    `gorm:"column:value;type:text;not null"`
	Version   int64     `gorm:"column:version;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
