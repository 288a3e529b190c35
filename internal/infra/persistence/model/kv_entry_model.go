package model

import "time"

// KVEntryModel is the GORM-specific struct for the 'kv_entries' table.
// Each row holds one JSON-encoded blob of application state.
type KVEntryModel struct {
	Key       string `gorm:"column:entry_key;type:varchar(128);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KVEntryModel) TableName() string {
	return "kv_entries"
}
