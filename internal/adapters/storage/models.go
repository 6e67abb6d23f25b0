package storage

import "time"

// EntryModel is the GORM model for the key-value entries table
type EntryModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	Scope     string `gorm:"primaryKey;check:scope IN ('local','sync')"`
	UpdatedAt time.Time
	Value     []byte `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EntryModel) TableName() string { return "entries" }
