package schema

import "time"

// SchemaMigration represents the schema_migrations table - one row per executed migration file
type SchemaMigration struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Filename is the migration file name, e.g. 003_allocations.sql
	Filename string `gorm:"column:filename;not null;type:text;uniqueIndex" json:"filename"`
	// Version is the ordinal parsed from the filename prefix
	Version int `gorm:"column:version;not null" json:"version"`
	// ExecutedAt is the timestamp when the migration was applied
	ExecutedAt time.Time `gorm:"column:executed_at;not null;default:now();type:timestamptz" json:"executed_at"`
}

// TableName specifies the table name for the SchemaMigration model
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}
