package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"gorm.io/gorm"
)

// AddMaturesAtToLocks is a migration that adds the denormalized matures_at
// column to the locks table and backfills it from creation time and duration
type AddMaturesAtToLocks struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddMaturesAtToLocks creates a new migration instance
func NewAddMaturesAtToLocks(db *gorm.DB, logger coreport.Logger) *AddMaturesAtToLocks {
	return &AddMaturesAtToLocks{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddMaturesAtToLocks) Run(ctx context.Context) error {
	m.logger.Info("Adding matures_at column to locks table", nil)

	// Check if the column already exists
	var hasMaturesAt bool
	if err := m.checkColumnExists(&hasMaturesAt); err != nil {
		return err
	}

	// Add matures_at column if it doesn't exist
	if !hasMaturesAt {
		if err := m.db.Exec(`ALTER TABLE locks ADD COLUMN matures_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP`).Error; err != nil {
			m.logger.Error("Failed to add matures_at column", map[string]any{"error": err.Error()})
			return err
		}
	}

	// Backfill from created_at and duration_seconds, including tombstones
	if err := m.db.Exec(`
		UPDATE locks
		SET matures_at = created_at + (duration_seconds * interval '1 second')
	`).Error; err != nil {
		m.logger.Error("Failed to backfill matures_at column", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Successfully added matures_at column to locks table", nil)
	return nil
}

// checkColumnExists checks if the column already exists in the table
func (m *AddMaturesAtToLocks) checkColumnExists(hasMaturesAt *bool) error {
	// For PostgreSQL
	var columns []struct {
		ColumnName string `gorm:"column:column_name"`
	}

	err := m.db.Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = 'locks' AND column_name = 'matures_at'
	`).Scan(&columns).Error

	if err != nil {
		m.logger.Error("Failed to check column existence", map[string]any{"error": err.Error()})
		return err
	}

	for _, column := range columns {
		if column.ColumnName == "matures_at" {
			*hasMaturesAt = true
		}
	}

	return nil
}
