package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"gorm.io/gorm"
)

// RunSerializable executes fn inside a database transaction at SERIALIZABLE
// isolation. Custody balance movements run through here; anything weaker lets
// two concurrent transfers read the same balance row and both spend it.
func RunSerializable(ctx context.Context, db *gorm.DB, logger coreport.Logger, fn func(tx *gorm.DB) error) error {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
		rollback(tx, logger)
		logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to set transaction isolation level: %w", err)
	}

	if err := fn(tx); err != nil {
		rollback(tx, logger)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// rollback undoes a transaction, tolerating one that already finished
func rollback(tx *gorm.DB, logger coreport.Logger) {
	err := tx.Rollback().Error
	if err == nil {
		return
	}

	if strings.Contains(err.Error(), "already been committed or rolled back") {
		logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return
	}

	logger.Error("Failed to rollback transaction", map[string]any{
		"error": err.Error(),
	})
}
