package migration

import (
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Create partial index over live locks for owner listings. Withdrawn
	// locks stay in the table as tombstones but queries never touch them.
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_locks_owner_active
		ON locks (owner, created_at)
		WHERE deleted_at IS NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create partial index on locks.owner", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create partial index over live locks per asset for solvency sums
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_locks_asset_active
		ON locks (asset)
		WHERE deleted_at IS NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create partial index on locks.asset", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create partial index on maturity for sweep queries over live locks
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_locks_matures_at_active
		ON locks (matures_at)
		WHERE deleted_at IS NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create partial index on locks.matures_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create composite index for per-account journal history
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_custody_journal_account_time
		ON custody_journal_entries (account_id, created_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create account_time composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create BRIN index for journal created_at (the journal is append-only,
	// so block ranges stay perfectly correlated with time)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_custody_journal_created_at_brin
		ON custody_journal_entries USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create index on journal direction for audit filtering
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_custody_journal_direction
		ON custody_journal_entries (direction)
	`).Error; err != nil {
		m.logger.Error("Failed to create index on direction", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Set fillfactor for the custody balance table to reduce page splits,
	// every transfer rewrites two of its rows
	if err := m.db.Exec(`
		ALTER TABLE custody_balances SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for custody_balances table", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	// Set statistics target for better query planning on owner lookups
	if err := m.db.Exec(`
		ALTER TABLE locks ALTER COLUMN owner SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for owner", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
