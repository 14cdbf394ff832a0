package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LockRepository implements the lock store on GORM. Removal is a soft delete;
// the row and its primary key stay behind forever, which is how an identifier
// that was ever issued stays taken even after the lock is gone.
type LockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLockRepository creates a new LockRepository instance
func NewLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LockRepository {
	return &LockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a lock model to an entity
func (r *LockRepository) modelToEntity(lockModel *model.Lock) (*entity.Lock, error) {
	asset, err := entity.ParseAsset(lockModel.Asset)
	if err != nil {
		r.logger.Error("Stored lock has an unreadable asset", map[string]any{
			"lock_id": lockModel.ID,
			"asset":   lockModel.Asset,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to read lock %s: %s", errs.ErrInternalServer, lockModel.ID, err.Error())
	}

	return &entity.Lock{
		ID:              entity.LockID(lockModel.ID),
		Owner:           lockModel.Owner,
		Asset:           asset,
		Amount:          lockModel.Amount,
		CreatedAt:       lockModel.CreatedAt.UTC(),
		DurationSeconds: lockModel.DurationSeconds,
		Status:          entity.LockStatus(lockModel.Status),
		WithdrawnAt:     lockModel.WithdrawnAt,
	}, nil
}

// handleDatabaseError standardizes database error handling
func (r *LockRepository) handleDatabaseError(operation string, err error, lockID entity.LockID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"lock_id": string(lockID),
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Lock not found", map[string]any{
			"lock_id": string(lockID),
		})
		return errs.ErrLockNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Lock identifier already used", map[string]any{
			"lock_id": string(lockID),
		})
		return errs.ErrDuplicateLock
	}

	if r.errorClassifier.IsSerializationError(err) {
		return fmt.Errorf("%w: %s", errs.ErrStoreConflict, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}

// Create persists a new active lock. The insert collides with any row that
// ever carried the same identifier, including soft-deleted ones, so a burned
// identifier surfaces as ErrDuplicateLock.
func (r *LockRepository) Create(ctx context.Context, lock *entity.Lock) error {
	r.logger.Debug("Creating lock", map[string]any{
		"lock_id": string(lock.ID),
		"owner":   lock.Owner,
	})

	lockModel := model.Lock{
		ID:              string(lock.ID),
		Owner:           lock.Owner,
		Asset:           lock.Asset.String(),
		Amount:          lock.Amount,
		CreatedAt:       lock.CreatedAt,
		DurationSeconds: lock.DurationSeconds,
		MaturesAt:       lock.MaturesAt(),
		Status:          string(lock.Status),
		WithdrawnAt:     lock.WithdrawnAt,
		UpdatedAt:       r.timeProvider.Now(),
	}

	result := r.db.WithContext(ctx).Create(&lockModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating lock", result.Error, lock.ID)
	}

	r.logger.Info("Lock persisted", map[string]any{
		"lock_id": string(lock.ID),
		"owner":   lock.Owner,
		"asset":   lock.Asset.String(),
		"amount":  lock.Amount,
	})
	return nil
}

// GetByID retrieves an active lock by its identifier
func (r *LockRepository) GetByID(ctx context.Context, id entity.LockID) (*entity.Lock, error) {
	var lockModel model.Lock
	result := r.db.WithContext(ctx).First(&lockModel, "id = ?", string(id))
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting lock", result.Error, id)
	}

	return r.modelToEntity(&lockModel)
}

// Remove soft deletes an active lock. The identifier stays reserved by the
// dead row's primary key.
func (r *LockRepository) Remove(ctx context.Context, id entity.LockID) error {
	result := r.db.WithContext(ctx).Delete(&model.Lock{}, "id = ?", string(id))
	if result.Error != nil {
		return r.handleDatabaseError("removing lock", result.Error, id)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Lock not found during removal", map[string]any{
			"lock_id": string(id),
		})
		return errs.ErrLockNotFound
	}

	r.logger.Info("Lock removed", map[string]any{
		"lock_id": string(id),
	})
	return nil
}

// ListByOwner retrieves all active locks owned by the given account, ordered
// by creation time
func (r *LockRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Lock, error) {
	var lockModels []model.Lock
	result := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at ASC, id ASC").
		Find(&lockModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing locks", result.Error, "")
	}

	locks := make([]*entity.Lock, 0, len(lockModels))
	for i := range lockModels {
		lock, err := r.modelToEntity(&lockModels[i])
		if err != nil {
			return nil, err
		}
		locks = append(locks, lock)
	}

	return locks, nil
}

// SumActiveAmount returns the total locked amount across active locks of the
// given asset
func (r *LockRepository) SumActiveAmount(ctx context.Context, asset entity.Asset) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).
		Model(&model.Lock{}).
		Where("asset = ?", asset.String()).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing locked amounts", result.Error, "")
	}

	return total, nil
}

// CountActive returns the number of active locks
func (r *LockRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Lock{}).Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting locks", result.Error, "")
	}

	return count, nil
}

// TotalCreated returns how many locks were ever created, including removed
// ones. Soft-deleted rows are counted, which is what lets sequential
// identifier derivation resume past every identifier ever issued.
func (r *LockRepository) TotalCreated(ctx context.Context) (uint64, error) {
	var count int64
	result := r.db.WithContext(ctx).Unscoped().Model(&model.Lock{}).Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting created locks", result.Error, "")
	}

	return uint64(count), nil
}
