package repository

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
)

// MemoryLockRepository implements the lock store in process memory. It backs
// the "memory" storage mode and the unit tests. Removed identifiers are kept
// in a tombstone set so they stay taken forever, same as the dead rows the
// database store leaves behind.
type MemoryLockRepository struct {
	logger coreport.Logger

	mu      sync.RWMutex
	locks   map[entity.LockID]*entity.Lock
	burned  map[entity.LockID]struct{}
	created uint64
}

// NewMemoryLockRepository creates an empty in-memory lock store
func NewMemoryLockRepository(logger coreport.Logger) *MemoryLockRepository {
	return &MemoryLockRepository{
		logger: logger,
		locks:  make(map[entity.LockID]*entity.Lock),
		burned: make(map[entity.LockID]struct{}),
	}
}

// Create persists a new active lock. Identifiers that were ever used, even by
// locks removed since, are rejected as duplicates.
func (r *MemoryLockRepository) Create(ctx context.Context, lock *entity.Lock) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, used := r.burned[lock.ID]; used {
		r.logger.Warn("Lock identifier already used", map[string]any{
			"lock_id": string(lock.ID),
		})
		return errs.ErrDuplicateLock
	}

	r.locks[lock.ID] = lock.Clone()
	r.burned[lock.ID] = struct{}{}
	r.created++

	return nil
}

// GetByID retrieves an active lock by its identifier
func (r *MemoryLockRepository) GetByID(ctx context.Context, id entity.LockID) (*entity.Lock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lock, ok := r.locks[id]
	if !ok {
		return nil, errs.ErrLockNotFound
	}

	return lock.Clone(), nil
}

// Remove deletes an active lock. Its identifier stays in the tombstone set.
func (r *MemoryLockRepository) Remove(ctx context.Context, id entity.LockID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locks[id]; !ok {
		return errs.ErrLockNotFound
	}

	delete(r.locks, id)
	return nil
}

// ListByOwner retrieves all active locks owned by the given account, ordered
// by creation time
func (r *MemoryLockRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Lock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	locks := make([]*entity.Lock, 0)
	for _, lock := range r.locks {
		if lock.Owner == owner {
			locks = append(locks, lock.Clone())
		}
	}

	sort.Slice(locks, func(i, j int) bool {
		if !locks[i].CreatedAt.Equal(locks[j].CreatedAt) {
			return locks[i].CreatedAt.Before(locks[j].CreatedAt)
		}
		return locks[i].ID < locks[j].ID
	})

	return locks, nil
}

// SumActiveAmount returns the total locked amount across active locks of the
// given asset
func (r *MemoryLockRepository) SumActiveAmount(ctx context.Context, asset entity.Asset) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, lock := range r.locks {
		if lock.Asset != asset {
			continue
		}
		if total > math.MaxInt64-lock.Amount {
			return 0, errs.ErrAmountOverflow
		}
		total += lock.Amount
	}

	return total, nil
}

// CountActive returns the number of active locks
func (r *MemoryLockRepository) CountActive(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.locks)), nil
}

// TotalCreated returns how many locks were ever created, including removed ones
func (r *MemoryLockRepository) TotalCreated(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.created, nil
}
