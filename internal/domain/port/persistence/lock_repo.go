package persistence

import (
	"context"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
)

// LockRepository defines methods for lock persistence operations.
// Implementations must keep identifiers unique across the whole history of the
// store: an identifier that was ever used, even by a since-removed lock, stays
// taken forever.
type LockRepository interface {
	// Create persists a new active lock
	// Returns ErrDuplicateLock if the identifier was ever used before
	Create(ctx context.Context, lock *entity.Lock) error

	// GetByID retrieves an active lock by its identifier
	// Returns ErrLockNotFound if no active lock has this identifier
	GetByID(ctx context.Context, id entity.LockID) (*entity.Lock, error)

	// Remove deletes an active lock record while keeping its identifier reserved
	// Returns ErrLockNotFound if no active lock has this identifier
	Remove(ctx context.Context, id entity.LockID) error

	// ListByOwner retrieves all active locks owned by the given account,
	// ordered by creation time
	ListByOwner(ctx context.Context, owner string) ([]*entity.Lock, error)

	// SumActiveAmount returns the total locked amount across active locks of
	// the given asset
	SumActiveAmount(ctx context.Context, asset entity.Asset) (int64, error)

	// CountActive returns the number of active locks
	CountActive(ctx context.Context) (int64, error)

	// TotalCreated returns how many locks were ever created, including removed
	// ones. Sequential identifier derivation is seeded from it across restarts.
	TotalCreated(ctx context.Context) (uint64, error)
}
