package custody

import (
	"context"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
)

// OwnershipRegistry is an optional external source of truth for who holds a
// lock position. When a registry is configured the ledger consults it instead
// of the recorded owner, which lets lock positions change hands out of band.
type OwnershipRegistry interface {
	// OwnerOf returns the account currently entitled to withdraw the lock
	// Returns ErrLockNotFound if the registry doesn't know the lock
	OwnerOf(ctx context.Context, id entity.LockID) (string, error)

	// UnitsOf returns how many units of the lock position the holder owns.
	// Zero means the holder has no stake in the lock.
	UnitsOf(ctx context.Context, holder string, id entity.LockID) (int64, error)
}
