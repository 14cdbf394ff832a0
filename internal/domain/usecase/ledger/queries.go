package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
)

// GetLock retrieves the active lock with the given identifier
func (s *Service) GetLock(ctx context.Context, id entity.LockID) (*entity.Lock, error) {
	if id == "" {
		return nil, errs.ErrInvalidLockID
	}
	return s.store.GetByID(ctx, id)
}

// GetBalance returns the current vested value of an active lock: the full
// amount at or after maturity, a truncating linear interpolation before it.
// The underlying locked amount never changes; only the claimable share grows.
func (s *Service) GetBalance(ctx context.Context, id entity.LockID) (int64, error) {
	lock, err := s.GetLock(ctx, id)
	if err != nil {
		return 0, err
	}
	return lock.VestedValueAt(s.timeProvider.Now()), nil
}

// GetAsset returns what asset an active lock holds
func (s *Service) GetAsset(ctx context.Context, id entity.LockID) (entity.Asset, error) {
	lock, err := s.GetLock(ctx, id)
	if err != nil {
		return entity.Asset{}, err
	}
	return lock.Asset, nil
}

// GetMaturity returns the instant an active lock becomes withdrawable. A
// missing lock is an error, never a zero time, so callers can tell "no such
// lock" apart from "matures at the epoch".
func (s *Service) GetMaturity(ctx context.Context, id entity.LockID) (time.Time, error) {
	lock, err := s.GetLock(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	return lock.MaturesAt(), nil
}

// ListByOwner retrieves all active locks owned by the account
func (s *Service) ListByOwner(ctx context.Context, owner string) ([]*entity.Lock, error) {
	if err := entity.ValidateAccountID(owner); err != nil {
		return nil, err
	}
	return s.store.ListByOwner(ctx, owner)
}

// HolderValue returns the vested value of the holder's stake in a lock at the
// current instant. With an ownership registry the stake is the holder's unit
// count times the per-unit vested value; without one the recorded owner holds
// the whole position and everyone else holds nothing.
func (s *Service) HolderValue(ctx context.Context, id entity.LockID, holder string) (int64, error) {
	if err := entity.ValidateAccountID(holder); err != nil {
		return 0, err
	}

	lock, err := s.GetLock(ctx, id)
	if err != nil {
		return 0, err
	}

	perUnit := lock.VestedValueAt(s.timeProvider.Now())

	units := int64(1)
	if s.registry != nil {
		units, err = s.registry.UnitsOf(ctx, holder, id)
		if err != nil {
			return 0, fmt.Errorf("%w: failed to resolve holder units: %s", errs.ErrInternalServer, err.Error())
		}
	} else if holder != lock.Owner {
		return 0, nil
	}

	if units <= 0 {
		return 0, nil
	}
	if units == 1 {
		return perUnit, nil
	}
	if perUnit != 0 && units > math.MaxInt64/perUnit {
		return 0, errs.ErrAmountOverflow
	}
	return perUnit * units, nil
}
