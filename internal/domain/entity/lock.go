package entity

import (
	"math"
	"math/bits"
	"time"

	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
)

// LockID uniquely identifies a lock for its entire life. Identifiers are never
// reused, even after the lock is withdrawn.
type LockID string

// LockStatus represents the lifecycle state of a lock
type LockStatus string

const (
	// StatusActive means the lock still holds its assets in custody
	StatusActive LockStatus = "active"
	// StatusWithdrawn means the lock has been paid out. Withdrawn is terminal.
	StatusWithdrawn LockStatus = "withdrawn"
)

// Lock represents a time-locked asset position. A lock holds a fixed amount of
// one asset from its creation instant until creation plus duration, after which
// the owner may withdraw the full amount. Value accrues linearly in between.
type Lock struct {
	// ID is assigned by the ledger once derived; it stays fixed afterwards
	ID LockID

	// Owner is the account the deposit was taken from and the only account
	// allowed to withdraw
	Owner string

	// Asset identifies what the lock holds
	Asset Asset

	// Amount is the locked quantity in base units, always positive
	Amount int64

	// CreatedAt is the instant the lock came into existence
	CreatedAt time.Time

	// DurationSeconds is the lock period length. Zero means the lock matures
	// immediately.
	DurationSeconds int64

	// Status is the lifecycle state
	Status LockStatus

	// WithdrawnAt is set when the lock is paid out
	WithdrawnAt *time.Time
}

// NewLock builds an active lock owned by owner. The ID field is left empty;
// the ledger derives and assigns it before the lock is persisted.
func NewLock(owner string, asset Asset, amount int64, durationSeconds int64, timeProvider coreport.TimeProvider) (*Lock, error) {
	if err := ValidateAccountID(owner); err != nil {
		return nil, err
	}
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.ErrNonPositiveAmount
	}
	if durationSeconds < 0 {
		return nil, errs.ErrInvalidDuration
	}

	now := timeProvider.Now().UTC()
	if now.Unix() > 0 && durationSeconds > math.MaxInt64-now.Unix() {
		return nil, errs.ErrMaturityOverflow
	}

	return &Lock{
		Owner:           owner,
		Asset:           asset,
		Amount:          amount,
		CreatedAt:       now,
		DurationSeconds: durationSeconds,
		Status:          StatusActive,
	}, nil
}

// maturityUnix is the maturity instant in unix seconds. All lock time math runs
// at second resolution.
func (l *Lock) maturityUnix() int64 {
	return l.CreatedAt.Unix() + l.DurationSeconds
}

// MaturesAt returns the instant at which the lock becomes withdrawable
func (l *Lock) MaturesAt() time.Time {
	return time.Unix(l.maturityUnix(), 0).UTC()
}

// Matured reports whether the lock period has elapsed at the given instant.
// A zero-duration lock is mature from its creation instant.
func (l *Lock) Matured(now time.Time) bool {
	return now.Unix() >= l.maturityUnix()
}

// VestedValueAt returns how much of the locked amount has accrued at the given
// instant under linear vesting: amount * elapsed / duration, truncated. Before
// creation it is zero, at or past maturity it is the full amount.
func (l *Lock) VestedValueAt(now time.Time) int64 {
	if l.DurationSeconds == 0 {
		return l.Amount
	}

	elapsed := now.Unix() - l.CreatedAt.Unix()
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= l.DurationSeconds {
		return l.Amount
	}

	// 128-bit multiply so amount*elapsed cannot wrap. elapsed < duration keeps
	// the high word below the divisor, which Div64 requires.
	hi, lo := bits.Mul64(uint64(l.Amount), uint64(elapsed))
	vested, _ := bits.Div64(hi, lo, uint64(l.DurationSeconds))
	return int64(vested)
}

// MarkWithdrawn transitions the lock to its terminal state and stamps the
// withdrawal time
func (l *Lock) MarkWithdrawn(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now().UTC()
	l.Status = StatusWithdrawn
	l.WithdrawnAt = &now
}

// IsActive reports whether the lock still holds its assets
func (l *Lock) IsActive() bool {
	return l.Status == StatusActive
}

// Clone returns an independent copy of the lock
func (l *Lock) Clone() *Lock {
	clone := *l
	if l.WithdrawnAt != nil {
		withdrawnAt := *l.WithdrawnAt
		clone.WithdrawnAt = &withdrawnAt
	}
	return &clone
}
