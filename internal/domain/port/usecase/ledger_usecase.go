package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
)

// DepositRequest carries the parameters of a new time-locked deposit
type DepositRequest struct {
	// Owner is the account the funds are pulled from; it becomes the lock owner
	Owner string
	// Asset identifies what is being locked
	Asset entity.Asset
	// Amount is the quantity to lock in base units, must be positive
	Amount int64
	// DurationSeconds is the lock period. Zero creates an immediately mature lock.
	DurationSeconds int64
}

// WithdrawReceipt reports a completed withdrawal
type WithdrawReceipt struct {
	LockID      entity.LockID
	Owner       string
	Asset       entity.Asset
	Amount      int64
	WithdrawnAt time.Time
}

// SolvencyReport compares custodied funds against the active locked total for
// a single asset
type SolvencyReport struct {
	Asset     entity.Asset
	Locked    int64
	Custodied int64
	Sound     bool
	CheckedAt time.Time
}

// LedgerUseCase defines the operations of the time-locked asset ledger
type LedgerUseCase interface {
	// Deposit takes custody of funds and records a new lock. The lock identifier
	// is derived by the ledger, never supplied by the caller.
	Deposit(ctx context.Context, req DepositRequest) (*entity.Lock, error)

	// Withdraw pays a matured lock out to its owner. Only the owner may call it,
	// and only after the lock period has elapsed. Withdrawn locks are gone for
	// good; their identifiers are never reused.
	Withdraw(ctx context.Context, caller string, id entity.LockID) (*WithdrawReceipt, error)

	// GetLock retrieves an active lock
	GetLock(ctx context.Context, id entity.LockID) (*entity.Lock, error)

	// GetBalance returns the current vested value of an active lock: the full
	// amount once matured, the truncating linear interpolation before that
	GetBalance(ctx context.Context, id entity.LockID) (int64, error)

	// GetAsset returns what asset an active lock holds
	GetAsset(ctx context.Context, id entity.LockID) (entity.Asset, error)

	// GetMaturity returns the instant an active lock becomes withdrawable
	GetMaturity(ctx context.Context, id entity.LockID) (time.Time, error)

	// HolderValue returns the vested value of the holder's stake in a lock at
	// the current instant
	HolderValue(ctx context.Context, id entity.LockID, holder string) (int64, error)

	// ListByOwner retrieves all active locks owned by an account
	ListByOwner(ctx context.Context, owner string) ([]*entity.Lock, error)

	// Solvency checks that custodied funds cover the active locked total for an
	// asset
	Solvency(ctx context.Context, asset entity.Asset) (*SolvencyReport, error)
}
