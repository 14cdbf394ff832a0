package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeNonPositiveAmount   = 4002
	CodeInvalidAccountID    = 4003
	CodeInvalidAsset        = 4004
	CodeInvalidDuration     = 4005
	CodeInvalidLockID       = 4006
	CodeAmountOverflow      = 4007
	CodeMaturityOverflow    = 4008
	CodeConstraintViolation = 4009
	CodeInsufficientFunds   = 4020
	CodeNotOwner            = 4030
	CodeLockNotFound        = 4040
	CodeAccountNotFound     = 4041
	CodeDuplicateLock       = 4090
	CodeLockNotMatured      = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeSolvencyViolation  = 5001
	CodeTransferFailed     = 5020
	CodeStorageUnavailable = 5030
	CodeStoreConflict      = 5090
)

// Base error types
var (
	// ErrInvalidAmount is returned when the amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNonPositiveAmount is returned when a lock is requested for zero or fewer units
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidAccountID is returned when the account identifier is empty or reserved
	ErrInvalidAccountID = errors.New("invalid account identifier")

	// ErrInvalidAsset is returned when the asset reference cannot be parsed
	ErrInvalidAsset = errors.New("invalid asset reference")

	// ErrInvalidDuration is returned when the lock duration is negative
	ErrInvalidDuration = errors.New("lock duration cannot be negative")

	// ErrInvalidLockID is returned when the lock identifier is empty
	ErrInvalidLockID = errors.New("lock identifier cannot be empty")

	// ErrMaturityOverflow is returned when creation time plus duration exceeds the
	// representable time range
	ErrMaturityOverflow = errors.New("maturity timestamp would overflow")

	// ErrDuplicateLock is returned when a lock with the same identifier already exists
	// or existed in the past
	ErrDuplicateLock = errors.New("lock with this identifier already exists")

	// ErrLockNotFound is returned when the requested lock doesn't exist
	ErrLockNotFound = errors.New("lock not found")

	// ErrNotOwner is returned when the caller does not own the lock it is acting on
	ErrNotOwner = errors.New("caller is not the lock owner")

	// ErrLockNotMatured is returned when a withdrawal is attempted before the lock
	// period has elapsed
	ErrLockNotMatured = errors.New("lock has not yet matured")

	// ErrInsufficientFunds is returned when a custody account cannot cover a transfer
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when the requested custody account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransferFailed is returned when the custody layer rejects or fails a transfer
	ErrTransferFailed = errors.New("asset transfer failed")

	// ErrSolvencyViolation is returned when custodied funds do not cover the active
	// locked total
	ErrSolvencyViolation = errors.New("custodied balance does not match locked total")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrStorageUnavailable is returned when there's a problem reaching the lock store
	ErrStorageUnavailable = errors.New("lock storage unavailable")

	// ErrStoreConflict is returned when concurrent storage access could not be serialized
	ErrStoreConflict = errors.New("storage conflict")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrNonPositiveAmount):
		return CodeNonPositiveAmount
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrInvalidAsset):
		return CodeInvalidAsset
	case errors.Is(err, ErrInvalidDuration):
		return CodeInvalidDuration
	case errors.Is(err, ErrInvalidLockID):
		return CodeInvalidLockID
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrMaturityOverflow):
		return CodeMaturityOverflow
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrNotOwner):
		return CodeNotOwner
	case errors.Is(err, ErrLockNotFound):
		return CodeLockNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrDuplicateLock):
		return CodeDuplicateLock
	case errors.Is(err, ErrLockNotMatured):
		return CodeLockNotMatured
	case errors.Is(err, ErrSolvencyViolation):
		return CodeSolvencyViolation
	case errors.Is(err, ErrTransferFailed):
		return CodeTransferFailed
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	case errors.Is(err, ErrStoreConflict):
		return CodeStoreConflict
	default:
		return CodeInternalServer
	}
}

// LockError represents an error raised while operating on a specific lock
type LockError struct {
	LockID  string
	Account string
	Op      string
	Err     error
}

// Error implements the error interface for LockError
func (e *LockError) Error() string {
	return fmt.Sprintf("lock operation %s failed for lock %s (account: %s): %v",
		e.Op, e.LockID, e.Account, e.Err)
}

// Unwrap returns the underlying error
func (e *LockError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LockError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "lock_error",
		"lock_id":    e.LockID,
		"account":    e.Account,
		"op":         e.Op,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLockError creates a detailed lock operation error
func NewLockError(lockID, account, op string, err error) error {
	return &LockError{
		LockID:  lockID,
		Account: account,
		Op:      op,
		Err:     err,
	}
}

// TransferError represents a failure in the custody layer while moving assets
type TransferError struct {
	Direction string // "in" or "out"
	Account   string
	Asset     string
	Amount    int64
	Err       error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("asset transfer %s failed for account %s (asset: %s, amount: %d): %v",
		e.Direction, e.Account, e.Asset, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrTransferFailed
func (e *TransferError) Is(target error) bool {
	return target == ErrTransferFailed
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transfer_error",
		"direction":  e.Direction,
		"account":    e.Account,
		"asset":      e.Asset,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": CodeTransferFailed,
	}
}

// NewTransferError creates a new detailed transfer error
func NewTransferError(direction, account, asset string, amount int64, err error) error {
	return &TransferError{
		Direction: direction,
		Account:   account,
		Asset:     asset,
		Amount:    amount,
		Err:       err,
	}
}

// NotMaturedError provides detailed information about premature withdrawal attempts
type NotMaturedError struct {
	LockID    string
	MaturesAt time.Time
	Now       time.Time
}

// Error implements the error interface
func (e *NotMaturedError) Error() string {
	return fmt.Sprintf("lock %s has not yet matured: matures at %s, now %s",
		e.LockID, e.MaturesAt.UTC().Format(time.RFC3339), e.Now.UTC().Format(time.RFC3339))
}

// Is checks if the target error is an ErrLockNotMatured
func (e *NotMaturedError) Is(target error) bool {
	return target == ErrLockNotMatured
}

// LogFields returns a map of fields for structured logging
func (e *NotMaturedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "lock_not_matured",
		"lock_id":    e.LockID,
		"matures_at": e.MaturesAt.UTC().Format(time.RFC3339),
		"now":        e.Now.UTC().Format(time.RFC3339),
		"error_code": CodeLockNotMatured,
	}
}

// NewNotMaturedError creates a new detailed premature withdrawal error
func NewNotMaturedError(lockID string, maturesAt, now time.Time) error {
	return &NotMaturedError{
		LockID:    lockID,
		MaturesAt: maturesAt,
		Now:       now,
	}
}

// SolvencyError provides detailed information about a solvency check failure
type SolvencyError struct {
	Asset     string
	Locked    int64
	Custodied int64
}

// Error implements the error interface
func (e *SolvencyError) Error() string {
	return fmt.Sprintf("solvency violation for asset %s: locked total %d, custodied %d",
		e.Asset, e.Locked, e.Custodied)
}

// Is checks if the target error is an ErrSolvencyViolation
func (e *SolvencyError) Is(target error) bool {
	return target == ErrSolvencyViolation
}

// LogFields returns a map of fields for structured logging
func (e *SolvencyError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "solvency_violation",
		"asset":      e.Asset,
		"locked":     e.Locked,
		"custodied":  e.Custodied,
		"error_code": CodeSolvencyViolation,
	}
}

// NewSolvencyError creates a new detailed solvency violation error
func NewSolvencyError(asset string, locked, custodied int64) error {
	return &SolvencyError{
		Asset:     asset,
		Locked:    locked,
		Custodied: custodied,
	}
}

// IsDuplicateLockError checks if the error is a duplicate lock error
func IsDuplicateLockError(err error) bool {
	return errors.Is(err, ErrDuplicateLock)
}

// IsLockNotFoundError checks if the error is a lock not found error
func IsLockNotFoundError(err error) bool {
	return errors.Is(err, ErrLockNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrLockNotFound) ||
		errors.Is(err, ErrAccountNotFound)
}

// IsNotOwnerError checks if the error is an ownership violation
func IsNotOwnerError(err error) bool {
	return errors.Is(err, ErrNotOwner)
}

// IsNotMaturedError checks if the error is a premature withdrawal error
func IsNotMaturedError(err error) bool {
	return errors.Is(err, ErrLockNotMatured)
}

// IsTransferFailedError checks if the error originated in the custody layer
func IsTransferFailedError(err error) bool {
	return errors.Is(err, ErrTransferFailed)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}
