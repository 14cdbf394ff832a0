package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
)

const (
	// ReservedAccountPrefix marks internal custody accounts. Caller-supplied
	// account identifiers must not use it.
	ReservedAccountPrefix = "@"

	// MaxAccountIDLength bounds account identifiers accepted from callers
	MaxAccountIDLength = 128
)

// ValidateAccountID checks that an account identifier is acceptable as a lock
// owner or transfer party
func ValidateAccountID(id string) error {
	if id == "" || strings.TrimSpace(id) != id {
		return errs.ErrInvalidAccountID
	}
	if strings.HasPrefix(id, ReservedAccountPrefix) {
		return errs.ErrInvalidAccountID
	}
	if len(id) > MaxAccountIDLength {
		return errs.ErrInvalidAccountID
	}
	return nil
}
