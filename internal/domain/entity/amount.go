package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
)

// Amounts travel through the API as decimal strings of integer base units.
// The smallest indivisible unit of an asset is 1, so no fractional part is
// ever accepted.

// ParseAmount validates a string amount and converts it to base units.
// Returns the amount as int64 and an error if validation fails.
func ParseAmount(amount string) (int64, error) {
	// Trim whitespace and check for empty string
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	// Check for negative values
	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	// Base units are whole numbers, reject fractions and signs outright
	for _, r := range amount {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: base units must be a whole number", errs.ErrInvalidAmount)
		}
	}

	value, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		// Digits-only input can only fail on range
		return 0, errs.ErrAmountOverflow
	}

	return value, nil
}

// FormatAmount converts base units back to the canonical string form
func FormatAmount(units int64) string {
	return strconv.FormatInt(units, 10)
}
