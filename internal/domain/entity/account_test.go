package entity

import (
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateAccountID(t *testing.T) {
	t.Run("Valid identifiers", func(t *testing.T) {
		for _, id := range []string{"alice", "acct-42", "0x52908400098527886E0F7030069857D2E4169EE7", strings.Repeat("a", MaxAccountIDLength)} {
			t.Run(id, func(t *testing.T) {
				assert.NoError(t, ValidateAccountID(id))
			})
		}
	})

	t.Run("Invalid identifiers", func(t *testing.T) {
		testCases := []struct {
			id          string
			description string
		}{
			{"", "Empty"},
			{"  alice", "Leading whitespace"},
			{"alice  ", "Trailing whitespace"},
			{"@vault", "Reserved prefix"},
			{strings.Repeat("a", MaxAccountIDLength+1), "Too long"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				assert.ErrorIs(t, ValidateAccountID(tc.id), errs.ErrInvalidAccountID)
			})
		}
	})
}
