package custody

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/logger"
)

func TestMemoryBank_TransferIn(t *testing.T) {
	ctx := context.Background()
	native := entity.NativeAsset()

	t.Run("should move funds from account to vault", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())
		require.NoError(t, bank.Credit(ctx, "alice", native, 1000))

		require.NoError(t, bank.TransferIn(ctx, "alice", native, 400))

		assert.Equal(t, int64(600), bank.BalanceOf("alice", native))
		custodied, err := bank.CustodiedBalance(ctx, native)
		require.NoError(t, err)
		assert.Equal(t, int64(400), custodied)
	})

	t.Run("should reject unknown accounts", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())

		err := bank.TransferIn(ctx, "ghost", native, 100)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("should reject pulls the account cannot cover", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())
		require.NoError(t, bank.Credit(ctx, "alice", native, 50))

		err := bank.TransferIn(ctx, "alice", native, 100)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		// Nothing moved
		assert.Equal(t, int64(50), bank.BalanceOf("alice", native))
		custodied, _ := bank.CustodiedBalance(ctx, native)
		assert.Equal(t, int64(0), custodied)
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())
		require.NoError(t, bank.Credit(ctx, "alice", native, 50))

		assert.ErrorIs(t, bank.TransferIn(ctx, "alice", native, 0), errs.ErrNonPositiveAmount)
		assert.ErrorIs(t, bank.TransferIn(ctx, "alice", native, -5), errs.ErrNonPositiveAmount)
	})

	t.Run("should keep assets separate", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())
		token := entity.TokenAsset("usd-cent")
		require.NoError(t, bank.Credit(ctx, "alice", native, 100))
		require.NoError(t, bank.Credit(ctx, "alice", token, 200))

		require.NoError(t, bank.TransferIn(ctx, "alice", token, 150))

		assert.Equal(t, int64(100), bank.BalanceOf("alice", native))
		assert.Equal(t, int64(50), bank.BalanceOf("alice", token))

		custodiedNative, _ := bank.CustodiedBalance(ctx, native)
		custodiedToken, _ := bank.CustodiedBalance(ctx, token)
		assert.Equal(t, int64(0), custodiedNative)
		assert.Equal(t, int64(150), custodiedToken)
	})
}

func TestMemoryBank_TransferOut(t *testing.T) {
	ctx := context.Background()
	native := entity.NativeAsset()

	t.Run("should release custodied funds to the account", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())
		require.NoError(t, bank.Credit(ctx, "alice", native, 1000))
		require.NoError(t, bank.TransferIn(ctx, "alice", native, 400))

		require.NoError(t, bank.TransferOut(ctx, "alice", native, 400))

		assert.Equal(t, int64(1000), bank.BalanceOf("alice", native))
		custodied, _ := bank.CustodiedBalance(ctx, native)
		assert.Equal(t, int64(0), custodied)
	})

	t.Run("should create the receiving account on payout", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())
		require.NoError(t, bank.Credit(ctx, "alice", native, 500))
		require.NoError(t, bank.TransferIn(ctx, "alice", native, 500))

		// bob has never been seen before, the payout brings him into being
		require.NoError(t, bank.TransferOut(ctx, "bob", native, 300))
		assert.Equal(t, int64(300), bank.BalanceOf("bob", native))
	})

	t.Run("should refuse payouts the vault cannot cover", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())

		err := bank.TransferOut(ctx, "alice", native, 100)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})
}

func TestMemoryBank_Credit(t *testing.T) {
	ctx := context.Background()
	native := entity.NativeAsset()

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())
		assert.ErrorIs(t, bank.Credit(ctx, "alice", native, 0), errs.ErrNonPositiveAmount)
	})

	t.Run("should detect overflow", func(t *testing.T) {
		bank := NewMemoryBank(logger.NewNoopLogger())
		require.NoError(t, bank.Credit(ctx, "alice", native, math.MaxInt64))

		assert.ErrorIs(t, bank.Credit(ctx, "alice", native, 1), errs.ErrAmountOverflow)
	})
}
