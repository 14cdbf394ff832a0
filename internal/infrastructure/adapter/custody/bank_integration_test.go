package custody

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/logger"
)

func TestBank_Postgres(t *testing.T) {
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration test")
	}

	ctx := context.Background()
	native := entity.NativeAsset()

	mgr := database.NewTestDBManager(t, logger.NewNoopLogger())
	require.NoError(t, mgr.Connect(t))
	t.Cleanup(func() { mgr.Close(t) })
	mgr.SetupTestDB(t)

	bank := NewBank(mgr.Manager.DB(), mgr.TimeProvider, logger.NewNoopLogger())
	mgr.SeedTestBalance(t, "alice", native.String(), 1000)

	t.Run("should move funds from account to vault", func(t *testing.T) {
		require.NoError(t, bank.TransferIn(ctx, "alice", native, 400))

		balance, err := bank.AccountBalance(ctx, "alice", native)
		require.NoError(t, err)
		assert.Equal(t, int64(600), balance)

		custodied, err := bank.CustodiedBalance(ctx, native)
		require.NoError(t, err)
		assert.Equal(t, int64(400), custodied)
	})

	t.Run("should reject a deposit the account cannot cover", func(t *testing.T) {
		err := bank.TransferIn(ctx, "alice", native, 10_000)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})

	t.Run("should reject a deposit from an unknown account", func(t *testing.T) {
		err := bank.TransferIn(ctx, "ghost", native, 5)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("should pay out to an account that never held the asset", func(t *testing.T) {
		require.NoError(t, bank.TransferOut(ctx, "bob", native, 150))

		balance, err := bank.AccountBalance(ctx, "bob", native)
		require.NoError(t, err)
		assert.Equal(t, int64(150), balance)

		custodied, err := bank.CustodiedBalance(ctx, native)
		require.NoError(t, err)
		assert.Equal(t, int64(250), custodied)
	})

	t.Run("should never pay out more than the vault holds", func(t *testing.T) {
		err := bank.TransferOut(ctx, "bob", native, 10_000)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})

	t.Run("should credit seeded accounts outside the transfer flow", func(t *testing.T) {
		token := entity.TokenAsset("usd-cent")
		require.NoError(t, bank.Credit(ctx, "carol", token, 300))

		balance, err := bank.AccountBalance(ctx, "carol", token)
		require.NoError(t, err)
		assert.Equal(t, int64(300), balance)
	})
}
