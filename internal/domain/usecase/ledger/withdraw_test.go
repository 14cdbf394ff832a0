package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	"github.com/amirhossein-jamali/timevault/mocks/port/core"
	"github.com/amirhossein-jamali/timevault/mocks/port/custody"
	"github.com/amirhossein-jamali/timevault/mocks/port/persistence"
)

func TestLedgerService_Withdraw(t *testing.T) {
	// Define fixed time for consistent testing
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	// maturedLock returns an active lock whose period has fully elapsed by fixedTime
	maturedLock := func() *entity.Lock {
		return &entity.Lock{
			ID:              "42",
			Owner:           "alice",
			Asset:           entity.NativeAsset(),
			Amount:          500,
			CreatedAt:       fixedTime.Add(-2 * time.Hour),
			DurationSeconds: 3600,
			Status:          entity.StatusActive,
		}
	}

	t.Run("should pay out a matured lock to its owner", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("GetByID", ctx, entity.LockID("42")).Return(maturedLock(), nil)
		mockStore.On("Remove", ctx, entity.LockID("42")).Return(nil)
		mockTransfer.On("TransferOut", ctx, "alice", entity.NativeAsset(), int64(500)).Return(nil)
		mockLogger.On("Info", "Lock withdrawn", mock.Anything).Return()

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		receipt, err := service.Withdraw(ctx, "alice", "42")

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, receipt)
		assert.Equal(t, entity.LockID("42"), receipt.LockID)
		assert.Equal(t, "alice", receipt.Owner)
		assert.Equal(t, int64(500), receipt.Amount)
		assert.Equal(t, fixedTime, receipt.WithdrawnAt)

		mockStore.AssertExpectations(t)
		mockTransfer.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject invalid caller", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		receipt, err := service.Withdraw(ctx, "", "42")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
		mockStore.AssertNotCalled(t, "GetByID")
	})

	t.Run("should reject empty lock identifier", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		receipt, err := service.Withdraw(ctx, "alice", "")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrInvalidLockID)
		mockStore.AssertNotCalled(t, "GetByID")
	})

	t.Run("should return error when lock not found", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockStore.On("GetByID", ctx, entity.LockID("999")).Return(nil, errs.ErrLockNotFound)

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		receipt, err := service.Withdraw(ctx, "alice", "999")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrLockNotFound)
		mockStore.AssertNotCalled(t, "Remove")
		mockStore.AssertExpectations(t)
	})

	t.Run("should refuse a caller who is not the owner", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockStore.On("GetByID", ctx, entity.LockID("42")).Return(maturedLock(), nil)

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		receipt, err := service.Withdraw(ctx, "mallory", "42")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
		assert.True(t, errs.IsNotOwnerError(err))

		// Funds stay put
		mockStore.AssertNotCalled(t, "Remove")
		mockTransfer.AssertNotCalled(t, "TransferOut")
	})

	t.Run("should refuse withdrawal before maturity", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		lock := maturedLock()
		lock.CreatedAt = fixedTime.Add(-10 * time.Minute) // matures 50 minutes from now

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("GetByID", ctx, entity.LockID("42")).Return(lock, nil)

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		receipt, err := service.Withdraw(ctx, "alice", "42")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrLockNotMatured)
		assert.True(t, errs.IsNotMaturedError(err))

		var notMatured *errs.NotMaturedError
		assert.True(t, errors.As(err, &notMatured))
		assert.Equal(t, lock.MaturesAt(), notMatured.MaturesAt)

		mockStore.AssertNotCalled(t, "Remove")
		mockTransfer.AssertNotCalled(t, "TransferOut")
	})

	t.Run("should allow withdrawal at the exact maturity instant", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		lock := maturedLock()
		lock.CreatedAt = fixedTime.Add(-3600 * time.Second) // matures exactly now

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("GetByID", ctx, entity.LockID("42")).Return(lock, nil)
		mockStore.On("Remove", ctx, entity.LockID("42")).Return(nil)
		mockTransfer.On("TransferOut", ctx, "alice", entity.NativeAsset(), int64(500)).Return(nil)
		mockLogger.On("Info", "Lock withdrawn", mock.Anything).Return()

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		receipt, err := service.Withdraw(ctx, "alice", "42")

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, receipt)
	})

	t.Run("should honor ownership registry over recorded owner", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockRegistry := new(custody.MockOwnershipRegistry)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("GetByID", ctx, entity.LockID("42")).Return(maturedLock(), nil)
		mockRegistry.On("OwnerOf", ctx, entity.LockID("42")).Return("bob", nil)
		mockStore.On("Remove", ctx, entity.LockID("42")).Return(nil)
		mockTransfer.On("TransferOut", ctx, "bob", entity.NativeAsset(), int64(500)).Return(nil)
		mockLogger.On("Info", "Lock withdrawn", mock.Anything).Return()

		service := NewLedgerService(
			mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger,
			WithOwnershipRegistry(mockRegistry),
		)

		// Act: bob holds the position now, alice does not
		receipt, err := service.Withdraw(ctx, "bob", "42")

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, receipt)
		assert.Equal(t, "bob", receipt.Owner)

		mockRegistry.AssertExpectations(t)
		mockTransfer.AssertExpectations(t)
	})

	t.Run("should refuse recorded owner when registry says otherwise", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockRegistry := new(custody.MockOwnershipRegistry)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockStore.On("GetByID", ctx, entity.LockID("42")).Return(maturedLock(), nil)
		mockRegistry.On("OwnerOf", ctx, entity.LockID("42")).Return("bob", nil)

		service := NewLedgerService(
			mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger,
			WithOwnershipRegistry(mockRegistry),
		)

		// Act: alice is only the recorded owner, the position moved to bob
		receipt, err := service.Withdraw(ctx, "alice", "42")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
		mockStore.AssertNotCalled(t, "Remove")
	})

	t.Run("should wrap registry failure as internal error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		registryFailure := errors.New("registry timeout")

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockRegistry := new(custody.MockOwnershipRegistry)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockStore.On("GetByID", ctx, entity.LockID("42")).Return(maturedLock(), nil)
		mockRegistry.On("OwnerOf", ctx, entity.LockID("42")).Return("", registryFailure)

		service := NewLedgerService(
			mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger,
			WithOwnershipRegistry(mockRegistry),
		)

		// Act
		receipt, err := service.Withdraw(ctx, "alice", "42")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
		mockStore.AssertNotCalled(t, "Remove")
	})

	t.Run("should propagate remove failure without moving funds", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		storeFailure := errors.New("store unavailable")

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("GetByID", ctx, entity.LockID("42")).Return(maturedLock(), nil)
		mockStore.On("Remove", ctx, entity.LockID("42")).Return(storeFailure)
		mockLogger.On("Error", "Failed to remove lock record", mock.Anything).Return()

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		receipt, err := service.Withdraw(ctx, "alice", "42")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.Equal(t, storeFailure, err)

		mockTransfer.AssertNotCalled(t, "TransferOut")
		mockLogger.AssertExpectations(t)
	})

	t.Run("should not resurrect the lock when payout transfer fails", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		transferFailure := errors.New("payout rail down")

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("GetByID", ctx, entity.LockID("42")).Return(maturedLock(), nil)
		mockStore.On("Remove", ctx, entity.LockID("42")).Return(nil)
		mockTransfer.On("TransferOut", ctx, "alice", entity.NativeAsset(), int64(500)).Return(transferFailure)
		mockLogger.On("Error", "Payout transfer failed after record removal, funds need manual release", mock.Anything).Return()

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		receipt, err := service.Withdraw(ctx, "alice", "42")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrTransferFailed)
		assert.ErrorIs(t, err, transferFailure)

		// The record stays removed; nothing writes it back
		mockStore.AssertCalled(t, "Remove", ctx, entity.LockID("42"))
		mockStore.AssertNotCalled(t, "Create")
		mockLogger.AssertExpectations(t)
	})
}
