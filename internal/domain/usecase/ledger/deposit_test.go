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
	usecase "github.com/amirhossein-jamali/timevault/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timevault/mocks/port/core"
	"github.com/amirhossein-jamali/timevault/mocks/port/custody"
	"github.com/amirhossein-jamali/timevault/mocks/port/persistence"
)

func TestLedgerService_Deposit(t *testing.T) {
	// Define fixed time for consistent testing
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create lock and pull funds into custody", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		// Create mocks
		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		// Configure mocks
		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Lock")).Return(nil)
		mockTransfer.On("TransferIn", ctx, "alice", entity.NativeAsset(), int64(500)).Return(nil)
		mockLogger.On("Info", "Lock created", mock.Anything).Return()

		service := NewLedgerService(mockStore, NewSequentialDeriver(7), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		lock, err := service.Deposit(ctx, usecase.DepositRequest{
			Owner:           "alice",
			Asset:           entity.NativeAsset(),
			Amount:          500,
			DurationSeconds: 3600,
		})

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, lock)
		assert.Equal(t, entity.LockID("7"), lock.ID)
		assert.Equal(t, "alice", lock.Owner)
		assert.Equal(t, int64(500), lock.Amount)
		assert.Equal(t, fixedTime, lock.CreatedAt)
		assert.Equal(t, fixedTime.Add(3600*time.Second), lock.MaturesAt())
		assert.Equal(t, entity.StatusActive, lock.Status)

		// Verify mocks
		mockStore.AssertExpectations(t)
		mockTransfer.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject invalid owner without touching store", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		lock, err := service.Deposit(ctx, usecase.DepositRequest{
			Owner:           "",
			Asset:           entity.NativeAsset(),
			Amount:          100,
			DurationSeconds: 60,
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, lock)
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)

		// Verify no store or custody calls were made
		mockStore.AssertNotCalled(t, "Create")
		mockTransfer.AssertNotCalled(t, "TransferIn")
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		lock, err := service.Deposit(ctx, usecase.DepositRequest{
			Owner:           "alice",
			Asset:           entity.NativeAsset(),
			Amount:          0,
			DurationSeconds: 60,
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, lock)
		assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)
		mockStore.AssertNotCalled(t, "Create")
	})

	t.Run("should reject negative duration", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		lock, err := service.Deposit(ctx, usecase.DepositRequest{
			Owner:           "alice",
			Asset:           entity.NativeAsset(),
			Amount:          100,
			DurationSeconds: -1,
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, lock)
		assert.ErrorIs(t, err, errs.ErrInvalidDuration)
		mockStore.AssertNotCalled(t, "Create")
	})

	t.Run("should propagate store error and skip transfer", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Lock")).Return(errs.ErrDuplicateLock)
		mockLogger.On("Error", "Failed to record lock", mock.Anything).Return()

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		lock, err := service.Deposit(ctx, usecase.DepositRequest{
			Owner:           "alice",
			Asset:           entity.NativeAsset(),
			Amount:          100,
			DurationSeconds: 60,
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, lock)
		assert.ErrorIs(t, err, errs.ErrDuplicateLock)

		// Verify funds never moved
		mockTransfer.AssertNotCalled(t, "TransferIn")
		mockStore.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should roll back lock record when transfer fails", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		transferFailure := errors.New("account vanished mid flight")

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Lock")).Return(nil)
		mockStore.On("Remove", ctx, entity.LockID("3")).Return(nil)
		mockTransfer.On("TransferIn", ctx, "alice", entity.NativeAsset(), int64(100)).Return(transferFailure)
		mockLogger.On("Error", "Deposit transfer failed", mock.Anything).Return()

		service := NewLedgerService(mockStore, NewSequentialDeriver(3), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		lock, err := service.Deposit(ctx, usecase.DepositRequest{
			Owner:           "alice",
			Asset:           entity.NativeAsset(),
			Amount:          100,
			DurationSeconds: 60,
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, lock)
		assert.ErrorIs(t, err, errs.ErrTransferFailed)
		assert.ErrorIs(t, err, transferFailure)

		// Verify the record was rolled back
		mockStore.AssertCalled(t, "Remove", ctx, entity.LockID("3"))
		mockStore.AssertExpectations(t)
		mockTransfer.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should surface transfer error even when rollback fails too", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		transferFailure := errors.New("custody rejected the pull")
		rollbackFailure := errors.New("store unavailable")

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Lock")).Return(nil)
		mockStore.On("Remove", ctx, entity.LockID("0")).Return(rollbackFailure)
		mockTransfer.On("TransferIn", ctx, "alice", entity.NativeAsset(), int64(100)).Return(transferFailure)
		mockLogger.On("Error", "Failed to roll back lock record after transfer failure", mock.Anything).Return()
		mockLogger.On("Error", "Deposit transfer failed", mock.Anything).Return()

		service := NewLedgerService(mockStore, NewSequentialDeriver(0), mockTransfer, mockTimeProvider, mockLogger)

		// Act
		lock, err := service.Deposit(ctx, usecase.DepositRequest{
			Owner:           "alice",
			Asset:           entity.NativeAsset(),
			Amount:          100,
			DurationSeconds: 60,
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, lock)
		assert.ErrorIs(t, err, errs.ErrTransferFailed)

		mockStore.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should assign sequential identifiers in creation order", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockStore := new(persistence.MockLockRepository)
		mockTransfer := new(custody.MockAssetTransfer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Lock")).Return(nil)
		mockTransfer.On("TransferIn", ctx, "alice", entity.NativeAsset(), int64(10)).Return(nil)
		mockLogger.On("Info", "Lock created", mock.Anything).Return()

		service := NewLedgerService(mockStore, NewSequentialDeriver(100), mockTransfer, mockTimeProvider, mockLogger)

		req := usecase.DepositRequest{
			Owner:           "alice",
			Asset:           entity.NativeAsset(),
			Amount:          10,
			DurationSeconds: 60,
		}

		// Act
		first, err1 := service.Deposit(ctx, req)
		second, err2 := service.Deposit(ctx, req)

		// Assert
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, entity.LockID("100"), first.ID)
		assert.Equal(t, entity.LockID("101"), second.ID)
	})
}
