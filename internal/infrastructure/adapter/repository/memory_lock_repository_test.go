package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/logger"
)

func newTestLock(id entity.LockID, owner string, amount int64, createdAt time.Time) *entity.Lock {
	return &entity.Lock{
		ID:              id,
		Owner:           owner,
		Asset:           entity.NativeAsset(),
		Amount:          amount,
		CreatedAt:       createdAt,
		DurationSeconds: 3600,
		Status:          entity.StatusActive,
	}
}

func TestMemoryLockRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryLockRepository(logger.NewNoopLogger())

	t.Run("should round trip a lock", func(t *testing.T) {
		lock := newTestLock("1", "alice", 500, createdAt)
		require.NoError(t, repo.Create(ctx, lock))

		got, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, lock, got)
	})

	t.Run("should reject a duplicate identifier", func(t *testing.T) {
		err := repo.Create(ctx, newTestLock("1", "bob", 100, createdAt))
		assert.ErrorIs(t, err, errs.ErrDuplicateLock)
	})

	t.Run("should return not found for unknown identifiers", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "does-not-exist")
		assert.ErrorIs(t, err, errs.ErrLockNotFound)
	})

	t.Run("should isolate stored state from returned copies", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)

		got.Amount = 0
		got.Owner = "mallory"

		again, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, int64(500), again.Amount)
		assert.Equal(t, "alice", again.Owner)
	})
}

func TestMemoryLockRepository_Remove(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should remove an active lock", func(t *testing.T) {
		repo := NewMemoryLockRepository(logger.NewNoopLogger())
		require.NoError(t, repo.Create(ctx, newTestLock("1", "alice", 500, createdAt)))

		require.NoError(t, repo.Remove(ctx, "1"))

		_, err := repo.GetByID(ctx, "1")
		assert.ErrorIs(t, err, errs.ErrLockNotFound)
	})

	t.Run("should keep removed identifiers burned", func(t *testing.T) {
		repo := NewMemoryLockRepository(logger.NewNoopLogger())
		require.NoError(t, repo.Create(ctx, newTestLock("1", "alice", 500, createdAt)))
		require.NoError(t, repo.Remove(ctx, "1"))

		err := repo.Create(ctx, newTestLock("1", "alice", 500, createdAt))
		assert.ErrorIs(t, err, errs.ErrDuplicateLock)
	})

	t.Run("should return not found for unknown identifiers", func(t *testing.T) {
		repo := NewMemoryLockRepository(logger.NewNoopLogger())
		assert.ErrorIs(t, repo.Remove(ctx, "nope"), errs.ErrLockNotFound)
	})
}

func TestMemoryLockRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryLockRepository(logger.NewNoopLogger())

	// Insert out of creation order to prove the listing sorts
	require.NoError(t, repo.Create(ctx, newTestLock("3", "alice", 30, base.Add(2*time.Minute))))
	require.NoError(t, repo.Create(ctx, newTestLock("1", "alice", 10, base)))
	require.NoError(t, repo.Create(ctx, newTestLock("2", "bob", 20, base.Add(time.Minute))))

	locks, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, locks, 2)
	assert.Equal(t, entity.LockID("1"), locks[0].ID)
	assert.Equal(t, entity.LockID("3"), locks[1].ID)

	locks, err = repo.ListByOwner(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, locks)
}

func TestMemoryLockRepository_Aggregates(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryLockRepository(logger.NewNoopLogger())

	native := newTestLock("1", "alice", 500, createdAt)
	token := newTestLock("2", "alice", 200, createdAt)
	token.Asset = entity.TokenAsset("usd-cent")

	require.NoError(t, repo.Create(ctx, native))
	require.NoError(t, repo.Create(ctx, token))
	require.NoError(t, repo.Create(ctx, newTestLock("3", "bob", 100, createdAt)))

	t.Run("should sum active amounts per asset", func(t *testing.T) {
		total, err := repo.SumActiveAmount(ctx, entity.NativeAsset())
		require.NoError(t, err)
		assert.Equal(t, int64(600), total)

		total, err = repo.SumActiveAmount(ctx, entity.TokenAsset("usd-cent"))
		require.NoError(t, err)
		assert.Equal(t, int64(200), total)
	})

	t.Run("should drop removed locks from the sum but not the created count", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, "3"))

		total, err := repo.SumActiveAmount(ctx, entity.NativeAsset())
		require.NoError(t, err)
		assert.Equal(t, int64(500), total)

		count, err := repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		created, err := repo.TotalCreated(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), created)
	})
}

func TestMemoryLockRepository_ContextCancellation(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryLockRepository(logger.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, repo.Create(ctx, newTestLock("1", "alice", 500, createdAt)))

	_, err := repo.GetByID(ctx, "1")
	assert.Error(t, err)
}
