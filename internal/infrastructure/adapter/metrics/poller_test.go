package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/repository"
)

func TestStatsPoller_Collect(t *testing.T) {
	t.Run("should publish active and created lock counts", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		noop := logger.NewNoopLogger()
		store := repository.NewMemoryLockRepository(noop)
		createdAt := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)

		for _, id := range []entity.LockID{"1", "2", "3"} {
			lock := &entity.Lock{
				ID:              id,
				Owner:           "alice",
				Asset:           entity.NativeAsset(),
				Amount:          100,
				CreatedAt:       createdAt,
				DurationSeconds: 3600,
				Status:          entity.StatusActive,
			}
			require.NoError(t, store.Create(ctx, lock))
		}
		require.NoError(t, store.Remove(ctx, entity.LockID("2")))

		m := New(prometheus.NewRegistry())
		poller := NewStatsPoller(store, m, noop)

		// Act
		poller.collect()

		// Assert
		assert.Equal(t, float64(2), testutil.ToFloat64(m.ActiveLocks))
		assert.Equal(t, float64(3), testutil.ToFloat64(m.CreatedLocks))
	})
}
