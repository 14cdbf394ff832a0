package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/timevault/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLock(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid lock creation", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 1000, 3600, mockTime)

		require.NoError(t, err)
		assert.Equal(t, LockID(""), lock.ID)
		assert.Equal(t, "alice", lock.Owner)
		assert.Equal(t, NativeAsset(), lock.Asset)
		assert.Equal(t, int64(1000), lock.Amount)
		assert.Equal(t, fixedTime, lock.CreatedAt)
		assert.Equal(t, int64(3600), lock.DurationSeconds)
		assert.Equal(t, StatusActive, lock.Status)
		assert.True(t, lock.IsActive())
		assert.Nil(t, lock.WithdrawnAt)
	})

	t.Run("Zero duration is allowed", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 1, 0, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), lock.DurationSeconds)
	})

	t.Run("Invalid owner", func(t *testing.T) {
		for _, owner := range []string{"", "@vault", " alice"} {
			lock, err := NewLock(owner, NativeAsset(), 1000, 3600, mockTime)
			assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
			assert.Nil(t, lock)
		}
	})

	t.Run("Invalid asset", func(t *testing.T) {
		lock, err := NewLock("alice", Asset{Kind: "shares"}, 1000, 3600, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAsset)
		assert.Nil(t, lock)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		for _, amount := range []int64{0, -1, -1000} {
			lock, err := NewLock("alice", NativeAsset(), amount, 3600, mockTime)
			assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)
			assert.Nil(t, lock)
		}
	})

	t.Run("Negative duration", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 1000, -1, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidDuration)
		assert.Nil(t, lock)
	})

	t.Run("Maturity overflow", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 1000, math.MaxInt64, mockTime)
		assert.ErrorIs(t, err, errs.ErrMaturityOverflow)
		assert.Nil(t, lock)
	})
}

func TestLockMaturesAt(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(createdAt).Maybe()

	t.Run("Duration adds to creation time", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 1000, 3600, mockTime)
		require.NoError(t, err)

		assert.Equal(t, createdAt.Add(time.Hour), lock.MaturesAt())
	})

	t.Run("Zero duration matures at creation", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 1000, 0, mockTime)
		require.NoError(t, err)

		assert.Equal(t, createdAt, lock.MaturesAt())
		assert.True(t, lock.Matured(createdAt))
	})
}

func TestLockMatured(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(createdAt).Maybe()

	lock, err := NewLock("alice", NativeAsset(), 1000, 1000, mockTime)
	require.NoError(t, err)

	assert.False(t, lock.Matured(createdAt))
	assert.False(t, lock.Matured(createdAt.Add(999*time.Second)))
	assert.True(t, lock.Matured(createdAt.Add(1000*time.Second)))
	assert.True(t, lock.Matured(createdAt.Add(2000*time.Second)))
}

func TestVestedValueAt(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(createdAt).Maybe()

	t.Run("Linear schedule over 1000 seconds", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 1000, 1000, mockTime)
		require.NoError(t, err)

		testCases := []struct {
			name     string
			at       time.Time
			expected int64
		}{
			{"Before creation", createdAt.Add(-time.Minute), 0},
			{"At creation", createdAt, 0},
			{"After 1 second", createdAt.Add(1 * time.Second), 1},
			{"Quarter through", createdAt.Add(250 * time.Second), 250},
			{"Halfway", createdAt.Add(500 * time.Second), 500},
			{"One second short", createdAt.Add(999 * time.Second), 999},
			{"At maturity", createdAt.Add(1000 * time.Second), 1000},
			{"Past maturity", createdAt.Add(5000 * time.Second), 1000},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, lock.VestedValueAt(tc.at))
			})
		}
	})

	t.Run("Division truncates toward zero", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 10, 3, mockTime)
		require.NoError(t, err)

		// 10*1/3 = 3.33 and 10*2/3 = 6.66
		assert.Equal(t, int64(3), lock.VestedValueAt(createdAt.Add(1*time.Second)))
		assert.Equal(t, int64(6), lock.VestedValueAt(createdAt.Add(2*time.Second)))
	})

	t.Run("Zero duration vests immediately", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 777, 0, mockTime)
		require.NoError(t, err)

		assert.Equal(t, int64(777), lock.VestedValueAt(createdAt))
		assert.Equal(t, int64(777), lock.VestedValueAt(createdAt.Add(time.Hour)))
	})

	t.Run("Huge amounts do not overflow", func(t *testing.T) {
		// amount * elapsed far exceeds 64 bits here
		const tenYears = int64(315360000)
		lock, err := NewLock("alice", NativeAsset(), math.MaxInt64, tenYears, mockTime)
		require.NoError(t, err)

		halfway := createdAt.Add(time.Duration(tenYears/2) * time.Second)
		assert.Equal(t, int64(math.MaxInt64/2), lock.VestedValueAt(halfway))

		oneSecond := createdAt.Add(1 * time.Second)
		assert.Equal(t, int64(math.MaxInt64/tenYears), lock.VestedValueAt(oneSecond))

		assert.Equal(t, int64(math.MaxInt64), lock.VestedValueAt(createdAt.Add(time.Duration(tenYears)*time.Second)))
	})

	t.Run("Vested value never exceeds amount and never decreases", func(t *testing.T) {
		lock, err := NewLock("alice", NativeAsset(), 98765, 7919, mockTime)
		require.NoError(t, err)

		previous := int64(-1)
		for elapsed := int64(0); elapsed <= 7919+100; elapsed += 97 {
			vested := lock.VestedValueAt(createdAt.Add(time.Duration(elapsed) * time.Second))
			assert.GreaterOrEqual(t, vested, previous)
			assert.LessOrEqual(t, vested, lock.Amount)
			previous = vested
		}
	})
}

func TestLockMarkWithdrawn(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	withdrawnAt := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(createdAt).Once()

	lock, err := NewLock("alice", NativeAsset(), 1000, 10, mockTime)
	require.NoError(t, err)

	mockTime.EXPECT().Now().Return(withdrawnAt).Once()
	lock.MarkWithdrawn(mockTime)

	assert.Equal(t, StatusWithdrawn, lock.Status)
	assert.False(t, lock.IsActive())
	require.NotNil(t, lock.WithdrawnAt)
	assert.Equal(t, withdrawnAt, *lock.WithdrawnAt)
}

func TestLockClone(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	lock, err := NewLock("alice", TokenAsset("usdc-6"), 1000, 10, mockTime)
	require.NoError(t, err)
	lock.ID = "7"

	clone := lock.Clone()
	require.Equal(t, lock, clone)

	// Mutating the clone must not touch the original
	clone.MarkWithdrawn(mockTime)
	assert.True(t, lock.IsActive())
	assert.Nil(t, lock.WithdrawnAt)
	assert.False(t, clone.IsActive())
}
