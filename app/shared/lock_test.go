package shared

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSeasonLocks_AcquireAndRelease(t *testing.T) {
	locks := NewSeasonLocks(50 * time.Millisecond)
	seasonID := uuid.New()

	release, err := locks.Acquire(context.Background(), seasonID)
	require.NoError(t, err)

	// Second acquire on the same season times out with a conflict.
	_, err = locks.Acquire(context.Background(), seasonID)
	require.Error(t, err)
	require.True(t, IsConflict(err))

	release()

	// Slot is free again after release.
	release2, err := locks.Acquire(context.Background(), seasonID)
	require.NoError(t, err)
	release2()
}

func TestSeasonLocks_IndependentSeasons(t *testing.T) {
	locks := NewSeasonLocks(50 * time.Millisecond)

	releaseA, err := locks.Acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	defer releaseA()

	// A different season is not blocked.
	releaseB, err := locks.Acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	releaseB()
}

func TestSeasonLocks_ContextCanceled(t *testing.T) {
	locks := NewSeasonLocks(time.Second)
	seasonID := uuid.New()

	release, err := locks.Acquire(context.Background(), seasonID)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = locks.Acquire(ctx, seasonID)
	require.ErrorIs(t, err, context.Canceled)
}
