package shared

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultLockWait bounds how long a caller blocks waiting for a season's
// processing slot before receiving a retryable conflict.
const DefaultLockWait = 5 * time.Second

// SeasonLocks serializes score processing per season. Handicap ingestion is
// order-sensitive, so at most one ProcessMatch pipeline may run per season at
// a time; different seasons proceed independently.
type SeasonLocks struct {
	mu    sync.Mutex
	slots map[uuid.UUID]chan struct{}
	wait  time.Duration
}

// NewSeasonLocks creates a lock manager with the given maximum wait. A zero
// wait falls back to DefaultLockWait.
func NewSeasonLocks(wait time.Duration) *SeasonLocks {
	if wait <= 0 {
		wait = DefaultLockWait
	}
	return &SeasonLocks{
		slots: make(map[uuid.UUID]chan struct{}),
		wait:  wait,
	}
}

func (l *SeasonLocks) slot(seasonID uuid.UUID) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[seasonID]
	if !ok {
		s = make(chan struct{}, 1)
		l.slots[seasonID] = s
	}
	return s
}

// Acquire takes the season's processing slot, waiting up to the configured
// bound. It returns a release func on success, or ErrConflict if another
// submission holds the slot past the deadline.
func (l *SeasonLocks) Acquire(ctx context.Context, seasonID uuid.UUID) (func(), error) {
	s := l.slot(seasonID)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case s <- struct{}{}:
		return func() { <-s }, nil
	case <-timer.C:
		return nil, Conflictf("score processing already in progress for season %s", seasonID)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
