package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLockAcquireRelease(t *testing.T) {
	ctx := context.Background()
	locks := newKeyedLock()

	require.NoError(t, locks.Acquire(ctx, "trainer:TR000001"))

	// A different key is independent of the held one.
	require.NoError(t, locks.Acquire(ctx, "trainer:TR000002"))
	locks.Release("trainer:TR000002")

	locks.Release("trainer:TR000001")
	require.NoError(t, locks.Acquire(ctx, "trainer:TR000001"))
	locks.Release("trainer:TR000001")
}

func TestKeyedLockAcquireTimesOut(t *testing.T) {
	locks := newKeyedLock()
	require.NoError(t, locks.Acquire(context.Background(), "booking:BK000001"))
	defer locks.Release("booking:BK000001")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := locks.Acquire(ctx, "booking:BK000001")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKeyedLockBlocksUntilReleased(t *testing.T) {
	ctx := context.Background()
	locks := newKeyedLock()
	require.NoError(t, locks.Acquire(ctx, "booking:BK000001"))

	acquired := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, locks.Acquire(ctx, "booking:BK000001"))
		close(acquired)
		locks.Release("booking:BK000001")
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire succeeded while lock was held")
	case <-time.After(20 * time.Millisecond):
	}

	locks.Release("booking:BK000001")
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second acquire did not proceed after release")
	}
	wg.Wait()
}
