package service

import (
	"context"
	"sync"
)

// keyedLock serializes work per string key. The booking service holds a
// trainer's key across the conflict check and the commit so that two
// concurrent booking attempts cannot both pass the check, and a
// booking's key across a transition and its save to prevent lost
// updates. Acquire blocks until the key is free or ctx is done.
type keyedLock struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newKeyedLock() *keyedLock {
	return &keyedLock{slots: make(map[string]chan struct{})}
}

func (l *keyedLock) Acquire(ctx context.Context, key string) error {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}
	l.mu.Unlock()

	select {
	case slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees the key. Must only be called after a successful Acquire.
func (l *keyedLock) Release(key string) {
	l.mu.Lock()
	slot := l.slots[key]
	l.mu.Unlock()
	<-slot
}
