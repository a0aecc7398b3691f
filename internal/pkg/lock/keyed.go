package lock

import (
	"context"
	"sync"
	"time"

	"autocare-api/internal/pkg/errs"
)

// ErrAcquireTimeout is returned when a serialization slot could not be taken
// within the bound. Safe to retry with backoff; the guarded operation did not
// run.
var ErrAcquireTimeout = errs.New("lock acquire timeout")

type entry struct {
	ch   chan struct{}
	refs int
}

// KeyedMutex serializes operations per key. Locks for distinct keys are
// independent; entries are reclaimed once the last waiter releases, so the
// map does not grow with the universe of ids ever seen.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
	timeout time.Duration
}

func NewKeyedMutex(timeout time.Duration) *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*entry),
		timeout: timeout,
	}
}

// Acquire blocks until the slot for key is free, the timeout elapses, or ctx
// is done. On success the returned release function must be called exactly
// once.
func (k *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	timer := time.NewTimer(k.timeout)
	defer timer.Stop()

	select {
	case e.ch <- struct{}{}:
		return func() {
			<-e.ch
			k.release(key, e)
		}, nil
	case <-timer.C:
		k.release(key, e)
		return nil, ErrAcquireTimeout
	case <-ctx.Done():
		k.release(key, e)
		return nil, ctx.Err()
	}
}

func (k *KeyedMutex) release(key string, e *entry) {
	k.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()
}
