package gormstore

import (
	"context"
	"reflect"
	"sync"
	"time"

	"crm/internal/domain/snapshot"
)

// pollingIterator turns a query into a snapshot stream by re-running it on
// an interval and emitting only results that differ from the last one.
type pollingIterator[T any] struct {
	query    func(ctx context.Context) ([]T, error)
	interval time.Duration

	stopOnce sync.Once
	stopped  chan struct{}

	mu      sync.Mutex
	last    []T
	started bool
}

func newPollingIterator[T any](interval time.Duration, query func(ctx context.Context) ([]T, error)) *pollingIterator[T] {
	return &pollingIterator[T]{
		query:    query,
		interval: interval,
		stopped:  make(chan struct{}),
	}
}

// Next returns the current result on the first call, then blocks until the result changes.
func (it *pollingIterator[T]) Next(ctx context.Context) ([]T, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.isStopped() {
		return nil, snapshot.ErrStopped
	}

	if !it.started {
		items, err := it.query(ctx)
		if err != nil {
			return nil, err
		}
		it.started = true
		it.last = items

		return items, nil
	}

	ticker := time.NewTicker(it.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-it.stopped:
			return nil, snapshot.ErrStopped
		case <-ticker.C:
			items, err := it.query(withPollQuery(ctx))
			if err != nil {
				return nil, err
			}
			if reflect.DeepEqual(items, it.last) {
				continue
			}
			it.last = items

			return items, nil
		}
	}
}

func (it *pollingIterator[T]) Stop() {
	it.stopOnce.Do(func() { close(it.stopped) })
}

func (it *pollingIterator[T]) isStopped() bool {
	select {
	case <-it.stopped:
		return true
	default:
		return false
	}
}
