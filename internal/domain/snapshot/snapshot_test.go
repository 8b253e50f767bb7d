package snapshot

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanIterator replays whatever is sent on results until stopped.
type chanIterator struct {
	results chan []int
	errs    chan error
	stop    chan struct{}
	once    sync.Once
	stops   atomic.Int32
}

func newChanIterator() *chanIterator {
	return &chanIterator{
		results: make(chan []int),
		errs:    make(chan error),
		stop:    make(chan struct{}),
	}
}

func (it *chanIterator) Next(ctx context.Context) ([]int, error) {
	select {
	case r := <-it.results:
		return r, nil
	case err := <-it.errs:
		return nil, err
	case <-it.stop:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (it *chanIterator) Stop() {
	it.stops.Add(1)
	it.once.Do(func() { close(it.stop) })
}

func TestSubscribe_DeliversEverySnapshot(t *testing.T) {
	it := newChanIterator()
	got := make(chan []int, 2)

	unsubscribe := Subscribe[int](context.Background(), it, func(items []int) {
		got <- items
	}, func(err error) {
		t.Errorf("unexpected error: %v", err)
	})
	defer unsubscribe()

	it.results <- []int{1}
	it.results <- []int{1, 2}

	assert.Equal(t, []int{1}, <-got)
	assert.Equal(t, []int{1, 2}, <-got)
}

func TestSubscribe_UnsubscribeStopsCallbacks(t *testing.T) {
	it := newChanIterator()
	var calls atomic.Int32

	unsubscribe := Subscribe[int](context.Background(), it, func([]int) {
		calls.Add(1)
	}, nil)

	it.results <- []int{1}
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	unsubscribe()
	unsubscribe()

	select {
	case it.results <- []int{2}:
		t.Fatal("iterator still consumed after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Equal(t, int32(1), calls.Load())
	assert.GreaterOrEqual(t, it.stops.Load(), int32(1))
}

func TestSubscribe_ReportsIteratorError(t *testing.T) {
	it := newChanIterator()
	errCh := make(chan error, 1)

	unsubscribe := Subscribe[int](context.Background(), it, func([]int) {}, func(err error) {
		errCh <- err
	})
	defer unsubscribe()

	boom := errors.New("permission denied")
	it.errs <- boom

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("onError not called")
	}
}

func TestSubscribe_StoppedIteratorIsNotAnError(t *testing.T) {
	it := newChanIterator()

	unsubscribe := Subscribe[int](context.Background(), it, func([]int) {}, func(err error) {
		t.Errorf("unexpected error: %v", err)
	})

	it.Stop()
	unsubscribe()
}

func TestSubscribe_ParentContextCancel(t *testing.T) {
	it := newChanIterator()
	ctx, cancel := context.WithCancel(context.Background())

	unsubscribe := Subscribe[int](ctx, it, func([]int) {}, func(err error) {
		t.Errorf("unexpected error: %v", err)
	})

	cancel()
	require.Eventually(t, func() bool { return it.stops.Load() >= 1 }, time.Second, 5*time.Millisecond)
	unsubscribe()
}
