// Package snapshot models live queries as a stream of full result sets.
package snapshot

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ErrStopped is returned by Next once the iterator has been stopped.
var ErrStopped = errors.New("snapshot iterator stopped")

// Iterator yields the complete current result of a query, once immediately
// and again every time the result changes. Stop must be idempotent and safe
// to call while Next is blocked.
type Iterator[T any] interface {
	Next(ctx context.Context) ([]T, error)
	Stop()
}

// Subscribe drives it in a background goroutine, calling onData with every
// snapshot and onError once if the stream fails. The returned function
// cancels the subscription; it is idempotent and returns after the last
// callback has completed. It must not be called from inside a callback.
func Subscribe[T any](ctx context.Context, it Iterator[T], onData func([]T), onError func(error)) (unsubscribe func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer it.Stop()

		for {
			items, err := it.Next(ctx)
			if err != nil {
				if ctx.Err() == nil && !errors.Is(err, ErrStopped) && onError != nil {
					onError(err)
				}

				return
			}

			if ctx.Err() != nil {
				return
			}

			onData(items)
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			cancel()
			it.Stop()
			<-done
		})
	}
}
