package firestoredb

import (
	"context"
	"sync"
	"sync/atomic"

	"crm/internal/domain/snapshot"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// queryIterator adapts a Firestore snapshot listener to snapshot.Iterator.
// The listener is not safe for concurrent Stop and Next, so Stop cancels
// the listen context and Next releases the listener.
type queryIterator[T any] struct {
	it     *firestore.QuerySnapshotIterator
	cancel context.CancelFunc
	decode func(*firestore.DocumentSnapshot) (T, error)

	stopOnce sync.Once
	stopped  atomic.Bool
	released atomic.Bool
}

func watch[T any](ctx context.Context, q firestore.Query, decode func(*firestore.DocumentSnapshot) (T, error)) snapshot.Iterator[T] {
	listenCtx, cancel := context.WithCancel(ctx)

	return &queryIterator[T]{
		it:     q.Snapshots(listenCtx),
		cancel: cancel,
		decode: decode,
	}
}

func (q *queryIterator[T]) Next(ctx context.Context) ([]T, error) {
	if q.stopped.Load() {
		q.release()

		return nil, snapshot.ErrStopped
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	qs, err := q.it.Next()
	if err != nil {
		if q.stopped.Load() || errors.Is(err, iterator.Done) {
			q.release()

			return nil, snapshot.ErrStopped
		}
		if status.Code(err) == codes.Canceled && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, errors.Wrap(err, "failed to receive snapshot")
	}

	docs, err := qs.Documents.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read snapshot documents")
	}

	return decodeAll(docs, q.decode)
}

func (q *queryIterator[T]) Stop() {
	q.stopOnce.Do(func() {
		q.stopped.Store(true)
		q.cancel()
	})
}

func (q *queryIterator[T]) release() {
	if q.released.CompareAndSwap(false, true) {
		q.it.Stop()
	}
}
