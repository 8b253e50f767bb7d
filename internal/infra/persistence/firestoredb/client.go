// Package firestoredb implements the repositories on Cloud Firestore using
// the collection and field names of the mobile app.
package firestoredb

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collections.
const (
	CollectionEvents        = "eventos"
	CollectionNotifications = "notificaciones"
	CollectionClients       = "clientes"
	CollectionSales         = "ventas"
	CollectionDevices       = "dispositivos"
)

// maxInValues is the Firestore limit of values in an "in" filter.
const maxInValues = 30

// NewClient opens a Firestore client from the Firebase app and closes it on stop.
func NewClient(ctx context.Context, lc fx.Lifecycle, app *firebase.App, logger *slog.Logger) (*firestore.Client, error) {
	if app == nil {
		return nil, errors.New("firebase configuration is required for the firestore store driver")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// decodeAll decodes every document with decode.
func decodeAll[T any](docs []*firestore.DocumentSnapshot, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		item, err := decode(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// queryAll runs q and decodes the result.
func queryAll[T any](ctx context.Context, q firestore.Query, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to run query")
	}

	return decodeAll(docs, decode)
}

// chunk splits values into slices of at most size elements.
func chunk(values []string, size int) [][]string {
	var chunks [][]string
	for len(values) > size {
		chunks = append(chunks, values[:size])
		values = values[size:]
	}
	if len(values) > 0 {
		chunks = append(chunks, values)
	}

	return chunks
}
