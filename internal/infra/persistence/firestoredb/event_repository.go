package firestoredb

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/snapshot"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/pkg/errors"
)

const countAlias = "all"

type eventRepository struct {
	client *firestore.Client
}

// NewEventRepository is the constructor for the Firestore event repository.
func NewEventRepository(client *firestore.Client) repository.EventRepository {
	return &eventRepository{client: client}
}

func (repo *eventRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(CollectionEvents)
}

func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	doc := repo.collection().NewDoc()
	if event.ID != "" {
		doc = repo.collection().Doc(event.ID)
	}

	if _, err := doc.Create(ctx, event); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = doc.ID

	return nil
}

func (repo *eventRepository) FindEventByID(ctx context.Context, id string) (*entity.Event, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return decodeEvent(snap)
}

func (repo *eventRepository) byDate(userID, date string) firestore.Query {
	return repo.collection().
		Where("userId", "==", userID).
		Where("fecha", "==", date).
		OrderBy("hora", firestore.Asc)
}

func (repo *eventRepository) FindEventsByDate(ctx context.Context, userID, date string) ([]*entity.Event, error) {
	return queryAll(ctx, repo.byDate(userID, date), decodeEvent)
}

func (repo *eventRepository) FindEventsByUser(ctx context.Context, userID string) ([]*entity.Event, error) {
	q := repo.collection().
		Where("userId", "==", userID).
		OrderBy("fecha", firestore.Asc).
		OrderBy("hora", firestore.Asc)

	return queryAll(ctx, q, decodeEvent)
}

func (repo *eventRepository) CountEventsByDate(ctx context.Context, userID, date string) (int, error) {
	q := repo.collection().
		Where("userId", "==", userID).
		Where("fecha", "==", date)

	res, err := q.NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count events by date")
	}

	value, ok := res[countAlias].(*firestorepb.Value)
	if !ok {
		return 0, errors.Errorf("unexpected count result type %T", res[countAlias])
	}

	return int(value.GetIntegerValue()), nil
}

func (repo *eventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	_, err := repo.collection().Doc(event.ID).Update(ctx, []firestore.Update{
		{Path: "titulo", Value: event.Title},
		{Path: "descripcion", Value: event.Description},
		{Path: "fecha", Value: event.Date},
		{Path: "hora", Value: event.Time},
		{Path: "clienteId", Value: event.ClientID},
		{Path: "notificationId", Value: event.ReminderID},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrEventNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update event")
	}

	return nil
}

func (repo *eventRepository) DeleteEvent(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrEventNotFound
		}

		return errors.Wrap(err, "failed to delete event")
	}

	return nil
}

func (repo *eventRepository) WatchEventsByDate(ctx context.Context, userID, date string) (snapshot.Iterator[*entity.Event], error) {
	return watch(ctx, repo.byDate(userID, date), decodeEvent), nil
}

func decodeEvent(snap *firestore.DocumentSnapshot) (*entity.Event, error) {
	var event entity.Event
	if err := snap.DataTo(&event); err != nil {
		return nil, errors.Wrapf(err, "failed to decode event %s", snap.Ref.ID)
	}
	event.ID = snap.Ref.ID

	return &event, nil
}
