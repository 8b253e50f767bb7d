package firestoredb

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/snapshot"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository is the constructor for the Firestore notification repository.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (repo *notificationRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(CollectionNotifications)
}

func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	doc := repo.collection().NewDoc()
	if notification.ID != "" {
		doc = repo.collection().Doc(notification.ID)
	}

	if _, err := doc.Create(ctx, notification); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = doc.ID

	return nil
}

func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id string) (*entity.Notification, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return decodeNotification(snap)
}

func (repo *notificationRepository) byUser(userID string) firestore.Query {
	return repo.collection().
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
}

func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return queryAll(ctx, repo.byUser(userID), decodeNotification)
}

func (repo *notificationRepository) FindNotificationsByEvent(ctx context.Context, eventID string) ([]*entity.Notification, error) {
	return queryAll(ctx, repo.collection().Where("idEvento", "==", eventID), decodeNotification)
}

func (repo *notificationRepository) FindNotificationsByStatus(ctx context.Context, status entity.NotificationStatus) ([]*entity.Notification, error) {
	return queryAll(ctx, repo.collection().Where("estado", "==", string(status)), decodeNotification)
}

func (repo *notificationRepository) FindAllNotifications(ctx context.Context) ([]*entity.Notification, error) {
	return queryAll(ctx, repo.collection().Query, decodeNotification)
}

func (repo *notificationRepository) UpdateNotificationStatus(ctx context.Context, id string, status entity.NotificationStatus) error {
	return repo.update(ctx, id, []firestore.Update{
		{Path: "estado", Value: string(status)},
	})
}

func (repo *notificationRepository) UpdateNotificationMirror(ctx context.Context, id string, mirror *entity.NotificationMirror) error {
	return repo.update(ctx, id, []firestore.Update{
		{Path: "titulo", Value: mirror.Title},
		{Path: "descripcion", Value: mirror.Description},
		{Path: "fecha", Value: mirror.Date},
		{Path: "hora", Value: mirror.Time},
		{Path: "notificationId", Value: mirror.ReminderID},
	})
}

func (repo *notificationRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	if _, err := repo.collection().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to update notification")
	}

	return nil
}

func (repo *notificationRepository) DeleteNotification(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

func (repo *notificationRepository) WatchNotificationsByUser(ctx context.Context, userID string) (snapshot.Iterator[*entity.Notification], error) {
	return watch(ctx, repo.byUser(userID), decodeNotification), nil
}

func decodeNotification(snap *firestore.DocumentSnapshot) (*entity.Notification, error) {
	var notification entity.Notification
	if err := snap.DataTo(&notification); err != nil {
		return nil, errors.Wrapf(err, "failed to decode notification %s", snap.Ref.ID)
	}
	notification.ID = snap.Ref.ID

	return &notification, nil
}
