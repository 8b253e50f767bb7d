package gormstore

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/snapshot"
	"crm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db           *gorm.DB
	pollInterval time.Duration
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB, pollInterval time.Duration) repository.NotificationRepository {
	return &notificationRepository{
		db:           db,
		pollInterval: pollInterval,
	}
}

// CreateNotification persists a new notification record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification record by its ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id string) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByUser retrieves a user's records, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return repo.find(ctx, "failed to find notifications by user", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID).Order("created_at DESC")
	})
}

// FindNotificationsByEvent retrieves the records referencing an event.
func (repo *notificationRepository) FindNotificationsByEvent(ctx context.Context, eventID string) ([]*entity.Notification, error) {
	return repo.find(ctx, "failed to find notifications by event", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("event_id = ?", eventID)
	})
}

// FindNotificationsByStatus retrieves every record with the given status.
func (repo *notificationRepository) FindNotificationsByStatus(ctx context.Context, status entity.NotificationStatus) ([]*entity.Notification, error) {
	return repo.find(ctx, "failed to find notifications by status", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ?", string(status))
	})
}

// FindAllNotifications retrieves every record.
func (repo *notificationRepository) FindAllNotifications(ctx context.Context) ([]*entity.Notification, error) {
	return repo.find(ctx, "failed to find notifications", func(tx *gorm.DB) *gorm.DB {
		return tx
	})
}

func (repo *notificationRepository) find(ctx context.Context, msg string, scope func(*gorm.DB) *gorm.DB) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// UpdateNotificationStatus sets the status of a record.
func (repo *notificationRepository) UpdateNotificationStatus(ctx context.Context, id string, status entity.NotificationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// UpdateNotificationMirror refreshes the denormalized event fields of a record.
func (repo *notificationRepository) UpdateNotificationMirror(ctx context.Context, id string, mirror *entity.NotificationMirror) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       mirror.Title,
			"description": mirror.Description,
			"date":        mirror.Date,
			"time":        mirror.Time,
			"reminder_id": mirror.ReminderID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification mirror")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteNotification removes a record.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// WatchNotificationsByUser polls a user's records for changes.
func (repo *notificationRepository) WatchNotificationsByUser(_ context.Context, userID string) (snapshot.Iterator[*entity.Notification], error) {
	return newPollingIterator(repo.pollInterval, func(ctx context.Context) ([]*entity.Notification, error) {
		return repo.FindNotificationsByUser(ctx, userID)
	}), nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:          data.ID,
		EventID:     data.EventID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		Time:        data.Time,
		UserID:      data.UserID,
		Status:      entity.NotificationStatus(data.Status),
		ReminderID:  data.ReminderID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:          data.ID,
		EventID:     data.EventID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		Time:        data.Time,
		UserID:      data.UserID,
		Status:      string(data.Status),
		ReminderID:  data.ReminderID,
		CreatedAt:   data.CreatedAt,
	}
}
