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

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db           *gorm.DB
	pollInterval time.Duration
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB, pollInterval time.Duration) repository.EventRepository {
	return &eventRepository{
		db:           db,
		pollInterval: pollInterval,
	}
}

// CreateEvent persists a new event.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindEventByID retrieves an event by its ID.
func (repo *eventRepository) FindEventByID(ctx context.Context, id string) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// FindEventsByDate retrieves a user's events of a day ordered by time.
func (repo *eventRepository) FindEventsByDate(ctx context.Context, userID, date string) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("time ASC").
		Order("created_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events by date")
	}

	return toEventDomains(eventModels), nil
}

// FindEventsByUser retrieves all events of a user ordered by date and time.
func (repo *eventRepository) FindEventsByUser(ctx context.Context, userID string) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Order("time ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events by user")
	}

	return toEventDomains(eventModels), nil
}

// CountEventsByDate counts a user's events of a day.
func (repo *eventRepository) CountEventsByDate(ctx context.Context, userID, date string) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count events by date")
	}

	return int(count), nil
}

// UpdateEvent overwrites the mutable fields of an event.
func (repo *eventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"title":       event.Title,
			"description": event.Description,
			"date":        event.Date,
			"time":        event.Time,
			"client_id":   event.ClientID,
			"reminder_id": event.ReminderID,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes an event.
func (repo *eventRepository) DeleteEvent(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EventModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// WatchEventsByDate polls the events of a day for changes.
func (repo *eventRepository) WatchEventsByDate(_ context.Context, userID, date string) (snapshot.Iterator[*entity.Event], error) {
	return newPollingIterator(repo.pollInterval, func(ctx context.Context) ([]*entity.Event, error) {
		return repo.FindEventsByDate(ctx, userID, date)
	}), nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		Time:        data.Time,
		UserID:      data.UserID,
		ClientID:    data.ClientID,
		ReminderID:  data.ReminderID,
		CreatedAt:   data.CreatedAt,
	}
}

func toEventDomains(models []*model.EventModel) []*entity.Event {
	events := make([]*entity.Event, 0, len(models))
	for _, eventM := range models {
		events = append(events, toEventDomain(eventM))
	}

	return events
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		Time:        data.Time,
		UserID:      data.UserID,
		ClientID:    data.ClientID,
		ReminderID:  data.ReminderID,
		CreatedAt:   data.CreatedAt,
	}
}
