package usecase

import (
	"context"

	"crm/internal/domain/service"
)

// ReminderDeliveryUsecase pushes fired reminders to the owner's devices
type ReminderDeliveryUsecase interface {
	service.ReminderHandler
}

// ReminderUsecase keeps scheduled reminders and notification records consistent
type ReminderUsecase interface {
	// RestoreReminders reschedules the pending records whose instant is
	// still ahead, keeping their reminder IDs. It returns how many were restored.
	RestoreReminders(ctx context.Context) (int, error)

	// SweepOrphans deletes records whose event no longer exists and returns how many were removed.
	SweepOrphans(ctx context.Context) (int, error)
}
