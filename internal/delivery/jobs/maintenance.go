// Package jobs registers the background maintenance of reminders.
package jobs

import (
	"context"
	"log/slog"

	"crm/config"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RecurringScheduler runs named jobs on a cron spec.
type RecurringScheduler interface {
	AddRecurring(spec, name string, job func(ctx context.Context) error) error
}

// Params holds dependencies for the maintenance jobs, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Scheduler  RecurringScheduler
	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// Register restores pending reminders on start and schedules the orphan sweep.
func Register(params Params) error {
	cfg := params.Config.Reminder

	if cfg.SweepSchedule != "" {
		err := params.Scheduler.AddRecurring(cfg.SweepSchedule, "sweep_orphan_notifications", func(ctx context.Context) error {
			_, err := params.ReminderUC.SweepOrphans(ctx)

			return err
		})
		if err != nil {
			return errors.Wrap(err, "failed to schedule orphan sweep")
		}
		params.Logger.Info("Orphan sweep scheduled", slog.String("schedule", cfg.SweepSchedule))
	}

	if cfg.RestoreOnStart {
		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				// Reminders are lost with the process; a failed restore
				// must not keep the API down.
				if _, err := params.ReminderUC.RestoreReminders(ctx); err != nil {
					params.Logger.Error("Failed to restore reminders", slog.Any("error", err))
				}

				return nil
			},
		})
	}

	return nil
}
