// Package persistence selects the repository implementations for the
// configured store driver.
package persistence

import (
	"context"
	"log/slog"

	"crm/config"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/firestoredb"
	"crm/internal/infra/persistence/gormstore"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// Repositories is the set of repositories provided to the use cases
type Repositories struct {
	fx.Out

	Events        repository.EventRepository
	Notifications repository.NotificationRepository
	Clients       repository.ClientRepository
	Sales         repository.SaleRepository
	Devices       repository.DeviceRepository
}

// New opens the configured store and builds its repositories.
func New(params Params) (Repositories, error) {
	driver := params.Config.Store.Driver
	params.Logger.Info("Opening store", slog.String("driver", driver))

	switch driver {
	case config.StoreDriverFirestore:
		client, err := firestoredb.NewClient(params.Ctx, params.Lc, params.App, params.Logger)
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Events:        firestoredb.NewEventRepository(client),
			Notifications: firestoredb.NewNotificationRepository(client),
			Clients:       firestoredb.NewClientRepository(client),
			Sales:         firestoredb.NewSaleRepository(client),
			Devices:       firestoredb.NewDeviceRepository(client),
		}, nil

	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		db, err := gormstore.New(gormstore.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		poll := params.Config.Store.PollInterval

		return Repositories{
			Events:        gormstore.NewEventRepository(db, poll),
			Notifications: gormstore.NewNotificationRepository(db, poll),
			Clients:       gormstore.NewClientRepository(db),
			Sales:         gormstore.NewSaleRepository(db, poll),
			Devices:       gormstore.NewDeviceRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}
