package firestoredb

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type deviceRepository struct {
	client *firestore.Client
}

// NewDeviceRepository is the constructor for the Firestore device repository.
func NewDeviceRepository(client *firestore.Client) repository.DeviceRepository {
	return &deviceRepository{client: client}
}

func (repo *deviceRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(CollectionDevices)
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	doc := repo.collection().NewDoc()
	if device.ID != "" {
		doc = repo.collection().Doc(device.ID)
	}

	if _, err := doc.Create(ctx, device); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = doc.ID

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.UserDevice, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return decodeDevice(snap)
}

func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	q := repo.collection().
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return queryAll(ctx, q, decodeDevice)
}

func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	q := repo.collection().
		Where("userId", "==", userID).
		Where("isActive", "==", true).
		OrderBy("createdAt", firestore.Desc)

	return queryAll(ctx, q, decodeDevice)
}

func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID string, fcmToken string) error {
	return repo.update(ctx, deviceID, []firestore.Update{
		{Path: "fcmToken", Value: fcmToken},
		{Path: "isActive", Value: true},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (repo *deviceRepository) DeactivateDevicesByToken(ctx context.Context, tokens []string) error {
	for _, batch := range chunk(tokens, maxInValues) {
		docs, err := repo.collection().Where("fcmToken", "in", batch).Documents(ctx).GetAll()
		if err != nil {
			return errors.Wrap(err, "failed to find devices by token")
		}

		for _, doc := range docs {
			if err := repo.update(ctx, doc.Ref.ID, deactivation()); err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
				return err
			}
		}
	}

	return nil
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id string) error {
	return repo.update(ctx, id, deactivation())
}

func (repo *deviceRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	if _, err := repo.collection().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to update device")
	}

	return nil
}

func deactivation() []firestore.Update {
	return []firestore.Update{
		{Path: "isActive", Value: false},
		{Path: "updatedAt", Value: time.Now()},
	}
}

func decodeDevice(snap *firestore.DocumentSnapshot) (*entity.UserDevice, error) {
	var device entity.UserDevice
	if err := snap.DataTo(&device); err != nil {
		return nil, errors.Wrapf(err, "failed to decode device %s", snap.Ref.ID)
	}
	device.ID = snap.Ref.ID

	return &device, nil
}
