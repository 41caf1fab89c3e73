package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/devstock/devices-server/internal/logger"
	"github.com/devstock/devices-server/internal/model"
)

// Device implements the device registry: CRUD over devices plus image
// attachment. Assignment transitions live in the Assignment service so that
// holder changes always go through the invariant-checking path.
type Device struct {
	deviceStore model.DeviceStore
	storage     model.Storage
	logger      *logger.Logger
}

func NewDevice(
	deviceStore model.DeviceStore,
	storage model.Storage,
	logger *logger.Logger,
) *Device {
	return &Device{
		deviceStore: deviceStore,
		storage:     storage,
		logger:      logger.WithComponent("device-service"),
	}
}

func (s *Device) Create(ctx context.Context, fields model.DeviceFields) (model.Device, error) {
	if fields.Name == "" || fields.SerialNumber == "" {
		return model.Device{}, model.ErrInvalidRequest
	}

	device := model.Device{
		ID:           uuid.New(),
		Name:         fields.Name,
		Description:  fields.Description,
		SerialNumber: fields.SerialNumber,
		Manufacturer: fields.Manufacturer,
	}

	saved, err := s.deviceStore.Create(ctx, device)
	if err != nil {
		return model.Device{}, err
	}

	s.logger.Info("device created", "device_id", saved.ID, "serial_number", saved.SerialNumber)

	return saved, nil
}

func (s *Device) Get(ctx context.Context, id uuid.UUID) (model.Device, error) {
	return s.deviceStore.GetByID(ctx, id)
}

func (s *Device) List(ctx context.Context) ([]model.Device, error) {
	return s.deviceStore.List(ctx)
}

// Update overwrites the descriptive fields. Concurrent updates are
// last-writer-wins; holder state is untouched.
func (s *Device) Update(ctx context.Context, id uuid.UUID, fields model.DeviceFields) error {
	if fields.Name == "" || fields.SerialNumber == "" {
		return model.ErrInvalidRequest
	}
	return s.deviceStore.Update(ctx, id, fields)
}

// Delete removes the device row. Blobs attached to the device stay in the
// asset store.
func (s *Device) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deviceStore.Delete(ctx, id)
}

// AttachImage stores the upload and persists its reference path on the
// device. The upload happens first, so a missing device leaves an orphan
// blob behind.
func (s *Device) AttachImage(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (string, error) {
	key := imageKey("devices", id, filename)

	if err := s.storage.Upload(ctx, key, r, imageContentType(key)); err != nil {
		return "", fmt.Errorf("failed to upload device image: %w", err)
	}

	if err := s.deviceStore.SetImagePath(ctx, id, key); err != nil {
		return "", err
	}

	s.logger.Info("device image attached", "device_id", id, "image_path", key)

	return key, nil
}

// GetImage returns a reader over the device's image and its content type.
func (s *Device) GetImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	device, err := s.deviceStore.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if device.ImagePath == nil {
		return nil, "", model.ErrNotFound
	}

	rc, err := s.storage.Download(ctx, *device.ImagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download device image: %w", err)
	}

	return rc, imageContentType(*device.ImagePath), nil
}
