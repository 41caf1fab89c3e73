package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeviceStore defines persistence operations for devices.
type DeviceStore interface {
	Create(ctx context.Context, device Device) (Device, error)
	GetByID(ctx context.Context, id uuid.UUID) (Device, error)
	List(ctx context.Context) ([]Device, error)
	Update(ctx context.Context, id uuid.UUID, fields DeviceFields) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetImagePath(ctx context.Context, id uuid.UUID, path string) error
	Checkout(ctx context.Context, deviceID, userID uuid.UUID) error
	Checkin(ctx context.Context, deviceID uuid.UUID) error
	ListByHolder(ctx context.Context, userID uuid.UUID) ([]Device, error)
}

// Device represents a tracked device. HolderID is the sole piece of
// assignment state: nil means the device is available, non-nil means it is
// checked out to that user.
type Device struct {
	ID           uuid.UUID
	Name         string
	Description  string
	SerialNumber string
	Manufacturer string
	ImagePath    *string
	HolderID     *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DeviceFields contains the descriptive fields set on create and overwritten
// as a whole on update.
type DeviceFields struct {
	Name         string
	Description  string
	SerialNumber string
	Manufacturer string
}
