package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devstock/devices-server/internal/model"
	"github.com/devstock/devices-server/internal/testutil"
)

func TestDevice_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success, holder absent", func(t *testing.T) {
		deviceStore := &MockDeviceStore{}
		deviceStore.On("Create", ctx, mock.MatchedBy(func(d model.Device) bool {
			return d.Name == "Laptop-1" && d.SerialNumber == "SN1" && d.HolderID == nil && d.ID != uuid.Nil
		})).Return(model.Device{ID: uuid.New(), Name: "Laptop-1", SerialNumber: "SN1"}, nil)

		s := NewDevice(deviceStore, &MockStorage{}, testutil.MakeNoopLogger())
		device, err := s.Create(ctx, model.DeviceFields{Name: "Laptop-1", SerialNumber: "SN1"})

		require.NoError(t, err)
		assert.Equal(t, "Laptop-1", device.Name)
		deviceStore.AssertExpectations(t)
	})

	t.Run("missing name or serial", func(t *testing.T) {
		deviceStore := &MockDeviceStore{}
		s := NewDevice(deviceStore, &MockStorage{}, testutil.MakeNoopLogger())

		_, err := s.Create(ctx, model.DeviceFields{SerialNumber: "SN1"})
		assert.ErrorIs(t, err, model.ErrInvalidRequest)

		_, err = s.Create(ctx, model.DeviceFields{Name: "Laptop-1"})
		assert.ErrorIs(t, err, model.ErrInvalidRequest)

		deviceStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate serial", func(t *testing.T) {
		deviceStore := &MockDeviceStore{}
		deviceStore.On("Create", ctx, mock.Anything).Return(model.Device{}, model.ErrConflict)

		s := NewDevice(deviceStore, &MockStorage{}, testutil.MakeNoopLogger())
		_, err := s.Create(ctx, model.DeviceFields{Name: "Laptop-1", SerialNumber: "SN1"})

		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

func TestDevice_Update(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deviceStore := &MockDeviceStore{}
		fields := model.DeviceFields{Name: "Laptop-1", SerialNumber: "SN1", Manufacturer: "ACME"}
		deviceStore.On("Update", ctx, deviceID, fields).Return(nil)

		s := NewDevice(deviceStore, &MockStorage{}, testutil.MakeNoopLogger())
		require.NoError(t, s.Update(ctx, deviceID, fields))
	})

	t.Run("not found", func(t *testing.T) {
		deviceStore := &MockDeviceStore{}
		fields := model.DeviceFields{Name: "Laptop-1", SerialNumber: "SN1"}
		deviceStore.On("Update", ctx, deviceID, fields).Return(model.ErrNotFound)

		s := NewDevice(deviceStore, &MockStorage{}, testutil.MakeNoopLogger())
		assert.ErrorIs(t, s.Update(ctx, deviceID, fields), model.ErrNotFound)
	})
}

func TestDevice_GetListDelete(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()

	deviceStore := &MockDeviceStore{}
	deviceStore.On("GetByID", ctx, deviceID).Return(model.Device{ID: deviceID}, nil)
	deviceStore.On("List", ctx).Return([]model.Device{{ID: deviceID}}, nil)
	deviceStore.On("Delete", ctx, deviceID).Return(nil)

	s := NewDevice(deviceStore, &MockStorage{}, testutil.MakeNoopLogger())

	device, err := s.Get(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, deviceID, device.ID)

	devices, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 1)

	require.NoError(t, s.Delete(ctx, deviceID))
	deviceStore.AssertExpectations(t)
}

func TestDevice_AttachImage(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deviceStore := &MockDeviceStore{}
		storage := &MockStorage{}
		storage.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "devices/"+deviceID.String()+"/") && strings.HasSuffix(key, ".jpg")
		}), mock.Anything, "image/jpeg").Return(nil)
		deviceStore.On("SetImagePath", ctx, deviceID, mock.Anything).Return(nil)

		s := NewDevice(deviceStore, storage, testutil.MakeNoopLogger())
		key, err := s.AttachImage(ctx, deviceID, "photo.JPG", strings.NewReader("img"))

		require.NoError(t, err)
		assert.NotEmpty(t, key)
		storage.AssertExpectations(t)
	})

	t.Run("device missing at persist time", func(t *testing.T) {
		deviceStore := &MockDeviceStore{}
		storage := &MockStorage{}
		storage.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		deviceStore.On("SetImagePath", ctx, deviceID, mock.Anything).Return(model.ErrNotFound)

		s := NewDevice(deviceStore, storage, testutil.MakeNoopLogger())
		_, err := s.AttachImage(ctx, deviceID, "photo.jpg", strings.NewReader("img"))

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
