package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/devstock/devices-server/internal/model"
)

// MockDeviceService mocks the DeviceService interface
type MockDeviceService struct {
	mock.Mock
}

func (m *MockDeviceService) Create(ctx context.Context, fields model.DeviceFields) (model.Device, error) {
	args := m.Called(ctx, fields)
	return args.Get(0).(model.Device), args.Error(1)
}

func (m *MockDeviceService) Get(ctx context.Context, id uuid.UUID) (model.Device, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Device), args.Error(1)
}

func (m *MockDeviceService) List(ctx context.Context) ([]model.Device, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *MockDeviceService) Update(ctx context.Context, id uuid.UUID, fields model.DeviceFields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockDeviceService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeviceService) AttachImage(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, id, filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceService) GetImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, password, email string) (model.User, error) {
	args := m.Called(ctx, username, password, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) AttachImage(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, id, filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) GetImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

// MockAssignmentService mocks the AssignmentService interface
type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) Checkout(ctx context.Context, deviceID, userID uuid.UUID) error {
	args := m.Called(ctx, deviceID, userID)
	return args.Error(0)
}

func (m *MockAssignmentService) Checkin(ctx context.Context, deviceID uuid.UUID) error {
	args := m.Called(ctx, deviceID)
	return args.Error(0)
}

func (m *MockAssignmentService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Device, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Device), args.Error(1)
}

// MockPinger mocks the Pinger interface
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
