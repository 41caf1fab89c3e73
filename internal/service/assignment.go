package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/devstock/devices-server/internal/logger"
	"github.com/devstock/devices-server/internal/model"
)

// Assignment owns the checkout/check-in state machine. A device is either
// available (no holder) or checked out to exactly one user. Both transitions
// are single conditional updates in the store; no in-process locking is
// involved, so the at-most-one-holder invariant holds across server
// processes sharing the database.
type Assignment struct {
	deviceStore model.DeviceStore
	userStore   model.UserStore
	logger      *logger.Logger
}

func NewAssignment(
	deviceStore model.DeviceStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Assignment {
	return &Assignment{
		deviceStore: deviceStore,
		userStore:   userStore,
		logger:      logger.WithComponent("assignment-service"),
	}
}

// Checkout assigns an available device to a user. Of two concurrent
// checkouts for the same device exactly one succeeds; the loser gets
// ErrNotAvailable. A checkout for an unknown user fails with ErrNotFound
// before the device is touched.
func (s *Assignment) Checkout(ctx context.Context, deviceID, userID uuid.UUID) error {
	_, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := s.deviceStore.Checkout(ctx, deviceID, userID); err != nil {
		return err
	}

	s.logger.Info("device checked out", "device_id", deviceID, "user_id", userID)

	return nil
}

// Checkin releases a checked-out device. A device with no holder fails with
// ErrNotCheckedOut and its state is left unchanged.
func (s *Assignment) Checkin(ctx context.Context, deviceID uuid.UUID) error {
	if err := s.deviceStore.Checkin(ctx, deviceID); err != nil {
		return err
	}

	s.logger.Info("device checked in", "device_id", deviceID)

	return nil
}

// ListForUser returns every device currently held by the user.
func (s *Assignment) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Device, error) {
	return s.deviceStore.ListByHolder(ctx, userID)
}
