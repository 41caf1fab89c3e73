package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/devstock/devices-server/internal/logger"
	"github.com/devstock/devices-server/internal/model"
)

// AssignmentService defines the checkout/check-in operations.
type AssignmentService interface {
	Checkout(ctx context.Context, deviceID, userID uuid.UUID) error
	Checkin(ctx context.Context, deviceID uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Device, error)
}

// Assignment handles HTTP endpoints for device assignment.
type Assignment struct {
	service AssignmentService
	logger  *logger.Logger
}

// NewAssignment creates a new Assignment handler.
func NewAssignment(service AssignmentService, logger *logger.Logger) *Assignment {
	return &Assignment{
		service: service,
		logger:  logger,
	}
}

type checkoutRequest struct {
	UserID string `json:"userId"`
}

// Checkout handles POST /devices/{id}/checkout. A missing userId is rejected
// before the store is touched.
func (h *Assignment) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}
	if req.UserID == "" {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}

	deviceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, model.ErrNotAvailable)
		return
	}

	if err := h.service.Checkout(r.Context(), deviceID, userID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "device checked out successfully"})
}

// Checkin handles POST /devices/{id}/checkin.
func (h *Assignment) Checkin(w http.ResponseWriter, r *http.Request) {
	deviceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, model.ErrNotCheckedOut)
		return
	}

	if err := h.service.Checkin(r.Context(), deviceID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "device checked in successfully"})
}

// DevicesForUser handles GET /user/{userId}/devices.
func (h *Assignment) DevicesForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, h.logger, model.ErrNotFound)
		return
	}

	devices, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeviceResponses(devices))
}
