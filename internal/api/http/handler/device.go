package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/devstock/devices-server/internal/logger"
	"github.com/devstock/devices-server/internal/model"
)

// DeviceService defines business operations for the device registry.
type DeviceService interface {
	Create(ctx context.Context, fields model.DeviceFields) (model.Device, error)
	Get(ctx context.Context, id uuid.UUID) (model.Device, error)
	List(ctx context.Context) ([]model.Device, error)
	Update(ctx context.Context, id uuid.UUID, fields model.DeviceFields) error
	Delete(ctx context.Context, id uuid.UUID) error
	AttachImage(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (string, error)
	GetImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error)
}

// Device handles HTTP endpoints for the device registry.
type Device struct {
	service DeviceService
	logger  *logger.Logger
}

// NewDevice creates a new Device handler.
func NewDevice(service DeviceService, logger *logger.Logger) *Device {
	return &Device{
		service: service,
		logger:  logger,
	}
}

// List handles GET /devices.
func (h *Device) List(w http.ResponseWriter, r *http.Request) {
	devices, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeviceResponses(devices))
}

// Get handles GET /devices/{id}.
func (h *Device) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, model.ErrNotFound)
		return
	}

	device, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeviceResponse(device))
}

// Create handles POST /devices.
func (h *Device) Create(w http.ResponseWriter, r *http.Request) {
	var req deviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}

	device, err := h.service.Create(r.Context(), req.fields())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: device.ID.String()})
}

// Update handles PUT /devices/{id}.
func (h *Device) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, model.ErrNotFound)
		return
	}

	var req deviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}

	if err := h.service.Update(r.Context(), id, req.fields()); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "device updated successfully"})
}

// Delete handles DELETE /devices/{id}.
func (h *Device) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, model.ErrNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "device deleted successfully"})
}
