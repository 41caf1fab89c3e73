package handler

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/devstock/devices-server/internal/logger"
	"github.com/devstock/devices-server/internal/model"
)

// maxUploadSize bounds how much of a multipart body is held in memory.
const maxUploadSize = 32 << 20 // 32 MiB

// Upload handles image upload and retrieval for devices and users. Both
// entity kinds share the same shape: store the bytes, persist the returned
// reference path on the entity.
type Upload struct {
	devices DeviceService
	users   UserService
	logger  *logger.Logger
}

// NewUpload creates a new Upload handler.
func NewUpload(devices DeviceService, users UserService, logger *logger.Logger) *Upload {
	return &Upload{
		devices: devices,
		users:   users,
		logger:  logger,
	}
}

type attachFunc func(r *http.Request, id uuid.UUID, filename string, file io.Reader) (string, error)

func (h *Upload) attachImage(w http.ResponseWriter, r *http.Request, idVar, fileField string, attach attachFunc) {
	id, err := uuid.Parse(mux.Vars(r)[idVar])
	if err != nil {
		writeError(w, h.logger, model.ErrNotFound)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}

	file, header, err := r.FormFile(fileField)
	if err != nil {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}
	defer file.Close()

	path, err := attach(r, id, header.Filename, file)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, imagePathResponse{ImagePath: path})
}

// DeviceImage handles POST /upload/{deviceId} with multipart field "deviceImage".
func (h *Upload) DeviceImage(w http.ResponseWriter, r *http.Request) {
	h.attachImage(w, r, "deviceId", "deviceImage", func(r *http.Request, id uuid.UUID, filename string, file io.Reader) (string, error) {
		return h.devices.AttachImage(r.Context(), id, filename, file)
	})
}

// UserImage handles POST /upload-user-image/{userId} with multipart field "userImage".
func (h *Upload) UserImage(w http.ResponseWriter, r *http.Request) {
	h.attachImage(w, r, "userId", "userImage", func(r *http.Request, id uuid.UUID, filename string, file io.Reader) (string, error) {
		return h.users.AttachImage(r.Context(), id, filename, file)
	})
}

func (h *Upload) serveImage(w http.ResponseWriter, rc io.ReadCloser, contentType string) {
	defer rc.Close()
	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Error("failed to stream image", "error", err.Error())
	}
}

// GetDeviceImage handles GET /device-image/{deviceId}.
func (h *Upload) GetDeviceImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["deviceId"])
	if err != nil {
		writeError(w, h.logger, model.ErrNotFound)
		return
	}

	rc, contentType, err := h.devices.GetImage(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.serveImage(w, rc, contentType)
}

// GetUserImage handles GET /user-image/{userId}.
func (h *Upload) GetUserImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, h.logger, model.ErrNotFound)
		return
	}

	rc, contentType, err := h.users.GetImage(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.serveImage(w, rc, contentType)
}
