package handler

import (
	"errors"
	"net/http"

	"github.com/devstock/devices-server/internal/logger"
	"github.com/devstock/devices-server/internal/model"
)

// writeError maps a domain error to an HTTP status. Store failures are
// logged with their cause and surfaced as a generic server error; the raw
// diagnostics never reach the client.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "not found"})
	case errors.Is(err, model.ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request"})
	case errors.Is(err, model.ErrNotAvailable):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: model.ErrNotAvailable.Error()})
	case errors.Is(err, model.ErrNotCheckedOut):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: model.ErrNotCheckedOut.Error()})
	case errors.Is(err, model.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "login failed"})
	case errors.Is(err, model.ErrConflict):
		writeJSON(w, http.StatusConflict, messageResponse{Message: model.ErrConflict.Error()})
	default:
		log.Error("request failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "error on the server"})
	}
}
