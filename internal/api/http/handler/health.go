package handler

import (
	"context"
	"net/http"

	"github.com/devstock/devices-server/internal/logger"
)

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles GET /health.
type Health struct {
	store  Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(store Pinger, logger *logger.Logger) *Health {
	return &Health{
		store:  store,
		logger: logger,
	}
}

// Check responds 200 when the store answers a ping, 503 otherwise.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed", "error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, messageResponse{Message: "store unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}
