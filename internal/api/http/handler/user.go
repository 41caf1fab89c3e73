package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/devstock/devices-server/internal/logger"
	"github.com/devstock/devices-server/internal/model"
)

// UserService defines business operations for the user registry.
type UserService interface {
	Register(ctx context.Context, username, password, email string) (model.User, error)
	Authenticate(ctx context.Context, username, password string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	AttachImage(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (string, error)
	GetImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error)
}

// User handles HTTP endpoints for the user registry.
type User struct {
	service UserService
	logger  *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, logger *logger.Logger) *User {
	return &User{
		service: service,
		logger:  logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /register.
func (h *User) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: user.ID.String()})
}

// List handles GET /users. The response never carries password digests.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// Login handles POST /login, a stateless credential check. No session or
// token is issued.
func (h *User) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, h.logger, model.ErrInvalidRequest)
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
