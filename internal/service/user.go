package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/devstock/devices-server/internal/logger"
	"github.com/devstock/devices-server/internal/model"
)

// User implements the user registry: registration, the stateless login
// check, listing and image attachment.
type User struct {
	userStore model.UserStore
	hasher    model.Hasher
	storage   model.Storage
	logger    *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	hasher model.Hasher,
	storage model.Storage,
	logger *logger.Logger,
) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		storage:   storage,
		logger:    logger.WithComponent("user-service"),
	}
}

// Register validates the input, hashes the password and persists the user.
// The validation happens before any store access.
func (s *User) Register(ctx context.Context, username, password, email string) (model.User, error) {
	if username == "" || password == "" || email == "" {
		return model.User{}, model.ErrInvalidRequest
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:             uuid.New(),
		Username:       username,
		PasswordDigest: digest,
		Email:          email,
	}

	saved, err := s.userStore.Create(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("user registered", "user_id", saved.ID, "username", saved.Username)

	return saved, nil
}

// Authenticate performs the stateless login check. An unknown username fails
// with ErrNotFound, a password mismatch with ErrInvalidCredentials; the
// mismatch error does not reveal which part was wrong.
func (s *User) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}

	if !s.hasher.Verify(password, user.PasswordDigest) {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

func (s *User) List(ctx context.Context) ([]model.User, error) {
	return s.userStore.List(ctx)
}

// AttachImage stores the upload and persists its reference path on the user.
func (s *User) AttachImage(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (string, error) {
	key := imageKey("users", id, filename)

	if err := s.storage.Upload(ctx, key, r, imageContentType(key)); err != nil {
		return "", fmt.Errorf("failed to upload user image: %w", err)
	}

	if err := s.userStore.SetImagePath(ctx, id, key); err != nil {
		return "", err
	}

	s.logger.Info("user image attached", "user_id", id, "image_path", key)

	return key, nil
}

// GetImage returns a reader over the user's image and its content type.
func (s *User) GetImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if user.ImagePath == nil {
		return nil, "", model.ErrNotFound
	}

	rc, err := s.storage.Download(ctx, *user.ImagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download user image: %w", err)
	}

	return rc, imageContentType(*user.ImagePath), nil
}
