package model

import "errors"

var (
	// ErrNotFound is returned when a referenced device, user or image does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotAvailable is returned when a checkout targets a device that is
	// absent or already held by someone.
	ErrNotAvailable = errors.New("device is not available or does not exist")
	// ErrNotCheckedOut is returned when a checkin targets a device that has no holder.
	ErrNotCheckedOut = errors.New("device is not checked out or does not exist")
	// ErrInvalidRequest is returned when a required input field is missing.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidCredentials is returned on a login mismatch. It deliberately
	// does not say whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict is returned when a uniqueness constraint is violated.
	ErrConflict = errors.New("already exists")
)
