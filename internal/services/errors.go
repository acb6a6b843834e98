package services

import "errors"

// Service-level error kinds. Handlers branch on these with errors.Is and map
// them to HTTP statuses; raw storage errors never cross this boundary.
var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrStorage            = errors.New("storage failure")
)
