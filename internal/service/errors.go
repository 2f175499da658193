package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when registering a taken email or username.
	ErrUserExists = errors.New("user already exists")
	// ErrItemExists is returned when an owner already has an item with the same name.
	ErrItemExists = errors.New("item with this name already exists")
)

// ValidationError marks client-fixable input problems; its message is
// surfaced to the caller verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	errInvalidEmail = ValidationError("invalid email format")
	errWeakPassword = ValidationError("password must be at least 6 characters and include at least one lowercase letter, one uppercase letter, one number, and one special character")
)
