package user

import "errors"

var (
	// ErrUsernameTaken is returned when registering with a username that already exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when no user matches the given id or username
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when login credentials do not match
	ErrInvalidCredentials = errors.New("invalid username or password")
)
