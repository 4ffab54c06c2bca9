package service

import "errors"

// Failure kinds returned at every service boundary. The API layer maps
// these to HTTP status codes; nothing below it knows about HTTP.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)
