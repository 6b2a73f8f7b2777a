package service

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Anything not
// in this list is treated as a persistence/operation failure and surfaced
// with its underlying message.
var (
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrRatingNotFound     = errors.New("rating not found")
)
