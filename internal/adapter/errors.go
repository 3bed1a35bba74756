package adapter

import "errors"

// Errors mapped from HTTP responses of the movie API.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrUnsupportedMovieType is returned for listings the API does not serve.
	ErrUnsupportedMovieType = errors.New("unsupported movie type")

	// ErrInvalidMovieID is returned for non-positive movie ids.
	ErrInvalidMovieID = errors.New("invalid movie id")
)
