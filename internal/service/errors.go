package service

import "errors"

var (
	// ErrMovieNotFound is returned when a film is neither cached nor known
	// to the remote catalog.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrCatalogRateLimited is returned when the remote catalog throttles
	// the client.
	ErrCatalogRateLimited = errors.New("movie catalog rate limit reached")

	// ErrCatalogUnavailable wraps any other remote catalog failure.
	ErrCatalogUnavailable = errors.New("movie catalog unavailable")
)
