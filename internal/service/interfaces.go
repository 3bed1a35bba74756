package service

import (
	"context"

	"github.com/MKhiriev/go-film-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MovieService serves films from the local cache and keeps the cache in
// sync with the remote catalog.
type MovieService interface {
	// GetMoviesByType returns cached films of movieType ordered by rating.
	GetMoviesByType(ctx context.Context, movieType models.MovieType) ([]models.Film, error)

	// GetAllMovies returns every cached film ordered by year and rating.
	GetAllMovies(ctx context.Context) ([]models.Film, error)

	// GetMovieByID returns the cached film or [ErrMovieNotFound].
	GetMovieByID(ctx context.Context, movieID int64) (models.Film, error)

	// GetMoviesByIDs returns the films among movieIDs, fetching and caching
	// details of those not fully cached yet. Zero ids are ignored.
	GetMoviesByIDs(ctx context.Context, movieIDs []int64) ([]models.Film, error)

	// SyncMovieByID fetches the details of one movie. The result is not
	// stored.
	SyncMovieByID(ctx context.Context, movieID int64) (models.Film, error)

	// SyncMovies refreshes the listing of movieType from the remote catalog
	// and returns the number of films in it.
	SyncMovies(ctx context.Context, movieType models.MovieType) (int, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
