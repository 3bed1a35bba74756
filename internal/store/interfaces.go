package store

import (
	"context"

	"github.com/MKhiriev/go-film-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FilmRepository is the local film cache.
type FilmRepository interface {
	// FindByMovieID returns the film with the given remote id or
	// [ErrFilmNotFound].
	FindByMovieID(ctx context.Context, movieID int64) (models.Film, error)

	// FindByMovieIDs returns the stored films among movieIDs, newest first.
	FindByMovieIDs(ctx context.Context, movieIDs []int64) ([]models.Film, error)

	// ListAll returns every stored film ordered by year and then rating,
	// both descending.
	ListAll(ctx context.Context) ([]models.Film, error)

	// FindByType returns the films of movieType ordered by rating descending.
	FindByType(ctx context.Context, movieType models.MovieType) ([]models.Film, error)

	// SaveAll inserts films or updates them by movie id in one transaction.
	SaveAll(ctx context.Context, films []models.Film) error
}
