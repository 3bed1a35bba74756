package adapter

import (
	"context"

	"github.com/MKhiriev/go-film-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MovieAdapter is the client of the remote movie catalog.
type MovieAdapter interface {
	// GetMovies returns the current listing of movieType (recent or top).
	GetMovies(ctx context.Context, movieType models.MovieType) ([]models.Movie, error)

	// GetMovieSubject returns the details of one movie.
	GetMovieSubject(ctx context.Context, movieID int64) (models.MovieSubject, error)
}
