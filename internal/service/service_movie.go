package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-film-keeper/internal/adapter"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/store"
	"github.com/MKhiriev/go-film-keeper/models"
	"golang.org/x/sync/errgroup"
)

// detailSyncLimit bounds concurrent detail requests to the remote catalog.
const detailSyncLimit = 2

type movieService struct {
	films   store.FilmRepository
	adapter adapter.MovieAdapter

	logger *logger.Logger
}

// NewMovieService returns a [MovieService] over the film cache and the
// remote catalog adapter.
func NewMovieService(films store.FilmRepository, movieAdapter adapter.MovieAdapter, logger *logger.Logger) MovieService {
	return &movieService{
		films:   films,
		adapter: movieAdapter,
		logger:  logger,
	}
}

func (s *movieService) GetMoviesByType(ctx context.Context, movieType models.MovieType) ([]models.Film, error) {
	if !movieType.Valid() {
		return nil, fmt.Errorf("%w: %q", adapter.ErrUnsupportedMovieType, movieType)
	}

	films, err := s.films.FindByType(ctx, movieType)
	if err != nil {
		return nil, fmt.Errorf("error getting %s movies: %w", movieType, err)
	}
	return films, nil
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]models.Film, error) {
	films, err := s.films.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting all movies: %w", err)
	}
	return films, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (models.Film, error) {
	film, err := s.films.FindByMovieID(ctx, movieID)
	if err != nil {
		return models.Film{}, mapStoreError(err)
	}
	return film, nil
}

func (s *movieService) GetMoviesByIDs(ctx context.Context, movieIDs []int64) ([]models.Film, error) {
	ids := uniqueIDs(movieIDs)
	if len(ids) == 0 {
		return []models.Film{}, nil
	}

	cached, err := s.films.FindByMovieIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error finding cached movies: %w", err)
	}

	complete := make(map[int64]bool, len(cached))
	for _, film := range cached {
		complete[film.MovieID] = film.HasDetails()
	}

	updated := make([]models.Film, 0, len(ids))
	for _, id := range ids {
		if complete[id] {
			continue
		}

		film, err := s.SyncMovieByID(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn().Err(err).Int64("movie_id", id).Msg("skipping movie whose details could not be synced")
			continue
		}
		updated = append(updated, film)
	}

	if len(updated) > 0 {
		if err = s.films.SaveAll(ctx, updated); err != nil {
			return nil, fmt.Errorf("error saving synced movies: %w", err)
		}
	}

	films, err := s.films.FindByMovieIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error finding movies: %w", err)
	}
	return films, nil
}

func (s *movieService) SyncMovieByID(ctx context.Context, movieID int64) (models.Film, error) {
	if movieID <= 0 {
		return models.Film{}, fmt.Errorf("%w: %d", ErrMovieNotFound, movieID)
	}

	movieType := models.MovieTypeNormal
	old, err := s.films.FindByMovieID(ctx, movieID)
	switch {
	case err == nil:
		movieType = old.MovieType
	case errors.Is(err, store.ErrFilmNotFound):
	default:
		return models.Film{}, fmt.Errorf("error finding movie %d: %w", movieID, err)
	}

	subject, err := s.adapter.GetMovieSubject(ctx, movieID)
	if err != nil {
		return models.Film{}, mapAdapterError(err)
	}

	film := models.FilmFromSubject(subject, movieType)
	film.ID = old.ID
	film.CreatedAt = old.CreatedAt

	return film, nil
}

func (s *movieService) SyncMovies(ctx context.Context, movieType models.MovieType) (int, error) {
	if movieType != models.MovieTypeRecent && movieType != models.MovieTypeTop {
		return 0, fmt.Errorf("%w: %q", adapter.ErrUnsupportedMovieType, movieType)
	}

	movies, err := s.adapter.GetMovies(ctx, movieType)
	if err != nil {
		return 0, mapAdapterError(err)
	}
	if len(movies) == 0 {
		s.logger.Info().Str("movie_type", string(movieType)).Msg("remote listing is empty, keeping cached movies")
		return 0, nil
	}

	previous, err := s.films.FindByType(ctx, movieType)
	if err != nil {
		return 0, fmt.Errorf("error finding cached %s movies: %w", movieType, err)
	}

	ids := make([]int64, 0, len(movies))
	listed := make(map[int64]bool, len(movies))
	for _, movie := range movies {
		ids = append(ids, movie.MovieID())
		listed[movie.MovieID()] = true
	}
	known, err := s.films.FindByMovieIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("error finding known movies: %w", err)
	}
	byID := make(map[int64]models.Film, len(known))
	for _, film := range known {
		byID[film.MovieID] = film
	}

	films := make([]models.Film, 0, len(movies))
	for _, movie := range movies {
		var old *models.Film
		if film, ok := byID[movie.MovieID()]; ok {
			old = &film
		}
		films = append(films, models.FilmFromMovie(movie, movieType, old))
	}

	// demotion and the new listing land in one transaction
	batch := make([]models.Film, 0, len(previous)+len(films))
	for _, film := range previous {
		if listed[film.MovieID] {
			continue
		}
		film.MovieType = models.MovieTypeNormal
		batch = append(batch, film)
	}
	batch = append(batch, films...)
	if err = s.films.SaveAll(ctx, batch); err != nil {
		return 0, fmt.Errorf("error saving %s movies: %w", movieType, err)
	}

	detailed, err := s.fetchDetails(ctx, films)
	if err != nil {
		return 0, err
	}
	if len(detailed) > 0 {
		if err = s.films.SaveAll(ctx, detailed); err != nil {
			return 0, fmt.Errorf("error saving %s movie details: %w", movieType, err)
		}
	}

	s.logger.Info().
		Str("movie_type", string(movieType)).
		Int("count", len(films)).
		Int("detailed", len(detailed)).
		Msg("movies synced")

	return len(films), nil
}

// fetchDetails loads the details of the films that have none. A film whose
// details fail to load is skipped.
func (s *movieService) fetchDetails(ctx context.Context, films []models.Film) ([]models.Film, error) {
	var (
		mu       sync.Mutex
		detailed = make([]models.Film, 0)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailSyncLimit)

	for _, film := range films {
		if film.HasDetails() {
			continue
		}

		g.Go(func() error {
			subject, err := s.adapter.GetMovieSubject(gctx, film.MovieID)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.logger.Warn().Err(err).Int64("movie_id", film.MovieID).Msg("skipping movie details")
				return nil
			}

			mu.Lock()
			detailed = append(detailed, film.WithDetails(subject))
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error syncing movie details: %w", err)
	}
	return detailed, nil
}

func uniqueIDs(movieIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(movieIDs))
	ids := make([]int64, 0, len(movieIDs))
	for _, id := range movieIDs {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
