package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/models"
)

type filmRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewFilmRepository returns the SQLite-backed [FilmRepository].
func NewFilmRepository(db *DB, logger *logger.Logger) FilmRepository {
	return &filmRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (f *filmRepository) FindByMovieID(ctx context.Context, movieID int64) (models.Film, error) {
	query, args, err := buildFindByMovieID(movieID)
	if err != nil {
		return models.Film{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	films, err := f.query(ctx, "filmRepository.FindByMovieID", query, args)
	if err != nil {
		return models.Film{}, err
	}
	if len(films) == 0 {
		return models.Film{}, ErrFilmNotFound
	}

	return films[0], nil
}

func (f *filmRepository) FindByMovieIDs(ctx context.Context, movieIDs []int64) ([]models.Film, error) {
	if len(movieIDs) == 0 {
		return []models.Film{}, nil
	}

	query, args, err := buildFindByMovieIDs(movieIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return f.query(ctx, "filmRepository.FindByMovieIDs", query, args)
}

func (f *filmRepository) ListAll(ctx context.Context) ([]models.Film, error) {
	query, args, err := buildListAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return f.query(ctx, "filmRepository.ListAll", query, args)
}

func (f *filmRepository) FindByType(ctx context.Context, movieType models.MovieType) ([]models.Film, error) {
	query, args, err := buildFindByType(movieType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return f.query(ctx, "filmRepository.FindByType", query, args)
}

func (f *filmRepository) SaveAll(ctx context.Context, films []models.Film) error {
	if len(films) == 0 {
		return nil
	}

	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		f.logger.Err(err).Str("func", "filmRepository.SaveAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := f.now().UTC()
	for _, film := range films {
		query, args, buildErr := buildUpsertFilm(film, now)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			f.logger.Err(execErr).
				Str("func", "filmRepository.SaveAll").
				Int64("movie_id", film.MovieID).
				Msg("failed to upsert film")
			return fmt.Errorf("%w: failed to save film (movie_id=%d): %w", ErrExecutingQuery, film.MovieID, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		f.logger.Err(err).Str("func", "filmRepository.SaveAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	f.logger.Debug().Str("func", "filmRepository.SaveAll").Int("films", len(films)).Msg("films saved")
	return nil
}

func (f *filmRepository) query(ctx context.Context, fn, query string, args []any) ([]models.Film, error) {
	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		f.logger.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	films := make([]models.Film, 0)
	for rows.Next() {
		var film models.Film
		var movieType string

		scanErr := rows.Scan(
			&film.ID,
			&film.MovieID,
			&film.Title,
			&film.OriginalTitle,
			&film.Year,
			&film.Rating,
			&film.Genres,
			&film.Directors,
			&film.Casts,
			&film.Countries,
			&film.Image,
			&film.Alt,
			&film.Summary,
			&movieType,
			&film.CreatedAt,
			&film.UpdatedAt,
		)
		if scanErr != nil {
			f.logger.Err(scanErr).Str("func", fn).Msg("failed to scan film row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		film.MovieType = models.MovieType(movieType)

		films = append(films, film)
	}

	if rowsErr := rows.Err(); rowsErr != nil && !errors.Is(rowsErr, sql.ErrNoRows) {
		f.logger.Err(rowsErr).Str("func", fn).Msg("error iterating film rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return films, nil
}
