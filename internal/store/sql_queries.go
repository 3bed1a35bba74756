// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-film-keeper/models"
)

const filmsTable = "films"

var filmColumns = []string{
	"id",
	"movie_id",
	"title",
	"original_title",
	"year",
	"rating",
	"genres",
	"directors",
	"casts",
	"countries",
	"image",
	"alt",
	"summary",
	"movie_type",
	"created_at",
	"updated_at",
}

const upsertFilmSuffix = `ON CONFLICT(movie_id) DO UPDATE SET
	title = excluded.title,
	original_title = excluded.original_title,
	year = excluded.year,
	rating = excluded.rating,
	genres = excluded.genres,
	directors = excluded.directors,
	casts = excluded.casts,
	countries = excluded.countries,
	image = excluded.image,
	alt = excluded.alt,
	summary = excluded.summary,
	movie_type = excluded.movie_type,
	updated_at = excluded.updated_at`

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectFilms() sq.SelectBuilder {
	return builder.Select(filmColumns...).From(filmsTable)
}

func buildFindByMovieID(movieID int64) (string, []any, error) {
	return selectFilms().Where(sq.Eq{"movie_id": movieID}).Limit(1).ToSql()
}

func buildFindByMovieIDs(movieIDs []int64) (string, []any, error) {
	return selectFilms().
		Where(sq.Eq{"movie_id": movieIDs}).
		OrderBy("year DESC", "rating DESC").
		ToSql()
}

func buildListAll() (string, []any, error) {
	return selectFilms().OrderBy("year DESC", "rating DESC").ToSql()
}

func buildFindByType(movieType models.MovieType) (string, []any, error) {
	return selectFilms().
		Where(sq.Eq{"movie_type": string(movieType)}).
		OrderBy("rating DESC").
		ToSql()
}

func buildUpsertFilm(film models.Film, now time.Time) (string, []any, error) {
	createdAt := now
	if film.CreatedAt != nil {
		createdAt = *film.CreatedAt
	}

	return builder.Insert(filmsTable).
		Columns(filmColumns[1:]...).
		Values(
			film.MovieID,
			film.Title,
			film.OriginalTitle,
			film.Year,
			film.Rating,
			film.Genres,
			film.Directors,
			film.Casts,
			film.Countries,
			film.Image,
			film.Alt,
			film.Summary,
			string(film.MovieType),
			createdAt,
			now,
		).
		Suffix(upsertFilmSuffix).
		ToSql()
}
