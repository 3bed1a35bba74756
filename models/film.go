// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Separator joins multi-value film attributes (genres, directors, casts,
// countries) into a single stored column.
const Separator = "/"

// MovieType classifies a cached film by the listing it was last synced from.
type MovieType string

const (
	// MovieTypeNormal marks a film that belongs to no current listing.
	MovieTypeNormal MovieType = "normal"
	// MovieTypeRecent marks a film currently in theaters.
	MovieTypeRecent MovieType = "recent"
	// MovieTypeTop marks a film of the top rated listing.
	MovieTypeTop MovieType = "top"
)

// Valid reports whether t is a known movie type.
func (t MovieType) Valid() bool {
	switch t {
	case MovieTypeNormal, MovieTypeRecent, MovieTypeTop:
		return true
	default:
		return false
	}
}

// Film is a movie cached in the local database.
type Film struct {
	// ID is the local database identifier. Zero until the film is stored.
	ID int64 `json:"id"`

	// MovieID is the identifier of the movie in the remote catalog.
	MovieID int64 `json:"movie_id"`

	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Year          int     `json:"year"`
	Rating        float64 `json:"rating"`

	// Genres, Directors, Casts and Countries hold [Separator]-joined values.
	Genres    string `json:"genres"`
	Directors string `json:"directors"`
	Casts     string `json:"casts"`
	Countries string `json:"countries"`

	// Image is the poster URL.
	Image string `json:"image"`

	// Alt is the public page of the movie.
	Alt string `json:"alt"`

	// Summary is filled by a detail sync. Empty means details were never
	// fetched.
	Summary string `json:"summary"`

	MovieType MovieType `json:"movie_type"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// HasDetails reports whether the detail sync already filled the film.
func (f Film) HasDetails() bool {
	return strings.TrimSpace(f.Summary) != ""
}

// FilmFromMovie converts a listing entry into a film of type movieType.
// When old is not nil the stored identity and the fields only a detail sync
// provides are carried over.
func FilmFromMovie(movie Movie, movieType MovieType, old *Film) Film {
	film := Film{
		MovieID:       movie.MovieID(),
		Title:         movie.Title,
		OriginalTitle: movie.OriginalTitle,
		Year:          movie.YearNumber(),
		Rating:        movie.Rating.Average,
		Genres:        strings.Join(movie.Genres, Separator),
		Directors:     joinNames(movie.Directors),
		Casts:         joinNames(movie.Casts),
		Image:         movie.Images.Large,
		Alt:           movie.Alt,
		MovieType:     movieType,
	}

	if old != nil {
		film.ID = old.ID
		film.Summary = old.Summary
		film.Countries = old.Countries
		film.CreatedAt = old.CreatedAt
	}

	return film
}

// FilmFromSubject converts a movie detail response into a film.
func FilmFromSubject(subject MovieSubject, movieType MovieType) Film {
	film := FilmFromMovie(subject.Movie, movieType, nil)
	film.Summary = subject.Summary
	film.Countries = strings.Join(subject.Countries, Separator)

	return film
}

// WithDetails returns f with summary and countries taken from subject.
func (f Film) WithDetails(subject MovieSubject) Film {
	f.Summary = subject.Summary
	f.Countries = strings.Join(subject.Countries, Separator)
	return f
}

func joinNames(people []Person) string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return strings.Join(names, Separator)
}
