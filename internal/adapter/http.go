// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-film-keeper/internal/config"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/utils"
	"github.com/MKhiriev/go-film-keeper/models"
)

const (
	inTheatersPath = "/v2/movie/in_theaters"
	top250Path     = "/v2/movie/top250"
	subjectPath    = "/v2/movie/subject/{id}"

	topCount = "100"

	requestRetries = 2
)

type httpMovieAdapter struct {
	client *utils.HTTPClient
	city   string
	logger *logger.Logger
}

// NewHTTPMovieAdapter constructs the REST implementation of [MovieAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with it, the request timeout and
// a small retry budget for gateway failures.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPMovieAdapter(cfg config.ClientAdapter, logger *logger.Logger) (MovieAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL: baseURL,
		Timeout: cfg.RequestTimeout,
		Retries: requestRetries,
	})

	return &httpMovieAdapter{client: client, city: cfg.City, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetMovies implements [MovieAdapter]. Recent films come from
// GET /v2/movie/in_theaters?city=, top films from
// GET /v2/movie/top250?start=0&count=100.
func (h *httpMovieAdapter) GetMovies(ctx context.Context, movieType models.MovieType) ([]models.Movie, error) {
	req := h.client.R().SetContext(ctx)

	var path string
	switch movieType {
	case models.MovieTypeRecent:
		path = inTheatersPath
		if h.city != "" {
			req.SetQueryParam("city", h.city)
		}
	case models.MovieTypeTop:
		path = top250Path
		req.SetQueryParams(map[string]string{"start": "0", "count": topCount})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMovieType, movieType)
	}

	var list models.MovieList
	resp, err := req.SetResult(&list).Get(path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpMovieAdapter.GetMovies").Str("type", string(movieType)).Msg("request failed")
		return nil, fmt.Errorf("get movies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpMovieAdapter.GetMovies").Str("type", string(movieType)).Msg("unexpected response")
		return nil, err
	}

	h.logger.Debug().
		Str("func", "httpMovieAdapter.GetMovies").
		Str("type", string(movieType)).
		Int("count", len(list.Subjects)).
		Msg("movies received")

	return list.Subjects, nil
}

// GetMovieSubject implements [MovieAdapter] via GET /v2/movie/subject/{id}.
func (h *httpMovieAdapter) GetMovieSubject(ctx context.Context, movieID int64) (models.MovieSubject, error) {
	if movieID <= 0 {
		return models.MovieSubject{}, fmt.Errorf("%w: %d", ErrInvalidMovieID, movieID)
	}

	var subject models.MovieSubject
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(movieID, 10)).
		SetResult(&subject).
		Get(subjectPath)
	if err != nil {
		return models.MovieSubject{}, fmt.Errorf("get movie subject request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpMovieAdapter.GetMovieSubject").Int64("movie_id", movieID).Msg("unexpected response")
		return models.MovieSubject{}, err
	}

	return subject, nil
}
