// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sagas holds the background processes of the client: they turn
// catalog intents into movie service calls and report the results back to
// the store as plain actions.
package sagas

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-film-keeper/internal/catalog"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/saga"
	"github.com/MKhiriev/go-film-keeper/internal/service"
	"github.com/MKhiriev/go-film-keeper/internal/state"
	"github.com/MKhiriev/go-film-keeper/models"
)

// Task is a saga task over the catalog state.
type Task = saga.Task[catalog.State]

// ErrUnknownList is reported when a list can't be loaded by any service call.
var ErrUnknownList = errors.New("unknown movie list")

// syncedTypes are the listings synced on start and on every interval.
var syncedTypes = []models.MovieType{models.MovieTypeRecent, models.MovieTypeTop}

type catalogSagas struct {
	movies   service.MovieService
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu       sync.Mutex
	loading  map[catalog.List]*Task
	inFlight map[models.MovieType]bool
}

func newCatalogSagas(movies service.MovieService, interval time.Duration, log *logger.Logger) *catalogSagas {
	if log == nil {
		log = logger.Nop()
	}

	return &catalogSagas{
		movies:   movies,
		interval: interval,
		now:      time.Now,
		logger:   log,
		loading:  make(map[catalog.List]*Task),
		inFlight: make(map[models.MovieType]bool),
	}
}

// Root returns the root process of the client. It starts the watchers,
// loads the cached lists, syncs the recent and top listings and re-syncs
// them every interval. A non-positive interval disables periodic syncs.
func Root(movies service.MovieService, interval time.Duration, log *logger.Logger) saga.Process[catalog.State] {
	return newCatalogSagas(movies, interval, log).root
}

func (c *catalogSagas) root(t *Task) error {
	t.TakeEvery(catalog.TypeFetchMovies, c.fetchMovies)
	t.TakeEvery(catalog.TypeFetchMovie, c.fetchMovie)
	t.TakeEvery(catalog.TypeSyncMovies, c.syncMovies)
	t.Fork(c.periodicSync)

	for _, list := range []catalog.List{catalog.ListRecent, catalog.ListTop, catalog.ListAll} {
		if _, err := t.Put(catalog.FetchMovies{List: list}); err != nil {
			return err
		}
	}

	return c.putSyncs(t)
}

func (c *catalogSagas) periodicSync(t *Task) error {
	if c.interval <= 0 {
		return nil
	}

	for {
		if err := t.Delay(c.interval); err != nil {
			return err
		}
		if err := c.putSyncs(t); err != nil {
			return err
		}
	}
}

func (c *catalogSagas) putSyncs(t *Task) error {
	for _, movieType := range syncedTypes {
		if _, err := t.Put(catalog.SyncMovies{Type: movieType}); err != nil {
			return err
		}
	}
	return nil
}

// fetchMovies loads one list. A newer request for the same list cancels the
// older one.
func (c *catalogSagas) fetchMovies(t *Task, action state.Action) error {
	req, ok := action.(catalog.FetchMovies)
	if !ok {
		return nil
	}

	c.mu.Lock()
	if prev := c.loading[req.List]; prev != nil {
		prev.Cancel()
	}
	c.loading[req.List] = t
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.loading[req.List] == t {
			delete(c.loading, req.List)
		}
		c.mu.Unlock()
	}()

	if _, err := t.Put(catalog.MoviesRequested{List: req.List}); err != nil {
		return err
	}

	var films []models.Film
	err := t.Call(func(ctx context.Context) error {
		var loadErr error
		films, loadErr = c.load(ctx, t.Select(), req.List)
		return loadErr
	})
	if err != nil {
		if ctxErr := t.Context().Err(); ctxErr != nil {
			return ctxErr
		}

		c.logger.Warn().Err(err).Str("list", string(req.List)).Msg("failed to load movies")
		_, err = t.Put(catalog.MoviesFailed{List: req.List, Reason: err.Error()})
		return err
	}

	_, err = t.Put(catalog.MoviesLoaded{List: req.List, Films: films})
	return err
}

func (c *catalogSagas) load(ctx context.Context, s catalog.State, list catalog.List) ([]models.Film, error) {
	switch list {
	case catalog.ListRecent:
		return c.movies.GetMoviesByType(ctx, models.MovieTypeRecent)
	case catalog.ListTop:
		return c.movies.GetMoviesByType(ctx, models.MovieTypeTop)
	case catalog.ListAll:
		return c.movies.GetAllMovies(ctx)
	case catalog.ListStarred:
		return c.movies.GetMoviesByIDs(ctx, catalog.StarredIDs(s))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, list)
	}
}

func (c *catalogSagas) fetchMovie(t *Task, action state.Action) error {
	req, ok := action.(catalog.FetchMovie)
	if !ok {
		return nil
	}

	var film models.Film
	err := t.Call(func(ctx context.Context) error {
		var loadErr error
		film, loadErr = c.movies.GetMovieByID(ctx, req.MovieID)
		return loadErr
	})
	if err != nil {
		if ctxErr := t.Context().Err(); ctxErr != nil {
			return ctxErr
		}

		c.logger.Warn().Err(err).Int64("movie_id", req.MovieID).Msg("failed to load movie")
		_, err = t.Put(catalog.MovieFailed{MovieID: req.MovieID, Reason: err.Error()})
		return err
	}

	_, err = t.Put(catalog.MovieLoaded{Film: film})
	return err
}

// syncMovies refreshes one listing and reloads the lists showing it. A sync
// requested while the same listing is already syncing is dropped.
func (c *catalogSagas) syncMovies(t *Task, action state.Action) error {
	req, ok := action.(catalog.SyncMovies)
	if !ok {
		return nil
	}

	list, ok := catalog.ListOf(req.Type)
	if !ok {
		_, err := t.Put(catalog.SyncFailed{
			Type:   req.Type,
			Reason: fmt.Sprintf("%s: %q", ErrUnknownList, req.Type),
		})
		return err
	}

	if !c.acquireSync(req.Type) {
		c.logger.Debug().Str("movie_type", string(req.Type)).Msg("sync already running")
		return nil
	}
	defer c.releaseSync(req.Type)

	if _, err := t.Put(catalog.SyncStarted{Type: req.Type}); err != nil {
		return err
	}

	var count int
	err := t.Call(func(ctx context.Context) error {
		var syncErr error
		count, syncErr = c.movies.SyncMovies(ctx, req.Type)
		return syncErr
	})
	if err != nil {
		if ctxErr := t.Context().Err(); ctxErr != nil {
			return ctxErr
		}

		c.logger.Warn().Err(err).Str("movie_type", string(req.Type)).Msg("sync failed")
		_, err = t.Put(catalog.SyncFailed{Type: req.Type, Reason: err.Error()})
		return err
	}

	c.logger.Info().Str("movie_type", string(req.Type)).Int("count", count).Msg("sync completed")
	if _, err = t.Put(catalog.SyncCompleted{Type: req.Type, At: c.now()}); err != nil {
		return err
	}

	for _, l := range []catalog.List{list, catalog.ListAll} {
		if _, err = t.Put(catalog.FetchMovies{List: l}); err != nil {
			return err
		}
	}
	return nil
}

func (c *catalogSagas) acquireSync(movieType models.MovieType) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight[movieType] {
		return false
	}
	c.inFlight[movieType] = true
	return true
}

func (c *catalogSagas) releaseSync(movieType models.MovieType) {
	c.mu.Lock()
	delete(c.inFlight, movieType)
	c.mu.Unlock()
}
