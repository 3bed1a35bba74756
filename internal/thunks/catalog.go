// Package thunks holds the deferred actions dispatched by the UI. Each one
// reads the movie service from the thunk extra argument, which the client
// sets to its [service.ClientServices].
package thunks

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-film-keeper/internal/catalog"
	"github.com/MKhiriev/go-film-keeper/internal/service"
	"github.com/MKhiriev/go-film-keeper/internal/state"
	"github.com/MKhiriev/go-film-keeper/internal/thunk"
)

// Func is a thunk over the catalog state.
type Func = thunk.Func[catalog.State]

const refreshTimeout = 30 * time.Second

// ToggleStar flips the star of a film. When the film becomes starred the
// starred list is reloaded on a separate goroutine, which also syncs details
// of films the cache lacks. Dispatch then returns a channel reporting the
// reload error. Without a movie service the star is only toggled.
func ToggleStar(movieID int64) Func {
	return func(api state.MiddlewareAPI[catalog.State], extra any) (any, error) {
		if _, err := api.Dispatch(catalog.ToggleStar{MovieID: movieID}); err != nil {
			return nil, err
		}
		if !api.GetState().Starred[movieID] {
			return nil, nil
		}

		movies := movieService(extra)
		if movies == nil {
			return nil, nil
		}

		return thunk.Defer(reloadStarred(movies), nil)(api, extra)
	}
}

func reloadStarred(movies service.MovieService) Func {
	return func(api state.MiddlewareAPI[catalog.State], _ any) (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if _, err := api.Dispatch(catalog.MoviesRequested{List: catalog.ListStarred}); err != nil {
			return nil, err
		}

		films, err := movies.GetMoviesByIDs(ctx, catalog.StarredIDs(api.GetState()))
		if err != nil {
			_, dispatchErr := api.Dispatch(catalog.MoviesFailed{List: catalog.ListStarred, Reason: err.Error()})
			return nil, errors.Join(err, dispatchErr)
		}

		_, err = api.Dispatch(catalog.MoviesLoaded{List: catalog.ListStarred, Films: films})
		return nil, err
	}
}

func movieService(extra any) service.MovieService {
	services, ok := extra.(*service.ClientServices)
	if !ok || services == nil {
		return nil
	}
	return services.MovieService
}
