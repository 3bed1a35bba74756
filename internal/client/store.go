// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-film-keeper/internal/actionlog"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/saga"
	"github.com/MKhiriev/go-film-keeper/internal/state"
	"github.com/MKhiriev/go-film-keeper/internal/thunk"
)

// Options customises [ConfigureStore]. The zero value is valid.
type Options[S any] struct {
	// ComposeEnhancers combines the store enhancers. Nil means
	// [state.Compose]. A debugging tool plugs in here.
	ComposeEnhancers state.ComposeFunc[S]

	// Logger receives action logs and root task failures. Nil discards them.
	Logger *logger.Logger

	// ThunkExtra is handed to every thunk as its extra argument.
	ThunkExtra any

	// LogOptions configure the action logger.
	LogOptions []actionlog.Option
}

// ConfigureStore creates the store with the middleware chain saga, thunk,
// action logger (in that order) and starts rootSaga on it. It returns once
// the root task has suspended or finished, together with the task so the
// caller can stop it.
func ConfigureStore[S any](
	ctx context.Context,
	reducer state.Reducer[S],
	initial S,
	rootSaga saga.Process[S],
	opts Options[S],
) (state.Store[S], *saga.Task[S], error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	sagaMiddleware := saga.New[S](saga.WithLogger(log))
	middlewares := []state.Middleware[S]{
		sagaMiddleware.Middleware(),
		thunk.New[S](thunk.WithExtraArgument(opts.ThunkExtra)),
		actionlog.New[S](log, opts.LogOptions...),
	}

	compose := opts.ComposeEnhancers
	if compose == nil {
		compose = state.Compose[S]
	}

	store, err := state.New(reducer, initial, compose(state.ApplyMiddleware(middlewares...)))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating store: %w", err)
	}

	root, err := sagaMiddleware.Run(ctx, rootSaga)
	if err != nil {
		return nil, nil, fmt.Errorf("error running root saga: %w", err)
	}

	return store, root, nil
}
