// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package actionlog provides a middleware that writes one structured log
// entry per action reaching it. Installed last in the chain it observes the
// actions the reducer actually receives.
package actionlog

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/state"
)

// StateTransformer maps a state value to what gets logged.
type StateTransformer func(state any) any

type options struct {
	predicate   func(action state.Action) bool
	level       zerolog.Level
	transform   StateTransformer
	changesOnly bool
}

// Option configures the logger middleware.
type Option func(*options)

// WithPredicate logs only actions for which fn returns true.
func WithPredicate(fn func(action state.Action) bool) Option {
	return func(o *options) {
		o.predicate = fn
	}
}

// WithLevel sets the level of successful entries. Failed dispatches are
// always logged at error level.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithStateTransformer logs fn(state) instead of the state itself.
func WithStateTransformer(fn StateTransformer) Option {
	return func(o *options) {
		o.transform = fn
	}
}

// WithChangesOnly skips successful actions that left the state deeply equal.
func WithChangesOnly() Option {
	return func(o *options) {
		o.changesOnly = true
	}
}

// New returns the action logger middleware.
func New[S any](log *logger.Logger, opts ...Option) state.Middleware[S] {
	o := &options{level: zerolog.DebugLevel}
	for _, opt := range opts {
		opt(o)
	}
	if log == nil {
		log = logger.Nop()
	}

	return func(api state.MiddlewareAPI[S]) func(next state.DispatchFunc) state.DispatchFunc {
		return func(next state.DispatchFunc) state.DispatchFunc {
			return func(action state.Action) (any, error) {
				if action == nil || (o.predicate != nil && !o.predicate(action)) {
					return next(action)
				}

				prev := api.GetState()
				start := time.Now()
				res, err := next(action)
				took := time.Since(start)
				current := api.GetState()

				if err == nil && o.changesOnly && reflect.DeepEqual(prev, current) {
					return res, err
				}

				level := o.level
				if err != nil {
					level = zerolog.ErrorLevel
				}

				log.WithLevel(level).
					Str("func", "actionlog.Middleware").
					Str("action_id", uuid.NewString()).
					Str("type", action.ActionType()).
					Interface("payload", action).
					Interface("prev_state", o.view(prev)).
					Interface("next_state", o.view(current)).
					Dur("duration", took).
					Err(err).
					Msg("action dispatched")

				return res, err
			}
		}
	}
}

func (o *options) view(s any) any {
	if o.transform == nil {
		return s
	}
	return o.transform(s)
}
