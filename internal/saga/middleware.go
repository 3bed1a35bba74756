// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package saga implements the task-coordination middleware.
//
// Background processes ([Process]) run as tasks on their own goroutines. A
// task can wait for dispatched actions ([Task.Take]), dispatch actions
// ([Task.Put]), read state ([Task.Select]), call blocking functions
// ([Task.Call]) and fork child tasks ([Task.Fork], [Task.TakeEvery],
// [Task.TakeLatest]).
//
// Actions implementing [state.Intent] are delivered to waiting tasks only;
// every other action is forwarded to the reducer first and then delivered.
package saga

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/state"
)

var (
	// ErrNotAttached is returned by Run when the middleware has not been
	// installed in a store yet.
	ErrNotAttached = errors.New("saga middleware is not attached to a store")

	// ErrNilProcess is returned by Run for a nil process.
	ErrNilProcess = errors.New("saga process is nil")

	// ErrTaskPanic wraps a panic recovered from a process.
	ErrTaskPanic = errors.New("saga task panicked")
)

type options struct {
	onError func(error)
	logger  *logger.Logger
}

// Option configures the middleware.
type Option func(*options)

// WithOnError sets the handler called with the error of a failed root task.
// By default the error is logged.
func WithOnError(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithLogger sets the logger used by the middleware.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Middleware coordinates background tasks with the store it is attached to.
type Middleware[S any] struct {
	mu  sync.RWMutex
	api state.MiddlewareAPI[S]

	channel *channel
	onError func(error)
	logger  *logger.Logger
}

// New creates a saga middleware. Install it with [Middleware.Middleware] and
// start processes with [Middleware.Run].
func New[S any](opts ...Option) *Middleware[S] {
	o := &options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	m := &Middleware[S]{
		channel: newChannel(),
		onError: o.onError,
		logger:  o.logger,
	}
	if m.onError == nil {
		m.onError = func(err error) {
			m.logger.Err(err).Str("func", "saga.Middleware").Msg("root task failed")
		}
	}

	return m
}

// Middleware returns the store middleware. It must be installed in exactly
// one store.
func (m *Middleware[S]) Middleware() state.Middleware[S] {
	return func(api state.MiddlewareAPI[S]) func(next state.DispatchFunc) state.DispatchFunc {
		m.mu.Lock()
		m.api = api
		m.mu.Unlock()

		return func(next state.DispatchFunc) state.DispatchFunc {
			return func(action state.Action) (any, error) {
				if _, ok := action.(state.Intent); ok {
					m.channel.emit(action)
					return action, nil
				}

				res, err := next(action)
				if err != nil {
					return res, err
				}

				if _, ok := action.(state.Deferred); !ok {
					m.channel.emit(action)
				}
				return res, nil
			}
		}
	}
}

// Run starts process as a root task. It returns once the task has reached
// its first suspension point (waiting for an action, a delay, a call or its
// children) or has finished, so actions dispatched after Run returns are seen
// by the takers the task registered.
func (m *Middleware[S]) Run(ctx context.Context, process Process[S]) (*Task[S], error) {
	if process == nil {
		return nil, ErrNilProcess
	}
	if m.storeAPI() == nil {
		return nil, ErrNotAttached
	}

	t := m.spawn(ctx, nil, process)
	<-t.parked

	return t, nil
}

func (m *Middleware[S]) storeAPI() state.MiddlewareAPI[S] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.api
}
