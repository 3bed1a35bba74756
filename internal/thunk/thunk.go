// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package thunk provides the deferred-action middleware.
//
// A [Func] dispatched into the store is not forwarded to the reducer; the
// middleware calls it with the store API and the configured extra argument
// and returns its result from Dispatch. The function may dispatch further
// actions immediately or later from its own goroutine (see [Defer]).
package thunk

import (
	"github.com/MKhiriev/go-film-keeper/internal/state"
)

// ActionType is reported by every [Func].
const ActionType = "@@thunk"

// Func is an action carrying code instead of data.
type Func[S any] func(api state.MiddlewareAPI[S], extra any) (any, error)

// ActionType implements [state.Action].
func (Func[S]) ActionType() string { return ActionType }

// Deferred implements [state.Deferred].
func (Func[S]) Deferred() {}

type options struct {
	extra any
}

// Option configures the middleware.
type Option func(*options)

// WithExtraArgument passes extra to every thunk (typically a services
// aggregate).
func WithExtraArgument(extra any) Option {
	return func(o *options) {
		o.extra = extra
	}
}

// New returns the thunk middleware.
func New[S any](opts ...Option) state.Middleware[S] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return func(api state.MiddlewareAPI[S]) func(next state.DispatchFunc) state.DispatchFunc {
		return func(next state.DispatchFunc) state.DispatchFunc {
			return func(action state.Action) (any, error) {
				fn, ok := action.(Func[S])
				if !ok {
					return next(action)
				}
				if fn == nil {
					return nil, state.ErrNilAction
				}

				return fn(api, o.extra)
			}
		}
	}
}

// Defer wraps body so that it runs on its own goroutine after Dispatch has
// returned. Dispatch yields a channel that receives body's error (nil on
// success) and is then closed. onErr, when set, is called with a non-nil
// error before it is sent.
func Defer[S any](body Func[S], onErr func(error)) Func[S] {
	return func(api state.MiddlewareAPI[S], extra any) (any, error) {
		if body == nil {
			return nil, state.ErrNilAction
		}

		done := make(chan error, 1)
		go func() {
			defer close(done)

			_, err := body(api, extra)
			if err != nil && onErr != nil {
				onErr(err)
			}
			done <- err
		}()

		return (<-chan error)(done), nil
	}
}
