package state

import "errors"

var (
	// ErrNilReducer is returned when a store is created (or a reducer is
	// replaced) with a nil reducer.
	ErrNilReducer = errors.New("reducer is nil")

	// ErrNilAction is returned by Dispatch for a nil action.
	ErrNilAction = errors.New("action is nil")

	// ErrUnhandledDeferred is returned when a deferred action reaches the base
	// store, which means no middleware consumed it.
	ErrUnhandledDeferred = errors.New("deferred action reached the reducer; is the thunk middleware installed?")

	// ErrReducerPanic wraps a panic recovered from the reducer. The state is
	// left as it was before the dispatch.
	ErrReducerPanic = errors.New("reducer panicked")

	// ErrDispatchDuringSetup is returned when a middleware dispatches while the
	// middleware chain is still being constructed.
	ErrDispatchDuringSetup = errors.New("dispatching while constructing middleware is not allowed")
)
