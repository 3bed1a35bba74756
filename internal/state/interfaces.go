// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

// Action describes an intended state change or a side-effect request.
// Concrete actions are plain structs; the type string is what middleware and
// background tasks match on.
type Action interface {
	ActionType() string
}

// Intent is implemented by actions that only request a side effect. The task
// coordination middleware hands them to waiting tasks and does not forward
// them to the reducer.
type Intent interface {
	Action
	Intent()
}

// Deferred is implemented by actions that carry code rather than data (for
// example thunks). The base store rejects them with [ErrUnhandledDeferred]
// because they must be consumed by middleware.
type Deferred interface {
	Action
	Deferred()
}

// Reducer computes the next state from the current state and an action.
// It must be pure and must return the state unchanged for unknown actions.
type Reducer[S any] func(state S, action Action) S

// DispatchFunc sends an action down the dispatch pipeline. The returned value
// is the action itself for plain actions, or whatever a middleware returns
// for actions it consumes.
type DispatchFunc func(action Action) (any, error)

// Listener is called after every successful reduce step.
type Listener func()

// Store is the state container contract consumed by the rest of the client.
type Store[S any] interface {
	// Dispatch runs action through the middleware chain and the reducer.
	// Dispatch returns after the reducer has run, unless a middleware
	// consumed the action.
	Dispatch(action Action) (any, error)

	// GetState returns the current state value.
	GetState() S

	// Subscribe registers listener and returns a function that removes it.
	// The returned function is safe to call more than once.
	Subscribe(listener Listener) (unsubscribe func())

	// ReplaceReducer swaps the reducer and dispatches [ActionReplace].
	ReplaceReducer(reducer Reducer[S]) error
}

// MiddlewareAPI is the subset of the store handed to middleware.
// Dispatch goes through the whole middleware chain again.
type MiddlewareAPI[S any] interface {
	Dispatch(action Action) (any, error)
	GetState() S
}

// Middleware intercepts dispatched actions. It may forward the action to next,
// replace it, or consume it without forwarding.
type Middleware[S any] func(api MiddlewareAPI[S]) func(next DispatchFunc) DispatchFunc

// StoreCreator builds a store from a reducer and an initial state.
type StoreCreator[S any] func(reducer Reducer[S], initial S) (Store[S], error)

// Enhancer decorates a StoreCreator.
type Enhancer[S any] func(next StoreCreator[S]) StoreCreator[S]

// ComposeFunc combines enhancers into one. [Compose] is the default; a
// debugging tool may provide its own to observe the composed store.
type ComposeFunc[S any] func(enhancers ...Enhancer[S]) Enhancer[S]
