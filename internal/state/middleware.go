// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "sync/atomic"

// middlewareStore overrides Dispatch of the wrapped store with the composed
// middleware chain. Everything else is served by the wrapped store.
type middlewareStore[S any] struct {
	Store[S]
	dispatch atomic.Pointer[DispatchFunc]
}

func (m *middlewareStore[S]) Dispatch(action Action) (any, error) {
	return (*m.dispatch.Load())(action)
}

type middlewareAPI[S any] struct {
	store *middlewareStore[S]
}

func (a middlewareAPI[S]) Dispatch(action Action) (any, error) {
	return a.store.Dispatch(action)
}

func (a middlewareAPI[S]) GetState() S {
	return a.store.GetState()
}

// ApplyMiddleware returns an enhancer that routes every dispatch through
// middlewares in the given order: the first middleware sees the action first,
// the last one hands it to the reducer.
func ApplyMiddleware[S any](middlewares ...Middleware[S]) Enhancer[S] {
	return func(next StoreCreator[S]) StoreCreator[S] {
		return func(reducer Reducer[S], initial S) (Store[S], error) {
			base, err := next(reducer, initial)
			if err != nil {
				return nil, err
			}

			ms := &middlewareStore[S]{Store: base}
			var setup DispatchFunc = func(Action) (any, error) {
				return nil, ErrDispatchDuringSetup
			}
			ms.dispatch.Store(&setup)

			api := middlewareAPI[S]{store: ms}
			chain := make([]func(DispatchFunc) DispatchFunc, 0, len(middlewares))
			for _, mw := range middlewares {
				if mw == nil {
					continue
				}
				chain = append(chain, mw(api))
			}

			var dispatch DispatchFunc = base.Dispatch
			for i := len(chain) - 1; i >= 0; i-- {
				dispatch = chain[i](dispatch)
			}
			ms.dispatch.Store(&dispatch)

			return ms, nil
		}
	}
}

// Compose combines enhancers right to left, so Compose(f, g)(next) equals
// f(g(next)). With no enhancers it returns the identity enhancer.
func Compose[S any](enhancers ...Enhancer[S]) Enhancer[S] {
	return func(next StoreCreator[S]) StoreCreator[S] {
		for i := len(enhancers) - 1; i >= 0; i-- {
			if enhancers[i] == nil {
				continue
			}
			next = enhancers[i](next)
		}
		return next
	}
}
