// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"fmt"
	"sync"
)

// Built-in action types dispatched by the store itself.
const (
	ActionInit    = "@@state/INIT"
	ActionReplace = "@@state/REPLACE"
)

type builtinAction string

func (a builtinAction) ActionType() string { return string(a) }

type subscription struct {
	listener Listener
}

type store[S any] struct {
	mu        sync.RWMutex
	reducer   Reducer[S]
	state     S
	listeners []*subscription
}

// New creates a store. When enhancer is non-nil the store is built through it,
// otherwise a plain store is returned. The store dispatches [ActionInit] once
// so the reducer can seed its state.
func New[S any](reducer Reducer[S], initial S, enhancer Enhancer[S]) (Store[S], error) {
	if enhancer != nil {
		return enhancer(createStore[S])(reducer, initial)
	}

	return createStore(reducer, initial)
}

func createStore[S any](reducer Reducer[S], initial S) (Store[S], error) {
	if reducer == nil {
		return nil, ErrNilReducer
	}

	s := &store[S]{
		reducer: reducer,
		state:   initial,
	}

	if _, err := s.Dispatch(builtinAction(ActionInit)); err != nil {
		return nil, fmt.Errorf("error initializing state: %w", err)
	}

	return s, nil
}

func (s *store[S]) Dispatch(action Action) (any, error) {
	if action == nil {
		return nil, ErrNilAction
	}
	if _, ok := action.(Deferred); ok {
		return nil, fmt.Errorf("%w: %s", ErrUnhandledDeferred, action.ActionType())
	}

	s.mu.Lock()
	next, err := s.reduce(action)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.state = next
	listeners := make([]*subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.listener()
	}

	return action, nil
}

// reduce must be called with s.mu held.
func (s *store[S]) reduce(action Action) (next S, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w on %s: %v", ErrReducerPanic, action.ActionType(), r)
		}
	}()

	return s.reducer(s.state, action), nil
}

func (s *store[S]) GetState() S {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *store[S]) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}

	sub := &subscription{listener: listener}

	s.mu.Lock()
	s.listeners = append(s.listeners, sub)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			for i, l := range s.listeners {
				if l == sub {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *store[S]) ReplaceReducer(reducer Reducer[S]) error {
	if reducer == nil {
		return ErrNilReducer
	}

	s.mu.Lock()
	s.reducer = reducer
	s.mu.Unlock()

	_, err := s.Dispatch(builtinAction(ActionReplace))
	return err
}
