// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package saga

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-film-keeper/internal/state"
)

// Matcher selects the actions a task is waiting for.
type Matcher func(action state.Action) bool

// MatchTypes matches actions whose type is one of types. With no types it
// matches every action.
func MatchTypes(types ...string) Matcher {
	if len(types) == 0 {
		return func(state.Action) bool { return true }
	}

	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}

	return func(action state.Action) bool {
		_, ok := set[action.ActionType()]
		return ok
	}
}

// subscription buffers matching actions for a single reader. The queue is
// unbounded so emit never blocks the dispatching goroutine.
type subscription struct {
	match  Matcher
	notify chan struct{}

	mu     sync.Mutex
	queue  []state.Action
	closed bool
}

func (s *subscription) push(action state.Action) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, action)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *subscription) next(ctx context.Context) (state.Action, error) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			action := s.queue[0]
			s.queue[0] = nil
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return action, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.notify:
		}
	}
}

// channel multicasts dispatched actions to every open subscription.
type channel struct {
	mu   sync.RWMutex
	subs map[*subscription]struct{}
}

func newChannel() *channel {
	return &channel{subs: make(map[*subscription]struct{})}
}

func (c *channel) subscribe(match Matcher) *subscription {
	sub := &subscription{
		match:  match,
		notify: make(chan struct{}, 1),
	}

	c.mu.Lock()
	c.subs[sub] = struct{}{}
	c.mu.Unlock()

	return sub
}

func (c *channel) unsubscribe(sub *subscription) {
	c.mu.Lock()
	delete(c.subs, sub)
	c.mu.Unlock()

	sub.mu.Lock()
	sub.closed = true
	sub.queue = nil
	sub.mu.Unlock()
}

func (c *channel) emit(action state.Action) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for sub := range c.subs {
		if sub.match(action) {
			sub.push(action)
		}
	}
}
