// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package saga

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-film-keeper/internal/state"
)

// Process is a background routine run as a task.
//
// A process should block only through Task methods so that Run and Fork can
// tell when it has suspended. Returning a context error after the task was
// cancelled is not treated as a failure.
type Process[S any] func(t *Task[S]) error

// Worker handles one action taken by TakeEvery or TakeLatest.
type Worker[S any] func(t *Task[S], action state.Action) error

// Task is a running process.
//
// A task completes when its process has returned and all of its forked
// children have completed. A child failure cancels the parent and its other
// children and becomes the parent's error.
type Task[S any] struct {
	m      *Middleware[S]
	parent *Task[S]

	ctx    context.Context
	cancel context.CancelFunc

	parked   chan struct{}
	parkOnce sync.Once
	done     chan struct{}
	children sync.WaitGroup

	mu        sync.Mutex
	err       error
	cancelled bool
}

func (m *Middleware[S]) spawn(ctx context.Context, parent *Task[S], process Process[S]) *Task[S] {
	tctx, cancel := context.WithCancel(ctx)

	t := &Task[S]{
		m:      m,
		parent: parent,
		ctx:    tctx,
		cancel: cancel,
		parked: make(chan struct{}),
		done:   make(chan struct{}),
	}
	if parent != nil {
		parent.children.Add(1)
	}

	go t.run(process)

	return t
}

func (t *Task[S]) run(process Process[S]) {
	err := t.exec(process)
	t.park()
	t.children.Wait()
	t.finish(err)
	t.cancel()
	close(t.done)

	failure := t.Err()
	if t.parent != nil {
		if failure != nil {
			t.parent.fail(failure)
		}
		t.parent.children.Done()
		return
	}
	if failure != nil {
		t.m.onError(failure)
	}
}

func (t *Task[S]) exec(process Process[S]) (err error) {
	if process == nil {
		return ErrNilProcess
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
		}
	}()

	return process(t)
}

func (t *Task[S]) finish(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err == nil {
		t.err = err
	}

	if t.ctx.Err() == nil {
		return
	}
	if t.err == nil || isCancellation(t.err) {
		t.err = nil
		t.cancelled = true
	}
}

func (t *Task[S]) fail(err error) {
	t.mu.Lock()
	if t.err == nil {
		t.err = err
	}
	t.mu.Unlock()

	t.cancel()
}

func (t *Task[S]) park() {
	t.parkOnce.Do(func() {
		close(t.parked)
	})
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Context returns the task context. It is cancelled when the task or one of
// its ancestors is cancelled.
func (t *Task[S]) Context() context.Context {
	return t.ctx
}

// Take blocks until an action of one of types is dispatched. With no types
// any action is taken.
func (t *Task[S]) Take(types ...string) (state.Action, error) {
	return t.TakeMatching(MatchTypes(types...))
}

// TakeMatching blocks until a dispatched action satisfies match. Actions
// dispatched before the call are not seen.
func (t *Task[S]) TakeMatching(match Matcher) (state.Action, error) {
	sub := t.m.channel.subscribe(match)
	defer t.m.channel.unsubscribe(sub)

	t.park()
	return sub.next(t.ctx)
}

// Put dispatches action into the store through the whole middleware chain.
func (t *Task[S]) Put(action state.Action) (any, error) {
	if err := t.ctx.Err(); err != nil {
		return nil, err
	}

	return t.m.storeAPI().Dispatch(action)
}

// Select returns the current store state.
func (t *Task[S]) Select() S {
	return t.m.storeAPI().GetState()
}

// Call runs fn with the task context. It is a suspension point.
func (t *Task[S]) Call(fn func(ctx context.Context) error) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}

	t.park()
	return fn(t.ctx)
}

// Delay suspends the task for d or until it is cancelled.
func (t *Task[S]) Delay(d time.Duration) error {
	t.park()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Fork starts process as an attached child task and returns once the child
// has suspended or finished.
func (t *Task[S]) Fork(process Process[S]) *Task[S] {
	child := t.m.spawn(t.ctx, t, process)
	<-child.parked

	return child
}

// TakeEvery forks a watcher that runs worker in a new child task for every
// dispatched action of actionType.
func (t *Task[S]) TakeEvery(actionType string, worker Worker[S]) *Task[S] {
	return t.Fork(func(watcher *Task[S]) error {
		if worker == nil {
			return ErrNilProcess
		}

		sub := watcher.m.channel.subscribe(MatchTypes(actionType))
		defer watcher.m.channel.unsubscribe(sub)

		for {
			watcher.park()
			action, err := sub.next(watcher.ctx)
			if err != nil {
				return err
			}

			watcher.Fork(func(w *Task[S]) error {
				return worker(w, action)
			})
		}
	})
}

// TakeLatest is like TakeEvery but cancels the previous worker, if still
// running, before starting a new one.
func (t *Task[S]) TakeLatest(actionType string, worker Worker[S]) *Task[S] {
	return t.Fork(func(watcher *Task[S]) error {
		if worker == nil {
			return ErrNilProcess
		}

		sub := watcher.m.channel.subscribe(MatchTypes(actionType))
		defer watcher.m.channel.unsubscribe(sub)

		var last *Task[S]
		for {
			watcher.park()
			action, err := sub.next(watcher.ctx)
			if err != nil {
				return err
			}

			if last != nil {
				last.Cancel()
			}
			last = watcher.Fork(func(w *Task[S]) error {
				return worker(w, action)
			})
		}
	})
}

// Cancel cancels the task and all of its children. It does not wait.
func (t *Task[S]) Cancel() {
	t.cancel()
}

// Done is closed when the task has completed.
func (t *Task[S]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task has completed and returns its error.
func (t *Task[S]) Wait() error {
	<-t.done
	return t.Err()
}

// Err returns the task error. It is final once Done is closed; a cancelled
// or successful task reports nil.
func (t *Task[S]) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// Cancelled reports whether the task completed because it was cancelled.
func (t *Task[S]) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cancelled
}
