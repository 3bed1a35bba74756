// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type add struct{ n int }

func (add) ActionType() string { return "add" }

type unknown struct{}

func (unknown) ActionType() string { return "unknown" }

type explode struct{}

func (explode) ActionType() string { return "explode" }

type deferredAction struct{}

func (deferredAction) ActionType() string { return "deferred" }
func (deferredAction) Deferred()          {}

func counter(s int, action Action) int {
	switch a := action.(type) {
	case add:
		return s + a.n
	case explode:
		panic("boom")
	default:
		return s
	}
}

func newCounter(t *testing.T, initial int) Store[int] {
	t.Helper()
	st, err := New(counter, initial, nil)
	require.NoError(t, err)
	return st
}

func TestNew_NilReducer(t *testing.T) {
	st, err := New[int](nil, 0, nil)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, ErrNilReducer)
}

func TestNew_DispatchesInit(t *testing.T) {
	var seen []string
	reducer := func(s int, action Action) int {
		seen = append(seen, action.ActionType())
		return s
	}

	_, err := New(reducer, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{ActionInit}, seen)
}

func TestStore_DispatchFoldsReducer(t *testing.T) {
	st := newCounter(t, 10)

	for _, n := range []int{1, 2, 3, -4} {
		res, err := st.Dispatch(add{n: n})
		require.NoError(t, err)
		assert.Equal(t, add{n: n}, res)
	}

	assert.Equal(t, 12, st.GetState())
}

func TestStore_UnknownActionLeavesStateUnchanged(t *testing.T) {
	st := newCounter(t, 5)

	_, err := st.Dispatch(unknown{})
	require.NoError(t, err)
	assert.Equal(t, 5, st.GetState())
}

func TestStore_NilAction(t *testing.T) {
	st := newCounter(t, 0)

	_, err := st.Dispatch(nil)
	assert.ErrorIs(t, err, ErrNilAction)
}

func TestStore_DeferredActionRejected(t *testing.T) {
	st := newCounter(t, 0)

	_, err := st.Dispatch(deferredAction{})
	assert.ErrorIs(t, err, ErrUnhandledDeferred)
}

func TestStore_ReducerPanicKeepsState(t *testing.T) {
	st := newCounter(t, 7)

	notified := 0
	st.Subscribe(func() { notified++ })

	_, err := st.Dispatch(explode{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReducerPanic)
	assert.Contains(t, err.Error(), "explode")
	assert.Equal(t, 7, st.GetState())
	assert.Zero(t, notified, "listeners must not run after a failed reduce")

	// the store keeps working after a failure
	_, err = st.Dispatch(add{n: 1})
	require.NoError(t, err)
	assert.Equal(t, 8, st.GetState())
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	st := newCounter(t, 0)

	var got []int
	unsubscribe := st.Subscribe(func() { got = append(got, st.GetState()) })

	_, _ = st.Dispatch(add{n: 1})
	_, _ = st.Dispatch(add{n: 1})
	unsubscribe()
	unsubscribe()
	_, _ = st.Dispatch(add{n: 1})

	assert.Equal(t, []int{1, 2}, got)
}

func TestStore_SubscribeDuringNotification(t *testing.T) {
	st := newCounter(t, 0)

	late := 0
	once := sync.Once{}
	st.Subscribe(func() {
		once.Do(func() {
			st.Subscribe(func() { late++ })
		})
	})

	_, _ = st.Dispatch(add{n: 1})
	assert.Zero(t, late, "listener added during notification runs from the next dispatch")

	_, _ = st.Dispatch(add{n: 1})
	assert.Equal(t, 1, late)
}

func TestStore_SubscribeNil(t *testing.T) {
	st := newCounter(t, 0)

	unsubscribe := st.Subscribe(nil)
	assert.NotPanics(t, unsubscribe)
	assert.NotPanics(t, func() { _, _ = st.Dispatch(add{n: 1}) })
}

func TestStore_ReplaceReducer(t *testing.T) {
	st := newCounter(t, 1)

	var seen []string
	doubler := func(s int, action Action) int {
		seen = append(seen, action.ActionType())
		if _, ok := action.(add); ok {
			return s * 2
		}
		return s
	}

	require.NoError(t, st.ReplaceReducer(doubler))
	assert.Equal(t, []string{ActionReplace}, seen)

	_, err := st.Dispatch(add{n: 100})
	require.NoError(t, err)
	assert.Equal(t, 2, st.GetState())

	assert.ErrorIs(t, st.ReplaceReducer(nil), ErrNilReducer)
}

func TestStore_IndependentInstances(t *testing.T) {
	first := newCounter(t, 0)
	second := newCounter(t, 0)

	_, _ = first.Dispatch(add{n: 3})

	assert.Equal(t, 3, first.GetState())
	assert.Equal(t, 0, second.GetState())
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	st := newCounter(t, 0)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				_, _ = st.Dispatch(add{n: 1})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, st.GetState())
}
