// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package thunk

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-film-keeper/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type add struct{ n int }

func (add) ActionType() string { return "add" }

func counter(s int, action state.Action) int {
	if a, ok := action.(add); ok {
		return s + a.n
	}
	return s
}

func newStore(t *testing.T, opts ...Option) state.Store[int] {
	t.Helper()
	st, err := state.New(counter, 0, state.ApplyMiddleware(New[int](opts...)))
	require.NoError(t, err)
	return st
}

func TestThunk_RunsAndReturnsResult(t *testing.T) {
	st := newStore(t)

	res, err := st.Dispatch(Func[int](func(api state.MiddlewareAPI[int], _ any) (any, error) {
		if _, err := api.Dispatch(add{n: 2}); err != nil {
			return nil, err
		}
		return api.GetState() * 10, nil
	}))

	require.NoError(t, err)
	assert.Equal(t, 20, res)
	assert.Equal(t, 2, st.GetState())
}

func TestThunk_NotForwardedToReducer(t *testing.T) {
	var seen []string
	reducer := func(s int, action state.Action) int {
		seen = append(seen, action.ActionType())
		return s
	}

	st, err := state.New(reducer, 0, state.ApplyMiddleware(New[int]()))
	require.NoError(t, err)

	seen = nil
	_, err = st.Dispatch(Func[int](func(state.MiddlewareAPI[int], any) (any, error) { return nil, nil }))
	require.NoError(t, err)
	assert.Empty(t, seen)
}

func TestThunk_ErrorPropagates(t *testing.T) {
	st := newStore(t)
	errThunk := errors.New("thunk failed")

	_, err := st.Dispatch(Func[int](func(state.MiddlewareAPI[int], any) (any, error) {
		return nil, errThunk
	}))

	assert.ErrorIs(t, err, errThunk)
}

func TestThunk_ExtraArgument(t *testing.T) {
	st := newStore(t, WithExtraArgument("services"))

	res, err := st.Dispatch(Func[int](func(_ state.MiddlewareAPI[int], extra any) (any, error) {
		return extra, nil
	}))

	require.NoError(t, err)
	assert.Equal(t, "services", res)
}

func TestThunk_NilFunc(t *testing.T) {
	st := newStore(t)

	var fn Func[int]
	_, err := st.Dispatch(fn)
	assert.ErrorIs(t, err, state.ErrNilAction)
}

func TestThunk_PlainActionsPassThrough(t *testing.T) {
	st := newStore(t)

	_, err := st.Dispatch(add{n: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, st.GetState())
}

func TestThunk_WithoutMiddlewareIsRejected(t *testing.T) {
	st, err := state.New(counter, 0, nil)
	require.NoError(t, err)

	_, err = st.Dispatch(Func[int](func(state.MiddlewareAPI[int], any) (any, error) { return nil, nil }))
	assert.ErrorIs(t, err, state.ErrUnhandledDeferred)
}

func TestDefer_RunsLater(t *testing.T) {
	st := newStore(t)
	release := make(chan struct{})

	res, err := st.Dispatch(Defer(Func[int](func(api state.MiddlewareAPI[int], _ any) (any, error) {
		<-release
		return api.Dispatch(add{n: 1})
	}), nil))
	require.NoError(t, err)

	done, ok := res.(<-chan error)
	require.True(t, ok)
	assert.Zero(t, st.GetState(), "deferred body must not run before Dispatch returns")

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("deferred thunk did not finish")
	}
	assert.Equal(t, 1, st.GetState())
}

func TestDefer_ReportsError(t *testing.T) {
	st := newStore(t)
	errBody := errors.New("late failure")

	reported := make(chan error, 1)
	res, err := st.Dispatch(Defer(Func[int](func(state.MiddlewareAPI[int], any) (any, error) {
		return nil, errBody
	}), func(err error) { reported <- err }))
	require.NoError(t, err)

	assert.ErrorIs(t, <-res.(<-chan error), errBody)
	assert.ErrorIs(t, <-reported, errBody)
}
