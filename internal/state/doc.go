// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state implements the client-side state container.
//
// A [Store] holds a single state value that changes only when an [Action] is
// dispatched and passed through the store's [Reducer]. Behaviour around
// dispatch is extended with [Middleware] installed by [ApplyMiddleware]; any
// number of store [Enhancer] values are combined with [Compose] (or with an
// injected [ComposeFunc] such as the devtools recorder).
//
// Typical construction:
//
//	st, err := state.New(reducer, initial, state.Compose(
//	    state.ApplyMiddleware(sagaMW, thunkMW, logMW),
//	))
//
// The reduce step is serialised by the store, so reducers must be pure
// functions and must not dispatch.
package state
