// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// [ConfigureStore] builds the state container with its middleware chain and
// starts the root background task. [App] wires the container to the movie
// services, the optional state inspector and the terminal UI into a single
// process lifecycle.
package client
