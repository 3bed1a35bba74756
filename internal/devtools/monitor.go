// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devtools provides an optional inspector for the state container.
//
// A [Monitor] replaces the enhancer composition function used at bootstrap.
// It records the last N reduced actions with the resulting state, counts
// them in Prometheus metrics and serves both over HTTP. It never changes the
// state the reducer produces.
package devtools

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/go-film-keeper/internal/config"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/state"
	"github.com/MKhiriev/go-film-keeper/internal/utils"
)

const defaultHistoryLimit = 100

// Entry is one recorded reduce step.
type Entry[S any] struct {
	Index  int           `json:"index"`
	ID     string        `json:"id"`
	Type   string        `json:"type"`
	Action state.Action  `json:"action"`
	State  S             `json:"state"`
	Took   time.Duration `json:"took_ns"`
	At     time.Time     `json:"at"`
}

// Monitor records store activity. Create it with [New] and pass
// [Monitor.Compose] as the enhancer composition hook.
type Monitor[S any] struct {
	mu      sync.RWMutex
	store   state.Store[S]
	history []Entry[S]
	total   int
	limit   int

	ids func() string

	registry       *prometheus.Registry
	dispatched     *prometheus.CounterVec
	reduceDuration prometheus.Histogram
	historySize    prometheus.Gauge

	address string
	server  *http.Server
	logger  *logger.Logger
}

// New creates a monitor from the devtools configuration.
func New[S any](cfg config.ClientDevTools, log *logger.Logger) *Monitor[S] {
	if log == nil {
		log = logger.Nop()
	}
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Monitor[S]{
		limit:    limit,
		ids:      utils.NewTraceID,
		registry: registry,
		dispatched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filmkeeper_actions_reduced_total",
				Help: "Total number of actions handed to the reducer",
			},
			[]string{"type"},
		),
		reduceDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "filmkeeper_reduce_duration_seconds",
				Help:    "Time taken by the reducer",
				Buckets: prometheus.DefBuckets,
			},
		),
		historySize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "filmkeeper_history_entries",
				Help: "Number of recorded actions kept in memory",
			},
		),
		address: cfg.Address,
		logger:  log,
	}
}

// Compose is a [state.ComposeFunc]. It composes enhancers the way
// [state.Compose] does and instruments the innermost store, so the recorder
// sees exactly the actions that reach the reducer.
func (m *Monitor[S]) Compose(enhancers ...state.Enhancer[S]) state.Enhancer[S] {
	composed := state.Compose(enhancers...)

	return func(next state.StoreCreator[S]) state.StoreCreator[S] {
		create := composed(m.instrument(next))

		return func(reducer state.Reducer[S], initial S) (state.Store[S], error) {
			s, err := create(reducer, initial)
			if err != nil {
				return nil, err
			}

			m.mu.Lock()
			m.store = s
			m.mu.Unlock()

			return s, nil
		}
	}
}

// recordingStore keeps replaced reducers instrumented.
type recordingStore[S any] struct {
	state.Store[S]
	monitor *Monitor[S]
}

func (r *recordingStore[S]) ReplaceReducer(reducer state.Reducer[S]) error {
	if reducer == nil {
		return state.ErrNilReducer
	}
	return r.Store.ReplaceReducer(r.monitor.record(reducer))
}

func (m *Monitor[S]) instrument(next state.StoreCreator[S]) state.StoreCreator[S] {
	return func(reducer state.Reducer[S], initial S) (state.Store[S], error) {
		if reducer == nil {
			return nil, state.ErrNilReducer
		}

		s, err := next(m.record(reducer), initial)
		if err != nil {
			return nil, err
		}

		return &recordingStore[S]{Store: s, monitor: m}, nil
	}
}

func (m *Monitor[S]) record(reducer state.Reducer[S]) state.Reducer[S] {
	return func(current S, action state.Action) S {
		start := time.Now()
		next := reducer(current, action)
		m.observe(action, next, time.Since(start))

		return next
	}
}

func (m *Monitor[S]) observe(action state.Action, next S, took time.Duration) {
	m.dispatched.WithLabelValues(action.ActionType()).Inc()
	m.reduceDuration.Observe(took.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, Entry[S]{
		Index:  m.total,
		ID:     m.ids(),
		Type:   action.ActionType(),
		Action: action,
		State:  next,
		Took:   took,
		At:     time.Now(),
	})
	m.total++

	if over := len(m.history) - m.limit; over > 0 {
		m.history = append(m.history[:0:0], m.history[over:]...)
	}
	m.historySize.Set(float64(len(m.history)))
}

// History returns a copy of the recorded entries, oldest first.
func (m *Monitor[S]) History() []Entry[S] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Entry[S], len(m.history))
	copy(out, m.history)
	return out
}

// Entry returns the recorded entry with the given index, if it is still kept.
func (m *Monitor[S]) Entry(index int) (Entry[S], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.history) == 0 {
		return Entry[S]{}, false
	}
	pos := index - m.history[0].Index
	if pos < 0 || pos >= len(m.history) {
		return Entry[S]{}, false
	}
	return m.history[pos], true
}

func (m *Monitor[S]) currentStore() state.Store[S] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store
}

// Start serves [Monitor.Handler] on the configured address in the
// background. It does nothing when no address is configured.
func (m *Monitor[S]) Start() {
	if m.address == "" {
		return
	}

	m.server = &http.Server{
		Addr:              m.address,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		m.logger.Info().Str("func", "devtools.Start").Str("address", m.address).Msg("serving state inspector")
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Err(err).Str("func", "devtools.Start").Msg("state inspector stopped")
		}
	}()
}

// Shutdown stops the HTTP server started by [Monitor.Start].
func (m *Monitor[S]) Shutdown(ctx context.Context) error {
	if m.server == nil {
		return nil
	}
	return m.server.Shutdown(ctx)
}
