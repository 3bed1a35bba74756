package devtools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-film-keeper/internal/config"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/state"
)

type add struct {
	N int `json:"n"`
}

func (add) ActionType() string { return "add" }

func counter(s int, action state.Action) int {
	if a, ok := action.(add); ok {
		return s + a.N
	}
	return s
}

func double(s int, action state.Action) int {
	if a, ok := action.(add); ok {
		return s + 2*a.N
	}
	return s
}

func newMonitoredStore(t *testing.T, limit int, mws ...state.Middleware[int]) (*Monitor[int], state.Store[int]) {
	t.Helper()
	m := New[int](config.ClientDevTools{Enabled: true, HistoryLimit: limit}, logger.Nop())
	s, err := state.New(counter, 0, m.Compose(state.ApplyMiddleware(mws...)))
	require.NoError(t, err)
	return m, s
}

func TestMonitor_RecordsReducedActions(t *testing.T) {
	m, s := newMonitoredStore(t, 10)

	_, err := s.Dispatch(add{N: 2})
	require.NoError(t, err)
	_, err = s.Dispatch(add{N: 3})
	require.NoError(t, err)

	history := m.History()
	require.Len(t, history, 3)
	assert.Equal(t, state.ActionInit, history[0].Type)
	assert.Equal(t, "add", history[1].Type)
	assert.Equal(t, 2, history[1].State)
	assert.Equal(t, 5, history[2].State)
	assert.Equal(t, 2, history[2].Index)
	assert.NotEmpty(t, history[2].ID)
}

func TestMonitor_DoesNotChangeState(t *testing.T) {
	_, s := newMonitoredStore(t, 10)

	plain, err := state.New(counter, 0, state.ApplyMiddleware[int]())
	require.NoError(t, err)

	for _, n := range []int{1, 4, -2} {
		_, _ = s.Dispatch(add{N: n})
		_, _ = plain.Dispatch(add{N: n})
	}

	assert.Equal(t, plain.GetState(), s.GetState())
}

func TestMonitor_HistoryLimit(t *testing.T) {
	m, s := newMonitoredStore(t, 2)

	for i := 0; i < 5; i++ {
		_, _ = s.Dispatch(add{N: 1})
	}

	history := m.History()
	require.Len(t, history, 2)
	assert.Equal(t, 4, history[0].Index)
	assert.Equal(t, 5, history[1].Index)

	_, ok := m.Entry(0)
	assert.False(t, ok)
	e, ok := m.Entry(5)
	require.True(t, ok)
	assert.Equal(t, 5, e.State)
}

func TestMonitor_DefaultLimit(t *testing.T) {
	m := New[int](config.ClientDevTools{}, nil)
	assert.Equal(t, defaultHistoryLimit, m.limit)
}

func TestMonitor_SkipsInterceptedActions(t *testing.T) {
	swallow := func(api state.MiddlewareAPI[int]) func(next state.DispatchFunc) state.DispatchFunc {
		return func(next state.DispatchFunc) state.DispatchFunc {
			return func(action state.Action) (any, error) {
				if a, ok := action.(add); ok && a.N < 0 {
					return nil, nil
				}
				return next(action)
			}
		}
	}
	m, s := newMonitoredStore(t, 10, swallow)

	_, _ = s.Dispatch(add{N: -1})
	_, _ = s.Dispatch(add{N: 1})

	history := m.History()
	require.Len(t, history, 2)
	assert.Equal(t, 1, history[1].State)
}

func TestMonitor_ReplaceReducerStaysInstrumented(t *testing.T) {
	m, s := newMonitoredStore(t, 10)

	require.NoError(t, s.ReplaceReducer(double))
	_, _ = s.Dispatch(add{N: 1})

	history := m.History()
	last := history[len(history)-1]
	assert.Equal(t, "add", last.Type)
	assert.Equal(t, 2, last.State)
	assert.Equal(t, state.ActionReplace, history[len(history)-2].Type)

	assert.ErrorIs(t, s.ReplaceReducer(nil), state.ErrNilReducer)
}

func TestMonitor_Metrics(t *testing.T) {
	m, s := newMonitoredStore(t, 10)

	_, _ = s.Dispatch(add{N: 1})
	_, _ = s.Dispatch(add{N: 1})

	families, err := m.registry.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				values[f.GetName()] += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[f.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}

	// init plus two adds
	assert.Equal(t, float64(3), values["filmkeeper_actions_reduced_total"])
	assert.Equal(t, float64(3), values["filmkeeper_history_entries"])
}

func TestMonitor_NilReducer(t *testing.T) {
	m := New[int](config.ClientDevTools{HistoryLimit: 1}, nil)
	_, err := state.New(nil, 0, m.Compose())
	assert.ErrorIs(t, err, state.ErrNilReducer)
}

func TestHandler_State(t *testing.T) {
	m, s := newMonitoredStore(t, 10)
	_, _ = s.Dispatch(add{N: 7})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/state", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "7", strings.TrimSpace(rec.Body.String()))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestHandler_StateBeforeStore(t *testing.T) {
	m := New[int](config.ClientDevTools{}, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/state", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_Actions(t *testing.T) {
	m, s := newMonitoredStore(t, 10)
	_, _ = s.Dispatch(add{N: 1})

	tests := []struct {
		name    string
		target  string
		wantLen int
	}{
		{name: "all", target: "/debug/actions", wantLen: 2},
		{name: "filtered", target: "/debug/actions?type=add", wantLen: 1},
		{name: "no match", target: "/debug/actions?type=other", wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var got []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestHandler_ActionByIndex(t *testing.T) {
	m, s := newMonitoredStore(t, 10)
	_, _ = s.Dispatch(add{N: 4})

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "found", target: "/debug/actions/1", wantStatus: http.StatusOK},
		{name: "missing", target: "/debug/actions/42", wantStatus: http.StatusNotFound},
		{name: "bad index", target: "/debug/actions/abc", wantStatus: http.StatusBadRequest},
		{name: "negative", target: "/debug/actions/-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/actions/1", nil))
	var e map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "add", e["type"])
	assert.Equal(t, float64(4), e["state"])
	assert.Equal(t, map[string]any{"n": float64(4)}, e["action"])
}

func TestHandler_Metrics(t *testing.T) {
	m, s := newMonitoredStore(t, 10)
	_, _ = s.Dispatch(add{N: 1})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `filmkeeper_actions_reduced_total{type="add"} 1`)
}

func TestHandler_WrongMethodIsNotFound(t *testing.T) {
	m, _ := newMonitoredStore(t, 10)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/state", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_KeepsTraceID(t *testing.T) {
	m, _ := newMonitoredStore(t, 10)

	req := httptest.NewRequest(http.MethodGet, "/debug/actions", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))
}

func TestStartShutdown_NoAddress(t *testing.T) {
	m := New[int](config.ClientDevTools{}, nil)
	m.Start()
	assert.NoError(t, m.Shutdown(t.Context()))
}
