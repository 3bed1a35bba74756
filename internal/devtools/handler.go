package devtools

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/utils"
)

// Handler returns the inspector routes:
//
//	GET /debug/state            current state
//	GET /debug/actions          recorded entries, optionally ?type=
//	GET /debug/actions/{index}  one recorded entry
//	GET /metrics                Prometheus metrics
func (m *Monitor[S]) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(m.withTraceID, m.withLogging)

	router.Get("/debug/state", m.getState)
	router.Get("/debug/actions", m.listActions)
	router.Get("/debug/actions/{index}", m.getAction)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	router.MethodNotAllowed(checkHTTPMethod(router))

	return router
}

func (m *Monitor[S]) getState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	s := m.currentStore()
	if s == nil {
		http.Error(w, "store is not created yet", http.StatusServiceUnavailable)
		return
	}

	if err := utils.WriteJSON(w, http.StatusOK, s.GetState()); err != nil {
		log.Err(err).Str("func", "devtools.getState").Msg("error writing state")
	}
}

func (m *Monitor[S]) listActions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	history := m.History()
	if actionType := r.URL.Query().Get("type"); actionType != "" {
		filtered := history[:0]
		for _, e := range history {
			if e.Type == actionType {
				filtered = append(filtered, e)
			}
		}
		history = filtered
	}

	if err := utils.WriteJSON(w, http.StatusOK, history); err != nil {
		log.Err(err).Str("func", "devtools.listActions").Msg("error writing history")
	}
}

func (m *Monitor[S]) getAction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		http.Error(w, "index must be a non-negative integer", http.StatusBadRequest)
		return
	}

	entry, ok := m.Entry(index)
	if !ok {
		http.Error(w, "entry not found", http.StatusNotFound)
		return
	}

	if err := utils.WriteJSON(w, http.StatusOK, entry); err != nil {
		log.Err(err).Str("func", "devtools.getAction").Msg("error writing entry")
	}
}

// checkHTTPMethod answers 404 instead of 405 for methods a route does not
// handle.
func checkHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
