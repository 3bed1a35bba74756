package catalog

import (
	"maps"

	"github.com/MKhiriev/go-film-keeper/internal/state"
	"github.com/MKhiriev/go-film-keeper/models"
)

// Reduce is the root reducer. Unknown actions return s unchanged.
func Reduce(s State, action state.Action) State {
	switch a := action.(type) {
	case MoviesRequested:
		s.Loading = with(s.Loading, a.List, true)

	case MoviesLoaded:
		films := maps.Clone(s.Films)
		if films == nil {
			films = map[int64]models.Film{}
		}
		ids := make([]int64, 0, len(a.Films))
		for _, f := range a.Films {
			films[f.MovieID] = f
			ids = append(ids, f.MovieID)
		}
		s.Films = films
		s.Lists = with(s.Lists, a.List, ids)
		s.Loading = without(s.Loading, a.List)
		s.Err = ""

	case MoviesFailed:
		s.Loading = without(s.Loading, a.List)
		s.Err = a.Reason

	case MovieLoaded:
		s.Films = with(s.Films, a.Film.MovieID, a.Film)
		s.Err = ""

	case MovieFailed:
		s.Err = a.Reason

	case SelectMovie:
		s.Selected = a.MovieID

	case ToggleStar:
		if s.Starred[a.MovieID] {
			s.Starred = without(s.Starred, a.MovieID)
			s.Lists = with(s.Lists, ListStarred, remove(s.Lists[ListStarred], a.MovieID))
		} else {
			s.Starred = with(s.Starred, a.MovieID, true)
		}

	case MarkViewed:
		if !s.Viewed[a.MovieID] {
			s.Viewed = with(s.Viewed, a.MovieID, true)
		}

	case SyncStarted:
		s.Syncing = with(s.Syncing, a.Type, true)

	case SyncCompleted:
		s.Syncing = without(s.Syncing, a.Type)
		s.LastSync = with(s.LastSync, a.Type, a.At)

	case SyncFailed:
		s.Syncing = without(s.Syncing, a.Type)
		s.Err = a.Reason
	}

	return s
}

func with[K comparable, V any](m map[K]V, key K, value V) map[K]V {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[K]V, 1)
	}
	out[key] = value
	return out
}

func without[K comparable, V any](m map[K]V, key K) map[K]V {
	if _, ok := m[key]; !ok {
		return m
	}
	out := maps.Clone(m)
	delete(out, key)
	return out
}

func remove(ids []int64, id int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
