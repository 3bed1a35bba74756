package catalog

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-film-keeper/models"
)

// FilmsIn returns the films of list. Recent and top lists are ordered by
// rating, the others by year and then rating.
func FilmsIn(s State, list List) []models.Film {
	ids := s.Lists[list]
	films := make([]models.Film, 0, len(ids))
	for _, id := range ids {
		if f, ok := s.Films[id]; ok {
			films = append(films, f)
		}
	}

	switch list {
	case ListRecent, ListTop:
		slices.SortStableFunc(films, byRating)
	default:
		slices.SortStableFunc(films, byYearThenRating)
	}

	return films
}

// Selected returns the film in the detail view.
func Selected(s State) (models.Film, bool) {
	if s.Selected == 0 {
		return models.Film{}, false
	}
	f, ok := s.Films[s.Selected]
	return f, ok
}

// StarredIDs returns the starred movie ids in ascending order.
func StarredIDs(s State) []int64 {
	ids := make([]int64, 0, len(s.Starred))
	for id, starred := range s.Starred {
		if starred {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// IsLoading reports whether list or the listing backing it is being refreshed.
func IsLoading(s State, list List) bool {
	if s.Loading[list] {
		return true
	}
	for movieType, syncing := range s.Syncing {
		if l, ok := ListOf(movieType); ok && l == list && syncing {
			return true
		}
	}
	return false
}

func byRating(a, b models.Film) int {
	return cmp.Compare(b.Rating, a.Rating)
}

func byYearThenRating(a, b models.Film) int {
	if c := cmp.Compare(b.Year, a.Year); c != 0 {
		return c
	}
	return byRating(a, b)
}
