package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-film-keeper/models"
)

func TestFilmsIn_Ordering(t *testing.T) {
	films := []models.Film{film(1, 1994, 9.0), film(2, 2010, 8.0), film(3, 2010, 9.5), film(4, 1980, 9.9)}

	tests := []struct {
		name string
		list List
		want []int64
	}{
		{name: "top by rating", list: ListTop, want: []int64{4, 3, 1, 2}},
		{name: "recent by rating", list: ListRecent, want: []int64{4, 3, 1, 2}},
		{name: "all by year then rating", list: ListAll, want: []int64{3, 2, 1, 4}},
		{name: "starred by year then rating", list: ListStarred, want: []int64{3, 2, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(InitialState(), MoviesLoaded{List: tt.list, Films: films})

			got := FilmsIn(s, tt.list)
			ids := make([]int64, 0, len(got))
			for _, f := range got {
				ids = append(ids, f.MovieID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilmsIn_EmptyAndMissing(t *testing.T) {
	s := InitialState()
	assert.Empty(t, FilmsIn(s, ListTop))

	s.Lists = map[List][]int64{ListTop: {1}}
	assert.Empty(t, FilmsIn(s, ListTop))
}

func TestSelected(t *testing.T) {
	s := InitialState()
	_, ok := Selected(s)
	assert.False(t, ok)

	s = Reduce(s, SelectMovie{MovieID: 2})
	_, ok = Selected(s)
	assert.False(t, ok, "selected film not loaded")

	s = Reduce(s, MovieLoaded{Film: film(2, 2000, 1)})
	f, ok := Selected(s)
	assert.True(t, ok)
	assert.Equal(t, int64(2), f.MovieID)
}

func TestListOf(t *testing.T) {
	l, ok := ListOf(models.MovieTypeRecent)
	assert.True(t, ok)
	assert.Equal(t, ListRecent, l)

	l, ok = ListOf(models.MovieTypeTop)
	assert.True(t, ok)
	assert.Equal(t, ListTop, l)

	_, ok = ListOf(models.MovieTypeNormal)
	assert.False(t, ok)
}
