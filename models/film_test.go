package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subjectJSON = `{
	"id": "1292052",
	"title": "肖申克的救赎",
	"original_title": "The Shawshank Redemption",
	"year": "1994",
	"rating": {"average": 9.7, "max": 10},
	"genres": ["犯罪", "剧情"],
	"directors": [{"id": "1047973", "name": "弗兰克·德拉邦特"}],
	"casts": [{"name": "蒂姆·罗宾斯"}, {"name": ""}, {"name": "摩根·弗里曼"}],
	"images": {"small": "s.jpg", "medium": "m.jpg", "large": "l.jpg"},
	"alt": "https://movie.douban.com/subject/1292052/",
	"summary": "希望让人自由。",
	"countries": ["美国"]
}`

func TestFilmFromSubject(t *testing.T) {
	var subject MovieSubject
	require.NoError(t, json.Unmarshal([]byte(subjectJSON), &subject))

	film := FilmFromSubject(subject, MovieTypeNormal)

	assert.Equal(t, int64(1292052), film.MovieID)
	assert.Equal(t, "肖申克的救赎", film.Title)
	assert.Equal(t, "The Shawshank Redemption", film.OriginalTitle)
	assert.Equal(t, 1994, film.Year)
	assert.InDelta(t, 9.7, film.Rating, 0.001)
	assert.Equal(t, "犯罪/剧情", film.Genres)
	assert.Equal(t, "弗兰克·德拉邦特", film.Directors)
	assert.Equal(t, "蒂姆·罗宾斯/摩根·弗里曼", film.Casts)
	assert.Equal(t, "l.jpg", film.Image)
	assert.Equal(t, "希望让人自由。", film.Summary)
	assert.Equal(t, "美国", film.Countries)
	assert.Equal(t, MovieTypeNormal, film.MovieType)
	assert.True(t, film.HasDetails())
	assert.Zero(t, film.ID)
}

func TestFilmFromMovie_KeepsOldDetails(t *testing.T) {
	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	old := &Film{ID: 7, Summary: "old summary", Countries: "中国大陆", CreatedAt: &created}

	film := FilmFromMovie(Movie{ID: "42", Title: "新片", Year: "2026"}, MovieTypeRecent, old)

	assert.Equal(t, int64(7), film.ID)
	assert.Equal(t, int64(42), film.MovieID)
	assert.Equal(t, "old summary", film.Summary)
	assert.Equal(t, "中国大陆", film.Countries)
	assert.Equal(t, &created, film.CreatedAt)
	assert.Equal(t, MovieTypeRecent, film.MovieType)
}

func TestFilmFromMovie_NoOldFilm(t *testing.T) {
	film := FilmFromMovie(Movie{ID: "bad", Year: "unknown"}, MovieTypeTop, nil)

	assert.Zero(t, film.MovieID)
	assert.Zero(t, film.Year)
	assert.False(t, film.HasDetails())
}

func TestFilm_WithDetails(t *testing.T) {
	film := Film{MovieID: 1, Title: "t"}.WithDetails(MovieSubject{Summary: "s", Countries: []string{"日本", "韩国"}})

	assert.Equal(t, "s", film.Summary)
	assert.Equal(t, "日本/韩国", film.Countries)
	assert.Equal(t, "t", film.Title)
}

func TestMovieType_Valid(t *testing.T) {
	assert.True(t, MovieTypeNormal.Valid())
	assert.True(t, MovieTypeRecent.Valid())
	assert.True(t, MovieTypeTop.Valid())
	assert.False(t, MovieType("other").Valid())
}
