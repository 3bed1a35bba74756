package tui

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-film-keeper/internal/catalog"
	"github.com/MKhiriev/go-film-keeper/internal/state"
	"github.com/MKhiriev/go-film-keeper/internal/thunk"
	"github.com/MKhiriev/go-film-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	actions []state.Action
}

func (r *recorder) middleware() state.Middleware[catalog.State] {
	return func(state.MiddlewareAPI[catalog.State]) func(next state.DispatchFunc) state.DispatchFunc {
		return func(next state.DispatchFunc) state.DispatchFunc {
			return func(action state.Action) (any, error) {
				r.mu.Lock()
				r.actions = append(r.actions, action)
				r.mu.Unlock()
				return next(action)
			}
		}
	}
}

func (r *recorder) take() []state.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.actions
	r.actions = nil
	return out
}

var testFilms = []models.Film{
	{MovieID: 1, Title: "Second", Year: 2019, Rating: 7.5, Alt: "https://movie/1"},
	{MovieID: 2, Title: "First", OriginalTitle: "Premier", Year: 2020, Rating: 9.1, Genres: "Drama/Crime", Alt: "https://movie/2"},
}

func newTestModel(t *testing.T) (catalogModel, state.Store[catalog.State], *recorder) {
	t.Helper()

	rec := &recorder{}
	st, err := state.New(catalog.Reduce, catalog.InitialState(), state.ApplyMiddleware(thunk.New[catalog.State](), rec.middleware()))
	require.NoError(t, err)

	_, err = st.Dispatch(catalog.MoviesLoaded{List: catalog.ListRecent, Films: testFilms})
	require.NoError(t, err)
	rec.take()

	return newCatalogModel(st, "1.2.3"), st, rec
}

func press(t *testing.T, m catalogModel, keys ...tea.KeyMsg) (catalogModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(catalogModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func TestModel_ListShowsFilmsByRating(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "First")
	assert.Contains(t, view, "Second")
	assert.Less(t, strings.Index(view, "First"), strings.Index(view, "Second"))
}

func TestModel_EnterOpensDetail(t *testing.T) {
	m, st, rec := newTestModel(t)

	m, _ = press(t, m, keyDown, keyEnter)

	assert.True(t, m.detail)
	assert.Equal(t, []state.Action{
		catalog.SelectMovie{MovieID: 1},
		catalog.FetchMovie{MovieID: 1},
		catalog.MarkViewed{MovieID: 1},
	}, rec.take())
	assert.Equal(t, int64(1), st.GetState().Selected)
	assert.True(t, st.GetState().Viewed[1])
	assert.Contains(t, m.View(), "SECOND")
}

func TestModel_EscLeavesDetail(t *testing.T) {
	m, st, rec := newTestModel(t)
	m, _ = press(t, m, keyEnter)
	rec.take()

	m, _ = press(t, m, keyEsc)

	assert.False(t, m.detail)
	assert.Equal(t, []state.Action{catalog.SelectMovie{}}, rec.take())
	assert.Zero(t, st.GetState().Selected)
}

func TestModel_StarToggles(t *testing.T) {
	m, st, rec := newTestModel(t)

	m, cmd := press(t, m, runes("s"))

	assert.NotNil(t, cmd, "status is cleared later")
	assert.Equal(t, []state.Action{catalog.ToggleStar{MovieID: 2}}, rec.take())
	assert.True(t, st.GetState().Starred[2])
	assert.Equal(t, "Добавлено в избранное", m.status)
	assert.Contains(t, m.View(), "★")

	m, _ = press(t, m, runes("s"))
	assert.False(t, st.GetState().Starred[2])
	assert.Equal(t, "Убрано из избранного", m.status)
}

func TestModel_Refresh(t *testing.T) {
	m, _, rec := newTestModel(t)

	m, _ = press(t, m, runes("r"))
	assert.Equal(t, []state.Action{catalog.SyncMovies{Type: models.MovieTypeRecent}}, rec.take())

	// the "all" list is only reloaded from the cache
	_, _ = press(t, m, keyRight, keyRight, runes("r"))
	assert.Equal(t, []state.Action{catalog.FetchMovies{List: catalog.ListAll}}, rec.take())
}

func TestModel_RefreshWhileSyncing(t *testing.T) {
	m, st, rec := newTestModel(t)
	_, err := st.Dispatch(catalog.SyncStarted{Type: models.MovieTypeRecent})
	require.NoError(t, err)
	next, _ := m.Update(stateChangedMsg{})
	m = next.(catalogModel)
	rec.take()

	m, _ = press(t, m, runes("r"))

	assert.Empty(t, rec.take())
	assert.Equal(t, "Синхронизация уже идёт", m.status)
}

func TestModel_StarredTabLoadsStarredFilms(t *testing.T) {
	m, _, rec := newTestModel(t)

	m, _ = press(t, m, keyLeft)

	assert.Equal(t, catalog.ListStarred, m.list())
	assert.Equal(t, []state.Action{catalog.FetchMovies{List: catalog.ListStarred}}, rec.take())
	assert.Contains(t, m.View(), "Фильмов нет")
}

func TestModel_CopyLink(t *testing.T) {
	m, _, _ := newTestModel(t)
	var copied string
	m.copy = func(text string) error {
		copied = text
		return nil
	}

	m, _ = press(t, m, runes("y"))

	assert.Equal(t, "https://movie/2", copied)
	assert.Equal(t, "Ссылка скопирована", m.status)
}

func TestModel_CopyLinkError(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.copy = func(string) error { return errors.New("no clipboard") }

	m, _ = press(t, m, runes("y"))

	assert.Contains(t, m.status, "no clipboard")
}

func TestModel_StateChangeShowsErrorOverlay(t *testing.T) {
	m, st, _ := newTestModel(t)
	_, err := st.Dispatch(catalog.SyncFailed{Type: models.MovieTypeTop, Reason: "movie catalog rate limit reached"})
	require.NoError(t, err)

	next, _ := m.Update(stateChangedMsg{})
	m = next.(catalogModel)

	assert.Contains(t, m.View(), "Слишком много запросов")

	m, _ = press(t, m, keyEnter)
	assert.False(t, m.errorShown())
	assert.NotContains(t, m.View(), "Слишком много запросов")
}

func TestModel_BuildInfo(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, runes("v"))
	assert.Contains(t, m.View(), "1.2.3")

	m, _ = press(t, m, keyEsc)
	assert.False(t, m.showBuildInfo)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := press(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CursorClampedAfterReload(t *testing.T) {
	m, st, _ := newTestModel(t)
	m, _ = press(t, m, keyDown)
	require.Equal(t, 1, m.cursor[catalog.ListRecent])

	_, err := st.Dispatch(catalog.MoviesLoaded{List: catalog.ListRecent, Films: testFilms[:1]})
	require.NoError(t, err)
	next, _ := m.Update(stateChangedMsg{})
	m = next.(catalogModel)

	assert.Equal(t, 0, m.cursor[catalog.ListRecent])
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "肖申克的...", fitText("肖申克的救赎电影", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "ab   ", padText("ab", 5))
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(""))
	assert.Equal(t, "Фильм не найден", humanizeError("movie not found: 404"))
	assert.Equal(t, "Отсутствует сеть или сервис фильмов недоступен", humanizeError("dial tcp: connection refused"))
	assert.Equal(t, "something odd", humanizeError("something odd"))
}
