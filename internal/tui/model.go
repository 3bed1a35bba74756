package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-film-keeper/internal/catalog"
	"github.com/MKhiriev/go-film-keeper/internal/state"
	"github.com/MKhiriev/go-film-keeper/internal/thunks"
	"github.com/MKhiriev/go-film-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 3 * time.Second

type catalogModel struct {
	store   state.Store[catalog.State]
	version string
	copy    func(text string) error

	snapshot catalog.State
	tab      int
	cursor   map[catalog.List]int
	detail   bool

	status        string
	dismissedErr  string
	showBuildInfo bool
	spinner       spinner.Model
}

func newCatalogModel(store state.Store[catalog.State], version string) catalogModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return catalogModel{
		store:    store,
		version:  version,
		copy:     clipboard.WriteAll,
		snapshot: store.GetState(),
		cursor:   make(map[catalog.List]int, len(catalog.Lists)),
		spinner:  s,
	}
}

func (m catalogModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m catalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.snapshot = m.store.GetState()
		m.clampCursor()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m catalogModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.errorShown() {
		if key.Matches(msg, keys.esc, keys.enter) {
			m.dismissedErr = m.snapshot.Err
		}
		return m, nil
	}

	if m.detail {
		return m.updateDetail(msg)
	}

	switch {
	case key.Matches(msg, keys.up):
		if c := m.cursor[m.list()]; c > 0 {
			m.cursor[m.list()] = c - 1
		}
	case key.Matches(msg, keys.down):
		if c := m.cursor[m.list()]; c < len(m.films())-1 {
			m.cursor[m.list()] = c + 1
		}
	case key.Matches(msg, keys.right, keys.tab):
		return m.switchTab(1)
	case key.Matches(msg, keys.left, keys.backtab):
		return m.switchTab(-1)
	case key.Matches(msg, keys.enter):
		film, ok := m.current()
		if !ok {
			return m.setStatus("Нет фильмов")
		}
		m.detail = true
		return m.dispatch(
			catalog.SelectMovie{MovieID: film.MovieID},
			catalog.FetchMovie{MovieID: film.MovieID},
			catalog.MarkViewed{MovieID: film.MovieID},
		)
	case key.Matches(msg, keys.star):
		film, ok := m.current()
		if !ok {
			return m.setStatus("Нет фильмов")
		}
		return m.toggleStar(film)
	case key.Matches(msg, keys.refresh):
		return m.refresh()
	case key.Matches(msg, keys.copy):
		film, ok := m.current()
		if !ok {
			return m.setStatus("Нечего копировать")
		}
		return m.copyLink(film)
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m catalogModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	film, ok := catalog.Selected(m.snapshot)

	switch {
	case key.Matches(msg, keys.esc):
		m.detail = false
		return m.dispatch(catalog.SelectMovie{})
	case key.Matches(msg, keys.star) && ok:
		return m.toggleStar(film)
	case key.Matches(msg, keys.copy) && ok:
		return m.copyLink(film)
	}

	return m, nil
}

func (m catalogModel) switchTab(step int) (tea.Model, tea.Cmd) {
	n := len(catalog.Lists)
	m.tab = ((m.tab+step)%n + n) % n

	if m.list() == catalog.ListStarred {
		return m.dispatch(catalog.FetchMovies{List: catalog.ListStarred})
	}
	return m, nil
}

func (m catalogModel) toggleStar(film models.Film) (tea.Model, tea.Cmd) {
	starred := m.snapshot.Starred[film.MovieID]

	updated, _ := m.dispatch(thunks.ToggleStar(film.MovieID))
	m = updated.(catalogModel)

	if starred {
		return m.setStatus("Убрано из избранного")
	}
	return m.setStatus("Добавлено в избранное")
}

func (m catalogModel) refresh() (tea.Model, tea.Cmd) {
	if movieType, ok := movieTypeOf(m.list()); ok {
		if m.snapshot.Syncing[movieType] {
			return m.setStatus("Синхронизация уже идёт")
		}
		updated, _ := m.dispatch(catalog.SyncMovies{Type: movieType})
		return updated.(catalogModel).setStatus("Синхронизация...")
	}

	return m.dispatch(catalog.FetchMovies{List: m.list()})
}

func (m catalogModel) copyLink(film models.Film) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(film.Alt) == "" {
		return m.setStatus("Нечего копировать")
	}
	if err := m.copy(film.Alt); err != nil {
		return m.setStatus(fmt.Sprintf("Ошибка копирования: %v", err))
	}
	return m.setStatus("Ссылка скопирована")
}

// dispatch sends actions to the store in order and stops at the first
// failure, which is shown as status.
func (m catalogModel) dispatch(actions ...state.Action) (tea.Model, tea.Cmd) {
	for _, action := range actions {
		if _, err := m.store.Dispatch(action); err != nil {
			return m.setStatus(fmt.Sprintf("Ошибка: %v", err))
		}
	}
	m.snapshot = m.store.GetState()
	m.clampCursor()
	return m, nil
}

func (m catalogModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m catalogModel) list() catalog.List {
	return catalog.Lists[m.tab]
}

func (m catalogModel) films() []models.Film {
	return catalog.FilmsIn(m.snapshot, m.list())
}

func (m catalogModel) current() (models.Film, bool) {
	films := m.films()
	idx := m.cursor[m.list()]
	if idx < 0 || idx >= len(films) {
		return models.Film{}, false
	}
	return films[idx], true
}

func (m catalogModel) clampCursor() {
	for _, list := range catalog.Lists {
		n := len(catalog.FilmsIn(m.snapshot, list))
		c := m.cursor[list]
		if c >= n {
			c = n - 1
		}
		if c < 0 {
			c = 0
		}
		m.cursor[list] = c
	}
}

func (m catalogModel) errorShown() bool {
	return m.snapshot.Err != "" && m.snapshot.Err != m.dismissedErr
}

func movieTypeOf(list catalog.List) (models.MovieType, bool) {
	switch list {
	case catalog.ListRecent:
		return models.MovieTypeRecent, true
	case catalog.ListTop:
		return models.MovieTypeTop, true
	default:
		return "", false
	}
}
