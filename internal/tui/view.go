package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-film-keeper/internal/catalog"
	"github.com/MKhiriev/go-film-keeper/models"
)

const listHotKeys = "←/→: вкладка │ ↑/↓: нав. │ enter: открыть │ s: избранное │ r: обновить │ y: ссылка │ v: о программе"

var listTitles = map[catalog.List]string{
	catalog.ListRecent:  "В прокате",
	catalog.ListTop:     "Топ",
	catalog.ListAll:     "Все",
	catalog.ListStarred: "Избранное",
}

func (m catalogModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.version)
	}
	if m.errorShown() {
		return errorOverlayModel{message: humanizeError(m.snapshot.Err)}.View()
	}
	if m.detail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m catalogModel) viewTabs() string {
	tabs := make([]string, 0, len(catalog.Lists))
	for i, list := range catalog.Lists {
		title := listTitles[list]
		if i == m.tab {
			tabs = append(tabs, titleStyle.Render("["+title+"]"))
			continue
		}
		tabs = append(tabs, tabStyle.Render(" "+title+" "))
	}
	return strings.Join(tabs, " ")
}

func (m catalogModel) viewList() string {
	list := m.list()

	out := m.viewTabs() + "\n\n"

	if catalog.IsLoading(m.snapshot, list) {
		out += m.spinner.View() + " Загрузка...\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	if movieType, ok := movieTypeOf(list); ok {
		if at, synced := m.snapshot.LastSync[movieType]; synced {
			out += "Обновлено: " + at.Local().Format("02.01.2006 15:04") + "\n"
		}
	}

	films := m.films()
	if len(films) == 0 {
		out += "\nФильмов нет\n"
		return renderPage("FILMKEEPER", strings.TrimRight(out, "\n"), listHotKeys)
	}

	out += "\n"
	out += "  №   │ Название                       │ Год  │ Рейтинг │ \n"
	out += "──────┼────────────────────────────────┼──────┼─────────┼───\n"
	cursor := m.cursor[list]
	for i, film := range films {
		marker := " "
		if i == cursor {
			marker = ">"
		}

		out += fmt.Sprintf(
			"%s %-3d │ %s │ %-4s │ %7.1f │ %s\n",
			marker,
			i+1,
			padText(film.Title, 30),
			yearOrDash(film.Year),
			film.Rating,
			m.flags(film.MovieID),
		)
	}

	return renderPage("FILMKEEPER", strings.TrimRight(out, "\n"), listHotKeys)
}

func (m catalogModel) flags(movieID int64) string {
	flags := ""
	if m.snapshot.Starred[movieID] {
		flags += "★"
	}
	if m.snapshot.Viewed[movieID] {
		flags += "·"
	}
	return flags
}

func (m catalogModel) viewDetail() string {
	film, ok := catalog.Selected(m.snapshot)
	if !ok {
		return renderPage("ФИЛЬМ", m.spinner.View()+" Загрузка...", "esc: назад")
	}

	title := film.Title
	if film.OriginalTitle != "" && film.OriginalTitle != film.Title {
		title += " / " + film.OriginalTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Год:        %s\n", yearOrDash(film.Year))
	fmt.Fprintf(&b, "Рейтинг:    %.1f\n", film.Rating)
	fmt.Fprintf(&b, "Жанры:      %s\n", listOrDash(film.Genres))
	fmt.Fprintf(&b, "Режиссёры:  %s\n", listOrDash(film.Directors))
	fmt.Fprintf(&b, "В ролях:    %s\n", listOrDash(film.Casts))
	fmt.Fprintf(&b, "Страны:     %s\n", listOrDash(film.Countries))
	fmt.Fprintf(&b, "Ссылка:     %s\n", valueOrDash(film.Alt))
	if m.snapshot.Starred[film.MovieID] {
		b.WriteString("В избранном\n")
	}
	b.WriteString("\n")
	b.WriteString(viewTitle("Описание"))
	if film.HasDetails() {
		b.WriteString(film.Summary)
	} else {
		b.WriteString(m.spinner.View() + " Загрузка описания...")
	}
	if m.status != "" {
		b.WriteString("\n\nСтатус: " + m.status)
	}

	return renderPage(strings.ToUpper(title), b.String(), "esc: назад │ s: избранное │ y: ссылка")
}

func yearOrDash(year int) string {
	if year <= 0 {
		return "-"
	}
	return fmt.Sprint(year)
}

func listOrDash(joined string) string {
	return valueOrDash(strings.ReplaceAll(joined, models.Separator, ", "))
}
