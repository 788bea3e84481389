package content

import (
	"fmt"
	"strings"

	"github.com/14ROVI/copland/internal/films"
	"github.com/14ROVI/copland/internal/wm"
)

// Films lists recently watched films once they have been fetched.
func Films() *wm.Window {
	return &wm.Window{
		ID:    wm.FilmsID,
		State: wm.Open,
		Close: wm.CloseRemove,
		Top:   wm.Half(),
		Left:  wm.Half(),
		Width: 48,
		Icon:  "▶",
		Title: "Films",
		Body:  &filmsBody{},
	}
}

type filmsBody struct {
	loaded bool
	films  []films.Film
	err    error
}

func (f *filmsBody) View(width int) string {
	switch {
	case f.err != nil:
		return bodyStyle(width).Render("Couldn't load films: " + f.err.Error())
	case !f.loaded:
		return "Loading..."
	case len(f.films) == 0:
		return "Nothing watched yet."
	}

	rows := make([]string, 0, len(f.films))
	for _, film := range f.films {
		line := fmt.Sprintf("%s %s", heading(film.Name), film.Stars())
		rows = append(rows, bodyStyle(width).Render(line))
		if film.WatchedAt != "" {
			rows = append(rows, dim("  "+film.WatchedAt))
		}
	}
	return strings.Join(rows, "\n")
}

func (f *filmsBody) HandleMsg(msg any) bool {
	m, ok := msg.(FilmsLoadedMsg)
	if !ok {
		return false
	}
	f.loaded = true
	f.films = m.Films
	f.err = m.Err
	return true
}
