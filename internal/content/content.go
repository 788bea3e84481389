// Package content builds the windows that live on the desktop and the
// bodies rendered inside them.
package content

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/14ROVI/copland/internal/films"
	"github.com/14ROVI/copland/internal/nowplaying"
	"github.com/14ROVI/copland/internal/theme"
	"github.com/14ROVI/copland/internal/wm"
)

// ChromeRows is the number of rows a window frame adds around its body:
// the title bar plus the top and bottom border.
const ChromeRows = 3

// ChromeCols is the number of columns the frame adds around the body.
const ChromeCols = 2

// Key is a key press as seen by content. Text is set for printable input.
type Key struct {
	String string
	Text   string
}

// KeyHandler is implemented by content that reacts to keys while its
// window is focused. consumed reports whether the key was used.
type KeyHandler interface {
	HandleKey(k Key) (cmds []wm.Command, consumed bool)
}

// ClickHandler is implemented by content with clickable regions. x and
// y are relative to the body's top-left cell.
type ClickHandler interface {
	HandleClick(x, y int) []wm.Command
}

// MessageHandler is implemented by content that consumes async results.
type MessageHandler interface {
	HandleMsg(msg any) bool
}

// FilmsLoadedMsg carries the result of a films fetch.
type FilmsLoadedMsg struct {
	Films []films.Film
	Err   error
}

// NowPlayingMsg carries a presence update.
type NowPlayingMsg struct {
	Status nowplaying.Status
}

// Env is what the factories need from the desktop.
type Env struct {
	Background *theme.Background
	Now        func() time.Time
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// New builds the singleton window for kind. Sticky notes are built with
// StickyNote instead and report false.
func New(kind wm.Kind, env Env) (*wm.Window, bool) {
	switch kind {
	case wm.KindHome:
		return Home(), true
	case wm.KindAboutMe:
		return AboutMe(), true
	case wm.KindSocialLinks:
		return SocialLinks(), true
	case wm.KindProjects:
		return Projects(), true
	case wm.KindPhotoViewer:
		return PhotoViewer(), true
	case wm.KindFilms:
		return Films(), true
	case wm.KindBackgroundSelector:
		return BackgroundSelector(env.Background), true
	case wm.KindSpotify:
		return Spotify(env.now), true
	default:
		return nil, false
	}
}

func bodyStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(max(width, 1)).Foreground(theme.WindowFg())
}

func heading(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.WindowFg()).Render(s)
}

func dim(s string) string {
	return lipgloss.NewStyle().Foreground(theme.TaskbarDimmed()).Render(s)
}

// button renders a clickable label.
func button(label string) string {
	return lipgloss.NewStyle().
		Foreground(theme.WindowBg()).
		Background(theme.BorderFocused()).
		Render("[" + label + "]")
}
