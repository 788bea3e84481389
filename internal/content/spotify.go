package content

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/14ROVI/copland/internal/nowplaying"
	"github.com/14ROVI/copland/internal/wm"
)

// Spotify shows what is currently playing. Closing it only hides it so
// the live feed keeps its state.
func Spotify(now func() time.Time) *wm.Window {
	if now == nil {
		now = time.Now
	}
	return &wm.Window{
		ID:    wm.SpotifyID,
		State: wm.Open,
		Close: wm.CloseHide,
		Top:   wm.Close(0),
		Left:  wm.Far(),
		Width: 40,
		Icon:  "♫",
		Title: "Spotify",
		Body:  &spotifyBody{now: now},
	}
}

type spotifyBody struct {
	status nowplaying.Status
	now    func() time.Time
}

func (s *spotifyBody) View(width int) string {
	if !s.status.Listening {
		return bodyStyle(width).Render(nowplaying.IdleText)
	}
	t := s.status.Track
	style := bodyStyle(width)
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(heading(t.Song)),
		style.Render("On "+t.Album),
		style.Render("By "+t.Artist),
		"Elapsed: "+nowplaying.FormatDuration(t.Elapsed(s.now()))+
			" / "+nowplaying.FormatDuration(t.Total()),
	)
}

func (s *spotifyBody) HandleMsg(msg any) bool {
	m, ok := msg.(NowPlayingMsg)
	if !ok {
		return false
	}
	s.status = m.Status
	return true
}
