package content

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/14ROVI/copland/internal/wm"
)

type menuItem struct {
	label string
	kind  wm.Kind
}

var homeMenu = []menuItem{
	{"About me", wm.KindAboutMe},
	{"See what I'm listening to", wm.KindSpotify},
	{"Change the background?", wm.KindBackgroundSelector},
	{"My other projects..", wm.KindProjects},
	{"All my social links", wm.KindSocialLinks},
	{"Photos", wm.KindPhotoViewer},
	{"Films I've watched", wm.KindFilms},
}

// Home is the welcome window. It cannot be closed.
func Home() *wm.Window {
	return &wm.Window{
		ID:    wm.HomeID,
		State: wm.Open,
		Close: wm.CloseInvalid,
		Top:   wm.Half(),
		Left:  wm.Half(),
		Width: 46,
		Icon:  "⌂",
		Title: "Home",
		Body:  &homeBody{},
	}
}

type homeBody struct {
	menuTop int
}

func (h *homeBody) View(width int) string {
	intro := bodyStyle(width).Render(
		"In short this is a nice little display of what I can code. " +
			"It is written in Go and runs in your terminal.")

	var b strings.Builder
	b.WriteString(heading("Welcome"))
	b.WriteString("\n")
	b.WriteString(intro)
	b.WriteString("\n\n")
	b.WriteString("Check out other windows listed below:\n")
	h.menuTop = lipgloss.Height(b.String()) - 1

	for i, item := range homeMenu {
		fmt.Fprintf(&b, " %d. %s\n", i+1, item.label)
	}
	b.WriteString("\n")
	b.WriteString(dim("Created by Roan Vickerman"))
	return b.String()
}

func (h *homeBody) HandleKey(k Key) ([]wm.Command, bool) {
	if len(k.String) == 1 && k.String[0] >= '1' && k.String[0] <= '9' {
		if i := int(k.String[0] - '1'); i < len(homeMenu) {
			return []wm.Command{wm.OpenCmd{Kind: homeMenu[i].kind}}, true
		}
	}
	return nil, false
}

func (h *homeBody) HandleClick(_, y int) []wm.Command {
	i := y - h.menuTop
	if i < 0 || i >= len(homeMenu) {
		return nil
	}
	return []wm.Command{wm.OpenCmd{Kind: homeMenu[i].kind}}
}
