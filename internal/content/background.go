package content

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/14ROVI/copland/internal/theme"
	"github.com/14ROVI/copland/internal/wm"
)

// BackgroundSelector steps through desktop backgrounds. It shows the
// live value of bg, so changes made elsewhere are reflected.
func BackgroundSelector(bg *theme.Background) *wm.Window {
	return &wm.Window{
		ID:    wm.BackgroundSelectorID,
		State: wm.Open,
		Close: wm.CloseRemove,
		Top:   wm.Close(0),
		Left:  wm.Close(0),
		Width: 32,
		Icon:  "▦",
		Title: "Select Background",
		Body:  &backgroundBody{bg: bg},
	}
}

type backgroundBody struct {
	bg          *theme.Background
	controlsRow int
}

func (b *backgroundBody) value() int {
	if b.bg == nil {
		return 1
	}
	return b.bg.Value()
}

func (b *backgroundBody) View(width int) string {
	n := b.value()
	label := fmt.Sprintf("Current background: %d", n)
	preview := theme.Backdrop(n, max(width, 1), 3)
	top := lipgloss.JoinVertical(lipgloss.Left, label, dim(theme.BackdropName(n)), preview)
	b.controlsRow = lipgloss.Height(top)
	return top + "\n" + button("<") + " " + button(">")
}

func (b *backgroundBody) HandleKey(k Key) ([]wm.Command, bool) {
	switch k.String {
	case "left", "h", "<":
		return []wm.Command{wm.BackgroundCmd{Delta: -1}}, true
	case "right", "l", ">":
		return []wm.Command{wm.BackgroundCmd{Delta: 1}}, true
	}
	return nil, false
}

func (b *backgroundBody) HandleClick(x, y int) []wm.Command {
	if y != b.controlsRow {
		return nil
	}
	prevW := lipgloss.Width(button("<"))
	switch {
	case x >= 0 && x < prevW:
		return []wm.Command{wm.BackgroundCmd{Delta: -1}}
	case x > prevW && x <= prevW+lipgloss.Width(button(">")):
		return []wm.Command{wm.BackgroundCmd{Delta: 1}}
	}
	return nil
}
