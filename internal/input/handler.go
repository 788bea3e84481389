package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/14ROVI/copland/internal/app"
)

// HandleInput routes keyboard and mouse messages. Register it with
// app.SetInputHandler.
func HandleInput(msg tea.Msg, d *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return d, HandleKey(msg, d)
	case tea.MouseClickMsg:
		return d, handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		handleMouseMotion(msg, d)
		return d, nil
	case tea.MouseReleaseMsg:
		handleMouseRelease(msg, d)
		return d, nil
	case tea.MouseWheelMsg:
		handleMouseWheel(msg, d)
		return d, nil
	}
	return d, nil
}
