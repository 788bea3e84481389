package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/14ROVI/copland/internal/app"
	"github.com/14ROVI/copland/internal/content"
	"github.com/14ROVI/copland/internal/wm"
)

// handleMouseClick focuses whatever window was pressed, then acts on
// the part of it under the pointer.
func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	x, y := mouse.X, mouse.Y

	hit := d.HitTest(x, y)
	switch hit.Target {
	case app.HitDesktop:
		return nil
	case app.HitTaskbar:
		if hit.Entry.NewNote() {
			return d.Dispatch(wm.NewStickyCmd{})
		}
		if id, ok := hit.Entry.WindowID(); ok {
			d.Manager.TaskbarClick(id)
		}
		return nil
	}

	d.Manager.Focus(hit.ID)

	switch hit.Target {
	case app.HitControl:
		return d.Dispatch(hit.Control.Command(hit.ID))
	case app.HitTitleBar, app.HitFrame:
		// Any border cell starts a drag, not only the title bar.
		d.Drag.Start(hit.ID, x, y, false)
	case app.HitBody:
		w := d.Manager.Lookup(hit.ID)
		if w == nil {
			return nil
		}
		if h, ok := w.Body.(content.ClickHandler); ok {
			return d.Dispatch(h.HandleClick(hit.BodyX, hit.BodyY)...)
		}
	}
	return nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) {
	mouse := msg.Mouse()
	d.Pointer.Dispatch(wm.PointerEvent{Kind: wm.MouseMove, X: mouse.X, Y: mouse.Y})
}

func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Desktop) {
	mouse := msg.Mouse()
	d.Pointer.Dispatch(wm.PointerEvent{Kind: wm.MouseUp, X: mouse.X, Y: mouse.Y})
}

func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Desktop) {
	if !d.ShowLogs {
		return
	}
	switch msg.Mouse().Button {
	case tea.MouseWheelUp:
		d.ScrollLogs(1)
	case tea.MouseWheelDown:
		d.ScrollLogs(-1)
	}
}
