package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/14ROVI/copland/internal/app"
	"github.com/14ROVI/copland/internal/content"
	"github.com/14ROVI/copland/internal/wm"
)

// HandleKey runs bound actions first, then offers the key to the
// focused window's content. A bare q quits when nothing consumed it.
func HandleKey(msg tea.KeyPressMsg, d *app.Desktop) tea.Cmd {
	key := msg.String()

	if d.ShowHelp && key == "esc" {
		d.ShowHelp = false
		return nil
	}

	if d.ShowLogs {
		switch key {
		case "up", "k":
			d.ScrollLogs(1)
			return nil
		case "down", "j":
			d.ScrollLogs(-1)
			return nil
		case "esc":
			d.ShowLogs = false
			return nil
		}
	}

	if action := d.Keybinds.GetAction(key); action != "" {
		return runAction(action, d)
	}

	if w := d.Manager.Lookup(d.Manager.Focused()); w != nil && w.State.Visible() {
		if h, ok := w.Body.(content.KeyHandler); ok {
			cmds, consumed := h.HandleKey(content.Key{String: key, Text: msg.Text})
			if consumed {
				return d.Dispatch(cmds...)
			}
		}
	}

	if key == "q" {
		return quit(d)
	}
	return nil
}

func runAction(action string, d *app.Desktop) tea.Cmd {
	focused := d.Manager.Focused()
	switch action {
	case "new_note":
		return d.Dispatch(wm.NewStickyCmd{})
	case "close_window":
		return d.Dispatch(wm.CloseCmd{ID: focused})
	case "minimise_window":
		return d.Dispatch(wm.MinimiseCmd{ID: focused})
	case "maximise_window":
		if w := d.Manager.Lookup(focused); w != nil && w.State.Kind == wm.StateMaximised {
			return d.Dispatch(wm.RestoreCmd{ID: focused})
		}
		return d.Dispatch(wm.MaximiseCmd{ID: focused})
	case "next_window":
		d.Manager.Cycle(true)
	case "prev_window":
		d.Manager.Cycle(false)
	case "open_home":
		return d.Dispatch(wm.OpenCmd{Kind: wm.KindHome})
	case "toggle_logs":
		d.ShowLogs = !d.ShowLogs
		d.LogScrollOffset = 0
	case "toggle_help":
		d.ShowHelp = !d.ShowHelp
	case "quit":
		return quit(d)
	default:
		d.LogWarn("unknown action %q", action)
	}
	return nil
}

func quit(d *app.Desktop) tea.Cmd {
	d.LogInfo("quitting")
	d.Cleanup()
	return tea.Quit
}
