package app

import (
	"strings"

	"github.com/14ROVI/copland/internal/wm"
)

// Control is a title-bar button.
type Control int

const (
	ControlMinimise Control = iota
	ControlMaximise
	ControlRestore
	ControlClose
)

func (c Control) glyph() string {
	switch c {
	case ControlMinimise:
		return "_"
	case ControlMaximise:
		return "□"
	case ControlRestore:
		return "❐"
	default:
		return "×"
	}
}

// Command is what pressing the control asks for.
func (c Control) Command(id wm.WindowID) wm.Command {
	switch c {
	case ControlMinimise:
		return wm.MinimiseCmd{ID: id}
	case ControlMaximise:
		return wm.MaximiseCmd{ID: id}
	case ControlRestore:
		return wm.RestoreCmd{ID: id}
	default:
		return wm.CloseCmd{ID: id}
	}
}

// controlsFor lists the buttons a window shows. Windows that cannot be
// closed have no close button.
func controlsFor(w *wm.Window) []Control {
	out := []Control{ControlMinimise, ControlMaximise}
	if w.State.Kind == wm.StateMaximised {
		out[1] = ControlRestore
	}
	if w.Close != wm.CloseInvalid {
		out = append(out, ControlClose)
	}
	return out
}

// controlsText renders the buttons, each followed by a space.
func controlsText(cs []Control) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.glyph())
		b.WriteByte(' ')
	}
	return b.String()
}

// controlAt maps a column inside the title bar to a control. The
// buttons are right-aligned in the bar.
func controlAt(w *wm.Window, boxWidth, x int) (Control, bool) {
	cs := controlsFor(w)
	start := boxWidth - 2 - 2*len(cs)
	if x < start || (x-start)%2 != 0 {
		return 0, false
	}
	i := (x - start) / 2
	if i >= len(cs) {
		return 0, false
	}
	return cs[i], true
}
