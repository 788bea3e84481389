package app

import (
	"charm.land/lipgloss/v2"

	"github.com/14ROVI/copland/internal/content"
	"github.com/14ROVI/copland/internal/wm"
)

// layout is the table of boxes the renderer last produced. It is what
// the drag controller and viewport reconciliation read positions from.
type layout struct {
	width, height int
	sized         bool
	boxes         map[wm.WindowID]wm.Rect
	bodies        map[wm.WindowID]string
	taskbar       []TaskbarRegion
}

var _ wm.Layout = (*layout)(nil)

func newLayout() *layout {
	return &layout{
		boxes:  make(map[wm.WindowID]wm.Rect),
		bodies: make(map[wm.WindowID]string),
	}
}

func (l *layout) Viewport() (int, int, bool) {
	return l.width, l.height, l.sized
}

func (l *layout) Box(id wm.WindowID) (wm.Rect, bool) {
	r, ok := l.boxes[id]
	return r, ok
}

// refreshLayout measures every visible window against the current
// viewport. Bodies are rendered once here and reused by View.
func (d *Desktop) refreshLayout() {
	l := d.layout
	l.width, l.height = d.Width, d.DesktopHeight()
	l.sized = d.Width > 0 && d.Height > 0
	clear(l.boxes)
	clear(l.bodies)
	if !l.sized {
		return
	}

	for _, w := range d.Manager.Visible() {
		if w.State.Kind == wm.StateMaximised {
			l.boxes[w.ID] = wm.Rect{Width: l.width, Height: l.height}
			l.bodies[w.ID] = w.Body.View(max(l.width-content.ChromeCols, 1))
			continue
		}

		width := min(w.Width, l.width)
		body := w.Body.View(max(width-content.ChromeCols, 1))
		height := w.Height
		if height <= 0 {
			height = lipgloss.Height(body) + content.ChromeRows
		}
		l.bodies[w.ID] = body
		l.boxes[w.ID] = wm.Rect{
			X:      max(w.Left.Resolve(l.width, width), 0),
			Y:      max(w.Top.Resolve(l.height, height), 0),
			Width:  width,
			Height: height,
		}
	}
}

// HitTarget says what part of the screen a pointer landed on.
type HitTarget int

const (
	HitDesktop HitTarget = iota
	HitTitleBar
	HitControl
	HitBody
	HitFrame
	HitTaskbar
)

// Hit is the result of a hit test. For HitBody, BodyX and BodyY are
// relative to the body's top-left cell.
type Hit struct {
	Target  HitTarget
	ID      wm.WindowID
	Control Control
	Entry   TaskbarRegion
	BodyX   int
	BodyY   int
}

// HitTest finds what is under (x, y), top-most window first.
func (d *Desktop) HitTest(x, y int) Hit {
	if y >= d.DesktopHeight() {
		for _, r := range d.layout.taskbar {
			if x >= r.x && x < r.x+r.width {
				return Hit{Target: HitTaskbar, Entry: r}
			}
		}
		return Hit{Target: HitTaskbar}
	}

	visible := d.Manager.Visible()
	for i := len(visible) - 1; i >= 0; i-- {
		w := visible[i]
		box, ok := d.layout.Box(w.ID)
		if !ok || !box.Contains(x, y) {
			continue
		}
		hit := Hit{ID: w.ID}
		switch {
		case y == box.Y+1 && x > box.X && x < box.X+box.Width-1:
			if c, ok := controlAt(w, box.Width, x-box.X-1); ok {
				hit.Target = HitControl
				hit.Control = c
			} else {
				hit.Target = HitTitleBar
			}
		case y > box.Y+1 && y < box.Y+box.Height-1 && x > box.X && x < box.X+box.Width-1:
			hit.Target = HitBody
			hit.BodyX = x - box.X - 1
			hit.BodyY = y - box.Y - 2
		default:
			hit.Target = HitFrame
		}
		return hit
	}
	return Hit{Target: HitDesktop}
}
