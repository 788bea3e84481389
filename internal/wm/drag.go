package wm

// PointerKind is a pointer event channel a drag session listens on.
type PointerKind int

const (
	MouseMove PointerKind = iota
	MouseUp
	TouchMove
	TouchUp
)

var dragChannels = [...]PointerKind{MouseMove, MouseUp, TouchMove, TouchUp}

// PointerEvent is a pointer position in desktop cells.
type PointerEvent struct {
	Kind PointerKind
	X    int
	Y    int
}

// PointerSource delivers pointer events to subscribers. The returned
// function detaches the subscription.
type PointerSource interface {
	Subscribe(kind PointerKind, fn func(PointerEvent)) (release func())
}

// Layout reports what the renderer last drew.
type Layout interface {
	// Viewport is the size of the desktop area windows live in.
	Viewport() (width, height int, ok bool)
	// Box is the rendered box of a window. ok is false when the window
	// has not been drawn yet.
	Box(id WindowID) (Rect, bool)
}

// Session is one drag gesture. It holds the four pointer subscriptions
// and releases them exactly once.
type Session struct {
	Window  WindowID
	offsetX int
	offsetY int
	moved   bool
	release []func()
}

// Moved reports whether any move was applied during the session.
func (s *Session) Moved() bool { return s.moved }

// Close detaches every subscription. It is safe to call repeatedly.
func (s *Session) Close() {
	release := s.release
	s.release = nil
	for _, fn := range release {
		fn()
	}
}

// Controller drives window dragging. It is Idle when Session returns nil.
type Controller struct {
	m       *Manager
	source  PointerSource
	layout  Layout
	session *Session
}

// NewController returns an idle drag controller.
func NewController(m *Manager, source PointerSource, layout Layout) *Controller {
	return &Controller{m: m, source: source, layout: layout}
}

// Session returns the active drag session, or nil when idle.
func (c *Controller) Session() *Session {
	return c.session
}

// Start begins dragging the window from the pointer position (x, y).
// onControl is true when the press landed on a title-bar button, in
// which case no drag starts. Maximised windows cannot be dragged.
func (c *Controller) Start(id WindowID, x, y int, onControl bool) bool {
	// A previous gesture that never saw its release ends here, saving a
	// moved sticky note like a normal release would.
	c.End()

	w := c.m.Lookup(id)
	if w == nil || w.State.Kind == StateMaximised || onControl {
		return false
	}
	box, ok := c.layout.Box(id)
	if !ok {
		return false
	}

	s := &Session{
		Window:  id,
		offsetX: box.X - x,
		offsetY: box.Y - y,
	}
	for _, kind := range dragChannels {
		var handler func(PointerEvent)
		if kind == MouseMove || kind == TouchMove {
			handler = func(e PointerEvent) { c.Move(e.X, e.Y) }
		} else {
			handler = func(PointerEvent) { c.End() }
		}
		s.release = append(s.release, c.source.Subscribe(kind, handler))
	}
	c.session = s
	return true
}

// Move places the dragged window under the pointer, clamped to the
// viewport. It reports whether the window moved.
func (c *Controller) Move(x, y int) bool {
	s := c.session
	if s == nil {
		return false
	}
	w := c.m.Lookup(s.Window)
	if w == nil || w.State.Kind != StateOpen {
		return false
	}
	box, ok := c.layout.Box(s.Window)
	if !ok {
		return false
	}
	vw, vh, ok := c.layout.Viewport()
	if !ok {
		return false
	}

	// The offset was taken from the rendered box, so symbolic anchors
	// become explicit offsets here.
	w.Left = Close(clampOffset(x+s.offsetX, vw-w.Width))
	w.Top = Close(clampOffset(y+s.offsetY, vh-box.Height))
	s.moved = true
	return true
}

// End finishes the active drag. A sticky note that moved is saved.
// End never changes focus or z-order.
func (c *Controller) End() bool {
	s := c.session
	if s == nil {
		return false
	}
	c.session = nil
	s.Close()

	if s.moved && s.Window.IsPersisted() {
		if w := c.m.Lookup(s.Window); w != nil {
			c.m.persister.SaveNote(w)
		}
	}
	s.moved = false
	return true
}
