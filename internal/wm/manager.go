package wm

import (
	"errors"
	"slices"
)

// ErrNotFound is returned by accessors when a window id is not registered.
var ErrNotFound = errors.New("wm: window not found")

// NotePersister receives fire-and-forget requests for persisted windows.
// Implementations must not block the caller.
type NotePersister interface {
	SaveNote(w *Window)
	DeleteNote(note int)
}

type noopPersister struct{}

func (noopPersister) SaveNote(*Window) {}
func (noopPersister) DeleteNote(int)   {}

// Options configures a Manager.
type Options struct {
	TaskbarOrder TaskbarOrder
	Persister    NotePersister
}

// Manager is the window registry together with the focus and z-order
// allocator. Commands referencing unknown ids are no-ops.
type Manager struct {
	registry  *Registry
	persister NotePersister
	maxZ      uint32
	focused   WindowID
}

// NewManager returns a manager with no windows.
func NewManager(opts Options) *Manager {
	p := opts.Persister
	if p == nil {
		p = noopPersister{}
	}
	return &Manager{
		registry:  NewRegistry(opts.TaskbarOrder),
		persister: p,
	}
}

// SetPersister replaces the note persister.
func (m *Manager) SetPersister(p NotePersister) {
	if p == nil {
		p = noopPersister{}
	}
	m.persister = p
}

// Open registers w and focuses it. If a window with the same id is
// already registered the new payload is discarded and the existing
// window is focused instead.
func (m *Manager) Open(w *Window) bool {
	if w == nil {
		return false
	}
	m.registry.Insert(w)
	return m.Focus(w.ID)
}

// Close applies the window's close policy. Closing a sticky note also
// asks the persister to delete it.
func (m *Manager) Close(id WindowID) bool {
	w := m.registry.Get(id)
	if w == nil {
		return false
	}
	switch w.Close {
	case CloseInvalid:
		return false
	case CloseRemove:
		m.registry.Remove(id)
	case CloseHide:
		w.State = Hidden
	}
	if note, ok := id.Note(); ok {
		m.persister.DeleteNote(note)
	}
	return true
}

// Minimise hides a visible window, remembering whether it was maximised.
func (m *Manager) Minimise(id WindowID) bool {
	w := m.registry.Get(id)
	if w == nil || !w.State.Visible() {
		return false
	}
	w.State = Minimised(w.State.Kind == StateMaximised)
	return true
}

// Maximise makes an open or minimised window fill the desktop.
func (m *Manager) Maximise(id WindowID) bool {
	w := m.registry.Get(id)
	if w == nil || w.State.Kind == StateHidden || w.State.Kind == StateMaximised {
		return false
	}
	w.State = Maximised
	return true
}

// Restore returns a maximised window to its normal geometry.
func (m *Manager) Restore(id WindowID) bool {
	w := m.registry.Get(id)
	if w == nil || w.State.Kind != StateMaximised {
		return false
	}
	w.State = Open
	return true
}

// Resize sets the fixed height of a window. A height of zero sizes the
// window to its content again.
func (m *Manager) Resize(id WindowID, height int) bool {
	w := m.registry.Get(id)
	if w == nil || height < 0 || w.Height == height {
		return false
	}
	w.Height = height
	return true
}

// Focus raises the window above every other window and makes it the
// active one. Focusing a minimised or hidden window restores it to the
// state it is displayed in. Focus always reports a change so callers
// redraw even when the id is unknown.
func (m *Manager) Focus(id WindowID) bool {
	w := m.registry.Get(id)
	if w == nil {
		return true
	}
	w.State = w.State.Displayed()
	m.focused = id
	m.maxZ++
	w.Z = m.maxZ
	return true
}

// Focused returns the id of the focused window.
func (m *Manager) Focused() WindowID {
	return m.focused
}

// MaxZ returns the last allocated z value.
func (m *Manager) MaxZ() uint32 {
	return m.maxZ
}

// IsActive reports whether the window is drawn as the active window:
// it is the focused window and is currently visible.
func (m *Manager) IsActive(id WindowID) bool {
	w := m.registry.Get(id)
	return w != nil && w.State.Visible() && m.focused == id
}

// TaskbarClick minimises the active window or focuses any other one.
func (m *Manager) TaskbarClick(id WindowID) bool {
	if m.IsActive(id) {
		return m.Minimise(id)
	}
	return m.Focus(id)
}

// Get returns the window with the given id.
func (m *Manager) Get(id WindowID) (*Window, error) {
	w := m.registry.Get(id)
	if w == nil {
		return nil, ErrNotFound
	}
	return w, nil
}

// Lookup returns the window with the given id, or nil.
func (m *Manager) Lookup(id WindowID) *Window {
	return m.registry.Get(id)
}

// Len returns the number of registered windows, hidden ones included.
func (m *Manager) Len() int {
	return m.registry.Len()
}

// Values returns every window in insertion order.
func (m *Manager) Values() []*Window {
	return m.registry.Values()
}

// Visible returns the visible windows in paint order, lowest z first.
func (m *Manager) Visible() []*Window {
	var out []*Window
	for _, w := range m.registry.Values() {
		if w.State.Visible() {
			out = append(out, w)
		}
	}
	slices.SortStableFunc(out, func(a, b *Window) int {
		switch {
		case a.Z < b.Z:
			return -1
		case a.Z > b.Z:
			return 1
		default:
			return 0
		}
	})
	return out
}

// TaskbarEntry is one button on the taskbar.
type TaskbarEntry struct {
	ID     WindowID
	Icon   string
	Title  string
	Active bool
}

// Taskbar returns an entry for every window that is not hidden.
func (m *Manager) Taskbar() []TaskbarEntry {
	var out []TaskbarEntry
	for _, w := range m.registry.TaskbarValues() {
		if w.State.Kind == StateHidden {
			continue
		}
		out = append(out, TaskbarEntry{
			ID:     w.ID,
			Icon:   w.Icon,
			Title:  w.Title,
			Active: m.IsActive(w.ID),
		})
	}
	return out
}

// Cycle focuses the next (or previous) visible window in insertion order,
// wrapping around. It is a no-op when no window is visible.
func (m *Manager) Cycle(forward bool) bool {
	var visible []WindowID
	for _, w := range m.registry.Values() {
		if w.State.Visible() {
			visible = append(visible, w.ID)
		}
	}
	if len(visible) == 0 {
		return false
	}
	pos := slices.Index(visible, m.focused)
	switch {
	case pos < 0:
		pos = 0
	case forward:
		pos = (pos + 1) % len(visible)
	default:
		pos = (pos - 1 + len(visible)) % len(visible)
	}
	return m.Focus(visible[pos])
}
