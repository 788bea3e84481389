package wm

import "slices"

// TaskbarOrder selects how taskbar entries are ordered.
type TaskbarOrder int

const (
	// TaskbarInsertion lists windows in the order they were opened.
	TaskbarInsertion TaskbarOrder = iota
	// TaskbarByKind lists windows in WindowID order.
	TaskbarByKind
)

// Registry is the ordered collection of live windows. It keeps the
// insertion order and a separate taskbar order, neither of which is
// affected by focus.
type Registry struct {
	windows map[WindowID]*Window
	order   []WindowID
	taskbar []WindowID
	sort    TaskbarOrder
}

// NewRegistry returns an empty registry.
func NewRegistry(order TaskbarOrder) *Registry {
	return &Registry{
		windows: make(map[WindowID]*Window),
		sort:    order,
	}
}

// Insert adds w unless its id is already present. It reports whether
// the window was inserted.
func (r *Registry) Insert(w *Window) bool {
	if _, exists := r.windows[w.ID]; exists {
		return false
	}
	r.windows[w.ID] = w
	r.order = append(r.order, w.ID)

	if r.sort == TaskbarByKind {
		i, _ := slices.BinarySearchFunc(r.taskbar, w.ID, WindowID.Compare)
		r.taskbar = slices.Insert(r.taskbar, i, w.ID)
	} else {
		r.taskbar = append(r.taskbar, w.ID)
	}
	return true
}

// Remove deletes the window with the given id.
func (r *Registry) Remove(id WindowID) bool {
	if _, exists := r.windows[id]; !exists {
		return false
	}
	delete(r.windows, id)
	r.order = slices.DeleteFunc(r.order, func(o WindowID) bool { return o == id })
	r.taskbar = slices.DeleteFunc(r.taskbar, func(o WindowID) bool { return o == id })
	return true
}

// Get returns the window with the given id, or nil.
func (r *Registry) Get(id WindowID) *Window {
	return r.windows[id]
}

// Len returns the number of windows.
func (r *Registry) Len() int {
	return len(r.windows)
}

// Values returns all windows in insertion order.
func (r *Registry) Values() []*Window {
	out := make([]*Window, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.windows[id])
	}
	return out
}

// TaskbarValues returns all windows in taskbar order.
func (r *Registry) TaskbarValues() []*Window {
	out := make([]*Window, 0, len(r.taskbar))
	for _, id := range r.taskbar {
		out = append(out, r.windows[id])
	}
	return out
}
