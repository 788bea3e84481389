package wm

// ReconcilePolicy decides what happens when a window has no rendered box.
type ReconcilePolicy int

const (
	// SkipMissing leaves undrawn windows alone and clamps the rest.
	SkipMissing ReconcilePolicy = iota
	// AbortOnMissing leaves every window untouched if any open window
	// with an explicit position has no rendered box.
	AbortOnMissing
)

// Reconcile clamps every open window with an explicit position back
// inside the viewport. Windows wider or taller than the viewport are
// pinned to the left or top edge. Symbolic positions, maximised,
// minimised and hidden windows are not touched. It reports whether any
// position changed.
func (m *Manager) Reconcile(layout Layout, policy ReconcilePolicy) bool {
	vw, vh, ok := layout.Viewport()
	if !ok {
		return false
	}

	type target struct {
		w   *Window
		box Rect
	}
	var targets []target
	for _, w := range m.registry.Values() {
		if w.State.Kind != StateOpen {
			continue
		}
		if !w.Left.IsExplicit() && !w.Top.IsExplicit() {
			continue
		}
		box, ok := layout.Box(w.ID)
		if !ok {
			if policy == AbortOnMissing {
				return false
			}
			continue
		}
		targets = append(targets, target{w: w, box: box})
	}

	changed := false
	for _, t := range targets {
		maxX := vw - t.w.Width
		maxY := vh - t.box.Height
		if t.w.Left.IsExplicit() {
			if x := clampOffset(t.w.Left.Offset, maxX); x != t.w.Left.Offset {
				t.w.Left = Close(x)
				changed = true
			}
		}
		if t.w.Top.IsExplicit() {
			if y := clampOffset(t.w.Top.Offset, maxY); y != t.w.Top.Offset {
				t.w.Top = Close(y)
				changed = true
			}
		}
	}
	return changed
}
