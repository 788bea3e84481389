package wm

import "testing"

func TestReconcileScenario(t *testing.T) {
	m := NewManager(Options{})
	w := testWindow(AboutMeID, CloseRemove)
	w.Width = 300
	w.Left = Close(900)
	w.Top = Close(700)
	m.Open(w)

	layout := newFakeLayout(400, 300)
	layout.boxes[AboutMeID] = Rect{X: 900, Y: 700, Width: 300, Height: 100}

	if !m.Reconcile(layout, SkipMissing) {
		t.Fatal("Reconcile reported no change")
	}
	if w.Left != Close(100) || w.Top != Close(200) {
		t.Errorf("position = (%s, %s), want (Close(100), Close(200))", w.Left, w.Top)
	}
}

func TestReconcilePinsOversizedWindows(t *testing.T) {
	m := NewManager(Options{})
	w := testWindow(ProjectsID, CloseRemove)
	w.Width = 120
	w.Left = Close(15)
	w.Top = Close(9)
	m.Open(w)

	layout := newFakeLayout(80, 20)
	layout.boxes[ProjectsID] = Rect{X: 15, Y: 9, Width: 120, Height: 30}

	m.Reconcile(layout, SkipMissing)

	if w.Left != Close(0) || w.Top != Close(0) {
		t.Errorf("position = (%s, %s), want (Close(0), Close(0))", w.Left, w.Top)
	}
}

func TestReconcileLeavesUntouchableWindows(t *testing.T) {
	tests := []struct {
		name  string
		state State
		left  Position
		top   Position
	}{
		{name: "maximised", state: Maximised, left: Close(500), top: Close(500)},
		{name: "minimised", state: Minimised(false), left: Close(500), top: Close(500)},
		{name: "hidden", state: Hidden, left: Close(500), top: Close(500)},
		{name: "symbolic", state: Open, left: Half(), top: Far()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(Options{})
			w := testWindow(FilmsID, CloseRemove)
			m.Open(w)
			w.State, w.Left, w.Top = tt.state, tt.left, tt.top

			layout := newFakeLayout(50, 20)
			layout.boxes[FilmsID] = Rect{Width: 30, Height: 10}

			if m.Reconcile(layout, SkipMissing) {
				t.Error("Reconcile reported a change")
			}
			if w.Left != tt.left || w.Top != tt.top {
				t.Errorf("position = (%s, %s), want (%s, %s)", w.Left, w.Top, tt.left, tt.top)
			}
		})
	}
}

func TestReconcileMissingBox(t *testing.T) {
	setup := func() (*Manager, *fakeLayout) {
		m := NewManager(Options{})
		for _, id := range []WindowID{AboutMeID, FilmsID} {
			w := testWindow(id, CloseRemove)
			w.Left = Close(90)
			m.Open(w)
		}
		layout := newFakeLayout(50, 20)
		layout.boxes[FilmsID] = Rect{X: 90, Width: 30, Height: 5}
		return m, layout
	}

	t.Run("skip", func(t *testing.T) {
		m, layout := setup()
		m.Reconcile(layout, SkipMissing)
		if got := m.Lookup(FilmsID).Left; got != Close(20) {
			t.Errorf("Films left = %s, want Close(20)", got)
		}
		if got := m.Lookup(AboutMeID).Left; got != Close(90) {
			t.Errorf("AboutMe left = %s, want Close(90)", got)
		}
	})

	t.Run("abort", func(t *testing.T) {
		m, layout := setup()
		if m.Reconcile(layout, AbortOnMissing) {
			t.Error("aborted pass reported a change")
		}
		if got := m.Lookup(FilmsID).Left; got != Close(90) {
			t.Errorf("Films left = %s, want Close(90)", got)
		}
	})
}
