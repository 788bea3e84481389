package wm

import (
	"errors"
	"testing"
)

func TestFocusGivesHighestZ(t *testing.T) {
	m := NewManager(Options{})
	ids := []WindowID{HomeID, AboutMeID, SpotifyID, StickyNoteID(3)}
	for _, id := range ids {
		m.Open(testWindow(id, CloseRemove))
	}

	sequence := []WindowID{AboutMeID, HomeID, StickyNoteID(3), HomeID, SpotifyID, AboutMeID}
	for step, id := range sequence {
		m.Focus(id)
		focused := m.Lookup(id)
		for _, w := range m.Values() {
			if w.ID != id && w.Z >= focused.Z {
				t.Fatalf("step %d: %s has z=%d, not below focused %s z=%d", step, w.ID, w.Z, id, focused.Z)
			}
		}
		if m.Focused() != id {
			t.Errorf("step %d: Focused() = %s, want %s", step, m.Focused(), id)
		}
	}
}

func TestFocusScenario(t *testing.T) {
	m := NewManager(Options{})
	a := testWindow(AboutMeID, CloseRemove)
	b := testWindow(ProjectsID, CloseRemove)
	m.Open(a)
	m.Open(b)

	if a.Z != 1 || b.Z != 2 {
		t.Fatalf("initial z = (%d, %d), want (1, 2)", a.Z, b.Z)
	}

	m.Focus(a.ID)

	if a.Z != 3 {
		t.Errorf("a.Z = %d, want 3", a.Z)
	}
	if m.Focused() != a.ID {
		t.Errorf("Focused() = %s, want %s", m.Focused(), a.ID)
	}
	for _, e := range m.Taskbar() {
		want := e.ID == a.ID
		if e.Active != want {
			t.Errorf("taskbar %s active = %v, want %v", e.ID, e.Active, want)
		}
	}
}

func TestFocusMissingWindowStillReportsChange(t *testing.T) {
	m := NewManager(Options{})
	m.Open(testWindow(HomeID, CloseInvalid))
	before := m.MaxZ()

	if !m.Focus(FilmsID) {
		t.Error("Focus on missing id should report a change")
	}
	if m.MaxZ() != before {
		t.Errorf("MaxZ changed from %d to %d", before, m.MaxZ())
	}
	if m.Focused() != HomeID {
		t.Errorf("Focused() = %s, want Home", m.Focused())
	}
}

func TestOpenExistingFocusesInsteadOfDuplicating(t *testing.T) {
	m := NewManager(Options{})
	first := testWindow(AboutMeID, CloseRemove)
	first.Title = "original"
	m.Open(first)
	m.Open(testWindow(HomeID, CloseInvalid))

	second := testWindow(AboutMeID, CloseRemove)
	second.Title = "replacement"
	m.Open(second)

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	w, err := m.Get(AboutMeID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if w.Title != "original" {
		t.Errorf("Title = %q, want the original payload", w.Title)
	}
	if m.Focused() != AboutMeID {
		t.Errorf("Focused() = %s, want AboutMe", m.Focused())
	}
}

func TestClosePolicies(t *testing.T) {
	tests := []struct {
		name      string
		policy    ClosePolicy
		wantLen   int
		wantState State
	}{
		{name: "invalid never closes", policy: CloseInvalid, wantLen: 1, wantState: Open},
		{name: "close removes", policy: CloseRemove, wantLen: 0},
		{name: "hide keeps record", policy: CloseHide, wantLen: 1, wantState: Hidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(Options{})
			m.Open(testWindow(SpotifyID, tt.policy))

			for range 3 {
				m.Close(SpotifyID)
			}

			if m.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", m.Len(), tt.wantLen)
			}
			if tt.wantLen == 0 {
				if _, err := m.Get(SpotifyID); !errors.Is(err, ErrNotFound) {
					t.Errorf("Get err = %v, want ErrNotFound", err)
				}
				return
			}
			if got := m.Lookup(SpotifyID).State; got != tt.wantState {
				t.Errorf("State = %s, want %s", got, tt.wantState)
			}
		})
	}
}

func TestHiddenWindowReopens(t *testing.T) {
	m := NewManager(Options{})
	m.Open(testWindow(HomeID, CloseInvalid))
	m.Open(testWindow(SpotifyID, CloseHide))
	m.Close(SpotifyID)

	for _, e := range m.Taskbar() {
		if e.ID == SpotifyID {
			t.Fatal("hidden window should not appear in the taskbar")
		}
	}

	m.Open(testWindow(SpotifyID, CloseHide))

	w := m.Lookup(SpotifyID)
	if w.State != Open {
		t.Errorf("State = %s, want Open", w.State)
	}
	if m.Focused() != SpotifyID {
		t.Errorf("Focused() = %s, want Spotify", m.Focused())
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestCloseStickyNoteDeletesIt(t *testing.T) {
	p := &fakePersister{}
	m := NewManager(Options{Persister: p})
	m.Open(testWindow(StickyNoteID(9), CloseRemove))

	m.Close(StickyNoteID(9))
	m.Close(StickyNoteID(9))

	if len(p.deleted) != 1 || p.deleted[0] != 9 {
		t.Errorf("deleted = %v, want [9]", p.deleted)
	}
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		name  string
		start State
		ops   []func(*Manager, WindowID) bool
		want  State
	}{
		{
			name:  "open minimise",
			start: Open,
			ops:   []func(*Manager, WindowID) bool{(*Manager).Minimise},
			want:  Minimised(false),
		},
		{
			name:  "maximised minimise",
			start: Maximised,
			ops:   []func(*Manager, WindowID) bool{(*Manager).Minimise},
			want:  Minimised(true),
		},
		{
			name:  "maximised minimise focus restores maximised",
			start: Maximised,
			ops:   []func(*Manager, WindowID) bool{(*Manager).Minimise, (*Manager).Focus},
			want:  Maximised,
		},
		{
			name:  "open minimise focus restores open",
			start: Open,
			ops:   []func(*Manager, WindowID) bool{(*Manager).Minimise, (*Manager).Focus},
			want:  Open,
		},
		{
			name:  "minimised maximise",
			start: Minimised(false),
			ops:   []func(*Manager, WindowID) bool{(*Manager).Maximise},
			want:  Maximised,
		},
		{
			name:  "maximised restore",
			start: Maximised,
			ops:   []func(*Manager, WindowID) bool{(*Manager).Restore},
			want:  Open,
		},
		{
			name:  "restore open is a no-op",
			start: Open,
			ops:   []func(*Manager, WindowID) bool{(*Manager).Restore},
			want:  Open,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(Options{})
			w := testWindow(ProjectsID, CloseRemove)
			m.Open(w)
			w.State = tt.start

			for _, op := range tt.ops {
				op(m, ProjectsID)
			}

			if w.State != tt.want {
				t.Errorf("State = %s, want %s", w.State, tt.want)
			}
		})
	}
}

func TestCommandsOnMissingWindowAreNoOps(t *testing.T) {
	m := NewManager(Options{})
	cmds := []Command{
		CloseCmd{ID: FilmsID},
		MinimiseCmd{ID: FilmsID},
		MaximiseCmd{ID: FilmsID},
		RestoreCmd{ID: FilmsID},
		ResizeCmd{ID: FilmsID, Height: 10},
	}
	for _, cmd := range cmds {
		changed, handled := m.Apply(cmd)
		if !handled {
			t.Errorf("%T not handled", cmd)
		}
		if changed {
			t.Errorf("%T on missing window reported a change", cmd)
		}
	}
	if _, handled := m.Apply(NewStickyCmd{}); handled {
		t.Error("NewStickyCmd should be left to the dispatcher")
	}
}

func TestTaskbarClickToggles(t *testing.T) {
	m := NewManager(Options{})
	m.Open(testWindow(HomeID, CloseInvalid))
	m.Open(testWindow(AboutMeID, CloseRemove))

	m.TaskbarClick(AboutMeID)
	if got := m.Lookup(AboutMeID).State; got != Minimised(false) {
		t.Fatalf("clicking the active entry: State = %s, want Minimised(false)", got)
	}

	m.TaskbarClick(AboutMeID)
	if got := m.Lookup(AboutMeID).State; got != Open {
		t.Errorf("clicking a minimised entry: State = %s, want Open", got)
	}
	if !m.IsActive(AboutMeID) {
		t.Error("AboutMe should be active after the second click")
	}
}

func TestTaskbarOrder(t *testing.T) {
	tests := []struct {
		name  string
		order TaskbarOrder
		want  []WindowID
	}{
		{
			name:  "insertion",
			order: TaskbarInsertion,
			want:  []WindowID{StickyNoteID(2), FilmsID, HomeID, StickyNoteID(1)},
		},
		{
			name:  "by kind",
			order: TaskbarByKind,
			want:  []WindowID{HomeID, FilmsID, StickyNoteID(1), StickyNoteID(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(Options{TaskbarOrder: tt.order})
			for _, id := range []WindowID{StickyNoteID(2), FilmsID, HomeID, StickyNoteID(1)} {
				m.Open(testWindow(id, CloseRemove))
			}
			// Focus must not reshuffle the taskbar.
			m.Focus(StickyNoteID(2))

			entries := m.Taskbar()
			if len(entries) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.want))
			}
			for i, e := range entries {
				if e.ID != tt.want[i] {
					t.Errorf("entry %d = %s, want %s", i, e.ID, tt.want[i])
				}
			}
		})
	}
}

func TestVisiblePaintOrder(t *testing.T) {
	m := NewManager(Options{})
	m.Open(testWindow(HomeID, CloseInvalid))
	m.Open(testWindow(AboutMeID, CloseRemove))
	m.Open(testWindow(ProjectsID, CloseRemove))
	m.Minimise(AboutMeID)
	m.Focus(HomeID)

	got := m.Visible()
	if len(got) != 2 {
		t.Fatalf("Visible() returned %d windows, want 2", len(got))
	}
	if got[0].ID != ProjectsID || got[1].ID != HomeID {
		t.Errorf("paint order = [%s %s], want [Projects Home]", got[0].ID, got[1].ID)
	}
}

func TestCycle(t *testing.T) {
	m := NewManager(Options{})
	m.Open(testWindow(HomeID, CloseInvalid))
	m.Open(testWindow(AboutMeID, CloseRemove))
	m.Open(testWindow(FilmsID, CloseRemove))
	m.Minimise(AboutMeID)

	m.Cycle(true)
	if m.Focused() != HomeID {
		t.Errorf("after forward cycle Focused() = %s, want Home", m.Focused())
	}
	m.Cycle(false)
	if m.Focused() != FilmsID {
		t.Errorf("after backward cycle Focused() = %s, want Films", m.Focused())
	}
}
