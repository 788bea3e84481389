package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"

	"github.com/14ROVI/copland/internal/config"
	"github.com/14ROVI/copland/internal/content"
	"github.com/14ROVI/copland/internal/notes"
	"github.com/14ROVI/copland/internal/theme"
	"github.com/14ROVI/copland/internal/wm"
)

type memStore struct {
	mu      sync.Mutex
	next    int
	notes   map[int]notes.Note
	updates []notes.Note
	deleted []int
}

func newMemStore(seed ...notes.Note) *memStore {
	s := &memStore{notes: make(map[int]notes.Note)}
	for _, n := range seed {
		s.notes[n.ID] = n
		s.next = max(s.next, n.ID)
	}
	return s
}

func (s *memStore) List(context.Context) ([]notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notes.Note, 0, len(s.notes))
	for i := 1; i <= s.next; i++ {
		if n, ok := s.notes[i]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *memStore) Create(_ context.Context, text string, x, y int) (notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	n := notes.Note{ID: s.next, Content: text, X: x, Y: y}
	s.notes[n.ID] = n
	return n, nil
}

func (s *memStore) Update(_ context.Context, n notes.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[n.ID]; !ok {
		return notes.ErrNotFound
	}
	s.notes[n.ID] = n
	s.updates = append(s.updates, n)
	return nil
}

func (s *memStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notes, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type fakePointer struct {
	subs map[int]struct {
		kind wm.PointerKind
		fn   func(wm.PointerEvent)
	}
	next int
}

func newFakePointer() *fakePointer {
	return &fakePointer{subs: make(map[int]struct {
		kind wm.PointerKind
		fn   func(wm.PointerEvent)
	})}
}

func (p *fakePointer) Subscribe(kind wm.PointerKind, fn func(wm.PointerEvent)) func() {
	p.next++
	id := p.next
	p.subs[id] = struct {
		kind wm.PointerKind
		fn   func(wm.PointerEvent)
	}{kind, fn}
	return func() { delete(p.subs, id) }
}

func (p *fakePointer) Dispatch(e wm.PointerEvent) {
	var fns []func(wm.PointerEvent)
	for _, s := range p.subs {
		if s.kind == e.Kind {
			fns = append(fns, s.fn)
		}
	}
	for _, fn := range fns {
		fn(e)
	}
}

func newTestDesktop(t *testing.T, store notes.Store) *Desktop {
	t.Helper()
	d := New(Options{
		Notes:      store,
		Background: theme.NewBackground(3),
		Pointer:    newFakePointer(),
		Logger:     log.New(io.Discard),
		Now:        func() time.Time { return time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC) },
	})
	t.Cleanup(d.Cleanup)
	d.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return d
}

// run executes cmd and feeds the resulting message back into d.
func run(t *testing.T, d *Desktop, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		d.Update(msg)
	}
}

func TestNewDesktopFocusesHome(t *testing.T) {
	d := newTestDesktop(t, nil)

	if got := d.Manager.Focused(); got != wm.HomeID {
		t.Errorf("got focus %v, want Home", got)
	}
	if d.Manager.Len() != 1 {
		t.Errorf("got %d windows, want 1", d.Manager.Len())
	}
}

func TestNotesLoadedOpensReconcilesAndFocusesHome(t *testing.T) {
	store := newMemStore(
		notes.Note{ID: 1, Content: "a", X: 10, Y: 5},
		notes.Note{ID: 2, Content: "b", X: 500, Y: 500},
	)
	d := newTestDesktop(t, store)

	run(t, d, d.loadNotesCmd())

	if d.Manager.Len() != 3 {
		t.Fatalf("got %d windows, want 3", d.Manager.Len())
	}
	if got := d.Manager.Focused(); got != wm.HomeID {
		t.Errorf("got focus %v, want Home after load", got)
	}

	far := d.Manager.Lookup(wm.StickyNoteID(2))
	box, _ := d.layout.Box(far.ID)
	if want := wm.Close(120 - far.Width); far.Left != want {
		t.Errorf("got left %v, want %v", far.Left, want)
	}
	if want := wm.Close(d.DesktopHeight() - box.Height); far.Top != want {
		t.Errorf("got top %v, want %v", far.Top, want)
	}

	near := d.Manager.Lookup(wm.StickyNoteID(1))
	if near.Left != wm.Close(10) || near.Top != wm.Close(5) {
		t.Errorf("in-bounds note moved to (%v, %v)", near.Left, near.Top)
	}
}

func TestNewStickyNote(t *testing.T) {
	store := newMemStore()
	d := newTestDesktop(t, store)

	run(t, d, d.Dispatch(wm.NewStickyCmd{}))

	w := d.Manager.Lookup(wm.StickyNoteID(1))
	if w == nil {
		t.Fatal("sticky note window not opened")
	}
	if d.Manager.Focused() != w.ID {
		t.Errorf("new note should be focused")
	}
	if text, _ := content.NoteText(w); text != notes.DefaultContent {
		t.Errorf("got text %q, want %q", text, notes.DefaultContent)
	}
	if w.Left != wm.Close(notes.DefaultX) || w.Top != wm.Close(notes.DefaultY) {
		t.Errorf("got (%v, %v), want default position", w.Left, w.Top)
	}
}

func TestClosingStickyDeletesIt(t *testing.T) {
	store := newMemStore(notes.Note{ID: 4, Content: "bye"})
	d := newTestDesktop(t, store)
	run(t, d, d.loadNotesCmd())

	d.Dispatch(wm.CloseCmd{ID: wm.StickyNoteID(4)})
	pending := d.takePending()
	if len(pending) != 1 {
		t.Fatalf("got %d pending commands, want 1", len(pending))
	}
	run(t, d, pending[0])

	if d.Manager.Lookup(wm.StickyNoteID(4)) != nil {
		t.Error("window should be removed")
	}
	if len(store.deleted) != 1 || store.deleted[0] != 4 {
		t.Errorf("got deleted %v, want [4]", store.deleted)
	}
}

func TestSaveDebounce(t *testing.T) {
	store := newMemStore(notes.Note{ID: 1, Content: "x"})
	d := newTestDesktop(t, store)
	run(t, d, d.loadNotesCmd())
	id := wm.StickyNoteID(1)

	d.scheduleSave(id)
	d.scheduleSave(id)

	_, cmd := d.Update(saveNoteMsg{id: id, gen: 1})
	if cmd != nil {
		t.Error("stale save should be dropped")
	}
	_, cmd = d.Update(saveNoteMsg{id: id, gen: 2})
	run(t, d, cmd)

	if len(store.updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(store.updates))
	}
}

func TestDragSavesStickyPosition(t *testing.T) {
	store := newMemStore(notes.Note{ID: 1, Content: "drag me", X: 10, Y: 5})
	d := newTestDesktop(t, store)
	run(t, d, d.loadNotesCmd())
	d.Render()

	id := wm.StickyNoteID(1)
	box, ok := d.layout.Box(id)
	if !ok {
		t.Fatal("note not laid out")
	}
	if !d.Drag.Start(id, box.X+3, box.Y+1, false) {
		t.Fatal("drag did not start")
	}
	d.Pointer.Dispatch(wm.PointerEvent{Kind: wm.MouseMove, X: box.X + 13, Y: box.Y + 6})
	d.Pointer.Dispatch(wm.PointerEvent{Kind: wm.MouseUp, X: box.X + 13, Y: box.Y + 6})

	for _, cmd := range d.takePending() {
		run(t, d, cmd)
	}
	if len(store.updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(store.updates))
	}
	if got := store.updates[0]; got.X != 20 || got.Y != 10 {
		t.Errorf("saved position (%d, %d), want (20, 10)", got.X, got.Y)
	}
}

func TestOpenSingletonOnce(t *testing.T) {
	d := newTestDesktop(t, nil)

	d.Dispatch(wm.OpenCmd{Kind: wm.KindAboutMe})
	d.Dispatch(wm.FocusCmd{ID: wm.HomeID})
	d.Dispatch(wm.OpenCmd{Kind: wm.KindAboutMe})

	if d.Manager.Len() != 2 {
		t.Errorf("got %d windows, want 2", d.Manager.Len())
	}
	if d.Manager.Focused() != wm.AboutMeID {
		t.Errorf("reopening should focus About Me")
	}
}

func TestBackgroundCommand(t *testing.T) {
	d := newTestDesktop(t, nil)

	d.Dispatch(wm.BackgroundCmd{Delta: -1})
	if got := d.Background.Value(); got != 2 {
		t.Errorf("got background %d, want 2", got)
	}
	d.Dispatch(wm.BackgroundCmd{Delta: -1}, wm.BackgroundCmd{Delta: -1})
	if got := d.Background.Value(); got != theme.MaxBackground-1 {
		t.Errorf("got background %d, want %d", got, theme.MaxBackground-1)
	}
}

func TestRenderFillsScreen(t *testing.T) {
	d := newTestDesktop(t, nil)
	d.Dispatch(wm.OpenCmd{Kind: wm.KindSpotify})

	out := d.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Fatalf("got %d lines, want 40", len(lines))
	}
	if !strings.Contains(out, "Home") || !strings.Contains(out, "Spotify") {
		t.Error("windows should be drawn")
	}
	if !strings.Contains(lines[39], "+ note") || !strings.Contains(lines[39], "09:30") {
		t.Errorf("taskbar row missing parts: %q", lines[39])
	}
}

func TestHitTestControls(t *testing.T) {
	d := newTestDesktop(t, nil)
	d.Dispatch(wm.OpenCmd{Kind: wm.KindAboutMe})
	d.Render()

	box, _ := d.layout.Box(wm.AboutMeID)
	closeX := box.X + box.Width - 3
	hit := d.HitTest(closeX, box.Y+1)
	if hit.Target != HitControl || hit.Control != ControlClose || hit.ID != wm.AboutMeID {
		t.Fatalf("got %+v, want close control on About Me", hit)
	}

	hit = d.HitTest(box.X+2, box.Y+1)
	if hit.Target != HitTitleBar {
		t.Errorf("got target %v, want title bar", hit.Target)
	}
	hit = d.HitTest(box.X+2, box.Y+3)
	if hit.Target != HitBody || hit.BodyX != 1 || hit.BodyY != 1 {
		t.Errorf("got %+v, want body (1, 1)", hit)
	}

	for _, c := range controlsFor(d.Manager.Lookup(wm.HomeID)) {
		if c == ControlClose {
			t.Error("home must not have a close button")
		}
	}
}

func TestTaskbarHit(t *testing.T) {
	d := newTestDesktop(t, nil)
	d.Render()

	hit := d.HitTest(2, 39)
	if hit.Target != HitTaskbar || !hit.Entry.NewNote() {
		t.Errorf("got %+v, want new-note button", hit)
	}
	hit = d.HitTest(12, 39)
	if id, ok := hit.Entry.WindowID(); !ok || id != wm.HomeID {
		t.Errorf("got %+v, want Home entry", hit)
	}
}

func TestLogRingIsBounded(t *testing.T) {
	d := newTestDesktop(t, nil)
	for i := range config.MaxLogMessages + 10 {
		d.LogInfo("message %d", i)
	}
	if len(d.LogMessages) != config.MaxLogMessages {
		t.Errorf("got %d messages, want %d", len(d.LogMessages), config.MaxLogMessages)
	}
	if last := d.LogMessages[len(d.LogMessages)-1].Message; last != "message 509" {
		t.Errorf("got last %q", last)
	}
}

func TestConfigReloadError(t *testing.T) {
	d := newTestDesktop(t, nil)
	d.Update(ConfigReloadedMsg{Err: errors.New("bad toml")})

	if len(d.Notifications) != 1 || d.Notifications[0].Type != "error" {
		t.Errorf("got notifications %+v", d.Notifications)
	}
}

func TestFilmsRouting(t *testing.T) {
	d := newTestDesktop(t, nil)
	d.Dispatch(wm.OpenCmd{Kind: wm.KindFilms})

	d.Update(FilmsLoadedMsg{Err: errors.New("offline")})
	w := d.Manager.Lookup(wm.FilmsID)
	if !strings.Contains(w.Body.View(40), "offline") {
		t.Error("films window should show the error")
	}
}

func TestOverlaysStayAboveLongLivedWindows(t *testing.T) {
	d := newTestDesktop(t, nil)
	d.Manager.Maximise(wm.HomeID)
	// A long-running session keeps allocating z values.
	d.Manager.Lookup(wm.HomeID).Z = zTaskbar * 4
	d.LogInfo("overlay marker")
	d.ShowLogs = true

	out := d.Render()
	if !strings.Contains(out, "overlay marker") {
		t.Error("log viewer hidden behind a window")
	}
	if !strings.Contains(out, "+ note") {
		t.Error("taskbar hidden behind a window")
	}
}
