package input

import (
	"testing"

	"github.com/14ROVI/copland/internal/wm"
)

func TestRouterDeliversByKind(t *testing.T) {
	r := NewRouter()
	var moves, ups int
	r.Subscribe(wm.MouseMove, func(wm.PointerEvent) { moves++ })
	r.Subscribe(wm.MouseUp, func(wm.PointerEvent) { ups++ })

	r.Dispatch(wm.PointerEvent{Kind: wm.MouseMove})
	r.Dispatch(wm.PointerEvent{Kind: wm.MouseMove})
	r.Dispatch(wm.PointerEvent{Kind: wm.MouseUp})
	r.Dispatch(wm.PointerEvent{Kind: wm.TouchUp})

	if moves != 2 || ups != 1 {
		t.Errorf("got moves=%d ups=%d, want 2 and 1", moves, ups)
	}
}

func TestRouterReleaseDuringDispatch(t *testing.T) {
	r := NewRouter()
	var calls []string
	var releaseSecond func()

	r.Subscribe(wm.MouseUp, func(wm.PointerEvent) {
		calls = append(calls, "first")
		releaseSecond()
	})
	releaseSecond = r.Subscribe(wm.MouseUp, func(wm.PointerEvent) {
		calls = append(calls, "second")
	})

	r.Dispatch(wm.PointerEvent{Kind: wm.MouseUp})
	if len(calls) != 2 || calls[0] != "first" {
		t.Errorf("got %v, want first then second for the in-flight event", calls)
	}

	calls = nil
	r.Dispatch(wm.PointerEvent{Kind: wm.MouseUp})
	if len(calls) != 1 || calls[0] != "first" {
		t.Errorf("got %v, want only first after release", calls)
	}
}

func TestRouterReleaseIsIdempotent(t *testing.T) {
	r := NewRouter()
	release := r.Subscribe(wm.MouseMove, func(wm.PointerEvent) {})
	r.Subscribe(wm.MouseMove, func(wm.PointerEvent) {})

	release()
	release()
	if got := r.Len(wm.MouseMove); got != 1 {
		t.Errorf("got %d subscriptions, want 1", got)
	}
}

func TestRouterWithDragController(t *testing.T) {
	r := NewRouter()
	m := wm.NewManager(wm.Options{})
	m.Open(&wm.Window{ID: wm.AboutMeID, State: wm.Open, Width: 20, Body: nil})

	l := staticLayout{w: 100, h: 50, box: wm.Rect{X: 10, Y: 10, Width: 20, Height: 8}}
	c := wm.NewController(m, r, l)

	if !c.Start(wm.AboutMeID, 12, 11, false) {
		t.Fatal("drag did not start")
	}
	for _, k := range []wm.PointerKind{wm.MouseMove, wm.MouseUp, wm.TouchMove, wm.TouchUp} {
		if r.Len(k) != 1 {
			t.Errorf("kind %v: got %d subscriptions, want 1", k, r.Len(k))
		}
	}

	r.Dispatch(wm.PointerEvent{Kind: wm.MouseMove, X: 22, Y: 21})
	r.Dispatch(wm.PointerEvent{Kind: wm.MouseUp, X: 22, Y: 21})

	w := m.Lookup(wm.AboutMeID)
	if w.Left != wm.Close(20) || w.Top != wm.Close(20) {
		t.Errorf("got (%v, %v), want (Close(20), Close(20))", w.Left, w.Top)
	}
	for _, k := range []wm.PointerKind{wm.MouseMove, wm.MouseUp, wm.TouchMove, wm.TouchUp} {
		if r.Len(k) != 0 {
			t.Errorf("kind %v: subscription leaked", k)
		}
	}
}

type staticLayout struct {
	w, h int
	box  wm.Rect
}

func (l staticLayout) Viewport() (int, int, bool)      { return l.w, l.h, true }
func (l staticLayout) Box(wm.WindowID) (wm.Rect, bool) { return l.box, true }
