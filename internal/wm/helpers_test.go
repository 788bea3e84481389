package wm

type fakeLayout struct {
	width, height int
	noViewport    bool
	boxes         map[WindowID]Rect
}

func newFakeLayout(w, h int) *fakeLayout {
	return &fakeLayout{width: w, height: h, boxes: make(map[WindowID]Rect)}
}

func (l *fakeLayout) Viewport() (int, int, bool) {
	return l.width, l.height, !l.noViewport
}

func (l *fakeLayout) Box(id WindowID) (Rect, bool) {
	r, ok := l.boxes[id]
	return r, ok
}

type fakeSource struct {
	next int
	subs map[int]fakeSub
}

type fakeSub struct {
	kind PointerKind
	fn   func(PointerEvent)
}

func newFakeSource() *fakeSource {
	return &fakeSource{subs: make(map[int]fakeSub)}
}

func (s *fakeSource) Subscribe(kind PointerKind, fn func(PointerEvent)) func() {
	s.next++
	key := s.next
	s.subs[key] = fakeSub{kind: kind, fn: fn}
	return func() { delete(s.subs, key) }
}

func (s *fakeSource) emit(kind PointerKind, x, y int) {
	var fns []func(PointerEvent)
	for _, sub := range s.subs {
		if sub.kind == kind {
			fns = append(fns, sub.fn)
		}
	}
	for _, fn := range fns {
		fn(PointerEvent{Kind: kind, X: x, Y: y})
	}
}

type fakePersister struct {
	saved   []WindowID
	deleted []int
}

func (p *fakePersister) SaveNote(w *Window) { p.saved = append(p.saved, w.ID) }
func (p *fakePersister) DeleteNote(n int)   { p.deleted = append(p.deleted, n) }

type textBody string

func (t textBody) View(int) string { return string(t) }

func testWindow(id WindowID, policy ClosePolicy) *Window {
	return &Window{
		ID:    id,
		State: Open,
		Close: policy,
		Top:   Close(0),
		Left:  Close(0),
		Width: 30,
		Title: id.String(),
		Body:  textBody("body"),
	}
}
