// Package input turns terminal input into desktop actions.
package input

import (
	"slices"
	"sync"

	"github.com/14ROVI/copland/internal/wm"
)

// Router fans pointer events out to subscribers. Subscribers may release
// themselves, or subscribe others, while an event is being delivered.
type Router struct {
	mu   sync.Mutex
	next int
	subs map[wm.PointerKind]map[int]func(wm.PointerEvent)
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{subs: make(map[wm.PointerKind]map[int]func(wm.PointerEvent))}
}

// Subscribe registers fn for events of kind. The returned release
// function is safe to call more than once.
func (r *Router) Subscribe(kind wm.PointerKind, fn func(wm.PointerEvent)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.next
	r.next++
	if r.subs[kind] == nil {
		r.subs[kind] = make(map[int]func(wm.PointerEvent))
	}
	r.subs[kind][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs[kind], id)
			r.mu.Unlock()
		})
	}
}

// Dispatch delivers e to every subscriber of its kind, in subscription
// order.
func (r *Router) Dispatch(e wm.PointerEvent) {
	r.mu.Lock()
	subs := r.subs[e.Kind]
	ids := make([]int, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(wm.PointerEvent), len(ids))
	for i, id := range ids {
		fns[i] = subs[id]
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// Len returns the number of live subscriptions for kind.
func (r *Router) Len(kind wm.PointerKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs[kind])
}
