package theme

import (
	"math/rand/v2"
	"sync"
)

// MaxBackground is one past the highest background index. Valid
// backgrounds are 1 through MaxBackground-1.
const MaxBackground = 23

// Background is the desktop background shared by every window and, in
// SSH mode, by every session. Subscribers are notified of each change.
type Background struct {
	mu    sync.Mutex
	value int
	subs  map[int]chan int
	next  int
}

// NewBackground returns a background set to n. Zero or an out of range
// value picks a random background.
func NewBackground(n int) *Background {
	if n < 1 || n >= MaxBackground {
		n = 1 + rand.IntN(MaxBackground-1)
	}
	return &Background{value: n, subs: make(map[int]chan int)}
}

// Value returns the current background index.
func (b *Background) Value() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Increment moves to the next background, wrapping to 1.
func (b *Background) Increment() int {
	return b.Step(1)
}

// Decrement moves to the previous background, wrapping to MaxBackground-1.
func (b *Background) Decrement() int {
	return b.Step(-1)
}

// Step moves the background by delta and returns the new value.
func (b *Background) Step(delta int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case delta > 0:
		return b.setLocked(b.value + 1)
	case delta < 0:
		return b.setLocked(b.value - 1)
	default:
		return b.value
	}
}

// Set changes the background. Values outside the valid range wrap the
// same way increment and decrement do.
func (b *Background) Set(v int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.setLocked(v)
}

func (b *Background) setLocked(v int) int {
	v = wrap(v)
	if v == b.value {
		return v
	}
	b.value = v
	for _, ch := range b.subs {
		// Slow subscribers only need the latest value.
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
	return v
}

// Subscribe returns a channel receiving every new background value and
// a function that ends the subscription.
func (b *Background) Subscribe() (<-chan int, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	key := b.next
	ch := make(chan int, 1)
	b.subs[key] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, key)
			close(ch)
		})
	}
}

func wrap(v int) int {
	switch {
	case v <= 0:
		return MaxBackground - 1
	case v >= MaxBackground:
		return 1
	default:
		return v
	}
}
