package stats

import "sync"

// Ring is a mutex-guarded bounded FIFO history. Pushing beyond capacity
// evicts the oldest entry first, so the ring never exceeds its capacity.
// Writers are the ingestion task only; readers take shared access.
type Ring[T any] struct {
	mu       sync.RWMutex
	items    []T
	capacity int
}

func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

func (r *Ring[T]) Push(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) >= r.capacity {
		copy(r.items, r.items[1:])
		r.items = r.items[:len(r.items)-1]
	}
	r.items = append(r.items, v)
}

// Items returns a copy in insertion order, oldest first.
func (r *Ring[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Ring[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *Ring[T]) Cap() int {
	return r.capacity
}

func (r *Ring[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = r.items[:0]
}
