package driver

import "sync/atomic"

// Latest is a single-slot cell, writers overwrite and readers see the newest value
type Latest[T any] struct {
	p atomic.Pointer[T]
}

// Store overwrites the cell
func (l *Latest[T]) Store(v T) {
	l.p.Store(&v)
}

// Load returns the newest value, the zero value before any Store
func (l *Latest[T]) Load() T {
	if v := l.p.Load(); v != nil {
		return *v
	}
	var zero T
	return zero
}

// Update applies fn to the current value and stores the result
// Safe against concurrent Update calls, Store may still race a pending Update and win
func (l *Latest[T]) Update(fn func(T) T) {
	for {
		old := l.p.Load()
		var cur T
		if old != nil {
			cur = *old
		}
		next := fn(cur)
		if l.p.CompareAndSwap(old, &next) {
			return
		}
	}
}
