// Package bounded provides a fixed-capacity buffer whose logical length is
// tracked explicitly and is always at most its capacity.
//
// The buffer is the allocation-free staging area used to move input strokes
// across the native driver boundary: the backing store is allocated exactly
// once, the driver (or decoder) reports how many elements are actually
// valid, and Prefix exposes exactly that many elements and nothing more.
package bounded

import "fmt"

// Buffer is a fixed-capacity store of T exposing only its first Len
// elements. It never grows: Append past capacity is refused and SetLen past
// capacity panics.
type Buffer[T any] struct {
	items []T
	n     int
}

// New allocates a buffer with the given fixed capacity. capacity must be
// positive.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("bounded: capacity must be positive, got %d", capacity))
	}
	return &Buffer[T]{items: make([]T, capacity)}
}

// Cap returns the fixed capacity of the backing store.
func (b *Buffer[T]) Cap() int { return len(b.items) }

// Len returns the number of logically valid elements.
func (b *Buffer[T]) Len() int { return b.n }

// SetLen declares the first n elements valid. Lengths outside [0, Cap] are
// a programming error.
func (b *Buffer[T]) SetLen(n int) {
	if n < 0 || n > len(b.items) {
		panic(fmt.Sprintf("bounded: length %d outside [0, %d]", n, len(b.items)))
	}
	b.n = n
}

// Append places v after the current valid prefix and extends it. It reports
// false, leaving the buffer unchanged, when the buffer is full.
func (b *Buffer[T]) Append(v T) bool {
	if b.n == len(b.items) {
		return false
	}
	b.items[b.n] = v
	b.n++
	return true
}

// Reset empties the logical prefix. The backing store is untouched.
func (b *Buffer[T]) Reset() { b.n = 0 }

// At returns the i-th valid element. Indexes at or beyond Len are rejected
// even though backing capacity exists there.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bounded: index %d outside valid prefix of length %d", i, b.n))
	}
	return b.items[i]
}

// Set overwrites the i-th valid element, with the same bounds rule as At.
func (b *Buffer[T]) Set(i int, v T) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bounded: index %d outside valid prefix of length %d", i, b.n))
	}
	b.items[i] = v
}

// Prefix returns the valid prefix as a slice. The slice's capacity is
// clamped to its length, so appends through it cannot reach the spare
// backing elements.
func (b *Buffer[T]) Prefix() []T {
	return b.items[:b.n:b.n]
}
