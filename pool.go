// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

// Pool is a single-goroutine-confined fixed-block allocator.
//
// Pool amortizes allocation cost by materializing storage in coarse chunks
// and handing out individual slots from a free list. Chunks are append-only
// and never moved, resized in place, or released while the Pool is
// reachable, so every pointer returned by Alloc stays valid (and visible to
// the garbage collector through the Pool itself) for the Pool's entire
// lifetime. That stability is what lets the unbounded queues publish node
// addresses through atomic words.
//
// Pool has no internal synchronization. Alloc and Free must both be called
// from the same single goroutine; in this package that is always the
// producer. Blocks are recycled, not validated: passing Free a pointer that
// did not come from Alloc on this Pool, or freeing the same pointer twice,
// corrupts the free list. These are documented precondition violations, not
// reported errors.
type Pool[T any] struct {
	free      []*T  // LIFO free list of unused slots across all chunks
	chunks    [][]T // append-only backing storage
	increment int   // slots added per growth step
}

// NewPool creates a Pool with the given initial capacity. An initial
// capacity of zero or less selects DefaultCapacity. The pool grows by the
// same increment whenever the free list is exhausted.
func NewPool[T any](initial int) *Pool[T] {
	if initial <= 0 {
		initial = DefaultCapacity
	}
	p := &Pool[T]{
		free:      make([]*T, 0, initial),
		increment: initial,
	}
	p.grow()
	return p
}

// grow materializes one more chunk and pushes its slots onto the free list.
func (p *Pool[T]) grow() {
	chunk := make([]T, p.increment)
	p.chunks = append(p.chunks, chunk)
	for i := range chunk {
		p.free = append(p.free, &chunk[i])
	}
}

// Alloc returns a pointer to an unused slot, growing the pool if the free
// list is empty. It never fails; amortized O(1).
//
// The slot's contents are unspecified: a recycled slot still holds whatever
// its previous owner left behind. Callers initialize the fields they use.
func (p *Pool[T]) Alloc() *T {
	if len(p.free) == 0 {
		p.grow()
	}
	t := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	return t
}

// Free returns a slot to the pool for reuse. The caller must not retain or
// dereference t afterwards.
func (p *Pool[T]) Free(t *T) {
	p.free = append(p.free, t)
}

// Cap returns the total number of slots across all chunks, in use or free.
// It grows monotonically and only when Alloc found the free list empty.
func (p *Pool[T]) Cap() int {
	return len(p.chunks) * p.increment
}
