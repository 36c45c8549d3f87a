// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// node is one link in an unbounded queue's chain. Nodes live in the queue's
// Pool, so their addresses are stable and remain reachable for the queue's
// lifetime even while published through atomix.Uintptr words.
type node[T any] struct {
	value T
	next  *node[T]
}

// Unbounded is a single-producer single-consumer queue without a capacity
// bound.
//
// The queue is a singly-linked chain of pooled nodes with three positions:
//
//	first   - oldest node, producer-private
//	divider - boundary between consumed and unconsumed nodes (atomic)
//	last    - newest node, a sentinel whose value is not yet meaningful (atomic)
//
// Nodes strictly between first and divider are consumed garbage owned by
// the producer; the producer reclaims them into the Pool during Enqueue,
// never moving first past the divider position it observed. Nodes after
// divider through last are visible to the consumer, whose only write is
// advancing divider. The value of the node immediately after divider is the
// next element to dequeue. This ownership split means neither side ever
// needs a lock or a retry loop.
//
// All node allocation and reclamation happens on the producer goroutine,
// honoring the Pool's single-goroutine confinement. Growth is implicit via
// the Pool; a producer that outruns its consumer indefinitely grows memory
// without bound. Callers needing backpressure should use Bounded.
type Unbounded[T any] struct {
	_       pad
	divider atomix.Uintptr // Consumer advances past consumed nodes
	_       pad
	last    atomix.Uintptr // Producer links new nodes here
	_       pad
	first   *node[T] // Producer-private; trails divider
	pool    *Pool[node[T]]
}

// NewUnbounded creates a new Unbounded queue. poolSize is the initial node
// pool capacity and its growth increment; zero or less selects
// DefaultCapacity.
func NewUnbounded[T any](poolSize int) *Unbounded[T] {
	pool := NewPool[node[T]](poolSize)
	sentinel := pool.Alloc()
	var zero T
	sentinel.value = zero
	sentinel.next = nil

	q := &Unbounded[T]{
		first: sentinel,
		pool:  pool,
	}
	q.divider.Store(uintptr(unsafe.Pointer(sentinel)))
	q.last.Store(uintptr(unsafe.Pointer(sentinel)))
	return q
}

// Enqueue adds an element to the queue (producer only). The error is always
// nil; the signature exists to satisfy [Producer]. Enqueue also
// opportunistically reclaims fully consumed nodes into the pool.
func (q *Unbounded[T]) Enqueue(elem *T) error {
	n := q.pool.Alloc()
	n.value = *elem
	n.next = nil

	last := (*node[T])(unsafe.Pointer(q.last.LoadAcquire()))
	last.next = n
	q.last.StoreRelease(uintptr(unsafe.Pointer(n)))

	q.reclaim()
	return nil
}

// reclaim frees every node strictly before the observed divider position.
// Safe because the consumer never revisits nodes behind divider, and the
// acquire load orders the frees after the consumer's divider advance.
func (q *Unbounded[T]) reclaim() {
	div := (*node[T])(unsafe.Pointer(q.divider.LoadAcquire()))
	var zero T
	for q.first != div {
		n := q.first
		q.first = n.next
		n.value = zero
		n.next = nil
		q.pool.Free(n)
	}
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Unbounded[T]) Dequeue() (T, error) {
	div := q.divider.LoadAcquire()
	if div == q.last.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}

	// Non-empty, so the node after divider was published by the
	// producer's release store to last and is safe to read plainly.
	next := (*node[T])(unsafe.Pointer(div)).next
	elem := next.value
	var zero T
	next.value = zero
	q.divider.StoreRelease(uintptr(unsafe.Pointer(next)))
	return elem, nil
}

// IsEmpty reports whether the queue appeared empty. The snapshot is only
// meaningful from the consumer goroutine; see [Queue].
func (q *Unbounded[T]) IsEmpty() bool {
	return q.divider.LoadAcquire() == q.last.LoadAcquire()
}

// IsLockFree reports whether the queue's pointer atomics compile to native
// lock-free instructions on the current platform.
func (q *Unbounded[T]) IsLockFree() bool {
	return atomicLockFree
}
