// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// indirectNode is one link in an UnboundedIndirect chain.
type indirectNode struct {
	value uintptr
	next  *indirectNode
}

// UnboundedIndirect is an Unbounded queue for uintptr values (indices,
// handles). Same algorithm and ownership split as [Unbounded]; uintptr
// payloads carry no references, so consumed slots are not cleared.
type UnboundedIndirect struct {
	_       pad
	divider atomix.Uintptr
	_       pad
	last    atomix.Uintptr
	_       pad
	first   *indirectNode
	pool    *Pool[indirectNode]
}

// NewUnboundedIndirect creates a new UnboundedIndirect queue. poolSize is
// the initial node pool capacity and its growth increment; zero or less
// selects DefaultCapacity.
func NewUnboundedIndirect(poolSize int) *UnboundedIndirect {
	pool := NewPool[indirectNode](poolSize)
	sentinel := pool.Alloc()
	sentinel.value = 0
	sentinel.next = nil

	q := &UnboundedIndirect{
		first: sentinel,
		pool:  pool,
	}
	q.divider.Store(uintptr(unsafe.Pointer(sentinel)))
	q.last.Store(uintptr(unsafe.Pointer(sentinel)))
	return q
}

// Enqueue adds an element to the queue (producer only). The error is always
// nil; the signature exists to satisfy [ProducerIndirect]. Enqueue also
// opportunistically reclaims fully consumed nodes into the pool.
func (q *UnboundedIndirect) Enqueue(elem uintptr) error {
	n := q.pool.Alloc()
	n.value = elem
	n.next = nil

	last := (*indirectNode)(unsafe.Pointer(q.last.LoadAcquire()))
	last.next = n
	q.last.StoreRelease(uintptr(unsafe.Pointer(n)))

	q.reclaim()
	return nil
}

// reclaim frees every node strictly before the observed divider position.
func (q *UnboundedIndirect) reclaim() {
	div := (*indirectNode)(unsafe.Pointer(q.divider.LoadAcquire()))
	for q.first != div {
		n := q.first
		q.first = n.next
		n.next = nil
		q.pool.Free(n)
	}
}

// Dequeue removes and returns an element (consumer only).
// Returns (0, ErrWouldBlock) if the queue is empty.
func (q *UnboundedIndirect) Dequeue() (uintptr, error) {
	div := q.divider.LoadAcquire()
	if div == q.last.LoadAcquire() {
		return 0, ErrWouldBlock
	}

	next := (*indirectNode)(unsafe.Pointer(div)).next
	elem := next.value
	q.divider.StoreRelease(uintptr(unsafe.Pointer(next)))
	return elem, nil
}

// IsEmpty reports whether the queue appeared empty (consumer side).
func (q *UnboundedIndirect) IsEmpty() bool {
	return q.divider.LoadAcquire() == q.last.LoadAcquire()
}

// IsLockFree reports whether the queue's pointer atomics compile to native
// lock-free instructions on the current platform.
func (q *UnboundedIndirect) IsLockFree() bool {
	return atomicLockFree
}
