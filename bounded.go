// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Bounded is a single-producer single-consumer bounded queue.
//
// Bounded is a circular buffer with two independently atomic cursors: head
// (next slot to read, advanced only by the consumer) and tail (next slot to
// write, advanced only by the producer). One slot is kept permanently empty
// so that head == tail means empty and advance(tail) == head means full,
// without a shared counter. A queue constructed with buffer size n
// therefore holds at most n-1 elements.
//
// Cursors wrap modulo the buffer size, so any size >= 2 works; sizes are
// not rounded to powers of two.
//
// Memory: O(size) with minimal per-slot overhead
type Bounded[T any] struct {
	_      pad
	head   atomix.Uint64 // Consumer reads from here
	_      pad
	tail   atomix.Uint64 // Producer writes here
	_      pad
	buffer []T
	size   uint64
}

// NewBounded creates a new Bounded queue with the given buffer size.
// A size of zero selects DefaultCapacity. The usable capacity is size-1.
// Panics if 0 < size < 2.
func NewBounded[T any](size int) *Bounded[T] {
	n := boundedSize(size)
	return &Bounded[T]{
		buffer: make([]T, n),
		size:   uint64(n),
	}
}

// boundedSize validates and defaults a bounded buffer size.
func boundedSize(size int) int {
	if size == 0 {
		return DefaultCapacity
	}
	if size < 2 {
		panic("lockless: buffer size must be >= 2")
	}
	return size
}

// advance steps a cursor one slot forward, wrapping at size.
func advance(i, size uint64) uint64 {
	if i++; i == size {
		return 0
	}
	return i
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full, with no side effects.
func (q *Bounded[T]) Enqueue(elem *T) error {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	next := advance(tail, q.size)
	if next == head {
		return ErrWouldBlock
	}

	q.buffer[tail] = *elem
	q.tail.StoreRelease(next)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Bounded[T]) Dequeue() (T, error) {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if head == tail {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := q.buffer[head]
	var zero T
	q.buffer[head] = zero
	q.head.StoreRelease(advance(head, q.size))
	return elem, nil
}

// IsEmpty reports whether the queue appeared empty. The snapshot is only
// meaningful from the consumer goroutine: the producer can append at any
// moment, but no one else can drain the queue under the consumer.
func (q *Bounded[T]) IsEmpty() bool {
	return q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// IsFull reports whether the queue appeared full. The snapshot is only
// meaningful from the producer goroutine: the consumer can free a slot at
// any moment, but no one else can fill the queue under the producer.
func (q *Bounded[T]) IsFull() bool {
	return advance(q.tail.LoadAcquire(), q.size) == q.head.LoadAcquire()
}

// Cap returns the usable capacity: one less than the buffer size.
func (q *Bounded[T]) Cap() int {
	return int(q.size - 1)
}

// IsLockFree reports whether the queue's cursor atomics compile to native
// lock-free instructions on the current platform.
func (q *Bounded[T]) IsLockFree() bool {
	return atomicLockFree
}

// BoundedIndirect is a Bounded queue for uintptr values (indices, handles).
type BoundedIndirect struct {
	_      pad
	head   atomix.Uint64
	_      pad
	tail   atomix.Uint64
	_      pad
	buffer []uintptr
	size   uint64
}

// NewBoundedIndirect creates a new Bounded queue for uintptr values.
// A size of zero selects DefaultCapacity. The usable capacity is size-1.
// Panics if 0 < size < 2.
func NewBoundedIndirect(size int) *BoundedIndirect {
	n := boundedSize(size)
	return &BoundedIndirect{
		buffer: make([]uintptr, n),
		size:   uint64(n),
	}
}

// Enqueue adds an element (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *BoundedIndirect) Enqueue(elem uintptr) error {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	next := advance(tail, q.size)
	if next == head {
		return ErrWouldBlock
	}

	// Bounds check eliminated: tail is always < len(buffer).
	// Equivalent to q.buffer[tail] = elem
	*(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(tail)*ptrSize)) = elem
	q.tail.StoreRelease(next)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (0, ErrWouldBlock) if the queue is empty.
func (q *BoundedIndirect) Dequeue() (uintptr, error) {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if head == tail {
		return 0, ErrWouldBlock
	}

	// Bounds check eliminated: head is always < len(buffer).
	elem := *(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(head)*ptrSize))
	q.head.StoreRelease(advance(head, q.size))
	return elem, nil
}

// IsEmpty reports whether the queue appeared empty (consumer side).
func (q *BoundedIndirect) IsEmpty() bool {
	return q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// IsFull reports whether the queue appeared full (producer side).
func (q *BoundedIndirect) IsFull() bool {
	return advance(q.tail.LoadAcquire(), q.size) == q.head.LoadAcquire()
}

// Cap returns the usable capacity: one less than the buffer size.
func (q *BoundedIndirect) Cap() int {
	return int(q.size - 1)
}

// IsLockFree reports whether the queue's cursor atomics compile to native
// lock-free instructions on the current platform.
func (q *BoundedIndirect) IsLockFree() bool {
	return atomicLockFree
}

// BoundedPtr is a Bounded queue for unsafe.Pointer values.
// Useful for zero-copy pointer passing between goroutines.
type BoundedPtr struct {
	_      pad
	head   atomix.Uint64
	_      pad
	tail   atomix.Uint64
	_      pad
	buffer []unsafe.Pointer
	size   uint64
}

// NewBoundedPtr creates a new Bounded queue for unsafe.Pointer values.
// A size of zero selects DefaultCapacity. The usable capacity is size-1.
// Panics if 0 < size < 2.
func NewBoundedPtr(size int) *BoundedPtr {
	n := boundedSize(size)
	return &BoundedPtr{
		buffer: make([]unsafe.Pointer, n),
		size:   uint64(n),
	}
}

// Enqueue adds an element (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *BoundedPtr) Enqueue(elem unsafe.Pointer) error {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	next := advance(tail, q.size)
	if next == head {
		return ErrWouldBlock
	}

	// Bounds check eliminated: tail is always < len(buffer).
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(tail)*ptrSize)) = elem
	q.tail.StoreRelease(next)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (nil, ErrWouldBlock) if the queue is empty.
func (q *BoundedPtr) Dequeue() (unsafe.Pointer, error) {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if head == tail {
		return nil, ErrWouldBlock
	}

	// Bounds check eliminated: head is always < len(buffer).
	slot := (*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(head)*ptrSize))
	elem := *slot
	*slot = nil
	q.head.StoreRelease(advance(head, q.size))
	return elem, nil
}

// IsEmpty reports whether the queue appeared empty (consumer side).
func (q *BoundedPtr) IsEmpty() bool {
	return q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// IsFull reports whether the queue appeared full (producer side).
func (q *BoundedPtr) IsFull() bool {
	return advance(q.tail.LoadAcquire(), q.size) == q.head.LoadAcquire()
}

// Cap returns the usable capacity: one less than the buffer size.
func (q *BoundedPtr) Cap() int {
	return int(q.size - 1)
}

// IsLockFree reports whether the queue's cursor atomics compile to native
// lock-free instructions on the current platform.
func (q *BoundedPtr) IsLockFree() bool {
	return atomicLockFree
}
