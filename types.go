// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import "unsafe"

// DefaultCapacity is the buffer size used by bounded queues and the initial
// pool size used by unbounded queues when the constructor argument is zero.
const DefaultCapacity = 16

// Queue is the combined producer-consumer interface for an SPSC queue.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Both return
// ErrWouldBlock when they cannot proceed (bounded queue full, or empty);
// unbounded queues never fail an Enqueue.
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// IsEmpty reports whether the queue appeared empty at the time of
	// the call. The snapshot is advisory and only meaningful from the
	// consumer goroutine: the producer may publish a new element at any
	// moment, but nothing can remove one out from under the consumer.
	IsEmpty() bool

	// IsLockFree reports whether the queue's atomic operations compile
	// to native lock-free instructions on the current platform.
	IsLockFree() bool
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
//
// Exactly one goroutine may act as the producer for a given queue.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if a bounded queue is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value (copied from the queue's storage). The
// vacated slot is cleared so referenced objects can be collected.
//
// Exactly one goroutine may act as the consumer for a given queue.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}

// QueueIndirect is the combined interface for indirect (uintptr) queues.
//
// QueueIndirect passes indices or handles instead of full objects. This is
// useful for buffer pools, object pools, or any index-based data structure.
type QueueIndirect interface {
	ProducerIndirect
	ConsumerIndirect

	// IsEmpty reports an advisory emptiness snapshot; see [Queue].
	IsEmpty() bool

	// IsLockFree reports whether the queue's atomic operations compile
	// to native lock-free instructions on the current platform.
	IsLockFree() bool
}

// ProducerIndirect enqueues uintptr values (non-blocking).
type ProducerIndirect interface {
	// Enqueue adds an element to the queue.
	// Returns ErrWouldBlock immediately if a bounded queue is full.
	Enqueue(elem uintptr) error
}

// ConsumerIndirect dequeues uintptr values (non-blocking).
type ConsumerIndirect interface {
	// Dequeue removes and returns an element from the queue.
	// Returns (0, ErrWouldBlock) immediately if the queue is empty.
	Dequeue() (uintptr, error)
}

// QueuePtr is the combined interface for unsafe.Pointer queues.
//
// QueuePtr passes pointers directly without copying, enabling zero-copy
// transfer of objects from the producer to the consumer. After enqueueing,
// the producer must not access the object: ownership has moved.
type QueuePtr interface {
	ProducerPtr
	ConsumerPtr

	// IsEmpty reports an advisory emptiness snapshot; see [Queue].
	IsEmpty() bool

	// IsLockFree reports whether the queue's atomic operations compile
	// to native lock-free instructions on the current platform.
	IsLockFree() bool
}

// ProducerPtr enqueues unsafe.Pointer values (non-blocking).
type ProducerPtr interface {
	// Enqueue adds an element to the queue.
	// Returns ErrWouldBlock immediately if a bounded queue is full.
	Enqueue(elem unsafe.Pointer) error
}

// ConsumerPtr dequeues unsafe.Pointer values (non-blocking).
type ConsumerPtr interface {
	// Dequeue removes and returns an element from the queue.
	// Returns (nil, ErrWouldBlock) immediately if the queue is empty.
	Dequeue() (unsafe.Pointer, error)
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte
