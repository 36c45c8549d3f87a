// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lockless provides single-producer single-consumer (SPSC) queue
// implementations tuned for low and predictable latency.
//
// The package offers two queue shapes:
//
//   - Bounded: fixed-capacity circular buffer, reports backpressure
//   - Unbounded: linked nodes recycled through a fixed-block Pool
//
// Both are lock-free in the strict sense: there is no mutex and no
// compare-and-swap retry loop anywhere on the hot path. Correctness comes
// from a single-writer discipline per atomic field (only the producer ever
// writes the tail/last position, only the consumer ever writes the
// head/divider position) combined with acquire-release memory ordering.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q := lockless.NewBounded[Event](1024)
//	q := lockless.NewUnbounded[*Request](0) // 0 → DefaultCapacity
//
// Builder API for configuration-driven call sites:
//
//	q := lockless.Build[Event](lockless.New(1024))             // → Bounded
//	q := lockless.Build[Event](lockless.New(1024).Unbounded()) // → Unbounded
//
// # Basic Usage
//
// All queues share the same non-blocking interface:
//
//	q := lockless.NewBounded[int](256)
//
//	// Producer goroutine
//	value := 42
//	err := q.Enqueue(&value)
//	if lockless.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Consumer goroutine
//	elem, err := q.Dequeue()
//	if lockless.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// Unbounded queues never reject an Enqueue; their Enqueue error is always
// nil and exists on the signature only to satisfy the shared [Producer]
// interface.
//
// # Choosing a Variant
//
// Bounded signals a full buffer with [ErrWouldBlock], giving the producer a
// backpressure point. Capacity is fixed at construction: a queue built with
// buffer size n holds at most n-1 elements (one slot stays permanently
// empty to disambiguate full from empty with only two cursors; Cap reports
// n-1).
//
// Unbounded absorbs arbitrary bursts. Fully consumed nodes are reclaimed on
// the producer during Enqueue and recycled through an internal [Pool], so a
// steady-state producer/consumer pair stops allocating entirely. Sustained
// production faster than consumption grows the pool without bound; callers
// needing backpressure should use Bounded.
//
// # Queue Flavors
//
// Following the package convention, three payload flavors exist:
//
//	Bounded[T] / Unbounded[T]           - generic, type-safe
//	BoundedIndirect / UnboundedIndirect - uintptr values (indices, handles)
//	BoundedPtr                          - unsafe.Pointer values (zero-copy)
//
// The Indirect flavor suits free lists and slot-index schemes:
//
//	pool := make([][]byte, 64)
//	free := lockless.NewBoundedIndirect(65)
//	for i := range pool {
//	    pool[i] = make([]byte, 4096)
//	    free.Enqueue(uintptr(i))
//	}
//
// # SPSC Contract
//
// Exactly one goroutine may call Enqueue (and IsFull) and exactly one
// goroutine may call Dequeue (and IsEmpty) for the lifetime of a queue
// instance. The roles may not migrate mid-stream or be shared. Violating
// this contract is undefined behavior, not a detected error: the
// partitioning of the buffer (or node chain) between the two roles is the
// entire synchronization mechanism, and there is no lock guarding it.
//
// # Waiting
//
// Operations never block; full and empty are reported immediately as
// [ErrWouldBlock]. Callers that need to wait spin at their own level,
// typically with iox.Backoff:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&item) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Pool Confinement
//
// [Pool] hands out fixed-size blocks from append-only chunks and never
// moves or releases them while it lives. It has no internal
// synchronization: Alloc and Free must be called from one goroutine. The
// unbounded queues observe this by doing every Alloc and every Free on the
// producer side — reclamation of consumed nodes happens during Enqueue,
// never during Dequeue.
//
// # Length
//
// Length is intentionally not provided because accurate counts in lock-free
// algorithms require expensive cross-core synchronization. Track counts in
// application logic when needed.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established through atomix memory orderings, so correct concurrent use of
// these queues may still be reported as a race. Tests incompatible with
// race detection are excluded via //go:build !race; see [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions in test spin loops.
package lockless
