// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import (
	"testing"
	"unsafe"
)

// White-box tests of node reclamation: Enqueue must return fully consumed
// nodes to the pool, so steady-state traffic runs allocation-free.

// TestUnboundedSteadyStateDoesNotGrowPool alternates Enqueue/Dequeue and
// checks the pool never grows past its initial chunk: each Enqueue recycles
// the node the previous Dequeue retired.
func TestUnboundedSteadyStateDoesNotGrowPool(t *testing.T) {
	q := NewUnbounded[int](4)
	if got := q.pool.Cap(); got != 4 {
		t.Fatalf("initial pool Cap: got %d, want 4", got)
	}

	for i := range 10000 {
		if err := q.Enqueue(&i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
		val, err := q.Dequeue()
		if err != nil || val != i {
			t.Fatalf("Dequeue: got (%d, %v), want (%d, nil)", val, err, i)
		}
	}

	if got := q.pool.Cap(); got != 4 {
		t.Fatalf("pool Cap after steady-state churn: got %d, want 4", got)
	}
}

// TestUnboundedBacklogGrowsPool verifies the pool grows in whole increments
// when the consumer stalls, and that a later drain plus fresh traffic reuses
// the reclaimed nodes instead of growing further.
func TestUnboundedBacklogGrowsPool(t *testing.T) {
	q := NewUnbounded[int](4)

	for i := range 20 {
		if err := q.Enqueue(&i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	grown := q.pool.Cap()
	// 20 live nodes plus the sentinel need at least 21 slots.
	if grown < 21 {
		t.Fatalf("pool Cap with backlog: got %d, want >= 21", grown)
	}
	if grown%4 != 0 {
		t.Fatalf("pool Cap not a whole number of increments: %d", grown)
	}

	for i := range 20 {
		val, err := q.Dequeue()
		if err != nil || val != i {
			t.Fatalf("Dequeue: got (%d, %v), want (%d, nil)", val, err, i)
		}
	}

	// Consumed nodes are reclaimed lazily on the next Enqueues; the same
	// backlog again must fit in the already-grown pool.
	for i := range 20 {
		if err := q.Enqueue(&i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if got := q.pool.Cap(); got != grown {
		t.Fatalf("pool Cap after reuse: got %d, want %d", got, grown)
	}
}

// TestUnboundedReclaimStopsAtDivider pins the safety invariant directly:
// after a partial drain, reclaim must advance first exactly to the divider
// and no further.
func TestUnboundedReclaimStopsAtDivider(t *testing.T) {
	q := NewUnbounded[int](8)

	for i := range 6 {
		if err := q.Enqueue(&i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	for i := range 3 {
		val, err := q.Dequeue()
		if err != nil || val != i {
			t.Fatalf("Dequeue: got (%d, %v), want (%d, nil)", val, err, i)
		}
	}

	q.reclaim()
	if got, want := uintptr(unsafe.Pointer(q.first)), q.divider.Load(); got != want {
		t.Fatalf("first after reclaim: got %#x, want divider %#x", got, want)
	}

	// The unconsumed suffix must be intact.
	for i := 3; i < 6; i++ {
		val, err := q.Dequeue()
		if err != nil || val != i {
			t.Fatalf("Dequeue: got (%d, %v), want (%d, nil)", val, err, i)
		}
	}
}

// TestUnboundedIndirectSteadyState mirrors the steady-state check for the
// indirect flavor.
func TestUnboundedIndirectSteadyState(t *testing.T) {
	q := NewUnboundedIndirect(4)

	for i := range 10000 {
		if err := q.Enqueue(uintptr(i)); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
		val, err := q.Dequeue()
		if err != nil || val != uintptr(i) {
			t.Fatalf("Dequeue: got (%d, %v), want (%d, nil)", val, err, i)
		}
	}

	if got := q.pool.Cap(); got != 4 {
		t.Fatalf("pool Cap after steady-state churn: got %d, want 4", got)
	}
}
