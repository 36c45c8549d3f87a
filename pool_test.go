// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless_test

import (
	"testing"

	"github.com/noneshallpass/lockless"
)

// TestPoolDistinctLivePointers verifies that no two outstanding (unfreed)
// allocations ever alias, across interleaved Alloc/Free traffic.
func TestPoolDistinctLivePointers(t *testing.T) {
	p := lockless.NewPool[int](8)
	live := make(map[*int]bool)

	alloc := func() {
		t.Helper()
		ptr := p.Alloc()
		if live[ptr] {
			t.Fatalf("Alloc returned live pointer %p twice", ptr)
		}
		live[ptr] = true
	}
	freeOne := func() {
		t.Helper()
		for ptr := range live {
			delete(live, ptr)
			p.Free(ptr)
			return
		}
	}

	// Exhaust the first chunk, force growth, then churn.
	for range 12 {
		alloc()
	}
	for range 6 {
		freeOne()
	}
	for range 20 {
		alloc()
		alloc()
		freeOne()
	}
}

// TestPoolGrowsOnlyWhenExhausted verifies Cap is monotone and moves only on
// an Alloc that found the free list empty.
func TestPoolGrowsOnlyWhenExhausted(t *testing.T) {
	p := lockless.NewPool[int](4)
	if p.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", p.Cap())
	}

	held := make([]*int, 0, 8)
	for range 4 {
		held = append(held, p.Alloc())
	}
	if p.Cap() != 4 {
		t.Fatalf("Cap after draining free list: got %d, want 4", p.Cap())
	}

	// Fifth Alloc finds the free list empty and must add one increment.
	held = append(held, p.Alloc())
	if p.Cap() != 8 {
		t.Fatalf("Cap after growth: got %d, want 8", p.Cap())
	}

	// With slots free again, further Alloc/Free traffic must not grow.
	p.Free(held[len(held)-1])
	held = held[:len(held)-1]
	for range 16 {
		ptr := p.Alloc()
		p.Free(ptr)
	}
	if p.Cap() != 8 {
		t.Fatalf("Cap after steady-state churn: got %d, want 8", p.Cap())
	}
}

// TestPoolRecyclesFreedSlots verifies a freed slot is handed out again
// before the pool grows.
func TestPoolRecyclesFreedSlots(t *testing.T) {
	p := lockless.NewPool[int](2)
	a := p.Alloc()
	b := p.Alloc()

	p.Free(a)
	if got := p.Alloc(); got != a {
		t.Fatalf("Alloc after Free: got %p, want recycled %p", got, a)
	}
	if p.Cap() != 2 {
		t.Fatalf("Cap: got %d, want 2", p.Cap())
	}
	_ = b
}

// TestPoolDefaultCapacity verifies the zero-value constructor argument
// selects DefaultCapacity.
func TestPoolDefaultCapacity(t *testing.T) {
	p := lockless.NewPool[int](0)
	if p.Cap() != lockless.DefaultCapacity {
		t.Fatalf("Cap: got %d, want %d", p.Cap(), lockless.DefaultCapacity)
	}
}

// TestPoolPointerStability verifies pointers stay valid across growth:
// chunks are append-only and never move.
func TestPoolPointerStability(t *testing.T) {
	p := lockless.NewPool[int](2)
	first := p.Alloc()
	*first = 42

	// Force several growth steps.
	for range 50 {
		_ = p.Alloc()
	}

	if *first != 42 {
		t.Fatalf("value through early pointer: got %d, want 42", *first)
	}
}
