// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

// Options configures queue creation.
type Options struct {
	// unbounded selects the linked-node queue; capacity becomes the
	// initial node pool size.
	unbounded bool

	// capacity is the bounded buffer size, or the unbounded initial
	// pool size.
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Bounded queue with buffer size 1024 (capacity 1023)
//	q := lockless.Build[Event](lockless.New(1024))
//
//	// Unbounded queue with an initial pool of 256 nodes
//	q := lockless.Build[Event](lockless.New(256).Unbounded())
//
//	// Indirect queue for handles
//	q := lockless.New(64).BuildIndirect()
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity. For bounded queues
// capacity is the buffer size (usable capacity is one less); for unbounded
// queues it is the initial node pool size. Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("lockless: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Unbounded selects the linked-node queue without a capacity bound.
// The builder capacity becomes the initial node pool size.
func (b *Builder) Unbounded() *Builder {
	b.opts.unbounded = true
	return b
}

// Build creates a Queue[T] from the builder configuration:
//
//	default     → Bounded (circular buffer, reports backpressure)
//	Unbounded() → Unbounded (pooled linked nodes, grows on demand)
func Build[T any](b *Builder) Queue[T] {
	if b.opts.unbounded {
		return NewUnbounded[T](b.opts.capacity)
	}
	return NewBounded[T](b.opts.capacity)
}

// BuildBounded creates a Bounded queue with a concrete return type.
// Panics if the builder is configured with Unbounded().
func BuildBounded[T any](b *Builder) *Bounded[T] {
	if b.opts.unbounded {
		panic("lockless: BuildBounded conflicts with Unbounded()")
	}
	return NewBounded[T](b.opts.capacity)
}

// BuildUnbounded creates an Unbounded queue with a concrete return type.
// Panics unless the builder is configured with Unbounded().
func BuildUnbounded[T any](b *Builder) *Unbounded[T] {
	if !b.opts.unbounded {
		panic("lockless: BuildUnbounded requires Unbounded()")
	}
	return NewUnbounded[T](b.opts.capacity)
}

// BuildIndirect creates a QueueIndirect for uintptr values.
func (b *Builder) BuildIndirect() QueueIndirect {
	if b.opts.unbounded {
		return NewUnboundedIndirect(b.opts.capacity)
	}
	return NewBoundedIndirect(b.opts.capacity)
}

// BuildPtr creates a BoundedPtr queue for unsafe.Pointer values.
// Panics if the builder is configured with Unbounded(): there is no
// pointer-flavor unbounded variant — use Unbounded with a pointer type
// parameter instead.
func (b *Builder) BuildPtr() *BoundedPtr {
	if b.opts.unbounded {
		panic("lockless: BuildPtr requires a bounded queue")
	}
	return NewBoundedPtr(b.opts.capacity)
}
