// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

// atomicLockFree reports whether the word-sized atomic operations the
// queues rely on (8-byte cursors, pointer-sized node words) compile to
// native lock-free instructions.
//
// Every architecture supported by the atomix dependency implements aligned
// word atomics as single instructions or LL/SC sequences; none falls back
// to a lock. The per-queue IsLockFree methods surface this as a runtime
// capability query.
const atomicLockFree = true
