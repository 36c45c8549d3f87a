// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package lockless

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent scenarios: the detector cannot observe
// happens-before edges established through atomix memory orderings and
// reports false positives for correct SPSC use.
const RaceEnabled = true
