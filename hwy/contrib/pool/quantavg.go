// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pool

import "github.com/ajroetker/fixpool/hwy"

// QuantAvg implements average pooling with a right shift in place of the
// division. The sum is shifted right by the configured amount, which floors
// toward negative infinity for signed accumulators, and then converted to O.
//
// For a window of 2^shift inputs this approximates Avg; the two differ by one
// on negative sums that are not multiples of 2^shift.
type QuantAvg[I, A, O hwy.Integers] struct {
	Function[A]
}

// NewQuantAvg returns a shift-based average strategy.
func NewQuantAvg[I, A, O hwy.Integers](shift uint) QuantAvg[I, A, O] {
	return QuantAvg[I, A, O]{Function[A]{size: shift}}
}

// Combine returns in + acc computed in A. Wraparound is not guarded.
func (QuantAvg[I, A, O]) Combine(in I, acc A) A {
	return A(in) + acc
}

// Finalize returns acc >> shift converted to O.
func (q QuantAvg[I, A, O]) Finalize(acc A) O {
	return O(q.project(acc))
}

func (q QuantAvg[I, A, O]) project(acc A) A {
	return hwy.ShiftRightArith(acc, q.size)
}

// CombineLanes returns the lane-wise wrapping sum.
func (QuantAvg[I, A, O]) CombineLanes(in, acc hwy.Vec[A]) hwy.Vec[A] {
	return hwy.Add(in, acc)
}

// CheckWindow reports ErrExcessiveShift when the shift is not smaller than
// the accumulator width.
func (q QuantAvg[I, A, O]) CheckWindow(int) error {
	if q.size >= hwy.BitWidth[A]() {
		return ErrExcessiveShift
	}
	return nil
}

func (QuantAvg[I, A, O]) addsInputs() {}
