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

import (
	"fmt"

	"github.com/ajroetker/fixpool/hwy"
)

// Avg implements average pooling: the window is summed in A and divided by
// the window size, rounding toward zero.
type Avg[I, A, O hwy.Integers] struct {
	Function[A]
}

// NewAvg returns an average pooling strategy dividing by size.
func NewAvg[I, A, O hwy.Integers](size uint) Avg[I, A, O] {
	return Avg[I, A, O]{Function[A]{size: size}}
}

// Combine returns in + acc computed in A.
func (Avg[I, A, O]) Combine(in I, acc A) A {
	return A(in) + acc
}

// Finalize returns acc / size truncated toward zero, converted to O.
func (a Avg[I, A, O]) Finalize(acc A) O {
	return O(a.project(acc))
}

func (a Avg[I, A, O]) project(acc A) A {
	return hwy.DivTrunc(acc, A(a.size))
}

// CombineLanes returns the lane-wise wrapping sum.
func (Avg[I, A, O]) CombineLanes(in, acc hwy.Vec[A]) hwy.Vec[A] {
	return hwy.Add(in, acc)
}

// CheckWindow reports ErrZeroDivisor for a zero size and ErrOverflow when the
// size is not representable in A.
func (a Avg[I, A, O]) CheckWindow(int) error {
	if a.size == 0 {
		return ErrZeroDivisor
	}
	if !hwy.FitsIn[uint64, A](uint64(a.size)) {
		return fmt.Errorf("%w: window size %d does not fit a %d-bit accumulator", ErrOverflow, a.size, hwy.BitWidth[A]())
	}
	return nil
}

func (Avg[I, A, O]) addsInputs() {}
