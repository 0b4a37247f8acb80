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
	"errors"
	"fmt"

	"github.com/ajroetker/fixpool/hwy"
)

// Contract violations reported by Check and CheckedReduce. The strategies
// themselves never report them.
var (
	ErrEmptyWindow    = errors.New("pool: empty window")
	ErrZeroDivisor    = errors.New("pool: zero window size")
	ErrOverflow       = errors.New("pool: value out of range")
	ErrExcessiveShift = errors.New("pool: shift amount not smaller than accumulator width")
)

// Checker is implemented by strategies with preconditions on their
// parameters. CheckWindow validates a window of n inputs.
type Checker interface {
	CheckWindow(n int) error
}

// Check validates the preconditions of s for a window of n inputs.
func Check[S Strategy[I, A, O], I, A, O hwy.Integers](s S, n int) error {
	if c, ok := any(s).(Checker); ok {
		return c.CheckWindow(n)
	}
	return nil
}

// CheckedReduce reduces window like Reduce, but first runs Check and reports
// ErrOverflow if an input is not representable in A, an addition wraps, or
// the finalized value is not representable in O. Without an error the result
// is exactly Reduce(s, window).
func CheckedReduce[S Strategy[I, A, O], I, A, O hwy.Integers](s S, window []I) (O, error) {
	var zero O
	if err := Check[S, I, A, O](s, len(window)); err != nil {
		return zero, err
	}

	_, adds := any(s).(adder)
	acc := s.Init()
	for i, v := range window {
		if !hwy.FitsIn[I, A](v) {
			return zero, fmt.Errorf("%w: input %d (%d) does not fit a %d-bit accumulator", ErrOverflow, i, v, hwy.BitWidth[A]())
		}
		if adds && hwy.AddOverflows(A(v), acc) {
			return zero, fmt.Errorf("%w: sum wraps a %d-bit accumulator at input %d", ErrOverflow, hwy.BitWidth[A](), i)
		}
		acc = s.Combine(v, acc)
	}

	pre := acc
	if p, ok := any(s).(projector[A]); ok {
		pre = p.project(acc)
	}
	if !hwy.FitsIn[A, O](pre) {
		return zero, fmt.Errorf("%w: result %d does not fit a %d-bit output", ErrOverflow, pre, hwy.BitWidth[O]())
	}
	return s.Finalize(acc), nil
}
