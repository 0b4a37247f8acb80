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

package hwy

import "unsafe"

// BitWidth returns the number of bits in T (8, 16, 32 or 64).
func BitWidth[T Integers]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integers]() bool {
	var zero T
	return zero-1 < zero
}

// MinValue returns the smallest value representable in T: -2^(W-1) for a
// signed W-bit type, 0 for an unsigned one.
func MinValue[T Integers]() T {
	if !IsSigned[T]() {
		return 0
	}
	var one T = 1
	// Shifting into the sign bit wraps to the most negative value.
	return one << (BitWidth[T]() - 1)
}

// MaxValue returns the largest value representable in T.
func MaxValue[T Integers]() T {
	return ^MinValue[T]()
}

// ShiftRightArith shifts v right by n bits. For signed T the sign bit is
// replicated into the vacated positions, so the result is floor(v / 2^n)
// (rounding toward negative infinity). For unsigned T the shift is logical.
//
//	ShiftRightArith(int8(-3), 2) == -1
//	ShiftRightArith(int8(3), 2)  == 0
//
// Shift amounts >= BitWidth[T]() yield 0 or -1.
func ShiftRightArith[T Integers](v T, n uint) T {
	return v >> n
}

// DivTrunc divides a by b rounding toward zero.
//
//	DivTrunc(int8(-3), 4) == 0
//	DivTrunc(int8(-7), 4) == -1
//
// DivTrunc(MinValue[T](), -1) wraps to MinValue[T](). A zero divisor panics
// with the runtime's integer divide error.
func DivTrunc[T Integers](a, b T) T {
	return a / b
}

// AddOverflows reports whether a+b wraps around in T.
func AddOverflows[T Integers](a, b T) bool {
	sum := a + b
	if IsSigned[T]() {
		// Overflow iff both operands share a sign that the sum does not.
		return (a < 0) == (b < 0) && (sum < 0) != (a < 0)
	}
	return sum < a
}

// FitsIn reports whether v survives conversion to To unchanged, i.e. the
// conversion neither truncates high bits nor flips the sign.
func FitsIn[From, To Integers](v From) bool {
	t := To(v)
	if From(t) != v {
		return false
	}
	return (v < 0) == (t < 0)
}
