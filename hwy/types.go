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

// Package hwy provides fixed-width integer lane types, bit-exact fixed-point
// helpers and a portable vector abstraction used by the pooling kernels in
// hwy/contrib.
//
// All operations have well defined results for every representable input:
// additions wrap, signed right shifts propagate the sign bit and integer
// division truncates toward zero. The helpers in fixed.go pin these semantics
// down explicitly so the scalar reference code and the lane-parallel code
// produce identical bits.
package hwy

// SignedInts is the set of fixed-width signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is the set of fixed-width unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is the set of all fixed-width integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is the set of element types that can be held in a Vec.
type Lanes interface {
	Integers
}

// Vec is a vector of MaxLanes[T]() elements.
//
// In the portable implementation the lanes live in a slice; a Vec loaded from
// a short slice holds fewer lanes, and binary operations use the shorter of
// their two operands.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes held by the vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Lane returns lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}
