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

// Strategy is the contract every pooling strategy implements.
//
// I is the input type, A the accumulator type and O the output type. Size
// returns the construction-time parameter: unused by Max and Acc, the divisor
// for Avg and the shift amount for QuantAvg.
type Strategy[I, A, O hwy.Integers] interface {
	// Init returns the identity element of the reduction.
	Init() A
	// Combine folds one input into the accumulator.
	Combine(in I, acc A) A
	// Finalize projects the accumulator to the output type.
	Finalize(acc A) O
	// Size returns the strategy parameter.
	Size() uint
}

// LaneCombiner is implemented by strategies whose Combine step has a vector
// form over accumulator-typed lanes. CombineLanes must produce, lane for
// lane, the same bits as Combine.
type LaneCombiner[A hwy.Integers] interface {
	CombineLanes(in, acc hwy.Vec[A]) hwy.Vec[A]
}

// Function is the base of all strategies. It carries the size parameter and
// a zero Init; Combine and Finalize are supplied by the embedding strategy.
type Function[A hwy.Integers] struct {
	size uint
}

// Init returns zero.
func (f Function[A]) Init() A {
	return 0
}

// Size returns the strategy parameter.
func (f Function[A]) Size() uint {
	return f.size
}

// adder marks strategies whose Combine is a wrapping addition.
type adder interface {
	addsInputs()
}

// projector is implemented by strategies whose Finalize transforms the
// accumulator before converting it to the output type. project returns the
// value just before that conversion.
type projector[A hwy.Integers] interface {
	project(acc A) A
}
