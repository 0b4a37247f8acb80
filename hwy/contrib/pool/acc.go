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

// Acc implements accumulation pooling: a running sum in A with no
// normalization. The output type is the accumulator type.
type Acc[I, A hwy.Integers] struct {
	Function[A]
}

// NewAcc returns an accumulation strategy. size is unused.
func NewAcc[I, A hwy.Integers](size uint) Acc[I, A] {
	return Acc[I, A]{Function[A]{size: size}}
}

// Combine returns in + acc computed in A.
func (Acc[I, A]) Combine(in I, acc A) A {
	return A(in) + acc
}

// Finalize returns acc unchanged.
func (Acc[I, A]) Finalize(acc A) A {
	return acc
}

// CombineLanes returns the lane-wise wrapping sum.
func (Acc[I, A]) CombineLanes(in, acc hwy.Vec[A]) hwy.Vec[A] {
	return hwy.Add(in, acc)
}

func (Acc[I, A]) addsInputs() {}
