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

// Max implements max pooling. Input, accumulator and output share type T.
type Max[T hwy.Integers] struct {
	Function[T]
}

// NewMax returns a max pooling strategy. size is carried for uniformity with
// the other strategies and is otherwise unused.
func NewMax[T hwy.Integers](size uint) Max[T] {
	return Max[T]{Function[T]{size: size}}
}

// Init returns the minimum representable value of T, so the first Combine
// always yields the first input.
func (Max[T]) Init() T {
	return hwy.MinValue[T]()
}

// Combine returns the larger of in and acc.
func (Max[T]) Combine(in, acc T) T {
	return max(in, acc)
}

// Finalize returns acc unchanged.
func (Max[T]) Finalize(acc T) T {
	return acc
}

// CombineLanes returns the lane-wise maximum.
func (Max[T]) CombineLanes(in, acc hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Max(in, acc)
}

// CheckWindow reports ErrEmptyWindow for n == 0; Finalize would return the
// Init sentinel rather than an input.
func (Max[T]) CheckWindow(n int) error {
	if n == 0 {
		return ErrEmptyWindow
	}
	return nil
}
