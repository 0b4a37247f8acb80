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

// Reduce folds window with s: Init, one Combine per input in order, then
// Finalize. It is the scalar reference for the other reducers.
//
// A Max window must not be empty; see Check.
//
// Example:
//
//	pool.Reduce(pool.NewAvg[int8, int16, int8](4), []int8{-1, -1, -1, -1}) // -1
func Reduce[S Strategy[I, A, O], I, A, O hwy.Integers](s S, window []I) O {
	acc := s.Init()
	for _, v := range window {
		acc = s.Combine(v, acc)
	}
	return s.Finalize(acc)
}

// ReduceChannels reduces a window of several independent channels stored
// window-major: src holds rows of channels values, so channel c of row r is
// src[r*channels+c]. dst[c] receives the pooled value of channel c.
//
// When I and A are the same type and s implements LaneCombiner, full blocks
// of hwy.MaxLanes[A]() channels are combined with vector operations and the
// remaining channels with Combine. The result equals Reduce applied to each
// channel separately.
//
// Panics if channels <= 0, len(src) is not a multiple of channels, or
// len(dst) < channels.
func ReduceChannels[S Strategy[I, A, O], I, A, O hwy.Integers](s S, src []I, channels int, dst []O) {
	if channels <= 0 {
		panic("pool: ReduceChannels requires channels > 0")
	}
	if len(src)%channels != 0 {
		panic("pool: ReduceChannels source length is not a multiple of channels")
	}
	if len(dst) < channels {
		panic("pool: ReduceChannels destination shorter than channels")
	}
	rows := len(src) / channels

	acc := make([]A, channels)
	init := s.Init()
	for c := range acc {
		acc[c] = init
	}

	// Channels [0, done) are handled by the lane kernel.
	done := 0
	if lc, ok := any(s).(LaneCombiner[A]); ok {
		if same, ok := any(src).([]A); ok {
			done = combineLanes(lc, same, rows, channels, acc)
		}
	}

	if done < channels {
		for r := 0; r < rows; r++ {
			row := src[r*channels : (r+1)*channels]
			for c := done; c < channels; c++ {
				acc[c] = s.Combine(row[c], acc[c])
			}
		}
	}

	for c := 0; c < channels; c++ {
		dst[c] = s.Finalize(acc[c])
	}
}

// combineLanes folds every row into acc for the leading full vector blocks of
// channels and returns the number of channels it covered.
func combineLanes[A hwy.Integers](lc LaneCombiner[A], src []A, rows, channels int, acc []A) int {
	lanes := hwy.MaxLanes[A]()
	c := 0
	for ; c+lanes <= channels; c += lanes {
		v := hwy.Load(acc[c:])
		for r := 0; r < rows; r++ {
			v = lc.CombineLanes(hwy.Load(src[r*channels+c:]), v)
		}
		hwy.Store(v, acc[c:])
	}
	return c
}
