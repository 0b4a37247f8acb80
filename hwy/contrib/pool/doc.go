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

// Package pool provides fixed-point pooling strategies for quantized tensor
// data.
//
// A strategy reduces one window of integer inputs to a single output through
// three calls:
//
//	acc := s.Init()
//	for _, v := range window {
//	    acc = s.Combine(v, acc)
//	}
//	out := s.Finalize(acc)
//
// Strategies are immutable values. All per-window state lives in the
// accumulator threaded through by the caller, so one strategy value can serve
// any number of windows, including concurrently.
//
// # Strategies
//
//   - Max: Init returns hwy.MinValue of the accumulator type, Combine takes the
//     larger value, Finalize is the identity.
//   - Avg: sums in the accumulator type and divides by the window size,
//     truncating toward zero, before converting to the output type.
//   - Acc: sums in the accumulator type with no normalization.
//   - QuantAvg: sums in the accumulator type and shifts right by a fixed amount
//     (floor division by a power of two) before converting to the output type.
//
// Inputs are converted to the accumulator type with Go integer conversion
// (sign or zero extension, wrapping when narrowing). Additions wrap.
//
// # Preconditions
//
// The strategies perform no runtime checks. A Max window needs at least one
// input, an Avg window size must be non-zero, a QuantAvg shift must be smaller
// than the accumulator width, and the accumulator must be wide enough for the
// window size and input range. Violations produce wrong numbers, not errors.
// Check and CheckedReduce validate these conditions for tests and debugging.
//
// # Reducers
//
//   - Reduce folds a single window; it is the scalar reference.
//   - ReduceChannels reduces a window-major block of several channels at
//     once, combining hwy.MaxLanes channels per vector step when the input and
//     accumulator types match. Results are bit-identical to Reduce.
//   - ReduceWindows reduces independent windows on a bounded set of
//     goroutines.
//
// # Example Usage
//
//	import "github.com/ajroetker/fixpool/hwy/contrib/pool"
//
//	window := []int8{3, -5, 7, 2}
//	pool.Reduce(pool.NewMax[int8](4), window)                      // 7
//	pool.Reduce(pool.NewAvg[int8, int16, int8](4), window)         // 1
//	pool.Reduce(pool.NewAcc[int8, int16](4), window)               // 7
//	pool.Reduce(pool.NewQuantAvg[int8, int16, int8](2), window)    // 1
package pool
