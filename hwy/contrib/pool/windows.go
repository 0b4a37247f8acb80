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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/fixpool/hwy"
)

// ReduceWindows reduces each windows[i] into dst[i] using up to workers
// goroutines (GOMAXPROCS when workers <= 0). Windows are split into
// contiguous chunks, one per goroutine; no accumulator is shared between
// windows.
//
// Returns ctx.Err() if the context is cancelled before all windows are
// reduced; dst is then partially written.
//
// Panics if len(dst) < len(windows).
func ReduceWindows[S Strategy[I, A, O], I, A, O hwy.Integers](ctx context.Context, s S, windows [][]I, dst []O, workers int) error {
	if len(dst) < len(windows) {
		panic("pool: ReduceWindows destination shorter than windows")
	}
	if len(windows) == 0 {
		return ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(windows))
	chunk := (len(windows) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(windows); start += chunk {
		end := min(start+chunk, len(windows))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				dst[i] = Reduce[S, I, A, O](s, windows[i])
			}
			return nil
		})
	}
	return g.Wait()
}
