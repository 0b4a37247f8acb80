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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"math/rand/v2"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ajroetker/fixpool/hwy"
	"github.com/ajroetker/fixpool/hwy/contrib/pool"
)

type verifyOptions struct {
	windows   int
	windowLen int
	channels  int
	workers   int
	seed      uint64
	quiet     bool
}

func newVerifyCmd() *cobra.Command {
	var opts verifyOptions
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check lane-parallel and concurrent reducers against the scalar reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.windows, "windows", 1000, "number of random blocks to check")
	f.IntVar(&opts.windowLen, "window-len", 9, "inputs per window")
	f.IntVar(&opts.channels, "channels", 64, "channels per block")
	f.IntVar(&opts.workers, "workers", 0, "goroutines for the concurrent reducer (0 = GOMAXPROCS)")
	f.Uint64Var(&opts.seed, "seed", 1, "random seed")
	f.BoolVar(&opts.quiet, "quiet", false, "disable the progress bar")
	return cmd
}

// verifyStats counts channels checked and mismatches for one strategy.
type verifyStats struct {
	checked    int
	mismatches int
}

func runVerify(ctx context.Context, w io.Writer, opts verifyOptions) error {
	if opts.windows <= 0 || opts.windowLen <= 0 || opts.channels <= 0 {
		return errors.New("windows, window-len and channels must be positive")
	}
	// The int8-accumulator average divides by window-len.
	if opts.windowLen > 127 {
		return fmt.Errorf("window-len %d does not fit an int8 divisor", opts.windowLen)
	}

	r := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	size := uint(opts.windowLen)
	shift := uint(bits.Len(size) - 1)

	var bar *progressbar.ProgressBar
	if !opts.quiet {
		bar = progressbar.NewOptions(opts.windows,
			progressbar.OptionSetDescription("verifying"),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
		)
	}

	stats := make([]verifyStats, len(strategyNames))
	src := make([]int8, opts.windowLen*opts.channels)
	cols := make([][]int8, opts.channels)
	for c := range cols {
		cols[c] = make([]int8, opts.windowLen)
	}

	for range opts.windows {
		for i := range src {
			src[i] = int8(r.IntN(256) - 128)
		}
		for row := 0; row < opts.windowLen; row++ {
			for c := range cols {
				cols[c][row] = src[row*opts.channels+c]
			}
		}

		// Each strategy runs once with int8 accumulators, which takes the
		// lane kernel, and once with wider ones.
		checks := []func() (int, error){
			func() (int, error) { return compare(ctx, pool.NewMax[int8](size), src, cols, opts.workers) },
			func() (int, error) { return compare(ctx, pool.NewAvg[int8, int8, int8](size), src, cols, opts.workers) },
			func() (int, error) { return compare(ctx, pool.NewAcc[int8, int8](size), src, cols, opts.workers) },
			func() (int, error) {
				return compare(ctx, pool.NewQuantAvg[int8, int8, int8](shift), src, cols, opts.workers)
			},
		}
		widened := []func() (int, error){
			func() (int, error) { return compare(ctx, pool.NewMax[int16](size), widen(src), widenAll(cols), opts.workers) },
			func() (int, error) { return compare(ctx, pool.NewAvg[int8, int32, int8](size), src, cols, opts.workers) },
			func() (int, error) { return compare(ctx, pool.NewAcc[int8, int32](size), src, cols, opts.workers) },
			func() (int, error) {
				return compare(ctx, pool.NewQuantAvg[int8, int32, int8](shift), src, cols, opts.workers)
			},
		}
		for i := range stats {
			for _, check := range []func() (int, error){checks[i], widened[i]} {
				bad, err := check()
				if err != nil {
					return err
				}
				stats[i].checked += opts.channels
				stats[i].mismatches += bad
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(w)
	}

	return report(w, stats)
}

// compare reduces every channel with ReduceChannels, ReduceWindows and Reduce
// and returns the number of channels where they disagree.
func compare[S pool.Strategy[I, A, O], I, A, O hwy.Integers](ctx context.Context, s S, src []I, cols [][]I, workers int) (int, error) {
	channels := len(cols)
	lanes := make([]O, channels)
	pool.ReduceChannels[S, I, A, O](s, src, channels, lanes)

	concurrent := make([]O, channels)
	if err := pool.ReduceWindows[S, I, A, O](ctx, s, cols, concurrent, workers); err != nil {
		return 0, err
	}

	bad := 0
	for c, col := range cols {
		ref := pool.Reduce[S, I, A, O](s, col)
		if lanes[c] != ref || concurrent[c] != ref {
			bad++
		}
	}
	return bad, nil
}

func widen(src []int8) []int16 {
	out := make([]int16, len(src))
	for i, v := range src {
		out[i] = int16(v)
	}
	return out
}

func widenAll(cols [][]int8) [][]int16 {
	out := make([][]int16, len(cols))
	for i, col := range cols {
		out[i] = widen(col)
	}
	return out
}

func report(w io.Writer, stats []verifyStats) error {
	table := tablewriter.NewWriter(w)
	table.Header("Strategy", "Channels", "Mismatches")
	total := 0
	for i, st := range stats {
		result := green.Sprint("0")
		if st.mismatches > 0 {
			result = red.Sprint(st.mismatches)
		}
		if err := table.Append(title(strategyNames[i]), fmt.Sprint(st.checked), result); err != nil {
			return err
		}
		total += st.mismatches
	}
	if err := table.Render(); err != nil {
		return err
	}
	if total > 0 {
		return fmt.Errorf("%d channels disagree with the scalar reference", total)
	}
	bold.Fprintln(w, "all reducers agree")
	return nil
}
