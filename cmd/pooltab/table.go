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
	"fmt"
	"io"
	"math/bits"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ajroetker/fixpool/hwy"
	"github.com/ajroetker/fixpool/hwy/contrib/pool"
)

type tableOptions struct {
	bits     int
	unsigned bool
	size     uint
	shift    int
}

func newTableCmd() *cobra.Command {
	var opts tableOptions
	cmd := &cobra.Command{
		Use:   "table [flags] -- v1 v2 ...",
		Short: "Reduce one window with every strategy",
		Long: "Reduce one window of integers with every pooling strategy and print\n" +
			"the initial accumulator, the pooled output and whether the window\n" +
			"violates a strategy precondition (overflow, zero divisor, ...).",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd.OutOrStdout(), opts, args)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.bits, "bits", 8, "input width in bits (8, 16 or 32); the accumulator is twice as wide")
	f.BoolVar(&opts.unsigned, "unsigned", false, "treat inputs as unsigned")
	f.UintVar(&opts.size, "size", 0, "average divisor (default: number of inputs)")
	f.IntVar(&opts.shift, "shift", -1, "quantized average shift (default: floor(log2(size)))")
	return cmd
}

func runTable(w io.Writer, opts tableOptions, args []string) error {
	size := opts.size
	if size == 0 {
		size = uint(len(args))
	}
	shift := uint(bits.Len(size) - 1)
	if opts.shift >= 0 {
		shift = uint(opts.shift)
	}

	switch {
	case opts.bits == 8 && !opts.unsigned:
		return tableFor[int8, int16](w, args, size, shift)
	case opts.bits == 8:
		return tableFor[uint8, uint16](w, args, size, shift)
	case opts.bits == 16 && !opts.unsigned:
		return tableFor[int16, int32](w, args, size, shift)
	case opts.bits == 16:
		return tableFor[uint16, uint32](w, args, size, shift)
	case opts.bits == 32 && !opts.unsigned:
		return tableFor[int32, int64](w, args, size, shift)
	case opts.bits == 32:
		return tableFor[uint32, uint64](w, args, size, shift)
	default:
		return fmt.Errorf("unsupported width %d: want 8, 16 or 32", opts.bits)
	}
}

// parseWindow parses decimal arguments into I, rejecting values outside its
// range.
func parseWindow[I hwy.Integers](args []string) ([]I, error) {
	window := make([]I, len(args))
	bitSize := int(hwy.BitWidth[I]())
	for i, arg := range args {
		if hwy.IsSigned[I]() {
			v, err := strconv.ParseInt(arg, 10, bitSize)
			if err != nil {
				return nil, fmt.Errorf("input %d: %w", i, err)
			}
			window[i] = I(v)
			continue
		}
		v, err := strconv.ParseUint(arg, 10, bitSize)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		window[i] = I(v)
	}
	return window, nil
}

func tableFor[I, A hwy.Integers](w io.Writer, args []string, size, shift uint) error {
	window, err := parseWindow[I](args)
	if err != nil {
		return err
	}

	rows := [][3]string{
		summarize[pool.Max[I], I, I, I](pool.NewMax[I](size), window),
		summarize[pool.Avg[I, A, I], I, A, I](pool.NewAvg[I, A, I](size), window),
		summarize[pool.Acc[I, A], I, A, A](pool.NewAcc[I, A](size), window),
		summarize[pool.QuantAvg[I, A, I], I, A, I](pool.NewQuantAvg[I, A, I](shift), window),
	}

	bold.Fprintf(w, "window %v  size=%d shift=%d  %d-bit accumulator\n", window, size, shift, hwy.BitWidth[A]())
	table := tablewriter.NewWriter(w)
	table.Header("Strategy", "Init", "Output", "Check")
	for i, r := range rows {
		if err := table.Append(title(strategyNames[i]), r[0], r[1], r[2]); err != nil {
			return err
		}
	}
	return table.Render()
}

// summarize returns the formatted Init value, the pooled output and the
// CheckedReduce verdict.
func summarize[S pool.Strategy[I, A, O], I, A, O hwy.Integers](s S, window []I) [3]string {
	verdict := green.Sprint("ok")
	if _, err := pool.CheckedReduce[S, I, A, O](s, window); err != nil {
		verdict = red.Sprint(err)
	}
	return [3]string{
		fmt.Sprint(s.Init()),
		fmt.Sprint(pool.Reduce[S, I, A, O](s, window)),
		verdict,
	}
}
