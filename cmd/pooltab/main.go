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

// Command pooltab reduces integer windows with the fixed-point pooling
// strategies and prints the results, or verifies that the lane-parallel and
// concurrent reducers agree bit-for-bit with the scalar reference.
//
// Usage:
//
//	pooltab table --bits 8 --size 4 --shift 2 -- 3 -5 7 2
//	pooltab verify --windows 10000 --window-len 9 --channels 64
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

var strategyNames = []string{"max", "average", "accumulate", "quantized average"}

// title formats a strategy name for display.
func title(name string) string {
	return cases.Title(language.English).String(name)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pooltab",
		Short:         "Fixed-point pooling strategy calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTableCmd(), newVerifyCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, red.Sprint("error:"), err)
		os.Exit(1)
	}
}
