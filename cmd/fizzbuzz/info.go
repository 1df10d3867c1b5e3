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
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/go-highway/simdfizzbuzz/hwy"
	"github.com/go-highway/simdfizzbuzz/hwy/contrib/fizzbuzz"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the dispatch level and the kernels it selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printInfo(a.stdout)
			return nil
		},
	}
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Dispatch width: %d bytes (%d lanes of int32)\n", hwy.CurrentWidth(), hwy.MaxLanes())
	fmt.Fprintf(w, "HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())
	fmt.Fprintf(w, "Preferred width: %s\n", fizzbuzz.PreferredWidth())
	fmt.Fprintf(w, "Preferred kernel: %s\n", fizzbuzz.Preferred().Name())
	fmt.Fprintf(w, "Kernels: %s\n", strings.Join(fizzbuzz.KernelNames(), ", "))
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "amd64":
		printAMD64Features(w)
	case "arm64":
		printARM64Features(w)
	}
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasSVE:   %v\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:  %v\n", cpu.ARM64.HasSVE2)
}
