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

// Command fizzbuzz prints, verifies and benchmarks the SIMD FizzBuzz kernels.
//
// Usage:
//
//	fizzbuzz print --n 100
//	fizzbuzz verify --max-len 512 --kernel all
//	fizzbuzz bench --n 1048576 --iterations 200 --kernel scalar,fixed-offset-256
//	fizzbuzz info
//
// Every flag can also be set through the environment, e.g. FIZZBUZZ_N=30 or
// FIZZBUZZ_LOG_FORMAT=json. Set HWY_NO_SIMD=1 to force the scalar dispatch level.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
