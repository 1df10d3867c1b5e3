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

// Package fizzbuzz maps int32 slices to their FizzBuzz classification using
// vector blends instead of per-element branches.
//
// Multiples of 3 become Fizz, multiples of 5 become Buzz, multiples of both
// become FizzBuzz and every other value is copied through. The sentinels are
// small negative numbers, so inputs are expected to be non-negative.
//
// # Kernels
//
// Every kernel has the same contract and produces identical output:
//   - Scalar: branch-per-element reference, also the tail handler of every
//     vector kernel.
//   - ScalarTable: lookup of a 15-entry sentinel table by v mod 15.
//   - MaskedIndex: one vector per step, blended with the PeriodTable entry of a
//     rotating index that advances by the lane count modulo 15.
//   - FixedOffset: one super-step of ceil(15/lanes) vectors covering exactly 15
//     elements, with the final sub-step masked to the lanes that fit.
//
// The table kernels assume consecutive values (the benchmark input 1..N).
// Every vector is checked against the expected run; a vector that breaks the
// run is classified lane by lane with a branch-free divisibility test and the
// rotation is re-seeded from its last lane, so arbitrary input is still exact.
//
// # Example Usage
//
//	import "github.com/go-highway/simdfizzbuzz/hwy/contrib/fizzbuzz"
//
//	out := fizzbuzz.Classify(fizzbuzz.Sequence(1, 100))
//	for _, v := range out {
//	    fmt.Println(fizzbuzz.Label(v))
//	}
//
// Classify uses the FixedOffset kernel for the widest vector the CPU supports,
// chosen once at package initialization.
//
// # Build Requirements
//
// The kernels are portable Go over the hwy package. Building with
// GOEXPERIMENT=simd on amd64 with AVX2 replaces the 256-bit FixedOffset loop
// with an archsimd implementation.
package fizzbuzz
