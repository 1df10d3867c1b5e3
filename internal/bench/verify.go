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

package bench

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/go-highway/simdfizzbuzz/hwy/contrib/fizzbuzz"
)

// VerifyStarts are the first values of the runs Verify checks. They cover
// every residue at the start of a run, negatives, and the int32 ends.
var VerifyStarts = []int32{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
	-1, -37, 1 << 20,
	math.MaxInt32 - 100, math.MinInt32,
}

// Verify checks every kernel against the scalar reference on runs of every
// length in [0, maxLen] starting at each of starts. Kernels are checked
// concurrently; the first mismatch cancels the rest and is returned wrapped in
// ErrMismatch.
func Verify(ctx context.Context, kernels []fizzbuzz.Kernel, maxLen int, starts []int32) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Verify")
	defer span.End()
	span.SetAttributes(
		attribute.Int("kernels", len(kernels)),
		attribute.Int("max_len", maxLen),
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, k := range kernels {
		g.Go(func() error {
			return verifyKernel(ctx, k, maxLen, starts)
		})
	}
	return g.Wait()
}

func verifyKernel(ctx context.Context, k fizzbuzz.Kernel, maxLen int, starts []int32) error {
	want := make([]int32, maxLen)
	got := make([]int32, maxLen)
	for _, start := range starts {
		src := fizzbuzz.Sequence(start, maxLen)
		fizzbuzz.Scalar(want, src)
		for n := 0; n <= maxLen; n++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			k.ClassifyInto(got[:n], src[:n])
			for i := range n {
				if got[i] != want[i] {
					return fmt.Errorf("%w: %s with start %d, length %d: index %d (value %d): got %s, want %s",
						ErrMismatch, k.Name(), start, n, i, src[i],
						fizzbuzz.Label(got[i]), fizzbuzz.Label(want[i]))
				}
			}
		}
	}
	return nil
}
