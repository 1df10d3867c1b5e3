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

package fizzbuzz

import "github.com/go-highway/simdfizzbuzz/hwy/contrib/workerpool"

// ClassifyParallel classifies src into dst with kernel k, splitting the work
// across pool. Ranges start on multiples of 15*k.Lanes() elements so only the
// last range has a partial super-step. Each range anchors on its own first
// value, so the output is identical to k.ClassifyInto(dst, src).
//
// It panics if dst is shorter than src.
func ClassifyParallel(pool *workerpool.Pool, k Kernel, dst, src []int32) {
	n := checkBuffers(dst, src)
	pool.ParallelForAligned(n, Period*k.Lanes(), func(start, end int) {
		k.ClassifyInto(dst[start:end], src[start:end])
	})
}
