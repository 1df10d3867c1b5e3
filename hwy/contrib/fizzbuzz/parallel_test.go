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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-highway/simdfizzbuzz/hwy/contrib/workerpool"
)

func TestClassifyParallel(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 14, 15, 239, 240, 1000, 10007} {
		src := Sequence(-7, n)
		want := reference(src)
		for _, k := range Kernels() {
			dst := make([]int32, n)
			ClassifyParallel(pool, k, dst, src)
			assert.Equal(t, want, dst, "%s n=%d", k.Name(), n)
		}
	}
}

func TestClassifyParallelClosedPool(t *testing.T) {
	pool := workerpool.New(2)
	pool.Close()

	src := Sequence(1, 500)
	dst := make([]int32, len(src))
	ClassifyParallel(pool, Preferred(), dst, src)
	assert.Equal(t, reference(src), dst)
}

func TestClassifyParallelPanicsOnShortDst(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	assert.Panics(t, func() {
		ClassifyParallel(pool, Preferred(), make([]int32, 3), Sequence(1, 4))
	})
}
