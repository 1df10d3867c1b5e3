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

//go:build amd64 && goexperiment.simd

package fizzbuzz

import (
	"math"
	"simd/archsimd"

	"github.com/go-highway/simdfizzbuzz/hwy"
)

// avx2Plan holds the two sub-steps of a 256-bit super-step for one starting
// residue. Select lanes are all ones, the others zero.
type avx2Plan struct {
	sel0, rep0 archsimd.Int32x8
	sel1, rep1 archsimd.Int32x8
}

type avx2FixedOffset struct {
	base  *FixedOffset
	iota0 archsimd.Int32x8
	iota1 archsimd.Int32x8
	plans [Period]avx2Plan
}

func selectVec(m hwy.Mask[int32]) archsimd.Int32x8 {
	var lanes [8]int32
	for i := range lanes {
		if m.GetBit(i) {
			lanes[i] = -1
		}
	}
	return archsimd.LoadInt32x8Slice(lanes[:])
}

func newAVX2FixedOffset(k *FixedOffset) *avx2FixedOffset {
	a := &avx2FixedOffset{
		base:  k,
		iota0: archsimd.LoadInt32x8Slice([]int32{0, 1, 2, 3, 4, 5, 6, 7}),
		iota1: archsimd.LoadInt32x8Slice([]int32{8, 9, 10, 11, 12, 13, 14, 15}),
	}
	for r := range Period {
		p := &k.plans[r]
		a.plans[r] = avx2Plan{
			sel0: selectVec(p[0].Select),
			rep0: archsimd.LoadInt32x8Slice(p[0].Replace.Data()),
			sel1: selectVec(p[1].Select),
			rep1: archsimd.LoadInt32x8Slice(p[1].Replace.Data()),
		}
	}
	return a
}

// blend returns rep in the lanes set in sel and v elsewhere.
func blend(v, rep, sel archsimd.Int32x8) archsimd.Int32x8 {
	return v.Xor(v.Xor(rep).And(sel))
}

// classify runs the 256-bit super-step on archsimd registers. The second
// sub-step covers 7 elements and goes through a stack buffer so no load or
// store touches memory past the period.
func (a *avx2FixedOffset) classify(dst, src []int32) {
	n := checkBuffers(dst, src)
	i := 0
	if n >= Period {
		var tail [8]int32
		anchor := src[0]
		plan := &a.plans[residue(anchor)]
		for ; i+Period <= n; i += Period {
			if anchor <= math.MaxInt32-(Period-1) {
				base := archsimd.BroadcastInt32x8(anchor)
				v0 := archsimd.LoadInt32x8Slice(src[i:])
				copy(tail[:Period-8], src[i+8:i+Period])
				tail[7] = anchor + Period
				v1 := archsimd.LoadInt32x8Slice(tail[:])

				if v0.Equal(a.iota0.Add(base)).ToBits() == 0xFF &&
					v1.Equal(a.iota1.Add(base)).ToBits() == 0xFF {
					blend(v0, plan.rep0, plan.sel0).StoreSlice(dst[i:])
					blend(v1, plan.rep1, plan.sel1).StoreSlice(tail[:])
					copy(dst[i+8:i+Period], tail[:Period-8])

					next := anchor + Period
					if anchor > math.MaxInt32-Period {
						plan = &a.plans[residue(next)]
					}
					anchor = next
					continue
				}
			}

			anchor = src[i+Period-1] + 1
			a.base.classifyBase(dst[i:i+Period], src[i:i+Period])
			plan = &a.plans[residue(anchor)]
		}
	}
	scalarRange(dst, src, i)
}
