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
	"fmt"
	"math"

	"github.com/go-highway/simdfizzbuzz/hwy"
)

// maxSubSteps is the number of vectors per super-step at the narrowest
// supported width (4 lanes: 4+4+4+3).
const maxSubSteps = 4

// FixedOffset classifies one period (15 elements) per super-step using
// ceil(15/lanes) vectors. The blends of every sub-step are precomputed for each
// of the 15 possible starting residues, so on consecutive input the loop does
// no index arithmetic at all: the cursor moves by exactly 15, which keeps the
// residue unchanged.
//
// Since 15 is not a multiple of any supported lane count, the last sub-step is
// restricted to the lanes that end the period. It loads and stores only those
// lanes, so a super-step never reads or writes past its 15 elements.
type FixedOffset struct {
	tag     hwy.Tag
	lanes   int
	steps   int
	last    hwy.Mask[int32]
	offsets [maxSubSteps]hwy.Vec[int32]
	plans   [Period][maxSubSteps]Entry
	classes *laneClassifier

	// accel replaces the portable loop when an architecture-specific kernel
	// is installed at init.
	accel func(dst, src []int32)
}

// NewFixedOffset builds a FixedOffset kernel for vectors of tag d.
// It panics for tags narrower than 128 bits.
func NewFixedOffset(d hwy.Tag) *FixedOffset {
	table := NewPeriodTable(d)
	w := table.lanes
	steps := (Period + w - 1) / w
	if steps > maxSubSteps {
		panic(fmt.Sprintf("fizzbuzz: %d lanes is too narrow for a fixed-offset kernel", w))
	}

	k := &FixedOffset{
		tag:     d,
		lanes:   w,
		steps:   steps,
		last:    hwy.FirstN[int32](d, Period-(steps-1)*w),
		classes: newLaneClassifier(d),
	}
	for s := range steps {
		k.offsets[s] = hwy.Add(hwy.Iota[int32](d), hwy.Set(d, int32(s*w)))
	}
	for r := range Period {
		for s := range steps {
			e := table.entries[(r+s*w)%Period]
			if s == steps-1 {
				e.Select = hwy.MaskAnd(e.Select, k.last)
			}
			k.plans[r][s] = e
		}
	}
	return k
}

// Name returns the registry name of the kernel, e.g. "fixed-offset-256".
func (k *FixedOffset) Name() string {
	return fmt.Sprintf("fixed-offset-%d", k.lanes*32)
}

// Lanes returns the vector lane count.
func (k *FixedOffset) Lanes() int {
	return k.lanes
}

// SubSteps returns the number of vectors per super-step.
func (k *FixedOffset) SubSteps() int {
	return k.steps
}

// ClassifyInto classifies src into dst. It panics if dst is shorter than src.
func (k *FixedOffset) ClassifyInto(dst, src []int32) {
	if k.accel != nil {
		k.accel(dst, src)
		return
	}
	k.classifyBase(dst, src)
}

func (k *FixedOffset) classifyBase(dst, src []int32) {
	n := checkBuffers(dst, src)
	i := 0
	if n >= Period {
		anchor := src[0]
		plan := &k.plans[residue(anchor)]
		for ; i+Period <= n; i += Period {
			run := anchor <= math.MaxInt32-(Period-1)
			base := hwy.Set(k.tag, anchor)
			broken := false

			for s := 0; s < k.steps-1; s++ {
				off := i + s*k.lanes
				v := hwy.Load(k.tag, src[off:])
				if run && hwy.Equal(v, hwy.Add(k.offsets[s], base)).AllTrue() {
					hwy.Store(plan[s].Apply(v), dst[off:])
				} else {
					hwy.Store(k.classes.classify(v), dst[off:])
					broken = true
				}
			}

			// The last sub-step ends the period; its remaining lanes belong
			// to the next super-step.
			s := k.steps - 1
			off := i + s*k.lanes
			v := hwy.MaskLoad(k.last, src[off:])
			eq := hwy.Equal(v, hwy.Add(k.offsets[s], base))
			if run && !hwy.MaskAndNot(eq, k.last).AnyTrue() {
				hwy.MaskStore(k.last, plan[s].Apply(v), dst[off:])
			} else {
				hwy.MaskStore(k.last, k.classes.classify(v), dst[off:])
				broken = true
			}

			next := anchor + Period
			if broken {
				next = v.Lane(Period-1-s*k.lanes) + 1
			}
			if broken || anchor > math.MaxInt32-Period {
				plan = &k.plans[residue(next)]
			}
			anchor = next
		}
	}
	scalarRange(dst, src, i)
}
