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
	"math"

	"github.com/go-highway/simdfizzbuzz/hwy"
)

// IndexMode selects how MaskedIndex finds the PeriodTable entry of a vector.
type IndexMode int

const (
	// IndexRunning advances the index by the lane count mod 15 per vector.
	IndexRunning IndexMode = iota

	// IndexDerived recomputes the index from the element offset since the
	// run started.
	IndexDerived
)

// TailMode selects how MaskedIndex handles the elements after the last full
// vector.
type TailMode int

const (
	// TailScalar classifies the remainder with the scalar path.
	TailScalar TailMode = iota

	// TailMasked classifies the remainder with one partial-lane vector.
	TailMasked
)

// MaskedIndexOption configures a MaskedIndex.
type MaskedIndexOption func(*MaskedIndex)

// WithDerivedIndex makes the kernel use IndexDerived.
func WithDerivedIndex() MaskedIndexOption {
	return func(k *MaskedIndex) { k.index = IndexDerived }
}

// WithMaskedTail makes the kernel use TailMasked.
func WithMaskedTail() MaskedIndexOption {
	return func(k *MaskedIndex) { k.tail = TailMasked }
}

// MaskedIndex classifies one vector per step, blending each with the
// PeriodTable entry selected by a rotating index.
type MaskedIndex struct {
	tag     hwy.Tag
	table   *PeriodTable
	classes *laneClassifier
	iota    hwy.Vec[int32]
	index   IndexMode
	tail    TailMode
}

// NewMaskedIndex builds a MaskedIndex kernel for vectors of tag d.
func NewMaskedIndex(d hwy.Tag, opts ...MaskedIndexOption) *MaskedIndex {
	k := &MaskedIndex{
		tag:     d,
		table:   NewPeriodTable(d),
		classes: newLaneClassifier(d),
		iota:    hwy.Iota[int32](d),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Name returns the registry name of the kernel.
func (k *MaskedIndex) Name() string {
	name := "masked-index"
	if k.index == IndexDerived {
		name += "-derived"
	}
	if k.tail == TailMasked {
		name += "-masked-tail"
	}
	return name
}

// Lanes returns the vector lane count.
func (k *MaskedIndex) Lanes() int {
	return k.table.lanes
}

// rotation tracks which PeriodTable entry applies to the next vector.
type rotation struct {
	anchor int32 // expected lane 0 of the next vector
	r      int   // running index, always residue(anchor)
	base   int   // residue at the last re-seed
	start  int   // element offset of the last re-seed
}

func (rot *rotation) reset(anchor int32, offset int) {
	rot.anchor = anchor
	rot.r = residue(anchor)
	rot.base = rot.r
	rot.start = offset
}

// advance moves to the vector w elements further on at offset. A run that
// wraps past MaxInt32 is re-seeded, since 2^32 is not a multiple of 15.
func (rot *rotation) advance(w, offset int) {
	if rot.anchor > math.MaxInt32-int32(w) {
		rot.reset(rot.anchor+int32(w), offset)
		return
	}
	rot.anchor += int32(w)
	rot.r = (rot.r + w) % Period
}

// derived returns the index of the vector at offset computed from scratch.
func (rot *rotation) derived(offset int) int {
	return (rot.base + offset - rot.start) % Period
}

func (k *MaskedIndex) entryIndex(rot *rotation, offset int) int {
	if k.index == IndexDerived {
		return rot.derived(offset)
	}
	return rot.r
}

// inRun reports whether the first count lanes of v are anchor, anchor+1, ...
// without crossing MaxInt32.
func (k *MaskedIndex) inRun(v hwy.Vec[int32], anchor int32, active hwy.Mask[int32], count int) bool {
	if anchor > math.MaxInt32-int32(count-1) {
		return false
	}
	eq := hwy.Equal(v, hwy.Add(k.iota, hwy.Set(k.tag, anchor)))
	return !hwy.MaskAndNot(eq, active).AnyTrue()
}

// ClassifyInto classifies src into dst. It panics if dst is shorter than src.
func (k *MaskedIndex) ClassifyInto(dst, src []int32) {
	n := checkBuffers(dst, src)
	if n == 0 {
		return
	}
	w := k.table.lanes
	all := hwy.FirstN[int32](k.tag, w)

	var rot rotation
	rot.reset(src[0], 0)

	bound := hwy.LoopBound(k.tag, n)
	i := 0
	for ; i < bound; i += w {
		v := hwy.Load(k.tag, src[i:])
		if k.inRun(v, rot.anchor, all, w) {
			hwy.Store(k.table.entries[k.entryIndex(&rot, i)].Apply(v), dst[i:])
			rot.advance(w, i+w)
			continue
		}
		hwy.Store(k.classes.classify(v), dst[i:])
		rot.reset(v.Lane(w-1)+1, i+w)
	}

	if hwy.IsAligned(k.tag, n) {
		return
	}
	if k.tail == TailScalar {
		scalarRange(dst, src, i)
		return
	}

	count := n - i
	active := hwy.FirstN[int32](k.tag, count)
	v := hwy.MaskLoad(active, src[i:])
	var out hwy.Vec[int32]
	if k.inRun(v, rot.anchor, active, count) {
		out = k.table.entries[k.entryIndex(&rot, i)].Apply(v)
	} else {
		out = k.classes.classify(v)
	}
	hwy.MaskStore(active, out, dst[i:])
}
