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

// Divisibility by an odd d without division: with c the inverse of d mod 2^32
// and b = floor(MaxInt32/d), a signed n is a multiple of d iff
// uint32(n*c) + b <= 2b.
const (
	inverse3 uint32 = 0xAAAAAAAB
	inverse5 uint32 = 0xCCCCCCCD
	bound3   uint32 = math.MaxInt32 / 3
	bound5   uint32 = math.MaxInt32 / 5
)

// laneClassifier classifies arbitrary (non-consecutive) vectors. It is the
// fallback for vectors that break the expected run.
type laneClassifier struct {
	inv3, bias3, limit3 hwy.Vec[uint32]
	inv5, bias5, limit5 hwy.Vec[uint32]
	fizz, buzz, both    hwy.Vec[int32]
}

func newLaneClassifier(d hwy.Tag) *laneClassifier {
	return &laneClassifier{
		inv3:   hwy.Set(d, inverse3),
		bias3:  hwy.Set(d, bound3),
		limit3: hwy.Set(d, 2*bound3),
		inv5:   hwy.Set(d, inverse5),
		bias5:  hwy.Set(d, bound5),
		limit5: hwy.Set(d, 2*bound5),
		fizz:   hwy.Set(d, Fizz),
		buzz:   hwy.Set(d, Buzz),
		both:   hwy.Set(d, FizzBuzz),
	}
}

func multiplesOf(u, inv, bias, limit hwy.Vec[uint32]) hwy.Mask[int32] {
	q := hwy.Add(hwy.Mul(u, inv), bias)
	return hwy.RebindMask[int32](hwy.LessEqual(q, limit))
}

func (c *laneClassifier) classify(v hwy.Vec[int32]) hwy.Vec[int32] {
	u := hwy.BitCast[uint32](v)
	threes := multiplesOf(u, c.inv3, c.bias3, c.limit3)
	fives := multiplesOf(u, c.inv5, c.bias5, c.limit5)

	out := hwy.IfThenElse(threes, c.fizz, v)
	out = hwy.IfThenElse(fives, c.buzz, out)
	return hwy.IfThenElse(hwy.MaskAnd(threes, fives), c.both, out)
}
