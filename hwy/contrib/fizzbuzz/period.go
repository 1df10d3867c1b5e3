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

import "github.com/go-highway/simdfizzbuzz/hwy"

// Entry is one row of a PeriodTable: the lanes to replace and the values to
// replace them with.
type Entry struct {
	Select  hwy.Mask[int32]
	Replace hwy.Vec[int32]
}

// Apply blends e into v.
func (e *Entry) Apply(v hwy.Vec[int32]) hwy.Vec[int32] {
	return hwy.IfThenElse(e.Select, e.Replace, v)
}

// PeriodTable holds, for each residue k in [0, 15), the blend for a vector of
// consecutive values whose lane 0 is congruent to k mod 15. Lane j of entry k
// therefore describes the value class of k+j.
//
// A PeriodTable is immutable after NewPeriodTable returns and may be shared
// between goroutines.
type PeriodTable struct {
	lanes   int
	entries [Period]Entry
}

// NewPeriodTable builds the table for vectors of tag d.
func NewPeriodTable(d hwy.Tag) *PeriodTable {
	t := &PeriodTable{lanes: hwy.NumLanes(d)}

	zero := hwy.Zero[int32](d)
	fizz := hwy.Set(d, Fizz)
	buzz := hwy.Set(d, Buzz)
	fizzBuzz := hwy.Set(d, FizzBuzz)

	for k := range Period {
		threes := hwy.MaskFromBits[int32](d, multiplesMask(k, 3, t.lanes))
		fives := hwy.MaskFromBits[int32](d, multiplesMask(k, 5, t.lanes))
		both := hwy.MaskAnd(threes, fives)

		// FizzBuzz is blended last so it overrides Fizz and Buzz.
		replace := hwy.IfThenElse(threes, fizz, zero)
		replace = hwy.IfThenElse(fives, buzz, replace)
		replace = hwy.IfThenElse(both, fizzBuzz, replace)

		t.entries[k] = Entry{
			Select:  hwy.MaskOr(threes, fives),
			Replace: replace,
		}
	}
	return t
}

// multiplesMask sets bit j for every lane j where k+j is a multiple of m.
func multiplesMask(k, m, lanes int) uint32 {
	var bits uint32
	for j := (m - k%m) % m; j < lanes; j += m {
		bits |= 1 << uint(j)
	}
	return bits
}

// Lanes returns the lane count the table was built for.
func (t *PeriodTable) Lanes() int {
	return t.lanes
}

// Entry returns the entry for residue k.
func (t *PeriodTable) Entry(k int) Entry {
	return t.entries[k]
}
