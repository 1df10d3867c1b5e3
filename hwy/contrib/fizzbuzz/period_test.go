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

	"github.com/go-highway/simdfizzbuzz/hwy"
)

func TestPeriodTableEntries(t *testing.T) {
	for _, d := range []hwy.Tag{hwy.FixedTag128{}, hwy.FixedTag256{}, hwy.FixedTag512{}} {
		table := NewPeriodTable(d)
		w := table.Lanes()
		if w != hwy.NumLanes(d) {
			t.Fatalf("Lanes: got %d, want %d", w, hwy.NumLanes(d))
		}
		for k := range Period {
			e := table.Entry(k)
			for j := range w {
				want := periodSentinels[(k+j)%Period]
				selected := e.Select.GetBit(j)
				if selected != (want != 0) {
					t.Errorf("%s entry %d: lane %d: selected %v, want %v", d.Name(), k, j, selected, want != 0)
				}
				if selected && e.Replace.Lane(j) != want {
					t.Errorf("%s entry %d: lane %d: got %d, want %d", d.Name(), k, j, e.Replace.Lane(j), want)
				}
			}
		}
	}
}

func TestPeriodTableFirstEntry(t *testing.T) {
	// Entry 0 on 4 lanes covers 0, 1, 2, 3.
	e := NewPeriodTable(hwy.FixedTag128{}).Entry(0)
	if got := e.Select.Bits(); got != 0b1001 {
		t.Errorf("Select: got %04b, want 1001", got)
	}
	if got := e.Replace.Lane(0); got != FizzBuzz {
		t.Errorf("Replace: lane 0: got %d, want %d", got, FizzBuzz)
	}
	if got := e.Replace.Lane(3); got != Fizz {
		t.Errorf("Replace: lane 3: got %d, want %d", got, Fizz)
	}
}

func TestPeriodTableIdempotent(t *testing.T) {
	for _, d := range []hwy.Tag{hwy.FixedTag128{}, hwy.FixedTag256{}, hwy.FixedTag512{}} {
		a := NewPeriodTable(d)
		b := NewPeriodTable(d)
		if *a != *b {
			t.Errorf("%s: tables built twice differ", d.Name())
		}
	}
}

func TestEntryApply(t *testing.T) {
	d := hwy.FixedTag256{}
	table := NewPeriodTable(d)
	for k := range Period {
		v := hwy.Load(d, Sequence(int32(k+Period*10), 8))
		got := table.Entry(k)
		out := got.Apply(v)
		for j := range 8 {
			if want := Expected(v.Lane(j)); out.Lane(j) != want {
				t.Errorf("Apply(entry %d): lane %d: got %d, want %d", k, j, out.Lane(j), want)
			}
		}
	}
}

func TestMultiplesMask(t *testing.T) {
	tests := []struct {
		k, m, lanes int
		want        uint32
	}{
		{0, 3, 8, 0b01001001},
		{1, 3, 8, 0b00100100},
		{2, 3, 8, 0b10010010},
		{0, 5, 16, 0b1000010000100001},
		{4, 5, 8, 0b01000010},
		{14, 5, 4, 0b0010},
	}
	for _, tt := range tests {
		if got := multiplesMask(tt.k, tt.m, tt.lanes); got != tt.want {
			t.Errorf("multiplesMask(%d, %d, %d): got %b, want %b", tt.k, tt.m, tt.lanes, got, tt.want)
		}
	}
}
