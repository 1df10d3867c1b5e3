package hwy

import (
	"math"
	"testing"
)

var testTags = []Tag{FixedTag128{}, FixedTag256{}, FixedTag512{}}

func TestNumLanes(t *testing.T) {
	cases := []struct {
		tag  Tag
		want int
	}{
		{FixedTag128{}, 4},
		{FixedTag256{}, 8},
		{FixedTag512{}, 16},
	}
	for _, c := range cases {
		if got := NumLanes(c.tag); got != c.want {
			t.Errorf("NumLanes(%s): got %d, want %d", c.tag.Name(), got, c.want)
		}
	}
}

func TestLoad(t *testing.T) {
	data := make([]int32, 20)
	for i := range data {
		data[i] = int32(i * 3)
	}
	for _, d := range testTags {
		v := Load(d, data[1:])
		if v.NumLanes() != NumLanes(d) {
			t.Fatalf("Load(%s): got %d lanes, want %d", d.Name(), v.NumLanes(), NumLanes(d))
		}
		for i := 0; i < v.NumLanes(); i++ {
			if v.Lane(i) != data[i+1] {
				t.Errorf("Load(%s): lane %d: got %v, want %v", d.Name(), i, v.Lane(i), data[i+1])
			}
		}
	}
}

func TestLoadShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Load of a short slice did not panic")
		}
	}()
	Load(FixedTag256{}, []int32{1, 2, 3})
}

func TestStore(t *testing.T) {
	d := FixedTag128{}
	dst := []int32{9, 9, 9, 9, 9}
	Store(Set(d, int32(7)), dst)
	want := []int32{7, 7, 7, 7, 9}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Store: index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSet(t *testing.T) {
	v := Set(FixedTag256{}, int32(42))

	if v.NumLanes() != 8 {
		t.Errorf("Set created %d lanes, want 8", v.NumLanes())
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != 42 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.Lane(i), 42)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32](FixedTag512{})

	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.Lane(i))
		}
	}
}

func TestIota(t *testing.T) {
	v := Iota[int32](FixedTag512{})
	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != int32(i) {
			t.Errorf("Iota: lane %d: got %v, want %v", i, v.Lane(i), i)
		}
	}
}

func TestAdd(t *testing.T) {
	d := FixedTag128{}
	result := Add(Iota[int32](d), Set(d, int32(10)))

	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != int32(10+i) {
			t.Errorf("Add: lane %d: got %v, want %v", i, result.Lane(i), 10+i)
		}
	}
}

func TestAddWraps(t *testing.T) {
	d := FixedTag128{}
	result := Add(Set(d, int32(math.MaxInt32)), Set(d, int32(1)))
	if result.Lane(0) != math.MinInt32 {
		t.Errorf("Add: got %v, want %v", result.Lane(0), int32(math.MinInt32))
	}
}

func TestMul(t *testing.T) {
	d := FixedTag256{}
	result := Mul(Set(d, uint32(6)), Set(d, uint32(0xAAAAAAAB)))

	// 6 * inverse(3) == 2 (mod 2^32)
	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != 2 {
			t.Errorf("Mul: lane %d: got %v, want 2", i, result.Lane(i))
		}
	}
}

func TestEqual(t *testing.T) {
	d := FixedTag128{}
	a := Load(d, []int32{1, 2, 3, 4})
	b := Load(d, []int32{1, 0, 3, 0})
	m := Equal(a, b)
	if m.Bits() != 0b0101 {
		t.Errorf("Equal: got bits %04b, want 0101", m.Bits())
	}
}

func TestLessEqual(t *testing.T) {
	d := FixedTag128{}
	signed := LessEqual(Load(d, []int32{-1, 2, 3, 5}), Set(d, int32(3)))
	if signed.Bits() != 0b0111 {
		t.Errorf("LessEqual signed: got bits %04b, want 0111", signed.Bits())
	}
	unsigned := LessEqual(Load(d, []uint32{math.MaxUint32, 2, 3, 5}), Set(d, uint32(3)))
	if unsigned.Bits() != 0b0110 {
		t.Errorf("LessEqual unsigned: got bits %04b, want 0110", unsigned.Bits())
	}
}

func TestIfThenElse(t *testing.T) {
	d := FixedTag256{}
	mask := MaskFromBits[int32](d, 0b10100101)
	result := IfThenElse(mask, Set(d, int32(1)), Set(d, int32(2)))

	want := []int32{1, 2, 1, 2, 2, 1, 2, 1}
	for i, w := range want {
		if result.Lane(i) != w {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, result.Lane(i), w)
		}
	}
}

func TestMaskLoadStore(t *testing.T) {
	d := FixedTag256{}
	mask := FirstN[int32](d, 3)

	// Only the active lanes may be touched, so a 3-element source is enough.
	v := MaskLoad(mask, []int32{7, 8, 9})
	want := []int32{7, 8, 9, 0, 0, 0, 0, 0}
	for i, w := range want {
		if v.Lane(i) != w {
			t.Errorf("MaskLoad: lane %d: got %v, want %v", i, v.Lane(i), w)
		}
	}

	dst := []int32{-1, -1, -1}
	MaskStore(mask, Set(d, int32(5)), dst)
	for i := range dst {
		if dst[i] != 5 {
			t.Errorf("MaskStore: index %d: got %v, want 5", i, dst[i])
		}
	}
}

func TestMaskOps(t *testing.T) {
	d := FixedTag128{}
	a := MaskFromBits[int32](d, 0b0011)
	b := MaskFromBits[int32](d, 0b0110)

	if got := MaskOr(a, b).Bits(); got != 0b0111 {
		t.Errorf("MaskOr: got %04b, want 0111", got)
	}
	if got := MaskAnd(a, b).Bits(); got != 0b0010 {
		t.Errorf("MaskAnd: got %04b, want 0010", got)
	}
	if got := MaskAndNot(a, b).Bits(); got != 0b0100 {
		t.Errorf("MaskAndNot: got %04b, want 0100", got)
	}
	if got := MaskFromBits[int32](d, 0xFF).Bits(); got != 0b1111 {
		t.Errorf("MaskFromBits: got %04b, want 1111 (extra bits dropped)", got)
	}
}

func TestMaskQueries(t *testing.T) {
	d := FixedTag256{}
	full := MaskFromBits[int32](d, 0xFF)
	if !full.AllTrue() || full.CountTrue() != 8 {
		t.Errorf("full mask: AllTrue=%v CountTrue=%d", full.AllTrue(), full.CountTrue())
	}
	none := MaskFromBits[int32](d, 0)
	if none.AnyTrue() || none.AllTrue() {
		t.Error("empty mask reported active lanes")
	}
	m := MaskFromBits[int32](d, 0b100)
	if !m.GetBit(2) || m.GetBit(1) || m.GetBit(8) || m.GetBit(-1) {
		t.Error("GetBit returned wrong lane state")
	}
}

func TestRebindAndBitCast(t *testing.T) {
	d := FixedTag128{}
	v := Load(d, []int32{-1, 0, 1, math.MinInt32})
	u := BitCast[uint32](v)
	want := []uint32{math.MaxUint32, 0, 1, 1 << 31}
	for i, w := range want {
		if u.Lane(i) != w {
			t.Errorf("BitCast: lane %d: got %v, want %v", i, u.Lane(i), w)
		}
	}

	m := RebindMask[int32](Equal(u, Set(d, uint32(0))))
	if m.Bits() != 0b0010 || m.NumLanes() != 4 {
		t.Errorf("RebindMask: got bits %04b lanes %d", m.Bits(), m.NumLanes())
	}
}

func TestOpsDoNotAllocate(t *testing.T) {
	d := FixedTag256{}
	src := make([]int32, 8)
	dst := make([]int32, 8)
	allocs := testing.AllocsPerRun(100, func() {
		v := Load(d, src)
		m := Equal(v, Zero[int32](d))
		Store(IfThenElse(m, Set(d, int32(1)), v), dst)
	})
	if allocs != 0 {
		t.Errorf("vector ops allocated %v times per run, want 0", allocs)
	}
}
