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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/simdfizzbuzz/hwy"
)

func TestSelectWidth(t *testing.T) {
	tests := []struct {
		level hwy.DispatchLevel
		bytes int
		want  Width
	}{
		{hwy.DispatchScalar, 16, Width128},
		{hwy.DispatchScalar, 64, Width128},
		{hwy.DispatchSSE2, 16, Width128},
		{hwy.DispatchNEON, 16, Width128},
		{hwy.DispatchAVX2, 32, Width256},
		{hwy.DispatchAVX512, 64, Width512},
	}
	for _, tt := range tests {
		if got := SelectWidth(tt.level, tt.bytes); got != tt.want {
			t.Errorf("SelectWidth(%v, %d): got %v, want %v", tt.level, tt.bytes, got, tt.want)
		}
	}
}

func TestWidth(t *testing.T) {
	assert.Equal(t, "256bit", Width256.String())
	assert.Equal(t, 4, hwy.NumLanes(Width128.Tag()))
	assert.Equal(t, 8, hwy.NumLanes(Width256.Tag()))
	assert.Equal(t, 16, hwy.NumLanes(Width512.Tag()))
}

func TestPreferredWidth(t *testing.T) {
	want := SelectWidth(hwy.CurrentLevel(), hwy.CurrentWidth())
	assert.Equal(t, want, PreferredWidth())
	assert.Equal(t, hwy.NumLanes(want.Tag()), Preferred().Lanes())
	assert.Equal(t, hwy.NumLanes(want.Tag()), maskedIndex.Lanes())
}

func TestPreferredAlias(t *testing.T) {
	bound := Preferred()
	assert.Equal(t, fixedOffsetFor(PreferredWidth()).Name(), bound.Name())
	assert.NotEqual(t, "preferred", bound.Name())

	alias, err := Lookup("preferred")
	require.NoError(t, err)
	assert.Equal(t, "preferred", alias.Name())
	assert.Equal(t, bound.Lanes(), alias.Lanes())

	src := Sequence(-40, 97)
	want := make([]int32, len(src))
	got := make([]int32, len(src))
	bound.ClassifyInto(want, src)
	alias.ClassifyInto(got, src)
	assert.Equal(t, want, got)
}

func TestClassifyFunctions(t *testing.T) {
	src := Sequence(1, 100)
	want := reference(src)
	funcs := map[string]func([]int32) []int32{
		"Classify":               Classify,
		"ClassifyScalar":         ClassifyScalar,
		"ClassifyScalarTable":    ClassifyScalarTable,
		"ClassifyMaskedIndex":    ClassifyMaskedIndex,
		"ClassifyFixedOffset128": ClassifyFixedOffset128,
		"ClassifyFixedOffset256": ClassifyFixedOffset256,
		"ClassifyFixedOffset512": ClassifyFixedOffset512,
	}
	for name, fn := range funcs {
		assert.Equal(t, want, fn(src), name)
	}

	dst := make([]int32, len(src))
	ClassifyInto(dst, src)
	assert.Equal(t, want, dst)
}

func TestLookup(t *testing.T) {
	for _, name := range KernelNames() {
		k, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, k.Name())
	}

	_, err := Lookup("no-such-kernel")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKernel))
	assert.Contains(t, err.Error(), "no-such-kernel")
}

func TestKernelNames(t *testing.T) {
	assert.Equal(t, []string{
		"scalar",
		"scalar-table",
		"masked-index",
		"masked-index-derived",
		"masked-index-masked-tail",
		"fixed-offset-128",
		"fixed-offset-256",
		"fixed-offset-512",
		"preferred",
	}, KernelNames())
}
