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
	"strconv"

	"github.com/go-highway/simdfizzbuzz/hwy"
)

// Width is a vector width in bits for which a FixedOffset kernel exists.
type Width int

const (
	Width128 Width = 128
	Width256 Width = 256
	Width512 Width = 512
)

// String returns e.g. "256bit".
func (w Width) String() string {
	return strconv.Itoa(int(w)) + "bit"
}

// Tag returns the hwy tag of the width.
func (w Width) Tag() hwy.Tag {
	switch w {
	case Width512:
		return hwy.FixedTag512{}
	case Width256:
		return hwy.FixedTag256{}
	default:
		return hwy.FixedTag128{}
	}
}

// SelectWidth picks the kernel width for a dispatch level and its register
// width in bytes. Scalar mode uses the 128-bit kernel, the narrowest one.
func SelectWidth(level hwy.DispatchLevel, widthBytes int) Width {
	if level == hwy.DispatchScalar {
		return Width128
	}
	switch {
	case widthBytes >= 64:
		return Width512
	case widthBytes >= 32:
		return Width256
	default:
		return Width128
	}
}

// Kernels built once at package initialization. They are read-only afterwards.
var (
	fixedOffset128 = NewFixedOffset(hwy.FixedTag128{})
	fixedOffset256 = NewFixedOffset(hwy.FixedTag256{})
	fixedOffset512 = NewFixedOffset(hwy.FixedTag512{})

	maskedIndex           *MaskedIndex
	maskedIndexDerived    *MaskedIndex
	maskedIndexMaskedTail *MaskedIndex

	preferredWidth Width
	preferred      *FixedOffset
)

func init() {
	preferredWidth = SelectWidth(hwy.CurrentLevel(), hwy.CurrentWidth())
	bindPreferred()

	d := preferredWidth.Tag()
	maskedIndex = NewMaskedIndex(d)
	maskedIndexDerived = NewMaskedIndex(d, WithDerivedIndex())
	maskedIndexMaskedTail = NewMaskedIndex(d, WithMaskedTail())
}

func bindPreferred() {
	preferred = fixedOffsetFor(preferredWidth)
}

func fixedOffsetFor(w Width) *FixedOffset {
	switch w {
	case Width512:
		return fixedOffset512
	case Width256:
		return fixedOffset256
	default:
		return fixedOffset128
	}
}

// PreferredWidth returns the width chosen for Classify at startup.
func PreferredWidth() Width {
	return preferredWidth
}

// Classify returns the classification of src using the kernel for the
// preferred width.
func Classify(src []int32) []int32 {
	dst := make([]int32, len(src))
	preferred.ClassifyInto(dst, src)
	return dst
}

// ClassifyInto writes the classification of src into dst using the kernel
// for the preferred width. It panics if dst is shorter than src.
func ClassifyInto(dst, src []int32) {
	preferred.ClassifyInto(dst, src)
}

// ClassifyScalar returns the classification of src computed by Scalar.
func ClassifyScalar(src []int32) []int32 {
	dst := make([]int32, len(src))
	Scalar(dst, src)
	return dst
}

// ClassifyScalarTable returns the classification of src computed by ScalarTable.
func ClassifyScalarTable(src []int32) []int32 {
	dst := make([]int32, len(src))
	ScalarTable(dst, src)
	return dst
}

// ClassifyMaskedIndex returns the classification of src computed by the
// MaskedIndex kernel at the preferred width.
func ClassifyMaskedIndex(src []int32) []int32 {
	dst := make([]int32, len(src))
	maskedIndex.ClassifyInto(dst, src)
	return dst
}

// ClassifyFixedOffset128 returns the classification of src computed with
// 128-bit vectors.
func ClassifyFixedOffset128(src []int32) []int32 {
	dst := make([]int32, len(src))
	fixedOffset128.ClassifyInto(dst, src)
	return dst
}

// ClassifyFixedOffset256 returns the classification of src computed with
// 256-bit vectors.
func ClassifyFixedOffset256(src []int32) []int32 {
	dst := make([]int32, len(src))
	fixedOffset256.ClassifyInto(dst, src)
	return dst
}

// ClassifyFixedOffset512 returns the classification of src computed with
// 512-bit vectors.
func ClassifyFixedOffset512(src []int32) []int32 {
	dst := make([]int32, len(src))
	fixedOffset512.ClassifyInto(dst, src)
	return dst
}
