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

package hwy

// FirstN creates a mask with the first 'count' lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width, or for excluding
// trailing lanes of a vector that would cross an alignment boundary.
//
// Example:
//
//	d := hwy.FixedTag256{}
//	remaining := len(data) % hwy.NumLanes(d)
//	if remaining > 0 {
//	    mask := hwy.FirstN[int32](d, remaining)
//	    v := hwy.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    hwy.MaskStore(mask, result, output[len(output)-remaining:])
//	}
func FirstN[T Lanes](d Tag, count int) Mask[T] {
	n := lanesOf(d)
	count = max(0, min(count, n))
	return Mask[T]{bits: fullBits(count), n: n}
}

// LoopBound returns the largest multiple of the lane count of d that is
// not greater than size. Full-vector loops run while i < LoopBound(d, size).
func LoopBound(d Tag, size int) int {
	n := lanesOf(d)
	return size - size%n
}

// IsAligned returns true if size is a multiple of vector width.
func IsAligned(d Tag, size int) bool {
	return size%lanesOf(d) == 0
}
