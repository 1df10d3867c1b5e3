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

// This file provides pure Go (scalar) implementations of the Highway operations
// used by the fixed-width kernels. Architecture-specific kernels (archsimd under
// GOEXPERIMENT=simd) replace whole loops rather than single ops, so these are
// the only definitions of the ops themselves.
//
// Loads and stores are bounds-checked: a short slice panics instead of being
// silently truncated.

func lanesOf(d Tag) int {
	n := NumLanes(d)
	if n <= 0 || n > maxLanes {
		panic("hwy: unsupported vector width")
	}
	return n
}

// Load creates a vector by loading NumLanes(d) elements from src.
// It panics if src is shorter than one vector.
func Load[T Lanes](d Tag, src []T) Vec[T] {
	n := lanesOf(d)
	v := Vec[T]{n: n}
	copy(v.data[:n], src[:n])
	return v
}

// Store writes all lanes of v to dst.
// It panics if dst is shorter than one vector.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst[:v.n], v.data[:v.n])
}

// MaskLoad loads only the lanes where mask is active; inactive lanes are zero.
// Inactive lanes are never read, so src only needs to cover the active lanes.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	v := Vec[T]{n: mask.n}
	for i := range mask.n {
		if mask.bits&(1<<uint(i)) != 0 {
			v.data[i] = src[i]
		}
	}
	return v
}

// MaskStore stores vector data to a slice only for lanes where the mask is true.
// Inactive lanes of dst are neither read nor written.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i := range mask.n {
		if mask.bits&(1<<uint(i)) != 0 {
			dst[i] = v.data[i]
		}
	}
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](d Tag, value T) Vec[T] {
	n := lanesOf(d)
	v := Vec[T]{n: n}
	for i := range n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes](d Tag) Vec[T] {
	return Vec[T]{n: lanesOf(d)}
}

// Iota creates a vector with lane i set to i.
func Iota[T Lanes](d Tag) Vec[T] {
	n := lanesOf(d)
	v := Vec[T]{n: n}
	for i := range n {
		v.data[i] = T(i)
	}
	return v
}

// Add performs element-wise wrapping addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Mul performs element-wise wrapping multiplication (low 32 bits of the product).
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// Equal returns a mask of lanes where a == b.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] == b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// LessEqual returns a mask of lanes where a <= b.
// The comparison is signed or unsigned according to T.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] <= b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// IfThenElse returns a where mask is true, b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, a.n, b.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// MaskFromBits creates a mask for tag d from a bitfield, lane 0 in bit 0.
// Bits beyond the lane count are ignored.
func MaskFromBits[T Lanes](d Tag, bits uint32) Mask[T] {
	n := lanesOf(d)
	return Mask[T]{bits: bits & fullBits(n), n: n}
}

// MaskOr returns lanes active in a or b.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits | b.bits, n: min(a.n, b.n)}
}

// MaskAnd returns lanes active in both a and b.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits & b.bits, n: min(a.n, b.n)}
}

// MaskAndNot returns lanes active in b but not in a (!a & b).
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: ^a.bits & b.bits & fullBits(min(a.n, b.n)), n: min(a.n, b.n)}
}

// RebindMask reinterprets a mask computed on lanes of type T as a mask for
// lanes of type U. Both types are 32 bits wide, so the lane count is kept.
func RebindMask[U, T Lanes](m Mask[T]) Mask[U] {
	return Mask[U]{bits: m.bits, n: m.n}
}

// BitCast reinterprets the lanes of v as type U without changing their bits.
func BitCast[U, T Lanes](v Vec[T]) Vec[U] {
	r := Vec[U]{n: v.n}
	for i := range v.n {
		r.data[i] = U(v.data[i])
	}
	return r
}
