// Package hwy provides portable fixed-width SIMD vectors of 32-bit lanes with
// runtime CPU level detection.
//
// It follows the Highway C++ library's design: kernels are written once
// against Vec and Mask values whose lane count comes from a Tag, and the
// widest tag the CPU supports is chosen once at startup.
//
// Basic usage:
//
//	import "github.com/go-highway/simdfizzbuzz/hwy"
//
//	d := hwy.FixedTag256{}
//	v := hwy.Load(d, data)
//	m := hwy.Equal(v, hwy.Set(d, int32(3)))
//	hwy.Store(hwy.IfThenElse(m, hwy.Zero[int32](d), v), out)
//
// Vectors are plain values backed by fixed-size arrays, so none of the
// operations in this package allocate.
package hwy

import "math/bits"

// maxLanes is the lane capacity of Vec and Mask: 512 bits of 32-bit lanes.
const maxLanes = 16

// SignedInts is a constraint for the signed 32-bit lane type.
type SignedInts interface {
	~int32
}

// UnsignedInts is a constraint for the unsigned 32-bit lane type.
type UnsignedInts interface {
	~uint32
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	SignedInts | UnsignedInts
}

// Vec is a portable vector handle holding up to 16 lanes.
//
// Vec instances should not be created directly; use Load, Set, Zero or Iota.
type Vec[T Lanes] struct {
	data [maxLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns the value of lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[:v.n][i]
}

// Data returns a copy of the vector's lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Mask represents a per-lane predicate, bit i set if lane i is active.
// It can be used with IfThenElse, MaskLoad, and MaskStore to perform
// conditional operations.
type Mask[T Lanes] struct {
	bits uint32
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// Bits returns the mask as a bitfield, lane 0 in bit 0.
func (m Mask[T]) Bits() uint32 {
	return m.bits
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == fullBits(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	return bits.OnesCount32(m.bits)
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

func fullBits(n int) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<uint(n) - 1
}
