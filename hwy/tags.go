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

// laneBytes is the size of every lane type supported by this package.
const laneBytes = 4

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("128bit", "avx2", etc.)
	Name() string
}

// NumLanes returns the number of 32-bit lanes a vector of tag d holds.
func NumLanes(d Tag) int {
	return d.Width() / laneBytes
}

// ScalableTag adapts to the widest SIMD available at runtime.
// The width is resolved once, during package initialization.
type ScalableTag struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag) Name() string {
	return currentLevel.String()
}

// FixedTag128 forces 128-bit SIMD operations (SSE, NEON): 4 lanes.
type FixedTag128 struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128) Name() string {
	return "128bit"
}

// FixedTag256 forces 256-bit SIMD operations (AVX2): 8 lanes.
type FixedTag256 struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256) Name() string {
	return "256bit"
}

// FixedTag512 forces 512-bit SIMD operations (AVX-512): 16 lanes.
type FixedTag512 struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512) Name() string {
	return "512bit"
}
