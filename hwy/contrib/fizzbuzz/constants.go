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
	"fmt"
	"strconv"
)

// Result sentinels. They never collide with a copied-through value as long as
// inputs are non-negative.
const (
	Fizz     int32 = -1
	Buzz     int32 = -2
	FizzBuzz int32 = -3
)

// Period is the repeat length of the FizzBuzz pattern, lcm(3, 5).
const Period = 15

// residue returns v mod 15 in [0, 15).
func residue(v int32) int {
	r := int(v % Period)
	if r < 0 {
		r += Period
	}
	return r
}

// Expected returns the classification of a single value.
func Expected(v int32) int32 {
	if v%3 == 0 {
		if v%5 == 0 {
			return FizzBuzz
		}
		return Fizz
	}
	if v%5 == 0 {
		return Buzz
	}
	return v
}

// Label renders a classified value the way FizzBuzz is usually printed.
func Label(v int32) string {
	switch v {
	case Fizz:
		return "Fizz"
	case Buzz:
		return "Buzz"
	case FizzBuzz:
		return "FizzBuzz"
	}
	return strconv.FormatInt(int64(v), 10)
}

// Sequence returns n consecutive values starting at start.
func Sequence(start int32, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = start + int32(i)
	}
	return out
}

// checkBuffers panics unless dst can hold the classification of src, and
// returns the number of elements to classify.
func checkBuffers(dst, src []int32) int {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("fizzbuzz: dst has %d elements, need %d", len(dst), len(src)))
	}
	return len(src)
}
