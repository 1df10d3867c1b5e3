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

// Scalar classifies src into dst one element at a time.
// It is the reference every other kernel is tested against.
func Scalar(dst, src []int32) {
	checkBuffers(dst, src)
	scalarRange(dst, src, 0)
}

// scalarRange classifies src[start:] into dst[start:].
func scalarRange(dst, src []int32, start int) {
	dst = dst[:len(src)]
	for i := start; i < len(src); i++ {
		dst[i] = Expected(src[i])
	}
}

// periodSentinels is the result for each residue mod 15; zero keeps the value.
var periodSentinels = [Period]int32{
	FizzBuzz, 0, 0, Fizz, 0,
	Buzz, Fizz, 0, 0, Fizz,
	Buzz, 0, Fizz, 0, 0,
}

// ScalarTable classifies src into dst with one table lookup per element.
func ScalarTable(dst, src []int32) {
	n := checkBuffers(dst, src)
	dst = dst[:n]
	for i, v := range src {
		if s := periodSentinels[residue(v)]; s != 0 {
			dst[i] = s
		} else {
			dst[i] = v
		}
	}
}
