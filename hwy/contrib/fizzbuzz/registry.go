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
	"fmt"
)

// ErrUnknownKernel is returned by Lookup for names not in the registry.
var ErrUnknownKernel = errors.New("fizzbuzz: unknown kernel")

// Kernel is a classification strategy. Every Kernel produces the same output
// as Scalar.
type Kernel interface {
	// Name returns the registry name, e.g. "fixed-offset-256".
	Name() string

	// Lanes returns the vector lane count, 1 for scalar kernels.
	Lanes() int

	// ClassifyInto classifies src into dst. It panics if dst is shorter than src.
	ClassifyInto(dst, src []int32)
}

type funcKernel struct {
	name string
	fn   func(dst, src []int32)
}

func (k funcKernel) Name() string                  { return k.name }
func (k funcKernel) Lanes() int                    { return 1 }
func (k funcKernel) ClassifyInto(dst, src []int32) { k.fn(dst, src) }

// preferredKernel is the "preferred" registry entry. It forwards to the
// kernel bound at package init, so its Lanes and output follow the width
// chosen then. It is not per-call dispatch.
type preferredKernel struct{}

func (preferredKernel) Name() string                  { return "preferred" }
func (preferredKernel) Lanes() int                    { return preferred.Lanes() }
func (preferredKernel) ClassifyInto(dst, src []int32) { preferred.ClassifyInto(dst, src) }

// Kernels returns every registered kernel, scalar reference first.
func Kernels() []Kernel {
	return []Kernel{
		funcKernel{name: "scalar", fn: Scalar},
		funcKernel{name: "scalar-table", fn: ScalarTable},
		maskedIndex,
		maskedIndexDerived,
		maskedIndexMaskedTail,
		fixedOffset128,
		fixedOffset256,
		fixedOffset512,
		preferredKernel{},
	}
}

// KernelNames returns the names of Kernels in the same order.
func KernelNames() []string {
	kernels := Kernels()
	names := make([]string, len(kernels))
	for i, k := range kernels {
		names[i] = k.Name()
	}
	return names
}

// Lookup returns the kernel registered under name.
func Lookup(name string) (Kernel, error) {
	for _, k := range Kernels() {
		if k.Name() == name {
			return k, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// Preferred returns the concrete kernel Classify uses, e.g. the
// fixed-offset kernel at PreferredWidth. Its Name is that kernel's name;
// the "preferred" registry entry is an alias that forwards to it.
func Preferred() Kernel {
	return preferred
}
