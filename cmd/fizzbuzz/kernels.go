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

package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/go-highway/simdfizzbuzz/hwy/contrib/fizzbuzz"
)

// selectKernels resolves --kernel values. "all" selects every registered
// kernel; duplicates are dropped.
func selectKernels(names []string) ([]fizzbuzz.Kernel, error) {
	names = lo.Uniq(lo.Compact(lo.Map(names, func(s string, _ int) string {
		return strings.TrimSpace(s)
	})))
	if len(names) == 0 {
		return nil, fmt.Errorf("no kernel selected (known: %s)", strings.Join(fizzbuzz.KernelNames(), ", "))
	}
	if lo.Contains(names, "all") {
		return fizzbuzz.Kernels(), nil
	}

	kernels := make([]fizzbuzz.Kernel, 0, len(names))
	for _, name := range names {
		k, err := fizzbuzz.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%w (known: %s)", err, strings.Join(fizzbuzz.KernelNames(), ", "))
		}
		kernels = append(kernels, k)
	}
	return kernels, nil
}

func kernelNames(kernels []fizzbuzz.Kernel) []string {
	return lo.Map(kernels, func(k fizzbuzz.Kernel, _ int) string { return k.Name() })
}
