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
	"bufio"

	"github.com/spf13/cobra"

	"github.com/go-highway/simdfizzbuzz/hwy/contrib/fizzbuzz"
	"github.com/go-highway/simdfizzbuzz/internal/logging"
)

func newPrintCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print FizzBuzz for n consecutive values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPrint()
		},
	}
	a.cfg.BindPrint(cmd.Flags())
	return cmd
}

func (a *app) runPrint() error {
	k, err := fizzbuzz.Lookup(a.cfg.Kernel)
	if err != nil {
		return err
	}

	src := fizzbuzz.Sequence(int32(a.cfg.Start), a.cfg.N)
	dst := make([]int32, len(src))
	k.ClassifyInto(dst, src)
	a.log.Debug("classified",
		logging.String("kernel", k.Name()),
		logging.Int("n", len(src)),
	)

	w := bufio.NewWriter(a.stdout)
	for _, v := range dst {
		w.WriteString(fizzbuzz.Label(v))
		w.WriteByte('\n')
	}
	return w.Flush()
}
