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
	"time"

	"github.com/spf13/cobra"

	"github.com/go-highway/simdfizzbuzz/internal/bench"
	"github.com/go-highway/simdfizzbuzz/internal/logging"
)

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check kernels against the scalar reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runVerify(cmd)
		},
	}
	a.cfg.BindVerify(cmd.Flags())
	return cmd
}

func (a *app) runVerify(cmd *cobra.Command) error {
	kernels, err := selectKernels(a.cfg.Kernels)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := bench.Verify(cmd.Context(), kernels, a.cfg.MaxLen, bench.VerifyStarts); err != nil {
		a.log.Error("verification failed", err)
		return err
	}

	names := kernelNames(kernels)
	a.log.Info("verification passed",
		logging.Int("kernels", len(kernels)),
		logging.Int("max_len", a.cfg.MaxLen),
		logging.Duration("elapsed", time.Since(start)),
	)
	fmt.Fprintf(a.stdout, "ok: %s (lengths 0..%d, %d starts)\n",
		strings.Join(names, ", "), a.cfg.MaxLen, len(bench.VerifyStarts))
	return nil
}
