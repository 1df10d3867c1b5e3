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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-highway/simdfizzbuzz/internal/bench"
	"github.com/go-highway/simdfizzbuzz/internal/logging"
)

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time kernels over consecutive values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd)
		},
	}
	a.cfg.BindBench(cmd.Flags())
	return cmd
}

func (a *app) runBench(cmd *cobra.Command) error {
	kernels, err := selectKernels(a.cfg.Kernels)
	if err != nil {
		return err
	}

	opts := bench.Options{Workers: a.cfg.Workers}
	if a.cfg.Progress {
		opts.Progress = bench.NewSpinner(a.stderr)
	}
	h := bench.New(a.log, opts)
	defer h.Close()

	results, err := h.RunAll(cmd.Context(), kernels, a.cfg.N, a.cfg.Iterations)
	if err != nil {
		a.log.Error("benchmark failed", err)
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KERNEL\tLANES\tBEST\tMEAN\tNS/ELEM")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%.3f\n", r.Kernel, r.Lanes, r.Best, r.Mean(), r.NsPerElement())
		a.log.Info("kernel result",
			logging.String("kernel", r.Kernel),
			logging.Duration("best", r.Best),
			logging.Float64("ns_per_elem", r.NsPerElement()),
			logging.Bool("parallel", a.cfg.Workers > 0),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if a.cfg.MetricsFile != "" {
		if err := h.WriteMetrics(a.cfg.MetricsFile); err != nil {
			return err
		}
		a.log.Info("metrics written", logging.String("path", a.cfg.MetricsFile))
	}
	return nil
}
