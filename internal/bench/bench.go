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

// Package bench times FizzBuzz kernels and checks them against the scalar
// reference. Timings are logged, recorded as Prometheus metrics on a private
// registry, and traced with OpenTelemetry spans.
package bench

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/go-highway/simdfizzbuzz/hwy/contrib/fizzbuzz"
	"github.com/go-highway/simdfizzbuzz/hwy/contrib/workerpool"
	"github.com/go-highway/simdfizzbuzz/internal/logging"
)

const tracerName = "github.com/go-highway/simdfizzbuzz/internal/bench"

// ErrMismatch is returned when a kernel disagrees with the scalar reference.
var ErrMismatch = errors.New("kernel output differs from scalar reference")

// Result is the timing of one kernel.
type Result struct {
	Kernel     string
	Lanes      int
	N          int
	Iterations int
	Total      time.Duration
	Best       time.Duration
}

// Mean returns the mean duration of one run.
func (r Result) Mean() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Iterations)
}

// NsPerElement returns the mean time per classified element.
func (r Result) NsPerElement() float64 {
	if r.N == 0 || r.Iterations == 0 {
		return 0
	}
	return float64(r.Total.Nanoseconds()) / float64(r.N*r.Iterations)
}

// Options configures a Harness.
type Options struct {
	// Workers splits each run across a worker pool; 0 runs on the caller.
	Workers int

	// Progress receives a status line per kernel. May be nil.
	Progress Spinner
}

// Harness runs and records benchmarks.
type Harness struct {
	log      logging.Logger
	pool     *workerpool.Pool
	progress Spinner

	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	elements *prometheus.CounterVec
}

// New creates a Harness. Call Close when done.
func New(log logging.Logger, opts Options) *Harness {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	h := &Harness{
		log:      log,
		progress: opts.Progress,
		registry: reg,
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fizzbuzz_bench_runs_total",
				Help: "The total number of timed kernel runs",
			},
			[]string{"kernel", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fizzbuzz_bench_run_duration_seconds",
				Help:    "The duration of one kernel run in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 14),
			},
			[]string{"kernel"},
		),
		elements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fizzbuzz_bench_elements_total",
				Help: "The total number of elements classified",
			},
			[]string{"kernel"},
		),
	}
	if opts.Workers > 0 {
		h.pool = workerpool.New(opts.Workers)
	}
	return h
}

// Close releases the worker pool.
func (h *Harness) Close() {
	if h.pool != nil {
		h.pool.Close()
	}
}

// WriteMetrics writes all recorded metrics to path in the Prometheus text
// format.
func (h *Harness) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, h.registry); err != nil {
		return fmt.Errorf("bench: writing metrics: %w", err)
	}
	return nil
}

func (h *Harness) classify(k fizzbuzz.Kernel, dst, src []int32) {
	if h.pool != nil {
		fizzbuzz.ClassifyParallel(h.pool, k, dst, src)
		return
	}
	k.ClassifyInto(dst, src)
}

// Run times iterations runs of k over the consecutive values 1..n, then
// checks the last output against the scalar reference.
func (h *Harness) Run(ctx context.Context, k fizzbuzz.Kernel, n, iterations int) (res Result, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("kernel", k.Name()),
		attribute.Int("lanes", k.Lanes()),
		attribute.Int("n", n),
		attribute.Int("iterations", iterations),
	)

	defer func() {
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		h.runs.WithLabelValues(k.Name(), status).Add(float64(res.Iterations))
	}()

	if h.progress != nil {
		h.progress.UpdateSuffix(fmt.Sprintf(" %s (%d x %d)", k.Name(), iterations, n))
	}

	src := fizzbuzz.Sequence(1, n)
	dst := make([]int32, n)
	res = Result{Kernel: k.Name(), Lanes: k.Lanes(), N: n}

	for range iterations {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		start := time.Now()
		h.classify(k, dst, src)
		elapsed := time.Since(start)

		res.Iterations++
		res.Total += elapsed
		if res.Best == 0 || elapsed < res.Best {
			res.Best = elapsed
		}
		h.duration.WithLabelValues(k.Name()).Observe(elapsed.Seconds())
		h.elements.WithLabelValues(k.Name()).Add(float64(n))
	}

	if i, ok := firstMismatch(dst, src); !ok {
		return res, fmt.Errorf("%w: %s at index %d (value %d): got %d, want %d",
			ErrMismatch, k.Name(), i, src[i], dst[i], fizzbuzz.Expected(src[i]))
	}

	h.log.Debug("kernel timed",
		logging.String("kernel", res.Kernel),
		logging.Int("n", n),
		logging.Int("iterations", res.Iterations),
		logging.Duration("best", res.Best),
		logging.Float64("ns_per_elem", res.NsPerElement()),
	)
	return res, nil
}

// RunAll times every kernel in turn. It stops at the first error.
func (h *Harness) RunAll(ctx context.Context, kernels []fizzbuzz.Kernel, n, iterations int) ([]Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "RunAll")
	defer span.End()

	if h.progress != nil {
		h.progress.Start()
		defer h.progress.Stop()
	}

	results := make([]Result, 0, len(kernels))
	for _, k := range kernels {
		res, err := h.Run(ctx, k, n, iterations)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(a.Total, b.Total)
	})
	return results, nil
}

// firstMismatch returns the index of the first element of dst that is not the
// classification of src, and false; or 0 and true if all match.
func firstMismatch(dst, src []int32) (int, bool) {
	for i, v := range src {
		if dst[i] != fizzbuzz.Expected(v) {
			return i, false
		}
	}
	return 0, true
}
