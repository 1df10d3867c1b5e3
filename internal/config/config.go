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

// Package config holds the fizzbuzz command configuration. Values come from
// command-line flags; a flag left unset falls back to the environment variable
// FIZZBUZZ_<FLAG>, e.g. FIZZBUZZ_LOG_LEVEL for --log-level.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "FIZZBUZZ_"

// Defaults.
const (
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
	DefaultN          = 100
	DefaultStart      = 1
	DefaultMaxLen     = 256
	DefaultIterations = 100
	DefaultBenchN     = 1 << 16
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the merged configuration of all commands. Each command binds only
// the flags it uses.
type Config struct {
	LogLevel  string
	LogFormat string

	N       int
	Start   int64
	Kernel  string
	Kernels []string

	MaxLen int

	Iterations  int
	Workers     int
	MetricsFile string
	Progress    bool
}

// Default returns the configuration before flags and environment are applied.
func Default() *Config {
	return &Config{
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
		N:          DefaultN,
		Start:      DefaultStart,
		Kernel:     "preferred",
		MaxLen:     DefaultMaxLen,
		Iterations: DefaultIterations,
	}
}

// BindGlobal registers the flags shared by all commands.
func (c *Config) BindGlobal(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (json, console)")
}

// BindPrint registers the flags of the print command.
func (c *Config) BindPrint(fs *pflag.FlagSet) {
	fs.IntVar(&c.N, "n", c.N, "number of values to print")
	fs.Int64Var(&c.Start, "start", c.Start, "first value")
	fs.StringVarP(&c.Kernel, "kernel", "k", c.Kernel, "kernel to classify with")
}

// BindVerify registers the flags of the verify command.
func (c *Config) BindVerify(fs *pflag.FlagSet) {
	fs.IntVar(&c.MaxLen, "max-len", c.MaxLen, "check every length from 0 to max-len")
	fs.StringSliceVarP(&c.Kernels, "kernel", "k", []string{"all"}, "kernels to check (comma-separated or 'all')")
}

// BindBench registers the flags of the bench command.
func (c *Config) BindBench(fs *pflag.FlagSet) {
	fs.IntVar(&c.N, "n", DefaultBenchN, "elements per run")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "runs per kernel")
	fs.StringSliceVarP(&c.Kernels, "kernel", "k", []string{"all"}, "kernels to time (comma-separated or 'all')")
	fs.IntVar(&c.Workers, "workers", c.Workers, "split each run across this many workers (0 runs on the calling goroutine)")
	fs.StringVar(&c.MetricsFile, "metrics-file", c.MetricsFile, "write Prometheus metrics to this file")
	fs.BoolVar(&c.Progress, "progress", c.Progress, "show a spinner while timing")
}

// EnvName returns the environment variable consulted for a flag.
func EnvName(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// ApplyEnv sets every flag of fs that was not given on the command line from
// its environment variable. Values the flag rejects are ignored and the
// default is kept.
func ApplyEnv(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		val, ok := os.LookupEnv(EnvName(f.Name))
		if !ok || val == "" {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			old := sv.GetSlice()
			if err := f.Value.Set(val); err != nil {
				_ = sv.Replace(old)
			}
			return
		}
		if err := f.Value.Set(val); err != nil {
			_ = f.Value.Set(f.DefValue)
		}
	})
}

// Validate checks ranges that flag parsing cannot.
func (c *Config) Validate() error {
	switch {
	case c.N < 0:
		return fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidConfig, c.N)
	case c.Start < math.MinInt32 || c.Start > math.MaxInt32:
		return fmt.Errorf("%w: start %d does not fit in int32", ErrInvalidConfig, c.Start)
	case c.Start+int64(c.N) > math.MaxInt32+1:
		return fmt.Errorf("%w: start+n exceeds the int32 range", ErrInvalidConfig)
	case c.MaxLen < 0:
		return fmt.Errorf("%w: max-len must be >= 0, got %d", ErrInvalidConfig, c.MaxLen)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidConfig, c.Iterations)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
