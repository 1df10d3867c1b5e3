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
	"io"

	"github.com/spf13/cobra"

	"github.com/go-highway/simdfizzbuzz/internal/config"
	"github.com/go-highway/simdfizzbuzz/internal/logging"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg    *config.Config
	log    logging.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		log:    logging.Nop(),
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:           "fizzbuzz",
		Short:         "SIMD FizzBuzz kernels",
		Long:          "Print, verify and benchmark the vectorized FizzBuzz classification kernels.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	a.cfg.BindGlobal(root.PersistentFlags())

	root.AddCommand(
		newPrintCmd(a),
		newVerifyCmd(a),
		newBenchCmd(a),
		newInfoCmd(a),
	)
	return root
}

// setup applies environment overrides, validates, and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	config.ApplyEnv(cmd.Flags())
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = logging.New(a.stderr, level, format)
	return nil
}
