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

package bench

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// RefreshRate is the spinner animation interval.
const RefreshRate = 100 * time.Millisecond

// Spinner shows that a long benchmark is still running.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type terminalSpinner struct {
	s *spinner.Spinner
}

func (ts *terminalSpinner) Start() { ts.s.Start() }

func (ts *terminalSpinner) Stop() { ts.s.Stop() }

func (ts *terminalSpinner) UpdateSuffix(suffix string) {
	ts.s.Lock()
	ts.s.Suffix = suffix
	ts.s.Unlock()
}

// NewSpinner returns a Spinner drawing to w.
func NewSpinner(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], RefreshRate, spinner.WithWriter(w))
	return &terminalSpinner{s: s}
}
