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

package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	return event
}

func TestJSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.DebugLevel, FormatJSON)

	log.Info("bench done",
		String("kernel", "fixed-offset-256"),
		Int("n", 4096),
		Float64("ns_per_elem", 0.25),
		Bool("ok", true),
		Duration("elapsed", 2*time.Millisecond),
	)

	event := decode(t, &buf)
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "bench done", event["message"])
	assert.Equal(t, "fixed-offset-256", event["kernel"])
	assert.Equal(t, float64(4096), event["n"])
	assert.Equal(t, 0.25, event["ns_per_elem"])
	assert.Equal(t, true, event["ok"])
	assert.Contains(t, event, "elapsed")
	assert.Contains(t, event, "time")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.InfoLevel, FormatJSON)

	log.Error("verify failed", errors.New("boom"), String("kernel", "scalar"))

	event := decode(t, &buf)
	assert.Equal(t, "error", event["level"])
	assert.Equal(t, "boom", event["error"])
	assert.Equal(t, "scalar", event["kernel"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.InfoLevel, FormatJSON)

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("shown", Int("n", 1))
	assert.Equal(t, "shown", decode(t, &buf)["message"])
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.InfoLevel, FormatConsole)

	log.Info("hello", String("kernel", "scalar"))

	out := buf.String()
	assert.True(t, strings.Contains(out, "hello"), out)
	assert.True(t, strings.Contains(out, "kernel=scalar"), out)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	log.Error("nothing", errors.New("x"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
