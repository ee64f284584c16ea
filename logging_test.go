package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to create a buffer-backed JSON logger for output assertions
func newTestLogger(t testing.TB, cfg Config) (zerolog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	cfg.NoPretty = true
	cfg.Output = buf
	l, err := New(cfg)
	require.NoError(t, err)
	return l, buf
}

// decodeLines parses every JSON record the buffer holds.
func decodeLines(t testing.TB, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &m))
		entries = append(entries, m)
	}
	return entries
}

// lastLine parses the most recent record in the buffer.
func lastLine(t testing.TB, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	entries := decodeLines(t, buf)
	require.NotEmpty(t, entries)
	return entries[len(entries)-1]
}

func TestNewWritesStructuredRecords(t *testing.T) {
	l, buf := newTestLogger(t, Config{Name: "api", Level: "debug"})

	l.Info().Str("user_id", "42").Msg("processed")

	entry := lastLine(t, buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "api", entry["name"])
	assert.Equal(t, "42", entry["user_id"])
	assert.Equal(t, "processed", entry["message"])
	assert.NotEmpty(t, entry["time"])
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(t, Config{Level: "warn"})

	l.Debug().Msg("debug msg")
	l.Info().Msg("info msg")
	l.Warn().Msg("warn msg")
	l.Error().Msg("error msg")

	s := buf.String()
	assert.NotContains(t, s, "debug msg")
	assert.NotContains(t, s, "info msg")
	assert.Contains(t, s, "warn msg")
	assert.Contains(t, s, "error msg")
}

func TestNameOmittedWhenEmpty(t *testing.T) {
	l, buf := newTestLogger(t, Config{})

	l.Info().Msg("no name")

	entry := lastLine(t, buf)
	_, present := entry["name"]
	assert.False(t, present, "empty name must not be bound as a field")
}

func TestIndependentHandles(t *testing.T) {
	cfg := Config{Name: "twin", Level: "debug"}
	a, bufA := newTestLogger(t, cfg)
	b, bufB := newTestLogger(t, cfg)

	require.Equal(t, a.GetLevel(), b.GetLevel())

	a.Info().Msg("only a")
	assert.Contains(t, bufA.String(), "only a")
	assert.NotContains(t, bufB.String(), "only a")
}

func TestChildBinding(t *testing.T) {
	l, buf := newTestLogger(t, Config{Name: "api"})

	child := Child(l, "worker")
	child.Info().Msg("from child")

	entry := lastLine(t, buf)
	assert.Equal(t, "worker", entry["module"])
	assert.Equal(t, "api", entry["name"])
}

func TestFileLoggingCreatesAndWrites(t *testing.T) {
	dir := t.TempDir()
	buf := &bytes.Buffer{}
	l, err := New(Config{
		Name:     "filetest",
		NoPretty: true,
		Output:   buf,
		File:     &FileConfig{Dir: dir, MaxSizeMB: 5, MaxBackups: 1, MaxAgeDays: 1},
	})
	require.NoError(t, err)

	l.Info().Msg("hello file")

	path := filepath.Join(dir, "filetest.log")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello file")
	assert.Contains(t, buf.String(), "hello file")
}

func TestMustNewPanicsOnBadLevel(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Config{Level: "notalevel"})
	})
}

func TestDumpOutputs(t *testing.T) {
	type person struct {
		Name string
		Age  int
	}
	l, buf := newTestLogger(t, Config{Level: "debug"})

	Dump(l, person{Name: "Ada", Age: 36})
	Dump(l, nil)

	s := buf.String()
	assert.Contains(t, s, "Ada")
	assert.Contains(t, s, "<nil>")
}

func TestDumpSkippedAboveDebug(t *testing.T) {
	l, buf := newTestLogger(t, Config{Level: "info"})

	Dump(l, "ignored")

	assert.Empty(t, buf.String())
}
