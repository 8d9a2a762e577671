package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.InfoLevel)
	log.Debug().Msg("hidden")
	log.Info().Str("component", "editor").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, "editor", entry["component"])
	require.Equal(t, "picoedit", entry["app"])
	require.Contains(t, entry, "time")
}

func TestNew_NilWriterIsDisabled(t *testing.T) {
	log := New(nil, zerolog.DebugLevel)
	require.NotPanics(t, func() { log.Info().Msg("nowhere") })
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	log := Console(&buf, zerolog.DebugLevel)
	log.Debug().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "DBG")
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picoedit.log")
	log, closeFn, err := File(path, true)
	require.NoError(t, err)
	log.Debug().Msg("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")

	log, closeFn, err = File("", false)
	require.NoError(t, err)
	require.NoError(t, closeFn())
	require.Equal(t, zerolog.Disabled, log.GetLevel())

	_, _, err = File(filepath.Join(t.TempDir(), "missing", "x.log"), false)
	require.Error(t, err)
}

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, Level(true))
	require.Equal(t, zerolog.InfoLevel, Level(false))
}
