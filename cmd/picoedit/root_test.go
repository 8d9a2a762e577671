package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/picoedit"
	"github.com/iw2rmb/picoedit/internal/config"
	"github.com/iw2rmb/picoedit/internal/logging"
)

func TestNewApp_AppliesConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Editor.LineCount = false
	cfg.Editor.ReadOnly = true

	a, err := newApp(cfg, "text", zerolog.Nop())
	require.NoError(t, err)
	c := a.editor.Controller()
	require.False(t, c.Options().EnableLineCount)
	require.True(t, c.Document().ReadOnly())
	require.Equal(t, "text", c.Document().Contents())
}

func TestNewApp_RejectsBadTokens(t *testing.T) {
	cfg := config.Defaults()
	cfg.Tokens = map[string]string{"nope": "#ffffff"}
	_, err := newApp(cfg, "", zerolog.Nop())
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestApp_QuitKeys(t *testing.T) {
	a, err := newApp(config.Defaults(), "x", zerolog.Nop())
	require.NoError(t, err)
	a.Init()
	require.True(t, a.editor.Focused())

	next, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Nil(t, cmd, "ctrl+c copies while the editor is focused")
	a = next.(app)

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	require.False(t, a.editor.Controller().Mounted())
}

func TestNewApp_ControllerLogsReachLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picoedit.log")
	logger, closeLog, err := logging.File(path, true)
	require.NoError(t, err)

	a, err := newApp(config.Defaults(), "x", logger)
	require.NoError(t, err)
	a.Init()
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"component":"editor"`)
	require.Contains(t, string(data), `"message":"attached"`)
	require.Contains(t, string(data), `"message":"focus"`)
}

func TestRootCmd_VersionIsTag(t *testing.T) {
	require.Equal(t, picoedit.VersionTag(), rootCmd.Version)
}
