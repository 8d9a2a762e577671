package picoedit

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/picoedit/editor"
	"github.com/iw2rmb/picoedit/input"
)

func testRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func TestCreate_FromContents(t *testing.T) {
	co := FromContents("hello\nworld")
	co.Renderer = testRenderer()
	m, err := Create(co)
	require.NoError(t, err)

	c := m.Controller()
	require.Equal(t, "hello\nworld", c.Document().Contents())
	require.NotEmpty(t, c.Document().ID())
	require.Equal(t, "hello\nworld", m.Field().Text())
	cols, rows := m.Grid().Dims()
	require.Equal(t, DefaultColumns, cols)
	require.Equal(t, DefaultRows, rows)
	require.Equal(t, 1.0, c.Options().CaretWidth)
	require.Equal(t, 0.0, c.Options().CaretInset)

	require.NotNil(t, m.Init())
	require.Contains(t, m.Grid().PlainString(), "hello")
}

func TestCreate_FixedSize(t *testing.T) {
	o := TerminalOptions()
	o.Size, o.Width, o.Height = editor.SizeFixed, 12, 3
	co := FromOptions(o)
	co.DocumentID = "fixed"
	m, err := Create(co)
	require.NoError(t, err)
	require.Equal(t, "fixed", m.Controller().Document().ID())

	m.Init()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	cols, rows := m.Grid().Dims()
	require.Equal(t, 12, cols)
	require.Equal(t, 3, rows)
}

func TestCreate_RejectsInvalidOptions(t *testing.T) {
	o := TerminalOptions()
	o.Theme.Text = "black"
	_, err := Create(FromOptions(o))
	require.ErrorIs(t, err, editor.ErrInvalidStyle)

	o = TerminalOptions()
	o.Size = editor.SizeFixed
	_, err = Create(FromOptions(o))
	require.ErrorIs(t, err, editor.ErrInvalidOptions)
}

func TestCreate_ReadOnlyAndClipboard(t *testing.T) {
	clip := &input.Memory{}
	co := FromContents("keep")
	co.ReadOnly = true
	co.Clipboard = clip
	m, err := Create(co)
	require.NoError(t, err)
	m.Init()
	m.Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Equal(t, "keep", m.Controller().Document().Contents())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Equal(t, "k", clip.Text)
}
