package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/picoedit/document"
	"github.com/iw2rmb/picoedit/input"
	"github.com/iw2rmb/picoedit/surface"
)

func newTestModel(t *testing.T, text string) Model {
	t.Helper()
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	grid := surface.NewGrid(20, 4, surface.WithRenderer(r))

	opts := DefaultOptions()
	opts.TextSize = 1
	opts.CaretInset = 0
	opts.CaretWidth = 1
	doc := document.New("m", document.WithContents(text))
	field := input.New("", input.Options{})
	c, err := NewController(doc, StaticSource(grid), field, opts)
	require.NoError(t, err)
	return NewModel(c, grid, field, ModelOptions{})
}

func rows(m Model) []string {
	out := strings.Split(m.Grid().PlainString(), "\n")
	for i := range out {
		out[i] = strings.TrimRight(out[i], " ")
	}
	return out
}

func TestModel_InitStartsFrameLoop(t *testing.T) {
	m := newTestModel(t, "one\ntwo")
	require.NotNil(t, m.Init())
	require.True(t, m.Controller().Mounted())
	require.Equal(t, []string{"  1  one", "  2  two", "", ""}, rows(m))

	require.Nil(t, m.Attach(), "already mounted")
}

func TestModel_FrameMessages(t *testing.T) {
	m := newTestModel(t, "a")
	m.Init()
	gen := m.Controller().Generation()

	var cmd tea.Cmd
	m, cmd = m.Update(frameMsg{id: m.ID(), gen: gen})
	require.NotNil(t, cmd)

	_, cmd = m.Update(frameMsg{id: m.ID() + 1000, gen: gen})
	require.Nil(t, cmd, "frames of other models are ignored")

	m.Detach()
	_, cmd = m.Update(frameMsg{id: m.ID(), gen: gen})
	require.Nil(t, cmd, "detached models stop ticking")

	require.NotNil(t, m.Attach())
	_, cmd = m.Update(frameMsg{id: m.ID(), gen: gen})
	require.Nil(t, cmd, "ticks from an older generation are dropped")
	_, cmd = m.Update(frameMsg{id: m.ID(), gen: m.Controller().Generation()})
	require.NotNil(t, cmd)
}

func TestModel_KeysRequireFocus(t *testing.T) {
	m := newTestModel(t, "")
	m.Init()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Equal(t, "", m.Controller().Document().Contents())

	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	require.Equal(t, "hi", m.Controller().Document().Contents())
	require.Equal(t, "  1  hi", rows(m)[0])

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.Focused())
}

func TestModel_MouseFocusAndWheel(t *testing.T) {
	m := newTestModel(t, lines(10))
	m.Init()

	m, _ = m.Update(tea.MouseMsg{X: 6, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.Focused())
	require.Equal(t, 3, m.Controller().Index())

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.Equal(t, 3, m.Controller().Scroll())
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	require.Equal(t, 0, m.Controller().Scroll())

	m, _ = m.Update(tea.BlurMsg{})
	require.False(t, m.Focused())
}

func TestModel_WindowSizeResizesGrid(t *testing.T) {
	m := newTestModel(t, "a")
	m.Init()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 6})

	cols, rowsN := m.Grid().Dims()
	require.Equal(t, 30, cols)
	require.Equal(t, 6, rowsN)
}

func TestModel_ViewRendersCaret(t *testing.T) {
	m := newTestModel(t, "ab")
	m.Init()
	m.Focus()

	cell, ok := m.Grid().Cell(5, 0)
	require.True(t, ok)
	require.Equal(t, "a", cell.Text)
	require.Equal(t, DefaultStyle().Text, cell.BG)
	require.Equal(t, DefaultStyle().Background, cell.FG)
	require.Contains(t, m.View(), "\x1b[")
}
