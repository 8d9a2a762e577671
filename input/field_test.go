package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	changes []string
	selects [][2]int
	blurs   int
}

func watch(f *Field) *recorded {
	r := &recorded{}
	f.OnChange(func(s string) { r.changes = append(r.changes, s) })
	f.OnSelect(func(start, end int) { r.selects = append(r.selects, [2]int{start, end}) })
	f.OnBlur(func() { r.blurs++ })
	return r
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focused(text string, opts Options) *Field {
	f := New(text, opts)
	f.Focus()
	return f
}

func TestField_TypingEmitsChangeThenSelect(t *testing.T) {
	f := focused("", Options{})
	r := watch(f)

	require.True(t, f.HandleKey(runes("hi")))
	require.Equal(t, []string{"hi"}, r.changes)
	require.Equal(t, [][2]int{{2, 2}}, r.selects)

	require.True(t, f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, "hi\n", f.Text())
	start, end := f.Selection()
	require.Equal(t, 3, start)
	require.Equal(t, 3, end)
}

func TestField_UnfocusedIgnoresKeys(t *testing.T) {
	f := New("abc", Options{})
	r := watch(f)

	require.False(t, f.HandleKey(runes("x")))
	require.Equal(t, "abc", f.Text())
	require.Empty(t, r.changes)
	require.Empty(t, r.selects)
}

func TestField_CaretMovesEmitSelectOnly(t *testing.T) {
	f := focused("ab\ncd", Options{})
	r := watch(f)

	f.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})

	require.Empty(t, r.changes)
	require.Equal(t, [][2]int{{3, 3}, {5, 5}, {4, 4}}, r.selects)

	// Moving against the document start changes nothing.
	f.SetSelection(0, 0)
	n := len(r.selects)
	f.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	require.Len(t, r.selects, n)
}

func TestField_ShiftSelectionOffsets(t *testing.T) {
	f := focused("hello", Options{})
	f.SetSelection(1, 1)

	f.HandleKey(tea.KeyMsg{Type: tea.KeyShiftRight})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyShiftRight})
	start, end := f.Selection()
	require.Equal(t, 1, start)
	require.Equal(t, 3, end)

	f.HandleKey(runes("X"))
	require.Equal(t, "hXlo", f.Text())
}

func TestField_SetSelectionClampsAndSwaps(t *testing.T) {
	f := New("abc\nde", Options{})
	r := watch(f)

	f.SetSelection(5, 1)
	start, end := f.Selection()
	require.Equal(t, 1, start)
	require.Equal(t, 5, end)

	f.SetSelection(-4, 100)
	start, end = f.Selection()
	require.Equal(t, 0, start)
	require.Equal(t, 6, end)

	f.SetSelection(0, 6)
	require.Len(t, r.selects, 2)
}

func TestField_SetTextDoesNotNotify(t *testing.T) {
	f := focused("abcdef", Options{})
	f.SetSelection(6, 6)
	r := watch(f)

	f.SetText("ab")
	require.Equal(t, "ab", f.Text())
	require.Empty(t, r.changes)
	require.Empty(t, r.selects)
	start, _ := f.Selection()
	require.Equal(t, 2, start)
}

func TestField_ReadOnlyRejectsEdits(t *testing.T) {
	clip := &Memory{Text: "zzz"}
	f := focused("abc", Options{ReadOnly: true, Clipboard: clip})
	r := watch(f)

	f.HandleKey(runes("x"))
	f.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlV})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "abc", f.Text())
	require.Empty(t, r.changes)

	f.HandleKey(tea.KeyMsg{Type: tea.KeyShiftRight})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlX})
	require.Equal(t, "abc", f.Text())
	require.Equal(t, "a", clip.Text)

	f.SetReadOnly(false)
	f.SetSelection(0, 0)
	f.HandleKey(runes("x"))
	require.Equal(t, "xabc", f.Text())
}

func TestField_ClipboardCopyCutPaste(t *testing.T) {
	clip := &Memory{}
	f := focused("one two", Options{Clipboard: clip})
	f.SetSelection(0, 3)

	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Equal(t, "one", clip.Text)
	require.Equal(t, "one two", f.Text())

	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlX})
	require.Equal(t, " two", f.Text())

	clip.Text = "a\r\nb"
	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlV})
	require.Equal(t, "a\nb two", f.Text())
}

func TestField_PasteEventInsertsLiterally(t *testing.T) {
	f := focused("", Options{})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\ry"), Paste: true})
	require.Equal(t, "x\ny", f.Text())
}

func TestField_UndoRedo(t *testing.T) {
	f := focused("", Options{})
	r := watch(f)

	f.HandleKey(runes("a"))
	f.HandleKey(runes("b"))
	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlZ})
	require.Equal(t, "a", f.Text())
	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.Equal(t, "ab", f.Text())
	require.Equal(t, []string{"a", "ab", "a", "ab"}, r.changes)
}

func TestField_BlurKeyAndUnsubscribe(t *testing.T) {
	f := focused("abc", Options{})
	blurs := 0
	off := f.OnBlur(func() { blurs++ })

	require.True(t, f.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}))
	require.False(t, f.Focused())
	require.Equal(t, 1, blurs)

	// Blurring an unfocused field is silent.
	f.Blur()
	require.Equal(t, 1, blurs)

	off()
	f.Focus()
	f.Blur()
	require.Equal(t, 1, blurs)
}

func TestField_SelectAllAndUnboundKeys(t *testing.T) {
	f := focused("ab\nc", Options{})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlG})
	start, end := f.Selection()
	require.Equal(t, 0, start)
	require.Equal(t, 4, end)

	require.False(t, f.HandleKey(tea.KeyMsg{Type: tea.KeyF5}))
	require.False(t, f.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}))
}

func TestKeyMap_ZeroValueUsesDefaults(t *testing.T) {
	f := New("", Options{})
	require.Equal(t, DefaultKeyMap().Left.Keys(), f.KeyMap().Left.Keys())
}
