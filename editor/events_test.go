package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestOnEvent_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	f := newFixture(t, "ab", nil)
	var events []Notification
	off := f.c.OnEvent(func(n Notification) { events = append(events, n) })
	f.c.Focus()
	events = nil

	f.field.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	require.Len(t, events, 1)
	require.Equal(t, NotifyCaret, events[0].Kind)
	require.Equal(t, 1, events[0].Index)

	f.field.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	f.field.HandleKey(tea.KeyMsg{Type: tea.KeyRight}) // no-op at end of text
	require.Len(t, events, 2)

	f.c.SetScroll(0) // already at the top
	require.Len(t, events, 2)

	off()
	f.field.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	require.Len(t, events, 2)
}

func TestNotifyKind_String(t *testing.T) {
	require.Equal(t, "change", NotifyChange.String())
	require.Equal(t, "scroll", NotifyScroll.String())
	require.Equal(t, "unknown", NotifyKind(99).String())
}
