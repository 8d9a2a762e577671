package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/picoedit/buffer"
)

// HandleKey applies msg to the field and reports whether it was consumed.
// Unfocused fields ignore keys.
func (f *Field) HandleKey(msg tea.KeyMsg) bool {
	if !f.focused {
		return false
	}
	if key.Matches(msg, f.keys.Blur) {
		f.Blur()
		return true
	}
	handled := true
	f.track(func() { handled = f.applyKey(msg) })
	return handled
}

func (f *Field) applyKey(msg tea.KeyMsg) bool {
	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !f.readOnly {
			f.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return true
	}

	km := f.keys
	b := f.buf
	switch {
	case key.Matches(msg, km.Left):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !f.readOnly {
			b.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !f.readOnly {
			b.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !f.readOnly {
			b.InsertNewline()
		}

	case key.Matches(msg, km.Undo):
		if !f.readOnly {
			_ = b.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !f.readOnly {
			_ = b.Redo()
		}

	case key.Matches(msg, km.Copy):
		f.copySelection()
	case key.Matches(msg, km.Cut):
		if f.readOnly {
			f.copySelection()
		} else {
			f.cutSelection()
		}
	case key.Matches(msg, km.Paste):
		if !f.readOnly {
			f.pasteClipboard()
		}
	case key.Matches(msg, km.SelectAll):
		f.selectAll()

	default:
		if msg.Type == tea.KeyTab {
			if !f.readOnly {
				b.InsertRune('\t')
			}
			return true
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !f.readOnly {
				b.InsertText(string(msg.Runes))
			}
			return true
		}
		return false
	}
	return true
}

func (f *Field) selectAll() {
	b := f.buf
	end, _ := b.PosFromRuneOffset(b.Len(), buffer.OffsetClamp)
	b.SetCursor(end)
	b.SetSelection(buffer.Range{Start: buffer.Pos{}, End: end})
}

func (f *Field) copySelection() {
	if f.clip == nil {
		return
	}
	s := f.buf.SelectedText()
	if s == "" {
		return
	}
	_ = f.clip.WriteText(s)
}

func (f *Field) cutSelection() {
	if f.clip == nil {
		return
	}
	s := f.buf.SelectedText()
	if s == "" {
		return
	}
	_ = f.clip.WriteText(s)
	f.buf.DeleteSelection()
}

func (f *Field) pasteClipboard() {
	if f.clip == nil {
		return
	}
	s, err := f.clip.ReadText()
	if err != nil || s == "" {
		return
	}
	f.buf.InsertText(normalizeNewlines(s))
}

// normalizeNewlines converts CRLF and CR line breaks from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
