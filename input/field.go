package input

import (
	"github.com/iw2rmb/picoedit/buffer"
	"github.com/iw2rmb/picoedit/internal/emitter"
)

// Options configures a Field.
type Options struct {
	// KeyMap defaults to DefaultKeyMap when zero.
	KeyMap KeyMap
	// Clipboard is optional; copy, cut and paste are no-ops without it.
	Clipboard Clipboard
	ReadOnly  bool

	// Forwarded to buffer.Options.
	HistoryLimit int
}

type selection struct {
	start, end int
}

// Field is a text input backed by a buffer.
type Field struct {
	buf      *buffer.Buffer
	keys     KeyMap
	clip     Clipboard
	readOnly bool
	focused  bool

	changed  emitter.Emitter[string]
	selected emitter.Emitter[selection]
	blurred  emitter.Emitter[struct{}]
}

func New(text string, opts Options) *Field {
	return &Field{
		buf:      buffer.New(text, buffer.Options{HistoryLimit: opts.HistoryLimit}),
		keys:     normalizeKeyMap(opts.KeyMap),
		clip:     opts.Clipboard,
		readOnly: opts.ReadOnly,
	}
}

// Buffer exposes the backing buffer. Mutating it directly bypasses
// notifications.
func (f *Field) Buffer() *buffer.Buffer { return f.buf }

func (f *Field) KeyMap() KeyMap { return f.keys }

func (f *Field) SetKeyMap(km KeyMap) { f.keys = normalizeKeyMap(km) }

func (f *Field) SetClipboard(c Clipboard) { f.clip = c }

func (f *Field) ReadOnly() bool { return f.readOnly }

// SetReadOnly toggles rejection of key-driven mutations. Caret movement and
// copy still work.
func (f *Field) SetReadOnly(v bool) { f.readOnly = v }

func (f *Field) Text() string { return f.buf.Text() }

// SetText replaces the text without notifying and without recording history.
func (f *Field) SetText(s string) { f.buf.SetText(s) }

// Selection returns the selection as global rune offsets with start <= end.
// Without a selection both equal the caret offset.
func (f *Field) Selection() (start, end int) {
	s := f.selection()
	return s.start, s.end
}

func (f *Field) selection() selection {
	if r, ok := f.buf.Selection(); ok {
		return selection{start: f.offset(r.Start), end: f.offset(r.End)}
	}
	c := f.offset(f.buf.Cursor())
	return selection{start: c, end: c}
}

func (f *Field) offset(p buffer.Pos) int {
	off, _ := f.buf.RuneOffsetFromPos(p, buffer.OffsetClamp)
	return off
}

func (f *Field) pos(off int) buffer.Pos {
	p, _ := f.buf.PosFromRuneOffset(off, buffer.OffsetClamp)
	return p
}

// SetSelection selects [start, end) with the caret at end. Offsets are
// clamped and swapped when reversed. Emits a select notification when the
// selection changes.
func (f *Field) SetSelection(start, end int) {
	f.track(func() {
		if end < start {
			start, end = end, start
		}
		ps, pe := f.pos(start), f.pos(end)
		f.buf.SetCursor(pe)
		if ps == pe {
			f.buf.ClearSelection()
			return
		}
		f.buf.SetSelection(buffer.Range{Start: ps, End: pe})
	})
}

func (f *Field) Focus() { f.focused = true }

// Blur drops focus and emits a blur notification if the field was focused.
func (f *Field) Blur() {
	if !f.focused {
		return
	}
	f.focused = false
	f.blurred.Emit(struct{}{})
}

func (f *Field) Focused() bool { return f.focused }

func (f *Field) OnChange(fn func(text string)) func() { return f.changed.On(fn) }

func (f *Field) OnSelect(fn func(start, end int)) func() {
	if fn == nil {
		return func() {}
	}
	return f.selected.On(func(s selection) { fn(s.start, s.end) })
}

func (f *Field) OnBlur(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return f.blurred.On(func(struct{}) { fn() })
}

// track runs op and emits change then select notifications for whatever it
// modified.
func (f *Field) track(op func()) {
	textVer := f.buf.TextVersion()
	prevSel := f.selection()

	op()

	if f.buf.TextVersion() != textVer {
		f.changed.Emit(f.buf.Text())
	}
	if next := f.selection(); next != prevSel {
		f.selected.Emit(next)
	}
}
