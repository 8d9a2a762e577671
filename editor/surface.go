package editor

import "github.com/iw2rmb/picoedit/surface"

// Surface is the 2D drawing target the controller renders into.
//
// Coordinates are logical units. Size reports the logical size; Resize sets it
// and sizes the backing buffer by the pixel ratio. Scale sets the transform
// for the current frame and Clear resets it.
type Surface interface {
	Size() (w, h float64)
	Resize(w, h, pixelRatio float64) error
	Clear()
	Scale(sx, sy float64)
	SetFont(f surface.Font)
	MeasureGlyph(r rune) (w, h float64)
	FillRect(x, y, w, h float64, color string)
	FillText(text string, x, y float64, color string, align surface.Align)
}

// SurfaceSource acquires the surface for one frame. It reports false when no
// surface is available, in which case the frame draws nothing.
type SurfaceSource func() (Surface, bool)

// StaticSource always yields s.
func StaticSource(s Surface) SurfaceSource {
	return func() (Surface, bool) { return s, s != nil }
}

// TextInput is the hidden input that receives keyboard text.
//
// Selection offsets are global rune offsets with start <= end. SetText must
// not emit a change notification. Each On method returns an unsubscribe
// function.
type TextInput interface {
	Text() string
	SetText(s string)
	Selection() (start, end int)
	SetSelection(start, end int)
	Focus()
	Blur()
	Focused() bool
	OnChange(fn func(text string)) func()
	OnSelect(fn func(start, end int)) func()
	OnBlur(fn func()) func()
}
