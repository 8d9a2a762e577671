package surface

import "gitlab.com/tozd/go/errors"

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpScale
	OpFont
	OpFillRect
	OpFillText
	OpResize
)

var opNames = [...]string{"clear", "scale", "font", "fill-rect", "fill-text", "resize"}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return "unknown"
	}
	return opNames[k]
}

// Op is one recorded call. Fields not used by the kind are zero.
//
// Scale stores its factors in X and Y. Resize stores the size in W and H and
// the pixel ratio in X.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Text  string
	Color string
	Align Align
	Font  Font
}

// Recorder is a Surface that records draw calls instead of drawing.
type Recorder struct {
	W, H           float64
	GlyphW, GlyphH float64

	// ResizeErr, when set, is returned by Resize instead of resizing.
	ResizeErr error

	Ops []Op
}

// NewRecorder returns a recorder of logical size w x h whose glyphs all
// measure glyphW x glyphH.
func NewRecorder(w, h, glyphW, glyphH float64) *Recorder {
	return &Recorder{W: w, H: h, GlyphW: glyphW, GlyphH: glyphH}
}

func (r *Recorder) Size() (w, h float64) { return r.W, r.H }

func (r *Recorder) Resize(w, h, pixelRatio float64) error {
	if r.ResizeErr != nil {
		return r.ResizeErr
	}
	if w <= 0 || h <= 0 || pixelRatio <= 0 {
		return errors.Errorf("%w: %gx%g at ratio %g", ErrInvalidSize, w, h, pixelRatio)
	}
	r.W, r.H = w, h
	r.Ops = append(r.Ops, Op{Kind: OpResize, W: w, H: h, X: pixelRatio})
	return nil
}

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) Scale(sx, sy float64) {
	r.Ops = append(r.Ops, Op{Kind: OpScale, X: sx, Y: sy})
}

func (r *Recorder) SetFont(f Font) { r.Ops = append(r.Ops, Op{Kind: OpFont, Font: f}) }

func (r *Recorder) MeasureGlyph(rune) (w, h float64) { return r.GlyphW, r.GlyphH }

func (r *Recorder) FillRect(x, y, w, h float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: color})
}

func (r *Recorder) FillText(text string, x, y float64, color string, align Align) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, Text: text, X: x, Y: y, Color: color, Align: align})
}

// Reset drops every recorded op.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Frame returns the ops recorded since the last Clear.
func (r *Recorder) Frame() []Op {
	for i := len(r.Ops) - 1; i >= 0; i-- {
		if r.Ops[i].Kind == OpClear {
			return r.Ops[i:]
		}
	}
	return r.Ops
}

// Frames returns how many times Clear was called.
func (r *Recorder) Frames() int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == OpClear {
			n++
		}
	}
	return n
}

// Filter returns the ops of the last frame with the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Frame() {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
