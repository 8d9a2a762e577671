package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/picoedit/document"
	"github.com/iw2rmb/picoedit/input"
	"github.com/iw2rmb/picoedit/surface"
)

// Glyphs measure 10x20 so a 400x100 recorder shows five lines.
const (
	testCW = 10.0
	testCH = 20.0
)

type fixture struct {
	c     *Controller
	rec   *surface.Recorder
	field *input.Field
	doc   *document.Document
}

func newFixture(t *testing.T, text string, mutate func(*Options), docOpts ...document.Option) *fixture {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	doc := document.New("test", append([]document.Option{document.WithContents(text)}, docOpts...)...)
	rec := surface.NewRecorder(400, 100, testCW, testCH)
	field := input.New("", input.Options{})
	c, err := NewController(doc, StaticSource(rec), field, opts)
	require.NoError(t, err)
	return &fixture{c: c, rec: rec, field: field, doc: doc}
}

func lines(n int) string {
	out := make([]byte, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, 'x')
	}
	return string(out)
}

func textsWithColor(rec *surface.Recorder, color string) []surface.Op {
	var out []surface.Op
	for _, op := range rec.Filter(surface.OpFillText) {
		if op.Color == color {
			out = append(out, op)
		}
	}
	return out
}

// caretRects returns the caret rectangles of the last frame.
func caretRects(rec *surface.Recorder, o Options) []surface.Op {
	var out []surface.Op
	for _, op := range rec.Filter(surface.OpFillRect) {
		if op.Color == o.Theme.Text && op.W == o.CaretWidth {
			out = append(out, op)
		}
	}
	return out
}
