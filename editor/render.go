package editor

import (
	"math"

	"github.com/iw2rmb/picoedit/surface"
)

// glyphProbe is the rune measured to size every cell of the monospace grid.
const glyphProbe = 'A'

// Render draws one frame and reports whether the host should schedule
// another. Frames without a surface draw nothing but still ask for the next
// frame while mounted.
func (c *Controller) Render(ro RenderOpts) (next bool) {
	next = c.mounted && !ro.SkipSchedule

	s, ok := c.source()
	if !ok || s == nil {
		c.log.Debug().Msg("surface unavailable, frame skipped")
		c.frame = FrameInfo{}
		return next
	}

	s.Clear()
	s.Scale(c.opts.PixelRatio, c.opts.PixelRatio)
	s.SetFont(surface.Font{Family: c.opts.FontFamily, Size: c.textSize})
	cw, ch := s.MeasureGlyph(glyphProbe)
	w, h := s.Size()
	if cw <= 0 || ch <= 0 {
		c.log.Debug().Float64("width", cw).Float64("height", ch).Msg("degenerate glyph metrics, frame skipped")
		c.frame = FrameInfo{}
		return next
	}
	s.FillRect(0, 0, w, h, c.theme.Background)

	lineCount := c.doc.LineCount()
	c.scroll = clampInt(c.scroll, 0, lineCount-1)
	linesInView := int(math.Floor(h / ch))
	drawn := max(min(lineCount-c.scroll, linesInView), 0)

	f := FrameInfo{
		Drawn:       true,
		CharWidth:   cw,
		CharHeight:  ch,
		LinesInView: linesInView,
		FirstLine:   c.scroll,
		DrawnLines:  drawn,
	}

	x := 0.0
	if c.opts.EnableLineCount {
		f.LineCountWidth = c.drawLineCount(s, x, h, cw, ch, c.scroll, drawn)
		x += f.LineCountWidth
	}
	if c.opts.EnableGutter {
		x += c.drawGutter(s, x, h, cw)
	}
	f.ContentX = x

	if len(c.theme.TokenColors) > 0 {
		c.doc.EnsureTokens()
	}

	index := c.Index()
	selStart, selEnd := c.input.Selection()
	lineStart := c.doc.Offset(c.scroll, 0)
	for i := 0; i < drawn; i++ {
		row := c.scroll + i
		n := c.doc.LineLen(row)
		y := float64(i) * ch

		c.drawLine(s, row, lineStart, x, y, cw, ch, selStart, selEnd)

		if c.focused && !f.CaretVisible && index >= lineStart && index <= lineStart+n {
			c.drawCaret(s, x+float64(index-lineStart)*cw, y+c.opts.CaretInset, ch, ro.Event == EventCaret)
			f.CaretVisible = true
		}
		lineStart += n + 1
	}

	c.frame = f
	return next
}

// drawLine draws one document line, coloring runes by token kind and
// selection.
func (c *Controller) drawLine(s Surface, row, lineStart int, x, y, cw, ch float64, selStart, selEnd int) {
	runes := []rune(c.doc.Line(row))
	if len(runes) == 0 {
		return
	}

	colors := make([]string, len(runes))
	for i := range colors {
		colors[i] = c.theme.Text
	}
	if len(c.theme.TokenColors) > 0 {
		for _, tok := range c.doc.LineTokens(row) {
			col, ok := c.theme.TokenColors[tok.Kind]
			if !ok {
				continue
			}
			for i := max(tok.Start, 0); i < min(tok.End, len(runes)); i++ {
				colors[i] = col
			}
		}
	}

	from := clampInt(selStart-lineStart, 0, len(runes))
	to := clampInt(selEnd-lineStart, 0, len(runes))
	if from < to {
		s.FillRect(x+float64(from)*cw, y, float64(to-from)*cw, ch, c.theme.SelectionBackground)
		for i := from; i < to; i++ {
			colors[i] = c.theme.SelectionText
		}
	}

	drawRuns(s, runes, colors, x, y, cw)
}

// drawRuns issues one FillText per run of equally colored runes.
func drawRuns(s Surface, runes []rune, colors []string, x, y, cw float64) {
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && colors[i] == colors[start] {
			continue
		}
		s.FillText(string(runes[start:i]), x+float64(start)*cw, y, colors[start], surface.AlignLeft)
		start = i
	}
}

func (c *Controller) drawCaret(s Surface, x, y, ch float64, moved bool) {
	if c.opts.AnimatedCursor {
		c.caret.advance(x, y, moved, c.caretScroll != c.scroll, c.opts.CaretEasing)
	} else {
		c.caret.place(x, y)
	}
	c.caretScroll = c.scroll
	s.FillRect(c.caret.X, c.caret.Y, c.opts.CaretWidth, ch, c.theme.Text)
}
