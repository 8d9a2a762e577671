package editor

import (
	"strconv"

	"github.com/iw2rmb/picoedit/surface"
)

// lineCountWidth is three glyphs of padding plus one glyph per digit of the
// largest line number shown.
func lineCountWidth(lastLine int, cw float64) float64 {
	digits := len(strconv.Itoa(max(lastLine, 1)))
	return cw*3 + float64(digits)*cw
}

// drawLineCount paints the line number column at x and returns its width.
// Numbers start at first+1 and are right-aligned one glyph from the edge.
func (c *Controller) drawLineCount(s Surface, x, h, cw, ch float64, first, count int) float64 {
	w := lineCountWidth(first+count, cw)
	s.FillRect(x, 0, w, h, c.theme.LineCountBackground)
	for i := 0; i < count; i++ {
		s.FillText(strconv.Itoa(first+i+1), x+w-cw, float64(i)*ch, c.theme.LineCountText, surface.AlignRight)
	}
	return w
}

// drawGutter paints the one-glyph strip between line numbers and text.
func (c *Controller) drawGutter(s Surface, x, h, cw float64) float64 {
	s.FillRect(x, 0, cw, h, c.theme.GutterBackground)
	return cw
}
