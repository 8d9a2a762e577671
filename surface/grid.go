package surface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gitlab.com/tozd/go/errors"

	graphemeutil "github.com/iw2rmb/picoedit/internal/grapheme"
)

// Cell is one terminal cell of a Grid.
//
// Text is empty for blank cells and for the trailing cells of a wide cluster.
type Cell struct {
	Text string
	FG   string
	BG   string

	cont bool
}

// Continuation reports whether the cell is covered by a wide cluster that
// starts in a previous column.
func (c Cell) Continuation() bool { return c.cont }

// GridOption configures a Grid.
type GridOption func(*Grid)

// WithRenderer sets the lipgloss renderer used by String.
func WithRenderer(r *lipgloss.Renderer) GridOption {
	return func(g *Grid) {
		if r != nil {
			g.renderer = r
		}
	}
}

// Grid is a Surface that rasterizes draw calls into terminal cells.
//
// One logical unit is one cell and every glyph is one cell tall. The backing
// raster is the logical size multiplied by the pixel ratio given to Resize.
type Grid struct {
	w, h   float64
	cols   int
	rows   int
	cells  []Cell
	sx, sy float64
	font   Font

	renderer *lipgloss.Renderer
}

// NewGrid returns a blank grid of cols x rows cells.
func NewGrid(cols, rows int, opts ...GridOption) *Grid {
	g := &Grid{renderer: lipgloss.DefaultRenderer(), sx: 1, sy: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g.w, g.h = float64(cols), float64(rows)
	g.alloc(cols, rows)
	return g
}

func (g *Grid) alloc(cols, rows int) {
	g.cols, g.rows = cols, rows
	g.cells = make([]Cell, cols*rows)
}

// Size returns the logical size in cells.
func (g *Grid) Size() (w, h float64) { return g.w, g.h }

// Dims returns the backing raster size in cells.
func (g *Grid) Dims() (cols, rows int) { return g.cols, g.rows }

// Font returns the last font set on the grid.
func (g *Grid) Font() Font { return g.font }

// Resize sets the logical size to w x h and reallocates the raster.
func (g *Grid) Resize(w, h, pixelRatio float64) error {
	if w <= 0 || h <= 0 || pixelRatio <= 0 {
		return errors.Errorf("%w: %gx%g at ratio %g", ErrInvalidSize, w, h, pixelRatio)
	}
	g.w, g.h = w, h
	g.alloc(int(math.Round(w*pixelRatio)), int(math.Round(h*pixelRatio)))
	return nil
}

// Clear blanks every cell and resets the transform.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	g.sx, g.sy = 1, 1
}

// Scale sets the transform applied to subsequent draw calls.
func (g *Grid) Scale(sx, sy float64) {
	g.sx, g.sy = sx, sy
}

func (g *Grid) SetFont(f Font) { g.font = f }

// MeasureGlyph returns the cell width of r and a height of one cell.
// Zero-width runes measure as one cell.
func (g *Grid) MeasureGlyph(r rune) (w, h float64) {
	rw := graphemeutil.RuneWidth(r)
	if rw <= 0 {
		rw = 1
	}
	return float64(rw), 1
}

// FillRect paints the background of every cell the rectangle covers.
//
// Text already in a cell stays readable: if its foreground equals the new
// background it takes the previous background instead.
func (g *Grid) FillRect(x, y, w, h float64, color string) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x*g.sx + 1e-9))
	y0 := int(math.Floor(y*g.sy + 1e-9))
	x1 := int(math.Ceil((x+w)*g.sx - 1e-9))
	y1 := int(math.Ceil((y+h)*g.sy - 1e-9))
	x0, x1 = max(x0, 0), min(x1, g.cols)
	y0, y1 = max(y0, 0), min(y1, g.rows)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c := &g.cells[row*g.cols+col]
			if c.Text != "" && c.FG == color {
				c.FG = c.BG
			}
			c.BG = color
		}
	}
}

// FillText writes text on the row containing y.
//
// With AlignLeft the first cluster starts at x, with AlignRight the last
// cluster ends at x. Cells outside the raster are clipped. Tabs and other
// zero-width control runes occupy one blank cell so columns stay aligned with
// rune offsets.
func (g *Grid) FillText(text string, x, y float64, color string, align Align) {
	if text == "" {
		return
	}
	row := int(math.Floor(y*g.sy + 1e-9))
	if row < 0 || row >= g.rows {
		return
	}
	clusters := graphemeutil.Split(text)
	widths := make([]int, len(clusters))
	total := 0
	for i, cl := range clusters {
		widths[i] = clusterWidth(cl)
		total += widths[i]
	}
	col := int(math.Round(x * g.sx))
	if align == AlignRight {
		col -= total
	}
	for i, cl := range clusters {
		w := widths[i]
		if col >= g.cols {
			break
		}
		if col >= 0 && col+w <= g.cols {
			g.put(row, col, printable(cl), color)
			for k := 1; k < w; k++ {
				c := &g.cells[row*g.cols+col+k]
				c.Text, c.FG, c.cont = "", color, true
			}
		}
		col += w
	}
}

func (g *Grid) put(row, col int, text, color string) {
	c := &g.cells[row*g.cols+col]
	c.Text, c.FG, c.cont = text, color, false
}

func clusterWidth(cl string) int {
	if w := graphemeutil.Width(cl); w > 0 {
		return w
	}
	return 1
}

func printable(cl string) string {
	for _, r := range cl {
		if r < 0x20 || r == 0x7f {
			return " "
		}
	}
	return cl
}

// Cell returns the cell at column x, row y.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return Cell{}, false
	}
	return g.cells[y*g.cols+x], true
}

// PlainString returns the raster as text without styling, one line per row.
func (g *Grid) PlainString() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			switch {
			case c.cont:
			case c.Text == "":
				sb.WriteByte(' ')
			default:
				sb.WriteString(c.Text)
			}
		}
	}
	return sb.String()
}

// String renders the raster with lipgloss, merging runs of equally colored
// cells into one styled span.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var fg, bg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(g.style(fg, bg).Render(run.String()))
			run.Reset()
		}
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			if c.cont {
				continue
			}
			if c.FG != fg || c.BG != bg {
				flush()
				fg, bg = c.FG, c.BG
			}
			if c.Text == "" {
				run.WriteByte(' ')
			} else {
				run.WriteString(c.Text)
			}
		}
		flush()
	}
	return sb.String()
}

func (g *Grid) style(fg, bg string) lipgloss.Style {
	st := g.renderer.NewStyle()
	if fg != "" {
		st = st.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	return st
}
