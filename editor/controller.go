package editor

import (
	"math"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/iw2rmb/picoedit/document"
	"github.com/iw2rmb/picoedit/internal/emitter"
)

// Controller ties a document, a drawing surface and a hidden text input
// together. It owns the view state (scroll, focus, caret animation) and
// renders one frame per Render call.
//
// A Controller is not safe for concurrent use; drive it from the host's UI
// goroutine.
type Controller struct {
	doc    *document.Document
	source SurfaceSource
	input  TextInput
	opts   Options
	log    zerolog.Logger

	mounted    bool
	generation int
	focused    bool
	scroll     int
	textSize   float64
	theme      Theme
	caret      CaretState
	frame      FrameInfo

	// caretScroll is the scroll offset the caret was last drawn at.
	caretScroll int

	unsubs []func()
	events emitter.Emitter[Notification]
}

func NewController(doc *document.Document, src SurfaceSource, in TextInput, opts Options) (*Controller, error) {
	if doc == nil {
		return nil, errors.New("editor: document is required")
	}
	if src == nil {
		return nil, errors.New("editor: surface source is required")
	}
	if in == nil {
		return nil, errors.New("editor: text input is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		doc:      doc,
		source:   src,
		input:    in,
		opts:     opts,
		textSize: opts.TextSize,
		theme:    opts.Theme,
	}
	c.log = opts.Logger.With().Str("component", "editor").Str("document", doc.ID()).Logger()

	if in.Text() != doc.Contents() {
		in.SetText(doc.Contents())
	}
	c.subscribe()
	return c, nil
}

func (c *Controller) subscribe() {
	if c.unsubs != nil {
		return
	}
	c.unsubs = []func(){
		c.input.OnChange(c.HandleTextChange),
		c.input.OnSelect(c.HandleSelectionChange),
		c.input.OnBlur(c.HandleBlur),
	}
}

func (c *Controller) unsubscribe() {
	for _, off := range c.unsubs {
		off()
	}
	c.unsubs = nil
}

func (c *Controller) Document() *document.Document { return c.doc }

func (c *Controller) Input() TextInput { return c.input }

func (c *Controller) Options() Options { return c.opts }

// Index returns the caret offset, the start of the input selection.
func (c *Controller) Index() int {
	start, _ := c.input.Selection()
	return start
}

// SetIndex moves the caret. The input reports the move back through its
// select notification.
func (c *Controller) SetIndex(i int) {
	c.input.SetSelection(i, i)
}

func (c *Controller) Scroll() int { return c.scroll }

// SetScroll sets the first visible line, clamped to [0, lineCount-1].
func (c *Controller) SetScroll(n int) {
	n = clampInt(n, 0, c.doc.LineCount()-1)
	if n == c.scroll {
		return
	}
	c.scroll = n
	c.notify(NotifyScroll)
}

func (c *Controller) Focused() bool { return c.focused }

func (c *Controller) Mounted() bool { return c.mounted }

// Generation increases on every Attach. Hosts tag scheduled frames with it
// and drop frames from older generations.
func (c *Controller) Generation() int { return c.generation }

func (c *Controller) TextSize() float64 { return c.textSize }

// SetTextSize changes the font size and re-renders without scheduling.
func (c *Controller) SetTextSize(px float64) error {
	if px <= 0 {
		return errors.Errorf("%w: text size must be positive, got %g", ErrInvalidOptions, px)
	}
	c.textSize = px
	c.Render(RenderOpts{SkipSchedule: true})
	return nil
}

func (c *Controller) Theme() Theme { return c.theme }

// SetTheme replaces the theme. It takes effect on the next frame.
func (c *Controller) SetTheme(t Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.theme = t
	return nil
}

func (c *Controller) Caret() CaretState { return c.caret }

func (c *Controller) LastFrame() FrameInfo { return c.frame }

// OnEvent registers fn for controller notifications.
func (c *Controller) OnEvent(fn func(Notification)) func() { return c.events.On(fn) }

// Attach mounts the controller. It reports true when the controller was
// unmounted, meaning the host must start its frame loop.
func (c *Controller) Attach() bool {
	if c.mounted {
		return false
	}
	c.mounted = true
	c.generation++
	c.subscribe()
	c.log.Debug().Int("generation", c.generation).Msg("attached")
	return true
}

// Detach unmounts the controller and releases input subscriptions. Frames
// rendered afterwards never request a next frame.
func (c *Controller) Detach() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.unsubscribe()
	c.log.Debug().Msg("detached")
}

// HandleTextChange applies new input text to the document. A read-only
// document keeps its contents and the input is restored to them.
func (c *Controller) HandleTextChange(text string) {
	if c.doc.ReadOnly() {
		c.log.Debug().Msg("read-only document, change rejected")
		if c.input.Text() != c.doc.Contents() {
			c.input.SetText(c.doc.Contents())
		}
		return
	}
	c.doc.SetContents(text)
	if last := c.doc.LineCount() - 1; c.scroll > last {
		c.scroll = last
	}
	c.Render(RenderOpts{SkipSchedule: true})
	c.notify(NotifyChange)
}

// HandleSelectionChange renders the caret move.
func (c *Controller) HandleSelectionChange(start, end int) {
	if c.opts.FollowCaret {
		c.followCaret()
	}
	c.Render(RenderOpts{SkipSchedule: true, Event: EventCaret})
	c.notify(NotifyCaret)
}

// HandleBlur drops focus.
func (c *Controller) HandleBlur() {
	if !c.focused {
		return
	}
	c.focused = false
	c.log.Debug().Msg("blur")
	c.Render(RenderOpts{SkipSchedule: true})
	c.notify(NotifyBlur)
}

// Focus focuses the input and re-renders without scheduling.
func (c *Controller) Focus() {
	wasFocused := c.focused
	c.focused = true
	c.input.Focus()
	c.Render(RenderOpts{SkipSchedule: true})
	if !wasFocused {
		c.log.Debug().Msg("focus")
		c.notify(NotifyFocus)
	}
}

// PointerDown focuses the editor when (x, y) lies inside the surface and
// reports whether the event was consumed. A press on a text line also moves
// the caret to the nearest column.
func (c *Controller) PointerDown(x, y float64) bool {
	s, ok := c.source()
	if !ok || s == nil {
		return false
	}
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}

	c.Focus()
	if idx, ok := c.hitTest(x, y); ok {
		c.SetIndex(idx)
	}
	return true
}

// Wheel scrolls by a vertical wheel delta in surface units.
func (c *Controller) Wheel(deltaY float64) {
	if deltaY == 0 || math.IsNaN(deltaY) {
		return
	}
	span := float64(c.doc.LineCount())
	lines := int(math.Max(-span, math.Min(span, deltaY/c.LineHeight())))
	if lines == 0 {
		lines = 1
		if deltaY < 0 {
			lines = -1
		}
	}
	c.SetScroll(c.scroll + lines)
}

// LineHeight is the wheel distance of one line.
func (c *Controller) LineHeight() float64 {
	switch {
	case c.opts.WheelLineHeight > 0:
		return c.opts.WheelLineHeight
	case c.frame.CharHeight > 0:
		return c.frame.CharHeight
	default:
		return 1
	}
}

// Resize resizes the surface to w x h when the editor follows host size.
// Failures are logged and the next resize retries.
func (c *Controller) Resize(w, h float64) {
	if c.opts.Size != SizeAutomatic {
		return
	}
	s, ok := c.source()
	if !ok || s == nil {
		c.log.Debug().Msg("resize without surface")
		return
	}
	if err := s.Resize(w, h, c.opts.PixelRatio); err != nil {
		c.log.Warn().Err(err).Float64("width", w).Float64("height", h).Msg("resize failed")
	}
}

// followCaret scrolls the minimum amount that keeps the caret line inside
// the last measured view.
func (c *Controller) followCaret() {
	view := c.frame.LinesInView
	if view <= 0 {
		return
	}
	row, _ := c.doc.Position(c.Index())
	switch {
	case row < c.scroll:
		c.SetScroll(row)
	case row >= c.scroll+view:
		c.SetScroll(row - view + 1)
	}
}

// hitTest maps a point in the text area to the nearest caret offset.
func (c *Controller) hitTest(x, y float64) (int, bool) {
	f := c.frame
	if !f.Drawn || f.CharWidth <= 0 || f.CharHeight <= 0 || x < f.ContentX {
		return 0, false
	}
	line := int(math.Floor(y / f.CharHeight))
	if line < 0 || line >= f.DrawnLines {
		return 0, false
	}
	row := f.FirstLine + line
	col := int(math.Round((x - f.ContentX) / f.CharWidth))
	col = clampInt(col, 0, c.doc.LineLen(row))
	return c.doc.Offset(row, col), true
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
