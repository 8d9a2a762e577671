package editor

// NotifyKind identifies a controller notification.
type NotifyKind int

const (
	NotifyChange NotifyKind = iota
	NotifyCaret
	NotifyFocus
	NotifyBlur
	NotifyScroll
)

var notifyNames = [...]string{"change", "caret", "focus", "blur", "scroll"}

func (k NotifyKind) String() string {
	if k < 0 || int(k) >= len(notifyNames) {
		return "unknown"
	}
	return notifyNames[k]
}

// Notification is delivered to OnEvent listeners after the controller has
// applied the corresponding mutation.
type Notification struct {
	Kind   NotifyKind
	Index  int
	Scroll int
	// Text is the document contents for NotifyChange.
	Text string
}

// Event tags a render with the input that caused it.
type Event int

const (
	EventNone Event = iota
	// EventCaret marks a caret move and restarts caret animation.
	EventCaret
)

// RenderOpts controls one Render call.
type RenderOpts struct {
	// SkipSchedule suppresses the request for a next frame.
	SkipSchedule bool
	Event        Event
}

// FrameInfo describes the last rendered frame.
type FrameInfo struct {
	// Drawn is false when the frame had no surface.
	Drawn bool

	CharWidth, CharHeight float64
	LinesInView           int
	FirstLine             int
	DrawnLines            int

	LineCountWidth float64
	ContentX       float64

	CaretVisible bool
}

func (c *Controller) notify(kind NotifyKind) {
	n := Notification{Kind: kind, Index: c.Index(), Scroll: c.scroll}
	if kind == NotifyChange {
		n.Text = c.doc.Contents()
	}
	c.events.Emit(n)
}
