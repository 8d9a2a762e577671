package editor

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/picoedit/input"
	"github.com/iw2rmb/picoedit/surface"
)

// DefaultFrameInterval is the frame tick period.
const DefaultFrameInterval = time.Second / 60

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ModelOptions configures the Bubble Tea adapter.
type ModelOptions struct {
	// FrameInterval defaults to DefaultFrameInterval.
	FrameInterval time.Duration
	// WheelLines is the number of lines one wheel notch scrolls. Default 3.
	WheelLines int
	// OriginX and OriginY locate the editor's top-left cell on screen. Mouse
	// coordinates are translated by them.
	OriginX, OriginY int
}

// frameMsg is one animation frame. Frames from another model or an older
// generation are dropped.
type frameMsg struct {
	id  int
	gen int
}

// Model hosts a Controller inside a Bubble Tea program. Frame ticks drive
// Render, key messages go to the input field and mouse messages to the
// controller. View returns the grid the controller draws into.
type Model struct {
	c     *Controller
	grid  *surface.Grid
	field *input.Field
	opts  ModelOptions
	id    int
}

func NewModel(c *Controller, grid *surface.Grid, field *input.Field, opts ModelOptions) Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.WheelLines <= 0 {
		opts.WheelLines = 3
	}
	return Model{c: c, grid: grid, field: field, opts: opts, id: nextID()}
}

func (m Model) Controller() *Controller { return m.c }

func (m Model) Grid() *surface.Grid { return m.grid }

func (m Model) Field() *input.Field { return m.field }

func (m Model) ID() int { return m.id }

// Init mounts the controller and starts the frame loop.
func (m Model) Init() tea.Cmd { return m.Attach() }

// Attach mounts the controller, draws a first frame and returns the first
// tick. It returns nil when already mounted.
func (m Model) Attach() tea.Cmd {
	if !m.c.Attach() {
		return nil
	}
	m.c.Render(RenderOpts{SkipSchedule: true})
	return m.tick(m.c.Generation())
}

// Detach unmounts the controller. Pending ticks are dropped when they
// arrive.
func (m Model) Detach() { m.c.Detach() }

func (m Model) tick(gen int) tea.Cmd {
	id := m.id
	return tea.Tick(m.opts.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen}
	})
}

// Focus focuses the editor without moving the caret.
func (m Model) Focus() { m.c.Focus() }

// Blur drops focus through the input field.
func (m Model) Blur() { m.field.Blur() }

func (m Model) Focused() bool { return m.c.Focused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != m.id || msg.gen != m.c.Generation() || !m.c.Mounted() {
			return m, nil
		}
		if m.c.Render(RenderOpts{}) {
			return m, m.tick(msg.gen)
		}
		return m, nil
	case tea.KeyMsg:
		if m.c.Focused() {
			m.field.HandleKey(msg)
		}
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	case tea.WindowSizeMsg:
		m.c.Resize(float64(msg.Width), float64(msg.Height))
		return m, nil
	case tea.BlurMsg:
		m.field.Blur()
		return m, nil
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	x := float64(msg.X - m.opts.OriginX)
	y := float64(msg.Y - m.opts.OriginY)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.c.Wheel(-float64(m.opts.WheelLines) * m.c.LineHeight())
	case msg.Button == tea.MouseButtonWheelDown:
		m.c.Wheel(float64(m.opts.WheelLines) * m.c.LineHeight())
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.c.PointerDown(x, y)
	}
	return m
}

func (m Model) View() string {
	if m.grid == nil {
		return ""
	}
	return m.grid.String()
}
