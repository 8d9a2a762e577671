// Package picoedit is a small embeddable code editor for terminal programs.
//
// Create builds a ready-to-run editor.Model from either initial contents or a
// full set of editor.Options:
//
//	m, err := picoedit.Create(picoedit.FromContents("hello"))
//	p := tea.NewProgram(host{m}, tea.WithAltScreen(), tea.WithMouseCellMotion())
//
// The lower level packages (document, editor, input, surface) can be wired by
// hand for custom surfaces or inputs.
package picoedit

import (
	"github.com/charmbracelet/lipgloss"
	"gitlab.com/tozd/go/errors"

	"github.com/iw2rmb/picoedit/document"
	"github.com/iw2rmb/picoedit/editor"
	"github.com/iw2rmb/picoedit/input"
	"github.com/iw2rmb/picoedit/surface"
)

// Terminal size used by automatically sized editors until the first resize.
const (
	DefaultColumns = 80
	DefaultRows    = 24
)

// CreateOptions selects what Create builds. Use FromContents for the
// contents-only form or FromOptions for full control.
type CreateOptions struct {
	Options editor.Options

	// Optional collaborators.
	DocumentID string
	Engine     document.Engine
	ReadOnly   bool
	Clipboard  input.Clipboard
	KeyMap     input.KeyMap
	Renderer   *lipgloss.Renderer
	Model      editor.ModelOptions
}

// TerminalOptions returns editor defaults adjusted for a cell grid: one cell
// per glyph, a one-cell caret without inset.
func TerminalOptions() editor.Options {
	o := editor.DefaultOptions()
	o.TextSize = 1
	o.CaretInset = 0
	o.CaretWidth = 1
	o.FollowCaret = true
	return o
}

// FromContents is the shorthand form: terminal defaults with initial text.
func FromContents(s string) CreateOptions {
	o := TerminalOptions()
	o.Contents = s
	return CreateOptions{Options: o}
}

// FromOptions uses opts as given.
func FromOptions(opts editor.Options) CreateOptions {
	return CreateOptions{Options: opts}
}

// Create builds the document, grid, input field and controller and returns
// the Bubble Tea model hosting them. The model starts its frame loop from
// Init.
func Create(co CreateOptions) (editor.Model, error) {
	opts := co.Options
	if err := opts.Validate(); err != nil {
		return editor.Model{}, errors.Errorf("picoedit: %w", err)
	}

	w, h := float64(DefaultColumns), float64(DefaultRows)
	if opts.Size == editor.SizeFixed {
		w, h = opts.Width, opts.Height
	}
	grid := surface.NewGrid(int(w), int(h), surface.WithRenderer(co.Renderer))
	if err := grid.Resize(w, h, opts.PixelRatio); err != nil {
		return editor.Model{}, errors.Errorf("picoedit: %w", err)
	}

	doc := document.New(co.DocumentID,
		document.WithEngine(co.Engine),
		document.WithReadOnly(co.ReadOnly),
		document.WithContents(opts.Contents),
	)
	field := input.New(opts.Contents, input.Options{
		KeyMap:    co.KeyMap,
		Clipboard: co.Clipboard,
		ReadOnly:  co.ReadOnly,
	})

	c, err := editor.NewController(doc, editor.StaticSource(grid), field, opts)
	if err != nil {
		return editor.Model{}, errors.Errorf("picoedit: %w", err)
	}
	return editor.NewModel(c, grid, field, co.Model), nil
}
