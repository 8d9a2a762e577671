package editor

import (
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.Base("invalid editor options")

// SizeMode selects how the surface is sized.
type SizeMode int

const (
	// SizeAutomatic follows host resizes.
	SizeAutomatic SizeMode = iota
	// SizeFixed keeps Width x Height and ignores resizes.
	SizeFixed
)

func (m SizeMode) String() string {
	if m == SizeFixed {
		return "fixed"
	}
	return "automatic"
}

// Easing shapes animated caret motion.
type Easing int

const (
	EasingLinear Easing = iota
	EasingSmooth
)

// Options configures an editor.
type Options struct {
	Size SizeMode
	// Width and Height are used with SizeFixed.
	Width, Height float64

	Contents string

	EnableLineCount bool
	EnableGutter    bool
	AnimatedCursor  bool
	// FollowCaret scrolls so the caret line stays in view after caret moves.
	FollowCaret bool

	TextSize   float64
	FontFamily string
	PixelRatio float64

	// CaretInset is the vertical offset of the caret from the line top.
	CaretInset float64
	CaretWidth float64
	// WheelLineHeight converts wheel deltas to lines. Zero uses the measured
	// glyph height.
	WheelLineHeight float64
	CaretEasing     Easing

	Theme Theme

	Logger zerolog.Logger
}

func DefaultOptions() Options {
	return Options{
		Size:            SizeAutomatic,
		EnableLineCount: true,
		EnableGutter:    true,
		TextSize:        16,
		FontFamily:      "monospace",
		PixelRatio:      1,
		CaretInset:      2,
		CaretWidth:      2,
		Theme:           DefaultTheme(),
		Logger:          zerolog.Nop(),
	}
}

func (o Options) Validate() error {
	if o.Size == SizeFixed && (o.Width <= 0 || o.Height <= 0) {
		return errors.Errorf("%w: fixed size needs positive width and height, got %gx%g", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.TextSize <= 0 {
		return errors.Errorf("%w: text size must be positive, got %g", ErrInvalidOptions, o.TextSize)
	}
	if o.PixelRatio <= 0 {
		return errors.Errorf("%w: pixel ratio must be positive, got %g", ErrInvalidOptions, o.PixelRatio)
	}
	if o.CaretWidth < 0 || o.WheelLineHeight < 0 {
		return errors.Errorf("%w: caret width and wheel line height must not be negative", ErrInvalidOptions)
	}
	if err := o.Theme.Validate(); err != nil {
		return errors.Errorf("theme: %w", err)
	}
	return nil
}
