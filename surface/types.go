package surface

import "gitlab.com/tozd/go/errors"

// ErrInvalidSize is returned when a surface is resized to a non-positive size.
var ErrInvalidSize = errors.Base("invalid surface size")

// Align selects which end of a text run is anchored at the x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

func (a Align) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// Font describes the active text face.
type Font struct {
	Family string
	Size   float64
}
