package editor

import "github.com/iw2rmb/picoedit/internal/anim"

// caretSteps is the number of frames an animated caret move takes.
const caretSteps = 5

// CaretState is the on-screen caret position and its animation progress.
type CaretState struct {
	X, Y         float64
	FromX, FromY float64
	ToX, ToY     float64
	// Placed is false until the caret has been drawn once.
	Placed bool

	step int
}

// Progress returns the animation progress in [0, 1].
func (c CaretState) Progress() float64 {
	return float64(c.step) / caretSteps
}

// Animating reports whether an animated move is in flight.
func (c CaretState) Animating() bool { return c.step < caretSteps }

func (c *CaretState) snap(x, y float64) {
	c.X, c.Y = x, y
	c.FromX, c.FromY = x, y
	c.ToX, c.ToY = x, y
	c.step = caretSteps
	c.Placed = true
}

// place positions the caret for an immediate-mode frame.
func (c *CaretState) place(x, y float64) {
	c.snap(x, y)
}

// advance runs one animated frame toward (x, y).
//
// A caret event restarts the animation from the current position. Without
// one, an in-flight animation retargets. A settled caret stays where it is
// unless the view scrolled under it, in which case it jumps to the target.
func (c *CaretState) advance(x, y float64, moved, scrolled bool, easing Easing) {
	if !c.Placed {
		c.snap(x, y)
	}
	switch {
	case moved:
		c.FromX, c.FromY = c.X, c.Y
		c.ToX, c.ToY = x, y
		c.step = 0
		return
	case !c.Animating():
		if scrolled {
			c.snap(x, y)
		}
		return
	}

	c.ToX, c.ToY = x, y
	c.step++
	if !c.Animating() {
		c.X, c.Y = c.ToX, c.ToY
		return
	}
	t := c.Progress()
	if easing == EasingSmooth {
		t = anim.Smoothstep(0, 1, t)
	}
	c.X = anim.Lerp(c.FromX, c.ToX, t)
	c.Y = anim.Lerp(c.FromY, c.ToY, t)
}
