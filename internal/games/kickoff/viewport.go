package kickoff

import "github.com/vovakirdan/space-kickoff/internal/core"

// Viewport is the visible window onto the canvas.
// Offset is the canvas coordinate of the window's top-left corner; physics runs in
// absolute canvas coordinates and only drawing subtracts the offset back out.
type Viewport struct {
	Offset      core.Vec2
	Width       float64
	Height      float64
	RulerOffset float64 // Height of the 0 m mark above the canvas bottom
}

// NewViewport creates a viewport at the origin.
func NewViewport(width, height, rulerOffset float64) *Viewport {
	return &Viewport{Width: width, Height: height, RulerOffset: rulerOffset}
}

// TranslateBy shifts the drawing origin by (dx, dy).
// The offset records how far the origin moved away from canvas (0, 0), so it
// accumulates the inverse of each shift.
func (v *Viewport) TranslateBy(dx, dy float64) {
	v.Offset = v.Offset.Sub(core.V(dx, dy))
}

// SetTopLeft moves the window so that its top-left corner sits at canvas (x, y).
func (v *Viewport) SetTopLeft(x, y float64) {
	delta := v.Offset.Sub(core.V(x, y))
	v.TranslateBy(delta.X, delta.Y)
}

// Resize changes the canvas size, keeping the offset.
func (v *Viewport) Resize(width, height float64) {
	v.Width = width
	v.Height = height
}

// WorldHeight converts an absolute canvas Y to units climbed above the 0 m mark.
// Values grow as y decreases. The result does not depend on the offset.
func (v *Viewport) WorldHeight(y float64) float64 {
	return -(y - (v.Height - v.RulerOffset))
}

// Top returns the canvas Y of the window's top edge.
func (v *Viewport) Top() float64 {
	return v.Offset.Y
}

// ToView converts an absolute canvas point to window-relative coordinates.
func (v *Viewport) ToView(p core.Vec2) core.Vec2 {
	return p.Sub(v.Offset)
}

// ToWorld converts a window-relative point to absolute canvas coordinates.
func (v *Viewport) ToWorld(p core.Vec2) core.Vec2 {
	return p.Add(v.Offset)
}

// OutOfBounds reports which window edges a square body has crossed.
type OutOfBounds struct {
	Above bool
	Below bool
	Left  bool
	Right bool
}

// X reports a horizontal violation.
func (o OutOfBounds) X() bool { return o.Left || o.Right }

// Y reports a vertical violation.
func (o OutOfBounds) Y() bool { return o.Above || o.Below }

// Any reports any violation.
func (o OutOfBounds) Any() bool { return o.X() || o.Y() }

// Bounds tests a size x size body with top-left corner pos against the window.
// Below triggers only once the body's top edge reaches the bottom edge, so the
// body has fully left the window.
func (v *Viewport) Bounds(pos core.Vec2, size float64) OutOfBounds {
	return OutOfBounds{
		Above: pos.Y < v.Offset.Y,
		Below: pos.Y >= v.Offset.Y+v.Height,
		Left:  pos.X < v.Offset.X,
		Right: pos.X+size > v.Offset.X+v.Width,
	}
}
