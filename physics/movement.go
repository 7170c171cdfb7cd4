package physics

import (
	"github.com/lixenwraith/bounce/core"
)

// Contact records which walls were touched during a step (bitmask)
type Contact uint8

const (
	ContactNone Contact = 0
	ContactX    Contact = 1 << 0 // Left or right wall
	ContactY    Contact = 1 << 1 // Top or bottom wall
)

// Integrate performs explicit Euler integration with a unit frame step: p = p + v
func Integrate(p core.Point2D, v core.Velocity2D) core.Point2D {
	return core.Point2D{X: p.X + v.DX, Y: p.Y + v.DY}
}

// ReflectX negates the horizontal velocity when the bounding circle touches or crosses a side wall.
// Position is not clamped, one frame of overshoot is preserved
func ReflectX(p core.Point2D, v core.Velocity2D, r core.Radius, b core.Bounds) (core.Velocity2D, bool) {
	rf := float64(r)
	if p.X-rf <= 0 || p.X+rf >= b.Width {
		v.DX = -v.DX
		return v, true
	}
	return v, false
}

// ReflectY negates the vertical velocity when the bounding circle touches or crosses the top or bottom wall
func ReflectY(p core.Point2D, v core.Velocity2D, r core.Radius, b core.Bounds) (core.Velocity2D, bool) {
	rf := float64(r)
	if p.Y-rf <= 0 || p.Y+rf >= b.Height {
		v.DY = -v.DY
		return v, true
	}
	return v, false
}

// Advance moves the point one frame and reflects velocity off the walls it reached.
// Pure and branch-local: no validation, inputs are trusted to be finite
func Advance(p core.Point2D, v core.Velocity2D, r core.Radius, b core.Bounds) (core.Point2D, core.Velocity2D) {
	next, vel, _ := advanceDiscrete(p, v, r, b)
	return next, vel
}

// advanceDiscrete is Advance with contact reporting
func advanceDiscrete(p core.Point2D, v core.Velocity2D, r core.Radius, b core.Bounds) (core.Point2D, core.Velocity2D, Contact) {
	next := Integrate(p, v)

	var contact Contact
	vel, hitX := ReflectX(next, v, r, b)
	if hitX {
		contact |= ContactX
	}
	vel, hitY := ReflectY(next, vel, r, b)
	if hitY {
		contact |= ContactY
	}
	return next, vel, contact
}
