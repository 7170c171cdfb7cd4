package core

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/bounce/vmath"
)

var (
	// ErrNonFinite is returned for NaN or infinite inputs
	ErrNonFinite = errors.New("value must be finite")
	// ErrNonPositive is returned for zero or negative sizes
	ErrNonPositive = errors.New("value must be positive")
)

// Point2D is a position in world units, origin top-left, y down
type Point2D struct {
	X, Y float64
}

// Velocity2D is a signed per-axis displacement per frame
type Velocity2D struct {
	DX, DY float64
}

// Bounds is the axis-aligned arena the ball stays within
type Bounds struct {
	Width, Height float64
}

// Radius is the half-extent of the ball footprint
type Radius float64

// NewPoint validates a position
func NewPoint(x, y float64) (Point2D, error) {
	if err := checkFinite("x", x); err != nil {
		return Point2D{}, err
	}
	if err := checkFinite("y", y); err != nil {
		return Point2D{}, err
	}
	return Point2D{X: x, Y: y}, nil
}

// NewVelocity validates a velocity; zero and negative components are legal
func NewVelocity(dx, dy float64) (Velocity2D, error) {
	if err := checkFinite("dx", dx); err != nil {
		return Velocity2D{}, err
	}
	if err := checkFinite("dy", dy); err != nil {
		return Velocity2D{}, err
	}
	return Velocity2D{DX: dx, DY: dy}, nil
}

// NewBounds validates arena dimensions
func NewBounds(width, height float64) (Bounds, error) {
	if err := checkPositive("width", width); err != nil {
		return Bounds{}, err
	}
	if err := checkPositive("height", height); err != nil {
		return Bounds{}, err
	}
	return Bounds{Width: width, Height: height}, nil
}

// NewRadius validates the ball radius
func NewRadius(r float64) (Radius, error) {
	if err := checkPositive("radius", r); err != nil {
		return 0, err
	}
	return Radius(r), nil
}

// Vec converts to a vmath vector
func (p Point2D) Vec() vmath.Vec2 {
	return vmath.Vec2{X: p.X, Y: p.Y}
}

// Center returns the arena midpoint
func (b Bounds) Center() Point2D {
	return Point2D{X: b.Width / 2, Y: b.Height / 2}
}

func checkFinite(name string, v float64) error {
	if !vmath.IsFinite(v) {
		return fmt.Errorf("%s %v: %w", name, v, ErrNonFinite)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%s %v: %w", name, v, ErrNonPositive)
	}
	return nil
}
