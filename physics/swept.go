package physics

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/vmath"
)

// Mode selects the wall collision strategy
type Mode uint8

const (
	// ModeDiscrete tests walls once after the move; fast balls can tunnel
	ModeDiscrete Mode = iota
	// ModeSwept folds the whole frame's travel back into the arena
	ModeSwept
)

// String returns the configuration name of the mode
func (m Mode) String() string {
	switch m {
	case ModeDiscrete:
		return "discrete"
	case ModeSwept:
		return "swept"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode maps a configuration name to a Mode, empty selects discrete
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "discrete":
		return ModeDiscrete, nil
	case "swept", "continuous":
		return ModeSwept, nil
	default:
		return ModeDiscrete, fmt.Errorf("unknown collision mode %q", s)
	}
}

// Step advances one frame using the given collision mode and reports wall contacts
func Step(mode Mode, p core.Point2D, v core.Velocity2D, r core.Radius, b core.Bounds) (core.Point2D, core.Velocity2D, Contact) {
	if mode == ModeSwept {
		return AdvanceSwept(p, v, r, b)
	}
	return advanceDiscrete(p, v, r, b)
}

// AdvanceSwept moves the point one frame, mirroring any travel past a wall back into
// [r, size-r] so the circle never leaves the arena regardless of speed.
// An axis too narrow for the ball falls back to the discrete test
func AdvanceSwept(p core.Point2D, v core.Velocity2D, r core.Radius, b core.Bounds) (core.Point2D, core.Velocity2D, Contact) {
	next := Integrate(p, v)
	rf := float64(r)

	var contact Contact

	if b.Width > 2*rf {
		x, n := vmath.Fold(next.X, rf, b.Width-rf)
		next.X = x
		if n > 0 {
			contact |= ContactX
			if n%2 == 1 {
				v.DX = -v.DX
			}
		}
	} else if vx, hit := ReflectX(next, v, r, b); hit {
		v = vx
		contact |= ContactX
	}

	if b.Height > 2*rf {
		y, n := vmath.Fold(next.Y, rf, b.Height-rf)
		next.Y = y
		if n > 0 {
			contact |= ContactY
			if n%2 == 1 {
				v.DY = -v.DY
			}
		}
	} else if vy, hit := ReflectY(next, v, r, b); hit {
		v = vy
		contact |= ContactY
	}

	return next, v, contact
}
