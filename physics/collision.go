package physics

import (
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/vmath"
)

// Contains reports whether point lies inside the bounding circle centered at position.
// The boundary is inclusive, so a point exactly radius away is a hit
func Contains(point, position core.Point2D, radius float64) bool {
	return vmath.V2DistSq(point.Vec(), position.Vec()) <= radius*radius
}
