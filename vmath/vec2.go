package vmath

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// V2DistSq returns squared distance between a and b without sqrt
func V2DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}
