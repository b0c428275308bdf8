package common

import "github.com/jakecoffman/cp"

// Vec3 is a world-space point. Y is up; X/Z span the horizontal plane.
type Vec3 struct {
	X, Y, Z float64
}

// Horizontal returns the (x, z) projection as a cp vector.
func (v Vec3) Horizontal() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

// WithHorizontal replaces the horizontal components, keeping Y.
func (v Vec3) WithHorizontal(h cp.Vector) Vec3 {
	return Vec3{X: h.X, Y: v.Y, Z: h.Y}
}

// HorizontalDistance is the distance between a and b ignoring Y.
func HorizontalDistance(a, b Vec3) float64 {
	return a.Horizontal().Distance(b.Horizontal())
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
