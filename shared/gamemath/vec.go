package gamemath

import "math"

// Vec3 is a right-handed world vector: +Y up, -Z forward at yaw 0.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len uses Hypot so tiny components do not underflow to zero.
func (v Vec3) Len() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// HorizontalDistance is the distance between two points on the XZ plane.
func HorizontalDistance(a, b Vec3) float64 {
	return b.Sub(a).Horizontal().Len()
}

// Normalize returns the unit vector, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	// Divide by the largest component first to keep subnormal input exact.
	m := max(math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z))
	if m == 0 {
		return Vec3{}
	}
	u := Vec3{v.X / m, v.Y / m, v.Z / m}
	return u.Scale(1 / u.Len())
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
