package gamemath

import "math"

// Vec3 is a world-space vector. Y points up.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero  = Vec3{}
	Up    = Vec3{Y: 1}
	Down  = Vec3{Y: -1}
	Back  = Vec3{Z: -1}
	Right = Vec3{X: 1}
)

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Lerp blends from v toward o by t, clamping t to [0, 1] like a game engine's Vector3.Lerp.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	t = Clamp(t, 0, 1)
	return v.Add(o.Sub(v).Scale(t))
}

// Vec2 carries planar input (X right, Y forward).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }
