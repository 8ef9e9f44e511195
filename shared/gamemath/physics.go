package gamemath

import "math"

// Clamp constrains value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// ApplyDamping scales a velocity the way a rigidbody drag term does:
// v * clamp(1 - damping*dt, 0, 1).
func ApplyDamping(v Vec3, damping, dt float64) Vec3 {
	return v.Scale(Clamp(1-damping*dt, 0, 1))
}

// Rotate applies an Euler rotation in degrees to v. Pitch (X) is applied
// before yaw (Y); positive pitch tilts the forward axis downward.
func Rotate(v Vec3, pitchDeg, yawDeg float64) Vec3 {
	p := pitchDeg * math.Pi / 180
	y := yawDeg * math.Pi / 180

	sp, cp := math.Sincos(p)
	r := Vec3{
		X: v.X,
		Y: v.Y*cp - v.Z*sp,
		Z: v.Y*sp + v.Z*cp,
	}

	sy, cy := math.Sincos(y)
	return Vec3{
		X: r.X*cy + r.Z*sy,
		Y: r.Y,
		Z: -r.X*sy + r.Z*cy,
	}
}

// LerpAngle interpolates between two angles in degrees along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	delta := math.Mod(to-from, 360)
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return from + delta*Clamp(t, 0, 1)
}
