package gamemath

// SmoothDamp moves current toward target with a critically damped spring.
// velocity is carried between calls. smoothTime is roughly the time to reach
// the target. With dt <= 0 the value does not move.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	if smoothTime < 0.0001 {
		smoothTime = 0.0001
	}

	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	origTarget := target

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := (current - change) + (change+temp)*exp

	// Prevent overshooting
	if (origTarget-current > 0) == (output > origTarget) {
		output = origTarget
		*velocity = (output - origTarget) / dt
	}
	return output
}

// SmoothDampVec3 applies SmoothDamp per axis.
func SmoothDampVec3(current, target Vec3, velocity *Vec3, smoothTime, dt float64) Vec3 {
	return Vec3{
		X: SmoothDamp(current.X, target.X, &velocity.X, smoothTime, dt),
		Y: SmoothDamp(current.Y, target.Y, &velocity.Y, smoothTime, dt),
		Z: SmoothDamp(current.Z, target.Z, &velocity.Z, smoothTime, dt),
	}
}
