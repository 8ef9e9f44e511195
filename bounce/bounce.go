// Package bounce maps a bounce category and the physics tunables onto the
// vertical launch speed and the world gravity that follow an impact.
package bounce

import (
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/feedback"
	"github.com/automoto/slambounce/shared/gamemath"
)

// SuperUpSpeedFactor scales the enhanced up-speed for a Super bounce.
const SuperUpSpeedFactor = 1.5

// Result is the outcome of a bounce calculation.
type Result struct {
	Type         config.BounceType
	UpSpeed      float64 // already scaled by GlobalBounceStrength
	GravityScale float64
}

// UpSpeed returns the unscaled launch speed of a category.
func UpSpeed(t config.BounceType, p config.PhysicsConfig) float64 {
	switch t {
	case config.BounceEnhanced:
		return p.EnhancedUpSpeed
	case config.BounceSuper:
		return p.EnhancedUpSpeed * SuperUpSpeedFactor
	default:
		return p.NormalUpSpeed
	}
}

// GravityScale returns the gravity multiplier of a category. Super reuses
// the enhanced scale.
func GravityScale(t config.BounceType, p config.PhysicsConfig) float64 {
	switch t {
	case config.BounceEnhanced, config.BounceSuper:
		return p.EnhancedGravityScale
	default:
		return p.NormalGravityScale
	}
}

// Calculate returns the launch speed and gravity scale for t.
func Calculate(t config.BounceType, p config.PhysicsConfig) Result {
	return Result{
		Type:         t,
		UpSpeed:      UpSpeed(t, p) * p.GlobalBounceStrength,
		GravityScale: GravityScale(t, p),
	}
}

// CalculateCustom returns a Super bounce whose speed is the enhanced speed
// times multiplier instead of the fixed factor.
func CalculateCustom(multiplier float64, p config.PhysicsConfig) Result {
	return Result{
		Type:         config.BounceSuper,
		UpSpeed:      p.EnhancedUpSpeed * multiplier * p.GlobalBounceStrength,
		GravityScale: GravityScale(config.BounceEnhanced, p),
	}
}

// Apply writes r into velocity, keeping the horizontal components, and sets
// world gravity. Gravity is global: the latest bounce decides it for every
// body until the next one.
func Apply(r Result, velocity gamemath.Vec3, env *feedback.Environment, p config.PhysicsConfig) gamemath.Vec3 {
	velocity.Y = r.UpSpeed
	UpdateGravity(r.GravityScale, env, p)
	return velocity
}

// UpdateGravity sets world gravity to -BaseGravity * scale.
func UpdateGravity(scale float64, env *feedback.Environment, p config.PhysicsConfig) {
	if env == nil {
		return
	}
	env.SetGravityScale(p.BaseGravity, scale)
}
