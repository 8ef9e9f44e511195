// Package feedback implements the short-lived sensory effects that follow an
// impact: a global hit-pause and a decaying camera shake. Both run as small
// resumable tasks ticked once per frame on unscaled time.
package feedback

import "github.com/automoto/slambounce/shared/gamemath"

// Environment is the process-wide physics state shared by every system.
// It has no locking; the game loop is single threaded. HitPause is the only
// writer of TimeScale and the most recent bounce is the only writer of Gravity.
type Environment struct {
	TimeScale float64
	Gravity   gamemath.Vec3
}

// NewEnvironment returns an environment running at normal speed with the
// given downward gravity magnitude.
func NewEnvironment(baseGravity float64) *Environment {
	return &Environment{
		TimeScale: 1,
		Gravity:   gamemath.Vec3{Y: -baseGravity},
	}
}

// SetGravityScale sets world gravity to -baseGravity * scale.
func (e *Environment) SetGravityScale(baseGravity, scale float64) {
	e.Gravity = gamemath.Vec3{Y: -baseGravity * scale}
}
