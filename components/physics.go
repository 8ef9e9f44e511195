package components

import (
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is a simple rigid body. Position is the centre of the collision box.
type BodyData struct {
	Position        gamemath.Vec3
	Velocity        gamemath.Vec3
	Rotation        gamemath.Vec3 // Euler degrees
	AngularVelocity gamemath.Vec3
	Mass            float64
	Width, Height   float64 // world units, collision box on the X/Y plane

	LinearDamping  float64
	AngularDamping float64
	FreezeRotation bool
	Continuous     bool // sweep moves in sub-steps so fast bodies cannot tunnel
	Interpolate    bool

	PreviousPosition gamemath.Vec3 // for render interpolation
}

var Body = donburi.NewComponentType[BodyData]()

// AddImpulse changes velocity instantly by impulse / mass.
func (b *BodyData) AddImpulse(impulse gamemath.Vec3) {
	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	b.Velocity = b.Velocity.Add(impulse.Scale(1 / mass))
}

// AddAcceleration integrates a mass independent acceleration over dt.
func (b *BodyData) AddAcceleration(accel gamemath.Vec3, dt float64) {
	b.Velocity = b.Velocity.Add(accel.Scale(dt))
}
