package components

import (
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is a third-person camera trailing a subject.
type CameraData struct {
	Position gamemath.Vec3
	Pitch    float64 // degrees, positive looks down
	Yaw      float64
	Velocity gamemath.Vec3 // smooth damp state

	Distance       float64
	Height         float64
	FollowSpeed    float64
	RotationSpeed  float64
	SmoothMovement bool
	LookAtTarget   bool
	LookAtOffset   gamemath.Vec3

	BasePitch        float64
	ChargePitchBonus float64
	FieldOfView      float64

	Subject *donburi.Entry

	// ShakeOffset is the scaled local-space shake applied this frame.
	ShakeOffset gamemath.Vec3
	// Base is the position before the shake was added.
	Base gamemath.Vec3

	// SubjectMissing is set while there is nothing to follow.
	SubjectMissing bool
}

var Camera = donburi.NewComponentType[CameraData]()
