package factory

import (
	"github.com/automoto/slambounce/archetypes"
	"github.com/automoto/slambounce/components"
	cfg "github.com/automoto/slambounce/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the follow camera from the camera tunables. subject
// may be nil, in which case the camera follows the first player it finds.
func CreateCamera(ecs *ecs.ECS, subject *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	c := cfg.Camera
	components.Camera.SetValue(camera, components.CameraData{
		Distance:         c.Distance,
		Height:           c.Height,
		FollowSpeed:      c.FollowSpeed,
		RotationSpeed:    c.RotationSpeed,
		SmoothMovement:   c.SmoothMovement,
		LookAtTarget:     c.LookAtTarget,
		LookAtOffset:     c.LookAtOffset,
		BasePitch:        c.BasePitch,
		ChargePitchBonus: c.ChargePitchBonus,
		FieldOfView:      c.FieldOfView,
		Pitch:            c.BasePitch,
		Subject:          subject,
	})
	return camera
}
