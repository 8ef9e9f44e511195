package factory

import (
	"github.com/automoto/slambounce/archetypes"
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePoisonArea creates an invisible volume that teleports the player to destination.
func CreatePoisonArea(ecs *ecs.ECS, x, y, w, h float64, destination gamemath.Vec3) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hazard

	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	components.Hazard.SetValue(hazard, components.HazardData{Destination: destination})

	addToSpace(ecs, obj)
	return hazard
}
