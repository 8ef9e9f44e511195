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

// CreateSavePoint creates a save point volume. position is the world point
// saved as the checkpoint.
func CreateSavePoint(ecs *ecs.ECS, x, y, w, h float64, position gamemath.Vec3, destroyAfterSave bool) *donburi.Entry {
	savePoint := archetypes.SavePoint.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSavePoint)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = savePoint

	components.Object.SetValue(savePoint, components.ObjectData{Object: obj})
	components.SavePoint.SetValue(savePoint, components.SavePointData{
		Position:         position,
		Active:           true,
		DestroyAfterSave: destroyAfterSave,
		RemoveIn:         -1,
	})

	addToSpace(ecs, obj)
	return savePoint
}
