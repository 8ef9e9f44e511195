package factory

import (
	"github.com/automoto/slambounce/archetypes"
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a solid, non-interactive block.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return platform
}

// CreateBouncy spawns a generic bouncy surface.
func CreateBouncy(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	pad := archetypes.Bouncy.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvBouncy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = pad
	components.Object.SetValue(pad, components.ObjectData{Object: obj})
	components.Interactable.SetValue(pad, components.InteractableData{Category: components.CategoryBouncy})

	addToSpace(ecs, obj)
	return pad
}
