package archetypes

import (
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Bouncy = newArchetype(
		tags.Bouncy,
		components.Object,
		components.Interactable,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.PlayerInput,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Interactable,
		components.Object,
	)
	SavePoint = newArchetype(
		tags.SavePoint,
		components.SavePoint,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
