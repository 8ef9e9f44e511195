package factory

import (
	"github.com/automoto/slambounce/archetypes"
	"github.com/automoto/slambounce/components"
	cfg "github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on position (world units).
func CreatePlayer(ecs *ecs.ECS, m gamemath.SpaceMapping, position gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x, y, w, h := m.RectToSpace(position, cfg.Player.Width, cfg.Player.Height)
	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player

	components.Player.SetValue(player, components.NewPlayerData())
	components.Body.SetValue(player, components.BodyData{
		Position:         position,
		PreviousPosition: position,
		Mass:             1,
		Width:            cfg.Player.Width,
		Height:           cfg.Player.Height,
		LinearDamping:    cfg.Player.LinearDamping,
		AngularDamping:   cfg.Player.AngularDamping,
		FreezeRotation:   true,
		Continuous:       true,
		Interpolate:      true,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{})

	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, obj)

	return player
}
