package factory

import (
	"github.com/automoto/slambounce/archetypes"
	"github.com/automoto/slambounce/assets"
	"github.com/automoto/slambounce/components"
	cfg "github.com/automoto/slambounce/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the resolv cell size in pixels.
const spaceCellSize = 16

// CreateLevel spawns the level entry, its collision space and every object
// in it, and returns the player.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) (levelEntry, player *donburi.Entry) {
	levelEntry = archetypes.Level.Spawn(ecs)
	components.Level.SetValue(levelEntry, components.LevelData{
		CurrentLevel: level,
		Mapping:      level.Mapping,
	})

	CreateSpace(ecs, level.Width, level.Height, spaceCellSize, spaceCellSize)

	for _, r := range level.Solids {
		CreatePlatform(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range level.Bouncy {
		CreateBouncy(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, spawn := range level.Enemies {
		CreateEnemy(ecs, spawn.X, spawn.Y, spawn.Width, spawn.Height, spawn.Class, spawn.Health)
	}
	for _, sp := range level.SavePoints {
		position := level.Center(sp.Rect)
		CreateSavePoint(ecs, sp.X, sp.Y, sp.Width, sp.Height, position, cfg.SavePoint.DestroyAfterSave && !sp.Keep)
	}

	spawn := cfg.Player.DefaultSpawn
	if level.HasPlayerSpawn {
		spawn = level.PlayerSpawn
	}
	for _, area := range level.PoisonAreas {
		destination := spawn
		if area.HasDestination {
			destination = area.Destination
		}
		CreatePoisonArea(ecs, area.X, area.Y, area.Width, area.Height, destination)
	}

	player = CreatePlayer(ecs, level.Mapping, spawn)
	return levelEntry, player
}
