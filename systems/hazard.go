package systems

import (
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards teleports the player out of any poison area it overlaps.
func UpdateHazards(c *Context, e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !playerEntry.HasComponent(components.Object) {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	for _, other := range checkBox(playerObj, 0, 0, tags.ResolvHazard) {
		entry, ok := entryOf(other)
		if !ok || !entry.HasComponent(components.Hazard) {
			continue
		}
		TeleportTo(c, playerEntry, components.Hazard.Get(entry).Destination)
		return
	}
}
