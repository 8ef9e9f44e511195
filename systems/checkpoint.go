package systems

import (
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSavePoints saves the player's checkpoint when it enters an active
// save point that has not saved yet, and removes spent save points once
// their delay has run out.
func UpdateSavePoints(c *Context, e *ecs.ECS) {
	var expired []*donburi.Entry
	components.SavePoint.Each(e.World, func(entry *donburi.Entry) {
		sp := components.SavePoint.Get(entry)
		if sp.HasSaved && sp.RemoveIn >= 0 {
			sp.RemoveIn -= c.Dt
			if sp.RemoveIn <= 0 {
				expired = append(expired, entry)
			}
		}
	})
	for _, entry := range expired {
		removeWithObject(e, entry)
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !playerEntry.HasComponent(components.Object) {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	for _, other := range checkBox(playerObj, 0, 0, tags.ResolvSavePoint) {
		entry, ok := entryOf(other)
		if !ok || !entry.HasComponent(components.SavePoint) || components.SavePoint.Get(entry).HasSaved {
			continue
		}
		ActivateSavePoint(c, entry, playerEntry)
	}
}

// ActivateSavePoint saves the checkpoint from sp once. Inactive or already
// used save points are ignored.
func ActivateSavePoint(c *Context, entry, player *donburi.Entry) bool {
	sp := components.SavePoint.Get(entry)
	if !sp.Active {
		return false
	}
	if sp.HasSaved {
		c.Diag.Report(RedundantTrigger, "savepoint", "already saved")
		return false
	}

	sp.HasSaved = true
	SaveCheckpoint(c, player, sp.Position)
	if sp.DestroyAfterSave {
		sp.RemoveIn = config.SavePoint.RemoveDelay
	}
	return true
}

// ResetSavePoint lets a save point save again and cancels its removal.
func ResetSavePoint(entry *donburi.Entry) {
	sp := components.SavePoint.Get(entry)
	sp.HasSaved = false
	sp.RemoveIn = -1
}

// SetSavePointActive enables or disables a save point.
func SetSavePointActive(entry *donburi.Entry, active bool) {
	components.SavePoint.Get(entry).Active = active
}

func removeWithObject(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	e.World.Remove(entry.Entity())
}
