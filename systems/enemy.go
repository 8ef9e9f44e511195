package systems

import (
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies applies queued damage events.
func UpdateEnemies(c *Context, e *ecs.ECS) {
	var damaged []*donburi.Entry
	for entry := range components.DamageEvent.Iter(e.World) {
		damaged = append(damaged, entry)
	}
	for _, entry := range damaged {
		amount := components.DamageEvent.Get(entry).Amount
		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
		TakeDamage(c, e, entry, amount)
	}
}

// QueueDamage schedules damage for the next enemy update.
func QueueDamage(entry *donburi.Entry, amount int) {
	if entry.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(entry).Amount += amount
		return
	}
	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{Amount: amount})
}

// TakeDamage reduces an enemy's health. At zero or below the enemy becomes
// inert, leaves the world and a charge grant is queued for the player.
// It returns true when this call killed the enemy.
func TakeDamage(c *Context, e *ecs.ECS, entry *donburi.Entry, amount int) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Enemy) {
		c.Diag.Report(MissingCollaborator, "enemy", "damage on a missing enemy")
		return false
	}
	enemy := components.Enemy.Get(entry)
	if !enemy.Alive {
		return false
	}

	enemy.Health -= amount
	if enemy.Health > 0 {
		return false
	}

	category := components.CategoryEnemy
	if entry.HasComponent(components.Interactable) {
		category = components.Interactable.Get(entry).Category
	}
	c.pendingGrants = append(c.pendingGrants, components.ChargeGrantEvent{
		Source:   entry.Entity(),
		Category: category,
	})
	destroyInteractable(e, entry)
	return true
}

// UpdateChargeGrants turns queued enemy deaths into Enhanced bounces.
func UpdateChargeGrants(c *Context, e *ecs.ECS) {
	if len(c.pendingGrants) == 0 {
		return
	}
	grants := c.pendingGrants
	c.pendingGrants = nil

	player, ok := tags.Player.First(e.World)
	if !ok {
		c.Diag.Report(MissingCollaborator, "enemy", "%d charge grant(s) with no player", len(grants))
		return
	}
	for range grants {
		TriggerEnhancedBounce(c, player)
	}
}

// PendingChargeGrants returns the grants not yet delivered to the player.
func (c *Context) PendingChargeGrants() []components.ChargeGrantEvent {
	return c.pendingGrants
}

// destroyInteractable marks an enemy dead, drops its collision box and
// removes it from the world.
func destroyInteractable(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Enemy) {
		components.Enemy.Get(entry).Alive = false
	}
	removeWithObject(e, entry)
}
