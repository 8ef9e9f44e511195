package systems

import (
	"log"

	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/feedback"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFalls recovers any player that dropped to the fall threshold: to the
// checkpoint when one exists, otherwise to the default spawn. Falls are
// handled after game over too.
func UpdateFalls(c *Context, e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		pd := components.Player.Get(entry)
		if !pd.FallDetectionEnabled {
			return
		}
		body := components.Body.Get(entry)
		if body.Position.Y > config.Player.FallThresholdY {
			return
		}

		if pd.HasCheckpoint {
			RestoreToCheckpoint(c, entry)
			return
		}
		log.Printf("[fall] no checkpoint, returning to spawn %v", config.Player.DefaultSpawn)
		respawn(c, entry, config.Player.DefaultSpawn)
		c.Request(feedback.FromConfig(config.Presets.Fall))
	})
}

// RestoreToCheckpoint puts the player back on its saved checkpoint. Without
// a checkpoint it is a reported no-op.
func RestoreToCheckpoint(c *Context, entry *donburi.Entry) bool {
	pd := components.Player.Get(entry)
	if !pd.HasCheckpoint {
		c.Diag.Report(MissingCollaborator, "checkpoint", "no checkpoint saved")
		return false
	}
	respawn(c, entry, pd.Checkpoint)
	c.Request(feedback.FromConfig(config.Presets.Restore))
	return true
}

// SaveCheckpoint records position as the recovery point and pulses feedback.
// Callers guard against saving twice from the same source.
func SaveCheckpoint(c *Context, entry *donburi.Entry, position gamemath.Vec3) {
	pd := components.Player.Get(entry)
	pd.Checkpoint = position
	pd.HasCheckpoint = true
	c.Request(feedback.FromConfig(config.Presets.Checkpoint))
}

// ClearCheckpoint forgets the saved checkpoint.
func ClearCheckpoint(entry *donburi.Entry) {
	pd := components.Player.Get(entry)
	pd.Checkpoint = gamemath.Zero
	pd.HasCheckpoint = false
}

// TeleportTo moves the player without touching checkpoint or combat state.
func TeleportTo(c *Context, entry *donburi.Entry, position gamemath.Vec3) {
	body := components.Body.Get(entry)
	body.Position = position
	body.PreviousPosition = position
	if entry.HasComponent(components.Object) {
		syncObject(c.Mapping, body, components.Object.Get(entry).Object)
	}
}

// respawn stops the body at position and resets the slam and bounce state.
func respawn(c *Context, entry *donburi.Entry, position gamemath.Vec3) {
	body := components.Body.Get(entry)
	body.Velocity = gamemath.Zero
	body.AngularVelocity = gamemath.Zero
	TeleportTo(c, entry, position)

	pd := components.Player.Get(entry)
	pd.IsSlamming = false
	pd.BounceType = config.BounceNormal
	pd.Touching = nil
	Stabilize(body)
}
