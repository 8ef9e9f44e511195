package systems

import (
	"github.com/automoto/slambounce/bounce"
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer handles the per-frame ability input.
// Must run AFTER the host has written PlayerInput for this frame.
func UpdatePlayer(c *Context, e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.PlayerInput) {
			return
		}
		if components.PlayerInput.Get(entry).Slam.JustPressed {
			TrySlam(c, entry)
		}
	})
}

// TrySlam spends the slam charge and drives the player down with slamForce.
// Without a charge the input is reported and ignored.
func TrySlam(c *Context, entry *donburi.Entry) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Player) || !entry.HasComponent(components.Body) {
		c.Diag.Report(MissingCollaborator, "player", "slam without a player body")
		return false
	}
	pd := components.Player.Get(entry)
	if !pd.CanSlam() {
		reportRejectedSlam(c, pd)
		return false
	}

	pd.SlamCharge = false
	pd.IsSlamming = true
	pd.SlamStartTime = c.Time

	body := components.Body.Get(entry)
	body.AddImpulse(gamemath.Down.Scale(c.Config.Physics().SlamForce))
	return true
}

// reportRejectedSlam explains why CanSlam refused. Disabled input is silent.
func reportRejectedSlam(c *Context, pd *components.PlayerData) {
	switch {
	case pd.GameOver:
		c.Diag.Report(TerminalState, "player", "slam ignored after game over")
	case !pd.InputEnabled:
	case pd.IsSlamming:
		c.Diag.Report(InvalidAbilityUse, "player", "already slamming")
	case !pd.SlamCharge:
		c.Diag.Report(InvalidAbilityUse, "player", "slam needs a charge, earn one with an enhanced bounce")
	}
}

// UpdatePlayerState derives the airborne flag and keeps world gravity in
// step with the current bounce type.
func UpdatePlayerState(c *Context, e *ecs.ECS) {
	phys := c.Config.Physics()
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		pd := components.Player.Get(entry)
		body := components.Body.Get(entry)

		pd.Airborne = !IsGrounded(c, entry) || body.Velocity.Y > config.Player.AirborneRiseSpeed
		bounce.UpdateGravity(bounce.GravityScale(pd.BounceType, phys), c.Env, phys)
	})
}

// ShowLandingIndicator reports whether the landing indicator should be
// visible: the player is in the air holding a slam charge.
func ShowLandingIndicator(entry *donburi.Entry) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Player) {
		return false
	}
	pd := components.Player.Get(entry)
	return pd.SlamCharge && pd.Airborne
}

// IsSlamming is the read-only flag polled by visual observers.
func IsSlamming(entry *donburi.Entry) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Player) {
		return false
	}
	return components.Player.Get(entry).IsSlamming
}

// EnablePlayer turns input handling and fall detection on or off.
func EnablePlayer(entry *donburi.Entry, enabled bool) {
	pd := components.Player.Get(entry)
	pd.InputEnabled = enabled
	pd.FallDetectionEnabled = enabled
	if !enabled && entry.HasComponent(components.PlayerInput) {
		components.PlayerInput.SetValue(entry, components.PlayerInputData{})
	}
}

// WatchPhysics re-applies world gravity whenever the physics tunables change,
// using the player's current bounce type. The returned func stops watching
// and must be called when the world is discarded.
func WatchPhysics(c *Context, w donburi.World) (stop func()) {
	if c.Config == nil || c.Env == nil {
		c.Diag.Report(MissingCollaborator, "config", "physics changes will not reach world gravity")
		return func() {}
	}
	return c.Config.OnPhysicsChanged(func(p config.PhysicsConfig) {
		bounceType := config.BounceNormal
		if entry, ok := tags.Player.First(w); ok {
			bounceType = components.Player.Get(entry).BounceType
		}
		bounce.UpdateGravity(bounce.GravityScale(bounceType, p), c.Env, p)
	})
}
