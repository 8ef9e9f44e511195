package systems

import (
	"github.com/automoto/slambounce/bounce"
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/feedback"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Outcome describes what a resolved collision event did.
type Outcome struct {
	Resolved   bool
	Category   components.Category
	Target     *donburi.Entry
	Destroyed  bool
	Bounce     config.BounceType
	Feedback   bool
	Terminal   bool
	Suppressed bool // game over: nothing was applied
}

// ResolveCollision applies exactly one outcome for a collision event: the
// highest priority category among candidates wins and every other candidate
// is ignored. Candidates without an interactable category are skipped.
func ResolveCollision(c *Context, e *ecs.ECS, player *donburi.Entry, candidates []*donburi.Entry) Outcome {
	if player == nil || !player.HasComponent(components.Player) || !player.HasComponent(components.Body) {
		c.Diag.Report(MissingCollaborator, "combat", "collision without a player body")
		return Outcome{}
	}
	pd := components.Player.Get(player)
	if pd.GameOver {
		c.Diag.Report(TerminalState, "combat", "collision ignored after game over")
		return Outcome{Suppressed: true}
	}

	target, ok := highestPriority(candidates)
	if !ok {
		return Outcome{}
	}
	category := components.Interactable.Get(target).Category
	body := components.Body.Get(player)
	phys := c.Config.Physics()
	out := Outcome{Resolved: true, Category: category, Target: target}

	switch category {
	case components.CategoryBoss:
		if pd.IsSlamming {
			destroyInteractable(e, target)
			body.Velocity = gamemath.Zero
			applyBounce(c, pd, body, bounce.CalculateCustom(c.Config.BossBounceMultiplier(), phys), phys)

			p := config.Presets
			c.Request(feedback.FromConfig(c.Config.Feedback()).Scaled(p.BossPauseScale, p.BossShakeScale, p.BossAmplitudeScale))

			pd.SlamCharge = true
			pd.IsSlamming = false
			pd.GameOver = true
			c.Diag.Report(TerminalState, "combat", "boss defeated, combat closed")
			out.Destroyed, out.Feedback, out.Terminal = true, true, true
		} else {
			grantEnhanced(c, pd, body, phys)
		}

	case components.CategoryElite, components.CategoryEnemy:
		if pd.IsSlamming {
			destroyInteractable(e, target)
			body.Velocity = gamemath.Zero
			r := bounce.Calculate(config.BounceEnhanced, phys)
			if category == components.CategoryElite {
				r = bounce.CalculateCustom(c.Config.SuperBounceMultiplier(), phys)
			}
			applyBounce(c, pd, body, r, phys)
			c.Request(feedback.FromConfig(c.Config.Feedback()))

			pd.SlamCharge = true
			pd.IsSlamming = false
			out.Destroyed, out.Feedback = true, true
		} else {
			// First touch never grants Super, elite or not.
			grantEnhanced(c, pd, body, phys)
		}

	case components.CategoryBouncy:
		applyBounce(c, pd, body, bounce.Calculate(config.BounceNormal, phys), phys)
		pd.SlamCharge = false
		pd.IsSlamming = false
	}

	Stabilize(body)
	out.Bounce = pd.BounceType
	return out
}

// highestPriority picks the first candidate of the lowest category value.
func highestPriority(candidates []*donburi.Entry) (*donburi.Entry, bool) {
	var best *donburi.Entry
	bestCategory := components.Category(components.CategoryCount)
	for _, entry := range candidates {
		if entry == nil || !entry.Valid() || !entry.HasComponent(components.Interactable) {
			continue
		}
		if entry.HasComponent(components.Enemy) && !components.Enemy.Get(entry).Alive {
			continue
		}
		category := components.Interactable.Get(entry).Category
		if category < bestCategory {
			best, bestCategory = entry, category
		}
	}
	return best, best != nil
}

func applyBounce(c *Context, pd *components.PlayerData, body *components.BodyData, r bounce.Result, phys config.PhysicsConfig) {
	if c.Env == nil {
		c.Diag.Report(MissingCollaborator, "combat", "no environment, gravity unchanged")
	}
	body.Velocity = bounce.Apply(r, body.Velocity, c.Env, phys)
	pd.BounceType = r.Type
}

// grantEnhanced is the shared "Enhanced bounce, charge granted" outcome.
func grantEnhanced(c *Context, pd *components.PlayerData, body *components.BodyData, phys config.PhysicsConfig) {
	applyBounce(c, pd, body, bounce.Calculate(config.BounceEnhanced, phys), phys)
	pd.SlamCharge = true
	pd.IsSlamming = false
}

// TriggerEnhancedBounce applies the charge-granting Enhanced bounce outside
// of a collision, as when an enemy dies from damage.
func TriggerEnhancedBounce(c *Context, player *donburi.Entry) bool {
	if player == nil || !player.Valid() || !player.HasComponent(components.Body) {
		c.Diag.Report(MissingCollaborator, "combat", "enhanced bounce without a player body")
		return false
	}
	pd := components.Player.Get(player)
	if pd.GameOver {
		c.Diag.Report(TerminalState, "combat", "charge grant ignored after game over")
		return false
	}
	body := components.Body.Get(player)
	grantEnhanced(c, pd, body, c.Config.Physics())
	Stabilize(body)
	return true
}

// Stabilize normalizes the rotational state of a body after a bounce.
func Stabilize(body *components.BodyData) {
	body.FreezeRotation = true
	body.Rotation = gamemath.Zero
	body.AngularVelocity = gamemath.Zero
	body.LinearDamping = config.Player.LinearDamping
	body.AngularDamping = config.Player.AngularDamping
	body.Continuous = true
	body.Interpolate = true
}
