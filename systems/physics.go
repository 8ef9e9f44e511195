package systems

import (
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// moveInputDeadzone matches a squared stick magnitude below which there is no movement.
const moveInputDeadzone = 0.001

// UpdatePhysics advances every player body by one fixed step of c.Dt scaled
// seconds and resolves the collision event the step produced.
func UpdatePhysics(c *Context, e *ecs.ECS) {
	if c.Dt <= 0 {
		return
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		events := stepBody(c, entry, c.Dt)
		if len(events) > 0 {
			ResolveCollision(c, e, entry, events)
		}
	})
}

// stepBody integrates one body and returns the interactables it newly touched.
func stepBody(c *Context, entry *donburi.Entry, dt float64) []*donburi.Entry {
	body := components.Body.Get(entry)
	player := components.Player.Get(entry)
	body.PreviousPosition = body.Position

	applyMovement(c, entry, body, player, dt)

	gravity := gamemath.Vec3{Y: -c.Config.Physics().BaseGravity}
	if c.Env != nil {
		gravity = c.Env.Gravity
	} else {
		c.Diag.Report(MissingCollaborator, "physics", "no environment, using base gravity")
	}
	body.AddAcceleration(gravity, dt)
	body.Velocity = gamemath.ApplyDamping(body.Velocity, body.LinearDamping, dt)

	if body.FreezeRotation {
		body.AngularVelocity = gamemath.Zero
	} else {
		body.Rotation = body.Rotation.Add(body.AngularVelocity.Scale(dt))
		body.AngularVelocity = gamemath.ApplyDamping(body.AngularVelocity, body.AngularDamping, dt)
	}

	if !entry.HasComponent(components.Object) {
		body.Position = body.Position.Add(body.Velocity.Scale(dt))
		return nil
	}
	object := components.Object.Get(entry).Object
	hits := sweep(c.Mapping, body, object, dt)
	body.Position.Z += body.Velocity.Z * dt

	return collisionEvent(object, player, hits)
}

// applyMovement pushes the body along X/Z from the planar input.
func applyMovement(c *Context, entry *donburi.Entry, body *components.BodyData, player *components.PlayerData, dt float64) {
	if !player.InputEnabled || !entry.HasComponent(components.PlayerInput) {
		return
	}
	move := components.PlayerInput.Get(entry).Move
	if move.LengthSquared() <= moveInputDeadzone {
		return
	}
	force := c.Config.Physics().MoveForce
	body.AddAcceleration(gamemath.Vec3{X: move.X * force, Z: move.Y * force}, dt)
	body.Rotation = gamemath.Zero
}

// sweep moves the collision box by the body's velocity, X first then Y,
// stopping against blocking objects. Velocity on a blocked axis is zeroed.
func sweep(m gamemath.SpaceMapping, body *components.BodyData, object *resolv.Object, dt float64) []*resolv.Object {
	syncObject(m, body, object)

	dx := body.Velocity.X * dt * m.Scale
	dy := -body.Velocity.Y * dt * m.Scale
	n := substeps(object, dx, dy, body.Continuous)
	stepX, stepY := dx/float64(n), dy/float64(n)

	var hits []*resolv.Object
	for i := 0; i < n; i++ {
		if stepX != 0 {
			h, blocked := moveX(object, stepX)
			hits = append(hits, h...)
			if blocked {
				body.Velocity.X = 0
				stepX = 0
			}
		}
		if stepY != 0 {
			h, blocked := moveY(object, stepY)
			hits = append(hits, h...)
			if blocked {
				body.Velocity.Y = 0
				stepY = 0
			}
		}
	}

	syncBody(m, body, object)
	return hits
}

// collisionEvent updates the contact set and returns the interactables touched
// this step that were not touched the step before. Primary contacts come first.
func collisionEvent(object *resolv.Object, player *components.PlayerData, hits []*resolv.Object) []*donburi.Entry {
	if player.Touching == nil {
		player.Touching = map[*resolv.Object]struct{}{}
	}

	current := make(map[*resolv.Object]struct{}, len(hits))
	var events []*donburi.Entry
	for _, hit := range hits {
		if _, seen := current[hit]; seen {
			continue
		}
		entry, ok := interactableOf(hit)
		if !ok {
			continue
		}
		current[hit] = struct{}{}
		if _, was := player.Touching[hit]; !was {
			events = append(events, entry)
		}
	}

	// Resting contacts stay in the set until the boxes separate.
	for other := range player.Touching {
		if _, ok := current[other]; ok {
			continue
		}
		if other.Space == nil {
			continue
		}
		if _, ok := interactableOf(other); ok && touching(object, other) {
			current[other] = struct{}{}
		}
	}

	player.Touching = current
	return events
}

// IsGrounded probes a short distance below the body for anything solid.
func IsGrounded(c *Context, entry *donburi.Entry) bool {
	if !entry.HasComponent(components.Object) {
		return false
	}
	object := components.Object.Get(entry).Object
	probe := config.Player.GroundProbeDistance * c.Mapping.Scale
	return len(checkBox(object, 0, probe, tags.ResolvBlocking...)) > 0
}
