package systems

import (
	"math"

	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera is the late tick: follow the subject, aim, then add the shake
// in camera space so the smoothing never damps it.
func UpdateCamera(c *Context, e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		c.Diag.Report(MissingCollaborator, "camera", "no camera in the world")
		return
	}
	camera := components.Camera.Get(cameraEntry)

	subject, ok := cameraSubject(e, camera)
	if !ok {
		if !camera.SubjectMissing {
			c.Diag.Report(MissingCollaborator, "camera", "no subject to follow, applying shake only")
			camera.SubjectMissing = true
		}
		applyShake(c, camera)
		return
	}
	camera.SubjectMissing = false

	body := components.Body.Get(subject)
	target := followTarget(camera, body.Position)

	followSpeed := math.Max(camera.FollowSpeed, config.Camera.MinFollowSpeed)
	if camera.SmoothMovement {
		camera.Base = gamemath.SmoothDampVec3(camera.Base, target, &camera.Velocity, 1/followSpeed, c.Dt)
	} else {
		camera.Base = camera.Base.Lerp(target, followSpeed*c.Dt)
	}

	pitch := currentPitch(camera, subject)
	if camera.LookAtTarget {
		lookPitch, lookYaw, ok := lookAngles(camera.Base, body.Position.Add(camera.LookAtOffset))
		if ok {
			t := camera.RotationSpeed * c.Dt
			camera.Pitch = gamemath.LerpAngle(camera.Pitch, lookPitch+pitch, t)
			camera.Yaw = gamemath.LerpAngle(camera.Yaw, lookYaw, t)
		}
	} else {
		camera.Pitch = pitch
		camera.Yaw = 0
	}

	applyShake(c, camera)
}

// SnapCamera places the camera on its follow target immediately.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	subject, ok := cameraSubject(e, camera)
	if !ok {
		return
	}
	body := components.Body.Get(subject)
	camera.Base = followTarget(camera, body.Position)
	camera.Position = camera.Base
	camera.Velocity = gamemath.Zero
	camera.ShakeOffset = gamemath.Zero

	pitch := currentPitch(camera, subject)
	camera.Pitch, camera.Yaw = pitch, 0
	if camera.LookAtTarget {
		if p, y, ok := lookAngles(camera.Base, body.Position.Add(camera.LookAtOffset)); ok {
			camera.Pitch, camera.Yaw = p+pitch, y
		}
	}
}

// cameraSubject returns the followed entry, falling back to the player.
func cameraSubject(e *ecs.ECS, camera *components.CameraData) (*donburi.Entry, bool) {
	if camera.Subject != nil && camera.Subject.Valid() && camera.Subject.HasComponent(components.Body) {
		return camera.Subject, true
	}
	player, ok := tags.Player.First(e.World)
	if !ok || !player.HasComponent(components.Body) {
		return nil, false
	}
	camera.Subject = player
	return player, true
}

// followTarget is the trailing position behind and above the subject.
func followTarget(camera *components.CameraData, subject gamemath.Vec3) gamemath.Vec3 {
	distance := math.Max(camera.Distance, config.Camera.MinDistance)
	return subject.
		Add(gamemath.Back.Scale(distance)).
		Add(gamemath.Up.Scale(camera.Height))
}

// currentPitch adds the charge bonus while the subject holds a slam charge.
func currentPitch(camera *components.CameraData, subject *donburi.Entry) float64 {
	pitch := camera.BasePitch
	if subject.HasComponent(components.Player) && components.Player.Get(subject).SlamCharge {
		pitch += camera.ChargePitchBonus
	}
	return pitch
}

// lookAngles returns the pitch and yaw in degrees that aim from at to.
// Positive pitch looks down.
func lookAngles(from, to gamemath.Vec3) (pitch, yaw float64, ok bool) {
	dir := to.Sub(from)
	if dir.IsZero() {
		return 0, 0, false
	}
	horizontal := math.Hypot(dir.X, dir.Z)
	pitch = math.Atan2(-dir.Y, horizontal) * 180 / math.Pi
	yaw = math.Atan2(dir.X, dir.Z) * 180 / math.Pi
	return pitch, yaw, true
}

// ShakeScale keeps screen-space shake constant as distance and field of view
// change, clamped to the configured range.
func ShakeScale(distance, fov float64) float64 {
	cfg := config.Camera
	scale := (cfg.ReferenceDistance / math.Max(0.001, distance)) * (cfg.ReferenceFOV / math.Max(1, fov))
	return gamemath.Clamp(scale, cfg.MinShakeScale, cfg.MaxShakeScale)
}

// applyShake sets the final position from the unshaken base plus the current
// shake offset rotated into camera space.
func applyShake(c *Context, camera *components.CameraData) {
	offset := gamemath.Zero
	if c.Shake != nil {
		offset = c.Shake.Offset()
	}
	if offset.IsZero() {
		camera.ShakeOffset = gamemath.Zero
		camera.Position = camera.Base
		return
	}
	local := offset.Scale(ShakeScale(camera.Distance, camera.FieldOfView))
	camera.ShakeOffset = local
	camera.Position = camera.Base.Add(gamemath.Rotate(local, camera.Pitch, camera.Yaw))
}
