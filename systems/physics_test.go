package systems

import (
	"testing"

	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixedStep = 1.0 / 50

func TestUpdatePhysics_FreeFall(t *testing.T) {
	w := newTestWorld(t)
	w.ctx.Dt = fixedStep

	UpdatePhysics(w.ctx, w.ecs)

	assert.Less(t, w.body().Velocity.Y, 0.0)
	assert.Less(t, w.body().Position.Y, 0.0)
	assert.Equal(t, gamemath.Zero, w.body().PreviousPosition)
}

func TestUpdatePhysics_LandsOnPlatform(t *testing.T) {
	w := newTestWorld(t)
	w.ctx.Dt = fixedStep
	factory.CreatePlatform(w.ecs, 296, 170, 48, 16)
	w.body().Velocity = gamemath.Vec3{Y: -10}

	UpdatePhysics(w.ctx, w.ecs)

	assert.Equal(t, 0.0, w.body().Velocity.Y, "blocked axis stops")
	obj := components.Object.Get(w.player).Object
	assert.InDelta(t, 170, obj.Y+obj.H, 1e-9, "flush against the platform")
	assert.True(t, IsGrounded(w.ctx, w.player))
	assert.Equal(t, config.BounceNormal, w.playerData().BounceType)
}

func TestUpdatePhysics_BouncyContact(t *testing.T) {
	w := newTestWorld(t)
	w.ctx.Dt = fixedStep
	pad := factory.CreateBouncy(w.ecs, 296, 170, 48, 16)
	w.playerData().SlamCharge = true
	w.body().Velocity = gamemath.Vec3{Y: -10}

	UpdatePhysics(w.ctx, w.ecs)

	pd := w.playerData()
	assert.InDelta(t, config.DefaultPhysics.NormalUpSpeed, w.body().Velocity.Y, 1e-9)
	assert.False(t, pd.SlamCharge, "a generic bounce revokes the charge")
	assert.Contains(t, pd.Touching, components.Object.Get(pad).Object)

	UpdatePhysics(w.ctx, w.ecs)
	assert.Less(t, w.body().Velocity.Y, config.DefaultPhysics.NormalUpSpeed, "no second bounce while leaving")
}

func TestUpdatePhysics_SlamKillsEnemy(t *testing.T) {
	w := newTestWorld(t)
	w.ctx.Dt = fixedStep
	enemy := factory.CreateEnemyOfCategory(w.ecs, 304, 170, 32, 16, components.CategoryEnemy, 0)
	w.playerData().SlamCharge = true
	require.True(t, TrySlam(w.ctx, w.player))

	UpdatePhysics(w.ctx, w.ecs)

	assert.False(t, enemy.Valid())
	assert.True(t, w.playerData().SlamCharge)
	assert.False(t, w.playerData().IsSlamming)
	assert.InDelta(t, config.DefaultPhysics.EnhancedUpSpeed, w.body().Velocity.Y, 1e-9)
	assert.True(t, w.ctx.HitPause.IsPaused())
}

func TestUpdatePhysics_MoveInput(t *testing.T) {
	w := newTestWorld(t)
	w.ctx.Dt = fixedStep
	components.PlayerInput.Get(w.player).Move = gamemath.Vec2{X: 1}
	w.body().Rotation = gamemath.Vec3{Y: 30}

	UpdatePhysics(w.ctx, w.ecs)

	assert.Greater(t, w.body().Velocity.X, 0.0)
	assert.Greater(t, w.body().Position.X, 0.0)
	assert.True(t, w.body().Rotation.IsZero())
}

func TestUpdatePhysics_ZeroDt(t *testing.T) {
	w := newTestWorld(t)
	w.ctx.Dt = 0
	UpdatePhysics(w.ctx, w.ecs)
	assert.Equal(t, gamemath.Zero, w.body().Position)
}

func TestUpdatePlayerState(t *testing.T) {
	w := newTestWorld(t)
	w.playerData().BounceType = config.BounceEnhanced
	w.playerData().SlamCharge = true

	UpdatePlayerState(w.ctx, w.ecs)

	assert.True(t, w.playerData().Airborne)
	assert.True(t, ShowLandingIndicator(w.player))
	p := config.DefaultPhysics
	assert.InDelta(t, -p.BaseGravity*p.EnhancedGravityScale, w.ctx.Env.Gravity.Y, 1e-9)
}

func TestWatchPhysics(t *testing.T) {
	w := newTestWorld(t)
	WatchPhysics(w.ctx, w.ecs.World)

	p := config.DefaultPhysics
	p.BaseGravity = 20
	require.NoError(t, w.ctx.Config.SetPhysics(p))

	assert.InDelta(t, -20, w.ctx.Env.Gravity.Y, 1e-9)
}
