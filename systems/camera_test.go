package systems

import (
	"testing"

	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestShakeScale(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		fov      float64
		want     float64
	}{
		{"reference", 8, 60, 1},
		{"twice as far", 16, 60, 0.5},
		{"narrow fov", 8, 30, 2},
		{"zero distance clamps high", 0, 60, config.Camera.MaxShakeScale},
		{"huge distance clamps low", 1e6, 60, config.Camera.MinShakeScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ShakeScale(tt.distance, tt.fov), 1e-9)
		})
	}
}

func TestSnapCamera(t *testing.T) {
	w := newTestWorld(t)
	camera := factory.CreateCamera(w.ecs, w.player)

	SnapCamera(w.ecs)

	data := components.Camera.Get(camera)
	want := gamemath.Vec3{Y: config.Camera.Height, Z: -config.Camera.Distance}
	assert.Equal(t, want, data.Base)
	assert.Equal(t, want, data.Position)
	assert.Equal(t, config.Camera.BasePitch, data.Pitch)
}

func TestUpdateCamera_ChargePitchBonus(t *testing.T) {
	w := newTestWorld(t)
	camera := factory.CreateCamera(w.ecs, w.player)
	SnapCamera(w.ecs)

	UpdateCamera(w.ctx, w.ecs)
	assert.Equal(t, config.Camera.BasePitch, components.Camera.Get(camera).Pitch)

	w.playerData().SlamCharge = true
	UpdateCamera(w.ctx, w.ecs)
	assert.Equal(t, config.Camera.BasePitch+config.Camera.ChargePitchBonus, components.Camera.Get(camera).Pitch)
}

func TestUpdateCamera_Follows(t *testing.T) {
	w := newTestWorld(t)
	camera := factory.CreateCamera(w.ecs, w.player)
	SnapCamera(w.ecs)

	w.body().Position = gamemath.Vec3{X: 5}
	start := components.Camera.Get(camera).Base
	for i := 0; i < 5; i++ {
		UpdateCamera(w.ctx, w.ecs)
	}
	moved := components.Camera.Get(camera).Base
	assert.Greater(t, moved.X, start.X)
	assert.Less(t, moved.X, 5.0, "smoothing lags behind")
}

func TestUpdateCamera_ShakeInCameraSpace(t *testing.T) {
	cfg := config.Shake
	cfg.UseNoise = false
	w := newTestWorld(t)
	w.ctx = newTestContext(t, cfg)
	camera := factory.CreateCamera(w.ecs, w.player)
	SnapCamera(w.ecs)

	require.True(t, w.ctx.Shake.Trigger(0.5, 0.3))
	w.ctx.Shake.Tick(w.ctx.Dt)
	offset := w.ctx.Shake.Offset()
	require.False(t, offset.IsZero())

	UpdateCamera(w.ctx, w.ecs)
	data := components.Camera.Get(camera)
	scale := ShakeScale(data.Distance, data.FieldOfView)

	assert.InDelta(t, offset.Y*scale, data.ShakeOffset.Y, 1e-9)
	assert.InDelta(t, data.ShakeOffset.Length(), data.Position.Sub(data.Base).Length(), 1e-9)

	w.ctx.Shake.Stop()
	UpdateCamera(w.ctx, w.ecs)
	data = components.Camera.Get(camera)
	assert.Equal(t, data.Base, data.Position, "no residual offset")
	assert.True(t, data.ShakeOffset.IsZero())
}

func TestUpdateCamera_NoSubject(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	c := newTestContext(t, config.Shake)
	camera := factory.CreateCamera(e, nil)

	UpdateCamera(c, e)
	UpdateCamera(c, e)

	assert.Equal(t, 1, c.Diag.Count(MissingCollaborator), "reported once")
	assert.True(t, components.Camera.Get(camera).SubjectMissing)
}

func TestUpdateCamera_NoCamera(t *testing.T) {
	w := newTestWorld(t)
	UpdateCamera(w.ctx, w.ecs)
	assert.Equal(t, 1, w.ctx.Diag.Count(MissingCollaborator))
}
