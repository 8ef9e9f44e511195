package feedback

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/slambounce/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func testShakeConfig() config.ShakeConfig {
	cfg := config.Shake
	cfg.Seed = 7
	return cfg
}

func newShake(t *testing.T, cfg config.ShakeConfig) *ScreenShake {
	t.Helper()
	s, err := NewScreenShake(cfg, newClock(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return s
}

func TestHitPause_TriggerAndComplete(t *testing.T) {
	env := NewEnvironment(9.81)
	env.TimeScale = 0.8
	hp := NewHitPause(env, config.HitPause)

	require.True(t, hp.Trigger(0.1))
	assert.True(t, hp.IsPaused())
	assert.Equal(t, 0.0, env.TimeScale, "time scale equals the pause value while active")
	assert.Equal(t, 0.8, hp.SavedTimeScale())

	assert.Equal(t, Running, hp.Tick(0.05), "trigger tick consumes no time")
	assert.Equal(t, Running, hp.Tick(0.05))
	assert.Equal(t, 0.0, env.TimeScale)

	assert.Equal(t, Done, hp.Tick(0.05))
	assert.False(t, hp.IsPaused())
	assert.Equal(t, 0.8, env.TimeScale, "recorded time scale is restored")
	assert.Equal(t, Idle, hp.Tick(0.05))
}

func TestHitPause_NonReentrant(t *testing.T) {
	env := NewEnvironment(9.81)
	hp := NewHitPause(env, config.HitPause)

	require.True(t, hp.Trigger(0.2))
	assert.False(t, hp.Trigger(5), "retrigger while active is ignored")
	assert.InDelta(t, 0.2, hp.Remaining(), 1e-9)
}

func TestHitPause_Stop(t *testing.T) {
	env := NewEnvironment(9.81)
	hp := NewHitPause(env, config.HitPauseConfig{DefaultDuration: 0.1, TimeScale: 0.1})

	assert.False(t, hp.Stop(), "nothing to stop")

	require.True(t, hp.TriggerDefault())
	assert.Equal(t, 0.1, env.TimeScale)
	assert.True(t, hp.Stop())
	assert.Equal(t, 1.0, env.TimeScale)
	assert.False(t, hp.IsPaused())

	// A new pause can start after a forced stop.
	assert.True(t, hp.Trigger(0.1))
}

func TestHitPause_RestoreClobbersOutsideWrites(t *testing.T) {
	env := NewEnvironment(9.81)
	hp := NewHitPause(env, config.HitPause)

	require.True(t, hp.Trigger(0.1))
	env.TimeScale = 0.5
	hp.Tick(0)
	hp.Tick(0.2)
	assert.Equal(t, 1.0, env.TimeScale)
}

func TestHitPause_NilEnvironment(t *testing.T) {
	hp := NewHitPause(nil, config.HitPause)
	assert.False(t, hp.Trigger(0.1))
	assert.Equal(t, Idle, hp.Tick(0.1))
}

func TestScreenShake_AmplitudeDecaysToZero(t *testing.T) {
	s := newShake(t, testShakeConfig())

	require.True(t, s.Trigger(0.2, 0.5))
	assert.Equal(t, Running, s.Tick(1.0/60))
	assert.InDelta(t, 0.5, s.Amplitude(), 1e-6, "first sample is at elapsed zero")

	prev := s.Amplitude()
	for s.Tick(1.0/60) == Running {
		assert.GreaterOrEqual(t, s.Amplitude(), 0.0)
		assert.LessOrEqual(t, s.Amplitude(), prev+1e-6, "decay never grows")
		prev = s.Amplitude()
	}

	assert.False(t, s.IsShaking())
	assert.Equal(t, 0.0, s.Amplitude())
	assert.True(t, s.Offset().IsZero(), "offset is reset on completion")
	assert.Equal(t, Idle, s.Tick(1.0/60))
}

func TestScreenShake_ForceDownwardAndHorizontalScale(t *testing.T) {
	cfg := testShakeConfig()
	cfg.HorizontalScale = 0
	cfg.ForceDownward = true
	s := newShake(t, cfg)

	require.True(t, s.Trigger(1, 1))
	for i := 0; i < 30; i++ {
		s.Tick(1.0 / 60)
		off := s.Offset()
		assert.Equal(t, 0.0, off.X)
		assert.Equal(t, 0.0, off.Z)
		assert.LessOrEqual(t, off.Y, 0.0)
	}
}

func TestScreenShake_UniformModeStaysInBounds(t *testing.T) {
	cfg := testShakeConfig()
	cfg.UseNoise = false
	cfg.HorizontalScale = 1
	cfg.ForceDownward = false
	s := newShake(t, cfg)

	require.True(t, s.Trigger(1, 0.5))
	for i := 0; i < 30; i++ {
		s.Tick(1.0 / 60)
		off := s.Offset()
		amp := s.Amplitude()
		assert.LessOrEqual(t, abs(off.X), amp*cfg.IntensityX+1e-9)
		assert.LessOrEqual(t, abs(off.Y), amp*cfg.IntensityY+1e-9)
		assert.LessOrEqual(t, abs(off.Z), amp*cfg.IntensityZ+1e-9)
	}
}

func TestScreenShake_RetriggerReplaces(t *testing.T) {
	s := newShake(t, testShakeConfig())

	require.True(t, s.Trigger(0.2, 1))
	for i := 0; i < 6; i++ {
		s.Tick(1.0 / 60)
	}
	require.Greater(t, s.Elapsed(), 0.0)

	require.True(t, s.Trigger(0.5, 0.25))
	s.Tick(1.0 / 60)
	assert.Equal(t, 0.0, s.Elapsed(), "new session starts from zero")
	assert.InDelta(t, 0.25, s.Amplitude(), 1e-6, "no blending with the old session")
}

func TestScreenShake_StopAndInvalidDuration(t *testing.T) {
	s := newShake(t, testShakeConfig())

	require.True(t, s.Trigger(1, 1))
	s.Tick(1.0 / 60)
	s.Tick(1.0 / 60)
	assert.True(t, s.Stop())
	assert.True(t, s.Offset().IsZero())
	assert.False(t, s.IsShaking())
	assert.False(t, s.Stop())

	assert.False(t, s.Trigger(0, 1))
	assert.False(t, s.IsShaking())
}

func TestScreenShake_GlobalMultiplier(t *testing.T) {
	cfg := testShakeConfig()
	cfg.GlobalMultiplier = 0
	s := newShake(t, cfg)

	require.True(t, s.TriggerDefault())
	s.Tick(1.0 / 60)
	assert.Equal(t, 0.0, s.Amplitude())
	assert.True(t, s.Offset().IsZero())
}

func TestNewScreenShake_UnknownCurve(t *testing.T) {
	cfg := testShakeConfig()
	cfg.DecayCurve = "wobble"
	_, err := NewScreenShake(cfg, nil, nil)
	assert.Error(t, err)
}

func TestCurveByName(t *testing.T) {
	for name, fn := range Curves {
		start := fn(0, 1, -1, 1)
		end := fn(1, 1, -1, 1)
		assert.InDelta(t, 1, start, 1e-2, name)
		assert.InDelta(t, 0, end, 1e-2, name)
	}

	fn, err := CurveByName("")
	require.NoError(t, err)
	assert.NotNil(t, fn)
}

func TestDispatch(t *testing.T) {
	env := NewEnvironment(9.81)
	hp := NewHitPause(env, config.HitPause)
	s := newShake(t, testShakeConfig())

	r := FromConfig(config.DefaultFeedback).Scaled(2, 2, 1.5)
	assert.InDelta(t, 0.2, r.HitPause, 1e-9)
	assert.InDelta(t, 0.4, r.ShakeDuration, 1e-9)
	assert.InDelta(t, 0.45, r.ShakeAmplitude, 1e-9)

	out := Dispatch(r, hp, s)
	assert.True(t, out.PauseStarted)
	assert.True(t, out.ShakeStarted)

	out = Dispatch(r, hp, s)
	assert.False(t, out.PauseStarted, "pause is non-reentrant")
	assert.True(t, out.ShakeStarted, "shake restarts")

	assert.Equal(t, Outcome{}, Dispatch(r, nil, nil))
}

func TestEnvironment_SetGravityScale(t *testing.T) {
	env := NewEnvironment(9.81)
	assert.Equal(t, -9.81, env.Gravity.Y)
	assert.Equal(t, 1.0, env.TimeScale)

	env.SetGravityScale(10, 0.8)
	assert.InDelta(t, -8.0, env.Gravity.Y, 1e-9)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
