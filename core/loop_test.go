package core

import (
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/automoto/slambounce/assets"
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/feedback"
	"github.com/automoto/slambounce/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type phaseCounter struct {
	frame, fixed, feedback, late int
}

func (p *phaseCounter) phases() Phases {
	return Phases{
		Frame:    []ecs.System{func(*ecs.ECS) { p.frame++ }},
		Fixed:    []ecs.System{func(*ecs.ECS) { p.fixed++ }},
		Feedback: []ecs.System{func(*ecs.ECS) { p.feedback++ }},
		Late:     []ecs.System{func(*ecs.ECS) { p.late++ }},
	}
}

func newTestLoop(t *testing.T, env *feedback.Environment) (*GameLoop, *phaseCounter, *systems.Context) {
	t.Helper()
	c := &systems.Context{Env: env, Diag: systems.NewDiagnostics(log.New(io.Discard, "", 0))}
	counter := &phaseCounter{}
	loop := NewGameLoop(ecs.NewECS(donburi.NewWorld()), c, counter.phases(), config.LoopConfig{
		FixedStep:     0.02,
		MaxFixedSteps: 4,
		MaxFrameDelta: 0.25,
	})
	return loop, counter, c
}

func TestGameLoop_FixedSteps(t *testing.T) {
	loop, counter, c := newTestLoop(t, feedback.NewEnvironment(9.81))

	loop.Advance(0.05)
	assert.Equal(t, 2, counter.fixed)
	loop.Advance(0.05)
	assert.Equal(t, 5, counter.fixed, "remainder carries over")

	assert.Equal(t, 2, counter.frame)
	assert.Equal(t, 2, counter.feedback)
	assert.Equal(t, 2, counter.late)
	assert.Equal(t, 2, loop.Frames())
	assert.Equal(t, 5, loop.FixedSteps())
	assert.InDelta(t, 0.1, c.Time, 1e-9)
}

func TestGameLoop_StepCap(t *testing.T) {
	loop, counter, _ := newTestLoop(t, feedback.NewEnvironment(9.81))

	loop.Advance(0.2)
	assert.Equal(t, 4, counter.fixed)

	loop.Advance(0)
	assert.Equal(t, 4, counter.fixed, "excess time is dropped")
}

func TestGameLoop_TimeScale(t *testing.T) {
	env := feedback.NewEnvironment(9.81)
	loop, counter, c := newTestLoop(t, env)
	env.TimeScale = 0

	loop.Advance(0.1)
	assert.Equal(t, 0, counter.fixed, "paused time runs no physics")
	assert.Equal(t, 1, counter.feedback, "feedback runs on real time")
	assert.Equal(t, 0.0, c.Time)

	env.TimeScale = 0.5
	loop.Advance(0.08)
	assert.Equal(t, 2, counter.fixed)
	assert.InDelta(t, 0.04, c.Time, 1e-9)
}

func TestGameLoop_ClampsFrameDelta(t *testing.T) {
	loop, _, c := newTestLoop(t, nil)

	loop.Advance(5)
	assert.InDelta(t, 0.25, c.Time, 1e-9)

	loop.Advance(-1)
	assert.InDelta(t, 0.25, c.Time, 1e-9)
}

func newPrototypeWorld(t *testing.T) *World {
	t.Helper()
	level, err := assets.NewLevelLoader().LoadLevel("prototype.tmx")
	require.NoError(t, err)
	w, err := NewWorld(level, Options{
		Logger: log.New(io.Discard, "", 0),
		Rand:   rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	return w
}

func TestNewWorld(t *testing.T) {
	w := newPrototypeWorld(t)

	require.NotNil(t, w.Player)
	body := components.Body.Get(w.Player)
	assert.Equal(t, w.Level.PlayerSpawn, body.Position)

	camera := components.Camera.Get(w.Camera)
	assert.Equal(t, w.Player, camera.Subject)
	assert.Equal(t, camera.Base, camera.Position)

	enemies := 0
	components.Enemy.Each(w.ECS.World, func(*donburi.Entry) { enemies++ })
	assert.Equal(t, 3, enemies)
}

func TestNewWorld_Errors(t *testing.T) {
	_, err := NewWorld(nil, Options{})
	assert.Error(t, err)

	level := &assets.Level{Width: 64, Height: 64}
	cfg := config.Shake
	cfg.DecayCurve = "nope"
	_, err = NewWorld(level, Options{Shake: cfg})
	assert.Error(t, err)
}

func TestWorld_PlayerFallsUnderGravity(t *testing.T) {
	w := newPrototypeWorld(t)
	start := components.Body.Get(w.Player).Position

	for i := 0; i < 10; i++ {
		w.Loop.Advance(1.0 / 60)
	}

	assert.Less(t, components.Body.Get(w.Player).Position.Y, start.Y)
	assert.Equal(t, 10, w.Loop.Frames())
	assert.Positive(t, w.Loop.FixedSteps())
}

func TestWorld_SlamNeedsCharge(t *testing.T) {
	w := newPrototypeWorld(t)
	components.PlayerInput.Get(w.Player).Slam = components.ActionState{Pressed: true, JustPressed: true}

	w.Loop.Advance(1.0 / 60)

	assert.False(t, systems.IsSlamming(w.Player))
	assert.Equal(t, 1, w.Context.Diag.Count(systems.InvalidAbilityUse))
}

func TestGameLoop_PauseFromFixedStepStopsPhysics(t *testing.T) {
	env := feedback.NewEnvironment(9.81)
	hp := feedback.NewHitPause(env, config.HitPause)
	c := &systems.Context{Env: env, HitPause: hp, Diag: systems.NewDiagnostics(log.New(io.Discard, "", 0))}

	steps, pausedSteps := 0, 0
	phases := Phases{
		Fixed: []ecs.System{func(*ecs.ECS) {
			steps++
			if env.TimeScale == 0 {
				pausedSteps++
			}
			if steps == 1 {
				hp.Trigger(0.1)
			}
		}},
		Feedback: []ecs.System{c.System(systems.UpdateEffects)},
	}
	loop := NewGameLoop(ecs.NewECS(donburi.NewWorld()), c, phases, config.Loop)

	loop.Advance(0.1)
	assert.Equal(t, 1, steps, "no step runs after the pause starts")
	assert.Equal(t, 0, pausedSteps)

	loop.Advance(0.05)
	assert.Equal(t, 1, steps, "still paused")
	assert.True(t, hp.IsPaused())
}

func TestGameLoop_PauseFromFramePhaseStopsPhysics(t *testing.T) {
	env := feedback.NewEnvironment(9.81)
	hp := feedback.NewHitPause(env, config.HitPause)
	c := &systems.Context{Env: env, HitPause: hp, Diag: systems.NewDiagnostics(log.New(io.Discard, "", 0))}

	steps := 0
	phases := Phases{
		Frame: []ecs.System{func(*ecs.ECS) { hp.Trigger(0.1) }},
		Fixed: []ecs.System{func(*ecs.ECS) { steps++ }},
	}
	loop := NewGameLoop(ecs.NewECS(donburi.NewWorld()), c, phases, config.Loop)

	loop.Advance(0.1)
	assert.Equal(t, 0, steps)
}

func TestGameLoop_SlowMotionFromFixedStep(t *testing.T) {
	env := feedback.NewEnvironment(9.81)
	c := &systems.Context{Env: env}

	steps := 0
	phases := Phases{
		Fixed: []ecs.System{func(*ecs.ECS) {
			steps++
			env.TimeScale = 0.5
		}},
	}
	loop := NewGameLoop(ecs.NewECS(donburi.NewWorld()), c, phases, config.LoopConfig{
		FixedStep:     0.02,
		MaxFixedSteps: 10,
		MaxFrameDelta: 0.25,
	})

	// One step at full speed leaves 0.09, halved to 0.045 for two more.
	loop.Advance(0.11)
	assert.Equal(t, 3, steps)
}

func TestWorld_CloseDetachesFromConfig(t *testing.T) {
	level, err := assets.NewLevelLoader().LoadLevel("prototype.tmx")
	require.NoError(t, err)
	cfg := config.NewManager()

	old, err := NewWorld(level, Options{Config: cfg, Logger: log.New(io.Discard, "", 0)})
	require.NoError(t, err)
	old.Close()

	restarted, err := NewWorld(level, Options{Config: cfg, Logger: log.New(io.Discard, "", 0)})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.PhysicsHooks(), "a restart does not pile up hooks")

	p := config.DefaultPhysics
	p.BaseGravity = 20
	require.NoError(t, cfg.SetPhysics(p))

	assert.InDelta(t, -20, restarted.Context.Env.Gravity.Y, 1e-9)
	assert.InDelta(t, -config.DefaultPhysics.BaseGravity, old.Context.Env.Gravity.Y, 1e-9, "closed world is left alone")

	restarted.Close()
	restarted.Close()
	assert.Equal(t, 0, cfg.PhysicsHooks())
}
