// Package core drives the systems: a variable frame tick, a fixed physics
// tick, the feedback tick on real time and the camera late tick.
package core

import (
	"context"
	"log"
	"time"

	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/systems"
	"github.com/yohamta/donburi/ecs"
)

// Phases groups the systems run by each step of the loop.
type Phases struct {
	Frame    []ecs.System // scaled frame time
	Fixed    []ecs.System // once per fixed step
	Feedback []ecs.System // unscaled frame time
	Late     []ecs.System // scaled frame time, after everything else
}

// DefaultPhases is the standard system order for a scene.
func DefaultPhases(c *systems.Context) Phases {
	return Phases{
		Frame: []ecs.System{
			c.System(systems.UpdateEnemies),
			c.System(systems.UpdateChargeGrants),
			c.System(systems.UpdatePlayer),
			c.System(systems.UpdateSavePoints),
			c.System(systems.UpdateHazards),
			c.System(systems.UpdateFalls),
			c.System(systems.UpdatePlayerState),
		},
		Fixed: []ecs.System{
			c.System(systems.UpdatePhysics),
		},
		Feedback: []ecs.System{
			c.System(systems.UpdateEffects),
		},
		Late: []ecs.System{
			c.System(systems.UpdateCamera),
		},
	}
}

// GameLoop owns the timing of a world. It is single threaded: Advance must
// not be called concurrently.
type GameLoop struct {
	ecs    *ecs.ECS
	ctx    *systems.Context
	phases Phases
	cfg    config.LoopConfig

	accumulator float64
	frames      int
	fixedSteps  int
}

func NewGameLoop(e *ecs.ECS, c *systems.Context, phases Phases, cfg config.LoopConfig) *GameLoop {
	if cfg.FixedStep <= 0 {
		cfg.FixedStep = config.Loop.FixedStep
	}
	if cfg.MaxFixedSteps <= 0 {
		cfg.MaxFixedSteps = config.Loop.MaxFixedSteps
	}
	return &GameLoop{
		ecs:    e,
		ctx:    c,
		phases: phases,
		cfg:    cfg,
	}
}

// Advance runs one host frame of realDt seconds: the frame tick, as many
// fixed ticks as the scaled time allows, the feedback tick and the late tick.
// Feedback requested during the fixed ticks is visible to the late tick of
// the same call.
func (g *GameLoop) Advance(realDt float64) {
	if realDt < 0 {
		realDt = 0
	}
	if g.cfg.MaxFrameDelta > 0 && realDt > g.cfg.MaxFrameDelta {
		realDt = g.cfg.MaxFrameDelta
	}
	g.frames++

	scaled := realDt * g.timeScale()
	g.ctx.Time += scaled

	g.run(g.phases.Frame, scaled)
	// A pause started by the frame phase holds physics from this frame on.
	g.FixedTick(realDt * g.timeScale())
	g.run(g.phases.Feedback, realDt)
	// The pause may have ended this frame, so rescale for the camera.
	g.run(g.phases.Late, realDt*g.timeScale())
}

// FixedTick accumulates scaled seconds and runs the fixed phase once per
// whole step. Steps beyond the cap are dropped. When a step changes the time
// scale, the time left in the accumulator is rescaled, so a hit-pause started
// by a step stops the steps after it.
func (g *GameLoop) FixedTick(scaled float64) int {
	g.accumulator += scaled
	scale := g.timeScale()
	steps := 0
	for g.accumulator >= g.cfg.FixedStep {
		if steps == g.cfg.MaxFixedSteps {
			g.accumulator = 0
			break
		}
		g.accumulator -= g.cfg.FixedStep
		g.run(g.phases.Fixed, g.cfg.FixedStep)
		steps++

		if now := g.timeScale(); now != scale {
			if scale > 0 {
				g.accumulator *= now / scale
			} else {
				g.accumulator = 0
			}
			scale = now
		}
	}
	g.fixedSteps += steps
	return steps
}

func (g *GameLoop) run(phase []ecs.System, dt float64) {
	g.ctx.Dt = dt
	for _, system := range phase {
		system(g.ecs)
	}
}

func (g *GameLoop) timeScale() float64 {
	if g.ctx.Env == nil {
		return 1
	}
	return g.ctx.Env.TimeScale
}

// Frames returns the number of Advance calls so far.
func (g *GameLoop) Frames() int { return g.frames }

// FixedSteps returns the total number of fixed ticks run.
func (g *GameLoop) FixedSteps() int { return g.fixedSteps }

// Run advances the loop from a ticker at tickRate frames per second until
// ctx is cancelled.
func (g *GameLoop) Run(ctx context.Context, tickRate int) error {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", tickRate)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return ctx.Err()
		case now := <-ticker.C:
			g.Advance(now.Sub(last).Seconds())
			last = now
		}
	}
}
