package core

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/automoto/slambounce/assets"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/feedback"
	"github.com/automoto/slambounce/systems"
	"github.com/automoto/slambounce/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// World is a loaded level with its collaborators wired together.
type World struct {
	ECS     *ecs.ECS
	Context *systems.Context
	Loop    *GameLoop
	Level   *assets.Level
	Player  *donburi.Entry
	Camera  *donburi.Entry

	unwatch func()
}

// Options customise NewWorld. Zero values pick the defaults.
type Options struct {
	Config *config.Manager
	Shake  config.ShakeConfig
	Logger *log.Logger
	Clock  feedback.Clock
	Rand   *rand.Rand
}

// NewWorld builds the world for level and wires every system.
func NewWorld(level *assets.Level, opts Options) (*World, error) {
	if level == nil {
		return nil, fmt.Errorf("new world: level is nil")
	}
	if opts.Config == nil {
		opts.Config = config.NewManager()
	}
	if opts.Shake.DecayCurve == "" {
		opts.Shake = config.Shake
	}

	env := feedback.NewEnvironment(opts.Config.Physics().BaseGravity)
	shake, err := feedback.NewScreenShake(opts.Shake, opts.Clock, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	c := &systems.Context{
		Config:   opts.Config,
		Env:      env,
		HitPause: feedback.NewHitPause(env, config.HitPause),
		Shake:    shake,
		Diag:     systems.NewDiagnostics(opts.Logger),
		Mapping:  level.Mapping,
	}

	e := ecs.NewECS(donburi.NewWorld())
	_, player := factory.CreateLevel(e, level)
	camera := factory.CreateCamera(e, player)

	unwatch := systems.WatchPhysics(c, e.World)
	systems.SnapCamera(e)

	return &World{
		ECS:     e,
		Context: c,
		Loop:    NewGameLoop(e, c, DefaultPhases(c), config.Loop),
		Level:   level,
		Player:  player,
		Camera:  camera,
		unwatch: unwatch,
	}, nil
}

// Close detaches the world from the shared config manager. The world must
// not be advanced afterwards.
func (w *World) Close() {
	if w.unwatch != nil {
		w.unwatch()
		w.unwatch = nil
	}
}
