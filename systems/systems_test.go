package systems

import (
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/feedback"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testMapping spans world X [-20, 20] and Y [-10, 10] at 16 pixels per unit.
var testMapping = gamemath.SpaceMapping{Origin: gamemath.Vec3{X: -20, Y: 10}, Scale: 16}

type testWorld struct {
	ecs    *ecs.ECS
	ctx    *Context
	player *donburi.Entry
}

func newTestContext(t *testing.T, shakeCfg config.ShakeConfig) *Context {
	t.Helper()
	env := feedback.NewEnvironment(config.DefaultPhysics.BaseGravity)
	shake, err := feedback.NewScreenShake(shakeCfg, nil, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return &Context{
		Config:   config.NewManager(),
		Env:      env,
		HitPause: feedback.NewHitPause(env, config.HitPause),
		Shake:    shake,
		Diag:     NewDiagnostics(log.New(io.Discard, "", 0)),
		Mapping:  testMapping,
		Dt:       1.0 / 60,
	}
}

// newTestWorld returns a world with a collision space and a player at the
// world origin, whose box covers pixels (312, 152) to (328, 168).
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 320, 16, 16)
	return &testWorld{
		ecs:    e,
		ctx:    newTestContext(t, config.Shake),
		player: factory.CreatePlayer(e, testMapping, gamemath.Zero),
	}
}

func (w *testWorld) playerData() *components.PlayerData {
	return components.Player.Get(w.player)
}

func (w *testWorld) body() *components.BodyData {
	return components.Body.Get(w.player)
}

func (w *testWorld) enemy(category components.Category) *donburi.Entry {
	return factory.CreateEnemyOfCategory(w.ecs, 0, 0, 16, 16, category, 0)
}

func (w *testWorld) bouncy() *donburi.Entry {
	return factory.CreateBouncy(w.ecs, 0, 300, 32, 16)
}
