package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/slambounce/assets"
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/core"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	sceneChanger SceneChanger
	level        string
	cfg          *config.Manager

	world *core.World
	input inputState
	debug bool
	once  sync.Once
}

// NewPlatformerScene creates the scene for an embedded level. cfg is shared
// across restarts so tuning survives them.
func NewPlatformerScene(sc SceneChanger, level string, cfg *config.Manager) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, level: level, cfg: cfg}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	ps.input.poll()
	if debugToggled() {
		ps.debug = !ps.debug
	}
	if ps.input.justPressed(ActionRestart) {
		ps.world.Close()
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.level, ps.cfg))
		return
	}

	ps.input.writePlayerInput(ps.world.Player)
	ps.world.Loop.Advance(1 / float64(ebiten.TPS()))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.world == nil {
		return
	}
	drawWorld(screen, ps.world)
	if ps.world.Player.Valid() && ps.world.Player.HasComponent(components.Player) {
		drawHUD(screen, ps.world, ps.debug)
	}
}

func (ps *PlatformerScene) configure() {
	level := assets.NewLevelLoader().MustLoadLevel(ps.level)
	world, err := core.NewWorld(level, core.Options{Config: ps.cfg})
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}
	ps.world = world
}
