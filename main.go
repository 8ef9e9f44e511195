package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/automoto/slambounce/assets"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/core"
	"github.com/automoto/slambounce/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 640
	screenHeight = 360
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(level string, cfg *config.Manager) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, level, cfg)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, screenWidth, screenHeight)
	return screenWidth, screenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding the physics and feedback tunables")
	level := flag.String("level", "prototype.tmx", "embedded level to play")
	headless := flag.Bool("headless", false, "run the simulation without a window until interrupted")
	tickRate := flag.Int("tps", 60, "ticks per second in headless mode")
	flag.Parse()

	cfg := config.NewManager()
	if *tuningPath != "" {
		if err := applyTuning(cfg, *tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	if *headless {
		if err := runHeadless(cfg, *level, *tickRate); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		return
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("slambounce")
	if err := ebiten.RunGame(NewGame(*level, cfg)); err != nil {
		log.Fatal(err)
	}
}

func applyTuning(cfg *config.Manager, path string) error {
	t, err := config.LoadTuning(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return err
	}
	config.Shake = t.Shake
	config.HitPause = t.HitPause
	config.Camera = t.Camera
	return cfg.ApplyTuning(t)
}

func runHeadless(cfg *config.Manager, levelName string, tickRate int) error {
	level, err := assets.NewLevelLoader().LoadLevel(levelName)
	if err != nil {
		return err
	}
	world, err := core.NewWorld(level, core.Options{Config: cfg})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return world.Loop.Run(ctx, tickRate)
}
