package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/core"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/systems"
	"github.com/automoto/slambounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var (
	colorSolid     = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	colorBouncy    = color.RGBA{R: 60, G: 200, B: 120, A: 255}
	colorEnemy     = color.RGBA{R: 200, G: 70, B: 60, A: 255}
	colorElite     = color.RGBA{R: 230, G: 140, B: 40, A: 255}
	colorBoss      = color.RGBA{R: 160, G: 40, B: 200, A: 255}
	colorSavePoint = color.RGBA{R: 80, G: 160, B: 230, A: 120}
	colorHazard    = color.RGBA{R: 120, G: 200, B: 40, A: 100}
	colorPlayer    = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	colorSlamming  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	colorCharged   = color.RGBA{R: 255, G: 220, B: 60, A: 255}
)

// drawWorld renders the collision plane as seen by the camera: the view is
// centred on the camera's X/Y so the shake offset moves the whole scene.
func drawWorld(screen *ebiten.Image, w *core.World) {
	cameraEntry, ok := components.Camera.First(w.ECS.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	m := w.Context.Mapping

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	focus := camera.Position.Sub(gamemath.Up.Scale(camera.Height))
	fx, fy := m.ToSpace(focus)
	offX := float64(width)/2 - fx
	offY := float64(height)/2 - fy

	spaceEntry, ok := components.Space.First(w.ECS.World)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		clr, ok := objectColor(obj)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(obj.X+offX), float32(obj.Y+offY),
			float32(obj.W), float32(obj.H),
			clr, false)
	}

	if systems.ShowLandingIndicator(w.Player) {
		drawLandingIndicator(screen, w, offX, offY)
	}
}

func objectColor(obj *resolv.Object) (color.Color, bool) {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return colorSolid, true
	case obj.HasTags(tags.ResolvBouncy):
		return colorBouncy, true
	case obj.HasTags(tags.ResolvSavePoint):
		return colorSavePoint, true
	case obj.HasTags(tags.ResolvHazard):
		return colorHazard, true
	case obj.HasTags(tags.ResolvPlayer):
		return playerColor(obj), true
	case obj.HasTags(tags.ResolvEnemy):
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Interactable) {
			return colorEnemy, true
		}
		switch components.Interactable.Get(entry).Category {
		case components.CategoryBoss:
			return colorBoss, true
		case components.CategoryElite:
			return colorElite, true
		}
		return colorEnemy, true
	}
	return nil, false
}

func playerColor(obj *resolv.Object) color.Color {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok {
		return colorPlayer
	}
	switch {
	case systems.IsSlamming(entry):
		return colorSlamming
	case entry.Valid() && components.Player.Get(entry).SlamCharge:
		return colorCharged
	}
	return colorPlayer
}

// drawLandingIndicator marks the ground straight below the player.
func drawLandingIndicator(screen *ebiten.Image, w *core.World, offX, offY float64) {
	obj := components.Object.Get(w.Player).Object
	x := obj.X + obj.W/2 + offX
	top := obj.Y + obj.H + offY
	bottom := float64(screen.Bounds().Dy())
	vector.StrokeLine(screen, float32(x), float32(top), float32(x), float32(bottom), 1, colorCharged, false)
}

func drawHUD(screen *ebiten.Image, w *core.World, debug bool) {
	pd := components.Player.Get(w.Player)
	msg := fmt.Sprintf("charge: %v  slamming: %v  bounce: %s", pd.SlamCharge, pd.IsSlamming, pd.BounceType)
	if pd.GameOver {
		msg += "\nBOSS DEFEATED - press R to restart"
	}
	if debug {
		body := components.Body.Get(w.Player)
		msg += fmt.Sprintf("\npos: %.2f %.2f %.2f  vel: %.2f %.2f %.2f",
			body.Position.X, body.Position.Y, body.Position.Z,
			body.Velocity.X, body.Velocity.Y, body.Velocity.Z)
		msg += fmt.Sprintf("\ntime scale: %.2f  gravity: %.2f  shake: %.3f",
			w.Context.Env.TimeScale, w.Context.Env.Gravity.Y, w.Context.Shake.Amplitude())
		for _, d := range lastDiagnostics(w.Context.Diag, 4) {
			msg += "\n" + d.String()
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

func lastDiagnostics(d *systems.Diagnostics, n int) []systems.Diagnostic {
	recent := d.Recent()
	if len(recent) > n {
		recent = recent[len(recent)-n:]
	}
	return recent
}
