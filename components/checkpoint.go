package components

import (
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SavePointData is a trigger volume that saves the player's checkpoint once.
type SavePointData struct {
	Position         gamemath.Vec3
	Active           bool
	HasSaved         bool
	DestroyAfterSave bool
	RemoveIn         float64 // seconds until removal once saved, <0 when not scheduled
}

var SavePoint = donburi.NewComponentType[SavePointData]()
