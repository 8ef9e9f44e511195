package components

import (
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/yohamta/donburi"
)

// HazardData is a poison volume that teleports the player to Destination.
type HazardData struct {
	Destination gamemath.Vec3
}

var Hazard = donburi.NewComponentType[HazardData]()
