package components

import (
	"github.com/automoto/slambounce/assets"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Mapping      gamemath.SpaceMapping
	Time         float64 // scaled seconds since the scene started
}

var Level = donburi.NewComponentType[LevelData]()
