package components

import "github.com/yohamta/donburi"

// DamageEventData is damage queued on an enemy, applied by the enemy system.
type DamageEventData struct {
	Amount int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
