package components

import "github.com/yohamta/donburi"

// EnemyData is the health of an enemy or boss. Once Alive is false the enemy
// is inert: it no longer collides or takes damage.
type EnemyData struct {
	Health    int
	MaxHealth int
	Alive     bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

// ChargeGrantEvent is published when an enemy dies from damage. The player
// treats it as an Enhanced bounce that grants a slam charge.
type ChargeGrantEvent struct {
	Source   donburi.Entity
	Category Category
}
