package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Platform  = donburi.NewTag().SetName("Platform")
	Bouncy    = donburi.NewTag().SetName("Bouncy")
	Enemy     = donburi.NewTag().SetName("Enemy")
	SavePoint = donburi.NewTag().SetName("SavePoint")
	Hazard    = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvBouncy    = "bouncy"
	ResolvSavePoint = "savepoint"
	ResolvHazard    = "hazard"
)

// ResolvBlocking are the tags a body cannot move through.
var ResolvBlocking = []string{ResolvSolid, ResolvBouncy, ResolvEnemy}
