package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Category is the collision category of an interactable collider.
// Lower values win when several are touched in one event.
type Category int

const (
	CategoryBoss Category = iota
	CategoryElite
	CategoryEnemy
	CategoryBouncy
)

// CategoryCount is the number of categories in priority order.
const CategoryCount = 4

func (c Category) String() string {
	switch c {
	case CategoryBoss:
		return "Boss"
	case CategoryElite:
		return "EliteEnemy"
	case CategoryEnemy:
		return "Enemy"
	case CategoryBouncy:
		return "GenericBouncy"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps level class names onto categories.
func ParseCategory(name string) (Category, bool) {
	switch name {
	case "Boss", "boss":
		return CategoryBoss, true
	case "Elite", "EliteEnemy", "SuperZombie", "elite":
		return CategoryElite, true
	case "Enemy", "Zombie", "enemy":
		return CategoryEnemy, true
	case "Bouncy", "Bouncable", "bouncy":
		return CategoryBouncy, true
	}
	return 0, false
}

type InteractableData struct {
	Category Category
}

var Interactable = donburi.NewComponentType[InteractableData]()
