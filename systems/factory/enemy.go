package factory

import (
	"log"

	"github.com/automoto/slambounce/archetypes"
	"github.com/automoto/slambounce/components"
	cfg "github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given class in a pixel rectangle.
// Unknown classes become regular enemies. health <= 0 uses the category default.
func CreateEnemy(ecs *ecs.ECS, x, y, w, h float64, class string, health int) *donburi.Entry {
	category, ok := components.ParseCategory(class)
	if !ok || category == components.CategoryBouncy {
		log.Printf("Warning: unknown enemy class %q, using Enemy", class)
		category = components.CategoryEnemy
	}
	return CreateEnemyOfCategory(ecs, x, y, w, h, category, health)
}

func CreateEnemyOfCategory(ecs *ecs.ECS, x, y, w, h float64, category components.Category, health int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy

	if health <= 0 {
		health = defaultHealth(category)
	}
	components.Enemy.SetValue(enemy, components.EnemyData{
		Health:    health,
		MaxHealth: health,
		Alive:     true,
	})
	components.Interactable.SetValue(enemy, components.InteractableData{Category: category})

	addToSpace(ecs, obj)
	return enemy
}

func defaultHealth(category components.Category) int {
	switch category {
	case components.CategoryBoss:
		return cfg.Enemy.BossHealth
	case components.CategoryElite:
		return cfg.Enemy.EliteHealth
	default:
		return cfg.Enemy.Health
	}
}
