package systems

import (
	"testing"

	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeDamage(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemyOfCategory(w.ecs, 0, 0, 16, 16, components.CategoryElite, 2)

	assert.False(t, TakeDamage(w.ctx, w.ecs, enemy, 1))
	assert.Equal(t, 1, components.Enemy.Get(enemy).Health)
	assert.Empty(t, w.ctx.PendingChargeGrants())

	require.True(t, TakeDamage(w.ctx, w.ecs, enemy, 1))
	assert.False(t, enemy.Valid())
	grants := w.ctx.PendingChargeGrants()
	require.Len(t, grants, 1)
	assert.Equal(t, components.CategoryElite, grants[0].Category)

	UpdateChargeGrants(w.ctx, w.ecs)
	assert.Empty(t, w.ctx.PendingChargeGrants())
	assert.True(t, w.playerData().SlamCharge)
	assert.Equal(t, config.BounceEnhanced, w.playerData().BounceType)
	assert.InDelta(t, config.DefaultPhysics.EnhancedUpSpeed, w.body().Velocity.Y, 1e-9)
}

func TestTakeDamage_Missing(t *testing.T) {
	w := newTestWorld(t)
	assert.False(t, TakeDamage(w.ctx, w.ecs, nil, 1))
	assert.Equal(t, 1, w.ctx.Diag.Count(MissingCollaborator))
}

func TestQueueDamage(t *testing.T) {
	w := newTestWorld(t)
	boss := factory.CreateEnemyOfCategory(w.ecs, 0, 0, 16, 16, components.CategoryBoss, 0)
	require.Equal(t, config.Enemy.BossHealth, components.Enemy.Get(boss).Health)

	QueueDamage(boss, 1)
	QueueDamage(boss, 1)
	UpdateEnemies(w.ctx, w.ecs)

	assert.Equal(t, config.Enemy.BossHealth-2, components.Enemy.Get(boss).Health)
	assert.False(t, boss.HasComponent(components.DamageEvent))

	QueueDamage(boss, 10)
	UpdateEnemies(w.ctx, w.ecs)
	assert.False(t, boss.Valid())
	assert.Len(t, w.ctx.PendingChargeGrants(), 1)
}

func TestUpdateChargeGrants_AfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemyOfCategory(w.ecs, 0, 0, 16, 16, components.CategoryEnemy, 1)
	w.playerData().GameOver = true

	TakeDamage(w.ctx, w.ecs, enemy, 1)
	UpdateChargeGrants(w.ctx, w.ecs)

	assert.False(t, w.playerData().SlamCharge)
	assert.Equal(t, 1, w.ctx.Diag.Count(TerminalState))
}

func TestCreateEnemy_UnknownClass(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w.ecs, 0, 0, 16, 16, "Slime", 0)
	assert.Equal(t, components.CategoryEnemy, components.Interactable.Get(enemy).Category)

	elite := factory.CreateEnemy(w.ecs, 0, 0, 16, 16, "SuperZombie", 0)
	assert.Equal(t, components.CategoryElite, components.Interactable.Get(elite).Category)
}
