package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the hit-pause and the screen shake on unscaled time.
// The pause runs first so a pause that ends this frame restores the time
// scale before anything samples it.
func UpdateEffects(c *Context, e *ecs.ECS) {
	if c.HitPause != nil {
		c.HitPause.Tick(c.Dt)
	}
	if c.Shake != nil {
		c.Shake.Tick(c.Dt)
	}
}
