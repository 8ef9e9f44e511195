package config

import "math"

// Manager holds the live physics and feedback tunables. The zero value is
// ready to use and lazily takes the defaults on first access. A nil *Manager
// also reports defaults, so readers never need a nil check.
type Manager struct {
	initialized bool

	physics          PhysicsConfig
	feedback         FeedbackConfig
	superMultiplier  float64
	bossMultiplier   float64
	onPhysicsChanged []physicsHook
	nextHookID       int
}

type physicsHook struct {
	id int
	fn func(PhysicsConfig)
}

// NewManager returns a manager holding the default tunables.
func NewManager() *Manager {
	m := &Manager{}
	m.ensure()
	return m
}

func (m *Manager) ensure() {
	if m.initialized {
		return
	}
	m.physics = DefaultPhysics
	m.feedback = DefaultFeedback
	m.superMultiplier = DefaultSuperBounceMultiplier
	m.bossMultiplier = DefaultBossBounceMultiplier
	m.initialized = true
}

func (m *Manager) Physics() PhysicsConfig {
	if m == nil {
		return DefaultPhysics
	}
	m.ensure()
	return m.physics
}

func (m *Manager) Feedback() FeedbackConfig {
	if m == nil {
		return DefaultFeedback
	}
	m.ensure()
	return m.feedback
}

// SuperBounceMultiplier scales the enhanced up-speed for an elite kill.
func (m *Manager) SuperBounceMultiplier() float64 {
	if m == nil {
		return DefaultSuperBounceMultiplier
	}
	m.ensure()
	return m.superMultiplier
}

// BossBounceMultiplier scales the enhanced up-speed for a boss kill.
func (m *Manager) BossBounceMultiplier() float64 {
	if m == nil {
		return DefaultBossBounceMultiplier
	}
	m.ensure()
	return m.bossMultiplier
}

// OnPhysicsChanged registers fn to run whenever the physics tunables are
// replaced. fn is called once immediately with the current values. The
// returned func unregisters fn; calling it more than once is a no-op.
func (m *Manager) OnPhysicsChanged(fn func(PhysicsConfig)) (unsubscribe func()) {
	m.ensure()
	m.nextHookID++
	id := m.nextHookID
	m.onPhysicsChanged = append(m.onPhysicsChanged, physicsHook{id: id, fn: fn})
	fn(m.physics)

	return func() {
		for i, h := range m.onPhysicsChanged {
			if h.id == id {
				m.onPhysicsChanged = append(m.onPhysicsChanged[:i], m.onPhysicsChanged[i+1:]...)
				return
			}
		}
	}
}

// PhysicsHooks returns the number of registered physics hooks.
func (m *Manager) PhysicsHooks() int {
	if m == nil {
		return 0
	}
	return len(m.onPhysicsChanged)
}

// SetPhysics replaces the physics tunables and re-applies world gravity
// through the registered hooks.
func (m *Manager) SetPhysics(p PhysicsConfig) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.ensure()
	m.physics = p
	m.applyPhysics()
	return nil
}

func (m *Manager) SetFeedback(f FeedbackConfig) error {
	if err := f.Validate(); err != nil {
		return err
	}
	m.ensure()
	m.feedback = f
	return nil
}

// SetSuperBounceMultiplier sets the elite multiplier, never below 1.
func (m *Manager) SetSuperBounceMultiplier(multiplier float64) {
	m.ensure()
	m.superMultiplier = math.Max(1, multiplier)
}

// SetBossBounceMultiplier sets the boss multiplier, never below 1.
func (m *Manager) SetBossBounceMultiplier(multiplier float64) {
	m.ensure()
	m.bossMultiplier = math.Max(1, multiplier)
}

// ResetToDefaults restores every tunable and re-applies world gravity.
func (m *Manager) ResetToDefaults() {
	m.ensure()
	m.physics = DefaultPhysics
	m.feedback = DefaultFeedback
	m.superMultiplier = DefaultSuperBounceMultiplier
	m.bossMultiplier = DefaultBossBounceMultiplier
	m.applyPhysics()
}

func (m *Manager) applyPhysics() {
	for _, h := range m.onPhysicsChanged {
		h.fn(m.physics)
	}
}
