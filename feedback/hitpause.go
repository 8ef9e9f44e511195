package feedback

import "github.com/automoto/slambounce/config"

// HitPause freezes global time for a short, wall-clock measured duration.
// Triggers while a pause is running are ignored. The time scale recorded at
// trigger time is restored on completion or Stop; a change made to the time
// scale by anyone else during the pause is overwritten by that restore.
type HitPause struct {
	env *Environment
	cfg config.HitPauseConfig

	active     bool
	fresh      bool
	savedScale float64
	duration   float64
	elapsed    float64
}

func NewHitPause(env *Environment, cfg config.HitPauseConfig) *HitPause {
	return &HitPause{env: env, cfg: cfg}
}

// Trigger starts a pause of duration seconds. A negative duration uses the
// configured default. It returns false when a pause is already active.
func (h *HitPause) Trigger(duration float64) bool {
	if h.active || h.env == nil {
		return false
	}
	if duration < 0 {
		duration = h.cfg.DefaultDuration
	}

	h.active = true
	h.fresh = true
	h.savedScale = h.env.TimeScale
	h.duration = duration
	h.elapsed = 0
	h.env.TimeScale = h.cfg.TimeScale
	return true
}

// TriggerDefault starts a pause with the configured default duration.
func (h *HitPause) TriggerDefault() bool {
	return h.Trigger(h.cfg.DefaultDuration)
}

// Tick advances the pause by unscaledDt seconds of real time. The tick in
// which the pause was triggered does not consume time.
func (h *HitPause) Tick(unscaledDt float64) Status {
	if !h.active {
		return Idle
	}
	if h.fresh {
		h.fresh = false
	} else {
		h.elapsed += unscaledDt
	}
	if h.elapsed >= h.duration {
		h.restore()
		return Done
	}
	return Running
}

// Stop ends an active pause immediately, restoring the recorded time scale.
func (h *HitPause) Stop() bool {
	if !h.active {
		return false
	}
	h.restore()
	return true
}

func (h *HitPause) restore() {
	h.env.TimeScale = h.savedScale
	h.active = false
	h.fresh = false
}

func (h *HitPause) IsPaused() bool { return h.active }

// SavedTimeScale is the time scale that will be restored.
func (h *HitPause) SavedTimeScale() float64 { return h.savedScale }

// Remaining returns the real seconds left in the active pause.
func (h *HitPause) Remaining() float64 {
	if !h.active {
		return 0
	}
	return h.duration - h.elapsed
}
