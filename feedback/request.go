package feedback

import "github.com/automoto/slambounce/config"

// Request asks for a hit-pause and a screen shake at once. Durations are seconds.
type Request struct {
	HitPause       float64
	ShakeDuration  float64
	ShakeAmplitude float64
}

// FromConfig builds a request from a feedback tunable set.
func FromConfig(f config.FeedbackConfig) Request {
	return Request{
		HitPause:       f.HitPauseDuration,
		ShakeDuration:  f.ShakeDuration,
		ShakeAmplitude: f.ShakeAmplitude,
	}
}

// Scaled multiplies each field independently.
func (r Request) Scaled(pause, shakeDuration, shakeAmplitude float64) Request {
	return Request{
		HitPause:       r.HitPause * pause,
		ShakeDuration:  r.ShakeDuration * shakeDuration,
		ShakeAmplitude: r.ShakeAmplitude * shakeAmplitude,
	}
}

// Outcome reports what a dispatched request actually started.
type Outcome struct {
	PauseStarted bool
	ShakeStarted bool
}

// Dispatch triggers both generators for r. A nil generator is skipped and
// reported as not started.
func Dispatch(r Request, pause *HitPause, shake *ScreenShake) Outcome {
	var out Outcome
	if pause != nil {
		out.PauseStarted = pause.Trigger(r.HitPause)
	}
	if shake != nil {
		out.ShakeStarted = shake.Trigger(r.ShakeDuration, r.ShakeAmplitude)
	}
	return out
}
