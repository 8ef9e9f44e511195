package feedback

import (
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Perlin parameters for the continuous shake source.
const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
	noiseSeed    = 1337
)

// Fixed lanes keep each axis on its own slice of the noise field.
const (
	laneX = 0.31
	laneY = 0.71
)

type shakeSession struct {
	duration  float64
	amplitude float64
	startedAt time.Time
	seed      float64
	elapsed   float64
	fresh     bool
	decay     *gween.Tween
}

// ScreenShake produces a decaying camera offset. Only one session exists at a
// time: a new trigger replaces the running one. It ticks on unscaled time so
// it keeps moving while a hit-pause holds the time scale at zero.
type ScreenShake struct {
	cfg   config.ShakeConfig
	curve ease.TweenFunc
	clock Clock
	epoch time.Time
	noise *perlin.Perlin
	rng   *rand.Rand

	session   *shakeSession
	offset    gamemath.Vec3
	amplitude float64
}

// NewScreenShake builds a generator. rng feeds the uniform random mode and
// may be nil to use a time seeded source.
func NewScreenShake(cfg config.ShakeConfig, clock Clock, rng *rand.Rand) (*ScreenShake, error) {
	curve, err := CurveByName(cfg.DecayCurve)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}
	return &ScreenShake{
		cfg:   cfg,
		curve: curve,
		clock: clock,
		epoch: clock.Now(),
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, noiseSeed),
		rng:   rng,
	}, nil
}

// Trigger starts a shake, cancelling any running one. A non-positive
// duration only clears the offset and returns false.
func (s *ScreenShake) Trigger(duration, amplitude float64) bool {
	s.session = nil
	if duration <= 0 {
		s.zero()
		return false
	}

	now := s.clock.Now()
	s.session = &shakeSession{
		duration:  duration,
		amplitude: math.Max(0, amplitude),
		startedAt: now,
		seed:      s.cfg.Seed + now.Sub(s.epoch).Seconds(),
		fresh:     true,
		decay:     gween.New(1, 0, float32(duration), s.curve),
	}
	return true
}

// TriggerDefault starts a shake with the configured default duration and amplitude.
func (s *ScreenShake) TriggerDefault() bool {
	return s.Trigger(s.cfg.DefaultDuration, s.cfg.DefaultAmplitude)
}

// Tick advances the running session by unscaledDt seconds and updates the
// published offset. The tick in which a session was triggered samples it at
// elapsed zero. When elapsed reaches the duration the offset is reset to zero
// and the session ends.
func (s *ScreenShake) Tick(unscaledDt float64) Status {
	sess := s.session
	if sess == nil {
		return Idle
	}
	if sess.fresh {
		sess.fresh = false
	} else {
		sess.elapsed += unscaledDt
	}

	if sess.elapsed >= sess.duration {
		s.session = nil
		s.zero()
		return Done
	}

	decay, _ := sess.decay.Set(float32(sess.elapsed))
	s.amplitude = sess.amplitude * gamemath.Clamp(float64(decay), 0, 1) * s.cfg.GlobalMultiplier
	s.offset = s.shape(s.sample(sess), s.amplitude)
	return Running
}

// Stop tears down the running session and zeroes the offset.
func (s *ScreenShake) Stop() bool {
	wasShaking := s.session != nil
	s.session = nil
	s.zero()
	return wasShaking
}

func (s *ScreenShake) zero() {
	s.offset = gamemath.Zero
	s.amplitude = 0
}

// sample returns a raw per-axis value in [-1, 1].
func (s *ScreenShake) sample(sess *shakeSession) gamemath.Vec3 {
	if !s.cfg.UseNoise {
		return gamemath.Vec3{
			X: s.rng.Float64()*2 - 1,
			Y: s.rng.Float64()*2 - 1,
			Z: s.rng.Float64()*2 - 1,
		}
	}

	t := sess.seed + sess.elapsed*s.cfg.Frequency
	return gamemath.Vec3{
		X: gamemath.Clamp(s.noise.Noise2D(t, laneX), -1, 1),
		Y: gamemath.Clamp(s.noise.Noise2D(laneY, t), -1, 1),
		Z: gamemath.Clamp(s.noise.Noise2D(t, t), -1, 1),
	}
}

// shape scales a raw sample and applies the direction controls.
func (s *ScreenShake) shape(raw gamemath.Vec3, amplitude float64) gamemath.Vec3 {
	out := gamemath.Vec3{
		X: raw.X * amplitude * s.cfg.IntensityX,
		Y: raw.Y * amplitude * s.cfg.IntensityY,
		Z: raw.Z * amplitude * s.cfg.IntensityZ,
	}
	if s.cfg.HorizontalScale != 1 {
		out.X *= s.cfg.HorizontalScale
		out.Z *= s.cfg.HorizontalScale
	}
	if s.cfg.ForceDownward {
		out.Y = -math.Abs(out.Y)
	}
	return out
}

// Offset is the current world-space shake offset.
func (s *ScreenShake) Offset() gamemath.Vec3 { return s.offset }

// Amplitude is the instantaneous amplitude of the last tick.
func (s *ScreenShake) Amplitude() float64 { return s.amplitude }

func (s *ScreenShake) IsShaking() bool { return s.session != nil }

// Elapsed returns the unscaled seconds into the running session.
func (s *ScreenShake) Elapsed() float64 {
	if s.session == nil {
		return 0
	}
	return s.session.elapsed
}
