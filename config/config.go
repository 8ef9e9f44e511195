package config

import (
	"errors"
	"fmt"

	"github.com/automoto/slambounce/shared/gamemath"
)

// ErrNegativeMagnitude is returned when a tunable that must be >= 0 is negative.
var ErrNegativeMagnitude = errors.New("magnitude must be >= 0")

// BounceType selects the launch speed and gravity scale applied after an impact.
type BounceType int

const (
	BounceNormal BounceType = iota
	BounceEnhanced
	BounceSuper
)

func (b BounceType) String() string {
	switch b {
	case BounceNormal:
		return "Normal"
	case BounceEnhanced:
		return "Enhanced"
	case BounceSuper:
		return "Super"
	default:
		return fmt.Sprintf("BounceType(%d)", int(b))
	}
}

// PhysicsConfig contains the tunables for movement and bouncing.
type PhysicsConfig struct {
	MoveForce            float64 `yaml:"moveForce"`
	SlamForce            float64 `yaml:"slamForce"`
	NormalUpSpeed        float64 `yaml:"normalUpSpeed"`
	NormalGravityScale   float64 `yaml:"normalGravityScale"`
	EnhancedUpSpeed      float64 `yaml:"enhancedUpSpeed"`
	EnhancedGravityScale float64 `yaml:"enhancedGravityScale"`
	BaseGravity          float64 `yaml:"baseGravity"`
	GlobalBounceStrength float64 `yaml:"globalBounceStrength"`
}

// Validate checks that every magnitude is non-negative.
func (p PhysicsConfig) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"moveForce", p.MoveForce},
		{"slamForce", p.SlamForce},
		{"normalUpSpeed", p.NormalUpSpeed},
		{"normalGravityScale", p.NormalGravityScale},
		{"enhancedUpSpeed", p.EnhancedUpSpeed},
		{"enhancedGravityScale", p.EnhancedGravityScale},
		{"baseGravity", p.BaseGravity},
		{"globalBounceStrength", p.GlobalBounceStrength},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("physics %s=%v: %w", f.name, f.value, ErrNegativeMagnitude)
		}
	}
	return nil
}

// FeedbackConfig holds the standard impact feedback request. Durations are seconds.
type FeedbackConfig struct {
	HitPauseDuration float64 `yaml:"hitPauseDuration"`
	ShakeDuration    float64 `yaml:"shakeDuration"`
	ShakeAmplitude   float64 `yaml:"shakeAmplitude"`
}

func (f FeedbackConfig) Validate() error {
	switch {
	case f.HitPauseDuration < 0:
		return fmt.Errorf("feedback hitPauseDuration=%v: %w", f.HitPauseDuration, ErrNegativeMagnitude)
	case f.ShakeDuration < 0:
		return fmt.Errorf("feedback shakeDuration=%v: %w", f.ShakeDuration, ErrNegativeMagnitude)
	case f.ShakeAmplitude < 0:
		return fmt.Errorf("feedback shakeAmplitude=%v: %w", f.ShakeAmplitude, ErrNegativeMagnitude)
	}
	return nil
}

// FeedbackPresets are the fixed requests issued outside of combat.
type FeedbackPresets struct {
	Checkpoint FeedbackConfig // light pulse on save
	Restore    FeedbackConfig // fall recovered to a checkpoint
	Fall       FeedbackConfig // fall recovered to the default spawn

	// Boss kill amplification applied to the standard request.
	BossPauseScale     float64
	BossShakeScale     float64
	BossAmplitudeScale float64
}

// ShakeConfig contains screen shake generator tunables.
type ShakeConfig struct {
	DefaultDuration  float64 `yaml:"defaultDuration"`
	DefaultAmplitude float64 `yaml:"defaultAmplitude"`
	Frequency        float64 `yaml:"frequency"`  // noise samples advanced per second
	DecayCurve       string  `yaml:"decayCurve"` // see feedback.Curves
	IntensityX       float64 `yaml:"intensityX"`
	IntensityY       float64 `yaml:"intensityY"`
	IntensityZ       float64 `yaml:"intensityZ"`
	GlobalMultiplier float64 `yaml:"globalMultiplier"`
	UseNoise         bool    `yaml:"useNoise"` // false = uniform random per tick
	Seed             float64 `yaml:"seed"`
	HorizontalScale  float64 `yaml:"horizontalScale"` // 0 removes X/Z shake
	ForceDownward    bool    `yaml:"forceDownward"`
}

// HitPauseConfig contains hit-pause generator tunables.
type HitPauseConfig struct {
	DefaultDuration float64 `yaml:"defaultDuration"`
	TimeScale       float64 `yaml:"timeScale"` // time scale while paused, 0 = full stop
}

// CameraConfig contains third-person follow camera tunables.
type CameraConfig struct {
	Distance         float64       `yaml:"distance"`
	Height           float64       `yaml:"height"`
	FollowSpeed      float64       `yaml:"followSpeed"`
	RotationSpeed    float64       `yaml:"rotationSpeed"`
	SmoothMovement   bool          `yaml:"smoothMovement"` // true: smooth damp, false: linear blend
	LookAtTarget     bool          `yaml:"lookAtTarget"`
	LookAtOffset     gamemath.Vec3 `yaml:"-"`
	BasePitch        float64       `yaml:"basePitch"`        // degrees, positive looks down
	ChargePitchBonus float64       `yaml:"chargePitchBonus"` // added while the subject holds a slam charge
	FieldOfView      float64       `yaml:"fieldOfView"`

	// Shake compensation so screen-space shake stays constant.
	ReferenceDistance float64 `yaml:"referenceDistance"`
	ReferenceFOV      float64 `yaml:"referenceFOV"`
	MinShakeScale     float64 `yaml:"minShakeScale"`
	MaxShakeScale     float64 `yaml:"maxShakeScale"`

	MinDistance    float64 `yaml:"-"`
	MinFollowSpeed float64 `yaml:"-"`
}

// PlayerConfig contains player body and recovery tunables.
type PlayerConfig struct {
	Width  float64 // world units
	Height float64

	GroundProbeDistance float64 // downward probe for the grounded check
	AirborneRiseSpeed   float64 // rising faster than this counts as airborne

	FallThresholdY float64
	DefaultSpawn   gamemath.Vec3

	// Stabilization applied after every bounce.
	LinearDamping  float64
	AngularDamping float64
}

// EnemyConfig contains enemy health per category.
type EnemyConfig struct {
	Health      int
	EliteHealth int
	BossHealth  int
}

// LoopConfig contains the fixed-step loop settings.
type LoopConfig struct {
	FixedStep     float64 // seconds per physics tick
	MaxFixedSteps int     // cap per Advance to avoid a spiral of death
	MaxFrameDelta float64 // clamp for host frame deltas
}

// SavePointConfig contains save point tunables.
type SavePointConfig struct {
	DestroyAfterSave bool
	RemoveDelay      float64 // seconds, scaled time
}

// Default values copied into a Manager on creation or reset.
var (
	DefaultPhysics               PhysicsConfig
	DefaultFeedback              FeedbackConfig
	DefaultSuperBounceMultiplier float64
	DefaultBossBounceMultiplier  float64
)

// Global configuration instances
var (
	Presets   FeedbackPresets
	Shake     ShakeConfig
	HitPause  HitPauseConfig
	Camera    CameraConfig
	Player    PlayerConfig
	Enemy     EnemyConfig
	Loop      LoopConfig
	SavePoint SavePointConfig
)

func init() {
	DefaultPhysics = PhysicsConfig{
		MoveForce:            20,
		SlamForce:            25,
		NormalUpSpeed:        12,
		NormalGravityScale:   1,
		EnhancedUpSpeed:      18,
		EnhancedGravityScale: 0.8,
		BaseGravity:          9.81,
		GlobalBounceStrength: 1,
	}

	DefaultFeedback = FeedbackConfig{
		HitPauseDuration: 0.10,
		ShakeDuration:    0.20,
		ShakeAmplitude:   0.30,
	}

	DefaultSuperBounceMultiplier = 1.5
	DefaultBossBounceMultiplier = 2.0

	Presets = FeedbackPresets{
		Checkpoint: FeedbackConfig{HitPauseDuration: 0.05, ShakeDuration: 0.1, ShakeAmplitude: 0.1},
		Restore:    FeedbackConfig{HitPauseDuration: 0.15, ShakeDuration: 0.3, ShakeAmplitude: 0.2},
		Fall:       FeedbackConfig{HitPauseDuration: 0.2, ShakeDuration: 0.4, ShakeAmplitude: 0.25},

		BossPauseScale:     2,
		BossShakeScale:     2,
		BossAmplitudeScale: 1.5,
	}

	Shake = ShakeConfig{
		DefaultDuration:  0.15,
		DefaultAmplitude: 0.3,
		Frequency:        30,
		DecayCurve:       "inOutSine",
		IntensityX:       2,
		IntensityY:       2,
		IntensityZ:       1,
		GlobalMultiplier: 1,
		UseNoise:         true,
		Seed:             0,
		HorizontalScale:  0, // vertical only
		ForceDownward:    true,
	}

	HitPause = HitPauseConfig{
		DefaultDuration: 0.10,
		TimeScale:       0,
	}

	Camera = CameraConfig{
		Distance:          8,
		Height:            6,
		FollowSpeed:       5,
		RotationSpeed:     10,
		SmoothMovement:    true,
		LookAtTarget:      false,
		LookAtOffset:      gamemath.Vec3{Y: 2},
		BasePitch:         15,
		ChargePitchBonus:  30,
		FieldOfView:       60,
		ReferenceDistance: 8,
		ReferenceFOV:      60,
		MinShakeScale:     0.1,
		MaxShakeScale:     10,
		MinDistance:       1,
		MinFollowSpeed:    0.1,
	}

	Player = PlayerConfig{
		Width:               1,
		Height:              1,
		GroundProbeDistance: 0.2,
		AirborneRiseSpeed:   0.1,
		FallThresholdY:      -30,
		DefaultSpawn:        gamemath.Vec3{X: 0, Y: 5, Z: 0},
		LinearDamping:       2,
		AngularDamping:      10,
	}

	Enemy = EnemyConfig{
		Health:      1,
		EliteHealth: 1,
		BossHealth:  4,
	}

	Loop = LoopConfig{
		FixedStep:     1.0 / 50.0,
		MaxFixedSteps: 8,
		MaxFrameDelta: 0.25,
	}

	SavePoint = SavePointConfig{
		DestroyAfterSave: true,
		RemoveDelay:      0.6,
	}
}
