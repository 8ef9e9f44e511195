package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk shape of a tuning file. Fields missing from the file
// keep their default values.
type Tuning struct {
	Physics               PhysicsConfig  `yaml:"physics"`
	Feedback              FeedbackConfig `yaml:"feedback"`
	SuperBounceMultiplier float64        `yaml:"superBounceMultiplier"`
	BossBounceMultiplier  float64        `yaml:"bossBounceMultiplier"`
	Shake                 ShakeConfig    `yaml:"shake"`
	HitPause              HitPauseConfig `yaml:"hitPause"`
	Camera                CameraConfig   `yaml:"camera"`
}

// DefaultTuning returns the built-in values.
func DefaultTuning() Tuning {
	return Tuning{
		Physics:               DefaultPhysics,
		Feedback:              DefaultFeedback,
		SuperBounceMultiplier: DefaultSuperBounceMultiplier,
		BossBounceMultiplier:  DefaultBossBounceMultiplier,
		Shake:                 Shake,
		HitPause:              HitPause,
		Camera:                Camera,
	}
}

// ParseTuning decodes YAML over the defaults and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads and parses a tuning file from fsys.
func LoadTuning(fsys fs.FS, path string) (Tuning, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	if err := t.Physics.Validate(); err != nil {
		return err
	}
	if err := t.Feedback.Validate(); err != nil {
		return err
	}
	if t.Shake.Frequency < 0 || t.Shake.GlobalMultiplier < 0 || t.Shake.HorizontalScale < 0 {
		return fmt.Errorf("shake: %w", ErrNegativeMagnitude)
	}
	if t.HitPause.DefaultDuration < 0 || t.HitPause.TimeScale < 0 {
		return fmt.Errorf("hitPause: %w", ErrNegativeMagnitude)
	}
	return nil
}

// ApplyTuning installs the physics and feedback values of t, re-applying
// world gravity, and updates the multipliers.
func (m *Manager) ApplyTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := m.SetFeedback(t.Feedback); err != nil {
		return err
	}
	m.SetSuperBounceMultiplier(t.SuperBounceMultiplier)
	m.SetBossBounceMultiplier(t.BossBounceMultiplier)
	return m.SetPhysics(t.Physics)
}
