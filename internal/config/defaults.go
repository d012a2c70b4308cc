package config

import (
	_ "embed"
)

//go:embed defaults/kickoff.yaml
var defaultKickoffYAML []byte

// DefaultKickoffConfig returns the built-in configuration.
// It mirrors defaults/kickoff.yaml and is used when the embedded file fails to parse.
func DefaultKickoffConfig() KickoffConfig {
	return KickoffConfig{
		Ball: BallConfig{
			Diameter:       100,
			Gravity:        0.3,
			VelocityMax:    VectorValue{X: 30, Y: 60},
			BounceModifier: 0.8,
		},
		Paddle: PaddleConfig{
			MinLength: 30,
			MaxLength: 300,
		},
		Field: FieldConfig{
			CellWidth:   20,
			CellHeight:  40,
			RulerOffset: 200,
			FieldHeight: 355,
		},
		Gameplay: GameplayConfig{
			Lives:            3,
			CountdownSeconds: 3,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultKickoffYAML
}
