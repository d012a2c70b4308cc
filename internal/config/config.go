// Package config provides YAML-based game configuration loading and
// difficulty presets for Space Kickoff.
package config

// KickoffConfig contains all tunable parameters of the game.
// Lengths and speeds are in canvas units; one terminal cell spans
// Field.CellWidth x Field.CellHeight units.
type KickoffConfig struct {
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Field    FieldConfig    `yaml:"field"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
}

// BallConfig defines the ball body and its physics.
type BallConfig struct {
	Diameter       float64     `yaml:"diameter"`
	Gravity        float64     `yaml:"gravity"`         // Added to vertical velocity every tick
	VelocityMax    VectorValue `yaml:"velocity_max"`    // Terminal velocity per axis
	BounceModifier float64     `yaml:"bounce_modifier"` // Damping on wall and paddle bounces
}

// VectorValue is a plain 2D value for YAML.
type VectorValue struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PaddleConfig defines the player-drawn paddle.
type PaddleConfig struct {
	MinLength float64 `yaml:"min_length"` // Drags at or below this are discarded
	MaxLength float64 `yaml:"max_length"` // Longer paddles are clamped
}

// FieldConfig maps the canvas onto the terminal.
type FieldConfig struct {
	CellWidth   float64 `yaml:"cell_width"`
	CellHeight  float64 `yaml:"cell_height"`
	RulerOffset float64 `yaml:"ruler_offset"` // Distance of the 0 m mark above the canvas bottom
	FieldHeight float64 `yaml:"field_height"` // Height of the pitch drawn under the ruler
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives            int `yaml:"lives"`
	CountdownSeconds int `yaml:"countdown_seconds"`
}

// AudioConfig defines the cue player.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}
