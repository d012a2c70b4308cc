package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "kickoff.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.kickoff/configs/kickoff.yaml -> ./configs/kickoff.yaml -> embedded default
//
// Fields missing from a user file keep their default values. Only files that cannot
// be read are skipped; an invalid file stops the search with an error.
func Load(customPath string) (KickoffConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KickoffConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return KickoffConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// A file that exists but does not parse is an error, not a silent fallback.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return KickoffConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg KickoffConfig
	if err := yaml.Unmarshal(defaultKickoffYAML, &cfg); err != nil {
		return DefaultKickoffConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the built-in defaults and validates it.
func Parse(data []byte) (KickoffConfig, error) {
	cfg := DefaultKickoffConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KickoffConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return KickoffConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg KickoffConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable game.
func (c KickoffConfig) Validate() error {
	var errs []error

	if c.Ball.Diameter <= 0 {
		errs = append(errs, fmt.Errorf("ball.diameter must be positive, got %v", c.Ball.Diameter))
	}
	if c.Ball.VelocityMax.X <= 0 || c.Ball.VelocityMax.Y <= 0 {
		errs = append(errs, fmt.Errorf("ball.velocity_max must be positive, got (%v, %v)",
			c.Ball.VelocityMax.X, c.Ball.VelocityMax.Y))
	}
	if c.Ball.BounceModifier < 0 {
		errs = append(errs, fmt.Errorf("ball.bounce_modifier must not be negative, got %v", c.Ball.BounceModifier))
	}
	if c.Paddle.MinLength < 0 {
		errs = append(errs, fmt.Errorf("paddle.min_length must not be negative, got %v", c.Paddle.MinLength))
	}
	if c.Paddle.MaxLength <= c.Paddle.MinLength {
		errs = append(errs, fmt.Errorf("paddle.max_length (%v) must exceed paddle.min_length (%v)",
			c.Paddle.MaxLength, c.Paddle.MinLength))
	}
	if c.Field.CellWidth <= 0 || c.Field.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("field cell size must be positive, got %vx%v",
			c.Field.CellWidth, c.Field.CellHeight))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.CountdownSeconds < 0 {
		errs = append(errs, fmt.Errorf("gameplay.countdown_seconds must not be negative, got %d",
			c.Gameplay.CountdownSeconds))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kickoff", "configs", filename)
}
