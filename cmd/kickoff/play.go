package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-kickoff/internal/audio"
	"github.com/vovakirdan/space-kickoff/internal/config"
	"github.com/vovakirdan/space-kickoff/internal/core"
	"github.com/vovakirdan/space-kickoff/internal/games/kickoff"
	"github.com/vovakirdan/space-kickoff/internal/platform/tui"
)

var (
	flagMute  bool
	flagDebug bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Space Kickoff",
	Long: `Start the game.

Controls:
  Mouse drag   - Draw a paddle (release to place it)
  Enter/Space  - Start
  P/Esc        - Pause
  R            - Restart
  D            - Toggle debug overlay
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, lighter gravity, longer paddles
  normal - Values from the config file
  hard   - 2 lives, heavier gravity, shorter paddles

Examples:
  kickoff play
  kickoff play --difficulty easy
  kickoff play --config ./my-kickoff.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the collision overlay on")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sound, closeAudio := audio.Open(cfg.Audio, logger)
	defer closeAudio()

	game := kickoff.New(cfg, sound, logger)
	game.SetDebug(flagDebug)

	logger.Info("starting", "w", width, "h", height, "fps", flagFPS,
		"difficulty", flagDifficulty, "audio", cfg.Audio.Enabled)

	if err := tui.Run(game, rt, logger); err != nil {
		logger.Error("game loop failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadConfig reads the configuration and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.KickoffConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.KickoffConfig{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.KickoffConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.KickoffConfig{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}
