// kickoff is Space Kickoff: keep a falling ball airborne by drawing paddles under
// it with the mouse, and climb as high as you can.
//
// Usage:
//
//	kickoff                  - Play (same as "kickoff play")
//	kickoff play             - Play
//	kickoff config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set seed for the background decoration
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--log-file <path>    - Log destination (default: ~/.kickoff/kickoff.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kickoff",
	Short: "Space Kickoff - keep the ball in the air",
	Long: `Space Kickoff is a terminal game. A ball falls from the sky; drag with the
left mouse button to draw a paddle under it and bounce it higher. Each paddle
breaks after one hit. Miss the ball three times and the game is over.

Available commands:
  play     - Start the game (default)
  config   - Print the effective configuration

Examples:
  kickoff
  kickoff play --difficulty hard
  kickoff --mute --debug
  kickoff config --config ./my-kickoff.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Background seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.kickoff/kickoff.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// The root command plays too, so it takes the play flags.
	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
