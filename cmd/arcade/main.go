// arcade runs the pixel-grid arcade (Tetris, Snake and a menu over them) in
// the terminal or in an LED matrix emulator window.
//
// Usage:
//
//	arcade list               - List available games
//	arcade play [game|menu]   - Play a game, or the menu over all configured games
//	arcade replays            - Browse recorded sessions
//	arcade replay <id>        - Play back a recorded session
//	arcade config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--seed <value>       - RNG seed for reproducible gameplay
//	--db <path>          - Replay database path
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--debug              - Keep a debug log and show it on exit
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/matrix-arcade/internal/games/snake"
	_ "github.com/vovakirdan/matrix-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Matrix Arcade - tiny games for a monochrome pixel grid",
	Long: `Matrix Arcade runs Tetris and Snake on a monochrome pixel grid, the
same 16x42 grid an LED matrix panel shows. Play in the terminal or in
an LED emulator window.

Available commands:
  list     - Show all available games
  play     - Play a game or the game menu
  replays  - Browse recorded sessions
  replay   - Play back a recorded session
  config   - Print the effective configuration

Examples:
  arcade list
  arcade play
  arcade play tetris --record
  arcade play snake --difficulty hard --rows 42 --cols 16
  arcade replay 3 --headless`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to replay database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Keep a debug log and print it on exit")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
