// dinorun is a side-scrolling runner: jump over the obstacles, survive, and
// chase a place in the top five.
//
// Usage:
//
//	dinorun play          - Run in the terminal
//	dinorun menu          - Pick a difficulty, play, repeat
//	dinorun window        - Run in a desktop window
//	dinorun serve         - Start SSH server for remote play
//	dinorun scores        - Show the high-score list
//	dinorun variants      - List obstacle variants
//	dinorun config        - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Override the configured tick rate
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--store <backend>     - Score backend: file, sqlite, gdata (default: file)
//	--scores <path>       - Score file, database or app name
//	--config <path>       - Custom dino.yaml
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn, error
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
	flagStore      string
	flagScores     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinorun",
	Short: "Dino Runner - jump the obstacles, keep the streak",
	Long: `Dino Runner is an endless runner. Obstacles scroll in from the right;
jump over them or descend quickly to dodge. Each obstacle cleared is a point,
and the best five runs are kept.

Available commands:
  play      - Play in the terminal
  menu      - Difficulty picker and scoreboard
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View high scores
  variants  - List obstacle variants
  config    - Print the default configuration

Examples:
  dinorun play
  dinorun play --difficulty hard --seed 42
  dinorun window
  dinorun menu --store sqlite
  dinorun serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = world.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "file", "Score backend: file, sqlite, gdata")
	rootCmd.PersistentFlags().StringVar(&flagScores, "scores", "", "Score location (default depends on --store)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dino.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(configCmd)
}
