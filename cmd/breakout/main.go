// breakout is a block-breaking arcade game for the terminal.
//
// Usage:
//
//	breakout                 - Start the game at the main menu
//	breakout serve           - Host games over SSH
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>            - Override the tick rate (default: from config, 30)
//	--config <path>         - Custom game config YAML
//	--difficulty <preset>   - easy, normal or hard
//	--log-file <path>       - Write logs to a file (discarded by default)
//	--debug                 - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break every brick without losing the ball",
	Long: `Breakout is a terminal version of the classic block-breaking game.

Move the mouse to steer the paddle and keep the ball from touching the
floor. Break all 160 bricks to win the round.

Controls:
  Mouse          - Move the paddle, click menu buttons
  Enter/Space    - Start game
  I              - Instructions
  Left/Right     - Nudge the paddle
  Esc/B          - Back to the menu
  Q/Ctrl+C       - Quit

Examples:
  breakout
  breakout --difficulty easy
  breakout --config ./my-breakout.yaml --log-file breakout.log --debug
  breakout serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
