// minesweeper is a terminal Minesweeper board.
//
// Usage:
//
//	minesweeper              - Play in the terminal (same as "play")
//	minesweeper play         - Play in the terminal
//	minesweeper board        - Print a freshly seeded board and exit
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--config <path> - Use a custom minesweeper config YAML
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper played with the mouse or the keyboard in a terminal.

Available commands:
  play     - Play a board (default)
  board    - Print a board to stdout

Examples:
  minesweeper
  minesweeper play --seed 42
  minesweeper board --seed 42 --show-mines
  minesweeper play --config ./my-minesweeper.yaml --log ./minesweeper.log`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default: no logging)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
}
