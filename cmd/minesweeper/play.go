package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start a Minesweeper board in the terminal.

Controls:
  Left click / Space / Enter  - Reveal cell
  Right click / F             - Flag cell
  Arrows / HJKL               - Move cursor
  R                           - New board
  Ctrl+S                      - Save screenshot
  ?                           - Toggle help
  Q/Ctrl+C                    - Quit

Examples:
  minesweeper play
  minesweeper play --seed 42
  minesweeper play --config ./my-minesweeper.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	needW, needH := tui.RequiredSize(cfg)
	if rt.ScreenW < needW || rt.ScreenH < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", rt.ScreenW, rt.ScreenH, needW, needH)
	}
	logger.Info("starting", "size", cfg.Grid.Size, "mines", cfg.Grid.Mines, "seed", flagSeed)

	if err := tui.Run(cfg, rt, logger); err != nil {
		logger.Error("program exited", "error", err)
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}
