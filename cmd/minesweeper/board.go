package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
)

var flagShowMines bool

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a board to stdout",
	Long: `Place mines on a fresh board and print it without starting the
interactive view. Colors are used when stdout is a terminal.

Examples:
  minesweeper board --seed 42
  minesweeper board --seed 42 --show-mines`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().BoolVar(&flagShowMines, "show-mines", false, "Reveal every mine before printing")
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	color := term.IsTerminal(int(os.Stdout.Fd()))
	return printBoard(cmd.OutOrStdout(), cfg, flagSeed, flagShowMines, color, minesweeper.WithLogger(logger))
}

// printBoard paints one seeded board onto a screen and writes it to w.
func printBoard(w io.Writer, cfg config.MinesweeperConfig, seed int64, showMines, color bool, opts ...minesweeper.Option) error {
	opts = append(opts, minesweeper.WithSeed(seed))
	game, err := minesweeper.New(cfg, opts...)
	if err != nil {
		return err
	}

	side := game.Geometry().SurfacePx()
	scale := core.Max(cfg.Canvas.ScaleX, 1)
	screen := core.NewScreen(side*scale, side)
	canvas := core.NewCanvas(screen, core.Point{}, side, side, scale)

	if err := game.Start(canvas, nil); err != nil {
		return err
	}
	if showMines {
		game.Engine().RevealMines()
	}

	out := screen.String()
	if color {
		out = tui.RenderScreen(screen)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
