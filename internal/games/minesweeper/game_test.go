package minesweeper

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

func testConfig(size, mines int) config.MinesweeperConfig {
	return config.MinesweeperConfig{
		Grid:   config.GridConfig{Size: size, Mines: mines},
		Canvas: config.CanvasConfig{Size: size * 10, Offset: 2, ScaleX: 1},
	}
}

func startGame(t *testing.T, cfg config.MinesweeperConfig, opts ...Option) (*Game, *core.PointerHub, *recorder, *[]core.GameState) {
	t.Helper()

	var ends []core.GameState
	opts = append(opts, WithRand(rand.New(rand.NewSource(1))), WithEndHandler(func(s core.GameState) {
		ends = append(ends, s)
	}))

	g, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	hub := core.NewPointerHub()
	rec := &recorder{}
	if err := g.Start(rec, hub); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return g, hub, rec, &ends
}

func click(hub *core.PointerHub, g *Game, x, y int, b core.Button) {
	c := g.Geometry().CellCenter(x, y)
	hub.Dispatch(core.NewPointerEvent(c.X, c.Y, b, nil))
}

func TestStartPaintsAndSubscribes(t *testing.T) {
	g, hub, rec, _ := startGame(t, testConfig(4, 3))

	if hub.Len() != 1 {
		t.Errorf("hub.Len() = %d, expected 1", hub.Len())
	}
	if len(rec.cmds) == 0 || rec.cmds[0] != "clear" {
		t.Error("Start() did not paint the first frame")
	}
	if got := g.Grid().MineCount(); got != 3 {
		t.Errorf("MineCount() = %d, expected 3", got)
	}
	if g.State().Ended() {
		t.Error("new session already ended")
	}
}

func TestStartTwice(t *testing.T) {
	g, _, _, _ := startGame(t, testConfig(3, 1))

	if err := g.Start(nil, nil); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, expected %v", err, ErrAlreadyStarted)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(testConfig(3, 10))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected %v", err, config.ErrInvalidConfig)
	}
}

func TestLossEndsSession(t *testing.T) {
	// Every cell is a mine.
	g, hub, _, ends := startGame(t, testConfig(3, 9))

	click(hub, g, 0, 0, core.ButtonSecondary)
	click(hub, g, 1, 1, core.ButtonPrimary)

	if len(*ends) != 1 {
		t.Fatalf("end handler calls = %d, expected 1", len(*ends))
	}
	if !(*ends)[0].GameOver || (*ends)[0].Won {
		t.Errorf("end state = %+v, expected GameOver", (*ends)[0])
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false, expected true")
	}
	if hub.Len() != 0 {
		t.Errorf("hub.Len() = %d after loss, expected 0", hub.Len())
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c := g.Grid().Get(x, y)
			flagged := x == 0 && y == 0
			if c.Revealed == flagged {
				t.Errorf("cell (%d, %d) Revealed = %v after loss", x, y, c.Revealed)
			}
		}
	}

	// Input is detached, so further clicks change nothing.
	click(hub, g, 2, 2, core.ButtonSecondary)
	if g.Grid().Get(2, 2).Flagged {
		t.Error("click after loss was handled")
	}
}

func TestWinEndsSession(t *testing.T) {
	g, hub, _, ends := startGame(t, testConfig(4, 0))

	click(hub, g, 3, 0, core.ButtonPrimary)

	if len(*ends) != 1 || !(*ends)[0].Won {
		t.Fatalf("end handler calls = %v, expected one win", *ends)
	}
	if !g.State().Won || g.State().GameOver {
		t.Errorf("State() = %+v, expected Won", g.State())
	}
	if hub.Len() != 0 {
		t.Errorf("hub.Len() = %d after win, expected 0", hub.Len())
	}
}

func TestRepaintOnAction(t *testing.T) {
	g, hub, rec, _ := startGame(t, testConfig(3, 1))
	rec.reset()

	// Flag the only mine so the click cannot end the session.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if g.Grid().Get(x, y).HasMine {
				click(hub, g, x, y, core.ButtonSecondary)
			}
		}
	}

	if rec.count("clear") != 1 {
		t.Errorf("repaints after flag = %d, expected 1", rec.count("clear"))
	}
	if rec.count(`text "⚑"`) != 1 {
		t.Errorf("flag glyphs = %d, expected 1", rec.count(`text "⚑"`))
	}
}

func TestStop(t *testing.T) {
	g, hub, _, _ := startGame(t, testConfig(3, 0))
	g.Stop()
	g.Stop()

	if hub.Len() != 0 {
		t.Errorf("hub.Len() = %d after Stop, expected 0", hub.Len())
	}
	click(hub, g, 0, 0, core.ButtonPrimary)
	if g.Grid().Get(0, 0).Revealed {
		t.Error("click after Stop was handled")
	}
}

func TestSeededSessionsMatch(t *testing.T) {
	cfg := testConfig(8, 12)
	a, _ := New(cfg, WithSeed(2024))
	b, _ := New(cfg, WithSeed(2024))
	if err := a.Start(nil, nil); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := b.Start(nil, nil); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if a.Grid().Get(x, y) != b.Grid().Get(x, y) {
				t.Fatalf("cell (%d, %d) differs between sessions with equal seeds", x, y)
			}
		}
	}
}

func TestHeadlessStart(t *testing.T) {
	g, err := New(testConfig(3, 0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := g.Start(nil, nil); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if g.Input().Attached() {
		t.Error("Attached() = true without a pointer source")
	}

	g.Engine().Reveal(1, 1)
	if !g.State().Won {
		t.Error("revealing an empty board should win")
	}
}
