package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
)

// Rows below the board: status line and help line.
const footerRows = 2

const cursorColor = core.ColorYellow

// Model is the Bubble Tea model hosting one minesweeper board.
// Mouse presses and keyboard actions both reach the game as pointer
// events dispatched through the hub.
type Model struct {
	cfg    config.MinesweeperConfig
	logger *log.Logger

	game   *minesweeper.Game
	seed   int64
	hub    *core.PointerHub
	screen *core.Screen
	canvas *core.Canvas

	keys   KeyMap
	help   help.Model
	cursor core.Point
	width  int
	height int

	quitting bool
}

// NewModel creates the model and starts the first session.
// rt.Seed of 0 picks a time based seed.
func NewModel(cfg config.MinesweeperConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	side := minesweeper.NewGeometry(cfg.Grid.Size, cfg.Canvas.Size, cfg.Canvas.Offset).SurfacePx()
	scale := core.Max(cfg.Canvas.ScaleX, 1)
	screen := core.NewScreen(side*scale, side)

	m := Model{
		cfg:    cfg,
		logger: logger,
		hub:    core.NewPointerHub(),
		screen: screen,
		canvas: core.NewCanvas(screen, core.Point{}, side, side, scale),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  rt.ScreenW,
		height: rt.ScreenH,
	}
	if err := m.startGame(rt.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// RequiredSize returns the terminal size needed to show the board,
// the status line and the help line.
func RequiredSize(cfg config.MinesweeperConfig) (width, height int) {
	side := minesweeper.NewGeometry(cfg.Grid.Size, cfg.Canvas.Size, cfg.Canvas.Offset).SurfacePx()
	return side * core.Max(cfg.Canvas.ScaleX, 1), side + footerRows
}

// startGame replaces the current session with a fresh one.
func (m *Model) startGame(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if m.game != nil {
		m.game.Stop()
	}

	logger := m.logger
	g, err := minesweeper.New(m.cfg,
		minesweeper.WithSeed(seed),
		minesweeper.WithLogger(logger),
		minesweeper.WithEndHandler(func(s core.GameState) {
			logger.Info("session ended", "won", s.Won, "seed", seed)
		}),
	)
	if err != nil {
		return err
	}
	if err := g.Start(m.canvas, m.hub); err != nil {
		return err
	}

	m.game = g
	m.seed = seed
	m.cursor = core.Point{X: m.cfg.Grid.Size / 2, Y: m.cfg.Grid.Size / 2}
	logger.Debug("session started", "seed", seed)
	return nil
}

// Init implements tea.Model. The board is event driven, so no tick is needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Restart):
		if err := m.startGame(0); err != nil {
			m.logger.Error("restart failed", "error", err)
		}
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Reveal):
		m.pressCursor(core.ButtonPrimary)
	case key.Matches(msg, m.keys.Flag):
		m.pressCursor(core.ButtonSecondary)
	}

	return m, nil
}

// handleMouse converts a terminal mouse press to a pointer event.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	var b core.Button
	switch msg.Button {
	case tea.MouseButtonLeft:
		b = core.ButtonPrimary
	case tea.MouseButtonRight:
		b = core.ButtonSecondary
	default:
		return m, nil
	}

	p := m.canvas.ToPixel(msg.X, msg.Y)
	if x, y, ok := m.game.Input().ToCell(p.X, p.Y); ok {
		m.cursor = core.Point{X: x, Y: y}
	}
	// Terminals have no context menu to suppress.
	m.hub.Dispatch(core.NewPointerEvent(p.X, p.Y, b, nil))
	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	last := m.cfg.Grid.Size - 1
	m.cursor.X = core.Clamp(m.cursor.X+dx, 0, last)
	m.cursor.Y = core.Clamp(m.cursor.Y+dy, 0, last)
}

// pressCursor clicks the center of the cell under the cursor.
func (m *Model) pressCursor(b core.Button) {
	c := m.game.Geometry().CellCenter(m.cursor.X, m.cursor.Y)
	m.hub.Dispatch(core.NewPointerEvent(c.X, c.Y, b, nil))
}

// saveScreenshot saves the board as plain text under ~/.minesweeper/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	dir := filepath.Join(home, ".minesweeper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	m.game.Render()
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("minesweeper_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := RequiredSize(m.cfg)
	if m.width > 0 && m.height > 0 && (m.width < needW || m.height < needH) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press q to quit.",
			needW, needH, m.width, m.height)
	}

	// Full repaint, then overlay the cursor.
	m.game.Render()
	m.drawCursor()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// drawCursor outlines the cell under the cursor with heavy lines.
func (m Model) drawCursor() {
	if m.game.State().Ended() {
		return
	}
	r := m.game.Geometry().CellRect(m.cursor.X, m.cursor.Y)

	m.canvas.SetStroke(cursorColor, 2)
	m.canvas.StrokeLine(r.X, r.Y, r.Right(), r.Y)
	m.canvas.StrokeLine(r.X, r.Bottom(), r.Right(), r.Bottom())
	m.canvas.StrokeLine(r.X, r.Y, r.X, r.Bottom())
	m.canvas.StrokeLine(r.Right(), r.Y, r.Right(), r.Bottom())
}

func (m Model) statusLine() string {
	state := m.game.State()
	switch {
	case state.Won:
		return wonStyle.Render("Board cleared!") + statusStyle.Render("  r: new board")
	case state.GameOver:
		return lostStyle.Render("Boom! You hit a mine.") + statusStyle.Render("  r: new board")
	}

	grid := m.game.Grid()
	return statusStyle.Render(fmt.Sprintf("mines %d  flags %d  seed %d",
		grid.MineCount(), grid.FlagCount(), m.seed))
}

// Run starts the Bubble Tea program for one board.
func Run(cfg config.MinesweeperConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses drive the board
	)

	_, err = p.Run()
	return err
}
