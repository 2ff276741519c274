package minesweeper

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// ErrAlreadyStarted is returned by Start on a running or finished session.
var ErrAlreadyStarted = errors.New("minesweeper: session already started")

// Game is one play session. It wires the grid, placer, engine, input mapper
// and renderer together and is replaced wholesale on restart.
type Game struct {
	cfg    config.MinesweeperConfig
	rng    *rand.Rand
	logger *log.Logger
	onEnd  func(core.GameState)

	geom     Geometry
	grid     *Grid
	engine   *Engine
	input    *InputMapper
	renderer *Renderer

	state   core.GameState
	started bool
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the mine placement random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed seeds the mine placement random source. 0 means time based.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithEndHandler registers fn to run once when the session is lost or won.
func WithEndHandler(fn func(core.GameState)) Option {
	return func(g *Game) {
		g.onEnd = fn
	}
}

// New creates a session for cfg. Nothing is allocated until Start.
func New(cfg config.MinesweeperConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("minesweeper: %w", err)
	}

	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.geom = NewGeometry(cfg.Grid.Size, cfg.Canvas.Size, cfg.Canvas.Offset)
	return g, nil
}

// Start builds the grid, places the mines, subscribes to src and paints the
// first frame. surface and src may be nil for headless use.
func (g *Game) Start(surface core.Surface, src core.PointerSource) error {
	if g.started {
		return ErrAlreadyStarted
	}
	g.started = true

	g.grid = NewGrid(g.cfg.Grid.Size)
	placed := NewPlacer(g.grid, g.rng).Place(g.cfg.Grid.Mines)
	g.logger.Debug("mines placed", "size", g.grid.Size(), "mines", placed)

	g.renderer = NewRenderer(g.grid, g.geom, surface)
	g.engine = NewEngine(g.grid, Hooks{
		Changed: g.renderer.Render,
		Lost:    g.handleLost,
		Won:     g.handleWon,
	})
	g.input = NewInputMapper(g.geom, g.engine)
	if src != nil {
		g.input.Attach(src)
	}

	g.renderer.Render()
	return nil
}

// Stop detaches the session from its pointer source.
func (g *Game) Stop() {
	if g.input != nil {
		g.input.Detach()
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return g.state
}

// Geometry returns the pixel layout of the board.
func (g *Game) Geometry() Geometry {
	return g.geom
}

// Grid returns the board, or nil before Start.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Engine returns the rules engine, or nil before Start.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Input returns the pointer mapper, or nil before Start.
func (g *Game) Input() *InputMapper {
	return g.input
}

// Render repaints the board, e.g. after the host recreated its surface.
func (g *Game) Render() {
	if g.renderer != nil {
		g.renderer.Render()
	}
}

// SetSurface replaces the drawing target and repaints.
func (g *Game) SetSurface(s core.Surface) {
	if g.renderer == nil {
		return
	}
	g.renderer.SetSurface(s)
	g.renderer.Render()
}

func (g *Game) handleLost(x, y int) {
	g.state.GameOver = true
	g.logger.Info("mine revealed", "x", x, "y", y)
	g.engine.RevealMines()
	g.end()
}

func (g *Game) handleWon() {
	g.state.Won = true
	g.logger.Info("board cleared", "size", g.grid.Size(), "mines", g.grid.MineCount())
	g.end()
}

func (g *Game) end() {
	g.input.Detach()
	if g.onEnd != nil {
		g.onEnd(g.state)
	}
}
