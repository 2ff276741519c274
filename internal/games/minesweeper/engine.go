package minesweeper

// Hooks are the engine's observable side effects. Nil hooks are skipped.
type Hooks struct {
	// Changed runs after every mutation so the host can repaint.
	Changed func()
	// Lost runs once, the first time a mine is revealed.
	Lost func(x, y int)
	// Won runs once, when every safe cell is revealed without a prior loss.
	Won func()
}

// Engine applies reveal and flag actions to a grid.
// Coordinates must already be in bounds; InputMapper is the gate for that.
type Engine struct {
	grid  *Grid
	hooks Hooks

	safeTotal    int
	revealedSafe int
	lost         bool
	won          bool
}

// NewEngine creates an engine over a grid whose mines are already placed.
func NewEngine(g *Grid, hooks Hooks) *Engine {
	return &Engine{
		grid:         g,
		hooks:        hooks,
		safeTotal:    g.Size()*g.Size() - g.MineCount(),
		revealedSafe: g.RevealedSafe(),
	}
}

// Lost reports whether a mine has been revealed.
func (e *Engine) Lost() bool {
	return e.lost
}

// Won reports whether every safe cell has been revealed.
func (e *Engine) Won() bool {
	return e.won
}

// Reveal uncovers (x, y). Flagged and already revealed cells are left alone.
// A zero cell floods outward through connected zero cells; numbered cells at
// the border of the flood are revealed but not expanded, and mines and flagged
// cells are never uncovered by the flood.
func (e *Engine) Reveal(x, y int) {
	c := e.grid.At(x, y)
	if c.Flagged || c.Revealed {
		return
	}
	c.Revealed = true

	if c.HasMine {
		e.changed()
		if !e.lost {
			e.lost = true
			if e.hooks.Lost != nil {
				e.hooks.Lost(x, y)
			}
		}
		return
	}

	e.revealedSafe++
	if c.Adjacent == 0 {
		e.flood(x, y)
	}
	e.changed()
	e.checkWon()
}

// flood reveals breadth-first from a zero cell.
func (e *Engine) flood(x, y int) {
	queue := []Coord{{X: x, Y: y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		e.grid.Neighbors(p.X, p.Y, func(nx, ny int) {
			n := e.grid.At(nx, ny)
			if n.Revealed || n.Flagged || n.HasMine {
				return
			}
			n.Revealed = true
			e.revealedSafe++
			if n.Adjacent == 0 {
				queue = append(queue, Coord{X: nx, Y: ny})
			}
		})
	}
}

// Flag marks (x, y) as flagged. Revealed cells are left alone.
// Flagging is a set, not a toggle: flagging twice keeps the flag.
func (e *Engine) Flag(x, y int) {
	c := e.grid.At(x, y)
	if c.Revealed || c.Flagged {
		return
	}
	c.Flagged = true
	e.changed()
}

// RevealMines uncovers every unflagged mine. Used to show the board after a loss.
func (e *Engine) RevealMines() {
	changed := false
	n := e.grid.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := e.grid.At(x, y)
			if c.HasMine && !c.Flagged && !c.Revealed {
				c.Revealed = true
				changed = true
			}
		}
	}
	if changed {
		e.changed()
	}
}

func (e *Engine) checkWon() {
	if e.won || e.lost || e.revealedSafe < e.safeTotal {
		return
	}
	e.won = true
	if e.hooks.Won != nil {
		e.hooks.Won()
	}
}

func (e *Engine) changed() {
	if e.hooks.Changed != nil {
		e.hooks.Changed()
	}
}
