package minesweeper

import "testing"

type hookCounter struct {
	changed int
	lost    int
	won     int
	lostAt  Coord
}

func (h *hookCounter) hooks() Hooks {
	return Hooks{
		Changed: func() { h.changed++ },
		Lost: func(x, y int) {
			h.lost++
			h.lostAt = Coord{X: x, Y: y}
		},
		Won: func() { h.won++ },
	}
}

func TestFlagIsSetOnly(t *testing.T) {
	g := gridWithMines(3, Coord{X: 2, Y: 2})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Flag(0, 0)
	e.Flag(0, 0)

	if !g.Get(0, 0).Flagged {
		t.Error("Flag() twice should leave the cell flagged")
	}
	if h.changed != 1 {
		t.Errorf("Changed calls = %d, expected 1", h.changed)
	}
}

func TestFlagOnRevealedIsNoop(t *testing.T) {
	g := gridWithMines(3, Coord{X: 2, Y: 2})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Reveal(1, 1)
	before := h.changed
	e.Flag(1, 1)

	c := g.Get(1, 1)
	if c.Flagged {
		t.Error("Flag() on revealed cell set Flagged")
	}
	if !c.Revealed {
		t.Error("Flag() on revealed cell cleared Revealed")
	}
	if h.changed != before {
		t.Errorf("Changed calls = %d, expected %d", h.changed, before)
	}
}

func TestRevealOnFlaggedIsNoop(t *testing.T) {
	g := gridWithMines(3, Coord{X: 1, Y: 1})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Flag(1, 1)
	e.Reveal(1, 1)

	c := g.Get(1, 1)
	if c.Revealed {
		t.Error("Reveal() on flagged cell set Revealed")
	}
	if h.lost != 0 {
		t.Errorf("Lost calls = %d, expected 0", h.lost)
	}
	if e.Lost() {
		t.Error("Lost() = true, expected false")
	}
}

func TestRevealNumberedCellDoesNotFlood(t *testing.T) {
	g := gridWithMines(3, Coord{X: 1, Y: 1})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Reveal(0, 0)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := x == 0 && y == 0
			if got := g.Get(x, y).Revealed; got != want {
				t.Errorf("cell (%d, %d) Revealed = %v, expected %v", x, y, got, want)
			}
		}
	}
	if h.changed != 1 {
		t.Errorf("Changed calls = %d, expected 1", h.changed)
	}
}

func TestRevealCascadeCornerMines(t *testing.T) {
	g := gridWithMines(5, Coord{X: 0, Y: 0}, Coord{X: 4, Y: 4})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Reveal(2, 2)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := g.Get(x, y)
			if c.HasMine && c.Revealed {
				t.Errorf("mine (%d, %d) was revealed by the cascade", x, y)
			}
			if !c.HasMine && !c.Revealed {
				t.Errorf("safe cell (%d, %d) was not revealed", x, y)
			}
		}
	}
	if h.changed != 1 {
		t.Errorf("Changed calls = %d, expected 1", h.changed)
	}
	if h.won != 1 || !e.Won() {
		t.Errorf("Won calls = %d, Won() = %v, expected 1 and true", h.won, e.Won())
	}
}

func TestCascadeStopsAtNumbersAndFlags(t *testing.T) {
	// Column of mines at x=2 splits the board.
	g := gridWithMines(5, Coord{X: 2, Y: 0}, Coord{X: 2, Y: 1}, Coord{X: 2, Y: 2}, Coord{X: 2, Y: 3}, Coord{X: 2, Y: 4})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Flag(0, 4)
	e.Reveal(0, 0)

	tests := []struct {
		x, y     int
		revealed bool
	}{
		{0, 0, true},
		{0, 3, true},
		{1, 2, true},  // numbered border
		{0, 4, false}, // flagged
		{2, 2, false}, // mine
		{3, 0, false}, // other side
		{4, 4, false},
	}
	for _, tc := range tests {
		if got := g.Get(tc.x, tc.y).Revealed; got != tc.revealed {
			t.Errorf("cell (%d, %d) Revealed = %v, expected %v", tc.x, tc.y, got, tc.revealed)
		}
	}
	if e.Won() {
		t.Error("Won() = true with hidden safe cells")
	}
}

func TestLossFiresOnce(t *testing.T) {
	g := gridWithMines(3, Coord{X: 0, Y: 0}, Coord{X: 2, Y: 2})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Reveal(0, 0)
	e.Reveal(2, 2)
	e.Reveal(0, 0)

	if h.lost != 1 {
		t.Errorf("Lost calls = %d, expected 1", h.lost)
	}
	if h.lostAt != (Coord{X: 0, Y: 0}) {
		t.Errorf("Lost at = %v, expected (0, 0)", h.lostAt)
	}
	if !g.Get(0, 0).Revealed {
		t.Error("revealed mine should be marked Revealed")
	}
	if h.changed != 2 {
		t.Errorf("Changed calls = %d, expected 2", h.changed)
	}
}

func TestNoWinAfterLoss(t *testing.T) {
	g := gridWithMines(2, Coord{X: 0, Y: 0})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Reveal(0, 0)
	e.Reveal(1, 0)
	e.Reveal(0, 1)
	e.Reveal(1, 1)

	if h.won != 0 {
		t.Errorf("Won calls = %d, expected 0 after a loss", h.won)
	}
}

func TestWinFiresOnce(t *testing.T) {
	g := gridWithMines(2, Coord{X: 0, Y: 0})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Reveal(1, 0)
	e.Reveal(0, 1)
	if h.won != 0 {
		t.Fatalf("Won calls = %d before the last safe cell", h.won)
	}
	e.Reveal(1, 1)
	e.Reveal(1, 1)

	if h.won != 1 {
		t.Errorf("Won calls = %d, expected 1", h.won)
	}
}

func TestRevealMinesSkipsFlagged(t *testing.T) {
	g := gridWithMines(3, Coord{X: 0, Y: 0}, Coord{X: 2, Y: 2})
	var h hookCounter
	e := NewEngine(g, h.hooks())

	e.Flag(2, 2)
	e.RevealMines()

	if !g.Get(0, 0).Revealed {
		t.Error("unflagged mine should be revealed")
	}
	if g.Get(2, 2).Revealed {
		t.Error("flagged mine should stay hidden")
	}
	if g.Get(1, 1).Revealed {
		t.Error("safe cell should stay hidden")
	}
	if h.lost != 0 {
		t.Errorf("Lost calls = %d, expected 0", h.lost)
	}

	before := h.changed
	e.RevealMines()
	if h.changed != before {
		t.Error("RevealMines() with nothing left to reveal should not repaint")
	}
}

func TestEngineNilHooks(t *testing.T) {
	g := gridWithMines(2, Coord{X: 0, Y: 0})
	e := NewEngine(g, Hooks{})

	e.Flag(1, 1)
	e.Reveal(1, 0)
	e.Reveal(0, 0)

	if !e.Lost() {
		t.Error("Lost() = false, expected true")
	}
}
