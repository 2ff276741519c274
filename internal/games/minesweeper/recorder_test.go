package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// recorder is a core.Surface that logs every drawing command.
type recorder struct {
	cmds []string
}

func (r *recorder) Clear() { r.cmds = append(r.cmds, "clear") }

func (r *recorder) SetStroke(c core.Color, width int) {
	r.cmds = append(r.cmds, fmt.Sprintf("stroke %s %d", c, width))
}

func (r *recorder) StrokeLine(x0, y0, x1, y1 int) {
	r.cmds = append(r.cmds, fmt.Sprintf("line %d,%d-%d,%d", x0, y0, x1, y1))
}

func (r *recorder) SetFill(c core.Color) { r.cmds = append(r.cmds, "fill "+c.String()) }

func (r *recorder) FillRect(x, y, w, h int) {
	r.cmds = append(r.cmds, fmt.Sprintf("rect %d,%d %dx%d", x, y, w, h))
}

func (r *recorder) Circle(cx, cy, radius int, filled bool) {
	r.cmds = append(r.cmds, fmt.Sprintf("circle %d,%d r%d filled=%v", cx, cy, radius, filled))
}

func (r *recorder) SetFont(font string) { r.cmds = append(r.cmds, "font "+font) }

func (r *recorder) FillTextCentered(text string, cx, cy int) {
	r.cmds = append(r.cmds, fmt.Sprintf("text %q %d,%d", text, cx, cy))
}

func (r *recorder) reset() { r.cmds = nil }

// count returns how many recorded commands start with prefix.
func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.cmds {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// gridWithMines builds an n*n grid with mines at the given coordinates.
func gridWithMines(n int, mines ...Coord) *Grid {
	g := NewGrid(n)
	p := NewPlacer(g, nil)
	for _, m := range mines {
		p.PlaceAt(m.X, m.Y)
	}
	return g
}

// bruteAdjacent counts mine neighbours of (x, y) directly.
func bruteAdjacent(g *Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy).HasMine {
				count++
			}
		}
	}
	return count
}
