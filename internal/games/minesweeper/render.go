package minesweeper

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// Board palette.
const (
	gridLineColor = core.ColorDarkGray
	hiddenColor   = core.ColorGray
	flagColor     = core.ColorRed
	mineColor     = core.ColorBrightRed

	flagGlyph = "⚑"
)

// Renderer repaints the whole board on every call.
type Renderer struct {
	grid    *Grid
	geom    Geometry
	surface core.Surface
}

// NewRenderer creates a renderer. surface may be nil, which disables drawing.
func NewRenderer(g *Grid, geom Geometry, surface core.Surface) *Renderer {
	return &Renderer{grid: g, geom: geom, surface: surface}
}

// SetSurface swaps the drawing target. nil disables drawing.
func (r *Renderer) SetSurface(s core.Surface) {
	r.surface = s
}

// Render clears the surface and draws grid lines and every cell.
func (r *Renderer) Render() {
	s := r.surface
	if s == nil {
		return
	}

	s.Clear()
	r.renderLines(s)

	s.SetFont(r.font())
	n := r.grid.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			r.renderCell(s, x, y)
		}
	}
}

// renderLines draws N+1 vertical and N+1 horizontal lines.
func (r *Renderer) renderLines(s core.Surface) {
	off := r.geom.OffsetPx
	end := off + r.geom.Extent()

	s.SetStroke(gridLineColor, 1)
	for i := 0; i <= r.geom.Size; i++ {
		p := off + i*r.geom.CellPx
		s.StrokeLine(p, off, p, end)
	}
	for i := 0; i <= r.geom.Size; i++ {
		p := off + i*r.geom.CellPx
		s.StrokeLine(off, p, end, p)
	}
}

func (r *Renderer) renderCell(s core.Surface, x, y int) {
	c := r.grid.Get(x, y)
	rect := r.geom.CellRect(x, y)
	center := rect.Center()

	switch {
	case !c.Revealed:
		// Inside the grid lines
		s.SetFill(hiddenColor)
		s.FillRect(rect.X+1, rect.Y+1, rect.W-1, rect.H-1)
		if c.Flagged {
			s.SetFill(flagColor)
			s.FillTextCentered(flagGlyph, center.X, center.Y)
		}
	case c.HasMine:
		s.SetFill(mineColor)
		s.Circle(center.X, center.Y, r.geom.CellPx/3, true)
	case c.Adjacent > 0:
		s.SetFill(CountColor(c.Adjacent))
		s.FillTextCentered(strconv.Itoa(c.Adjacent), center.X, center.Y)
	}
}

func (r *Renderer) font() string {
	return fmt.Sprintf("bold %dpx sans-serif", core.Max(r.geom.CellPx*2/3, 1))
}

// CountColor returns the numeral color for an adjacency count.
func CountColor(n int) core.Color {
	switch {
	case n <= 1:
		return core.ColorGreen
	case n == 2:
		return core.ColorBlue
	case n == 3:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}
