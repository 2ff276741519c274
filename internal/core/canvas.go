package core

import "strings"

// Canvas rasterizes Surface drawing commands into a region of a Screen.
// One surface pixel covers ScaleX adjacent columns of a single row, which
// compensates for terminal cells being roughly twice as tall as wide.
type Canvas struct {
	screen *Screen
	origin Point // Screen position of pixel (0, 0)
	width  int   // Width in pixels
	height int   // Height in pixels
	scaleX int

	stroke      Color
	strokeWidth int
	fill        Color
	font        string
}

// NewCanvas creates a width*height pixel canvas drawn at origin on screen.
// scaleX values below 1 are treated as 1.
func NewCanvas(screen *Screen, origin Point, width, height, scaleX int) *Canvas {
	if scaleX < 1 {
		scaleX = 1
	}
	return &Canvas{
		screen:      screen,
		origin:      origin,
		width:       width,
		height:      height,
		scaleX:      scaleX,
		stroke:      ColorDefault,
		strokeWidth: 1,
		fill:        ColorDefault,
	}
}

// Bounds returns the canvas area in screen characters.
func (c *Canvas) Bounds() Rect {
	return NewRect(c.origin.X, c.origin.Y, c.width*c.scaleX, c.height)
}

// Font returns the font set by the last SetFont call.
func (c *Canvas) Font() string {
	return c.font
}

// ToPixel converts a screen position to canvas pixel coordinates.
// Positions left of or above the canvas yield negative pixels.
func (c *Canvas) ToPixel(col, row int) Point {
	return Point{
		X: floorDiv(col-c.origin.X, c.scaleX),
		Y: row - c.origin.Y,
	}
}

// ToScreen converts a canvas pixel to the screen position of its first column.
func (c *Canvas) ToScreen(p Point) Point {
	return Point{X: c.origin.X + p.X*c.scaleX, Y: c.origin.Y + p.Y}
}

// Clear erases the canvas region of the screen.
func (c *Canvas) Clear() {
	c.screen.DrawRect(c.Bounds(), ' ', ColorDefault)
}

// SetStroke sets the line color and width. Widths above 1 use heavy glyphs.
func (c *Canvas) SetStroke(col Color, width int) {
	c.stroke = col
	c.strokeWidth = width
}

// SetFill sets the color for fills and text.
func (c *Canvas) SetFill(col Color) {
	c.fill = col
}

// SetFont records the font. Terminals have a single font, so it only
// affects what Font reports.
func (c *Canvas) SetFont(font string) {
	c.font = font
}

// StrokeLine draws a segment with Bresenham's algorithm.
// Axis-aligned segments use box-drawing glyphs and merge into crossings.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 int) {
	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	var kind lineKind
	switch {
	case dy == 0:
		kind = lineHorizontal
	case dx == 0:
		kind = lineVertical
	default:
		kind = lineDiagonal
	}

	err := dx + dy
	x, y := x0, y0
	for {
		c.plotLine(x, y, kind, sx == sy)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// FillRect fills pixels with a solid block in the fill color.
func (c *Canvas) FillRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.paint(px, py, '█', c.fill)
		}
	}
}

// Circle rasterizes a circle. Radius 0 draws a single dot glyph.
func (c *Canvas) Circle(cx, cy, r int, filled bool) {
	if r <= 0 {
		glyph, col := '○', c.stroke
		if filled {
			glyph, col = '●', c.fill
		}
		c.plotCenter(cx, cy, glyph, col)
		return
	}

	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			d := (px-cx)*(px-cx) + (py-cy)*(py-cy)
			switch {
			case filled && d <= r*r+r:
				c.paint(px, py, '█', c.fill)
			case !filled && Abs(d-r*r) <= r:
				c.paint(px, py, '░', c.stroke)
			}
		}
	}
}

// FillTextCentered writes text centered on the middle column of pixel (cx, cy).
func (c *Canvas) FillTextCentered(text string, cx, cy int) {
	if !c.inside(cx, cy) {
		return
	}
	runes := []rune(text)
	center := c.centerColumn(cx)
	start := center - len(runes)/2
	row := c.origin.Y + cy
	for i, r := range runes {
		c.screen.Set(start+i, row, r, c.fill)
	}
}

type lineKind int

const (
	lineHorizontal lineKind = iota
	lineVertical
	lineDiagonal
)

// plotLine sets one line pixel, merging with existing line glyphs.
func (c *Canvas) plotLine(px, py int, kind lineKind, descending bool) {
	if !c.inside(px, py) {
		return
	}
	heavy := c.strokeWidth > 1
	at := c.ToScreen(Point{X: px, Y: py})

	switch kind {
	case lineHorizontal:
		glyph := pick(heavy, '━', '─')
		for i := 0; i < c.scaleX; i++ {
			existing := c.screen.Get(at.X+i, at.Y)
			if i == 0 && isVertical(existing) {
				c.screen.Set(at.X, at.Y, pick(heavy, '╋', '┼'), c.stroke)
				continue
			}
			c.screen.Set(at.X+i, at.Y, glyph, c.stroke)
		}
	case lineVertical:
		glyph := pick(heavy, '┃', '│')
		if isHorizontal(c.screen.Get(at.X, at.Y)) {
			glyph = pick(heavy, '╋', '┼')
		}
		c.screen.Set(at.X, at.Y, glyph, c.stroke)
	default:
		c.screen.Set(at.X, at.Y, pick(descending, '╲', '╱'), c.stroke)
	}
}

// paint fills every column of a pixel with r.
func (c *Canvas) paint(px, py int, r rune, col Color) {
	if !c.inside(px, py) {
		return
	}
	at := c.ToScreen(Point{X: px, Y: py})
	for i := 0; i < c.scaleX; i++ {
		c.screen.Set(at.X+i, at.Y, r, col)
	}
}

// plotCenter sets only the middle column of a pixel.
func (c *Canvas) plotCenter(px, py int, r rune, col Color) {
	if !c.inside(px, py) {
		return
	}
	c.screen.Set(c.centerColumn(px), c.origin.Y+py, r, col)
}

func (c *Canvas) centerColumn(px int) int {
	return c.origin.X + px*c.scaleX + c.scaleX/2
}

func (c *Canvas) inside(px, py int) bool {
	return px >= 0 && px < c.width && py >= 0 && py < c.height
}

func pick(cond bool, a, b rune) rune {
	if cond {
		return a
	}
	return b
}

func isHorizontal(r rune) bool {
	return strings.ContainsRune("─━┼╋", r)
}

func isVertical(r rune) bool {
	return strings.ContainsRune("│┃┼╋", r)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
