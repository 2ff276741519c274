package core

// Surface is the 2D drawing capability a host provides to the renderer.
// Coordinates are surface pixels with the origin at the top-left corner.
type Surface interface {
	// Clear erases the whole surface.
	Clear()

	// SetStroke sets the color and width used by StrokeLine and stroked circles.
	SetStroke(c Color, width int)

	// StrokeLine draws a straight segment between two points (inclusive).
	StrokeLine(x0, y0, x1, y1 int)

	// SetFill sets the color used by FillRect, filled circles and text.
	SetFill(c Color)

	// FillRect fills a w*h rectangle whose top-left corner is (x, y).
	FillRect(x, y, w, h int)

	// Circle draws a circle of radius r around (cx, cy), filled or stroked.
	Circle(cx, cy, r int, filled bool)

	// SetFont sets the font used by FillTextCentered, e.g. "bold 16px sans-serif".
	SetFont(font string)

	// FillTextCentered draws text centered on (cx, cy).
	FillTextCentered(text string, cx, cy int)
}
