package render

import "image/color"

// Glyph metrics of the pixel font every Canvas stamps text with
// (basicfont 7x13). Text at scale s occupies GlyphAdvance*s by
// GlyphHeight*s pixels per character.
const (
	GlyphAdvance = 7
	GlyphHeight  = 13
)

// Point is a position on the drawing surface, in pixels.
type Point struct {
	X, Y float64
}

// Canvas is the drawing surface a frame is rendered onto. Coordinates are
// surface pixels with the origin top-left; every call is shifted by the
// sum of the pushed offsets.
type Canvas interface {
	// Size returns the current surface dimensions.
	Size() (w, h float64)

	// Fill paints the whole surface, ignoring offsets.
	Fill(c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
	StrokeRect(x, y, w, h, width float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	// FillPolygon fills a convex polygon.
	FillPolygon(pts []Point, c color.NRGBA)
	Line(x0, y0, x1, y1, width float64, c color.NRGBA)
	// Text stamps s in the pixel font with its top-left corner at (x, y).
	Text(s string, x, y, scale float64, c color.NRGBA)

	PushOffset(dx, dy float64)
	PopOffset()
}

// Offset is a reusable offset stack for Canvas implementations.
type Offset struct {
	stack []Point
	X, Y  float64
}

// Push adds (dx, dy) to the current offset.
func (o *Offset) Push(dx, dy float64) {
	o.stack = append(o.stack, Point{X: o.X, Y: o.Y})
	o.X += dx
	o.Y += dy
}

// Pop restores the offset in effect before the matching Push. Popping an
// empty stack resets to zero.
func (o *Offset) Pop() {
	if len(o.stack) == 0 {
		o.X, o.Y = 0, 0
		return
	}
	last := o.stack[len(o.stack)-1]
	o.stack = o.stack[:len(o.stack)-1]
	o.X, o.Y = last.X, last.Y
}

// Reset drops every pushed offset.
func (o *Offset) Reset() {
	o.stack = o.stack[:0]
	o.X, o.Y = 0, 0
}
