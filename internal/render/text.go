package render

import (
	"image/color"
	"unicode/utf8"
)

// outlineOffsets are the eight neighbour stamps that form the black rim.
var outlineOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// TextWidth returns the pixel width of s stamped at scale.
func TextWidth(s string, scale float64) float64 {
	return float64(utf8.RuneCountInString(s)) * GlyphAdvance * scale
}

// TextHeight returns the pixel height of one line at scale.
func TextHeight(scale float64) float64 {
	return GlyphHeight * scale
}

// StampText draws s with a one-font-pixel black outline and white fill,
// top-left at (x, y).
func StampText(c Canvas, s string, x, y, scale float64) {
	if s == "" {
		return
	}
	d := scale
	if d < 1 {
		d = 1
	}
	for _, o := range outlineOffsets {
		c.Text(s, x+o.X*d, y+o.Y*d, scale, ColorBlack)
	}
	c.Text(s, x, y, scale, ColorWhite)
}

// StampCentered draws outlined text horizontally centred on cx.
func StampCentered(c Canvas, s string, cx, y, scale float64) {
	StampText(c, s, cx-TextWidth(s, scale)/2, y, scale)
}

// Banner draws centred outlined text on a translucent plate of colour bg.
func Banner(c Canvas, s string, cx, y, scale float64, bg color.NRGBA) {
	w := TextWidth(s, scale)
	h := TextHeight(scale)
	pad := 6 * scale
	c.FillRect(cx-w/2-pad, y-pad, w+pad*2, h+pad*2, bg)
	StampCentered(c, s, cx, y, scale)
}
