// Package cells implements render.Canvas on a grid of terminal character
// cells. Each cell shows two stacked pixels with the upper half block, so
// a cols×rows terminal is a cols×(rows*2) pixel image.
package cells

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/liftoff/internal/render"
)

// Surface pixels per terminal cell. Layout math runs in these units so the
// scenes look the same shape as in the window build.
const (
	CellWidth  = 8
	CellHeight = 16
	subHeight  = CellHeight / 2
)

// upperHalf is the block drawn in every cell without text.
const upperHalf = '▀'

// Cell is the text overlay of one terminal cell. Rune 0 means no text.
type Cell struct {
	Rune rune
	FG   color.NRGBA
}

// Buffer is a half-block pixel grid with a text overlay.
type Buffer struct {
	Cols int
	Rows int

	pixels []color.NRGBA // Cols × Rows*2, row-major
	text   []Cell        // Cols × Rows
	off    render.Offset
}

// NewBuffer creates a buffer for a cols×rows terminal, cleared to black.
func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{}
	b.Resize(cols, rows)
	return b
}

// Resize reallocates for a new terminal size. Contents are lost.
func (b *Buffer) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	b.Cols, b.Rows = cols, rows
	b.pixels = make([]color.NRGBA, cols*rows*2)
	b.text = make([]Cell, cols*rows)
	b.off.Reset()
}

// Pixel reads the pixel at sub-cell coordinates (px, py). Out-of-bounds
// reads return transparent black.
func (b *Buffer) Pixel(px, py int) color.NRGBA {
	if px < 0 || px >= b.Cols || py < 0 || py >= b.Rows*2 {
		return color.NRGBA{}
	}
	return b.pixels[py*b.Cols+px]
}

// TextAt reads the text overlay of cell (x, y).
func (b *Buffer) TextAt(x, y int) Cell {
	if x < 0 || x >= b.Cols || y < 0 || y >= b.Rows {
		return Cell{}
	}
	return b.text[y*b.Cols+x]
}

func (b *Buffer) Size() (w, h float64) {
	return float64(b.Cols * CellWidth), float64(b.Rows * CellHeight)
}

func (b *Buffer) Fill(c color.NRGBA) {
	c.A = 255
	for i := range b.pixels {
		b.pixels[i] = c
	}
	clear(b.text)
}

// blend composites c over pixel (px, py). A mostly opaque paint hides any
// text in the cell underneath.
func (b *Buffer) blend(px, py int, c color.NRGBA) {
	if px < 0 || px >= b.Cols || py < 0 || py >= b.Rows*2 || c.A == 0 {
		return
	}
	i := py*b.Cols + px
	a := float64(c.A) / 255
	dst := b.pixels[i]
	b.pixels[i] = color.NRGBA{
		R: uint8(float64(dst.R)*(1-a) + float64(c.R)*a),
		G: uint8(float64(dst.G)*(1-a) + float64(c.G)*a),
		B: uint8(float64(dst.B)*(1-a) + float64(c.B)*a),
		A: 255,
	}
	if c.A > 127 {
		b.text[(py/2)*b.Cols+px].Rune = 0
	}
}

// span converts a surface interval [lo, hi) into the pixel indices whose
// centres fall inside it.
func span(lo, hi, unit float64) (int, int) {
	return int(math.Ceil(lo/unit - 0.5)), int(math.Ceil(hi/unit - 0.5))
}

func (b *Buffer) FillRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x += b.off.X
	y += b.off.Y
	x0, x1 := span(x, x+w, CellWidth)
	y0, y1 := span(y, y+h, subHeight)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.blend(px, py, c)
		}
	}
}

func (b *Buffer) StrokeRect(x, y, w, h, width float64, c color.NRGBA) {
	b.Line(x, y, x+w, y, width, c)
	b.Line(x+w, y, x+w, y+h, width, c)
	b.Line(x+w, y+h, x, y+h, width, c)
	b.Line(x, y+h, x, y, width, c)
}

func (b *Buffer) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	cx += b.off.X
	cy += b.off.Y
	x0, x1 := span(cx-r, cx+r, CellWidth)
	y0, y1 := span(cy-r, cy+r, subHeight)
	if x0 >= x1 || y0 >= y1 {
		// Smaller than a pixel: light the one it sits in.
		b.blend(int(math.Floor(cx/CellWidth)), int(math.Floor(cy/subHeight)), c)
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dx := (float64(px)+0.5)*CellWidth - cx
			dy := (float64(py)+0.5)*subHeight - cy
			if dx*dx+dy*dy <= r*r {
				b.blend(px, py, c)
			}
		}
	}
}

func (b *Buffer) FillPolygon(pts []render.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	ox, oy := b.off.X, b.off.Y
	x0, x1 := span(minX+ox, maxX+ox, CellWidth)
	y0, y1 := span(minY+oy, maxY+oy, subHeight)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			sx := (float64(px)+0.5)*CellWidth - ox
			sy := (float64(py)+0.5)*subHeight - oy
			if inside(pts, sx, sy) {
				b.blend(px, py, c)
			}
		}
	}
}

// inside is the even-odd ray test.
func inside(pts []render.Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}

func (b *Buffer) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	x0 += b.off.X
	y0 += b.off.Y
	x1 += b.off.X
	y1 += b.off.Y
	length := math.Hypot(x1-x0, y1-y0)
	steps := int(length/(subHeight/2)) + 1
	seen := make(map[[2]int]bool, steps)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor((x0 + (x1-x0)*t) / CellWidth))
		py := int(math.Floor((y0 + (y1-y0)*t) / subHeight))
		// Blend each pixel once so translucent lines stay even.
		if k := [2]int{px, py}; !seen[k] {
			seen[k] = true
			b.blend(px, py, c)
		}
	}
}

// Text writes one rune per cell on the row holding the text's vertical
// centre, centred on the span the text would cover at full resolution.
func (b *Buffer) Text(s string, x, y, scale float64, c color.NRGBA) {
	runes := []rune(s)
	if len(runes) == 0 || b.Cols == 0 {
		return
	}
	x += b.off.X
	y += b.off.Y
	mid := x + render.TextWidth(s, scale)/2
	row := int(math.Floor((y + render.TextHeight(scale)/2) / CellHeight))
	if row < 0 || row >= b.Rows {
		return
	}
	col := int(math.Round(mid/CellWidth - float64(len(runes))/2))
	for i, r := range runes {
		cx := col + i
		if cx < 0 || cx >= b.Cols {
			continue
		}
		if r == ' ' {
			r = 0
		}
		b.text[row*b.Cols+cx] = Cell{Rune: r, FG: c}
	}
}

func (b *Buffer) PushOffset(dx, dy float64) { b.off.Push(dx, dy) }

func (b *Buffer) PopOffset() { b.off.Pop() }

// Flush copies the buffer onto a tcell screen. The caller calls Show.
func (b *Buffer) Flush(s tcell.Screen) {
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			top := b.pixels[(y*2)*b.Cols+x]
			bot := b.pixels[(y*2+1)*b.Cols+x]
			if t := b.text[y*b.Cols+x]; t.Rune != 0 {
				bg := render.Mix(top, bot, 0.5)
				st := tcell.StyleDefault.Foreground(rgb(t.FG)).Background(rgb(bg))
				s.SetContent(x, y, t.Rune, nil, st)
				continue
			}
			st := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bot))
			s.SetContent(x, y, upperHalf, nil, st)
		}
	}
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
