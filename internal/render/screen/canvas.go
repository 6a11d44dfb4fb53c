// Package screen implements render.Canvas on an Ebitengine image.
package screen

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spacehole-rogue/liftoff/internal/render"
)

// Canvas draws onto the Ebitengine screen image handed to Game.Draw.
type Canvas struct {
	dst   *ebiten.Image
	atlas *FontAtlas
	white *ebiten.Image // 1x1 white source for triangle fills
	off   render.Offset

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas creates a canvas with the given font atlas. Bind a destination
// with Begin before drawing.
func NewCanvas(atlas *FontAtlas) *Canvas {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &Canvas{
		atlas: atlas,
		white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Begin binds dst for the coming frame and drops any leftover offsets.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.off.Reset()
}

func (c *Canvas) Size() (w, h float64) {
	if c.dst == nil {
		return 0, 0
	}
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) Fill(col color.NRGBA) {
	if c.dst == nil {
		return
	}
	c.dst.Fill(col)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	if c.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x+c.off.X), float32(y+c.off.Y), float32(w), float32(h), col, false)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, col color.NRGBA) {
	if c.dst == nil {
		return
	}
	vector.StrokeRect(c.dst, float32(x+c.off.X), float32(y+c.off.Y), float32(w), float32(h), float32(width), col, false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	if c.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx+c.off.X), float32(cy+c.off.Y), float32(r), col, true)
}

func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.NRGBA) {
	if c.dst == nil {
		return
	}
	vector.StrokeLine(c.dst,
		float32(x0+c.off.X), float32(y0+c.off.Y),
		float32(x1+c.off.X), float32(y1+c.off.Y),
		float32(width), col, true)
}

// FillPolygon triangulates pts as a fan from the first vertex.
func (c *Canvas) FillPolygon(pts []render.Point, col color.NRGBA) {
	if c.dst == nil || len(pts) < 3 {
		return
	}
	r := float32(col.R) / 255
	g := float32(col.G) / 255
	b := float32(col.B) / 255
	a := float32(col.A) / 255

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	for _, p := range pts {
		c.vertices = append(c.vertices, ebiten.Vertex{
			DstX: float32(p.X + c.off.X), DstY: float32(p.Y + c.off.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i < len(pts)-1; i++ {
		c.indices = append(c.indices, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(c.vertices, c.indices, c.white, op)
}

// Text stamps s glyph by glyph from the baked atlas, scaled with nearest
// filtering so the pixel look survives.
func (c *Canvas) Text(s string, x, y, scale float64, col color.NRGBA) {
	if c.dst == nil || c.atlas == nil {
		return
	}
	var op ebiten.DrawImageOptions
	px := x + c.off.X
	for _, r := range s {
		if r != ' ' {
			op = ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(px, y+c.off.Y)
			op.ColorScale.ScaleWithColor(col)
			c.dst.DrawImage(c.atlas.Glyph(r), &op)
		}
		px += render.GlyphAdvance * scale
	}
}

func (c *Canvas) PushOffset(dx, dy float64) { c.off.Push(dx, dy) }

func (c *Canvas) PopOffset() { c.off.Pop() }
