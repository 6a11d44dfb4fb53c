package screen

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/spacehole-rogue/liftoff/internal/render"
)

const (
	atlasCols = 16
	atlasRows = 6 // printable ASCII 32-127
	firstRune = 32
	lastRune  = 126
)

// FontAtlas holds the pixel font baked into one image, plus cached
// sub-images per glyph.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [atlasCols * atlasRows]*ebiten.Image
}

// NewFontAtlas bakes printable ASCII from basicfont.Face7x13 at startup.
// Each glyph occupies a render.GlyphAdvance × render.GlyphHeight cell.
func NewFontAtlas() *FontAtlas {
	img := bakeAtlas()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for i := range a.glyphs {
		x, y := cellOrigin(i)
		rect := image.Rect(x, y, x+render.GlyphAdvance, y+render.GlyphHeight)
		a.glyphs[i] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// bakeAtlas draws every printable glyph white-on-transparent.
func bakeAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*render.GlyphAdvance, atlasRows*render.GlyphHeight))
	face := basicfont.Face7x13
	for r := rune(firstRune); r <= lastRune; r++ {
		x, y := cellOrigin(int(r - firstRune))
		drawFontGlyph(img, face, x, y, r)
	}
	return img
}

func cellOrigin(i int) (x, y int) {
	return (i % atlasCols) * render.GlyphAdvance, (i / atlasCols) * render.GlyphHeight
}

// Glyph returns the cached sub-image for r. Runes outside printable ASCII
// map to '?'.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if r < firstRune || r > lastRune {
		r = '?'
	}
	return a.glyphs[r-firstRune]
}

// drawFontGlyph renders a single character into the atlas with its
// baseline at the face ascent.
func drawFontGlyph(img *image.NRGBA, face *basicfont.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX, cellY+face.Ascent),
	}
	d.DrawString(string(r))
}
