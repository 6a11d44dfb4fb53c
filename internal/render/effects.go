package render

import (
	"math"
	"math/rand/v2"

	"github.com/spacehole-rogue/liftoff/internal/game"
)

// Per-frame sample counts. Nothing here outlives the frame it is drawn in.
const (
	smokeSamples  = 26
	fireSamples   = 14
	energySamples = 10
	deepStars     = 150
)

// DrawExhaust draws one frame of smoke and fire billowing from a rocket
// base at (x, y). Positions, sizes and opacities are freshly sampled every
// call; power in [0,1] widens and thickens the plume.
func DrawExhaust(c Canvas, rng *rand.Rand, x, y, scale, power float64) {
	spread := (50 + 90*power) * scale
	for i := 0; i < smokeSamples; i++ {
		sx := x + (rng.Float64()-0.5)*spread*2
		sy := y + rng.Float64()*40*scale
		r := (10 + rng.Float64()*22) * scale * (0.7 + power*0.6)
		c.FillCircle(sx, sy, r, Fade(ColorSmoke, 0.15+rng.Float64()*0.35))
	}
	for i := 0; i < fireSamples; i++ {
		fx := x + (rng.Float64()-0.5)*24*scale
		fy := y + rng.Float64()*30*scale
		r := (4 + rng.Float64()*9) * scale
		col := ColorFlame
		if rng.Float64() < 0.4 {
			col = ColorCore
		}
		c.FillCircle(fx, fy, r, Fade(col, 0.5+rng.Float64()*0.5))
	}
}

// DrawEnergy draws the charged-up particles circling a rocket centred on
// (x, y). The orbit is a pure function of ms.
func DrawEnergy(c Canvas, x, y, scale float64, ms int64) {
	t := float64(ms)
	for i := 0; i < energySamples; i++ {
		a := t/420 + float64(i)*2*math.Pi/energySamples
		r := (70 + 8*math.Sin(t/180+float64(i))) * scale
		px := x + math.Cos(a)*r
		py := y + math.Sin(a)*r*0.6
		Glow(c, px, py, 7*scale, ColorEnergy, 3)
		c.FillCircle(px, py, 2*scale, ColorWhite)
	}
}

// DrawDeepStars draws the dense ascent starfield. The first sky.StarCount()
// entries reuse the decorative stars by index, drifting down with the
// rocket's climb; the rest are fresh random samples every frame.
func DrawDeepStars(c Canvas, sky *game.Sky, rng *rand.Rand, climb float64) {
	w, h := c.Size()
	if h <= 0 {
		return
	}
	for i := 0; i < deepStars; i++ {
		var x, y, size, bright float64
		if sv, ok := sky.Star(i); ok {
			x = sv.X
			y = math.Mod(sv.Y+climb*(0.3+sv.Size*0.4), h)
			size, bright = sv.Size, sv.Brightness
		} else {
			x = rng.Float64() * w
			y = rng.Float64() * h
			size = 0.3 + rng.Float64()*1.2
			bright = 0.2 + rng.Float64()*0.8
		}
		c.FillCircle(x, y, size, Fade(ColorWhite, bright))
	}
}

// DrawClouds draws the decorative clouds drifting right with the clock,
// shifted down by drop so they fall away as the rocket climbs.
func DrawClouds(c Canvas, sky *game.Sky, ms int64, drop, alpha float64) {
	w, _ := c.Size()
	if w <= 0 || alpha <= 0 {
		return
	}
	secs := float64(ms) / 1000
	for i := 0; i < sky.CloudCount(); i++ {
		cv, _ := sky.Cloud(i)
		span := w + cv.Width
		x := math.Mod(cv.X+cv.Speed*secs, span) - cv.Width/2
		y := cv.Y + drop
		col := Fade(ColorWhite, alpha*0.35)
		c.FillCircle(x, y, cv.Height/2, col)
		c.FillCircle(x-cv.Width*0.28, y+cv.Height*0.1, cv.Height*0.4, col)
		c.FillCircle(x+cv.Width*0.28, y+cv.Height*0.12, cv.Height*0.38, col)
	}
}
