package render

import (
	"image/color"
	"math"
)

// Stop is one colour stop of a gradient, At in [0,1].
type Stop struct {
	At    float64
	Color color.NRGBA
}

// gradientBand is the strip height gradients are sliced into.
const gradientBand = 4.0

// VerticalGradient fills (x, y, w, h) top to bottom through stops, which
// must be sorted by At.
func VerticalGradient(c Canvas, x, y, w, h float64, stops ...Stop) {
	if h <= 0 || w <= 0 || len(stops) == 0 {
		return
	}
	for by := 0.0; by < h; by += gradientBand {
		bh := math.Min(gradientBand, h-by)
		t := (by + bh/2) / h
		c.FillRect(x, y+by, w, bh, gradientAt(stops, t))
	}
}

func gradientAt(stops []Stop, t float64) color.NRGBA {
	if t <= stops[0].At {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].At {
			a, b := stops[i-1], stops[i]
			span := b.At - a.At
			if span <= 0 {
				return b.Color
			}
			return Mix(a.Color, b.Color, (t-a.At)/span)
		}
	}
	return stops[len(stops)-1].Color
}

// Glow paints a soft radial halo as concentric translucent discs.
func Glow(c Canvas, cx, cy, r float64, col color.NRGBA, rings int) {
	if rings < 1 || r <= 0 {
		return
	}
	for i := rings; i >= 1; i-- {
		f := float64(i) / float64(rings)
		c.FillCircle(cx, cy, r*f, Fade(col, (1-f)*0.5+0.1))
	}
}

// Flash washes the whole surface with col at strength a.
func Flash(c Canvas, col color.NRGBA, a float64) {
	if a <= 0 {
		return
	}
	w, h := c.Size()
	c.FillRect(0, 0, w, h, Fade(col, a))
}

// Blink reports whether a blinking element is visible at ms, toggling
// every period milliseconds.
func Blink(ms int64, period int64) bool {
	if period <= 0 {
		return true
	}
	return (ms/period)%2 == 0
}
