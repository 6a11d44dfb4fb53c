package render

import (
	"fmt"
	"math"
)

// Rocket dimensions at scale 1.
const (
	rocketBodyW = 24.0
	rocketBodyH = 70.0
	rocketNoseH = 24.0
	rocketFinW  = 14.0
	rocketFinH  = 22.0
)

// RocketHeight returns the body-plus-nose height of the rocket at scale.
func RocketHeight(scale float64) float64 {
	return (rocketBodyH + rocketNoseH) * scale
}

// DrawRocket draws the rocket centred on x with the base of its body at y.
// The flame below the base flickers with ms; pass flame=false for a cold
// engine.
func DrawRocket(c Canvas, x, y, scale float64, ms int64, flame bool) {
	bw := rocketBodyW * scale
	bh := rocketBodyH * scale
	top := y - bh

	if flame {
		t := float64(ms)
		fh := (26 + 10*math.Sin(t/60)) * scale
		fw := (bw * 0.8) + 3*math.Sin(t/45)*scale
		c.FillPolygon([]Point{{x - fw/2, y}, {x + fw/2, y}, {x, y + fh}}, ColorFlame)
		c.FillPolygon([]Point{{x - fw/4, y}, {x + fw/4, y}, {x, y + fh*0.6}}, ColorCore)
	}

	// Fins first so the body overlaps their roots.
	fw := rocketFinW * scale
	fh := rocketFinH * scale
	c.FillPolygon([]Point{{x - bw/2, y - fh}, {x - bw/2, y}, {x - bw/2 - fw, y + fh*0.25}}, ColorFin)
	c.FillPolygon([]Point{{x + bw/2, y - fh}, {x + bw/2 + fw, y + fh*0.25}, {x + bw/2, y}}, ColorFin)

	c.FillRect(x-bw/2, top, bw, bh, ColorHull)
	c.FillRect(x-bw/2, top+bh*0.72, bw, bh*0.06, ColorNose) // stripe

	nh := rocketNoseH * scale
	c.FillPolygon([]Point{{x - bw/2, top}, {x, top - nh}, {x + bw/2, top}}, ColorNose)

	wr := bw * 0.28
	c.FillCircle(x, top+bh*0.3, wr+1.5*scale, ColorSteel)
	c.FillCircle(x, top+bh*0.3, wr, ColorWindow)
}

// DrawGround fills everything below baseline.
func DrawGround(c Canvas, baseline float64) {
	w, h := c.Size()
	if baseline >= h {
		return
	}
	c.FillRect(0, baseline, w, h-baseline, ColorGround)
	c.Line(0, baseline, w, baseline, 2, ColorSteel)
}

// DrawPad draws the launch platform centred on x with its deck at baseline.
func DrawPad(c Canvas, x, baseline, scale float64) {
	pw := 120 * scale
	ph := 10 * scale
	c.FillRect(x-pw/2, baseline-ph, pw, ph, ColorSteel)
	// Legs.
	for _, lx := range []float64{x - pw/2 + 6*scale, x + pw/2 - 12*scale} {
		c.FillRect(lx, baseline-ph, 6*scale, ph, ColorFrame)
	}
	// Flame trench.
	c.FillRect(x-16*scale, baseline-ph*0.4, 32*scale, ph*0.4, ColorBlack)
}

// DrawTower draws the lattice service tower standing left of a rocket
// centred on rocketX, with its service arm reaching the rocket.
func DrawTower(c Canvas, rocketX, baseline, scale float64) {
	tw := 26 * scale
	th := (rocketBodyH + rocketNoseH + 30) * scale
	tx := rocketX - rocketBodyW*scale/2 - 30*scale - tw
	top := baseline - 10*scale - th

	c.Line(tx, baseline, tx, top, 2*scale, ColorGirder)
	c.Line(tx+tw, baseline, tx+tw, top, 2*scale, ColorGirder)
	seg := 18 * scale
	for y := baseline - 10*scale; y > top; y -= seg {
		ny := math.Max(y-seg, top)
		c.Line(tx, y, tx+tw, ny, 1.5*scale, ColorGirder)
		c.Line(tx, ny, tx+tw, ny, 1.5*scale, ColorGirder)
	}
	c.FillRect(tx-4*scale, top-6*scale, tw+8*scale, 6*scale, ColorGirder)

	// Service arm at window height.
	armY := baseline - 10*scale - rocketBodyH*scale*0.7
	c.FillRect(tx+tw, armY, rocketX-rocketBodyW*scale/2-(tx+tw), 4*scale, ColorSteel)
}

// DrawFuelGauge draws the vertical power gauge filled to frac in [0,1],
// with a tick every tenth.
func DrawFuelGauge(c Canvas, x, y, w, h, frac float64) {
	frac = math.Max(0, math.Min(frac, 1))
	c.FillRect(x-3, y-3, w+6, h+6, ColorFrame)

	fill := h * frac
	col := ColorGauge
	switch {
	case frac >= 0.98:
		col = ColorEnergy
	case frac >= 0.8:
		col = ColorAlarm
	case frac >= 0.5:
		col = ColorAmber
	}
	c.FillRect(x, y+h-fill, w, fill, col)

	for i := 0; i <= 10; i++ {
		ty := y + h - h*float64(i)/10
		tl := w * 0.3
		if i%5 == 0 {
			tl = w * 0.6
		}
		c.Line(x+w, ty, x+w+tl, ty, 1, ColorSteel)
	}
	c.StrokeRect(x, y, w, h, 2, ColorSteel)
	StampCentered(c, fmt.Sprintf("%d%%", int(math.Round(frac*100))), x+w/2, y+h+10, 1.5)
	StampCentered(c, "FUEL", x+w/2, y-28, 1.5)
}

// DrawBarGauge draws a horizontal gauge filled to frac in [0,1].
func DrawBarGauge(c Canvas, label string, x, y, w, h, frac float64) {
	frac = math.Max(0, math.Min(frac, 1))
	c.FillRect(x-3, y-3, w+6, h+6, ColorFrame)
	col := Mix(ColorAmber, ColorAlarm, frac)
	c.FillRect(x, y, w*frac, h, col)
	c.StrokeRect(x, y, w, h, 2, ColorSteel)
	StampText(c, label, x, y-TextHeight(1.5)-6, 1.5)
}
