package render

import "image/color"

// Palette entries used across the scenes.
var (
	ColorBlack  = color.NRGBA{0, 0, 0, 255}
	ColorWhite  = color.NRGBA{255, 255, 255, 255}
	ColorSpace  = color.NRGBA{5, 6, 20, 255}    // base background
	ColorNight  = color.NRGBA{14, 18, 48, 255}  // upper sky on the pad
	ColorDusk   = color.NRGBA{52, 40, 96, 255}  // horizon glow
	ColorGround = color.NRGBA{46, 52, 44, 255}  // pad apron
	ColorDirt   = color.NRGBA{70, 60, 46, 255}  // ground texture flecks
	ColorSteel  = color.NRGBA{150, 156, 168, 255}
	ColorGirder = color.NRGBA{196, 70, 52, 255} // tower lattice
	ColorHull   = color.NRGBA{232, 234, 240, 255}
	ColorWindow = color.NRGBA{80, 170, 255, 255}
	ColorNose   = color.NRGBA{220, 48, 48, 255}
	ColorFin    = color.NRGBA{180, 36, 36, 255}
	ColorFlame  = color.NRGBA{255, 150, 30, 255}
	ColorCore   = color.NRGBA{255, 240, 150, 255} // flame centre
	ColorSmoke  = color.NRGBA{190, 190, 196, 255}
	ColorGauge  = color.NRGBA{40, 220, 90, 255}
	ColorAmber  = color.NRGBA{255, 196, 0, 255}
	ColorAlarm  = color.NRGBA{255, 48, 48, 255}
	ColorEnergy = color.NRGBA{120, 220, 255, 255}
	ColorFrame  = color.NRGBA{30, 30, 36, 220} // gauge backplates
)

// Fade returns c with its alpha scaled by a (clamped to [0,1]).
func Fade(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}

// Mix blends a towards b by t in [0,1], channel by channel.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
