package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/spacehole-rogue/liftoff/internal/game"
)

// layerColors tint the atmosphere bands, lowest layer first. Deep space
// has no band.
var layerColors = []color.NRGBA{
	{70, 140, 230, 255},  // troposphere
	{90, 190, 220, 255},  // stratosphere
	{120, 100, 210, 255}, // mesosphere
	{230, 120, 70, 255},  // thermosphere
	{90, 50, 140, 255},   // exosphere
}

func drawAtmosphere(c Canvas, f Frame, l layout) {
	switch f.State.AtmospherePhase(f.Now, f.Tuning) {
	case game.AtmospherePrepare:
		drawAtmospherePrepare(c, f, l)
	default:
		drawAscent(c, f, l)
	}
}

// drawAtmospherePrepare is the first sub-phase: the rocket is still on the
// pad roaring, the success flash fades and a countdown to the atmosphere
// break runs.
func drawAtmospherePrepare(c Canvas, f Frame, l layout) {
	st := f.State
	ms := f.ms()

	drawPadSky(c, l)
	DrawClouds(c, f.Sky, ms, st.RocketY*0.5, 1)

	c.PushOffset((f.Rand.Float64()-0.5)*st.Shake, (f.Rand.Float64()-0.5)*st.Shake)
	drawTexturedGround(c, l, ms, st.Shake)
	DrawTower(c, l.cx, l.baseline, l.scale)
	DrawPad(c, l.cx, l.baseline, l.scale)
	base := l.padDeck() - st.RocketY*l.scale
	DrawExhaust(c, f.Rand, l.cx, base+10*l.scale, l.scale, 1)
	DrawRocket(c, l.cx, base, l.scale, ms, true)
	c.PopOffset()

	drawLaunchSuccess(c, l, f)
	n := st.AtmosphereCountdownLeft(f.Now, f.Tuning)
	StampCentered(c, "BREAKING ATMOSPHERE IN", l.cx, l.h*0.3, 2)
	StampCentered(c, fmt.Sprintf("%d", n), l.cx, l.h*0.3+TextHeight(2)+14, 5)
}

// drawAscent is the deep-space sub-phase: dense starfield, layer bands
// scrolling down past the rocket, layer label, and the terminal banner.
func drawAscent(c Canvas, f Frame, l layout) {
	st := f.State
	ms := f.ms()
	climb := st.RocketY * l.scale

	VerticalGradient(c, 0, 0, l.w, l.h,
		Stop{At: 0, Color: ColorSpace},
		Stop{At: 1, Color: Mix(ColorSpace, ColorNight, 1-st.Altitude(l.h))},
	)
	DrawDeepStars(c, f.Sky, f.Rand, climb)
	drawLayerBands(c, l, ms, st.Altitude(l.h))

	rx := l.cx + math.Sin(float64(ms)/300)*4*l.scale
	ry := l.h*0.62 + math.Sin(float64(ms)/170)*3*l.scale
	DrawRocket(c, rx, ry, l.scale, ms, !st.IsExploded || Blink(ms, 120))

	name := st.LayerName(l.h)
	StampText(c, "LAYER: "+name, 20, 20, 2)
	StampText(c, fmt.Sprintf("ALTITUDE: %3d%%", int(math.Round(st.Altitude(l.h)*100))), 20, 20+TextHeight(2)+10, 2)

	if st.IsExploded {
		Glow(c, l.cx, l.h*0.3, 160*l.scale, ColorAmber, 6)
		Banner(c, "MISSION COMPLETE", l.cx, l.h*0.26, 5, Fade(ColorGauge, 0.6))
		return
	}
	drawHint(c, l, fmt.Sprintf("MASH %s TO CLIMB", f.Key))
}

// drawLayerBands draws one translucent gradient band per atmosphere layer.
// At altitude 0 the bands are stacked upwards from the horizon; by
// altitude 1 the whole stack has streamed down past the bottom edge.
// Each band breathes slowly with ms.
func drawLayerBands(c Canvas, l layout, ms int64, alt float64) {
	bandH := l.h * 0.32
	shift := alt * (float64(len(layerColors))*bandH + l.baseline)
	t := float64(ms)
	for i, col := range layerColors {
		top := l.baseline - float64(i+1)*bandH + shift
		top += math.Sin(t/900+float64(i)) * 6 * l.scale
		if top > l.h || top+bandH < 0 {
			continue
		}
		VerticalGradient(c, 0, top, l.w, bandH,
			Stop{At: 0, Color: Fade(col, 0)},
			Stop{At: 0.5, Color: Fade(col, 0.35)},
			Stop{At: 1, Color: Fade(col, 0.1)},
		)
	}
}
