package render

import (
	"fmt"

	"github.com/spacehole-rogue/liftoff/internal/game"
)

// successFlash is how long the white-out lasts after a successful launch.
const successFlash = 600

func drawLaunch(c Canvas, f Frame, l layout) {
	st := f.State
	ms := f.ms()
	phase := st.LaunchPhase(f.Now, f.Tuning)
	thrust := st.Shake / f.Tuning.ShakeMax

	drawPadSky(c, l)
	DrawClouds(c, f.Sky, ms, st.RocketY*0.5, 1)

	shaking := st.IsLaunching
	if shaking {
		c.PushOffset((f.Rand.Float64()-0.5)*2*st.Shake, (f.Rand.Float64()-0.5)*2*st.Shake)
	}

	drawTexturedGround(c, l, ms, st.Shake)
	DrawTower(c, l.cx, l.baseline, l.scale)
	DrawPad(c, l.cx, l.baseline, l.scale)

	base := l.padDeck() - st.RocketY*l.scale
	if st.IsLaunching {
		DrawExhaust(c, f.Rand, l.cx, base+10*l.scale, l.scale, thrust)
	}
	DrawRocket(c, l.cx, base, l.scale, ms, st.IsLaunching)

	if shaking {
		c.PopOffset()
	}

	switch phase {
	case game.LaunchCountdown:
		n := st.LaunchCountdownLeft(f.Now, f.Tuning)
		StampCentered(c, "T-MINUS", l.cx, l.h*0.12, 2.5)
		StampCentered(c, fmt.Sprintf("%d", n), l.cx, l.h*0.12+TextHeight(2.5)+16, 6)
	case game.LaunchReady:
		if Blink(ms, 300) {
			Banner(c, "LAUNCH!", l.cx, l.h*0.14, 5, Fade(ColorAlarm, 0.6))
		}
		drawHint(c, l, fmt.Sprintf("MASH %s FOR THRUST", f.Key))
	case game.LaunchThrust:
		if thrust >= f.Tuning.HighPower/f.Tuning.PowerMax && Blink(ms, 200) {
			Banner(c, "WARNING: MAX THRUST", l.cx, l.h*0.1, 2.5, Fade(ColorAlarm, 0.6))
		}
		drawHint(c, l, fmt.Sprintf("KEEP MASHING %s!", f.Key))
	}

	if phase != game.LaunchCountdown {
		gw := l.w * 0.3
		DrawBarGauge(c, "THRUST", 24, l.h-60*l.scale, gw, 18*l.scale, thrust)
	}
}

// drawLaunchSuccess is the white-out and banner of the atmosphere prepare
// sub-phase. Success moves the scene to atmosphere on the same press, so
// drawLaunch never shows it.
func drawLaunchSuccess(c Canvas, l layout, f Frame) {
	since := f.Now.Sub(f.State.AtmosphereStartAt).Milliseconds()
	if since < successFlash {
		Flash(c, ColorWhite, 1-float64(since)/successFlash)
	}
	Banner(c, "LAUNCH SUCCESS!", l.cx, l.h*0.12, 4, Fade(ColorGauge, 0.6))
}
