package render

import (
	"fmt"

	"github.com/spacehole-rogue/liftoff/internal/game"
)

func drawPower(c Canvas, f Frame, l layout) {
	st := f.State
	ms := f.ms()

	drawPadSky(c, l)
	DrawClouds(c, f.Sky, ms, 0, 1)
	DrawGround(c, l.baseline)
	DrawTower(c, l.cx, l.baseline, l.scale)
	DrawPad(c, l.cx, l.baseline, l.scale)

	deck := l.padDeck()
	charged := st.PowerPhase() == game.PowerCharged
	if charged {
		DrawEnergy(c, l.cx, deck-RocketHeight(l.scale)/2, l.scale, ms)
	}
	// Engines idle once the latch is set.
	DrawRocket(c, l.cx, deck, l.scale, ms, charged)

	gw := 30 * l.scale
	gh := l.h * 0.5
	DrawFuelGauge(c, l.w*0.85-gw/2, l.h*0.2, gw, gh, st.Power/f.Tuning.PowerMax)

	switch {
	case st.PowerPhase() == game.PowerCharged:
		Banner(c, "FULLY CHARGED!", l.cx, l.h*0.12, 3, Fade(ColorGauge, 0.6))
		StampCentered(c, "PREPARE TO LAUNCH", l.cx, l.h*0.12+TextHeight(3)+20, 2)
		if n := st.FullPowerCountdown(f.Now, f.Tuning); n > 0 {
			StampCentered(c, fmt.Sprintf("%d", n), l.cx, l.h*0.32, 5)
		}
	case st.Power >= f.Tuning.HighPower:
		if Blink(ms, 250) {
			c.FillRect(0, l.h*0.06, l.w, TextHeight(2.5)+24, Fade(ColorAlarm, 0.55))
			StampCentered(c, "WARNING: HIGH POWER", l.cx, l.h*0.06+12, 2.5)
		}
		drawHint(c, l, fmt.Sprintf("KEEP PRESSING %s!", f.Key))
	default:
		StampCentered(c, "CHARGE THE ROCKET", l.cx, l.h*0.1, 3)
		drawHint(c, l, fmt.Sprintf("PRESS %s REPEATEDLY TO FUEL UP", f.Key))
	}
}
