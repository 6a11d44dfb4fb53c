package render

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/spacehole-rogue/liftoff/internal/game"
)

// Frame is everything a frame is drawn from. Renderers only read it.
type Frame struct {
	State  game.State
	Tuning game.Tuning
	Sky    *game.Sky
	Now    time.Time
	Start  time.Time  // session start; animation clocks count from here
	Rand   *rand.Rand // source for the ephemeral per-frame samples
	Key    string     // label of the advance key, e.g. "SPACE"
}

// ms is the animation clock in milliseconds.
func (f Frame) ms() int64 {
	return f.Now.Sub(f.Start).Milliseconds()
}

// layout is recomputed from the surface size on every frame.
type layout struct {
	w, h     float64
	cx, cy   float64
	baseline float64 // top of the ground
	scale    float64 // sprite scale relative to a 720px tall surface
}

func layoutFor(c Canvas) layout {
	w, h := c.Size()
	scale := math.Max(0.5, math.Min(h/720, 2))
	return layout{
		w:        w,
		h:        h,
		cx:       w / 2,
		cy:       h / 2,
		baseline: h * 0.82,
		scale:    scale,
	}
}

// padDeck is where the rocket's base sits before it climbs.
func (l layout) padDeck() float64 {
	return l.baseline - 10*l.scale
}

// Draw renders one complete frame. A nil canvas or an empty surface is a
// no-op.
func Draw(c Canvas, f Frame) {
	if c == nil {
		return
	}
	l := layoutFor(c)
	if l.w <= 0 || l.h <= 0 {
		return
	}
	if f.Rand == nil {
		f.Rand = rand.New(rand.NewPCG(uint64(f.Now.UnixNano()), 0))
	}
	if f.Key == "" {
		f.Key = "SPACE"
	}

	c.Fill(ColorSpace)
	if f.Sky != nil {
		f.Sky.EachStar(func(s game.StarView) {
			c.FillCircle(s.X, s.Y, s.Size, Fade(ColorWhite, s.Brightness))
		})
	}

	switch f.State.Scene {
	case game.ScenePower:
		drawPower(c, f, l)
	case game.SceneLaunch:
		drawLaunch(c, f, l)
	case game.SceneAtmosphere:
		drawAtmosphere(c, f, l)
	}
}

// drawPadSky paints the translucent evening sky above the pad so the
// starfield still shows near the top.
func drawPadSky(c Canvas, l layout) {
	VerticalGradient(c, 0, 0, l.w, l.baseline,
		Stop{At: 0, Color: Fade(ColorNight, 0)},
		Stop{At: 0.6, Color: Fade(ColorNight, 0.7)},
		Stop{At: 1, Color: ColorDusk},
	)
}

// drawTexturedGround draws the ground with flecks that slide sideways,
// faster as shake builds, so the pad looks like it is rumbling.
func drawTexturedGround(c Canvas, l layout, ms int64, rumble float64) {
	DrawGround(c, l.baseline)
	depth := l.h - l.baseline - 8
	if depth <= 0 {
		return
	}
	t := float64(ms) * (0.02 + rumble*0.01)
	for i := 0; i < 48; i++ {
		fi := float64(i)
		x := math.Mod(fi*137.5+t, l.w+20) - 10
		y := l.baseline + 6 + math.Mod(fi*53.3, depth)
		c.FillRect(x, y, (4+math.Mod(fi*7, 10))*l.scale, 2*l.scale, ColorDirt)
	}
}

// drawHint stamps a small instruction line along the bottom edge.
func drawHint(c Canvas, l layout, s string) {
	StampCentered(c, s, l.cx, l.h-TextHeight(1.5)-12, 1.5)
}
