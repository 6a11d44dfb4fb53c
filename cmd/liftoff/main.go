package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/liftoff/internal/config"
	"github.com/spacehole-rogue/liftoff/internal/game"
	"github.com/spacehole-rogue/liftoff/internal/render"
	"github.com/spacehole-rogue/liftoff/internal/render/screen"
)

var letterKeys = map[byte]ebiten.Key{
	'a': ebiten.KeyA, 'b': ebiten.KeyB, 'c': ebiten.KeyC, 'd': ebiten.KeyD,
	'e': ebiten.KeyE, 'f': ebiten.KeyF, 'g': ebiten.KeyG, 'h': ebiten.KeyH,
	'i': ebiten.KeyI, 'j': ebiten.KeyJ, 'k': ebiten.KeyK, 'l': ebiten.KeyL,
	'm': ebiten.KeyM, 'n': ebiten.KeyN, 'o': ebiten.KeyO, 'p': ebiten.KeyP,
	'q': ebiten.KeyQ, 'r': ebiten.KeyR, 's': ebiten.KeyS, 't': ebiten.KeyT,
	'u': ebiten.KeyU, 'v': ebiten.KeyV, 'w': ebiten.KeyW, 'x': ebiten.KeyX,
	'y': ebiten.KeyY, 'z': ebiten.KeyZ,
}

// advanceKey maps a validated config key name to an Ebitengine key.
func advanceKey(name string) ebiten.Key {
	switch name {
	case "enter":
		return ebiten.KeyEnter
	case "up":
		return ebiten.KeyArrowUp
	}
	if len(name) == 1 {
		if k, ok := letterKeys[name[0]]; ok {
			return k
		}
	}
	return ebiten.KeySpace
}

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	cfg    config.Config
	sim    *game.Sim
	sky    *game.Sky
	canvas *screen.Canvas
	key    ebiten.Key
	rng    *rand.Rand
	start  time.Time
	width  int
	height int

	// Reserved for sound; nothing creates or plays it yet.
	audio *audio.Context
}

func NewGame(cfg config.Config) *Game {
	w, h := float64(cfg.Width), float64(cfg.Height)
	return &Game{
		cfg:    cfg,
		sim:    game.NewSim(cfg.Tuning(), w, h),
		sky:    game.NewSky(cfg.Seed, w, h),
		canvas: screen.NewCanvas(screen.NewFontAtlas()),
		key:    advanceKey(cfg.Key),
		rng:    rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed>>16|5))),
		start:  time.Now(),
		width:  cfg.Width,
		height: cfg.Height,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	logEvents(g.sim.Tick(now))
	if inpututil.IsKeyJustPressed(g.key) {
		logEvents(g.sim.Advance(now))
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.canvas.Begin(dst)
	render.Draw(g.canvas, render.Frame{
		State:  g.sim.Snapshot(),
		Tuning: g.sim.Tuning(),
		Sky:    g.sky,
		Now:    time.Now(),
		Start:  g.start,
		Rand:   g.rng,
		Key:    g.cfg.KeyLabel(),
	})

	if g.cfg.Debug {
		render.DrawDebug(g.canvas, g.debugLines())
	}
}

// debugLines lists the last few transitions above the frame counters.
func (g *Game) debugLines() []string {
	var lines []string
	for _, ev := range g.sim.RecentEvents(4) {
		lines = append(lines, ev.String())
	}
	w, h := g.sim.Viewport()
	lines = append(lines,
		fmt.Sprintf("VIEW: %.0fx%.0f", w, h),
		fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	)
	return lines
}

// Layout keeps the drawing surface the same size as the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		// Minimised; keep the last real size.
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		logEvents(g.sim.Resize(time.Now(), float64(outsideWidth), float64(outsideHeight)))
	}
	return outsideWidth, outsideHeight
}

func logEvents(evs []game.Event) {
	for _, ev := range evs {
		log.Printf("event: %s", ev)
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("starting %s %dx%d seed=%d key=%s", cfg.Title, cfg.Width, cfg.Height, cfg.Seed, cfg.Key)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
