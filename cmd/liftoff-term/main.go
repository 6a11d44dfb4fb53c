// Command liftoff-term plays Liftoff in a terminal, drawing with half-block
// characters.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/liftoff/internal/config"
	"github.com/spacehole-rogue/liftoff/internal/game"
	"github.com/spacehole-rogue/liftoff/internal/render"
	"github.com/spacehole-rogue/liftoff/internal/render/cells"
)

type host struct {
	cfg    config.Config
	screen tcell.Screen
	buf    *cells.Buffer
	sim    *game.Sim
	sky    *game.Sky
	rng    *rand.Rand
	start  time.Time
	log    *log.Logger
	press  pressFilter
}

func newHost(cfg config.Config, s tcell.Screen, logger *log.Logger) *host {
	cols, rows := s.Size()
	buf := cells.NewBuffer(cols, rows)
	w, h := buf.Size()
	return &host{
		cfg:    cfg,
		screen: s,
		buf:    buf,
		sim:    game.NewSim(cfg.Tuning(), w, h),
		sky:    game.NewSky(cfg.Seed, w, h),
		rng:    rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed>>16|5))),
		start:  time.Now(),
		log:    logger,
		press:  pressFilter{gap: repeatGap},
	}
}

// isAdvance reports whether ev is a press of the configured advance key.
func isAdvance(ev *tcell.EventKey, key string) bool {
	switch key {
	case "enter":
		return ev.Key() == tcell.KeyEnter
	case "up":
		return ev.Key() == tcell.KeyUp
	case "space":
		return ev.Key() == tcell.KeyRune && ev.Rune() == ' '
	}
	return ev.Key() == tcell.KeyRune && len(key) == 1 &&
		(ev.Rune() == rune(key[0]) || ev.Rune() == rune(key[0]-'a'+'A'))
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

func (h *host) logEvents(evs []game.Event) {
	for _, ev := range evs {
		h.log.Printf("event: %s", ev)
	}
}

// handle processes one terminal event. It returns false when the player
// quits.
func (h *host) handle(ev tcell.Event, now time.Time) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		cols, rows := e.Size()
		h.buf.Resize(cols, rows)
		w, ht := h.buf.Size()
		h.logEvents(h.sim.Resize(now, w, ht))
		h.screen.Sync()
	case *tcell.EventKey:
		if isQuit(e) {
			return false
		}
		if isAdvance(e, h.cfg.Key) && h.press.accept(now) {
			h.logEvents(h.sim.Advance(now))
		}
	}
	return true
}

// debugLines lists the last few transitions above the viewport size.
func (h *host) debugLines() []string {
	var lines []string
	for _, ev := range h.sim.RecentEvents(4) {
		lines = append(lines, ev.String())
	}
	w, ht := h.sim.Viewport()
	return append(lines, fmt.Sprintf("VIEW: %.0fx%.0f  %dx%d", w, ht, h.buf.Cols, h.buf.Rows))
}

func (h *host) frame(now time.Time) {
	h.logEvents(h.sim.Tick(now))
	if h.buf.Cols == 0 || h.buf.Rows == 0 {
		return
	}
	render.Draw(h.buf, render.Frame{
		State:  h.sim.Snapshot(),
		Tuning: h.sim.Tuning(),
		Sky:    h.sky,
		Now:    now,
		Start:  h.start,
		Rand:   h.rng,
		Key:    h.cfg.KeyLabel(),
	})
	if h.cfg.Debug {
		render.DrawDebug(h.buf, h.debugLines())
	}
	h.buf.Flush(h.screen)
	h.screen.Show()
}

func run(cfg config.Config, logger *log.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()
	s.HideCursor()
	s.Clear()

	h := newHost(cfg, s, logger)

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go s.ChannelEvents(events, quit)
	defer close(quit)

	tick := time.NewTicker(cfg.FrameInterval())
	defer tick.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.handle(ev, time.Now()) {
				return nil
			}
		case now := <-tick.C:
			h.frame(now)
		}
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The terminal belongs to tcell while the game runs; log to a file.
	logFile, err := os.OpenFile("liftoff-term.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)
	logger.Printf("starting %s seed=%d key=%s tps=%d", cfg.Title, cfg.Seed, cfg.Key, cfg.TPS)

	if err := run(cfg, logger); err != nil {
		logger.Printf("run: %v", err)
		log.Fatal(err)
	}
}
