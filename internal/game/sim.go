package game

import (
	"math"
	"sync"
	"time"
)

// shakeEpsilon absorbs float drift when repeated ShakeStep additions land
// a hair under ShakeMax.
const shakeEpsilon = 1e-9

// Sim is the game state machine. It owns the State aggregate and the
// viewport size; hosts feed it advance presses, clock ticks and resizes,
// and read snapshots back for rendering.
type Sim struct {
	mu     sync.Mutex
	state  State
	tuning Tuning
	viewW  float64
	viewH  float64

	log *EventLog
}

// NewSim creates a simulation in the power scene for a viewport of the
// given size.
func NewSim(t Tuning, viewW, viewH float64) *Sim {
	return &Sim{
		state:  State{Scene: ScenePower},
		tuning: t,
		viewW:  viewW,
		viewH:  viewH,
		log:    NewEventLog(32),
	}
}

// Snapshot returns a copy of the latest committed state.
func (s *Sim) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Tuning returns the constants the simulation runs with.
func (s *Sim) Tuning() Tuning {
	return s.tuning
}

// RecentEvents returns a copy of the last n transitions, oldest first.
func (s *Sim) RecentEvents(n int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.log.Recent(n)...)
}

// Viewport returns the current viewport size.
func (s *Sim) Viewport() (w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewW, s.viewH
}

// Resize records a new viewport size at now. Progress counters and the
// scene are untouched; only the exploded latch can be set if the ceiling
// drops below the rocket.
func (s *Sim) Resize(now time.Time, w, h float64) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewW, s.viewH = w, h

	st := s.state
	if st.Scene != SceneAtmosphere || st.IsExploded || h <= 0 || st.RocketY < h {
		return nil
	}
	st.IsExploded = true
	return s.commit(st, Event{Kind: EventMissionComplete, At: now})
}

// Advance applies one qualifying input at now. Deadlines due at now fire
// first, so the guards see the same state a tick at now would have left.
// Every call is folded into the latest state; nothing is batched or
// debounced.
func (s *Sim) Advance(now time.Time) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, evs := tick(s.state, now, s.tuning)
	next, more := advance(next, now, s.tuning, s.viewH)
	return s.commit(next, append(evs, more...)...)
}

// Tick fires every deadline that is due at now.
func (s *Sim) Tick(now time.Time) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, evs := tick(s.state, now, s.tuning)
	return s.commit(next, evs...)
}

func (s *Sim) commit(next State, evs ...Event) []Event {
	s.state = next
	s.log.Add(evs...)
	return evs
}

// advance is the input half of the state machine.
func advance(st State, now time.Time, t Tuning, viewH float64) (State, []Event) {
	switch st.Scene {
	case ScenePower:
		return advancePower(st, now, t)
	case SceneLaunch:
		return advanceLaunch(st, now, t)
	case SceneAtmosphere:
		return advanceAtmosphere(st, now, t, viewH)
	}
	return st, nil
}

func advancePower(st State, now time.Time, t Tuning) (State, []Event) {
	if st.FullPowerReached || st.Power >= t.FullPower {
		return st, nil
	}
	st.Power = math.Min(st.Power+t.PowerStep, t.PowerMax)
	if st.Power < t.FullPower {
		return st, nil
	}
	st.FullPowerReached = true
	st.FullPowerAt = now
	st.launchDue = now.Add(t.FullPowerDelay)
	return st, []Event{{Kind: EventFullPower, At: now}}
}

func advanceLaunch(st State, now time.Time, t Tuning) (State, []Event) {
	if st.IsLaunchSuccess || now.Sub(st.LaunchStartAt) < t.LaunchCountdown {
		return st, nil
	}

	var evs []Event
	if !st.IsLaunching {
		st.IsLaunching = true
		st.nextDecay = now.Add(t.DecayInterval)
		evs = append(evs, Event{Kind: EventLiftoff, At: now})
	}
	st.RocketY += t.ClimbStep
	st.Shake = math.Min(st.Shake+t.ShakeStep, t.ShakeMax)
	if t.ShakeMax-st.Shake > shakeEpsilon {
		return st, evs
	}

	st.Shake = t.ShakeMax
	st.IsLaunchSuccess = true
	st.AtmosphereStartAt = now
	st.Scene = SceneAtmosphere
	st.nextDecay = time.Time{}
	return st, append(evs, Event{Kind: EventLaunchSuccess, At: now})
}

func advanceAtmosphere(st State, now time.Time, t Tuning, viewH float64) (State, []Event) {
	if st.IsExploded || now.Sub(st.AtmosphereStartAt) < t.AtmospherePrepare {
		return st, nil
	}

	var evs []Event
	if !st.ascending {
		st.ascending = true
		evs = append(evs, Event{Kind: EventAtmosphereBreak, At: now})
	}
	st.RocketY += t.AltitudeStep
	if viewH > 0 && st.RocketY >= viewH {
		st.IsExploded = true
		evs = append(evs, Event{Kind: EventMissionComplete, At: now})
	}
	return st, evs
}

// tick is the deadline half of the state machine.
func tick(st State, now time.Time, t Tuning) (State, []Event) {
	var evs []Event

	if st.Scene == ScenePower && !st.launchDue.IsZero() && !now.Before(st.launchDue) {
		st.Scene = SceneLaunch
		st.LaunchStartAt = st.launchDue
		st.IsLaunching = false
		st.launchDue = time.Time{}
		evs = append(evs, Event{Kind: EventLaunchScene, At: st.LaunchStartAt})
	}

	if st.Scene != SceneLaunch || !st.IsLaunching || t.DecayInterval <= 0 {
		st.nextDecay = time.Time{}
		return st, evs
	}
	if st.nextDecay.IsZero() {
		st.nextDecay = now.Add(t.DecayInterval)
	}
	if now.Before(st.nextDecay) {
		return st, evs
	}

	// Every interval boundary passed since the last tick counts once.
	due := now.Sub(st.nextDecay)/t.DecayInterval + 1
	st.Shake = math.Max(st.Shake-float64(due)*t.ShakeDecay, 0)
	st.nextDecay = st.nextDecay.Add(due * t.DecayInterval)
	return st, evs
}
