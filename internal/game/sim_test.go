package game

import (
	"math"
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func press(s *Sim, now time.Time, n int) []Event {
	var evs []Event
	for i := 0; i < n; i++ {
		evs = append(evs, s.Advance(now)...)
	}
	return evs
}

func kinds(evs []Event) []EventKind {
	out := make([]EventKind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// toLaunch drives a fresh sim to the launch scene, entered at +3000ms.
func toLaunch(t *testing.T, s *Sim) {
	t.Helper()
	press(s, at(0), 49)
	s.Tick(at(3000))
	if st := s.Snapshot(); st.Scene != SceneLaunch {
		t.Fatalf("scene = %s, want launch", st.Scene)
	}
}

// toAtmosphere drives a fresh sim through a 40-press launch at +6000ms.
func toAtmosphere(t *testing.T, s *Sim) {
	t.Helper()
	toLaunch(t, s)
	press(s, at(6000), 40)
	if st := s.Snapshot(); st.Scene != SceneAtmosphere {
		t.Fatalf("scene = %s, want atmosphere", st.Scene)
	}
}

func TestPowerGrowsTwoPerPress(t *testing.T) {
	for _, n := range []int{0, 1, 10, 48} {
		s := NewSim(DefaultTuning(), 800, 600)
		press(s, at(0), n)
		st := s.Snapshot()
		if want := math.Min(float64(2*n), 100); st.Power != want {
			t.Errorf("power after %d presses = %v, want %v", n, st.Power, want)
		}
		if st.FullPowerReached {
			t.Errorf("latched after %d presses", n)
		}
	}
}

func TestFullPowerLatchesAtNinetyEight(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	press(s, at(0), 48)
	evs := s.Advance(at(250))

	st := s.Snapshot()
	if st.Power != 98 || !st.FullPowerReached {
		t.Fatalf("power=%v latched=%v, want 98 true", st.Power, st.FullPowerReached)
	}
	if !st.FullPowerAt.Equal(at(250)) {
		t.Errorf("FullPowerAt = %v, want %v", st.FullPowerAt, at(250))
	}
	if len(evs) != 1 || evs[0].Kind != EventFullPower {
		t.Errorf("events = %v, want [full power]", kinds(evs))
	}
	if st.PowerPhase() != PowerCharged {
		t.Errorf("power phase = %v, want charged", st.PowerPhase())
	}

	// Presses after the latch change nothing.
	if evs := press(s, at(300), 20); len(evs) != 0 {
		t.Errorf("presses after latch emitted %v", kinds(evs))
	}
	if got := s.Snapshot(); got.Power != 98 || got.Scene != ScenePower {
		t.Errorf("after extra presses power=%v scene=%s", got.Power, got.Scene)
	}
}

func TestLaunchSceneFiresOnceAfterDelay(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	press(s, at(0), 49)

	if evs := s.Tick(at(2999)); len(evs) != 0 {
		t.Fatalf("tick before delay emitted %v", kinds(evs))
	}
	if st := s.Snapshot(); st.Scene != ScenePower {
		t.Fatalf("scene = %s before delay", st.Scene)
	}

	evs := s.Tick(at(3000))
	if len(evs) != 1 || evs[0].Kind != EventLaunchScene {
		t.Fatalf("events = %v, want [launch scene]", kinds(evs))
	}
	st := s.Snapshot()
	if st.Scene != SceneLaunch || st.IsLaunching {
		t.Fatalf("scene=%s launching=%v, want launch false", st.Scene, st.IsLaunching)
	}
	if !st.LaunchStartAt.Equal(at(3000)) {
		t.Errorf("LaunchStartAt = %v, want %v", st.LaunchStartAt, at(3000))
	}

	if evs := s.Tick(at(9000)); len(evs) != 0 {
		t.Errorf("second tick emitted %v", kinds(evs))
	}
	if got := s.Snapshot(); !got.LaunchStartAt.Equal(at(3000)) {
		t.Errorf("LaunchStartAt moved to %v", got.LaunchStartAt)
	}
}

func TestLateTickUsesDeadline(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	press(s, at(0), 49)
	s.Tick(at(4500))

	st := s.Snapshot()
	if !st.LaunchStartAt.Equal(at(3000)) {
		t.Errorf("LaunchStartAt = %v, want the deadline %v", st.LaunchStartAt, at(3000))
	}
}

func TestAdvanceFiresDueDeadlineFirst(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	press(s, at(0), 49)

	// No tick in between; the press itself crosses the deadline.
	evs := s.Advance(at(3000))
	if len(evs) != 1 || evs[0].Kind != EventLaunchScene {
		t.Fatalf("events = %v, want [launch scene]", kinds(evs))
	}
	if st := s.Snapshot(); st.IsLaunching {
		t.Error("thrust accepted during countdown")
	}
}

func TestThrustIgnoredDuringCountdown(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	toLaunch(t, s)

	press(s, at(3000), 5)
	press(s, at(5999), 5)

	st := s.Snapshot()
	if st.IsLaunching || st.RocketY != 0 || st.Shake != 0 {
		t.Fatalf("countdown presses changed state: launching=%v y=%v shake=%v",
			st.IsLaunching, st.RocketY, st.Shake)
	}
	if got := st.LaunchPhase(at(5999), s.Tuning()); got != LaunchCountdown {
		t.Errorf("phase = %v, want countdown", got)
	}
	if got := st.LaunchPhase(at(6000), s.Tuning()); got != LaunchReady {
		t.Errorf("phase = %v, want ready", got)
	}
}

func TestFirstThrustStartsLaunch(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	toLaunch(t, s)

	evs := s.Advance(at(6000))
	if len(evs) != 1 || evs[0].Kind != EventLiftoff {
		t.Fatalf("events = %v, want [liftoff]", kinds(evs))
	}
	st := s.Snapshot()
	if !st.IsLaunching || st.RocketY != 1 || !near(st.Shake, 0.2) {
		t.Fatalf("launching=%v y=%v shake=%v, want true 1 0.2", st.IsLaunching, st.RocketY, st.Shake)
	}
	if got := st.LaunchPhase(at(6000), s.Tuning()); got != LaunchThrust {
		t.Errorf("phase = %v, want thrust", got)
	}

	if evs := s.Advance(at(6001)); len(evs) != 0 {
		t.Errorf("second thrust emitted %v", kinds(evs))
	}
}

func TestFortyPressesSucceed(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	toLaunch(t, s)

	press(s, at(6000), 39)
	if st := s.Snapshot(); st.IsLaunchSuccess || st.Scene != SceneLaunch {
		t.Fatalf("succeeded early at shake %v", st.Shake)
	}

	evs := s.Advance(at(6000))
	if len(evs) != 1 || evs[0].Kind != EventLaunchSuccess {
		t.Fatalf("events = %v, want [launch success]", kinds(evs))
	}
	st := s.Snapshot()
	if !st.IsLaunchSuccess || st.Scene != SceneAtmosphere {
		t.Fatalf("success=%v scene=%s", st.IsLaunchSuccess, st.Scene)
	}
	if st.Shake != 8 || st.RocketY != 40 {
		t.Errorf("shake=%v y=%v, want 8 40", st.Shake, st.RocketY)
	}
	if !st.AtmosphereStartAt.Equal(at(6000)) {
		t.Errorf("AtmosphereStartAt = %v", st.AtmosphereStartAt)
	}
	if got := st.LaunchPhase(at(6000), s.Tuning()); got != LaunchSuccess {
		t.Errorf("phase = %v, want success", got)
	}
}

func TestShakeDecays(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	toLaunch(t, s)
	press(s, at(6000), 10)

	if st := s.Snapshot(); !near(st.Shake, 2.0) {
		t.Fatalf("shake = %v, want 2", st.Shake)
	}

	s.Tick(at(6049))
	if st := s.Snapshot(); !near(st.Shake, 2.0) {
		t.Errorf("decayed before first interval: %v", st.Shake)
	}

	s.Tick(at(6050))
	if st := s.Snapshot(); !near(st.Shake, 1.97) {
		t.Errorf("shake after one interval = %v, want 1.97", st.Shake)
	}

	// Two boundaries (+100, +150) passed since the last tick.
	s.Tick(at(6175))
	if st := s.Snapshot(); !near(st.Shake, 1.91) {
		t.Errorf("shake after catch-up = %v, want 1.91", st.Shake)
	}

	s.Tick(at(16000))
	if st := s.Snapshot(); st.Shake != 0 {
		t.Errorf("shake = %v, want floor 0", st.Shake)
	}
	if st := s.Snapshot(); st.Scene != SceneLaunch || !st.IsLaunching {
		t.Errorf("decay changed the scene: %s launching=%v", st.Scene, st.IsLaunching)
	}
}

// mashAt presses once every interval after the countdown, ticking before
// each press, and returns the press count at success or -1 after limit.
func mashAt(t *testing.T, interval time.Duration, limit time.Duration) int {
	t.Helper()
	s := NewSim(DefaultTuning(), 800, 600)
	toLaunch(t, s)

	presses := 0
	for d := time.Duration(0); d <= limit; d += interval {
		now := at(6000).Add(d)
		s.Tick(now)
		s.Advance(now)
		presses++
		if st := s.Snapshot(); st.IsLaunchSuccess {
			return presses
		}
	}
	return -1
}

func TestHumanMashingSucceeds(t *testing.T) {
	cases := []struct {
		name     string
		interval time.Duration
	}{
		{"6 per second", 166 * time.Millisecond},
		{"7 per second", 143 * time.Millisecond},
		{"8 per second", 125 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := mashAt(t, tc.interval, 30*time.Second)
			if n < 0 {
				t.Fatalf("no success within 30s at one press per %v", tc.interval)
			}
			if n < 40 {
				t.Errorf("succeeded after %d presses, fewer than the 40 a no-decay run needs", n)
			}
		})
	}
}

func TestSlowMashingDoesNotSucceed(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	toLaunch(t, s)

	// One press per 400ms loses 0.24 to decay for every 0.2 gained.
	for i := 0; i < 200; i++ {
		now := at(6000 + i*400)
		s.Tick(now)
		s.Advance(now)
		st := s.Snapshot()
		if st.IsLaunchSuccess {
			t.Fatalf("succeeded after %d slow presses", i+1)
		}
		if st.Shake > 0.2+1e-9 {
			t.Fatalf("shake climbed to %v", st.Shake)
		}
	}
	if n := mashAt(t, 400*time.Millisecond, 60*time.Second); n != -1 {
		t.Errorf("slow mashing succeeded after %d presses", n)
	}
}

func TestDecayStopsAfterSuccess(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	toAtmosphere(t, s)

	s.Tick(at(20000))
	if st := s.Snapshot(); st.Shake != 8 {
		t.Errorf("shake = %v after success, want 8", st.Shake)
	}
}

func TestAtmospherePrepareGatesInput(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 720)
	toAtmosphere(t, s)

	press(s, at(8999), 10)
	if st := s.Snapshot(); st.RocketY != 40 {
		t.Fatalf("prepare presses moved rocket to %v", st.RocketY)
	}
	st := s.Snapshot()
	if got := st.AtmospherePhase(at(8999), s.Tuning()); got != AtmospherePrepare {
		t.Errorf("phase = %v, want prepare", got)
	}

	evs := s.Advance(at(9000))
	if len(evs) != 1 || evs[0].Kind != EventAtmosphereBreak {
		t.Fatalf("events = %v, want [atmosphere break]", kinds(evs))
	}
	if st := s.Snapshot(); st.RocketY != 55 {
		t.Errorf("rocket = %v, want 55", st.RocketY)
	}
}

func TestExplodesAtCeiling(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 720)
	toAtmosphere(t, s)

	// 40 + 15*45 = 715, one short.
	press(s, at(9000), 45)
	if st := s.Snapshot(); st.IsExploded || st.RocketY != 715 {
		t.Fatalf("exploded=%v y=%v, want false 715", st.IsExploded, st.RocketY)
	}

	evs := s.Advance(at(9100))
	if len(evs) != 1 || evs[0].Kind != EventMissionComplete {
		t.Fatalf("events = %v, want [mission complete]", kinds(evs))
	}
	st := s.Snapshot()
	if !st.IsExploded || st.RocketY != 730 {
		t.Fatalf("exploded=%v y=%v, want true 730", st.IsExploded, st.RocketY)
	}
	if got := st.AtmospherePhase(at(9100), s.Tuning()); got != AtmosphereComplete {
		t.Errorf("phase = %v, want complete", got)
	}

	if evs := press(s, at(9200), 5); len(evs) != 0 {
		t.Errorf("presses after explosion emitted %v", kinds(evs))
	}
	if got := s.Snapshot(); got.RocketY != 730 {
		t.Errorf("rocket moved to %v after explosion", got.RocketY)
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	toLaunch(t, s)
	press(s, at(6000), 7)
	before := s.Snapshot()

	if evs := s.Resize(at(7000), 1920, 1080); len(evs) != 0 {
		t.Errorf("resize emitted %v", kinds(evs))
	}
	if after := s.Snapshot(); after != before {
		t.Errorf("resize changed state:\n got %+v\nwant %+v", after, before)
	}
	if w, h := s.Viewport(); w != 1920 || h != 1080 {
		t.Errorf("viewport = %vx%v", w, h)
	}
}

func TestShrinkingBelowRocketExplodes(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 720)
	toAtmosphere(t, s)

	evs := s.Resize(at(7000), 800, 30)
	if len(evs) != 1 || evs[0].Kind != EventMissionComplete {
		t.Fatalf("events = %v, want [mission complete]", kinds(evs))
	}
	if !evs[0].At.Equal(at(7000)) {
		t.Errorf("event stamped %v, want the resize clock %v", evs[0].At, at(7000))
	}
	if st := s.Snapshot(); !st.IsExploded {
		t.Fatal("not exploded after shrink")
	}

	// The latch never clears.
	s.Resize(at(7100), 800, 2000)
	if st := s.Snapshot(); !st.IsExploded {
		t.Error("explosion reverted after grow")
	}
}

func TestZeroViewportNeverExplodes(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 720)
	toAtmosphere(t, s)

	s.Resize(at(7000), 0, 0)
	press(s, at(9000), 100)
	if st := s.Snapshot(); st.IsExploded {
		t.Error("exploded against a zero-height viewport")
	}
}

func hasKind(evs []Event, k EventKind) bool {
	for _, ev := range evs {
		if ev.Kind == k {
			return true
		}
	}
	return false
}

func TestSimLogsTransitions(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 720)
	toAtmosphere(t, s)

	recent := s.RecentEvents(32)
	for _, k := range []EventKind{EventFullPower, EventLaunchScene, EventLiftoff, EventLaunchSuccess} {
		if !hasKind(recent, k) {
			t.Errorf("log missing %s", k)
		}
	}
	if hasKind(recent, EventMissionComplete) {
		t.Error("log has mission complete too early")
	}

	last := s.RecentEvents(1)
	if len(last) != 1 || last[0].Kind != EventLaunchSuccess {
		t.Fatalf("RecentEvents(1) = %v, want [launch success]", kinds(last))
	}
	// The copy is detached from the log.
	last[0].Kind = EventFullPower
	if got := s.RecentEvents(1); got[0].Kind != EventLaunchSuccess {
		t.Error("writing RecentEvents result changed the log")
	}
}

func TestConcurrentPressesAreNotLost(t *testing.T) {
	for _, n := range []int{20, 60} {
		s := NewSim(DefaultTuning(), 800, 600)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Advance(at(100))
			}()
		}
		wg.Wait()

		st := s.Snapshot()
		if want := math.Min(float64(2*n), 98); st.Power != want {
			t.Errorf("%d concurrent presses: power = %v, want %v", n, st.Power, want)
		}
		latches := 0
		for _, ev := range s.RecentEvents(32) {
			if ev.Kind == EventFullPower {
				latches++
			}
		}
		want := 0
		if 2*n >= 98 {
			want = 1
		}
		if latches != want {
			t.Errorf("%d concurrent presses: %d full power events, want %d", n, latches, want)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewSim(DefaultTuning(), 800, 600)
	st := s.Snapshot()
	st.Power = 99
	if s.Snapshot().Power != 0 {
		t.Error("writing a snapshot changed the sim")
	}
}
