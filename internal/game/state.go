package game

import "time"

// Scene is the top-level phase of a play-through.
type Scene uint8

const (
	ScenePower Scene = iota
	SceneLaunch
	SceneAtmosphere
)

func (s Scene) String() string {
	switch s {
	case ScenePower:
		return "power"
	case SceneLaunch:
		return "launch"
	case SceneAtmosphere:
		return "atmosphere"
	default:
		return "unknown"
	}
}

// Tuning holds the gameplay constants. The zero value is not usable;
// start from DefaultTuning.
type Tuning struct {
	PowerStep      float64       // power added per press
	PowerMax       float64       // power saturates here
	FullPower      float64       // latch threshold
	HighPower      float64       // warning band threshold
	FullPowerDelay time.Duration // latch → launch scene

	LaunchCountdown time.Duration // launch entry → thrust accepted
	ClimbStep       float64       // rocket rise per thrust press
	ShakeStep       float64       // shake added per thrust press
	ShakeMax        float64       // saturation triggers success
	ShakeDecay      float64       // shake removed per decay interval
	DecayInterval   time.Duration

	AtmospherePrepare time.Duration // atmosphere entry → altitude accepted
	AltitudeStep      float64       // rocket rise per press in atmosphere
}

// DefaultTuning returns the stock game constants.
func DefaultTuning() Tuning {
	return Tuning{
		PowerStep:      2,
		PowerMax:       100,
		FullPower:      98,
		HighPower:      80,
		FullPowerDelay: 3000 * time.Millisecond,

		LaunchCountdown: 3000 * time.Millisecond,
		ClimbStep:       1,
		ShakeStep:       0.2,
		ShakeMax:        8,
		ShakeDecay:      0.03,
		DecayInterval:   50 * time.Millisecond,

		AtmospherePrepare: 3000 * time.Millisecond,
		AltitudeStep:      15,
	}
}

// State is the whole mutable game aggregate. Sim replaces it wholesale on
// every transition; callers only ever see copies.
type State struct {
	Scene Scene

	Power            float64
	FullPowerReached bool
	FullPowerAt      time.Time

	LaunchStartAt time.Time
	IsLaunching   bool
	RocketY       float64
	Shake         float64

	IsLaunchSuccess   bool
	AtmosphereStartAt time.Time
	IsExploded        bool

	// Pending deadlines. Zero means disarmed.
	launchDue time.Time
	nextDecay time.Time

	ascending bool // first altitude press has landed
}

// PowerPhase is the sub-phase of the power scene.
type PowerPhase uint8

const (
	PowerCharging PowerPhase = iota
	PowerCharged             // latched, waiting for the launch scene
)

// LaunchPhase is the sub-phase of the launch scene.
type LaunchPhase uint8

const (
	LaunchCountdown LaunchPhase = iota // 3-2-1, thrust ignored
	LaunchReady                        // countdown over, no thrust yet
	LaunchThrust                       // player is mashing
	LaunchSuccess
)

// AtmospherePhase is the sub-phase of the atmosphere scene.
type AtmospherePhase uint8

const (
	AtmospherePrepare AtmospherePhase = iota // still on the pad, flash + countdown
	AtmosphereAscent
	AtmosphereComplete
)

// PowerPhase reports the current power sub-phase.
func (st State) PowerPhase() PowerPhase {
	if st.FullPowerReached {
		return PowerCharged
	}
	return PowerCharging
}

// LaunchPhase reports the launch sub-phase at now.
func (st State) LaunchPhase(now time.Time, t Tuning) LaunchPhase {
	switch {
	case st.IsLaunchSuccess:
		return LaunchSuccess
	case st.IsLaunching:
		return LaunchThrust
	case now.Sub(st.LaunchStartAt) >= t.LaunchCountdown:
		return LaunchReady
	default:
		return LaunchCountdown
	}
}

// AtmospherePhase reports the atmosphere sub-phase at now.
func (st State) AtmospherePhase(now time.Time, t Tuning) AtmospherePhase {
	switch {
	case st.IsExploded:
		return AtmosphereComplete
	case now.Sub(st.AtmosphereStartAt) >= t.AtmospherePrepare:
		return AtmosphereAscent
	default:
		return AtmospherePrepare
	}
}

// FullPowerCountdown returns the whole seconds left before the launch
// scene, rounded up. Zero when not latched.
func (st State) FullPowerCountdown(now time.Time, t Tuning) int {
	if !st.FullPowerReached {
		return 0
	}
	return secondsLeft(st.FullPowerAt.Add(t.FullPowerDelay), now)
}

// LaunchCountdownLeft returns the 3-2-1 value shown before thrust is
// accepted. Zero once the countdown is over.
func (st State) LaunchCountdownLeft(now time.Time, t Tuning) int {
	return secondsLeft(st.LaunchStartAt.Add(t.LaunchCountdown), now)
}

// AtmosphereCountdownLeft returns the seconds left in the prepare sub-phase.
func (st State) AtmosphereCountdownLeft(now time.Time, t Tuning) int {
	return secondsLeft(st.AtmosphereStartAt.Add(t.AtmospherePrepare), now)
}

func secondsLeft(deadline, now time.Time) int {
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// LayerNames is the ordered list of atmosphere layers, lowest first.
var LayerNames = []string{
	"TROPOSPHERE",
	"STRATOSPHERE",
	"MESOSPHERE",
	"THERMOSPHERE",
	"EXOSPHERE",
	"DEEP SPACE",
}

// Altitude returns RocketY as a fraction of the viewport height, clamped
// to [0,1].
func (st State) Altitude(viewH float64) float64 {
	if viewH <= 0 {
		return 0
	}
	return clamp(st.RocketY/viewH, 0, 1)
}

// LayerName picks the atmosphere layer for the current altitude.
func (st State) LayerName(viewH float64) string {
	if st.IsExploded {
		return LayerNames[len(LayerNames)-1]
	}
	i := int(st.Altitude(viewH) * float64(len(LayerNames)))
	if i >= len(LayerNames) {
		i = len(LayerNames) - 1
	}
	return LayerNames[i]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
