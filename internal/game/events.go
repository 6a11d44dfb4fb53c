package game

import (
	"fmt"
	"time"
)

// EventKind identifies a scene or sub-phase transition.
type EventKind uint8

const (
	EventFullPower       EventKind = iota // power latch set
	EventLaunchScene                      // power → launch
	EventLiftoff                          // first accepted thrust press
	EventLaunchSuccess                    // shake saturated, launch → atmosphere
	EventAtmosphereBreak                  // first accepted altitude press
	EventMissionComplete                  // exploded latch set
)

var eventNames = map[EventKind]string{
	EventFullPower:       "full power",
	EventLaunchScene:     "launch scene",
	EventLiftoff:         "liftoff",
	EventLaunchSuccess:   "launch success",
	EventAtmosphereBreak: "atmosphere break",
	EventMissionComplete: "mission complete",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single transition, stamped with the clock value that caused it.
type Event struct {
	Kind EventKind
	At   time.Time
}

func (e Event) String() string {
	return fmt.Sprintf("%s @ %s", e.Kind, e.At.Format("15:04:05.000"))
}

// EventLog is a bounded FIFO of transition events.
type EventLog struct {
	Events  []Event
	maxSize int
}

// NewEventLog creates a log that keeps the most recent maxSize events.
func NewEventLog(maxSize int) *EventLog {
	return &EventLog{
		Events:  make([]Event, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add appends events, evicting the oldest when full.
func (l *EventLog) Add(evs ...Event) {
	if l.maxSize <= 0 {
		return
	}
	for _, ev := range evs {
		if len(l.Events) >= l.maxSize {
			copy(l.Events, l.Events[1:])
			l.Events[len(l.Events)-1] = ev
		} else {
			l.Events = append(l.Events, ev)
		}
	}
}

// Recent returns the last n events (or fewer if the log is shorter).
func (l *EventLog) Recent(n int) []Event {
	n = max(0, min(n, len(l.Events)))
	return l.Events[len(l.Events)-n:]
}
