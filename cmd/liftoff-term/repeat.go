package main

import "time"

// repeatGap is the shortest gap between two advance key events that still
// counts as a new press. tcell reports no key release, and terminal
// autorepeat sends 25-40 events a second while a key is held, so anything
// closer together than this is the same held key. Mashing by hand stays
// well under 15 presses a second.
const repeatGap = 60 * time.Millisecond

// pressFilter turns the terminal's key event stream back into discrete
// presses.
type pressFilter struct {
	gap  time.Duration
	last time.Time
}

// accept reports whether an advance event at now is a fresh press. Every
// event restarts the gap, accepted or not, so a held key keeps being
// rejected for as long as its repeats keep coming.
func (f *pressFilter) accept(now time.Time) bool {
	fresh := f.last.IsZero() || now.Sub(f.last) >= f.gap
	f.last = now
	return fresh
}
