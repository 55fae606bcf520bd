package game

import "time"

// CueState is the visual state of the word input.
type CueState int

const (
	CueNormal CueState = iota
	CueRejected
)

// Cue is a timed rejection highlight on the word input.
type Cue struct {
	State    CueState
	Deadline time.Time
}

// Active reports whether the cue is showing a rejection.
func (c Cue) Active() bool { return c.State == CueRejected }

func (e *Engine) reject() {
	e.cue = Cue{State: CueRejected, Deadline: e.now().Add(e.cueDuration)}
}

// CueDuration returns how long a rejection stays visible.
func (e *Engine) CueDuration() time.Duration { return e.cueDuration }

// Tick expires the rejection cue. Once the deadline has passed the pending
// word is cleared and the cue returns to normal. It reports whether anything
// changed; ticks after a reset or outside play change nothing.
func (e *Engine) Tick(now time.Time) bool {
	if !e.cue.Active() || now.Before(e.cue.Deadline) {
		return false
	}
	e.cue = Cue{}
	if e.screen == ScreenPlay {
		e.word = nil
	}
	return true
}
