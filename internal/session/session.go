// Package session holds the persisted unit of a play-through and writes it
// through to a key/value store.
package session

import (
	"github.com/f3rmion/findwords/internal/letters"
)

// Mode records how the rack was built.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeChoose Mode = "choose"
)

// FoundWords is the insertion-ordered list of accepted words. Words are
// unique by exact string equality.
type FoundWords []string

// Contains reports whether w has already been found.
func (f FoundWords) Contains(w string) bool {
	for _, x := range f {
		if x == w {
			return true
		}
	}
	return false
}

// Add appends w unless it is already present and reports whether it was added.
func (f *FoundWords) Add(w string) bool {
	if f.Contains(w) {
		return false
	}
	*f = append(*f, w)
	return true
}

// Clone returns an independent copy, never nil.
func (f FoundWords) Clone() FoundWords {
	out := make(FoundWords, len(f))
	copy(out, f)
	return out
}

// State is one play-through: the rack, the words found so far and their count.
type State struct {
	Rack  letters.Rack
	Found FoundWords
	Count int
	Mode  Mode
}

// New returns a fresh state for a finalized rack.
func New(rack letters.Rack, mode Mode) State {
	return State{
		Rack:  rack.Clone(),
		Found: FoundWords{},
		Mode:  mode,
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	s.Rack = s.Rack.Clone()
	s.Found = s.Found.Clone()
	return s
}
