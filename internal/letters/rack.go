package letters

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var (
	// ErrNotInRack is returned when replacing a letter the rack does not hold.
	ErrNotInRack = errors.New("letter not in rack")
	// ErrAlreadyInRack is returned when the replacement is already in the rack.
	ErrAlreadyInRack = errors.New("letter already in rack")
	// ErrLastVowel is returned when a replacement would leave the rack without vowels.
	ErrLastVowel = errors.New("cannot replace the last vowel with a consonant")
	// ErrInvalidLetter is returned for characters outside the alphabet.
	ErrInvalidLetter = errors.New("invalid letter")
)

// Rack is an ordered set of unique letters. A finalized rack has RackSize
// letters and at least one vowel.
type Rack []Letter

// GenerateRandom picks one vowel, fills the rack with distinct letters from
// A-Z and shuffles the result.
func GenerateRandom(r *rand.Rand) Rack {
	rack := make(Rack, 0, RackSize)
	rack = append(rack, Letter(Vowels[r.IntN(len(Vowels))]))

	for len(rack) < RackSize {
		l := Letter(randomAlphabet[r.IntN(len(randomAlphabet))])
		if !rack.Contains(l) {
			rack = append(rack, l)
		}
	}

	r.Shuffle(len(rack), func(i, j int) {
		rack[i], rack[j] = rack[j], rack[i]
	})
	return rack
}

// Contains reports whether l is in the rack.
func (r Rack) Contains(l Letter) bool {
	return r.Index(l) >= 0
}

// Index returns the position of l, or -1.
func (r Rack) Index(l Letter) int {
	for i, x := range r {
		if x == l {
			return i
		}
	}
	return -1
}

// VowelCount returns the number of vowels in the rack.
func (r Rack) VowelCount() int {
	n := 0
	for _, l := range r {
		if l.IsVowel() {
			n++
		}
	}
	return n
}

// HasVowel reports whether the rack holds at least one vowel.
func (r Rack) HasVowel() bool {
	return r.VowelCount() > 0
}

// Full reports whether the rack has RackSize letters.
func (r Rack) Full() bool {
	return len(r) >= RackSize
}

// Clone returns an independent copy.
func (r Rack) Clone() Rack {
	if r == nil {
		return nil
	}
	out := make(Rack, len(r))
	copy(out, r)
	return out
}

// Replace returns a copy of the rack with old substituted by repl at the same
// position. The receiver is never modified.
func (r Rack) Replace(old, repl Letter) (Rack, error) {
	if !repl.Valid() {
		return r, ErrInvalidLetter
	}
	idx := r.Index(old)
	if idx < 0 {
		return r, ErrNotInRack
	}
	if r.Contains(repl) {
		return r, ErrAlreadyInRack
	}
	if old.IsVowel() && !repl.IsVowel() && r.VowelCount() == 1 {
		return r, ErrLastVowel
	}

	out := r.Clone()
	out[idx] = repl
	return out, nil
}

// ContainsAll reports whether every letter of word is in the rack.
func (r Rack) ContainsAll(word string) bool {
	for _, c := range word {
		if !r.Contains(Letter(c)) {
			return false
		}
	}
	return true
}

// String returns the letters joined, e.g. "CATXZBQ".
func (r Rack) String() string {
	var sb strings.Builder
	for _, l := range r {
		sb.WriteRune(rune(l))
	}
	return sb.String()
}

// Strings returns each letter as its own string, the stored representation.
func (r Rack) Strings() []string {
	out := make([]string, len(r))
	for i, l := range r {
		out[i] = l.String()
	}
	return out
}

// FromStrings builds a rack from one-letter strings.
func FromStrings(ss []string) (Rack, error) {
	rack := make(Rack, 0, len(ss))
	for _, s := range ss {
		l, ok := Parse(s)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
		}
		rack = append(rack, l)
	}
	return rack, nil
}

// Validate checks the finalized-rack invariants: size, alphabet, uniqueness
// and at least one vowel.
func Validate(r Rack) error {
	if len(r) != RackSize {
		return fmt.Errorf("rack has %d letters, want %d", len(r), RackSize)
	}
	seen := make(map[Letter]bool, len(r))
	for _, l := range r {
		if !l.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidLetter, rune(l))
		}
		if seen[l] {
			return fmt.Errorf("duplicate letter %s", l)
		}
		seen[l] = true
	}
	if !r.HasVowel() {
		return fmt.Errorf("rack %s has no vowel", r)
	}
	return nil
}
