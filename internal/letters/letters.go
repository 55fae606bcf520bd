// Package letters holds the alphabet, vowel rules and the seven-letter rack.
package letters

import (
	"strings"
	"unicode"
)

// Letter is a single uppercase letter of the game alphabet.
type Letter rune

// RackSize is the number of letters in a finalized rack.
const RackSize = 7

const (
	// randomAlphabet is the pool for random racks.
	randomAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Alphabet is every letter a player may type, including the extended Ñ.
	Alphabet = randomAlphabet + "Ñ"
	// Vowels is the fixed vowel set.
	Vowels = "AEIOU"
)

// String returns the letter as a one-character string.
func (l Letter) String() string {
	return string(rune(l))
}

// IsVowel reports whether l is one of A, E, I, O, U.
func (l Letter) IsVowel() bool {
	return strings.ContainsRune(Vowels, rune(l))
}

// Valid reports whether l belongs to the game alphabet.
func (l Letter) Valid() bool {
	return strings.ContainsRune(Alphabet, rune(l))
}

// Normalize uppercases r and reports whether the result is in the alphabet.
func Normalize(r rune) (Letter, bool) {
	l := Letter(unicode.ToUpper(r))
	if !l.Valid() {
		return 0, false
	}
	return l, true
}

// Parse accepts a single-letter string such as "a" or "Ñ".
func Parse(s string) (Letter, bool) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 1 {
		return 0, false
	}
	return Normalize(runes[0])
}
