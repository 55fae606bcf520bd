// Package dictionary looks words up in an online or offline dictionary.
package dictionary

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the dictionary has no entry for the word.
	ErrNotFound = errors.New("word not found")
	// ErrUnavailable means the lookup could not be completed.
	ErrUnavailable = errors.New("dictionary unavailable")
)

// Result is the set of entries returned for one word.
type Result []Entry

// Entry is one headword, usually one per etymology.
type Entry struct {
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic,omitempty"`
	Meanings []Meaning `json:"meanings"`
}

// Meaning groups definitions that share a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single sense.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// Lookuper resolves a word to its definitions. Implementations are
// case-insensitive and return ErrNotFound or ErrUnavailable on failure.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (Result, error)
}

// LookupFunc adapts a function to Lookuper.
type LookupFunc func(ctx context.Context, word string) (Result, error)

// Lookup implements Lookuper.
func (f LookupFunc) Lookup(ctx context.Context, word string) (Result, error) {
	return f(ctx, word)
}

// Senses returns the number of definitions across all entries.
func (r Result) Senses() int {
	n := 0
	for _, e := range r {
		for _, m := range e.Meanings {
			n += len(m.Definitions)
		}
	}
	return n
}

// First returns the first definition text, or "".
func (r Result) First() string {
	for _, e := range r {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if d.Definition != "" {
					return d.Definition
				}
			}
		}
	}
	return ""
}
