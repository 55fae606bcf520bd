package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/f3rmion/findwords/internal/letters"
	"github.com/f3rmion/findwords/internal/store"
)

// Storage keys.
const (
	KeyRack  = "letters"
	KeyWords = "words"
	KeyCount = "cont"
	KeyMode  = "mode"
)

// ErrNoSession is returned by Load when there is no usable stored rack.
var ErrNoSession = errors.New("no stored session")

// Store persists a State field by field.
type Store struct {
	kv store.KV
}

// NewStore wraps kv.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Persist writes every field of st.
func (s *Store) Persist(ctx context.Context, st State) error {
	if err := s.PersistRack(ctx, st.Rack, st.Mode); err != nil {
		return err
	}
	return s.PersistFound(ctx, st.Found, st.Count)
}

// PersistRack writes the rack and how it was built.
func (s *Store) PersistRack(ctx context.Context, rack letters.Rack, mode Mode) error {
	if err := s.setJSON(ctx, KeyRack, rack.Strings()); err != nil {
		return err
	}
	if mode == "" {
		mode = ModeRandom
	}
	return s.kv.Set(ctx, KeyMode, string(mode))
}

// PersistFound writes the found words and their count.
func (s *Store) PersistFound(ctx context.Context, found FoundWords, count int) error {
	if found == nil {
		found = FoundWords{}
	}
	if err := s.setJSON(ctx, KeyWords, []string(found)); err != nil {
		return err
	}
	return s.kv.Set(ctx, KeyCount, strconv.Itoa(count))
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, string(data))
}

// HasResumable reports whether a rack entry exists.
func (s *Store) HasResumable(ctx context.Context) (bool, error) {
	v, err := s.kv.Get(ctx, KeyRack)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(v) != "", nil
}

// Load reconstructs the stored state. The rack is required; the other fields
// fall back to empty values when absent or malformed.
func (s *Store) Load(ctx context.Context) (State, error) {
	raw, err := s.kv.Get(ctx, KeyRack)
	if errors.Is(err, store.ErrNotFound) {
		return State{}, ErrNoSession
	}
	if err != nil {
		return State{}, fmt.Errorf("loading rack: %w", err)
	}

	var rackStrs []string
	if err := json.Unmarshal([]byte(raw), &rackStrs); err != nil {
		return State{}, fmt.Errorf("%w: malformed rack: %v", ErrNoSession, err)
	}
	rack, err := letters.FromStrings(rackStrs)
	if err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	if err := letters.Validate(rack); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	st := State{
		Rack:  rack,
		Found: s.loadFound(ctx),
		Count: s.loadCount(ctx),
		Mode:  s.loadMode(ctx),
	}
	return st, nil
}

func (s *Store) loadFound(ctx context.Context) FoundWords {
	raw, err := s.kv.Get(ctx, KeyWords)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("session: reading words: %v", err)
		}
		return FoundWords{}
	}

	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		log.Printf("session: discarding malformed words %q: %v", raw, err)
		return FoundWords{}
	}

	found := FoundWords{}
	for _, w := range words {
		found.Add(strings.ToUpper(strings.TrimSpace(w)))
	}
	return found
}

func (s *Store) loadCount(ctx context.Context) int {
	raw, err := s.kv.Get(ctx, KeyCount)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		log.Printf("session: discarding malformed count %q", raw)
		return 0
	}
	return n
}

func (s *Store) loadMode(ctx context.Context) Mode {
	raw, err := s.kv.Get(ctx, KeyMode)
	if err != nil {
		return ModeRandom
	}
	switch m := Mode(raw); m {
	case ModeRandom, ModeChoose:
		return m
	default:
		return ModeRandom
	}
}

// Clear removes every session key at once.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyRack, KeyWords, KeyCount, KeyMode); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
