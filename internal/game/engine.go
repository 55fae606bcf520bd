// Package game ties rack construction, word submission and session
// persistence into one state machine driven by discrete input events.
//
// The engine never blocks: a submission that needs the dictionary returns a
// Request, the caller performs the lookup however it likes and hands the
// Resolution back. Every request is tagged with the session generation it was
// issued under so answers arriving after a reset are discarded.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/f3rmion/findwords/internal/dictionary"
	"github.com/f3rmion/findwords/internal/letters"
	"github.com/f3rmion/findwords/internal/selection"
	"github.com/f3rmion/findwords/internal/session"
)

// Screen is the top-level mode of the engine.
type Screen int

const (
	ScreenMenu   Screen = iota // choosing random / choose / resume
	ScreenChoose               // building the rack by hand
	ScreenPlay                 // rack finalized, finding words
)

func (s Screen) String() string {
	switch s {
	case ScreenChoose:
		return "choose"
	case ScreenPlay:
		return "play"
	default:
		return "menu"
	}
}

// DefaultCueDuration is how long a rejected word stays on screen.
const DefaultCueDuration = 400 * time.Millisecond

// Engine holds all mutable game state.
type Engine struct {
	store       *session.Store
	rng         *rand.Rand
	now         func() time.Time
	cueDuration time.Duration

	screen     Screen
	generation string
	resumable  bool

	state     session.State
	selection *selection.Machine
	pending   letters.Letter // staged letter while choosing, 0 if none

	word        []letters.Letter
	seq         uint64
	inFlight    *Request
	defineSeq   uint64
	active      int
	definitions dictionary.Result
	showDefs    bool
	cue         Cue

	storageErr error
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for random racks.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithCueDuration sets how long the rejection cue lasts.
func WithCueDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.cueDuration = d
		}
	}
}

// NewEngine returns an engine on the menu screen.
func NewEngine(store *session.Store, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:         time.Now,
		cueDuration: DefaultCueDuration,
		generation:  uuid.NewString(),
		active:      -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init checks storage for a resumable session.
func (e *Engine) Init(ctx context.Context) error {
	ok, err := e.store.HasResumable(ctx)
	if err != nil {
		return fmt.Errorf("checking stored session: %w", err)
	}
	e.resumable = ok
	return nil
}

// StartRandom deals a random rack and enters play.
func (e *Engine) StartRandom(ctx context.Context) error {
	e.beginGeneration()
	rack := letters.GenerateRandom(e.rng)
	return e.enterPlay(ctx, session.New(rack, session.ModeRandom), true)
}

// StartChoose begins manual rack construction.
func (e *Engine) StartChoose() {
	e.beginGeneration()
	e.selection = selection.New()
	e.screen = ScreenChoose
}

// Resume restores the stored session. A stored rack that cannot be used is
// cleared and session.ErrNoSession returned.
func (e *Engine) Resume(ctx context.Context) error {
	st, err := e.store.Load(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			log.Printf("game: discarding stored session: %v", err)
			_ = e.noteStorage(e.store.Clear(ctx))
			e.resumable = false
		}
		return err
	}

	e.beginGeneration()
	return e.enterPlay(ctx, st, false)
}

// Reset forgets the current session both in memory and in storage.
func (e *Engine) Reset(ctx context.Context) error {
	e.beginGeneration()
	e.screen = ScreenMenu
	e.state = session.State{}
	e.resumable = false

	if err := e.store.Clear(ctx); err != nil {
		e.storageErr = err
		return err
	}
	e.storageErr = nil
	return nil
}

// beginGeneration drops every piece of transient state and issues a new
// generation id, which invalidates outstanding requests.
func (e *Engine) beginGeneration() {
	e.generation = uuid.NewString()
	e.selection = nil
	e.pending = 0
	e.word = nil
	e.inFlight = nil
	e.active = -1
	e.definitions = nil
	e.showDefs = false
	e.cue = Cue{}
}

func (e *Engine) enterPlay(ctx context.Context, st session.State, persist bool) error {
	e.state = st
	e.selection = nil
	e.pending = 0
	e.screen = ScreenPlay
	e.resumable = true

	if persist {
		return e.noteStorage(e.store.Persist(ctx, e.state))
	}
	return nil
}

// noteStorage records a storage failure without interrupting play.
func (e *Engine) noteStorage(err error) error {
	if err != nil {
		log.Printf("game: storage write failed: %v", err)
	}
	e.storageErr = err
	return err
}

// Screen returns the current screen.
func (e *Engine) Screen() Screen { return e.screen }

// Generation returns the current session generation id.
func (e *Engine) Generation() string { return e.generation }

// Resumable reports whether a stored session can be resumed.
func (e *Engine) Resumable() bool { return e.resumable }

// Mode returns how the current rack was built.
func (e *Engine) Mode() session.Mode { return e.state.Mode }

// Rack returns the finalized rack while playing, or the partial rack while
// choosing.
func (e *Engine) Rack() letters.Rack {
	if e.screen == ScreenChoose && e.selection != nil {
		return e.selection.Rack()
	}
	return e.state.Rack.Clone()
}

// Found returns the accepted words in acceptance order.
func (e *Engine) Found() session.FoundWords { return e.state.Found.Clone() }

// Count returns the number of accepted words.
func (e *Engine) Count() int { return e.state.Count }

// State returns a copy of the session state.
func (e *Engine) State() session.State { return e.state.Clone() }

// Active returns the index of the selected found word, or -1.
func (e *Engine) Active() int { return e.active }

// Definitions returns the last definitions fetched and whether they are shown.
func (e *Engine) Definitions() (dictionary.Result, bool) {
	return e.definitions, e.showDefs
}

// ToggleDefinitions shows or hides the definitions panel.
func (e *Engine) ToggleDefinitions() {
	if e.definitions != nil {
		e.showDefs = !e.showDefs
	}
}

// Phase returns the selection phase; ok is false outside the choose screen.
func (e *Engine) Phase() (selection.Phase, bool) {
	if e.screen != ScreenChoose || e.selection == nil {
		return selection.Phase{}, false
	}
	return e.selection.Phase(), true
}

// Prompt returns the selection prompt text, or "" outside the choose screen.
func (e *Engine) Prompt() string {
	if e.screen != ScreenChoose || e.selection == nil {
		return ""
	}
	return e.selection.Prompt()
}

// PendingLetter returns the staged letter while choosing.
func (e *Engine) PendingLetter() (letters.Letter, bool) {
	return e.pending, e.pending != 0
}

// Word returns the word being typed.
func (e *Engine) Word() string {
	return letters.Rack(e.word).String()
}

// InFlight reports whether a submission lookup is outstanding.
func (e *Engine) InFlight() bool { return e.inFlight != nil }

// Cue returns the current rejection cue.
func (e *Engine) Cue() Cue { return e.cue }

// StorageErr returns the last storage write error, if any.
func (e *Engine) StorageErr() error { return e.storageErr }
