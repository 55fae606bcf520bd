package game

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/f3rmion/findwords/internal/dictionary"
	"github.com/f3rmion/findwords/internal/letters"
)

// Outcome is the result of a submission step.
type Outcome int

const (
	OutcomeNoOp      Outcome = iota // nothing to do
	OutcomePending                  // lookup issued
	OutcomeAccepted                 // word added to the found list
	OutcomeDuplicate                // word already found
	OutcomeInvalid                  // dictionary rejected or unreachable
	OutcomeBusy                     // a lookup is already in flight
	OutcomeStale                    // response for an abandoned request
	OutcomeDefined                  // definitions refreshed for a found word
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeBusy:
		return "busy"
	case OutcomeStale:
		return "stale"
	case OutcomeDefined:
		return "defined"
	default:
		return "noop"
	}
}

// RequestKind tells Resolve what a lookup was for.
type RequestKind int

const (
	RequestSubmit RequestKind = iota
	RequestDefine
)

// Request is a dictionary lookup the caller must perform.
type Request struct {
	Kind       RequestKind
	Word       string
	Generation string
	Seq        uint64
}

// Resolution carries the answer to a Request back into the engine.
type Resolution struct {
	Request Request
	Result  dictionary.Result
	Err     error
}

// Perform runs req against l.
func Perform(ctx context.Context, l dictionary.Lookuper, req Request) Resolution {
	res, err := l.Lookup(ctx, req.Word)
	return Resolution{Request: req, Result: res, Err: err}
}

// normalizeWord trims and uppercases a typed word.
func normalizeWord(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// Submit validates the pending word and, when it needs the dictionary,
// returns the lookup to perform. Only one submission lookup may be in flight;
// while it is, Submit returns OutcomeBusy and leaves the pending word alone.
func (e *Engine) Submit() (Request, Outcome) {
	if e.screen != ScreenPlay {
		return Request{}, OutcomeNoOp
	}

	word := normalizeWord(e.Word())
	if word == "" {
		return Request{}, OutcomeNoOp
	}
	if e.inFlight != nil {
		return Request{}, OutcomeBusy
	}
	if e.state.Found.Contains(word) {
		e.reject()
		return Request{}, OutcomeDuplicate
	}

	e.seq++
	req := Request{
		Kind:       RequestSubmit,
		Word:       word,
		Generation: e.generation,
		Seq:        e.seq,
	}
	e.inFlight = &req
	return req, OutcomePending
}

// ShowWord selects the i-th found word and returns the lookup that refreshes
// its definitions. ok is false if i is out of range.
func (e *Engine) ShowWord(i int) (Request, bool) {
	if e.screen != ScreenPlay || i < 0 || i >= len(e.state.Found) {
		return Request{}, false
	}
	e.active = i
	e.seq++
	e.defineSeq = e.seq
	return Request{
		Kind:       RequestDefine,
		Word:       e.state.Found[i],
		Generation: e.generation,
		Seq:        e.seq,
	}, true
}

// Clear empties the pending word.
func (e *Engine) Clear() {
	if e.screen == ScreenPlay {
		e.word = nil
	}
}

// Resolve applies a finished lookup. Responses issued under an earlier
// generation, or superseded by a newer request, change nothing.
func (e *Engine) Resolve(ctx context.Context, r Resolution) Outcome {
	req := r.Request
	if req.Generation != e.generation || e.screen != ScreenPlay {
		log.Printf("game: dropping stale lookup for %q", req.Word)
		return OutcomeStale
	}

	if req.Kind == RequestDefine {
		return e.resolveDefine(r)
	}

	if e.inFlight == nil || e.inFlight.Seq != req.Seq {
		log.Printf("game: dropping superseded lookup for %q", req.Word)
		return OutcomeStale
	}
	e.inFlight = nil

	if r.Err != nil || len(r.Result) == 0 {
		err := r.Err
		if err == nil {
			err = dictionary.ErrNotFound
		}
		if !errors.Is(err, dictionary.ErrNotFound) {
			log.Printf("game: lookup %q: %v", req.Word, err)
		}
		e.reject()
		return OutcomeInvalid
	}

	if !e.state.Found.Add(req.Word) {
		e.reject()
		return OutcomeDuplicate
	}
	e.state.Count++
	e.word = nil
	e.cue = Cue{}
	e.active = len(e.state.Found) - 1
	e.definitions = r.Result
	e.showDefs = true
	e.defineSeq = req.Seq

	_ = e.noteStorage(e.store.PersistFound(ctx, e.state.Found, e.state.Count))
	return OutcomeAccepted
}

func (e *Engine) resolveDefine(r Resolution) Outcome {
	if r.Request.Seq != e.defineSeq {
		return OutcomeStale
	}
	if r.Err != nil || len(r.Result) == 0 {
		log.Printf("game: definitions for %q: %v", r.Request.Word, r.Err)
		return OutcomeNoOp
	}
	e.definitions = r.Result
	e.showDefs = true
	return OutcomeDefined
}

// typeLetter appends l to the pending word if it belongs to the rack.
func (e *Engine) typeLetter(l letters.Letter) bool {
	if !e.state.Rack.Contains(l) {
		return false
	}
	e.word = append(e.word, l)
	return true
}

func (e *Engine) backspace() bool {
	if len(e.word) == 0 {
		return false
	}
	e.word = e.word[:len(e.word)-1]
	return true
}
