package game

import (
	"context"
	"unicode/utf8"

	"github.com/f3rmion/findwords/internal/letters"
	"github.com/f3rmion/findwords/internal/selection"
	"github.com/f3rmion/findwords/internal/session"
)

// EventKind classifies an InputEvent.
type EventKind int

const (
	KeyPress EventKind = iota
	Enter
	Backspace
	Yes
	No
)

// InputEvent is a keystroke or button press after routing.
type InputEvent struct {
	Kind   EventKind
	Letter letters.Letter
}

// Router turns raw key names into events for the engine's current screen.
type Router struct {
	engine *Engine
}

// NewRouter returns a router reading e's screen and rack.
func NewRouter(e *Engine) Router {
	return Router{engine: e}
}

// Route maps a key name as reported by the terminal ("a", "enter",
// "backspace", ...) to an event. Keys that have no meaning on the current
// screen are dropped.
func (r Router) Route(key string) (InputEvent, bool) {
	e := r.engine
	switch key {
	case "enter":
		if e.screen == ScreenMenu {
			return InputEvent{}, false
		}
		return InputEvent{Kind: Enter}, true
	case "backspace":
		if e.screen != ScreenPlay {
			return InputEvent{}, false
		}
		return InputEvent{Kind: Backspace}, true
	}

	if utf8.RuneCountInString(key) != 1 {
		return InputEvent{}, false
	}
	rn, _ := utf8.DecodeRuneInString(key)
	l, ok := letters.Normalize(rn)
	if !ok {
		return InputEvent{}, false
	}

	switch e.screen {
	case ScreenChoose:
		if e.selection == nil || !e.selection.Accepts(l) {
			return InputEvent{}, false
		}
	case ScreenPlay:
		if !e.state.Rack.Contains(l) {
			return InputEvent{}, false
		}
	default:
		return InputEvent{}, false
	}
	return InputEvent{Kind: KeyPress, Letter: l}, true
}

// Tile maps the on-screen tile at index i to the event pressing it produces.
// Tiles are only pressable while playing.
func (r Router) Tile(i int) (InputEvent, bool) {
	e := r.engine
	if e.screen != ScreenPlay || i < 0 || i >= len(e.state.Rack) {
		return InputEvent{}, false
	}
	return InputEvent{Kind: KeyPress, Letter: e.state.Rack[i]}, true
}

// Handle dispatches ev to the letter selection machine or the submission
// pipeline. A returned Request with OutcomePending must be performed and
// handed back through Resolve.
func (e *Engine) Handle(ctx context.Context, ev InputEvent) (Request, Outcome) {
	switch e.screen {
	case ScreenChoose:
		e.handleChoose(ctx, ev)
		return Request{}, OutcomeNoOp
	case ScreenPlay:
		switch ev.Kind {
		case KeyPress:
			e.typeLetter(ev.Letter)
		case Backspace:
			e.backspace()
		case Enter:
			return e.Submit()
		}
	}
	return Request{}, OutcomeNoOp
}

// handleChoose stages letters and feeds them to the machine on Enter.
// Whatever happens, the staged letter is consumed.
func (e *Engine) handleChoose(ctx context.Context, ev InputEvent) {
	if e.selection == nil {
		return
	}

	var in selection.Input
	switch ev.Kind {
	case KeyPress:
		e.pending = ev.Letter
		return
	case Yes:
		in = selection.Yes
	case No:
		in = selection.No
	case Enter:
		if e.pending == 0 {
			return
		}
		in = e.stagedInput()
		e.pending = 0
	default:
		return
	}

	if e.selection.Feed(in) == selection.Finalized {
		e.finalizeChoose(ctx)
	}
}

// stagedInput reads S and N as answers while a yes/no decision is pending.
func (e *Engine) stagedInput() selection.Input {
	if e.selection.Phase().Kind == selection.AwaitingChangeDecision {
		switch e.pending {
		case 'S':
			return selection.Yes
		case 'N':
			return selection.No
		}
	}
	return selection.Letter(e.pending)
}

func (e *Engine) finalizeChoose(ctx context.Context) {
	rack := e.selection.Rack()
	_ = e.enterPlay(ctx, session.New(rack, session.ModeChoose), true)
}
