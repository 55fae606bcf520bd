// Package selection drives manual construction of a rack, one letter at a
// time, including the forced vowel rescue and optional replacements.
package selection

import (
	"fmt"

	"github.com/f3rmion/findwords/internal/letters"
)

// Kind names a step of manual rack construction.
type Kind int

const (
	AwaitingLetter         Kind = iota // collecting letter N
	AwaitingVowelRescue                // seven consonants: pick one to replace
	AwaitingChangeDecision             // S / N
	AwaitingReplaceTarget              // pick the letter to change
	AwaitingReplaceValue               // pick its replacement
	Done                               // rack finalized
)

func (k Kind) String() string {
	switch k {
	case AwaitingLetter:
		return "awaiting-letter"
	case AwaitingVowelRescue:
		return "awaiting-vowel-rescue"
	case AwaitingChangeDecision:
		return "awaiting-change-decision"
	case AwaitingReplaceTarget:
		return "awaiting-replace-target"
	case AwaitingReplaceValue:
		return "awaiting-replace-value"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Phase is the current step plus the data that step carries.
type Phase struct {
	Kind Kind

	// N is the 1-based index of the letter being collected (AwaitingLetter).
	N int

	// Target is the letter chosen for replacement (AwaitingReplaceValue).
	Target letters.Letter

	// VowelRequired is set when the replacement must be a vowel.
	VowelRequired bool

	// Changed is set once at least one replacement has been made.
	Changed bool
}

// InputKind distinguishes letters from the yes/no answers.
type InputKind int

const (
	InputLetter InputKind = iota
	InputYes
	InputNo
)

// Input is one submission to the machine.
type Input struct {
	Kind   InputKind
	Letter letters.Letter
}

// Letter wraps l as an Input.
func Letter(l letters.Letter) Input { return Input{Kind: InputLetter, Letter: l} }

// Yes and No are the answers to "change a letter?".
var (
	Yes = Input{Kind: InputYes}
	No  = Input{Kind: InputNo}
)

// Result reports what Feed did.
type Result int

const (
	Rejected  Result = iota // input ignored, nothing changed
	Accepted                // state advanced
	Finalized               // rack is complete and handed to play
)

func (r Result) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Finalized:
		return "finalized"
	default:
		return "rejected"
	}
}

var ordinals = [letters.RackSize]string{
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
}

// Machine is the manual selection state machine. The zero value is not
// usable; call New.
type Machine struct {
	rack  letters.Rack
	phase Phase
}

// New returns a machine awaiting the first letter.
func New() *Machine {
	return &Machine{
		rack:  make(letters.Rack, 0, letters.RackSize),
		phase: Phase{Kind: AwaitingLetter, N: 1},
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Rack returns a copy of the letters collected so far.
func (m *Machine) Rack() letters.Rack { return m.rack.Clone() }

// Done reports whether the rack has been finalized.
func (m *Machine) Done() bool { return m.phase.Kind == Done }

// Prompt returns the instruction shown for the current phase.
func (m *Machine) Prompt() string {
	p := m.phase
	switch p.Kind {
	case AwaitingLetter:
		return "Introduce the " + ordinals[p.N-1] + " letter"
	case AwaitingVowelRescue:
		return "You must replace one letter with a vowel. Choose which letter to change"
	case AwaitingChangeDecision:
		if p.Changed {
			return "Do you want to change another letter? (S / N)"
		}
		return "Do you want to change a letter? (S / N)"
	case AwaitingReplaceTarget:
		return "Introduce the letter you want to change"
	case AwaitingReplaceValue:
		if p.VowelRequired {
			return "You must replace it with a vowel"
		}
		return "Introduce the new letter"
	default:
		return ""
	}
}

// Accepts is the cheap membership filter used before a letter is staged as
// pending input. It mirrors the membership half of Feed's rules; Feed still
// applies the full rules.
func (m *Machine) Accepts(l letters.Letter) bool {
	if !l.Valid() {
		return false
	}
	switch m.phase.Kind {
	case AwaitingChangeDecision:
		return l == 'S' || l == 'N'
	case AwaitingVowelRescue, AwaitingReplaceTarget:
		return m.rack.Contains(l)
	case AwaitingLetter, AwaitingReplaceValue:
		return !m.rack.Contains(l)
	default:
		return false
	}
}

// Feed applies one input. Invalid input is silently rejected and leaves the
// machine unchanged.
func (m *Machine) Feed(in Input) Result {
	switch m.phase.Kind {
	case AwaitingLetter:
		return m.feedLetter(in)
	case AwaitingVowelRescue, AwaitingReplaceTarget:
		return m.feedTarget(in)
	case AwaitingChangeDecision:
		return m.feedDecision(in)
	case AwaitingReplaceValue:
		return m.feedValue(in)
	default:
		return Rejected
	}
}

func (m *Machine) feedLetter(in Input) Result {
	if in.Kind != InputLetter || !in.Letter.Valid() || m.rack.Contains(in.Letter) {
		return Rejected
	}

	m.rack = append(m.rack, in.Letter)
	if !m.rack.Full() {
		m.phase = Phase{Kind: AwaitingLetter, N: len(m.rack) + 1}
		return Accepted
	}

	if !m.rack.HasVowel() {
		m.phase = Phase{Kind: AwaitingVowelRescue}
		return Accepted
	}
	m.phase = Phase{Kind: AwaitingChangeDecision}
	return Accepted
}

func (m *Machine) feedTarget(in Input) Result {
	if in.Kind != InputLetter || !m.rack.Contains(in.Letter) {
		return Rejected
	}

	soleVowel := in.Letter.IsVowel() && m.rack.VowelCount() == 1
	m.phase = Phase{
		Kind:          AwaitingReplaceValue,
		Target:        in.Letter,
		VowelRequired: !m.rack.HasVowel() || soleVowel,
		Changed:       m.phase.Changed,
	}
	return Accepted
}

func (m *Machine) feedDecision(in Input) Result {
	switch in.Kind {
	case InputYes:
		m.phase = Phase{Kind: AwaitingReplaceTarget, Changed: m.phase.Changed}
		return Accepted
	case InputNo:
		m.phase = Phase{Kind: Done}
		return Finalized
	default:
		return Rejected
	}
}

func (m *Machine) feedValue(in Input) Result {
	if in.Kind != InputLetter {
		return Rejected
	}
	if !m.rack.HasVowel() && !in.Letter.IsVowel() {
		return Rejected
	}
	updated, err := m.rack.Replace(m.phase.Target, in.Letter)
	if err != nil {
		return Rejected
	}

	m.rack = updated
	m.phase = Phase{Kind: AwaitingChangeDecision, Changed: true}
	return Accepted
}
