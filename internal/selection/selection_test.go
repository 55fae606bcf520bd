package selection

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/findwords/internal/letters"
)

func feedWord(t *testing.T, m *Machine, s string) {
	t.Helper()
	for _, c := range s {
		require.Equal(t, Accepted, m.Feed(Letter(letters.Letter(c))), "letter %c", c)
	}
}

func TestCollectsSevenLettersWithVowel(t *testing.T) {
	t.Parallel()

	m := New()
	require.Equal(t, "Introduce the first letter", m.Prompt())
	feedWord(t, m, "CATXZB")
	require.Equal(t, Phase{Kind: AwaitingLetter, N: 7}, m.Phase())
	require.Equal(t, "Introduce the seventh letter", m.Prompt())

	require.Equal(t, Accepted, m.Feed(Letter('Q')))
	require.Equal(t, AwaitingChangeDecision, m.Phase().Kind)
	require.Equal(t, "Do you want to change a letter? (S / N)", m.Prompt())

	require.Equal(t, Finalized, m.Feed(No))
	require.True(t, m.Done())
	require.Equal(t, "CATXZBQ", m.Rack().String())
	require.NoError(t, letters.Validate(m.Rack()))
}

func TestRejectsDuplicatesAndNonLetters(t *testing.T) {
	t.Parallel()

	m := New()
	feedWord(t, m, "CA")
	before := m.Phase()

	require.Equal(t, Rejected, m.Feed(Letter('A')))
	require.Equal(t, Rejected, m.Feed(Letter('3')))
	require.Equal(t, Rejected, m.Feed(Yes))
	require.Equal(t, before, m.Phase())
	require.Equal(t, "CA", m.Rack().String())
}

func TestVowelRescue(t *testing.T) {
	t.Parallel()

	m := New()
	feedWord(t, m, "BCDFGHJ")
	require.Equal(t, AwaitingVowelRescue, m.Phase().Kind)
	require.Equal(t, "You must replace one letter with a vowel. Choose which letter to change", m.Prompt())

	// Letters outside the rack and yes/no are ignored.
	require.Equal(t, Rejected, m.Feed(Letter('A')))
	require.Equal(t, Rejected, m.Feed(No))
	require.Equal(t, AwaitingVowelRescue, m.Phase().Kind)

	require.Equal(t, Accepted, m.Feed(Letter('D')))
	require.Equal(t, AwaitingReplaceValue, m.Phase().Kind)
	require.True(t, m.Phase().VowelRequired)
	require.Equal(t, "You must replace it with a vowel", m.Prompt())

	// Consonant replacements are refused.
	require.Equal(t, Rejected, m.Feed(Letter('K')))
	require.Equal(t, AwaitingReplaceValue, m.Phase().Kind)

	require.Equal(t, Accepted, m.Feed(Letter('A')))
	require.Equal(t, AwaitingChangeDecision, m.Phase().Kind)
	require.Equal(t, "Do you want to change another letter? (S / N)", m.Prompt())

	require.Equal(t, Finalized, m.Feed(No))
	rack := m.Rack()
	require.Equal(t, "BCAFGHJ", rack.String())
	require.Equal(t, 1, rack.VowelCount())
	require.True(t, rack.Contains('A'))
}

func TestReplaceSoleVowelRequiresVowel(t *testing.T) {
	t.Parallel()

	m := New()
	feedWord(t, m, "CATXZBQ")
	require.Equal(t, Accepted, m.Feed(Yes))
	require.Equal(t, AwaitingReplaceTarget, m.Phase().Kind)

	require.Equal(t, Rejected, m.Feed(Letter('E')), "target must be in the rack")
	require.Equal(t, Accepted, m.Feed(Letter('A')))
	require.True(t, m.Phase().VowelRequired)
	before := m.Phase()

	require.Equal(t, Rejected, m.Feed(Letter('M')))
	require.Equal(t, before, m.Phase())
	require.Equal(t, "CATXZBQ", m.Rack().String())

	require.Equal(t, Rejected, m.Feed(Letter('C')), "replacement must be new")

	require.Equal(t, Accepted, m.Feed(Letter('O')))
	require.Equal(t, "COTXZBQ", m.Rack().String())
}

func TestReplaceConsonant(t *testing.T) {
	t.Parallel()

	m := New()
	feedWord(t, m, "CATXZBQ")
	require.Equal(t, Accepted, m.Feed(Yes))
	require.Equal(t, Accepted, m.Feed(Letter('X')))
	require.False(t, m.Phase().VowelRequired)
	require.Equal(t, "Introduce the new letter", m.Prompt())
	require.Equal(t, Accepted, m.Feed(Letter('Ñ')))
	require.Equal(t, "CATÑZBQ", m.Rack().String())
}

func TestDecisionIgnoresLetters(t *testing.T) {
	t.Parallel()

	m := New()
	feedWord(t, m, "CATXZBQ")
	require.Equal(t, Rejected, m.Feed(Letter('S')))
	require.Equal(t, AwaitingChangeDecision, m.Phase().Kind)
}

func TestDoneRejectsEverything(t *testing.T) {
	t.Parallel()

	m := New()
	feedWord(t, m, "CATXZBQ")
	require.Equal(t, Finalized, m.Feed(No))
	require.Equal(t, Rejected, m.Feed(Yes))
	require.Equal(t, Rejected, m.Feed(Letter('E')))
	require.False(t, m.Accepts('E'))
}

func TestAccepts(t *testing.T) {
	t.Parallel()

	m := New()
	require.True(t, m.Accepts('C'))
	feedWord(t, m, "CATXZBQ")
	require.True(t, m.Accepts('S'))
	require.True(t, m.Accepts('N'))
	require.False(t, m.Accepts('C'))

	m.Feed(Yes)
	require.True(t, m.Accepts('C'))
	require.False(t, m.Accepts('E'))

	m.Feed(Letter('C'))
	require.True(t, m.Accepts('E'))
	require.False(t, m.Accepts('A'))
}

// Random valid and invalid inputs must never finalize a rack that breaks the
// rack invariants.
func TestRandomWalkKeepsInvariant(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 99))
	alphabet := []rune(letters.Alphabet)

	for run := 0; run < 500; run++ {
		m := New()
		for step := 0; step < 400 && !m.Done(); step++ {
			var in Input
			switch rng.IntN(10) {
			case 0:
				in = Yes
			case 1:
				in = No
			default:
				in = Letter(letters.Letter(alphabet[rng.IntN(len(alphabet))]))
			}
			m.Feed(in)
			require.LessOrEqual(t, len(m.Rack()), letters.RackSize)
		}
		if m.Done() {
			require.NoError(t, letters.Validate(m.Rack()))
		}
	}
}
