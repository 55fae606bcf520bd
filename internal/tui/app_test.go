package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/findwords/internal/dictionary"
	"github.com/f3rmion/findwords/internal/game"
	"github.com/f3rmion/findwords/internal/letters"
	"github.com/f3rmion/findwords/internal/session"
	"github.com/f3rmion/findwords/internal/store"
	"github.com/f3rmion/findwords/internal/tui/views"
)

func newTestApp(t *testing.T) (AppModel, *game.Engine) {
	t.Helper()
	ctx := context.Background()

	st := session.NewStore(store.NewMemory())
	rack, err := letters.FromStrings([]string{"C", "A", "T", "E", "R", "S", "P"})
	require.NoError(t, err)
	require.NoError(t, st.Persist(ctx, session.New(rack, session.ModeRandom)))

	dict := dictionary.NewFile()
	dict.Add(dictionary.Entry{Word: "cat", Meanings: []dictionary.Meaning{{
		PartOfSpeech: "noun",
		Definitions:  []dictionary.Definition{{Definition: "A small feline."}},
	}}})

	engine := game.NewEngine(st, game.WithCueDuration(10*time.Millisecond))
	require.NoError(t, engine.Init(ctx))

	var m tea.Model = NewApp(ctx, engine, dict)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(AppModel), engine
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func typeKeys(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	for _, r := range s {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestResumeAndSubmit(t *testing.T) {
	m, engine := newTestApp(t)
	require.Contains(t, m.View(), "Resume game")

	m, _ = send(t, m, views.StartMsg{Kind: views.StartResume})
	require.Equal(t, game.ScreenPlay, engine.Screen())

	m = typeKeys(t, m, "cat")
	require.Equal(t, "CAT", engine.Word())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, views.LookupResultMsg{}, msg)

	m, _ = send(t, m, msg)
	require.Equal(t, session.FoundWords{"CAT"}, engine.Found())
	require.Contains(t, m.View(), "1 words found")
	require.Contains(t, m.View(), "A small feline.")
}

func TestRejectedWordCue(t *testing.T) {
	m, engine := newTestApp(t)
	m, _ = send(t, m, views.StartMsg{Kind: views.StartResume})

	m = typeKeys(t, m, "tac")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cueCmd := send(t, m, cmd())
	require.NotNil(t, cueCmd)
	require.True(t, engine.Cue().Active())

	m, _ = send(t, m, views.CueExpiredMsg{At: engine.Cue().Deadline})
	require.False(t, engine.Cue().Active())
	require.Empty(t, engine.Word())
	require.Empty(t, engine.Found())
}

func TestTilesAndIgnoredKeys(t *testing.T) {
	m, engine := newTestApp(t)
	m, _ = send(t, m, views.StartMsg{Kind: views.StartResume})

	m = typeKeys(t, m, "21z")
	require.Equal(t, "AC", engine.Word())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "A", engine.Word())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	require.Empty(t, engine.Word())
}

func TestResetReturnsToMenu(t *testing.T) {
	m, engine := newTestApp(t)
	m, _ = send(t, m, views.StartMsg{Kind: views.StartResume})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	require.Equal(t, game.ScreenMenu, engine.Screen())
	require.NotContains(t, m.View(), "Resume game")
}

func TestChooseScreen(t *testing.T) {
	m, engine := newTestApp(t)
	m, _ = send(t, m, views.StartMsg{Kind: views.StartChoose})
	require.Equal(t, game.ScreenChoose, engine.Screen())
	require.Contains(t, m.View(), "Introduce the first letter")

	for _, r := range "aeioubc" {
		m = typeKeys(t, m, string(r))
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.Contains(t, m.View(), "Do you want to change a letter? (S / N)")

	m = typeKeys(t, m, "n")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, game.ScreenPlay, engine.Screen())
	require.Equal(t, "AEIOUBC", engine.Rack().String())
	require.Contains(t, m.View(), "choose letters")
}

func TestQuitOnlyFromMenu(t *testing.T) {
	m, _ := newTestApp(t)
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = send(t, m, views.StartMsg{Kind: views.StartResume})
	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.Nil(t, cmd)
}
