package views

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/findwords/internal/dictionary"
	"github.com/f3rmion/findwords/internal/game"
)

// StartKind is a menu choice.
type StartKind int

const (
	StartRandom StartKind = iota
	StartChoose
	StartResume
)

// StartMsg asks the app to begin a game.
type StartMsg struct {
	Kind StartKind
}

// ResetMsg asks the app to forget the current session.
type ResetMsg struct{}

// LookupResultMsg carries a finished dictionary lookup.
type LookupResultMsg struct {
	Resolution game.Resolution
}

// CueExpiredMsg fires when a rejection cue may have run out.
type CueExpiredMsg struct {
	At time.Time
}

type clearCopiedMsg struct{}

// Lookup performs req in the background.
func Lookup(ctx context.Context, l dictionary.Lookuper, req game.Request) tea.Cmd {
	return func() tea.Msg {
		return LookupResultMsg{Resolution: game.Perform(ctx, l, req)}
	}
}

// ExpireCue fires a CueExpiredMsg after d.
func ExpireCue(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return CueExpiredMsg{At: t}
	})
}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

func reset() tea.Msg { return ResetMsg{} }

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if lineWidth+w+1 > width && lineWidth > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString(" ")
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
