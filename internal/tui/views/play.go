package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/findwords/internal/clipboard"
	"github.com/f3rmion/findwords/internal/dictionary"
	"github.com/f3rmion/findwords/internal/game"
)

// PlayModel is the word finding screen.
type PlayModel struct {
	ctx      context.Context
	engine   *game.Engine
	router   game.Router
	lookuper dictionary.Lookuper
	help     help.Model

	copied  bool
	copyErr error

	width  int
	height int
}

// NewPlayModel creates the play view.
func NewPlayModel(ctx context.Context, engine *game.Engine, l dictionary.Lookuper) PlayModel {
	return PlayModel{
		ctx:      ctx,
		engine:   engine,
		router:   game.NewRouter(engine),
		lookuper: l,
		help:     help.New(),
	}
}

// SetSize updates the view dimensions.
func (m *PlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (PlayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case clearCopiedMsg:
		m.copied = false
		m.copyErr = nil
	}
	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (PlayModel, tea.Cmd) {
	switch {
	case key.Matches(msg, playKeys.Reset):
		return m, reset
	case key.Matches(msg, playKeys.Clear):
		m.engine.Clear()
		return m, nil
	case key.Matches(msg, playKeys.Definitions):
		m.engine.ToggleDefinitions()
		return m, nil
	case key.Matches(msg, playKeys.Copy):
		return m.copyDefinition()
	case key.Matches(msg, playKeys.NextWord):
		return m, m.showWord(m.engine.Active() + 1)
	case key.Matches(msg, playKeys.PrevWord):
		return m, m.showWord(m.engine.Active() - 1)
	case key.Matches(msg, playKeys.Tile):
		i, _ := strconv.Atoi(msg.String())
		if ev, ok := m.router.Tile(i - 1); ok {
			m.engine.Handle(m.ctx, ev)
		}
		return m, nil
	}

	ev, ok := m.router.Route(msg.String())
	if !ok {
		return m, nil
	}
	req, out := m.engine.Handle(m.ctx, ev)
	return m, m.follow(req, out)
}

// follow turns an engine outcome into the command that completes it.
func (m PlayModel) follow(req game.Request, out game.Outcome) tea.Cmd {
	switch out {
	case game.OutcomePending:
		return Lookup(m.ctx, m.lookuper, req)
	case game.OutcomeDuplicate:
		return ExpireCue(m.engine.CueDuration())
	}
	return nil
}

// showWord selects the found word at i, wrapping around the list.
func (m PlayModel) showWord(i int) tea.Cmd {
	n := len(m.engine.Found())
	if n == 0 {
		return nil
	}
	i = (i%n + n) % n
	req, ok := m.engine.ShowWord(i)
	if !ok {
		return nil
	}
	return Lookup(m.ctx, m.lookuper, req)
}

func (m PlayModel) copyDefinition() (PlayModel, tea.Cmd) {
	defs, _ := m.engine.Definitions()
	text := plainDefinitions(defs)
	if text == "" {
		return m, nil
	}
	if err := clipboard.Write(text); err != nil {
		m.copyErr = err
	} else {
		m.copied = true
	}
	return m, clearCopiedAfter(2 * time.Second)
}

// View renders the play view.
func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(renderTiles(m.engine.Rack(), m.width, true))
	b.WriteString("\n")
	b.WriteString(m.renderWord())
	b.WriteString("\n")

	left := m.renderFound()
	if defs, shown := m.engine.Definitions(); shown {
		right := m.renderDefinitions(defs)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	} else {
		b.WriteString(left)
	}
	b.WriteString("\n")

	if err := m.engine.StorageErr(); err != nil {
		b.WriteString(errorStyle.Render("Progress not saved: " + err.Error()))
		b.WriteString("\n")
	}
	if m.copyErr != nil {
		b.WriteString(errorStyle.Render("Copy failed: " + m.copyErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(playKeys))
	return b.String()
}

func (m PlayModel) renderWord() string {
	word := m.engine.Word()
	if word == "" {
		word = " "
	}

	style := wordStyle
	if m.engine.Cue().Active() {
		style = wordRejectedStyle
	}
	line := style.Render(word)
	if m.engine.InFlight() {
		line = lipgloss.JoinHorizontal(lipgloss.Center, line, "  ", loadingStyle.Render("Checking..."))
	}
	return line
}

func (m PlayModel) renderFound() string {
	found := m.engine.Found()

	var lines []string
	lines = append(lines, countStyle.Render(fmt.Sprintf("%d words found", m.engine.Count())))
	lines = append(lines, "")

	// Keep the active word in view when the list is taller than the screen.
	maxRows := len(found)
	if m.height > 0 {
		maxRows = max(m.height-tileRows-14, 3)
	}
	start := 0
	if active := m.engine.Active(); active >= maxRows {
		start = active - maxRows + 1
	}

	for i := start; i < len(found) && i < start+maxRows; i++ {
		style := foundStyle
		if i == m.engine.Active() {
			style = foundActiveStyle
		}
		lines = append(lines, style.Render(found[i]))
	}
	return lipgloss.NewStyle().Width(20).Render(strings.Join(lines, "\n"))
}

func (m PlayModel) renderDefinitions(defs dictionary.Result) string {
	width := 60
	if m.width > 0 {
		width = min(width, m.width-30)
	}
	width = max(width, 20)

	var b strings.Builder
	header := subtitleStyle.Render("Definitions")
	if len(defs) > 0 {
		header = subtitleStyle.Render(strings.ToUpper(defs[0].Word))
		if defs[0].Phonetic != "" {
			header += "  " + exampleStyle.Render(defs[0].Phonetic)
		}
	}
	if m.copied {
		header += "  " + copiedStyle.Render("Copied!")
	}
	b.WriteString(header)
	b.WriteString("\n")

	for _, e := range defs {
		for _, mean := range e.Meanings {
			b.WriteString("\n")
			b.WriteString(partOfSpeechStyle.Render(mean.PartOfSpeech))
			b.WriteString("\n")
			for i, d := range mean.Definitions {
				b.WriteString(wordWrap(fmt.Sprintf("%d. %s", i+1, d.Definition), width-6))
				b.WriteString("\n")
				if d.Example != "" {
					b.WriteString(exampleStyle.Render(wordWrap("“"+d.Example+"”", width-6)))
					b.WriteString("\n")
				}
			}
		}
	}
	return boxStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// plainDefinitions formats defs for the clipboard.
func plainDefinitions(defs dictionary.Result) string {
	var b strings.Builder
	for _, e := range defs {
		fmt.Fprintf(&b, "%s\n", strings.ToUpper(e.Word))
		for _, mean := range e.Meanings {
			fmt.Fprintf(&b, "(%s)\n", mean.PartOfSpeech)
			for i, d := range mean.Definitions {
				fmt.Fprintf(&b, "  %d. %s\n", i+1, d.Definition)
			}
		}
	}
	return strings.TrimSpace(b.String())
}
