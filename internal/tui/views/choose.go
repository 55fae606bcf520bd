package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/findwords/internal/game"
)

// ChooseModel is the manual letter selection screen.
type ChooseModel struct {
	ctx    context.Context
	engine *game.Engine
	router game.Router
	input  textinput.Model
	help   help.Model
	width  int
}

// NewChooseModel creates the selection view.
func NewChooseModel(ctx context.Context, engine *game.Engine) ChooseModel {
	ti := textinput.New()
	ti.Placeholder = "?"
	ti.CharLimit = 1
	ti.Width = 3
	ti.Prompt = "› "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	ti.Focus()

	return ChooseModel{
		ctx:    ctx,
		engine: engine,
		router: game.NewRouter(engine),
		input:  ti,
		help:   help.New(),
	}
}

// SetSize updates the view dimensions.
func (m *ChooseModel) SetSize(width, _ int) {
	m.width = width
	m.help.Width = width
}

// Update handles messages. Keys go through the router, so the input field
// only ever shows a letter the current phase can accept.
func (m ChooseModel) Update(msg tea.Msg) (ChooseModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if key.Matches(keyMsg, chooseKeys.Reset) {
		return m, reset
	}

	if key.Matches(keyMsg, chooseKeys.Letter, chooseKeys.Enter) {
		if ev, ok := m.router.Route(keyMsg.String()); ok {
			m.engine.Handle(m.ctx, ev)
		}
	}

	m.input.SetValue("")
	if l, ok := m.engine.PendingLetter(); ok {
		m.input.SetValue(l.String())
	}
	return m, nil
}

// View renders the selection view.
func (m ChooseModel) View() string {
	var b strings.Builder

	b.WriteString(renderTiles(m.engine.Rack(), m.width, false))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(m.engine.Prompt()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(chooseKeys))
	return b.String()
}
