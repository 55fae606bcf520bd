package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/f3rmion/findwords/internal/game"
)

type menuItem struct {
	label string
	kind  StartKind
}

// MenuModel is the game mode selection screen.
type MenuModel struct {
	engine   *game.Engine
	selected int
	help     help.Model
	err      error
	width    int
}

// NewMenuModel creates the menu.
func NewMenuModel(engine *game.Engine) MenuModel {
	return MenuModel{engine: engine, help: help.New()}
}

// SetSize updates the view dimensions.
func (m *MenuModel) SetSize(width, _ int) {
	m.width = width
	m.help.Width = width
}

// SetError shows err under the menu, e.g. when a resume failed.
func (m *MenuModel) SetError(err error) {
	m.err = err
}

// items lists the choices. Resume only appears when a stored game exists.
func (m MenuModel) items() []menuItem {
	items := []menuItem{
		{label: "Random letters", kind: StartRandom},
		{label: "Choose letters", kind: StartChoose},
	}
	if m.engine.Resumable() {
		items = append(items, menuItem{label: "Resume game", kind: StartResume})
	}
	return items
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	items := m.items()
	if m.selected >= len(items) {
		m.selected = len(items) - 1
	}

	start := func(kind StartKind) tea.Cmd {
		return func() tea.Msg { return StartMsg{Kind: kind} }
	}

	switch {
	case key.Matches(keyMsg, menuKeys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, menuKeys.Down):
		if m.selected < len(items)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, menuKeys.Select):
		return m, start(items[m.selected].kind)
	case key.Matches(keyMsg, menuKeys.Random):
		return m, start(StartRandom)
	case key.Matches(keyMsg, menuKeys.Choose):
		return m, start(StartChoose)
	case key.Matches(keyMsg, menuKeys.Resume):
		if m.engine.Resumable() {
			return m, start(StartResume)
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Make as many words as you can from seven letters."))
	b.WriteString("\n\n")

	for i, item := range m.items() {
		style := menuItemStyle
		if i == m.selected {
			style = menuItemActiveStyle
		}
		b.WriteString(style.Render(item.label))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(menuKeys))
	return b.String()
}
