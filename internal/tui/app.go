package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/findwords/internal/dictionary"
	"github.com/f3rmion/findwords/internal/game"
	"github.com/f3rmion/findwords/internal/tui/views"
)

// AppModel is the top-level TUI model. The current screen follows the
// engine: menu, letter selection or play.
type AppModel struct {
	ctx    context.Context
	engine *game.Engine

	width  int
	height int
	ready  bool

	menuView   views.MenuModel
	chooseView views.ChooseModel
	playView   views.PlayModel

	showHelp bool
}

// NewApp creates the application around an initialized engine.
func NewApp(ctx context.Context, engine *game.Engine, l dictionary.Lookuper) AppModel {
	return AppModel{
		ctx:        ctx,
		engine:     engine,
		menuView:   views.NewMenuModel(engine),
		chooseView: views.NewChooseModel(ctx, engine),
		playView:   views.NewPlayModel(ctx, engine, l),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "q":
			if m.engine.Screen() == game.ScreenMenu {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		w, h := m.width-4, m.height-5
		m.menuView.SetSize(w, h)
		m.chooseView.SetSize(w, h)
		m.playView.SetSize(w, h)
		return m, nil

	case views.StartMsg:
		m.start(msg.Kind)
		return m, nil

	case views.ResetMsg:
		// Failures are shown on the menu; the in-memory session is gone either way.
		if err := m.engine.Reset(m.ctx); err != nil {
			m.menuView.SetError(err)
		}
		return m, nil

	case views.LookupResultMsg:
		switch m.engine.Resolve(m.ctx, msg.Resolution) {
		case game.OutcomeInvalid, game.OutcomeDuplicate:
			return m, views.ExpireCue(m.engine.CueDuration())
		}
		return m, nil

	case views.CueExpiredMsg:
		if m.engine.Tick(msg.At) {
			return m, nil
		}
		// A newer rejection pushed the deadline out.
		if cue := m.engine.Cue(); cue.Active() {
			return m, views.ExpireCue(max(cue.Deadline.Sub(msg.At), time.Millisecond))
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.engine.Screen() {
	case game.ScreenMenu:
		m.menuView, cmd = m.menuView.Update(msg)
	case game.ScreenChoose:
		m.chooseView, cmd = m.chooseView.Update(msg)
	case game.ScreenPlay:
		m.playView, cmd = m.playView.Update(msg)
	}
	return m, cmd
}

func (m *AppModel) start(kind views.StartKind) {
	var err error
	switch kind {
	case views.StartRandom:
		err = m.engine.StartRandom(m.ctx)
	case views.StartChoose:
		m.engine.StartChoose()
		m.chooseView = views.NewChooseModel(m.ctx, m.engine)
		m.chooseView.SetSize(m.width-4, m.height-5)
	case views.StartResume:
		err = m.engine.Resume(m.ctx)
	}
	// Storage errors after the game started are shown by the play view.
	if err != nil && m.engine.Screen() == game.ScreenMenu {
		m.menuView.SetError(err)
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.engine.Screen() {
	case game.ScreenMenu:
		content = m.menuView.View()
	case game.ScreenChoose:
		content = m.chooseView.View()
	case game.ScreenPlay:
		content = m.playView.View()
	}

	return ContentStyle.
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), content))
}

func (m AppModel) renderHeader() string {
	title := TitleStyle.Render("FIND WORDS")
	var mode string
	switch m.engine.Screen() {
	case game.ScreenChoose:
		mode = "choosing letters"
	case game.ScreenPlay:
		mode = string(m.engine.Mode()) + " letters"
	}
	if mode != "" {
		title += "  " + ModeStyle.Render(mode)
	}
	return HeaderStyle.Width(max(m.width-4, 0)).Render(title)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	var b strings.Builder
	row := func(k, desc string) {
		b.WriteString(HelpKeyStyle.Render(k) + HelpDescStyle.Render(desc) + "\n")
	}

	b.WriteString(HelpTitleStyle.Render("Find Words") + "\n\n")
	b.WriteString(HelpDescStyle.Render(strings.Join([]string{
		"Build words from the seven letters.",
		"Each new dictionary word adds to your count.",
	}, "\n")) + "\n")

	b.WriteString(HelpSectionStyle.Render("Anywhere") + "\n")
	row("?", "Show this help")
	row("esc", "Quit")

	b.WriteString(HelpSectionStyle.Render("Choosing letters") + "\n")
	row("a-z, ñ", "Pick a letter")
	row("enter", "Confirm the letter")
	row("s / n", "Answer yes / no")

	b.WriteString(HelpSectionStyle.Render("Playing") + "\n")
	row("letters", "Type a word")
	row("1-7", "Press a tile")
	row("enter", "Check the word")
	row("ctrl+l", "Clean the word")
	row("↑/↓ tab", "Browse found words")
	row("ctrl+d", "Show/hide definitions")
	row("ctrl+y", "Copy definitions")
	row("ctrl+r", "Reset the game")

	b.WriteString("\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(b.String()))
}
