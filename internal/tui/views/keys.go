package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/f3rmion/findwords/internal/letters"
)

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Random key.Binding
	Choose key.Binding
	Resume key.Binding
	Quit   key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Random, k.Choose, k.Resume, k.Quit}}
}

var menuKeys = menuKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
	Random: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random letters")),
	Choose: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "choose letters")),
	Resume: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "resume game")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

type chooseKeyMap struct {
	Letter key.Binding
	Enter  key.Binding
	Reset  key.Binding
}

func (k chooseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Letter, k.Enter, k.Reset}
}

func (k chooseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var chooseKeys = chooseKeyMap{
	Letter: key.NewBinding(key.WithKeys(letterKeys()...), key.WithHelp("a-z ñ", "pick letter")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
}

// letterKeys lists every alphabet letter in both cases.
func letterKeys() []string {
	keys := make([]string, 0, 2*len(letters.Alphabet))
	for _, r := range letters.Alphabet {
		keys = append(keys, strings.ToLower(string(r)), string(r))
	}
	return keys
}

type playKeyMap struct {
	Tile        key.Binding
	Submit      key.Binding
	Delete      key.Binding
	Clear       key.Binding
	PrevWord    key.Binding
	NextWord    key.Binding
	Definitions key.Binding
	Copy        key.Binding
	Reset       key.Binding
}

func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.NextWord, k.Definitions, k.Reset}
}

func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tile, k.Submit, k.Delete, k.Clear},
		{k.PrevWord, k.NextWord, k.Definitions, k.Copy, k.Reset},
	}
}

var playKeys = playKeyMap{
	Tile:        key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "press tile")),
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check word")),
	Delete:      key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
	Clear:       key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clean")),
	PrevWord:    key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "previous word")),
	NextWord:    key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next word")),
	Definitions: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "definitions")),
	Copy:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy definition")),
	Reset:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
}
