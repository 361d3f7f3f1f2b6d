package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-walk/internal/engine"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Right      key.Binding
	Slide      key.Binding
	Jump       key.Binding
	NewGame    key.Binding
	Focus      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Right, k.Jump, k.Slide, k.NewGame, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Right, k.Jump, k.Slide},
		{k.NewGame, k.Focus, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "run"),
		),
		Slide: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "k"),
			key.WithHelp("space", "jump"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("enter", "n"),
			key.WithHelp("enter", "new game"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next button"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Code translates a key message to the engine key code it stands for.
func (k KeyMap) Code(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Right):
		return engine.KeyArrowRight, true
	case key.Matches(msg, k.Slide):
		return engine.KeyArrowDown, true
	case key.Matches(msg, k.Jump):
		return engine.KeySpace, true
	}
	return "", false
}
