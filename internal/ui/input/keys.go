package input

import (
	"github.com/charmbracelet/bubbles/key"

	"pokesearch/internal/ui/input/modes"
)

// KeyMap lists every binding the input modes react to
type KeyMap struct {
	Submit     key.Binding
	Activate   key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	Clear      key.Binding
	Help       key.Binding
	HelpAlt    key.Binding
	Raw        key.Binding
	Background key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Close      key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Activate:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "press search")),
		NextFocus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear query")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		HelpAlt:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Raw:        key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "raw json")),
		Background: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "background")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Close:      key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("esc", "close")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k KeyMap) bindings() modes.Bindings {
	return modes.Bindings(k)
}

// ShortHelpFor returns the footer bindings for a mode
func (k KeyMap) ShortHelpFor(buttonFocused bool) []key.Binding {
	if buttonFocused {
		return []key.Binding{k.Activate, k.NextFocus, k.Raw, k.Background, k.Help, k.Quit}
	}
	return []key.Binding{k.Submit, k.NextFocus, k.Clear, k.HelpAlt, k.ForceQuit}
}

// FullHelp returns every binding grouped for the help popup
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear, k.NextFocus, k.PrevFocus},
		{k.Activate, k.Raw, k.Background},
		{k.Help, k.HelpAlt, k.Quit, k.ForceQuit},
	}
}
