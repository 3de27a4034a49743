package modes

import "github.com/charmbracelet/bubbles/key"

// Bindings is the subset of the key map the modes need
type Bindings struct {
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
