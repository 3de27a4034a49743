package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pokesearch/internal/ui/input/types"
)

// HelpMode handles the help popup
type HelpMode struct {
	keys     Bindings
	previous types.Mode
}

func NewHelpMode(keys Bindings) *HelpMode {
	return &HelpMode{keys: keys, previous: types.ModeQuery}
}

func (m *HelpMode) Name() string {
	return "help"
}

// SetReturnMode records the mode to go back to when the popup closes
func (m *HelpMode) SetReturnMode(mode types.Mode) {
	if mode != types.ModeHelp {
		m.previous = mode
	}
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.HelpAlt):
		return []types.Action{types.ChangeModeAction{Mode: m.previous}}, true
	case key.Matches(msg, m.keys.ScrollUp):
		return []types.Action{types.ScrollHelpAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.ScrollDown):
		return []types.Action{types.ScrollHelpAction{Delta: 1}}, true
	}
	// Swallow everything else while the popup is open
	return nil, true
}
