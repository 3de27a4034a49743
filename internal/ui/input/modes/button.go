package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pokesearch/internal/ui/input/types"
)

// ButtonMode is active while the Search button has focus
type ButtonMode struct {
	keys Bindings
}

func NewButtonMode(keys Bindings) *ButtonMode {
	return &ButtonMode{keys: keys}
}

func (m *ButtonMode) Name() string {
	return "button"
}

func (m *ButtonMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ButtonMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ButtonMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Activate):
		// The button is disabled while a request is in flight
		if ctx.IsLoading() {
			return nil, true
		}
		return []types.Action{types.TriggerSearchAction{Source: types.SourceButton}}, true
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.HelpAlt):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	case key.Matches(msg, m.keys.Raw):
		if !ctx.HasRecord() {
			return []types.Action{types.StatusAction{Message: "Nothing to show yet"}}, true
		}
		return []types.Action{types.OpenRawAction{}}, true
	case key.Matches(msg, m.keys.Background):
		return []types.Action{types.ToggleBackgroundAction{}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}
	return nil, false
}
